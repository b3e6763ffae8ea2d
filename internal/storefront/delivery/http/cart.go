package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/jewelkraft/internal/storefront/usecase/command"
	"github.com/tair/jewelkraft/internal/storefront/validation"
)

// GetCart handles GET /api/cart
func (h *StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.queries.GetCart.Handle(r.Context()),
	})
}

// CartCount handles GET /api/cart/count
func (h *StorefrontHandler) CartCount(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.queries.CartCount.Handle(r.Context()),
	})
}

// AddToCart handles POST /api/cart/items
func (h *StorefrontHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.commands.AddToCart.Handle(r.Context(), command.AddToCartCommand{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(w, r, err, "Failed to add to cart")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Added to cart",
		Data:    h.queries.CartCount.Handle(r.Context()),
	})
}

// UpdateCartItem handles PATCH /api/cart/items/{productId}
func (h *StorefrontHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.commands.UpdateCart.Handle(r.Context(), command.UpdateCartQuantityCommand{
		ProductID: mux.Vars(r)["productId"],
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(w, r, err, "Failed to update cart")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart updated",
		Data:    h.queries.GetCart.Handle(r.Context()),
	})
}

// RemoveFromCart handles DELETE /api/cart/items/{productId}
func (h *StorefrontHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	err := h.commands.RemoveFromCart.Handle(r.Context(), command.RemoveFromCartCommand{
		ProductID: mux.Vars(r)["productId"],
	})
	if err != nil {
		respondError(w, r, err, "Failed to remove from cart")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Removed from cart",
		Data:    h.queries.GetCart.Handle(r.Context()),
	})
}

// ClearCart handles DELETE /api/cart
func (h *StorefrontHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.ClearCart.Handle(r.Context()); err != nil {
		respondError(w, r, err, "Failed to clear cart")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// Checkout handles POST /api/checkout
func (h *StorefrontHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Shipping  validation.Shipping `json:"shipping"`
		PaymentID string              `json:"payment_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.commands.Checkout.Handle(r.Context(), command.CheckoutCommand{
		Shipping:  req.Shipping,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		respondError(w, r, err, "Checkout failed")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    result,
	})
}
