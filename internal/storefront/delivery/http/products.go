package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/internal/storefront/usecase/command"
	"github.com/tair/jewelkraft/internal/storefront/usecase/query"
)

// ConfigureProduct handles POST /api/products
func (h *StorefrontHandler) ConfigureProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DesignID  string `json:"designId"`
		AddToCart bool   `json:"addToCart"`
		domain.ProductConfig
	}
	if !decodeBody(w, r, &req) {
		return
	}

	product, err := h.commands.ConfigureProduct.Handle(r.Context(), command.ConfigureProductCommand{
		DesignID:  req.DesignID,
		Config:    req.ProductConfig,
		AddToCart: req.AddToCart,
	})
	if err != nil {
		respondError(w, r, err, "Failed to configure product")
		return
	}

	message := "Product created successfully"
	if req.AddToCart {
		message = "Product added to cart"
	}
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *StorefrontHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.queries.ListProducts.Handle(r.Context(), query.ListProductsQuery{
		DesignID: r.URL.Query().Get("designId"),
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *StorefrontHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.queries.GetProduct.Handle(r.Context(), query.GetProductQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		respondError(w, r, err, "Failed to get product")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *StorefrontHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.DeleteProduct.Handle(r.Context(), command.DeleteProductCommand{ID: mux.Vars(r)["id"]}); err != nil {
		respondError(w, r, err, "Failed to delete product")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// GetOptions handles GET /api/options
func (h *StorefrontHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.queries.GetOptions.Handle(r.Context()),
	})
}
