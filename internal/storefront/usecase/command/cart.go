package command

import (
	"context"

	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/internal/storefront/validation"
)

// AddToCartCommand adds units of an existing product to the cart
type AddToCartCommand struct {
	ProductID string
	Quantity  int
}

// AddToCartHandler handles add to cart command
type AddToCartHandler struct {
	store domain.Store
}

// NewAddToCartHandler creates a new add to cart handler
func NewAddToCartHandler(store domain.Store) *AddToCartHandler {
	return &AddToCartHandler{store: store}
}

// Handle checks the quantity and product, then adds to the cart
func (h *AddToCartHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
	if verr := validation.ValidateQuantity(cmd.Quantity); verr != nil {
		return verr
	}

	product, ok := h.store.ProductByID(ctx, cmd.ProductID)
	if !ok {
		return domain.ErrProductNotFound
	}

	if product.Status == domain.ProductDraft {
		product.Status = domain.ProductInCart
		h.store.SaveProduct(ctx, product)
	}
	h.store.AddToCart(ctx, cmd.ProductID, cmd.Quantity)
	return nil
}

// RemoveFromCartCommand drops a product from the cart
type RemoveFromCartCommand struct {
	ProductID string
}

// RemoveFromCartHandler handles remove from cart command
type RemoveFromCartHandler struct {
	store domain.Store
}

// NewRemoveFromCartHandler creates a new remove from cart handler
func NewRemoveFromCartHandler(store domain.Store) *RemoveFromCartHandler {
	return &RemoveFromCartHandler{store: store}
}

// Handle removes the entry; removing an absent product succeeds
func (h *RemoveFromCartHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
	h.store.RemoveFromCart(ctx, cmd.ProductID)
	return nil
}

// UpdateCartQuantityCommand sets the quantity of a product already in the cart
type UpdateCartQuantityCommand struct {
	ProductID string
	Quantity  int
}

// UpdateCartQuantityHandler handles update cart quantity command
type UpdateCartQuantityHandler struct {
	store domain.Store
}

// NewUpdateCartQuantityHandler creates a new update cart quantity handler
func NewUpdateCartQuantityHandler(store domain.Store) *UpdateCartQuantityHandler {
	return &UpdateCartQuantityHandler{store: store}
}

// Handle sets the quantity. A product that is not in the cart is reported,
// not added.
func (h *UpdateCartQuantityHandler) Handle(ctx context.Context, cmd UpdateCartQuantityCommand) error {
	if verr := validation.ValidateQuantity(cmd.Quantity); verr != nil {
		return verr
	}
	if !h.store.UpdateCartItemQuantity(ctx, cmd.ProductID, cmd.Quantity) {
		return domain.ErrCartItemNotFound
	}
	return nil
}

// ClearCartHandler empties the cart
type ClearCartHandler struct {
	store domain.Store
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(store domain.Store) *ClearCartHandler {
	return &ClearCartHandler{store: store}
}

// Handle empties the cart unconditionally
func (h *ClearCartHandler) Handle(ctx context.Context) error {
	h.store.ClearCart(ctx)
	return nil
}
