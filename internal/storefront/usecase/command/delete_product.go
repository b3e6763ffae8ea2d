package command

import (
	"context"

	"github.com/tair/jewelkraft/internal/storefront/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles delete product command
type DeleteProductHandler struct {
	store domain.Store
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(store domain.Store) *DeleteProductHandler {
	return &DeleteProductHandler{store: store}
}

// Handle deletes the product and drops its cart entry with it
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	h.store.DeleteProduct(ctx, cmd.ID)
	h.store.RemoveFromCart(ctx, cmd.ID)
	return nil
}
