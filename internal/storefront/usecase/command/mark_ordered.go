package command

import (
	"context"

	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/pkg/logger"
)

// MarkOrderedCommand flags the products of a placed order, and their
// designs, as ordered
type MarkOrderedCommand struct {
	OrderID    string
	ProductIDs []string
}

// MarkOrderedHandler handles mark ordered command
type MarkOrderedHandler struct {
	store domain.Store
}

// NewMarkOrderedHandler creates a new mark ordered handler
func NewMarkOrderedHandler(store domain.Store) *MarkOrderedHandler {
	return &MarkOrderedHandler{store: store}
}

// Handle updates whatever still exists; unknown ids are skipped
func (h *MarkOrderedHandler) Handle(ctx context.Context, cmd MarkOrderedCommand) error {
	marked := 0
	for _, id := range cmd.ProductIDs {
		product, ok := h.store.ProductByID(ctx, id)
		if !ok {
			continue
		}
		if product.Status != domain.ProductOrdered {
			product.Status = domain.ProductOrdered
			h.store.SaveProduct(ctx, product)
		}
		marked++

		design, ok := h.store.DesignByID(ctx, product.DesignID)
		if ok && design.Status != domain.DesignOrdered {
			design.Status = domain.DesignOrdered
			h.store.SaveDesign(ctx, design)
		}
	}

	logger.Info(ctx).
		Str("order_id", cmd.OrderID).
		Int("requested", len(cmd.ProductIDs)).
		Int("marked", marked).
		Msg("Products marked as ordered")
	return nil
}
