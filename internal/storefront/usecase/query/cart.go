package query

import (
	"context"

	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/pkg/logger"
)

// GetCartHandler renders the cart with product and design details
type GetCartHandler struct {
	store   domain.Store
	pricing domain.Pricing
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(store domain.Store, pricing domain.Pricing) *GetCartHandler {
	return &GetCartHandler{store: store, pricing: pricing}
}

// Handle builds the cart view; entries whose product is gone are skipped
func (h *GetCartHandler) Handle(ctx context.Context) domain.CartView {
	view := domain.BuildCartView(
		h.store.Cart(ctx),
		h.store.Products(ctx),
		h.store.Designs(ctx),
		h.pricing.UnitPrice,
		h.pricing.Currency,
	)
	if view.Dangling > 0 {
		logger.Warn(ctx).
			Int("dangling", view.Dangling).
			Msg("Cart references products that no longer exist")
	}
	return view
}

// CartCount is the badge count polled by the header
type CartCount struct {
	Lines int `json:"lines"`
	Units int `json:"units"`
}

// CartCountHandler handles cart count query
type CartCountHandler struct {
	store domain.Store
}

// NewCartCountHandler creates a new cart count handler
func NewCartCountHandler(store domain.Store) *CartCountHandler {
	return &CartCountHandler{store: store}
}

// Handle returns the number of lines and units in the cart
func (h *CartCountHandler) Handle(ctx context.Context) CartCount {
	stats := h.store.Stats(ctx)
	return CartCount{Lines: stats.CartLines, Units: stats.CartUnits}
}
