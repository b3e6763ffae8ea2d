package query

import (
	"context"

	"github.com/tair/jewelkraft/internal/orders/domain"
)

// GetOrderQuery represents the query to get an order
type GetOrderQuery struct {
	OrderID string
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(ctx context.Context, q GetOrderQuery) (*domain.Order, error) {
	return h.repo.FindByOrderID(ctx, q.OrderID)
}
