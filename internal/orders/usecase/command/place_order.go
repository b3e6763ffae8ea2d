package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tair/jewelkraft/internal/orders/domain"
	"github.com/tair/jewelkraft/kafka"
	"github.com/tair/jewelkraft/pkg/logger"
)

// EventPublisher announces placed orders
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// PlaceOrderCommand represents the command to place an order
type PlaceOrderCommand struct {
	Items     []domain.OrderItem
	Shipping  domain.Shipping
	PaymentID string
	Amount    float64
	Currency  string
	Email     string
}

// PlaceOrderHandler handles place order command
type PlaceOrderHandler struct {
	repo      domain.OrderRepository
	publisher EventPublisher
}

// NewPlaceOrderHandler creates a new place order handler.
// publisher may be nil when Kafka is not configured.
func NewPlaceOrderHandler(repo domain.OrderRepository, publisher EventPublisher) *PlaceOrderHandler {
	return &PlaceOrderHandler{repo: repo, publisher: publisher}
}

// Handle executes the place order command
func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("%w: items are required", domain.ErrInvalidOrder)
	}
	for _, item := range cmd.Items {
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: product_id is required for every item", domain.ErrInvalidOrder)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidOrder)
		}
	}
	if strings.TrimSpace(cmd.PaymentID) == "" {
		return nil, fmt.Errorf("%w: payment_id is required", domain.ErrInvalidOrder)
	}
	if cmd.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", domain.ErrInvalidOrder)
	}
	if cmd.Currency == "" {
		cmd.Currency = "INR"
	}

	order := &domain.Order{
		OrderID:   fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		Items:     cmd.Items,
		Shipping:  cmd.Shipping,
		PaymentID: cmd.PaymentID,
		Amount:    cmd.Amount,
		Currency:  cmd.Currency,
		Email:     cmd.Email,
		Status:    domain.StatusPlaced,
	}

	if err := h.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	h.publish(ctx, order)

	logger.Info(ctx).
		Str("order_id", order.OrderID).
		Int("items", len(order.Items)).
		Float64("amount", order.Amount).
		Msg("Order placed")

	return order, nil
}

// publish emits order.placed; a broker failure does not undo the order
func (h *PlaceOrderHandler) publish(ctx context.Context, order *domain.Order) {
	if h.publisher == nil {
		return
	}

	event := kafka.OrderPlacedEvent{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, kafka.OrderItem{
			ProductID: item.ProductID,
			DesignID:  item.DesignID,
			Quantity:  item.Quantity,
		})
	}

	if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("order_id", order.OrderID).
			Msg("Order stored but event not published")
	}
}
