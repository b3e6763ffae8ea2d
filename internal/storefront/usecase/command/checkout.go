package command

import (
	"context"
	"fmt"

	"github.com/tair/jewelkraft/internal/storefront/client"
	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/internal/storefront/validation"
	"github.com/tair/jewelkraft/pkg/logger"
)

// CheckoutCommand submits the current cart as an order
type CheckoutCommand struct {
	Shipping  validation.Shipping
	PaymentID string
}

// CheckoutResult is returned after a successful checkout
type CheckoutResult struct {
	OrderID  string              `json:"order_id"`
	Cart     domain.CartView     `json:"cart"`
	Shipping validation.Shipping `json:"shipping"`
}

// CheckoutHandler handles checkout command
type CheckoutHandler struct {
	store   domain.Store
	orders  OrderPlacer
	pricing domain.Pricing
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(store domain.Store, orders OrderPlacer, pricing domain.Pricing) *CheckoutHandler {
	return &CheckoutHandler{store: store, orders: orders, pricing: pricing}
}

// Handle validates shipping details, prices the cart and places the order.
// Once the order service has accepted the order, exactly the ordered units
// are taken out of the cart; anything added meanwhile stays.
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*CheckoutResult, error) {
	if verr := validation.ValidateShipping(cmd.Shipping); verr != nil {
		return nil, verr
	}
	if cmd.PaymentID == "" {
		return nil, &validation.ValidationError{Field: "payment_id", Message: "Payment reference is required"}
	}

	entries := h.store.Cart(ctx)
	view := domain.BuildCartView(
		entries,
		h.store.Products(ctx),
		h.store.Designs(ctx),
		h.pricing.UnitPrice,
		h.pricing.Currency,
	)
	if len(view.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	req := client.PlaceOrderRequest{
		Shipping: client.ShippingInfo{
			Name:    cmd.Shipping.Name,
			Address: cmd.Shipping.Address,
			Phone:   cmd.Shipping.Phone,
			Email:   cmd.Shipping.Email,
		},
		PaymentID: cmd.PaymentID,
		Amount:    view.Total,
		Currency:  view.Currency,
		Email:     cmd.Shipping.Email,
	}
	for _, line := range view.Lines {
		req.Items = append(req.Items, client.OrderItem{
			ProductID: line.Product.ID,
			DesignID:  line.Product.DesignID,
			Prompt:    line.Title,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	orderID, err := h.orders.PlaceOrder(ctx, req)
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Float64("amount", view.Total).
			Msg("Order could not be placed")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	h.removeOrdered(ctx, entries, view)

	logger.Info(ctx).
		Str("order_id", orderID).
		Int("items", view.ItemCount).
		Float64("amount", view.Total).
		Msg("Checkout completed")

	return &CheckoutResult{OrderID: orderID, Cart: view, Shipping: cmd.Shipping}, nil
}

// removeOrdered deducts the ordered units and drops entries that were
// already dangling when the cart was priced
func (h *CheckoutHandler) removeOrdered(ctx context.Context, entries []domain.CartEntry, view domain.CartView) {
	ordered := make(map[string]bool, len(view.Lines))
	for _, line := range view.Lines {
		ordered[line.Product.ID] = true
		h.store.DeductFromCart(ctx, line.Product.ID, line.Quantity)
	}
	for _, e := range entries {
		if ordered[e.ProductID] {
			continue
		}
		if _, ok := h.store.ProductByID(ctx, e.ProductID); !ok {
			h.store.RemoveFromCart(ctx, e.ProductID)
		}
	}
}
