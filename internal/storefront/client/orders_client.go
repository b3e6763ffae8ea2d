package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OrderItem is one purchased line sent to the order service
type OrderItem struct {
	ProductID string  `json:"product_id"`
	DesignID  string  `json:"design_id,omitempty"`
	Prompt    string  `json:"prompt"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// ShippingInfo is the delivery address attached to an order
type ShippingInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// PlaceOrderRequest is the body of POST /api/orders
type PlaceOrderRequest struct {
	Items     []OrderItem  `json:"items"`
	Shipping  ShippingInfo `json:"shipping"`
	PaymentID string       `json:"payment_id"`
	Amount    float64      `json:"amount"`
	Currency  string       `json:"currency"`
	Email     string       `json:"email"`
}

type placeOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
	Error   string `json:"error"`
}

// ErrOrderRejected is returned when the order service refuses an order
var ErrOrderRejected = errors.New("order rejected")

// OrdersClient submits orders to the order service
type OrdersClient struct {
	baseURL string
	client  *http.Client
	breaker *Breaker
}

// NewOrdersClient creates a client for the order service at baseURL
func NewOrdersClient(baseURL string, timeout time.Duration) *OrdersClient {
	return &OrdersClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(timeout),
		breaker: NewBreaker("orders", breakerFailures, breakerOpenFor),
	}
}

// PlaceOrder submits the order and returns its identifier
func (c *OrdersClient) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (string, error) {
	var resp placeOrderResponse
	err := c.breaker.Do(func() error {
		return postJSON(ctx, c.client, "orders", c.baseURL+"/api/orders", req, &resp)
	})
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < 500 && resp.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrOrderRejected, resp.Error)
		}
		return "", err
	}
	if resp.OrderID == "" {
		return "", fmt.Errorf("%w: no order id returned", ErrOrderRejected)
	}
	return resp.OrderID, nil
}
