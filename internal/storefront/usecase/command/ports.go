package command

import (
	"context"

	"github.com/tair/jewelkraft/internal/storefront/client"
)

// ImageGenerator produces images for a prompt
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (*client.GenerateResponse, error)
}

// OrderPlacer submits an order and returns its identifier
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req client.PlaceOrderRequest) (string, error)
}
