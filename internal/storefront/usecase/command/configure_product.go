package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/internal/storefront/validation"
	"github.com/tair/jewelkraft/pkg/logger"
)

// ConfigureProductCommand turns a design plus chosen options into a product
type ConfigureProductCommand struct {
	DesignID  string
	Config    domain.ProductConfig
	AddToCart bool
}

// ConfigureProductHandler handles product configuration command
type ConfigureProductHandler struct {
	store   domain.Store
	options domain.ProductOptions
}

// NewConfigureProductHandler creates a new configure product handler
func NewConfigureProductHandler(store domain.Store, options domain.ProductOptions) *ConfigureProductHandler {
	return &ConfigureProductHandler{store: store, options: options}
}

// Handle validates the options and creates a new product for the design.
// With AddToCart the product goes straight into the cart.
func (h *ConfigureProductHandler) Handle(ctx context.Context, cmd ConfigureProductCommand) (*domain.Product, error) {
	if verr := validation.ValidateProduct(cmd.Config, h.options); verr != nil {
		return nil, verr
	}
	if _, ok := h.store.DesignByID(ctx, cmd.DesignID); !ok {
		return nil, domain.ErrDesignNotFound
	}

	product := domain.Product{
		ID:        uuid.NewString(),
		DesignID:  cmd.DesignID,
		Material:  cmd.Config.Material,
		Size:      cmd.Config.Size,
		Karat:     cmd.Config.Karat,
		Color:     cmd.Config.Color,
		Hallmark:  cmd.Config.Hallmark,
		Purity:    cmd.Config.Purity,
		Weight:    cmd.Config.Weight,
		Quantity:  cmd.Config.Quantity,
		Status:    domain.ProductDraft,
		CreatedAt: time.Now().UTC(),
	}
	if cmd.AddToCart {
		product.Status = domain.ProductInCart
	}

	h.store.SaveProduct(ctx, product)
	if cmd.AddToCart {
		h.store.AddToCart(ctx, product.ID, product.Quantity)
	}

	logger.Info(ctx).
		Str("product_id", product.ID).
		Str("design_id", product.DesignID).
		Bool("in_cart", cmd.AddToCart).
		Msg("Product configured")

	return &product, nil
}
