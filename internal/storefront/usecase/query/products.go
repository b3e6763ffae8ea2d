package query

import (
	"context"

	"github.com/tair/jewelkraft/internal/storefront/domain"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	DesignID string // Optional: filter by design
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	store domain.Store
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(store domain.Store) *ListProductsHandler {
	return &ListProductsHandler{store: store}
}

// Handle returns matching products in insertion order
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) []domain.Product {
	products := h.store.Products(ctx)
	if q.DesignID == "" {
		return products
	}

	out := products[:0]
	for _, p := range products {
		if p.DesignID == q.DesignID {
			out = append(out, p)
		}
	}
	return out
}

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	store domain.Store
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(store domain.Store) *GetProductHandler {
	return &GetProductHandler{store: store}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	product, ok := h.store.ProductByID(ctx, q.ID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

// GetOptionsHandler serves the product options catalog
type GetOptionsHandler struct {
	options domain.ProductOptions
}

// NewGetOptionsHandler creates a new get options handler
func NewGetOptionsHandler(options domain.ProductOptions) *GetOptionsHandler {
	return &GetOptionsHandler{options: options}
}

// Handle returns the catalog
func (h *GetOptionsHandler) Handle(ctx context.Context) domain.ProductOptions {
	return h.options
}
