package query

import (
	"context"

	"github.com/tair/jewelkraft/internal/storefront/domain"
)

// ListDesignsQuery represents the query to list designs
type ListDesignsQuery struct {
	UserID string              // Optional: only this user's designs
	Status domain.DesignStatus // Optional: only designs in this status
}

// ListDesignsHandler handles list designs query
type ListDesignsHandler struct {
	store domain.Store
}

// NewListDesignsHandler creates a new list designs handler
func NewListDesignsHandler(store domain.Store) *ListDesignsHandler {
	return &ListDesignsHandler{store: store}
}

// Handle returns matching designs in insertion order
func (h *ListDesignsHandler) Handle(ctx context.Context, q ListDesignsQuery) []domain.Design {
	designs := h.store.Designs(ctx)
	if q.UserID == "" && q.Status == "" {
		return designs
	}

	out := designs[:0]
	for _, d := range designs {
		if q.UserID != "" && d.UserID != q.UserID {
			continue
		}
		if q.Status != "" && d.Status != q.Status {
			continue
		}
		out = append(out, d)
	}
	return out
}

// GetDesignQuery represents the query to get a design by ID
type GetDesignQuery struct {
	ID string
}

// GetDesignHandler handles get design query
type GetDesignHandler struct {
	store domain.Store
}

// NewGetDesignHandler creates a new get design handler
func NewGetDesignHandler(store domain.Store) *GetDesignHandler {
	return &GetDesignHandler{store: store}
}

// Handle executes the get design query
func (h *GetDesignHandler) Handle(ctx context.Context, q GetDesignQuery) (*domain.Design, error) {
	design, ok := h.store.DesignByID(ctx, q.ID)
	if !ok {
		return nil, domain.ErrDesignNotFound
	}
	return &design, nil
}
