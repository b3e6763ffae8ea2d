package command

import (
	"context"

	"github.com/tair/jewelkraft/internal/storefront/domain"
)

// SaveDesignCommand marks a design as saved by the user
type SaveDesignCommand struct {
	ID string
}

// SaveDesignHandler handles save design command
type SaveDesignHandler struct {
	store domain.Store
}

// NewSaveDesignHandler creates a new save design handler
func NewSaveDesignHandler(store domain.Store) *SaveDesignHandler {
	return &SaveDesignHandler{store: store}
}

// Handle executes the save design command. Ordered designs stay ordered.
func (h *SaveDesignHandler) Handle(ctx context.Context, cmd SaveDesignCommand) (*domain.Design, error) {
	design, ok := h.store.DesignByID(ctx, cmd.ID)
	if !ok {
		return nil, domain.ErrDesignNotFound
	}

	if design.Status == domain.DesignDraft {
		design.Status = domain.DesignSaved
		h.store.SaveDesign(ctx, design)
	}
	return &design, nil
}
