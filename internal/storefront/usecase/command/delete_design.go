package command

import (
	"context"

	"github.com/tair/jewelkraft/internal/storefront/domain"
)

// DeleteDesignCommand represents the command to delete a design
type DeleteDesignCommand struct {
	ID string
}

// DeleteDesignHandler handles delete design command
type DeleteDesignHandler struct {
	store domain.Store
}

// NewDeleteDesignHandler creates a new delete design handler
func NewDeleteDesignHandler(store domain.Store) *DeleteDesignHandler {
	return &DeleteDesignHandler{store: store}
}

// Handle deletes the design. Deleting an unknown id succeeds.
func (h *DeleteDesignHandler) Handle(ctx context.Context, cmd DeleteDesignCommand) error {
	h.store.DeleteDesign(ctx, cmd.ID)
	return nil
}
