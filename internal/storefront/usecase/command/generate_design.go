package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/internal/storefront/validation"
	"github.com/tair/jewelkraft/pkg/logger"
)

// GuestUserID owns designs created without a user identifier
const GuestUserID = "guest"

// GenerateDesignCommand represents the command to generate a new design
type GenerateDesignCommand struct {
	UserID string
	Prompt string
}

// GenerateDesignHandler handles design generation command
type GenerateDesignHandler struct {
	store     domain.Store
	generator ImageGenerator
}

// NewGenerateDesignHandler creates a new generate design handler
func NewGenerateDesignHandler(store domain.Store, generator ImageGenerator) *GenerateDesignHandler {
	return &GenerateDesignHandler{store: store, generator: generator}
}

// Handle validates the prompt, asks the generator for images and stores the
// result as a draft design
func (h *GenerateDesignHandler) Handle(ctx context.Context, cmd GenerateDesignCommand) (*domain.Design, error) {
	if verr := validation.ValidatePrompt(cmd.Prompt); verr != nil {
		return nil, verr
	}
	if cmd.UserID == "" {
		cmd.UserID = GuestUserID
	}

	resp, err := h.generator.Generate(ctx, cmd.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate design: %w", err)
	}

	design := domain.Design{
		ID:        uuid.NewString(),
		UserID:    cmd.UserID,
		Prompt:    cmd.Prompt,
		Images:    resp.Images,
		CreatedAt: time.Now().UTC(),
		Status:    domain.DesignDraft,
	}
	h.store.SaveDesign(ctx, design)

	logger.Info(ctx).
		Str("design_id", design.ID).
		Int("images", len(design.Images)).
		Msg("Design generated")

	return &design, nil
}
