package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tair/jewelkraft/internal/generator/domain"
	"github.com/tair/jewelkraft/pkg/logger"
)

// GenerateImagesCommand asks for every variation of a prompt
type GenerateImagesCommand struct {
	Prompt string
}

// GenerateImagesHandler fans a prompt out to one provider call per variation
type GenerateImagesHandler struct {
	provider   domain.ImageProvider
	variations int
}

// NewGenerateImagesHandler creates a new generate images handler.
// A nil provider means no credentials were configured.
func NewGenerateImagesHandler(provider domain.ImageProvider, variations int) *GenerateImagesHandler {
	if variations <= 0 {
		variations = domain.DefaultVariations
	}
	return &GenerateImagesHandler{provider: provider, variations: variations}
}

// Configured reports whether a provider is available
func (h *GenerateImagesHandler) Configured() bool {
	return h.provider != nil
}

// Handle renders all variations concurrently. Individual failures are
// collected; images keep variation order.
func (h *GenerateImagesHandler) Handle(ctx context.Context, cmd GenerateImagesCommand) (*domain.Generation, error) {
	if strings.TrimSpace(cmd.Prompt) == "" {
		return nil, domain.ErrPromptRequired
	}
	if h.provider == nil {
		return nil, domain.ErrProviderNotConfigured
	}

	images := make([]string, h.variations)
	failures := make([]error, h.variations)

	var g errgroup.Group
	for i := 0; i < h.variations; i++ {
		g.Go(func() error {
			url, err := h.provider.GenerateImage(ctx, domain.EnhancePrompt(cmd.Prompt, i))
			if err != nil {
				failures[i] = err
				logger.Warn(ctx).
					Err(err).
					Int("variation", i).
					Msg("Variation failed")
				return nil
			}
			images[i] = url
			return nil
		})
	}
	_ = g.Wait()

	result := &domain.Generation{Prompt: cmd.Prompt, Images: []string{}}
	for i := range images {
		if failures[i] != nil {
			result.Errors = append(result.Errors, failures[i].Error())
			continue
		}
		result.Images = append(result.Images, images[i])
	}

	logger.Info(ctx).
		Int("requested", h.variations).
		Int("generated", len(result.Images)).
		Msg("Image generation finished")

	return result, nil
}
