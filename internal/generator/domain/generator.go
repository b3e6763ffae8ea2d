package domain

import (
	"context"
	"errors"
)

// DefaultVariations is how many images one request produces
const DefaultVariations = 5

var (
	// ErrProviderNotConfigured is returned when no provider credentials are set
	ErrProviderNotConfigured = errors.New("image provider API key not configured")
	// ErrPromptRequired is returned for blank prompts
	ErrPromptRequired = errors.New("prompt is required")
)

// ImageProvider renders one image for a prompt and returns its public URL
type ImageProvider interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Generation is the outcome of one generate request
type Generation struct {
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Errors []string `json:"errors,omitempty"`
}
