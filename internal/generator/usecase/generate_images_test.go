package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tair/jewelkraft/internal/generator/domain"
)

// scriptedProvider fails prompts containing failOn and records every prompt
type scriptedProvider struct {
	mu      sync.Mutex
	failOn  string
	prompts []string
}

func (p *scriptedProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	p.prompts = append(p.prompts, prompt)
	p.mu.Unlock()

	if p.failOn != "" && strings.Contains(prompt, p.failOn) {
		return "", fmt.Errorf("quota exceeded")
	}
	switch {
	case strings.Contains(prompt, "clean lines"):
		return "/images/v1.png", nil
	case strings.Contains(prompt, "vintage-inspired"):
		return "/images/v2.png", nil
	case strings.Contains(prompt, "innovative approach"):
		return "/images/v3.png", nil
	case strings.Contains(prompt, "premium finish"):
		return "/images/v4.png", nil
	default:
		return "/images/v0.png", nil
	}
}

func TestGenerateImages_AllVariations(t *testing.T) {
	defer goleak.VerifyNone(t)

	provider := &scriptedProvider{}
	h := NewGenerateImagesHandler(provider, 5)

	result, err := h.Handle(context.Background(), GenerateImagesCommand{Prompt: "Sapphire halo ring"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/images/v0.png", "/images/v1.png", "/images/v2.png", "/images/v3.png", "/images/v4.png"}, result.Images)
	assert.Empty(t, result.Errors)
	assert.Len(t, provider.prompts, 5)
}

func TestGenerateImages_PartialFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := NewGenerateImagesHandler(&scriptedProvider{failOn: "vintage-inspired"}, 5)

	result, err := h.Handle(context.Background(), GenerateImagesCommand{Prompt: "Sapphire halo ring"})
	require.NoError(t, err)

	assert.Len(t, result.Images, 4)
	assert.NotContains(t, result.Images, "/images/v2.png")
	assert.Equal(t, []string{"quota exceeded"}, result.Errors)
}

func TestGenerateImages_AllFail(t *testing.T) {
	h := NewGenerateImagesHandler(&scriptedProvider{failOn: "photography"}, 3)

	result, err := h.Handle(context.Background(), GenerateImagesCommand{Prompt: "Opal brooch"})
	require.NoError(t, err)
	assert.Empty(t, result.Images)
	assert.Len(t, result.Errors, 3)
}

func TestGenerateImages_NotConfigured(t *testing.T) {
	h := NewGenerateImagesHandler(nil, 0)
	assert.False(t, h.Configured())

	_, err := h.Handle(context.Background(), GenerateImagesCommand{Prompt: "Opal brooch"})
	assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
}

func TestGenerateImages_BlankPrompt(t *testing.T) {
	provider := &scriptedProvider{}
	_, err := NewGenerateImagesHandler(provider, 5).Handle(context.Background(), GenerateImagesCommand{Prompt: " \n "})
	assert.ErrorIs(t, err, domain.ErrPromptRequired)
	assert.Empty(t, provider.prompts)
}
