package provider

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/tair/jewelkraft/pkg/logger"
)

// ImageSink persists rendered image bytes and returns their URL
type ImageSink interface {
	Save(data []byte, mimeType string) (string, error)
}

// GenAIProvider renders images with a Google GenAI image model
type GenAIProvider struct {
	client *genai.Client
	model  string
	sink   ImageSink
}

// NewGenAIProvider creates a provider backed by the Gemini API
func NewGenAIProvider(ctx context.Context, apiKey, model string, sink ImageSink) (*GenAIProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GenAIProvider{client: client, model: model, sink: sink}, nil
}

// GenerateImage renders one image and stores it
func (p *GenAIProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models.GenerateImages(ctx, p.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/png",
	})
	if err != nil {
		return "", fmt.Errorf("genai generate images: %w", err)
	}
	if len(resp.GeneratedImages) == 0 {
		return "", errors.New("genai returned no images")
	}

	generated := resp.GeneratedImages[0]
	if generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		if generated.RAIFilteredReason != "" {
			return "", fmt.Errorf("image filtered: %s", generated.RAIFilteredReason)
		}
		return "", errors.New("genai returned an empty image")
	}

	url, err := p.sink.Save(generated.Image.ImageBytes, generated.Image.MIMEType)
	if err != nil {
		return "", err
	}

	logger.Debug(ctx).
		Str("model", p.model).
		Str("url", url).
		Int("bytes", len(generated.Image.ImageBytes)).
		Msg("Image generated")

	return url, nil
}
