package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tair/jewelkraft/pkg/logger"
)

// GenerateResponse is the generator's answer to POST /api/generate
type GenerateResponse struct {
	Success bool     `json:"success"`
	Prompt  string   `json:"prompt"`
	Images  []string `json:"images"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ErrGenerationFailed is returned when the generator produced no images
var ErrGenerationFailed = errors.New("image generation failed")

// GeneratorClient calls the image generator service over HTTP
type GeneratorClient struct {
	baseURL string
	base    *url.URL
	client  *http.Client
	breaker *Breaker
}

// NewGeneratorClient creates a client for the generator at baseURL
func NewGeneratorClient(baseURL string, timeout time.Duration) *GeneratorClient {
	baseURL = strings.TrimRight(baseURL, "/")
	base, err := url.Parse(baseURL + "/")
	if err != nil {
		logger.Logger.Warn().Err(err).Str("generator_url", baseURL).Msg("Generator URL not parseable, image URLs kept as returned")
		base = nil
	}
	return &GeneratorClient{
		baseURL: baseURL,
		base:    base,
		client:  newHTTPClient(timeout),
		breaker: NewBreaker("generator", breakerFailures, breakerOpenFor),
	}
}

// Generate asks for images of prompt. Image URLs come back absolute, resolved
// against the generator's address when it answers with host-relative paths.
func (c *GeneratorClient) Generate(ctx context.Context, prompt string) (*GenerateResponse, error) {
	var resp GenerateResponse
	err := c.breaker.Do(func() error {
		err := postJSON(ctx, c.client, "generator", c.baseURL+"/api/generate", map[string]string{"prompt": prompt}, &resp)
		// A failure envelope means the generator is up and refused this prompt
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !resp.Success && resp.Message != "" {
			return fmt.Errorf("%w: %s", ErrGenerationFailed, resp.Message)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if !resp.Success || len(resp.Images) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, resp.Message)
	}
	resp.Images = c.absolute(resp.Images)

	logger.Debug(ctx).
		Int("images", len(resp.Images)).
		Msg("Generator returned images")

	return &resp, nil
}

func (c *GeneratorClient) absolute(images []string) []string {
	if c.base == nil {
		return images
	}
	out := make([]string, len(images))
	for i, img := range images {
		ref, err := url.Parse(img)
		if err != nil || ref.IsAbs() {
			out[i] = img
			continue
		}
		out[i] = c.base.ResolveReference(ref).String()
	}
	return out
}
