package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/jewelkraft/internal/generator/domain"
	"github.com/tair/jewelkraft/internal/generator/usecase"
	storefront "github.com/tair/jewelkraft/internal/storefront/domain"
)

type stubProvider struct {
	err error
}

func (p stubProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return "/images/stub.png", nil
}

func newTestApp(provider domain.ImageProvider) *fiber.App {
	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Use(StructuredLoggingMiddleware())
	app.Use(PromptCacheMiddleware(nil, 0))
	app.Use(NewRateLimiter(nil, 0, 0).Middleware())

	handler := NewGeneratorHandler(
		usecase.NewGenerateImagesHandler(provider, 5),
		storefront.DefaultOptions(),
		prometheus.NewRegistry(),
	)
	handler.RegisterRoutes(app)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return resp.StatusCode, out
}

func TestGenerate_Success(t *testing.T) {
	app := newTestApp(stubProvider{})

	status, body := call(t, app, fiber.MethodPost, "/api/generate", `{"prompt":"Rose gold band"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Rose gold band", body["prompt"])
	assert.Len(t, body["images"], 5)
	assert.Equal(t, "Successfully generated 5 images", body["message"])
}

func TestGenerate_RequestErrors(t *testing.T) {
	app := newTestApp(stubProvider{})

	status, body := call(t, app, fiber.MethodPost, "/api/generate", `{"prompt":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid JSON payload", body["message"])

	for _, blank := range []string{`{"prompt":""}`, `{"prompt":"   \t "}`} {
		status, body = call(t, app, fiber.MethodPost, "/api/generate", blank)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Prompt is required", body["message"])
	}
}

func TestGenerate_ProviderFailures(t *testing.T) {
	status, body := call(t, newTestApp(nil), fiber.MethodPost, "/api/generate", `{"prompt":"Rose gold band"}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Image provider API key not configured", body["message"])

	status, body = call(t, newTestApp(stubProvider{err: errors.New("quota exceeded")}), fiber.MethodPost, "/api/generate", `{"prompt":"Rose gold band"}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Failed to generate any images", body["message"])
	assert.Len(t, body["errors"], 5)
}

func TestTestEndpoint(t *testing.T) {
	status, body := call(t, newTestApp(stubProvider{}), fiber.MethodGet, "/api/test", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, _ = call(t, newTestApp(nil), fiber.MethodGet, "/api/test", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestProductDetails(t *testing.T) {
	status, body := call(t, newTestApp(nil), fiber.MethodGet, "/api/product_details", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "materials")
	assert.Contains(t, body, "weight_ranges")
	assert.Contains(t, body, "hallmarking")
}

func TestPromptCacheKey_Normalises(t *testing.T) {
	assert.Equal(t, promptCacheKey("Rose  gold band"), promptCacheKey(" rose gold BAND "))
	assert.NotEqual(t, promptCacheKey("Rose gold band"), promptCacheKey("White gold band"))
}
