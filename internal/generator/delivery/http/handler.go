package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/jewelkraft/internal/generator/domain"
	"github.com/tair/jewelkraft/internal/generator/usecase"
	storefront "github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/pkg/logger"
)

// GeneratorHandler serves the image generation API
type GeneratorHandler struct {
	generateHandler *usecase.GenerateImagesHandler
	options         storefront.ProductOptions

	imagesTotal *prometheus.CounterVec
}

// NewGeneratorHandler creates the handler and registers its metrics with reg
func NewGeneratorHandler(generateHandler *usecase.GenerateImagesHandler, options storefront.ProductOptions, reg prometheus.Registerer) *GeneratorHandler {
	imagesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generator_images_total",
			Help: "Images requested from the provider by outcome",
		},
		[]string{"result"},
	)
	reg.MustRegister(imagesTotal)

	return &GeneratorHandler{
		generateHandler: generateHandler,
		options:         options,
		imagesTotal:     imagesTotal,
	}
}

// RegisterRoutes registers the generator API. generateMiddlewares run before
// POST /api/generate only.
func (h *GeneratorHandler) RegisterRoutes(app *fiber.App, generateMiddlewares ...fiber.Handler) {
	api := app.Group("/api")
	api.Post("/generate", append(generateMiddlewares, h.Generate)...)
	api.Get("/test", h.Test)
	api.Get("/product_details", h.ProductDetails)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":    true,
			"message":    "Generator service is healthy",
			"configured": h.generateHandler.Configured(),
		})
	})
}

// Generate handles POST /api/generate
func (h *GeneratorHandler) Generate(c *fiber.Ctx) error {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.BodyParser(&req); err != nil {
		logger.Warn(c.UserContext()).Err(err).Msg("Invalid JSON payload received")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid JSON payload",
		})
	}

	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Prompt is required",
		})
	}

	result, err := h.generateHandler.Handle(c.UserContext(), usecase.GenerateImagesCommand{Prompt: req.Prompt})
	if err != nil {
		if errors.Is(err, domain.ErrPromptRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Prompt is required",
			})
		}
		if errors.Is(err, domain.ErrProviderNotConfigured) {
			logger.Error(c.UserContext()).Msg("Image provider API key not configured")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Image provider API key not configured",
			})
		}
		logger.Error(c.UserContext()).Err(err).Msg("Error generating images")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate images",
			"error":   err.Error(),
		})
	}

	h.imagesTotal.WithLabelValues("success").Add(float64(len(result.Images)))
	h.imagesTotal.WithLabelValues("failure").Add(float64(len(result.Errors)))

	if len(result.Images) == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate any images",
			"errors":  result.Errors,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"prompt":  result.Prompt,
		"images":  result.Images,
		"message": fmt.Sprintf("Successfully generated %d images", len(result.Images)),
	})
}

// Test handles GET /api/test
func (h *GeneratorHandler) Test(c *fiber.Ctx) error {
	if !h.generateHandler.Configured() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Image provider API key not configured",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Image provider API key is configured",
	})
}

// ProductDetails handles GET /api/product_details
func (h *GeneratorHandler) ProductDetails(c *fiber.Ctx) error {
	return c.JSON(h.options)
}
