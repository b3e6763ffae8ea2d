package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tair/jewelkraft/internal/config"
	"github.com/tair/jewelkraft/internal/generator"
	delivery "github.com/tair/jewelkraft/internal/generator/delivery/http"
	"github.com/tair/jewelkraft/pkg/logger"
	"github.com/tair/jewelkraft/pkg/tracing"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(getEnv("CONFIG_PATH", "config.yaml"), "generator-service", "5000")
	if err != nil {
		panic(err)
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Msg("Starting generator service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, "1.0.0", cfg.JaegerURL)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	app, cleanup, err := generator.InitializeApp(context.Background(), cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize generator")
	}
	defer cleanup()

	server := fiber.New(fiber.Config{
		AppName:      "JewelKraft Generator",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Generator.Timeout,
		IdleTimeout:  30 * time.Second,
		BodyLimit:    1 << 20,
		ErrorHandler: errorHandler,
	})

	setupMiddleware(server, cfg)

	app.Handler.RegisterRoutes(server,
		app.RateLimiter.Middleware(),
		delivery.PromptCacheMiddleware(app.Redis, cfg.Generator.CacheTTL),
	)
	server.Static("/images", cfg.Generator.ImageDir)
	server.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	go func() {
		addr := fmt.Sprintf(":%s", cfg.HTTPPort)
		logger.Logger.Info().
			Str("addr", addr).
			Str("image_dir", cfg.Generator.ImageDir).
			Msg("Generator service listening")

		if err := server.Listen(addr); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down generator service...")

	if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

// setupMiddleware configures global middleware
func setupMiddleware(app *fiber.App, cfg *config.Config) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Request ID first, tracing second so logs carry the trace id
	app.Use(requestid.New())
	if cfg.TracingOn {
		app.Use(delivery.TracingMiddleware())
	}
	app.Use(delivery.StructuredLoggingMiddleware())

	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(cfg.AllowOrigins, ","),
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, X-Request-Id, traceparent, tracestate",
		ExposeHeaders: "X-Request-Id, X-Trace-Id, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset",
		MaxAge:        86400,
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// errorHandler renders unhandled errors in the service envelope
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success":   false,
		"error":     err.Error(),
		"path":      c.Path(),
		"requestId": c.Get("X-Request-Id"),
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
