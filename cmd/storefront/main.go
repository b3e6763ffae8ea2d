package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tair/jewelkraft/internal/config"
	"github.com/tair/jewelkraft/internal/storefront"
	"github.com/tair/jewelkraft/internal/storefront/delivery/event"
	delivery "github.com/tair/jewelkraft/internal/storefront/delivery/http"
	_ "github.com/tair/jewelkraft/internal/storefront/docs"
	"github.com/tair/jewelkraft/kafka"
	"github.com/tair/jewelkraft/pkg/logger"
	"github.com/tair/jewelkraft/pkg/tracing"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(getEnv("CONFIG_PATH", "config.yaml"), "storefront-service", "8080")
	if err != nil {
		panic(err)
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("store_backend", cfg.Store.Backend).
		Msg("Starting storefront service")

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the store and handlers with Wire DI
	app, cleanup, err := storefront.InitializeApp(ctx, cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize storefront")
	}
	defer cleanup()

	consumer := startConsumer(ctx, cfg, app)
	if consumer != nil {
		defer consumer.Close()
	}

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           newRouter(cfg, app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func newRouter(cfg *config.Config, app *storefront.App) http.Handler {
	router := mux.NewRouter()

	middlewareConfig := delivery.DefaultMiddlewareConfig()
	middlewareConfig.EnableTracing = cfg.TracingOn
	delivery.RegisterMiddlewares(router, middlewareConfig)

	app.Handler.RegisterRoutes(router)
	app.Handler.RegisterHealthCheck(router)
	delivery.RegisterSwaggerDocs(router, httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}

// startConsumer listens for order.placed when Kafka is configured
func startConsumer(ctx context.Context, cfg *config.Config, app *storefront.App) *kafka.Consumer {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Logger.Warn().Msg("KAFKA_BROKERS not set, ordered status will not be tracked")
		return nil
	}

	consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, []string{kafka.TopicOrderPlaced})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create Kafka consumer")
		return nil
	}
	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, event.OrderPlacedHandler(app.MarkOrdered))

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
		consumer.Close()
		return nil
	}
	return consumer
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
