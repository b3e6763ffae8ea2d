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

	"github.com/tair/jewelkraft/internal/config"
	"github.com/tair/jewelkraft/internal/orders"
	delivery "github.com/tair/jewelkraft/internal/orders/delivery/http"
	"github.com/tair/jewelkraft/pkg/logger"
	"github.com/tair/jewelkraft/pkg/tracing"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(getEnv("CONFIG_PATH", "config.yaml"), "orders-service", "8083")
	if err != nil {
		panic(err)
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Strs("kafka_brokers", cfg.Kafka.Brokers).
		Msg("Starting orders service")

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

	// Initialize database, publisher and handler with Wire DI
	app, cleanup, err := orders.InitializeApp(cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize orders service")
	}
	defer cleanup()

	logger.Logger.Info().Msg("Database initialized successfully")

	sqlDB, err := app.DB.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}

	router := mux.NewRouter()
	delivery.RegisterMiddlewares(router)
	app.Handler.RegisterRoutes(router)
	app.Handler.RegisterHealthCheck(router, sqlDB.Ping)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
