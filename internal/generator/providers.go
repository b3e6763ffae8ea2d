package generator

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/tair/jewelkraft/internal/config"
	"github.com/tair/jewelkraft/internal/generator/delivery/http"
	"github.com/tair/jewelkraft/internal/generator/domain"
	"github.com/tair/jewelkraft/internal/generator/provider"
	"github.com/tair/jewelkraft/internal/generator/usecase"
	storefront "github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/pkg/logger"
)

// App is the assembled generator service
type App struct {
	Handler     *http.GeneratorHandler
	Redis       *redis.Client
	RateLimiter *http.RateLimiter
}

// ProvideImageProvider returns nil when no API key is configured, so the
// service still starts and reports the missing key per request
func ProvideImageProvider(ctx context.Context, cfg *config.Config) (domain.ImageProvider, error) {
	if cfg.Generator.APIKey == "" {
		logger.Logger.Warn().Msg("GENAI_API_KEY not set - image generation disabled")
		return nil, nil
	}

	images, err := provider.NewDiskImageStore(cfg.Generator.ImageDir, "/images")
	if err != nil {
		return nil, err
	}
	p, err := provider.NewGenAIProvider(ctx, cfg.Generator.APIKey, cfg.Generator.Model, images)
	if err != nil {
		return nil, err
	}

	logger.Logger.Info().
		Str("model", cfg.Generator.Model).
		Str("image_dir", cfg.Generator.ImageDir).
		Msg("GenAI image provider configured")
	return p, nil
}

// ProvideRedis connects to Redis when configured. A failed ping disables
// caching and rate limiting instead of failing startup.
func ProvideRedis(ctx context.Context, cfg *config.Config) (*redis.Client, func()) {
	if cfg.Redis.Addr == "" {
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", cfg.Redis.Addr).
			Msg("Failed to connect to Redis - caching and rate limiting disabled")
		client.Close()
		return nil, func() {}
	}

	logger.Logger.Info().
		Str("redis_addr", cfg.Redis.Addr).
		Msg("Connected to Redis for caching and rate limiting")
	return client, func() { client.Close() }
}

// ProvideGenerateImagesHandler provides the fan-out use case
func ProvideGenerateImagesHandler(p domain.ImageProvider, cfg *config.Config) *usecase.GenerateImagesHandler {
	return usecase.NewGenerateImagesHandler(p, cfg.Generator.Variations)
}

// ProvideRateLimiter provides the per-IP limiter; limits apply per minute
func ProvideRateLimiter(client *redis.Client, cfg *config.Config) *http.RateLimiter {
	return http.NewRateLimiter(client, cfg.Generator.RateLimit, time.Minute)
}

// ProvideOptions provides the catalog served at /api/product_details
func ProvideOptions() storefront.ProductOptions {
	return storefront.DefaultOptions()
}

// ProvideRegisterer provides the registry handler metrics are added to
func ProvideRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
