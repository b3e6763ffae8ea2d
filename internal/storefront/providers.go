package storefront

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/tair/jewelkraft/internal/config"
	"github.com/tair/jewelkraft/internal/storefront/client"
	"github.com/tair/jewelkraft/internal/storefront/delivery/http"
	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/internal/storefront/repository"
	"github.com/tair/jewelkraft/internal/storefront/usecase/command"
	"github.com/tair/jewelkraft/pkg/database"
	"github.com/tair/jewelkraft/pkg/logger"
)

// App is the assembled storefront service
type App struct {
	Handler     *http.StorefrontHandler
	Store       *repository.MemoryStore
	MarkOrdered *command.MarkOrderedHandler
}

// ProvideSnapshotBackend builds the backend named by cfg.Store.Backend.
// Connections opened here are released by the returned cleanup.
func ProvideSnapshotBackend(ctx context.Context, cfg *config.Config) (domain.SnapshotBackend, func(), error) {
	var (
		backend domain.SnapshotBackend
		cleanup = func() {}
	)

	switch cfg.Store.Backend {
	case "", "log":
		backend = repository.NewLogBackend()

	case "file":
		if cfg.Store.FixturePath == "" {
			return nil, nil, fmt.Errorf("store backend file requires STORE_FIXTURE_PATH")
		}
		backend = repository.NewFileBackend(cfg.Store.FixturePath)

	case "redis":
		if cfg.Redis.Addr == "" {
			return nil, nil, fmt.Errorf("store backend redis requires REDIS_ADDR")
		}
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		backend = repository.NewRedisBackend(rdb, cfg.Store.Name)
		cleanup = func() { rdb.Close() }

	case "postgres":
		db, err := database.NewGormConnection(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		gormBackend := repository.NewGormBackend(db, cfg.Store.Name)
		if err := gormBackend.AutoMigrate(); err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		backend = gormBackend
		cleanup = func() { sqlDB.Close() }

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	if cfg.TracingOn {
		backend = repository.NewTracingBackend(backend)
	}

	logger.Logger.Info().
		Str("backend", backend.Name()).
		Msg("Snapshot backend selected")

	return backend, cleanup, nil
}

// ProvideStore loads the store from backend; cleanup flushes a final snapshot
func ProvideStore(ctx context.Context, backend domain.SnapshotBackend) (*repository.MemoryStore, func(), error) {
	store, err := repository.NewMemoryStore(ctx, backend)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close store")
		}
	}
	return store, cleanup, nil
}

// ProvideOptions provides the product options catalog
func ProvideOptions() domain.ProductOptions {
	return domain.DefaultOptions()
}

// ProvidePricing provides the flat unit price
func ProvidePricing(cfg *config.Config) domain.Pricing {
	return domain.Pricing{
		UnitPrice: cfg.Checkout.UnitPrice,
		Currency:  cfg.Checkout.Currency,
	}
}

// ProvideGeneratorClient provides the image generator client
func ProvideGeneratorClient(cfg *config.Config) *client.GeneratorClient {
	return client.NewGeneratorClient(cfg.Generator.URL, cfg.Generator.Timeout)
}

// ProvideOrdersClient provides the order service client
func ProvideOrdersClient(cfg *config.Config) *client.OrdersClient {
	return client.NewOrdersClient(cfg.Checkout.OrdersURL, cfg.Checkout.Timeout)
}

// ProvideRegisterer provides the registry handler metrics are added to
func ProvideRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
