package orders

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/jewelkraft/internal/config"
	"github.com/tair/jewelkraft/internal/orders/delivery/http"
	"github.com/tair/jewelkraft/internal/orders/domain"
	"github.com/tair/jewelkraft/internal/orders/repository"
	"github.com/tair/jewelkraft/internal/orders/usecase/command"
	"github.com/tair/jewelkraft/kafka"
	"github.com/tair/jewelkraft/pkg/database"
	"github.com/tair/jewelkraft/pkg/logger"
)

// App is the assembled orders service
type App struct {
	Handler *http.OrderHandler
	DB      *gorm.DB
}

// ProvideDatabase opens the orders database and migrates the schema
func ProvideDatabase(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := repository.NewGormOrderRepository(db).AutoMigrate(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, func() { sqlDB.Close() }, nil
}

// ProvideOrderRepository provides the traced Postgres order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewTracingOrderRepository(repository.NewGormOrderRepository(db))
}

// ProvideEventPublisher connects to Kafka. Without brokers orders are stored
// but no event is emitted.
func ProvideEventPublisher(cfg *config.Config) (command.EventPublisher, func(), error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Logger.Warn().Msg("KAFKA_BROKERS not set, order events disabled")
		return nil, func() {}, nil
	}

	publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close Kafka publisher")
		}
	}
	return publisher, cleanup, nil
}

// ProvideRegisterer provides the registry handler metrics are added to
func ProvideRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
