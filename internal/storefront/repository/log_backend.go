package repository

import (
	"context"

	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/pkg/logger"
)

// LogBackend keeps nothing durable: Save logs the snapshot and Load starts empty
type LogBackend struct{}

// NewLogBackend creates a log-only snapshot backend
func NewLogBackend() *LogBackend {
	return &LogBackend{}
}

func (LogBackend) Name() string { return "log" }

func (LogBackend) Load(ctx context.Context) (*domain.Snapshot, error) {
	return &domain.Snapshot{}, nil
}

func (LogBackend) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	logger.Debug(ctx).
		Interface("snapshot", snapshot).
		Msg("Data saved")
	return nil
}
