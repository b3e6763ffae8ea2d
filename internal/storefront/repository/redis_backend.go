package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tair/jewelkraft/internal/storefront/domain"
)

// RedisBackend keeps the whole snapshot under a single key
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend creates a backend storing under "storefront:snapshot:<name>"
func NewRedisBackend(client *redis.Client, name string) *RedisBackend {
	return &RedisBackend{
		client: client,
		key:    fmt.Sprintf("storefront:snapshot:%s", name),
	}
}

func (b *RedisBackend) Name() string { return "redis" }

func (b *RedisBackend) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", b.key, err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", b.key, err)
	}
	return &snapshot, nil
}

func (b *RedisBackend) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return b.client.Set(ctx, b.key, data, 0).Err()
}
