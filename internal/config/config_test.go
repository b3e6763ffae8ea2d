package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "storefront", "8081")
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.ServiceName)
	assert.Equal(t, "8081", cfg.HTTPPort)
	assert.Equal(t, "log", cfg.Store.Backend)
	assert.Equal(t, 5, cfg.Generator.Variations)
	assert.Equal(t, 2499.0, cfg.Checkout.UnitPrice)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlDoc := `
environment: production
store:
  backend: file
  fixture_path: /var/lib/jewelkraft/storage.json
generator:
  timeout: 45s
checkout:
  unit_price: 1999
kafka:
  brokers: [kafka-1:9092]
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092")
	t.Setenv("CHECKOUT_UNIT_PRICE", "not-a-number")

	cfg, err := Load(path, "storefront", "8081")
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "/var/lib/jewelkraft/storage.json", cfg.Store.FixturePath)
	assert.Equal(t, 45*time.Second, cfg.Generator.Timeout)
	assert.Equal(t, 1999.0, cfg.Checkout.UnitPrice)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: [unterminated"), 0o644))

	_, err := Load(path, "orders", "8083")
	assert.Error(t, err)
}
