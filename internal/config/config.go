// Package config loads service configuration from an optional YAML file
// followed by environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tair/jewelkraft/pkg/database"
)

// Config holds configuration shared by all JewelKraft services
type Config struct {
	ServiceName  string   `yaml:"service_name"`
	Environment  string   `yaml:"environment"`
	LogLevel     string   `yaml:"log_level"`
	HTTPPort     string   `yaml:"http_port"`
	JaegerURL    string   `yaml:"jaeger_endpoint"`
	TracingOn    bool     `yaml:"tracing_enabled"`
	AllowOrigins []string `yaml:"allow_origins"`

	Database  database.Config `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Store     StoreConfig     `yaml:"store"`
	Generator GeneratorConfig `yaml:"generator"`
	Checkout  CheckoutConfig  `yaml:"checkout"`
}

// RedisConfig configures the optional Redis connection. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig configures event publishing and consumption. No brokers disables Kafka.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	GroupID string   `yaml:"group_id"`
}

// StoreConfig selects where the storefront keeps its snapshot.
type StoreConfig struct {
	Backend     string `yaml:"backend"` // log, file, redis, postgres
	FixturePath string `yaml:"fixture_path"`
	Name        string `yaml:"name"`
}

// GeneratorConfig configures the image generator service and its clients.
type GeneratorConfig struct {
	URL        string        `yaml:"url"`
	APIKey     string        `yaml:"api_key"`
	Model      string        `yaml:"model"`
	ImageDir   string        `yaml:"image_dir"`
	Variations int           `yaml:"variations"`
	Timeout    time.Duration `yaml:"timeout"`
	CacheTTL   time.Duration `yaml:"cache_ttl"`
	RateLimit  int           `yaml:"rate_limit"`
}

// CheckoutConfig configures order submission from the storefront.
type CheckoutConfig struct {
	OrdersURL string        `yaml:"orders_url"`
	UnitPrice float64       `yaml:"unit_price"`
	Currency  string        `yaml:"currency"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when nothing is overridden
func Default(serviceName, httpPort string) *Config {
	return &Config{
		ServiceName:  serviceName,
		Environment:  "development",
		LogLevel:     "info",
		HTTPPort:     httpPort,
		AllowOrigins: []string{"http://localhost:5173"},
		Database: database.Config{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			DBName:   "jewelkraft",
			SSLMode:  "disable",
		},
		Kafka: KafkaConfig{GroupID: serviceName},
		Store: StoreConfig{
			Backend: "log",
			Name:    "default",
		},
		Generator: GeneratorConfig{
			URL:        "http://localhost:5000",
			Model:      "imagen-3.0-generate-002",
			ImageDir:   "./data/images",
			Variations: 5,
			Timeout:    2 * time.Minute,
			CacheTTL:   24 * time.Hour,
			RateLimit:  20,
		},
		Checkout: CheckoutConfig{
			OrdersURL: "http://localhost:8083",
			UnitPrice: 2499,
			Currency:  "INR",
			Timeout:   30 * time.Second,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if it
// exists), then environment variables.
func Load(path, serviceName, httpPort string) (*Config, error) {
	cfg := Default(serviceName, httpPort)

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// IsDevelopment reports whether pretty console logging should be used
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) applyEnvOverrides() {
	c.ServiceName = getEnv("OTEL_SERVICE_NAME", c.ServiceName)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.HTTPPort = getEnv("HTTP_PORT", c.HTTPPort)
	c.JaegerURL = getEnv("JAEGER_ENDPOINT", c.JaegerURL)
	c.TracingOn = getEnvBool("TRACING_ENABLED", c.TracingOn)
	c.AllowOrigins = getEnvList("CORS_ALLOW_ORIGINS", c.AllowOrigins)

	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.DBName = getEnv("DB_NAME", c.Database.DBName)
	c.Database.SSLMode = getEnv("DB_SSLMODE", c.Database.SSLMode)

	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)

	c.Kafka.Brokers = getEnvList("KAFKA_BROKERS", c.Kafka.Brokers)
	c.Kafka.GroupID = getEnv("KAFKA_GROUP_ID", c.Kafka.GroupID)

	c.Store.Backend = getEnv("STORE_BACKEND", c.Store.Backend)
	c.Store.FixturePath = getEnv("STORE_FIXTURE_PATH", c.Store.FixturePath)
	c.Store.Name = getEnv("STORE_NAME", c.Store.Name)

	c.Generator.URL = getEnv("GENERATOR_URL", c.Generator.URL)
	c.Generator.APIKey = getEnv("GENAI_API_KEY", c.Generator.APIKey)
	c.Generator.Model = getEnv("GENAI_IMAGE_MODEL", c.Generator.Model)
	c.Generator.ImageDir = getEnv("IMAGE_DIR", c.Generator.ImageDir)
	c.Generator.Variations = getEnvInt("GENERATOR_VARIATIONS", c.Generator.Variations)
	c.Generator.Timeout = getEnvDuration("GENERATOR_TIMEOUT", c.Generator.Timeout)
	c.Generator.CacheTTL = getEnvDuration("GENERATOR_CACHE_TTL", c.Generator.CacheTTL)
	c.Generator.RateLimit = getEnvInt("GENERATOR_RATE_LIMIT", c.Generator.RateLimit)

	c.Checkout.OrdersURL = getEnv("ORDERS_URL", c.Checkout.OrdersURL)
	c.Checkout.UnitPrice = getEnvFloat("CHECKOUT_UNIT_PRICE", c.Checkout.UnitPrice)
	c.Checkout.Currency = getEnv("CHECKOUT_CURRENCY", c.Checkout.Currency)
	c.Checkout.Timeout = getEnvDuration("CHECKOUT_TIMEOUT", c.Checkout.Timeout)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
