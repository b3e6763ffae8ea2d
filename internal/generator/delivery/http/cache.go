package http

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/tair/jewelkraft/pkg/logger"
)

// PromptCacheMiddleware answers repeated prompts from Redis. Only successful
// generations are cached; a nil client disables the cache.
func PromptCacheMiddleware(redisClient *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil || ttl <= 0 {
			return c.Next()
		}

		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := c.BodyParser(&req); err != nil || req.Prompt == "" {
			return c.Next()
		}

		ctx := c.UserContext()
		cacheKey := promptCacheKey(req.Prompt)

		cached, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil && len(cached) > 0 {
			logger.Debug(ctx).
				Str("cache_key", cacheKey).
				Msg("Cache hit")
			c.Set("X-Cache", "HIT")
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(cached)
		}

		err = c.Next()

		if c.Response().StatusCode() == fiber.StatusOK {
			body := append([]byte(nil), c.Response().Body()...)
			if setErr := redisClient.Set(ctx, cacheKey, body, ttl).Err(); setErr != nil {
				logger.Warn(ctx).
					Err(setErr).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
			} else {
				logger.Debug(ctx).
					Str("cache_key", cacheKey).
					Dur("ttl", ttl).
					Int("size", len(body)).
					Msg("Response cached")
			}
			c.Set("X-Cache", "MISS")
		}

		return err
	}
}

// promptCacheKey hashes the normalised prompt
func promptCacheKey(prompt string) string {
	normalised := strings.ToLower(strings.Join(strings.Fields(prompt), " "))
	hash := sha256.Sum256([]byte(normalised))
	return "generator:cache:" + hex.EncodeToString(hash[:])
}
