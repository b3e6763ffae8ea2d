package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func newLimitedApp(limiter *RateLimiter) *fiber.App {
	app := fiber.New()
	app.Use(limiter.Middleware())
	app.Post("/api/generate", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func post(t *testing.T, app *fiber.App, body string) *fiberResponse {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return &fiberResponse{
		status:    resp.StatusCode,
		remaining: resp.Header.Get("X-RateLimit-Remaining"),
		cache:     resp.Header.Get("X-Cache"),
	}
}

type fiberResponse struct {
	status    int
	remaining string
	cache     string
}

func TestCheckLimit_SlidingWindow(t *testing.T) {
	client, mr := newMiniredisClient(t)
	limiter := NewRateLimiter(client, 2, time.Minute)
	ctx := context.Background()

	allowed, remaining, reset, err := limiter.checkLimit(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)
	assert.WithinDuration(t, time.Now().Add(time.Minute), reset, 5*time.Second)

	allowed, remaining, _, err = limiter.checkLimit(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, remaining, _, err = limiter.checkLimit(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	// other clients have their own window
	allowed, _, _, err = limiter.checkLimit(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	assert.Greater(t, mr.TTL("generator:ratelimit:10.0.0.1"), time.Minute)
}

func TestCheckLimit_ExpiredEntriesLeaveWindow(t *testing.T) {
	client, mr := newMiniredisClient(t)
	limiter := NewRateLimiter(client, 1, time.Minute)
	ctx := context.Background()

	stale := float64(time.Now().Add(-2 * time.Minute).UnixNano())
	_, err := mr.ZAdd("generator:ratelimit:10.0.0.1", stale, "old")
	require.NoError(t, err)

	allowed, _, _, err := limiter.checkLimit(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	client, _ := newMiniredisClient(t)
	app := newLimitedApp(NewRateLimiter(client, 2, time.Minute))

	first := post(t, app, `{"prompt":"ring"}`)
	assert.Equal(t, fiber.StatusOK, first.status)
	assert.Equal(t, "1", first.remaining)

	assert.Equal(t, fiber.StatusOK, post(t, app, `{"prompt":"ring"}`).status)

	third := post(t, app, `{"prompt":"ring"}`)
	assert.Equal(t, fiber.StatusTooManyRequests, third.status)
	assert.Equal(t, "0", third.remaining)
}

func TestRateLimiter_RedisErrorLetsRequestThrough(t *testing.T) {
	client, mr := newMiniredisClient(t)
	app := newLimitedApp(NewRateLimiter(client, 1, time.Minute))
	mr.SetError("READONLY replica")

	for i := 0; i < 3; i++ {
		resp := post(t, app, `{"prompt":"ring"}`)
		assert.Equal(t, fiber.StatusOK, resp.status)
		assert.Empty(t, resp.remaining)
	}
}

func TestPromptCache_HitsNormalisedPrompt(t *testing.T) {
	client, mr := newMiniredisClient(t)
	calls := 0
	app := fiber.New()
	app.Use(PromptCacheMiddleware(client, time.Hour))
	app.Post("/api/generate", func(c *fiber.Ctx) error {
		calls++
		return c.JSON(fiber.Map{"success": true, "images": []string{"/images/1.png"}})
	})

	miss := post(t, app, `{"prompt":"Rose  Gold Ring"}`)
	assert.Equal(t, fiber.StatusOK, miss.status)
	assert.Equal(t, "MISS", miss.cache)
	assert.True(t, mr.Exists(promptCacheKey("rose gold ring")))
	assert.Equal(t, time.Hour, mr.TTL(promptCacheKey("rose gold ring")))

	hit := post(t, app, `{"prompt":"rose gold ring"}`)
	assert.Equal(t, fiber.StatusOK, hit.status)
	assert.Equal(t, "HIT", hit.cache)
	assert.Equal(t, 1, calls)
}

func TestPromptCache_SkipsFailures(t *testing.T) {
	client, mr := newMiniredisClient(t)
	app := fiber.New()
	app.Use(PromptCacheMiddleware(client, time.Hour))
	app.Post("/api/generate", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	})

	resp := post(t, app, `{"prompt":"ring"}`)
	assert.Equal(t, fiber.StatusInternalServerError, resp.status)
	assert.Empty(t, resp.cache)
	assert.False(t, mr.Exists(promptCacheKey("ring")))
}
