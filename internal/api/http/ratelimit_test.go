package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/config"
)

// Without a Redis client the limiter must be a no-op, not a blocker.
func TestLoginRateLimiterDisabledWithoutRedis(t *testing.T) {
	limiter := NewLoginRateLimiter(nil, config.RateLimitConfig{
		LoginAttempts: 10,
		LoginWindow:   time.Minute,
	}, zap.NewNop())

	app := fiber.New()
	app.Post("/auth/login", limiter.Handle, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})

	for i := 0; i < 25; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/auth/login", nil))
		if err != nil {
			t.Fatalf("app.Test error = %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("attempt %d: status = %d, want 200", i, resp.StatusCode)
		}
	}
}

func TestLoginRateLimiterDisabledWithZeroLimit(t *testing.T) {
	limiter := NewLoginRateLimiter(nil, config.RateLimitConfig{}, zap.NewNop())

	app := fiber.New()
	app.Post("/auth/login", limiter.Handle, func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	if err != nil {
		t.Fatalf("app.Test error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
