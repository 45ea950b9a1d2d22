package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/config"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// LoginRateLimiter bounds login attempts per client IP over a fixed window,
// counted in Redis so the limit holds across replicas. Redis being down
// fails open: login availability beats attempt throttling.
type LoginRateLimiter struct {
	client *redis.Client
	cfg    config.RateLimitConfig
	logger *zap.Logger
}

// NewLoginRateLimiter builds the limiter. A nil client disables it.
func NewLoginRateLimiter(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) *LoginRateLimiter {
	return &LoginRateLimiter{client: client, cfg: cfg, logger: logger}
}

// Handle enforces the attempt limit on login routes.
func (l *LoginRateLimiter) Handle(c *fiber.Ctx) error {
	if l.client == nil || l.cfg.LoginAttempts <= 0 {
		return c.Next()
	}

	ctx := c.Context()
	key := fmt.Sprintf("login_attempts:%s", c.IP())

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("login rate limiter unavailable", zap.Error(err))
		return c.Next()
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.cfg.LoginWindow).Err(); err != nil {
			l.logger.Warn("login rate limiter expire failed", zap.Error(err))
		}
	}
	if count > int64(l.cfg.LoginAttempts) {
		return apperrors.NewTooManyRequests("too many login attempts")
	}
	return c.Next()
}
