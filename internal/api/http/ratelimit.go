package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/storefront-support/pkg/util"
)

const chatRateKeyPrefix = "chat_rate"

// ChatRateLimit enforces a fixed per-minute window per client IP on the chat
// endpoint. A limiter that cannot reach Redis never blocks the request.
func ChatRateLimit(client *redis.Client, perMinute int, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if client == nil || perMinute <= 0 {
			return c.Next()
		}

		window := time.Now().Unix() / 60
		key := fmt.Sprintf("%s:%s:%d", chatRateKeyPrefix, c.IP(), window)

		count, err := client.Incr(c.Context(), key).Result()
		if err != nil {
			logger.Warn("chat rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			client.Expire(c.Context(), key, time.Minute)
		}
		if count > int64(perMinute) {
			return apperrors.NewDomainError("RATE_LIMITED", "Too many requests", fiber.StatusTooManyRequests, nil)
		}
		return c.Next()
	}
}
