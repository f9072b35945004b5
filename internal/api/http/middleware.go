package http

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-support/internal/observability"
	apperrors "github.com/spec-kit/storefront-support/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware converts any returned error into an HTTP status plus
// a {"detail": message} body.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err == nil {
				return
			}

			status := fiber.StatusInternalServerError
			message := "internal server error"
			code := "INTERNAL_ERROR"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
				message = fiberErr.Message
				code = "REQUEST_FAILED"
			} else {
				domainErr := apperrors.ToDomainError(err)
				status = domainErr.HTTPStatus
				message = domainErr.Message
				code = domainErr.Code
				if status >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
			}

			if metrics != nil {
				metrics.RecordError(c.Path(), c.Method(), code)
			}
			c.Status(status)
			_ = c.JSON(fiber.Map{"detail": message})
			err = nil
		}()
		return c.Next()
	}
}
