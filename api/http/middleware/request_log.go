package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/prepai/pkg/logger"
	"github.com/artem13815/prepai/pkg/security/jwt"
)

// RequestLogger logs one line per request with status, latency and ids.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		path := c.Route().Path
		if path == "" || path == "/" {
			path = c.Path()
		}
		fields := []any{
			"method", c.Method(),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if rid := c.GetRespHeader(fiber.HeaderXRequestID); rid != "" {
			fields = append(fields, "request_id", rid)
		}
		if id, ok := jwt.UserID(c); ok {
			fields = append(fields, "user_id", id.String())
		}
		if err != nil {
			fields = append(fields, "error", err)
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
		return err
	}
}
