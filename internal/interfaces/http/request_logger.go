package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/UDDITwork/FINREP-sub006/pkg/logger"
)

// RequestLogger registra una línea por petición. Va después de requestid para
// poder correlacionar con los logs de error.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("http")
		return err
	}
}
