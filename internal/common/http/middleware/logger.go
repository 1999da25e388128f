package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
)

func (m *AppMiddleware) Logger() fiber.Handler {
	var (
		once       sync.Once
		errHandler fiber.ErrorHandler
	)

	return func(c *fiber.Ctx) error {
		once.Do(func() {
			errHandler = c.App().Config().ErrorHandler
		})

		start := time.Now()

		err := c.Next()
		if err != nil {
			if err := errHandler(c, err); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		latency := time.Since(start)

		uctx := c.UserContext()
		statusCode := c.Response().StatusCode()

		fields := []log.Field{
			log.String("latency", latency.String()),
			log.String("method", c.Method()),
			log.String("path", c.Path()),
			log.Int("status", statusCode),
		}
		if statusCode < 200 || (statusCode >= 300 && statusCode < 500) || err != nil {
			if err != nil {
				fields = append(fields, log.Err(err))
			}
			log.Warn(uctx, "[HTTP.REQUEST]", fields...)
		} else if statusCode >= 500 {
			log.Error(uctx, "[HTTP.REQUEST]", fields...)
		} else {
			log.Info(uctx, "[HTTP.REQUEST]", fields...)
		}

		return nil
	}
}
