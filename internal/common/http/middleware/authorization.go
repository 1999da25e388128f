package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/fintechlabs/go-wallet-gate/internal/common/http"
)

func (m *AppMiddleware) InternalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// empty configured key disables the check, local and test runs
		if m.conf.SecretKey == "" {
			return c.Next()
		}

		secretKey := c.Get("X-Secret-Key")
		statusCode := fiber.StatusUnauthorized
		if secretKey == "" {
			return http.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "required secret key"))
		}

		if secretKey != m.conf.SecretKey {
			return http.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "invalid secret key"))
		}

		return c.Next()
	}
}
