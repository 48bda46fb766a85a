package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader is the header used to correlate requests across log lines.
const RequestIDHeader = "X-Request-ID"

// RequestID propagates the client-supplied request ID or mints a new one.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)
		c.Locals(RequestIDHeader, requestID)
		return c.Next()
	}
}
