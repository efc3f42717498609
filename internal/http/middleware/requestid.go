package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is where the request ID is stored in Fiber's context locals.
	RequestIDLocalKey = "request_id"
)

// maxRequestIDLen caps caller-supplied IDs so they cannot bloat logs.
const maxRequestIDLen = 128

// RequestID ensures every request carries an ID. An incoming X-Request-ID is
// reused when present and reasonably sized, otherwise a UUID is generated. The
// value is stored in locals under RequestIDLocalKey and echoed on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
