package middleware

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestId tags every request so storage errors reported to sentry can be
// matched to a response.
func RequestId(c *fiber.Ctx) error {
	requestId := c.Get(fiber.HeaderXRequestID, "")
	if requestId == "" {
		requestId = uuid.NewString()
	}

	c.Locals("requestId", requestId)
	c.Set(fiber.HeaderXRequestID, requestId)
	return c.Next()
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
