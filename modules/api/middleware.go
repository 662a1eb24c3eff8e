package api

import (
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// HeaderRequestID carries the per-request correlation ID.
const HeaderRequestID = "X-Request-ID"

const localsRequestID = "request_id"

// RequestID assigns every request an ID, reusing an inbound X-Request-ID if present.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := utils.CopyString(c.Get(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(localsRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// requestLogger returns logger tagged with the request's ID.
func requestLogger(c *fiber.Ctx, logger types.Logger) types.Logger {
	if id, ok := c.Locals(localsRequestID).(string); ok && id != "" {
		return logger.With("request_id", id)
	}
	return logger
}
