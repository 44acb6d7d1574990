package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const userIDLocal = "userID"

// RequireUser reads the authenticated user id that the upstream
// authentication layer puts in header.
func RequireUser(header string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(header)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authenticated user id")
		}

		c.Locals(userIDLocal, userID)
		return c.Next()
	}
}

func currentUserID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(userIDLocal).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// RequestLogger logs one line per request. Errors are rendered here so the
// logged status is the one sent.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		event := log.Info()
		if status >= fiber.StatusInternalServerError {
			event = log.Error()
		} else if status >= fiber.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Str("user_id", userIDString(c)).
			Msg("Request processed")

		return nil
	}
}

func userIDString(c *fiber.Ctx) string {
	if id := currentUserID(c); id != uuid.Nil {
		return id.String()
	}
	return ""
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name+" format")
	}
	return id, nil
}
