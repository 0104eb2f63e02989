package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/arvindpj/treknest/internal/services"
)

// ok wraps a payload in the success envelope.
func ok(c *fiber.Ctx, payload fiber.Map) error {
	payload["success"] = true
	return c.JSON(payload)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": msg,
	})
}

// fail maps a service error onto the HTTP error taxonomy. Unexpected errors
// become a generic 500; the detail only goes to the log.
func fail(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"error":   verr.Fields,
		})
	case errors.Is(err, services.ErrDuplicateEmail):
		return status(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return status(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return status(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrTooManyFiles):
		return status(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUpstream):
		return status(c, fiber.StatusBadGateway, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status(c, fiber.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		zap.L().Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return status(c, fiber.StatusInternalServerError, "something went wrong")
	}
}

func status(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": msg,
	})
}

// intFromBody pulls an integer id out of a loosely-typed JSON body. Numbers
// arrive as float64; lenient clients also send ids as strings.
func intFromBody(fields map[string]interface{}, key string) (int, bool) {
	switch v := fields[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
		return 0, false
	default:
		return 0, false
	}
}
