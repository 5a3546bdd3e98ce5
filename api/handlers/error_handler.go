package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/to-dy/pgapex-builder/api/client"
)

// ErrorHandler answers every error that escapes a handler with an error
// envelope. Failures to talk to the pgapex API become 502s.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	var statusErr *client.StatusError
	var transportErr *client.TransportError

	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	case errors.As(err, &statusErr), errors.As(err, &transportErr):
		code = fiber.StatusBadGateway
	}

	if code >= fiber.StatusInternalServerError {
		log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "status", code, "error", err)
	} else {
		log.Debugw("request rejected", "method", c.Method(), "path", c.Path(), "status", code, "error", err)
	}

	// upstream addresses and internal messages stay in the log
	detail := utils.StatusMessage(code)
	if fiberErr != nil {
		detail = err.Error()
	}

	return c.Status(code).JSON(ApiErrorResponse{
		Errors: client.Errors{{
			Status: code,
			Title:  utils.StatusMessage(code),
			Detail: detail,
		}},
	})
}
