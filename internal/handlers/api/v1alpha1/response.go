package v1alpha1

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/berkingurcan/siglife-api/internal/errors"
)

// Response is the JSON envelope every endpoint returns
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    data,
	})
}

// ErrorHandler maps coded service errors to HTTP responses. Wire it into
// fiber.Config so handlers can just return errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if fiberErr, ok := err.(*fiber.Error); ok {
		status = fiberErr.Code
	}

	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"code", code.String(),
			"error", err,
		)
	}

	return c.Status(status).JSON(Response{
		Code:    status,
		Message: errors.GetMessage(err),
	})
}
