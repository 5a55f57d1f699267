// Package httputil holds the request binding and error rendering shared by
// the fiber handlers.
package httputil

import (
	"errors"

	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/logger"
	"github.com/Brunera17/TCC/pkg/validator"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var errInvalidInput = errors.New("invalid input")

// Bind parses the JSON body into out and validates it. The returned error is
// safe to show to the client.
func Bind(c *fiber.Ctx, v *validator.Validator, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidInput
	}
	return v.Validate(out)
}

// BadRequest writes a 400 with err's message.
func BadRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// WriteError maps err to its status code. Unexpected errors are logged and
// reported without their message.
func WriteError(c *fiber.Ctx, err error) error {
	status := autherror.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Named("http").Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
