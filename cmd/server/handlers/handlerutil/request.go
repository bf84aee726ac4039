package handlerutil

import (
	"strconv"

	"notes-backend/cmd/server/handlers/httperr"
	"notes-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ParseAndValidateBody parses the request body and validates it
func ParseAndValidateBody(c *fiber.Ctx, req any, validate *validator.Validate, handlerName string) error {
	if err := c.BodyParser(req); err != nil {
		logger.L().Warn("failed to parse request body", "handler", handlerName, "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	if err := validate.Struct(req); err != nil {
		logger.L().Warn("request validation failed", "handler", handlerName, "error", err)
		return httperr.InvalidInput(err)
	}

	return nil
}

// ParseAndValidateQuery parses query parameters and validates them
func ParseAndValidateQuery(c *fiber.Ctx, req any, validate *validator.Validate, handlerName string) error {
	if err := c.QueryParser(req); err != nil {
		logger.L().Warn("failed to parse query params", "handler", handlerName, "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	if err := validate.Struct(req); err != nil {
		logger.L().Warn("query validation failed", "handler", handlerName, "error", err)
		return httperr.InvalidInput(err)
	}

	return nil
}

// ExtractNoteID parses the id path parameter. Anything that is not a
// positive integer cannot reference a stored note and maps to 404.
func ExtractNoteID(c *fiber.Ctx, handlerName string, notFoundErr error) (int64, error) {
	idStr := c.Params("id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		logger.L().Warn("invalid note ID parameter", "handler", handlerName, "id", idStr, "path", c.Path())
		return 0, httperr.NotFound(notFoundErr)
	}

	return id, nil
}
