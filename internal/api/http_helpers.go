package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/scoring"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func fieldError(c *fiber.Ctx, field string, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
		"field": field,
	})
}

// scoringError shapes a *scoring.ValidationError into a 400 with field-level
// detail; anything else from the scorer is a programming error upstream.
func scoringError(c *fiber.Ctx, err error) error {
	var validation *scoring.ValidationError
	if errors.As(err, &validation) {
		return fieldError(c, validation.Field, validation.Reason)
	}
	return apiError(c, fiber.StatusBadRequest, "invalid input")
}

// storageError maps repository sentinels onto HTTP statuses. Unknown
// failures are logged and surface as 500 without detail.
func storageError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "record not found")
	case errors.Is(err, db.ErrConflict):
		return apiError(c, fiber.StatusConflict, "already exists")
	case errors.Is(err, db.ErrForeignKey):
		return apiError(c, fiber.StatusNotFound, "user not found")
	default:
		log.Printf("storage failure: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "storage failure")
	}
}
