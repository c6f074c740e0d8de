package handlers

import (
	"errors"
	"fmt"
	"log"

	"cms/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusOf maps each service error kind to its HTTP status. Unknown
// errors fall through to 500.
func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrUnauthenticated),
		errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrAccessDenied),
		errors.Is(err, services.ErrNotAuthorized),
		errors.Is(err, services.ErrPrivateLike):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrPostNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrAlreadyLiked),
		errors.Is(err, services.ErrNotLiked),
		errors.Is(err, services.ErrUnknownCategory),
		errors.Is(err, services.ErrUnknownSubCategory):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the JSON body for a failed operation. Internal
// errors are logged and hidden behind a generic message.
func respondError(c *fiber.Ctx, err error) error {
	status := statusOf(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("Internal error handling %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// respondValidationErrors writes a per-field error map for a failed
// struct validation.
func respondValidationErrors(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
