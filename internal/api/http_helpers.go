package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// profileErrorStatus maps profile service errors onto HTTP status codes.
func profileErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidProfileName),
		errors.Is(err, services.ErrInvalidFirstCalendarDay),
		errors.Is(err, services.ErrInvalidYearBounds),
		errors.Is(err, services.ErrInvalidProfileLocale):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func profileErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrProfileLoadFailed):
		return "failed to load profile"
	case errors.Is(err, services.ErrProfileSaveFailed):
		return "failed to save profile"
	case errors.Is(err, services.ErrProfileDeleteFailed):
		return "failed to delete profile"
	default:
		return err.Error()
	}
}
