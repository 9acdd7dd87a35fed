package handlers

import (
	"errors"

	"github.com/Tai550/training-menu-platform/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

func currentUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", errors.New("missing user id in context")
	}
	return userID, nil
}

// mapDomainError translates service-layer sentinels into HTTP responses.
// notFoundMsg names the resource for the 404 body; fallbackMsg covers
// everything unexpected.
func mapDomainError(c *fiber.Ctx, err error, notFoundMsg string, fallbackMsg string) error {
	switch {
	case errors.Is(err, services.ErrNotApprovedTrainer):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not an approved trainer"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Already proposed, edit instead"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMsg})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallbackMsg})
	}
}
