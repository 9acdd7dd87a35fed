package handlers

import (
	"context"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/Tai550/training-menu-platform/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type adminApplicationService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListPendingTrainers(ctx context.Context) ([]models.User, error)
	ApproveTrainer(ctx context.Context, userID string) (*models.User, error)
	RevokeTrainer(ctx context.Context, userID string) (*models.User, error)
	ChangeUserType(ctx context.Context, userID string, userType string) (*models.User, error)
}

// AdminHandler assumes the AdminRequired middleware already vetted the
// caller's role.
type AdminHandler struct {
	service  adminApplicationService
	validate *validator.Validate
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service, validate: validator.New()}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		return mapDomainError(c, err, "User not found", "Failed to list users")
	}

	return c.JSON(fiber.Map{"users": users})
}

func (h *AdminHandler) ListPendingTrainers(c *fiber.Ctx) error {
	trainers, err := h.service.ListPendingTrainers(c.Context())
	if err != nil {
		return mapDomainError(c, err, "User not found", "Failed to list trainers")
	}

	return c.JSON(fiber.Map{"trainers": trainers})
}

func (h *AdminHandler) ApproveTrainer(c *fiber.Ctx) error {
	user, err := h.service.ApproveTrainer(c.Context(), c.Params("userId"))
	if err != nil {
		return mapDomainError(c, err, "User not found", "Failed to approve trainer")
	}

	return c.JSON(fiber.Map{"user": user})
}

func (h *AdminHandler) RevokeTrainer(c *fiber.Ctx) error {
	user, err := h.service.RevokeTrainer(c.Context(), c.Params("userId"))
	if err != nil {
		return mapDomainError(c, err, "User not found", "Failed to revoke trainer")
	}

	return c.JSON(fiber.Map{"user": user})
}

func (h *AdminHandler) ChangeUserType(c *fiber.Ctx) error {
	var req updateUserTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	user, err := h.service.ChangeUserType(c.Context(), c.Params("userId"), req.UserType)
	if err != nil {
		return mapDomainError(c, err, "User not found", "Failed to change user type")
	}

	return c.JSON(fiber.Map{"user": user})
}
