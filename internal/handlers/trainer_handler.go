package handlers

import (
	"context"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/Tai550/training-menu-platform/internal/repository"
	"github.com/Tai550/training-menu-platform/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type trainerProfileService interface {
	GetTrainerProfile(ctx context.Context, userID string) (*models.TrainerProfile, error)
	UpsertTrainerProfile(ctx context.Context, userID string, input repository.TrainerProfileInput) (*models.TrainerProfile, error)
	UpdateUserType(ctx context.Context, userID string, userType string) (*models.User, error)
}

type TrainerHandler struct {
	service  trainerProfileService
	validate *validator.Validate
}

func NewTrainerHandler(service *services.ProfileService) *TrainerHandler {
	return &TrainerHandler{service: service, validate: validator.New()}
}

type updateTrainerProfileRequest struct {
	Bio            *string                `json:"bio"`
	Specialties    []string               `json:"specialties"`
	Certifications []models.Certification `json:"certifications"`
	SocialLinks    map[string]string      `json:"social_links" validate:"omitempty,dive,url"`
	ProfilePhoto   *string                `json:"profile_photo" validate:"omitempty,url"`
}

type updateUserTypeRequest struct {
	UserType string `json:"user_type" validate:"required,oneof=customer trainer"`
}

// GetProfile is a public read; trainer pages are visible without login.
func (h *TrainerHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.service.GetTrainerProfile(c.Context(), c.Params("userId"))
	if err != nil {
		return mapDomainError(c, err, "Trainer profile not found", "Failed to fetch trainer profile")
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *TrainerHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateTrainerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	profile, err := h.service.UpsertTrainerProfile(c.Context(), userID, repository.TrainerProfileInput{
		Bio:            req.Bio,
		Specialties:    req.Specialties,
		Certifications: req.Certifications,
		SocialLinks:    req.SocialLinks,
		ProfilePhoto:   req.ProfilePhoto,
	})
	if err != nil {
		return mapDomainError(c, err, "Trainer profile not found", "Failed to save trainer profile")
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *TrainerHandler) UpdateUserType(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateUserTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	user, err := h.service.UpdateUserType(c.Context(), userID, req.UserType)
	if err != nil {
		return mapDomainError(c, err, "User not found", "Failed to update user type")
	}

	return c.JSON(fiber.Map{"user": user})
}
