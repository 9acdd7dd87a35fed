package handlers

import (
	"context"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/Tai550/training-menu-platform/internal/repository"
	"github.com/Tai550/training-menu-platform/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type userProfileService interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpsertUserProfile(ctx context.Context, userID string, input repository.UserProfileInput) (*models.UserProfile, error)
}

type ProfileHandler struct {
	service  userProfileService
	validate *validator.Validate
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service, validate: validator.New()}
}

type updateUserProfileRequest struct {
	Bio          *string `json:"bio"`
	Height       *int    `json:"height" validate:"omitempty,gt=0,lte=300"`
	Weight       *int    `json:"weight" validate:"omitempty,gt=0,lte=500"`
	Age          *int    `json:"age" validate:"omitempty,gt=0,lte=130"`
	Gender       *string `json:"gender" validate:"omitempty,oneof=male female other"`
	ProfilePhoto *string `json:"profile_photo" validate:"omitempty,url"`
}

func (h *ProfileHandler) GetOwnProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.service.GetUserProfile(c.Context(), userID)
	if err != nil {
		return mapDomainError(c, err, "Profile not found", "Failed to fetch profile")
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *ProfileHandler) UpdateOwnProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateUserProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	profile, err := h.service.UpsertUserProfile(c.Context(), userID, repository.UserProfileInput{
		Bio:          req.Bio,
		Height:       req.Height,
		Weight:       req.Weight,
		Age:          req.Age,
		Gender:       req.Gender,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		return mapDomainError(c, err, "Profile not found", "Failed to save profile")
	}

	return c.JSON(fiber.Map{"profile": profile})
}
