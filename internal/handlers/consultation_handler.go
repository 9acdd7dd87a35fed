package handlers

import (
	"context"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/Tai550/training-menu-platform/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type consultationApplicationService interface {
	Create(ctx context.Context, userID string, input services.CreateConsultationInput) (*models.Consultation, error)
	List(ctx context.Context, status *string) ([]models.Consultation, error)
	Get(ctx context.Context, id string) (*models.Consultation, error)
	SelectBestAnswer(ctx context.Context, userID string, consultationID string, proposalID string) (*models.Consultation, error)
}

type ConsultationHandler struct {
	service  consultationApplicationService
	validate *validator.Validate
}

func NewConsultationHandler(service *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service, validate: validator.New()}
}

type createConsultationRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Goals        *string  `json:"goals"`
	CurrentLevel *string  `json:"current_level"`
	Tags         []string `json:"tags"`
	Amount       int      `json:"amount" validate:"gte=0"`
}

type selectBestAnswerRequest struct {
	ProposalID string `json:"proposal_id" validate:"required"`
}

func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	var status *string
	if raw := c.Query("status"); raw != "" {
		status = &raw
	}

	consultations, err := h.service.List(c.Context(), status)
	if err != nil {
		return mapDomainError(c, err, "Consultation not found", "Failed to list consultations")
	}

	return c.JSON(fiber.Map{"consultations": consultations})
}

func (h *ConsultationHandler) Get(c *fiber.Ctx) error {
	consultation, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "Consultation not found", "Failed to fetch consultation")
	}

	return c.JSON(fiber.Map{"consultation": consultation})
}

func (h *ConsultationHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	consultation, err := h.service.Create(c.Context(), userID, services.CreateConsultationInput{
		Title:        req.Title,
		Description:  req.Description,
		Goals:        req.Goals,
		CurrentLevel: req.CurrentLevel,
		Tags:         req.Tags,
		Amount:       req.Amount,
	})
	if err != nil {
		return mapDomainError(c, err, "Consultation not found", "Failed to create consultation")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"consultation": consultation})
}

func (h *ConsultationHandler) SelectBestAnswer(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req selectBestAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	consultation, err := h.service.SelectBestAnswer(c.Context(), userID, c.Params("id"), req.ProposalID)
	if err != nil {
		return mapDomainError(c, err, "Proposal not found", "Failed to select best answer")
	}

	return c.JSON(fiber.Map{"consultation": consultation})
}
