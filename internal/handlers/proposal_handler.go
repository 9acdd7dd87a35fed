package handlers

import (
	"context"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/Tai550/training-menu-platform/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type proposalApplicationService interface {
	Create(ctx context.Context, trainerID string, input services.CreateProposalInput) (*models.Proposal, error)
	Update(ctx context.Context, trainerID string, proposalID string, input services.UpdateProposalInput) (*models.Proposal, error)
	ListByConsultation(ctx context.Context, consultationID string) ([]models.ProposalWithTrainer, error)
	Get(ctx context.Context, id string) (*models.Proposal, error)
}

type ProposalHandler struct {
	service  proposalApplicationService
	validate *validator.Validate
}

func NewProposalHandler(service *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: service, validate: validator.New()}
}

type createProposalRequest struct {
	ConsultationID string              `json:"consultation_id" validate:"required"`
	Title          string              `json:"title" validate:"required"`
	Content        string              `json:"content" validate:"required"`
	Program        []models.ProgramDay `json:"program" validate:"required"`
	Duration       *string             `json:"duration"`
	Frequency      *string             `json:"frequency"`
}

type updateProposalRequest struct {
	Title     *string             `json:"title"`
	Content   *string             `json:"content"`
	Program   []models.ProgramDay `json:"program"`
	Duration  *string             `json:"duration"`
	Frequency *string             `json:"frequency"`
}

func (h *ProposalHandler) ListByConsultation(c *fiber.Ctx) error {
	proposals, err := h.service.ListByConsultation(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "Consultation not found", "Failed to list proposals")
	}

	return c.JSON(fiber.Map{"proposals": proposals})
}

func (h *ProposalHandler) Get(c *fiber.Ctx) error {
	proposal, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "Proposal not found", "Failed to fetch proposal")
	}

	return c.JSON(fiber.Map{"proposal": proposal})
}

func (h *ProposalHandler) Create(c *fiber.Ctx) error {
	trainerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	proposal, err := h.service.Create(c.Context(), trainerID, services.CreateProposalInput{
		ConsultationID: req.ConsultationID,
		Title:          req.Title,
		Content:        req.Content,
		Program:        req.Program,
		Duration:       req.Duration,
		Frequency:      req.Frequency,
	})
	if err != nil {
		return mapDomainError(c, err, "Consultation not found", "Failed to create proposal")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"proposal": proposal})
}

func (h *ProposalHandler) Update(c *fiber.Ctx) error {
	trainerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	proposal, err := h.service.Update(c.Context(), trainerID, c.Params("id"), services.UpdateProposalInput{
		Title:     req.Title,
		Content:   req.Content,
		Program:   req.Program,
		Duration:  req.Duration,
		Frequency: req.Frequency,
	})
	if err != nil {
		return mapDomainError(c, err, "Proposal not found", "Failed to update proposal")
	}

	return c.JSON(fiber.Map{"proposal": proposal})
}
