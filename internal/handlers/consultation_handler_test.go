package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/Tai550/training-menu-platform/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type stubConsultationService struct {
	createResult     *models.Consultation
	createErr        error
	listResult       []models.Consultation
	listErr          error
	getResult        *models.Consultation
	getErr           error
	selectResult     *models.Consultation
	selectErr        error
	lastUserID       string
	lastCreate       services.CreateConsultationInput
	lastStatus       *string
	lastConsultation string
	lastProposal     string
}

func (s *stubConsultationService) Create(_ context.Context, userID string, input services.CreateConsultationInput) (*models.Consultation, error) {
	s.lastUserID = userID
	s.lastCreate = input
	return s.createResult, s.createErr
}

func (s *stubConsultationService) List(_ context.Context, status *string) ([]models.Consultation, error) {
	s.lastStatus = status
	return s.listResult, s.listErr
}

func (s *stubConsultationService) Get(_ context.Context, _ string) (*models.Consultation, error) {
	return s.getResult, s.getErr
}

func (s *stubConsultationService) SelectBestAnswer(_ context.Context, userID string, consultationID string, proposalID string) (*models.Consultation, error) {
	s.lastUserID = userID
	s.lastConsultation = consultationID
	s.lastProposal = proposalID
	return s.selectResult, s.selectErr
}

func newAuthedApp(userID, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	})
	return app
}

func TestCreateConsultationReturnsCreated(t *testing.T) {
	service := &stubConsultationService{
		createResult: &models.Consultation{ID: "c1", Status: models.ConsultationOpen},
	}
	handler := &ConsultationHandler{service: service, validate: validator.New()}

	app := newAuthedApp("u1", "user")
	app.Post("/api/v1/consultations", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/consultations", strings.NewReader(`{
		"title": "Lose 5kg",
		"description": "Need a sustainable plan",
		"tags": ["diet", "beginner"],
		"amount": 3000
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastUserID != "u1" {
		t.Fatalf("expected caller u1, got %q", service.lastUserID)
	}
	if service.lastCreate.Title != "Lose 5kg" {
		t.Fatalf("unexpected title %q", service.lastCreate.Title)
	}
	if len(service.lastCreate.Tags) != 2 || service.lastCreate.Tags[0] != "diet" {
		t.Fatalf("unexpected tags %v", service.lastCreate.Tags)
	}
}

func TestCreateConsultationRejectsMissingTitle(t *testing.T) {
	service := &stubConsultationService{}
	handler := &ConsultationHandler{service: service, validate: validator.New()}

	app := newAuthedApp("u1", "user")
	app.Post("/api/v1/consultations", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/consultations", strings.NewReader(`{"description": "no title"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestListConsultationsPassesStatusFilter(t *testing.T) {
	service := &stubConsultationService{listResult: []models.Consultation{{ID: "c1"}}}
	handler := &ConsultationHandler{service: service, validate: validator.New()}

	app := fiber.New()
	app.Get("/api/consultations", handler.List)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/consultations?status=open", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastStatus == nil || *service.lastStatus != "open" {
		t.Fatalf("expected open filter, got %v", service.lastStatus)
	}

	var body struct {
		Consultations []models.Consultation `json:"consultations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Consultations) != 1 || body.Consultations[0].ID != "c1" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestGetConsultationNotFound(t *testing.T) {
	service := &stubConsultationService{getErr: pgx.ErrNoRows}
	handler := &ConsultationHandler{service: service, validate: validator.New()}

	app := fiber.New()
	app.Get("/api/consultations/:id", handler.Get)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/consultations/missing", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestSelectBestAnswerMapsForbidden(t *testing.T) {
	service := &stubConsultationService{selectErr: services.ErrForbidden}
	handler := &ConsultationHandler{service: service, validate: validator.New()}

	app := newAuthedApp("intruder", "user")
	app.Post("/api/v1/consultations/:id/best-answer", handler.SelectBestAnswer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/consultations/c1/best-answer", strings.NewReader(`{"proposal_id": "p1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if service.lastConsultation != "c1" || service.lastProposal != "p1" {
		t.Fatalf("unexpected ids %q %q", service.lastConsultation, service.lastProposal)
	}
}
