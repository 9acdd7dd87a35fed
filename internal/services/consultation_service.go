package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/Tai550/training-menu-platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("already proposed, edit instead")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotApprovedTrainer = errors.New("not an approved trainer")
)

// txBeginner is the slice of pgxpool.Pool the services need to open a
// transaction; tests substitute a stub.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type consultationStore interface {
	Create(ctx context.Context, input repository.CreateConsultationInput) (*models.Consultation, error)
	GetByID(ctx context.Context, id string) (*models.Consultation, error)
	List(ctx context.Context, status *string) ([]models.Consultation, error)
}

type proposalReader interface {
	GetByID(ctx context.Context, id string) (*models.Proposal, error)
}

type ConsultationService struct {
	db               txBeginner
	consultationRepo consultationStore
	proposalRepo     proposalReader
}

func NewConsultationService(
	db txBeginner,
	consultationRepo *repository.ConsultationRepository,
	proposalRepo *repository.ProposalRepository,
) *ConsultationService {
	return &ConsultationService{
		db:               db,
		consultationRepo: consultationRepo,
		proposalRepo:     proposalRepo,
	}
}

type CreateConsultationInput struct {
	Title        string
	Description  string
	Goals        *string
	CurrentLevel *string
	Tags         []string
	Amount       int
}

func (s *ConsultationService) Create(ctx context.Context, userID string, input CreateConsultationInput) (*models.Consultation, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, ErrInvalidInput
	}
	if input.Amount < 0 {
		return nil, ErrInvalidInput
	}

	return s.consultationRepo.Create(ctx, repository.CreateConsultationInput{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        title,
		Description:  description,
		Goals:        input.Goals,
		CurrentLevel: input.CurrentLevel,
		Tags:         input.Tags,
		Amount:       input.Amount,
	})
}

func (s *ConsultationService) List(ctx context.Context, status *string) ([]models.Consultation, error) {
	if status != nil && !models.ValidConsultationStatus(*status) {
		return nil, ErrInvalidInput
	}
	return s.consultationRepo.List(ctx, status)
}

func (s *ConsultationService) Get(ctx context.Context, id string) (*models.Consultation, error) {
	return s.consultationRepo.GetByID(ctx, id)
}

// SelectBestAnswer marks a proposal as the consultation's chosen answer.
// Only the consultation owner may call it; a missing consultation surfaces
// as ErrForbidden so callers cannot probe for ids they don't own. The
// consultation pointer and the proposal flag are written in one transaction,
// and any previously flagged proposal is cleared first, keeping at most one
// best answer per consultation. Repeating the call with the same proposal
// re-applies the same state.
func (s *ConsultationService) SelectBestAnswer(ctx context.Context, userID string, consultationID string, proposalID string) (*models.Consultation, error) {
	consultation, err := s.consultationRepo.GetByID(ctx, consultationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if consultation.UserID != userID {
		return nil, ErrForbidden
	}

	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.ConsultationID != consultationID {
		return nil, ErrInvalidInput
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txConsultationRepo := repository.NewConsultationRepository(tx)
	txProposalRepo := repository.NewProposalRepository(tx)

	if err := txProposalRepo.ClearBestAnswers(ctx, consultationID); err != nil {
		return nil, err
	}
	if _, err := txProposalRepo.MarkBestAnswer(ctx, proposalID); err != nil {
		return nil, err
	}
	updated, err := txConsultationRepo.SetBestAnswer(ctx, consultationID, proposalID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
