package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/Tai550/training-menu-platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type proposalStore interface {
	Create(ctx context.Context, input repository.CreateProposalInput) (*models.Proposal, error)
	GetByID(ctx context.Context, id string) (*models.Proposal, error)
	GetByTrainerAndConsultation(ctx context.Context, trainerID string, consultationID string) (*models.Proposal, error)
	ListByConsultation(ctx context.Context, consultationID string) ([]models.ProposalWithTrainer, error)
	Update(ctx context.Context, id string, input repository.UpdateProposalInput) (*models.Proposal, error)
}

type consultationReader interface {
	GetByID(ctx context.Context, id string) (*models.Consultation, error)
}

type userReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type ProposalService struct {
	proposalRepo     proposalStore
	consultationRepo consultationReader
	userRepo         userReader
}

func NewProposalService(
	proposalRepo *repository.ProposalRepository,
	consultationRepo *repository.ConsultationRepository,
	userRepo *repository.UserRepository,
) *ProposalService {
	return &ProposalService{
		proposalRepo:     proposalRepo,
		consultationRepo: consultationRepo,
		userRepo:         userRepo,
	}
}

type CreateProposalInput struct {
	ConsultationID string
	Title          string
	Content        string
	Program        []models.ProgramDay
	Duration       *string
	Frequency      *string
}

type UpdateProposalInput struct {
	Title     *string
	Content   *string
	Program   []models.ProgramDay
	Duration  *string
	Frequency *string
}

// Create submits a trainer's program proposal for a consultation. Only
// approved trainers may submit, and each trainer gets one proposal per
// consultation: a pre-check catches the common case and the unique index
// on (trainer_id, consultation_id) closes the race under concurrent
// submission.
func (s *ProposalService) Create(ctx context.Context, trainerID string, input CreateProposalInput) (*models.Proposal, error) {
	trainer, err := s.userRepo.GetByID(ctx, trainerID)
	if err != nil {
		// A token whose account no longer exists must not surface as a
		// missing consultation further down.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if !trainer.ApprovedTrainer() {
		return nil, ErrNotApprovedTrainer
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrInvalidInput
	}
	if err := validateProgram(input.Program); err != nil {
		return nil, err
	}

	if _, err := s.consultationRepo.GetByID(ctx, input.ConsultationID); err != nil {
		return nil, err
	}

	existing, err := s.proposalRepo.GetByTrainerAndConsultation(ctx, trainerID, input.ConsultationID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	proposal, err := s.proposalRepo.Create(ctx, repository.CreateProposalInput{
		ID:             uuid.NewString(),
		ConsultationID: input.ConsultationID,
		TrainerID:      trainerID,
		Title:          title,
		Content:        content,
		Program:        input.Program,
		Duration:       input.Duration,
		Frequency:      input.Frequency,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrConflict
		}
		return nil, err
	}
	return proposal, nil
}

// Update applies a partial edit to the trainer's own proposal. Fields left
// nil keep their stored values.
func (s *ProposalService) Update(ctx context.Context, trainerID string, proposalID string, input UpdateProposalInput) (*models.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.TrainerID != trainerID {
		return nil, ErrForbidden
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, ErrInvalidInput
	}
	if input.Content != nil && strings.TrimSpace(*input.Content) == "" {
		return nil, ErrInvalidInput
	}
	if input.Program != nil {
		if err := validateProgram(input.Program); err != nil {
			return nil, err
		}
	}

	return s.proposalRepo.Update(ctx, proposalID, repository.UpdateProposalInput{
		Title:     input.Title,
		Content:   input.Content,
		Program:   input.Program,
		Duration:  input.Duration,
		Frequency: input.Frequency,
	})
}

func (s *ProposalService) ListByConsultation(ctx context.Context, consultationID string) ([]models.ProposalWithTrainer, error) {
	return s.proposalRepo.ListByConsultation(ctx, consultationID)
}

func (s *ProposalService) Get(ctx context.Context, id string) (*models.Proposal, error) {
	return s.proposalRepo.GetByID(ctx, id)
}

// validateProgram checks the structural shape of a training program: a
// non-empty list of days, every exercise carrying a non-empty name, and at
// least one exercise somewhere in the program.
func validateProgram(program []models.ProgramDay) error {
	if len(program) == 0 {
		return ErrInvalidInput
	}
	hasExercise := false
	for _, day := range program {
		for _, exercise := range day.Exercises {
			if strings.TrimSpace(exercise.Name) == "" {
				return ErrInvalidInput
			}
			hasExercise = true
		}
	}
	if !hasExercise {
		return ErrInvalidInput
	}
	return nil
}
