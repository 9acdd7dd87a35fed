package services

import (
	"context"
	"errors"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/Tai550/training-menu-platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type trainerProfileStore interface {
	Create(ctx context.Context, id string, userID string, input repository.TrainerProfileInput) (*models.TrainerProfile, error)
	GetByUserID(ctx context.Context, userID string) (*models.TrainerProfile, error)
	Update(ctx context.Context, userID string, input repository.TrainerProfileInput) (*models.TrainerProfile, error)
}

type userProfileStore interface {
	Create(ctx context.Context, id string, userID string, input repository.UserProfileInput) (*models.UserProfile, error)
	GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	Update(ctx context.Context, userID string, input repository.UserProfileInput) (*models.UserProfile, error)
}

type userTypeUpdater interface {
	UpdateUserType(ctx context.Context, userID string, userType string) (*models.User, error)
}

// ProfileService covers the trainer profile, the customer profile and the
// self-service customer/trainer toggle.
type ProfileService struct {
	trainerProfileRepo trainerProfileStore
	userProfileRepo    userProfileStore
	userRepo           userTypeUpdater
}

func NewProfileService(
	trainerProfileRepo *repository.TrainerProfileRepository,
	userProfileRepo *repository.UserProfileRepository,
	userRepo *repository.UserRepository,
) *ProfileService {
	return &ProfileService{
		trainerProfileRepo: trainerProfileRepo,
		userProfileRepo:    userProfileRepo,
		userRepo:           userRepo,
	}
}

func (s *ProfileService) GetTrainerProfile(ctx context.Context, userID string) (*models.TrainerProfile, error) {
	return s.trainerProfileRepo.GetByUserID(ctx, userID)
}

// UpsertTrainerProfile creates the profile lazily on first save (with
// is_verified false) and thereafter updates only the supplied fields.
func (s *ProfileService) UpsertTrainerProfile(ctx context.Context, userID string, input repository.TrainerProfileInput) (*models.TrainerProfile, error) {
	_, err := s.trainerProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s.trainerProfileRepo.Create(ctx, uuid.NewString(), userID, input)
		}
		return nil, err
	}
	return s.trainerProfileRepo.Update(ctx, userID, input)
}

func (s *ProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return s.userProfileRepo.GetByUserID(ctx, userID)
}

func (s *ProfileService) UpsertUserProfile(ctx context.Context, userID string, input repository.UserProfileInput) (*models.UserProfile, error) {
	_, err := s.userProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s.userProfileRepo.Create(ctx, uuid.NewString(), userID, input)
		}
		return nil, err
	}
	return s.userProfileRepo.Update(ctx, userID, input)
}

// UpdateUserType toggles the caller between customer and trainer. Approval
// stays an admin-only action and is never touched here.
func (s *ProfileService) UpdateUserType(ctx context.Context, userID string, userType string) (*models.User, error) {
	if userType != models.UserTypeCustomer && userType != models.UserTypeTrainer {
		return nil, ErrInvalidInput
	}
	return s.userRepo.UpdateUserType(ctx, userID, userType)
}
