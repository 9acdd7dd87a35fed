package services

import (
	"context"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/Tai550/training-menu-platform/internal/repository"
)

type adminUserStore interface {
	List(ctx context.Context) ([]models.User, error)
	ListByUserType(ctx context.Context, userType string) ([]models.User, error)
	SetTrainerApproval(ctx context.Context, userID string, approved bool) (*models.User, error)
	UpdateUserType(ctx context.Context, userID string, userType string) (*models.User, error)
}

type AdminService struct {
	userRepo adminUserStore
}

func NewAdminService(userRepo *repository.UserRepository) *AdminService {
	return &AdminService{userRepo: userRepo}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *AdminService) ListPendingTrainers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListByUserType(ctx, models.UserTypeTrainer)
}

func (s *AdminService) ApproveTrainer(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.SetTrainerApproval(ctx, userID, true)
}

// RevokeTrainer withdraws approval. Existing proposals and best-answer
// flags are intentionally left in place: historical answers stay visible.
func (s *AdminService) RevokeTrainer(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.SetTrainerApproval(ctx, userID, false)
}

func (s *AdminService) ChangeUserType(ctx context.Context, userID string, userType string) (*models.User, error) {
	if userType != models.UserTypeCustomer && userType != models.UserTypeTrainer {
		return nil, ErrInvalidInput
	}
	return s.userRepo.UpdateUserType(ctx, userID, userType)
}
