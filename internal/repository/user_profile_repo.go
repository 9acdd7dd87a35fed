package repository

import (
	"context"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/jackc/pgx/v5"
)

type UserProfileInput struct {
	ProfilePhoto *string
	Bio          *string
	Height       *int
	Weight       *int
	Age          *int
	Gender       *string
}

type UserProfileRepository struct {
	db DBTX
}

func NewUserProfileRepository(db DBTX) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

const userProfileColumns = `id, user_id, profile_photo, bio, height, weight, age, gender, created_at, updated_at`

func (r *UserProfileRepository) Create(ctx context.Context, id string, userID string, input UserProfileInput) (*models.UserProfile, error) {
	query := `
		INSERT INTO user_profiles (id, user_id, profile_photo, bio, height, weight, age, gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userProfileColumns
	return r.scanProfile(r.db.QueryRow(ctx, query,
		id,
		userID,
		input.ProfilePhoto,
		input.Bio,
		input.Height,
		input.Weight,
		input.Age,
		input.Gender,
	))
}

func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `SELECT ` + userProfileColumns + ` FROM user_profiles WHERE user_id = $1`
	return r.scanProfile(r.db.QueryRow(ctx, query, userID))
}

func (r *UserProfileRepository) Update(ctx context.Context, userID string, input UserProfileInput) (*models.UserProfile, error) {
	query := `
		UPDATE user_profiles
		SET profile_photo = COALESCE($1, profile_photo),
			bio = COALESCE($2, bio),
			height = COALESCE($3, height),
			weight = COALESCE($4, weight),
			age = COALESCE($5, age),
			gender = COALESCE($6, gender),
			updated_at = NOW()
		WHERE user_id = $7
		RETURNING ` + userProfileColumns
	return r.scanProfile(r.db.QueryRow(ctx, query,
		input.ProfilePhoto,
		input.Bio,
		input.Height,
		input.Weight,
		input.Age,
		input.Gender,
		userID,
	))
}

func (r *UserProfileRepository) scanProfile(row pgx.Row) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.ProfilePhoto,
		&profile.Bio,
		&profile.Height,
		&profile.Weight,
		&profile.Age,
		&profile.Gender,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
