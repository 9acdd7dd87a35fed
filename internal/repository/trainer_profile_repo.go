package repository

import (
	"context"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/jackc/pgx/v5"
)

// TrainerProfileInput carries a partial create/update. Nil fields are left
// untouched on update and stored as NULL on create.
type TrainerProfileInput struct {
	ProfilePhoto   *string
	Bio            *string
	Specialties    []string
	Certifications []models.Certification
	SocialLinks    map[string]string
}

type TrainerProfileRepository struct {
	db DBTX
}

func NewTrainerProfileRepository(db DBTX) *TrainerProfileRepository {
	return &TrainerProfileRepository{db: db}
}

const trainerProfileColumns = `id, user_id, profile_photo, bio, specialties, certifications, social_links, is_verified, created_at, updated_at`

func (r *TrainerProfileRepository) Create(ctx context.Context, id string, userID string, input TrainerProfileInput) (*models.TrainerProfile, error) {
	specialties, certifications, socialLinks, err := encodeTrainerProfileColumns(input)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO trainer_profiles (id, user_id, profile_photo, bio, specialties, certifications, social_links)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + trainerProfileColumns
	return r.scanProfile(r.db.QueryRow(ctx, query,
		id,
		userID,
		input.ProfilePhoto,
		input.Bio,
		specialties,
		certifications,
		socialLinks,
	))
}

func (r *TrainerProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.TrainerProfile, error) {
	query := `SELECT ` + trainerProfileColumns + ` FROM trainer_profiles WHERE user_id = $1`
	return r.scanProfile(r.db.QueryRow(ctx, query, userID))
}

func (r *TrainerProfileRepository) Update(ctx context.Context, userID string, input TrainerProfileInput) (*models.TrainerProfile, error) {
	specialties, certifications, socialLinks, err := encodeTrainerProfileColumns(input)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE trainer_profiles
		SET profile_photo = COALESCE($1, profile_photo),
			bio = COALESCE($2, bio),
			specialties = COALESCE($3, specialties),
			certifications = COALESCE($4, certifications),
			social_links = COALESCE($5, social_links),
			updated_at = NOW()
		WHERE user_id = $6
		RETURNING ` + trainerProfileColumns
	return r.scanProfile(r.db.QueryRow(ctx, query,
		input.ProfilePhoto,
		input.Bio,
		specialties,
		certifications,
		socialLinks,
		userID,
	))
}

func encodeTrainerProfileColumns(input TrainerProfileInput) (specialties, certifications, socialLinks *string, err error) {
	if input.Specialties != nil {
		if specialties, err = encodeTextJSON(input.Specialties); err != nil {
			return nil, nil, nil, err
		}
	}
	if input.Certifications != nil {
		if certifications, err = encodeTextJSON(input.Certifications); err != nil {
			return nil, nil, nil, err
		}
	}
	if input.SocialLinks != nil {
		if socialLinks, err = encodeTextJSON(input.SocialLinks); err != nil {
			return nil, nil, nil, err
		}
	}
	return specialties, certifications, socialLinks, nil
}

func (r *TrainerProfileRepository) scanProfile(row pgx.Row) (*models.TrainerProfile, error) {
	var profile models.TrainerProfile
	var specialties, certifications, socialLinks *string
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.ProfilePhoto,
		&profile.Bio,
		&specialties,
		&certifications,
		&socialLinks,
		&profile.IsVerified,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if profile.Specialties, err = decodeStringList(specialties); err != nil {
		return nil, err
	}
	if profile.Certifications, err = decodeCertifications(certifications); err != nil {
		return nil, err
	}
	if profile.SocialLinks, err = decodeLinkMap(socialLinks); err != nil {
		return nil, err
	}
	return &profile, nil
}
