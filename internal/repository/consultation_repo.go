package repository

import (
	"context"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/jackc/pgx/v5"
)

type CreateConsultationInput struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	Goals        *string
	CurrentLevel *string
	Tags         []string
	Amount       int
}

type ConsultationRepository struct {
	db DBTX
}

func NewConsultationRepository(db DBTX) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

const consultationColumns = `id, user_id, title, description, goals, current_level, tags, status, is_paid, amount, best_answer_id, created_at, updated_at`

func (r *ConsultationRepository) Create(ctx context.Context, input CreateConsultationInput) (*models.Consultation, error) {
	var tags *string
	if input.Tags != nil {
		encoded, err := encodeTextJSON(input.Tags)
		if err != nil {
			return nil, err
		}
		tags = encoded
	}

	query := `
		INSERT INTO consultations (id, user_id, title, description, goals, current_level, tags, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + consultationColumns
	return r.scanConsultation(r.db.QueryRow(ctx, query,
		input.ID,
		input.UserID,
		input.Title,
		input.Description,
		input.Goals,
		input.CurrentLevel,
		tags,
		input.Amount,
	))
}

func (r *ConsultationRepository) GetByID(ctx context.Context, id string) (*models.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE id = $1`
	return r.scanConsultation(r.db.QueryRow(ctx, query, id))
}

// List returns every consultation in creation order. A nil status means no
// filter; callers validate the status value before reaching the store.
func (r *ConsultationRepository) List(ctx context.Context, status *string) ([]models.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	consultations := make([]models.Consultation, 0)
	for rows.Next() {
		var consultation models.Consultation
		var tags *string
		if err := rows.Scan(
			&consultation.ID,
			&consultation.UserID,
			&consultation.Title,
			&consultation.Description,
			&consultation.Goals,
			&consultation.CurrentLevel,
			&tags,
			&consultation.Status,
			&consultation.IsPaid,
			&consultation.Amount,
			&consultation.BestAnswerID,
			&consultation.CreatedAt,
			&consultation.UpdatedAt,
		); err != nil {
			return nil, err
		}
		decoded, err := decodeStringList(tags)
		if err != nil {
			return nil, err
		}
		consultation.Tags = decoded
		consultations = append(consultations, consultation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return consultations, nil
}

// SetBestAnswer points the consultation at the chosen proposal and moves it
// to the answered status in one statement.
func (r *ConsultationRepository) SetBestAnswer(ctx context.Context, consultationID string, proposalID string) (*models.Consultation, error) {
	query := `
		UPDATE consultations
		SET best_answer_id = $1,
			status = $2,
			updated_at = NOW()
		WHERE id = $3
		RETURNING ` + consultationColumns
	return r.scanConsultation(r.db.QueryRow(ctx, query, proposalID, models.ConsultationAnswered, consultationID))
}

func (r *ConsultationRepository) scanConsultation(row pgx.Row) (*models.Consultation, error) {
	var consultation models.Consultation
	var tags *string
	err := row.Scan(
		&consultation.ID,
		&consultation.UserID,
		&consultation.Title,
		&consultation.Description,
		&consultation.Goals,
		&consultation.CurrentLevel,
		&tags,
		&consultation.Status,
		&consultation.IsPaid,
		&consultation.Amount,
		&consultation.BestAnswerID,
		&consultation.CreatedAt,
		&consultation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeStringList(tags)
	if err != nil {
		return nil, err
	}
	consultation.Tags = decoded
	return &consultation, nil
}
