package repository

import (
	"context"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/jackc/pgx/v5"
)

type CreateProposalInput struct {
	ID             string
	ConsultationID string
	TrainerID      string
	Title          string
	Content        string
	Program        []models.ProgramDay
	Duration       *string
	Frequency      *string
}

// UpdateProposalInput carries a partial update; nil fields keep the stored
// value (COALESCE against the current column).
type UpdateProposalInput struct {
	Title     *string
	Content   *string
	Program   []models.ProgramDay
	Duration  *string
	Frequency *string
}

type ProposalRepository struct {
	db DBTX
}

func NewProposalRepository(db DBTX) *ProposalRepository {
	return &ProposalRepository{db: db}
}

const proposalColumns = `id, consultation_id, trainer_id, title, content, program, duration, frequency, is_best_answer, created_at, updated_at`

func (r *ProposalRepository) Create(ctx context.Context, input CreateProposalInput) (*models.Proposal, error) {
	program, err := encodeTextJSON(input.Program)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO proposals (id, consultation_id, trainer_id, title, content, program, duration, frequency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + proposalColumns
	return r.scanProposal(r.db.QueryRow(ctx, query,
		input.ID,
		input.ConsultationID,
		input.TrainerID,
		input.Title,
		input.Content,
		program,
		input.Duration,
		input.Frequency,
	))
}

func (r *ProposalRepository) GetByID(ctx context.Context, id string) (*models.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE id = $1`
	return r.scanProposal(r.db.QueryRow(ctx, query, id))
}

func (r *ProposalRepository) GetByTrainerAndConsultation(ctx context.Context, trainerID string, consultationID string) (*models.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE trainer_id = $1 AND consultation_id = $2`
	return r.scanProposal(r.db.QueryRow(ctx, query, trainerID, consultationID))
}

// ListByConsultation returns a consultation's proposals in creation order,
// joined with each trainer's display name and profile photo.
func (r *ProposalRepository) ListByConsultation(ctx context.Context, consultationID string) ([]models.ProposalWithTrainer, error) {
	query := `
		SELECT p.id, p.consultation_id, p.trainer_id, p.title, p.content, p.program,
			   p.duration, p.frequency, p.is_best_answer, p.created_at, p.updated_at,
			   u.name, tp.profile_photo
		FROM proposals p
		LEFT JOIN users u ON u.id = p.trainer_id
		LEFT JOIN trainer_profiles tp ON tp.user_id = p.trainer_id
		WHERE p.consultation_id = $1
		ORDER BY p.created_at ASC, p.id ASC
	`
	rows, err := r.db.Query(ctx, query, consultationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proposals := make([]models.ProposalWithTrainer, 0)
	for rows.Next() {
		var proposal models.ProposalWithTrainer
		var program *string
		if err := rows.Scan(
			&proposal.ID,
			&proposal.ConsultationID,
			&proposal.TrainerID,
			&proposal.Title,
			&proposal.Content,
			&program,
			&proposal.Duration,
			&proposal.Frequency,
			&proposal.IsBestAnswer,
			&proposal.CreatedAt,
			&proposal.UpdatedAt,
			&proposal.TrainerName,
			&proposal.TrainerPhotoURL,
		); err != nil {
			return nil, err
		}
		decoded, err := decodeProgram(program)
		if err != nil {
			return nil, err
		}
		proposal.Program = decoded
		proposals = append(proposals, proposal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return proposals, nil
}

func (r *ProposalRepository) Update(ctx context.Context, id string, input UpdateProposalInput) (*models.Proposal, error) {
	var program *string
	if input.Program != nil {
		encoded, err := encodeTextJSON(input.Program)
		if err != nil {
			return nil, err
		}
		program = encoded
	}

	query := `
		UPDATE proposals
		SET title = COALESCE($1, title),
			content = COALESCE($2, content),
			program = COALESCE($3, program),
			duration = COALESCE($4, duration),
			frequency = COALESCE($5, frequency),
			updated_at = NOW()
		WHERE id = $6
		RETURNING ` + proposalColumns
	return r.scanProposal(r.db.QueryRow(ctx, query,
		input.Title,
		input.Content,
		program,
		input.Duration,
		input.Frequency,
		id,
	))
}

// ClearBestAnswers resets the flag on every proposal of a consultation so a
// re-selection leaves at most one proposal marked.
func (r *ProposalRepository) ClearBestAnswers(ctx context.Context, consultationID string) error {
	query := `UPDATE proposals SET is_best_answer = FALSE, updated_at = NOW() WHERE consultation_id = $1 AND is_best_answer = TRUE`
	_, err := r.db.Exec(ctx, query, consultationID)
	return err
}

func (r *ProposalRepository) MarkBestAnswer(ctx context.Context, id string) (*models.Proposal, error) {
	query := `
		UPDATE proposals
		SET is_best_answer = TRUE,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + proposalColumns
	return r.scanProposal(r.db.QueryRow(ctx, query, id))
}

func (r *ProposalRepository) scanProposal(row pgx.Row) (*models.Proposal, error) {
	var proposal models.Proposal
	var program *string
	err := row.Scan(
		&proposal.ID,
		&proposal.ConsultationID,
		&proposal.TrainerID,
		&proposal.Title,
		&proposal.Content,
		&program,
		&proposal.Duration,
		&proposal.Frequency,
		&proposal.IsBestAnswer,
		&proposal.CreatedAt,
		&proposal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeProgram(program)
	if err != nil {
		return nil, err
	}
	proposal.Program = decoded
	return &proposal, nil
}
