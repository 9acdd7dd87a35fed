package repository

import (
	"context"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, role, user_type, is_approved_trainer, created_at, last_signed_in`

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, user_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, last_signed_in
	`
	return r.db.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.UserType,
	).Scan(&user.CreatedAt, &user.LastSignedIn)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC, id ASC`
	return r.list(ctx, query)
}

func (r *UserRepository) ListByUserType(ctx context.Context, userType string) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_type = $1 ORDER BY created_at ASC, id ASC`
	return r.list(ctx, query, userType)
}

func (r *UserRepository) SetTrainerApproval(ctx context.Context, userID string, approved bool) (*models.User, error) {
	query := `
		UPDATE users
		SET is_approved_trainer = $1
		WHERE id = $2
		RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRow(ctx, query, approved, userID))
}

func (r *UserRepository) UpdateUserType(ctx context.Context, userID string, userType string) (*models.User, error) {
	query := `
		UPDATE users
		SET user_type = $1
		WHERE id = $2
		RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRow(ctx, query, userType, userID))
}

func (r *UserRepository) TouchLastSignedIn(ctx context.Context, userID string) error {
	query := `UPDATE users SET last_signed_in = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *UserRepository) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.UserType,
		&user.IsApprovedTrainer,
		&user.CreatedAt,
		&user.LastSignedIn,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) list(ctx context.Context, query string, args ...any) ([]models.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.UserType,
			&user.IsApprovedTrainer,
			&user.CreatedAt,
			&user.LastSignedIn,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
