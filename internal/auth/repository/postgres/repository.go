package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Brunera17/TCC/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool used by the repositories.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `
		SELECT id, name, username, email, cpf, password_hash, role, status = 'active',
		       login_attempts, locked_until, last_login, created_at, updated_at
		FROM users`

func (r *PostgresRepository) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := userColumns + ` WHERE ` + where + ` AND status = 'active' LIMIT 1;`
	row := r.db.QueryRow(ctx, query, arg)

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Username, &user.Email, &user.CPF, &user.PasswordHash,
		&user.Role, &user.Active, &user.LoginAttempts, &user.LockedUntil, &user.LastLogin,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, "username = $1", username)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "email = $1", email)
}

func (r *PostgresRepository) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	return r.getOne(ctx, "cpf = $1", cpf)
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, username, email, cpf, password_hash, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'active', $8, $9)
	`, user.ID, user.Name, user.Username, user.Email, user.CPF, user.PasswordHash, user.Role,
		user.CreatedAt, user.UpdatedAt)

	return err
}

// UpdateLoginState persists the lockout bookkeeping fields as given. Login uses
// it only for the reset after a successful password check.
func (r *PostgresRepository) UpdateLoginState(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET login_attempts = $1, locked_until = $2, last_login = $3, updated_at = $4
		WHERE id = $5
	`, user.LoginAttempts, user.LockedUntil, user.LastLogin, time.Now(), user.ID)
	if err != nil {
		return fmt.Errorf("failed to update login state: %w", err)
	}
	return nil
}

// RegisterLoginFailure increments in SQL so that the row lock taken by UPDATE
// serialises concurrent failures. Every SET expression sees the pre-update row.
func (r *PostgresRepository) RegisterLoginFailure(ctx context.Context, user *domain.User, maxAttempts int, lockUntil time.Time) error {
	err := r.db.QueryRow(ctx, `
		UPDATE users
		SET login_attempts = CASE WHEN login_attempts + 1 >= $2 THEN 0 ELSE login_attempts + 1 END,
		    locked_until   = CASE WHEN login_attempts + 1 >= $2 THEN $3 ELSE locked_until END,
		    updated_at     = $4
		WHERE id = $1
		RETURNING login_attempts, locked_until
	`, user.ID, maxAttempts, lockUntil, time.Now()).Scan(&user.LoginAttempts, &user.LockedUntil)
	if err != nil {
		return fmt.Errorf("failed to register login failure: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RecordLoginAttempt(ctx context.Context, attempt *domain.LoginAttempt) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO login_attempts (id, identifier, ip_address, attempt_time, successful)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id
	`, attempt.Identifier, attempt.IPAddress, attempt.AttemptTime, attempt.Successful).Scan(&attempt.ID)
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	return nil
}
