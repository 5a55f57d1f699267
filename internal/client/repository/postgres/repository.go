package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brunera17/TCC/internal/client/domain"
	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool used by the registry repositories.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ClientRepository struct {
	db DB
}

func NewClientRepository(db DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `SELECT id, name, email, cpf, status, created_at, updated_at FROM clients`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.CPF, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context, includeDeactivated bool) ([]domain.Client, error) {
	query := clientColumns
	if !includeDeactivated {
		query += " WHERE status = 'active'"
	}
	query += " ORDER BY name, id"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := scanClient(r.db.QueryRow(ctx, clientColumns+" WHERE id = $1 AND status = 'active'", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

// CPFInUse ignores deactivated clients so a removed record does not block a
// new one.
func (r *ClientRepository) CPFInUse(ctx context.Context, cpf string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE cpf = $1 AND id <> $2 AND status = 'active')`,
		cpf, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check client cpf: %w", err)
	}
	return exists, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO clients (name, email, cpf, status, created_at, updated_at)
		VALUES ($1, $2, $3, 'active', $4, $5)
		RETURNING id
	`, c.Name, c.Email, c.CPF, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}
	c.Status = domain.StatusActive
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE clients SET name = $1, email = $2, cpf = $3, updated_at = $4
		WHERE id = $5 AND status = 'active'
	`, c.Name, c.Email, c.CPF, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %d: %w", c.ID, autherror.ErrNotFound)
	}
	return nil
}

// Deactivate leaves the client's legal entities and proposals untouched.
func (r *ClientRepository) Deactivate(ctx context.Context, id int64) error {
	return deactivate(ctx, r.db, "clients", id)
}

// table is always a constant from this package, never user input.
func deactivate(ctx context.Context, db DB, table string, id int64) error {
	tag, err := db.Exec(ctx,
		`UPDATE `+table+` SET status = 'deactivated', updated_at = now() WHERE id = $1 AND status = 'active'`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", table, id, autherror.ErrNotFound)
	}
	return nil
}
