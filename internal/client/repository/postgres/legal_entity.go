package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Brunera17/TCC/internal/client/domain"
	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type LegalEntityRepository struct {
	db DB
}

func NewLegalEntityRepository(db DB) *LegalEntityRepository {
	return &LegalEntityRepository{db: db}
}

const legalEntityColumns = `SELECT id, client_id, legal_name, cnpj, status, created_at, updated_at FROM legal_entities`

func scanLegalEntity(row pgx.Row) (*domain.LegalEntity, error) {
	var e domain.LegalEntity
	if err := row.Scan(&e.ID, &e.ClientID, &e.LegalName, &e.CNPJ, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// isUniqueViolation detects the unique index on cnpj, which also covers
// deactivated rows.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (r *LegalEntityRepository) List(ctx context.Context, filter domain.LegalEntityFilter) ([]domain.LegalEntity, error) {
	var (
		conditions []string
		args       []any
	)
	if !filter.IncludeDeactivated {
		conditions = append(conditions, "status = 'active'")
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", len(args)))
	}

	query := legalEntityColumns
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY legal_name, id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list legal entities: %w", err)
	}
	defer rows.Close()

	entities := []domain.LegalEntity{}
	for rows.Next() {
		e, err := scanLegalEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan legal entity: %w", err)
		}
		entities = append(entities, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list legal entities: %w", err)
	}
	return entities, nil
}

func (r *LegalEntityRepository) GetByID(ctx context.Context, id int64) (*domain.LegalEntity, error) {
	e, err := scanLegalEntity(r.db.QueryRow(ctx, legalEntityColumns+" WHERE id = $1 AND status = 'active'", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get legal entity: %w", err)
	}
	return e, nil
}

func (r *LegalEntityRepository) Create(ctx context.Context, e *domain.LegalEntity) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO legal_entities (client_id, legal_name, cnpj, status, created_at, updated_at)
		VALUES ($1, $2, $3, 'active', $4, $5)
		RETURNING id
	`, e.ClientID, e.LegalName, e.CNPJ, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return autherror.ErrCNPJAlreadyInUse
		}
		return fmt.Errorf("failed to insert legal entity: %w", err)
	}
	e.Status = domain.StatusActive
	return nil
}

func (r *LegalEntityRepository) Update(ctx context.Context, e *domain.LegalEntity) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE legal_entities SET client_id = $1, legal_name = $2, cnpj = $3, updated_at = $4
		WHERE id = $5 AND status = 'active'
	`, e.ClientID, e.LegalName, e.CNPJ, e.UpdatedAt, e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return autherror.ErrCNPJAlreadyInUse
		}
		return fmt.Errorf("failed to update legal entity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("legal entity %d: %w", e.ID, autherror.ErrNotFound)
	}
	return nil
}

func (r *LegalEntityRepository) Deactivate(ctx context.Context, id int64) error {
	return deactivate(ctx, r.db, "legal_entities", id)
}
