package postgres

import (
	"context"
	"fmt"
)

// CounterpartyRepository reads the clients and legal_entities tables, which
// are owned by the registry CRUD.
type CounterpartyRepository struct {
	db DB
}

func NewCounterpartyRepository(db DB) *CounterpartyRepository {
	return &CounterpartyRepository{db: db}
}

func (r *CounterpartyRepository) ClientExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "clients", id)
}

func (r *CounterpartyRepository) LegalEntityExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "legal_entities", id)
}

// table is always one of the constants above, never user input.
func (r *CounterpartyRepository) exists(ctx context.Context, table string, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM ` + table + ` WHERE id = $1 AND status = 'active')`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", table, err)
	}
	return exists, nil
}
