package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/proposal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool used by the proposal repositories.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// querier is satisfied by both DB and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ProposalRepository struct {
	db DB
}

func NewProposalRepository(db DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

const proposalColumns = `
		SELECT id, number, status, valid_until, notes, discount_percent, total,
		       approval_required, approved_by, approved_at, rejection_reason,
		       pdf_generated, pdf_path, pdf_generated_at,
		       client_id, legal_entity_id, created_by, record_status, created_at, updated_at
		FROM proposals`

func scanProposal(row pgx.Row) (*domain.Proposal, error) {
	var p domain.Proposal
	err := row.Scan(&p.ID, &p.Number, &p.Status, &p.ValidUntil, &p.Notes, &p.DiscountPercent, &p.Total,
		&p.ApprovalRequired, &p.ApprovedBy, &p.ApprovedAt, &p.RejectionReason,
		&p.PDFGenerated, &p.PDFPath, &p.PDFGeneratedAt,
		&p.ClientID, &p.LegalEntityID, &p.CreatedBy, &p.RecordStatus, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func visibilityClause(v domain.Visibility) string {
	if v == domain.IncludeDeactivated {
		return ""
	}
	return "record_status = 'active'"
}

// List returns proposal headers without their items, newest first.
func (r *ProposalRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Proposal, error) {
	var (
		conditions []string
		args       []any
	)
	if clause := visibilityClause(filter.Visibility); clause != "" {
		conditions = append(conditions, clause)
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := proposalColumns
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	proposals := []domain.Proposal{}
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		proposals = append(proposals, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

// GetByID loads the proposal and every one of its items, deactivated ones
// included, so callers can tell them apart.
func (r *ProposalRepository) GetByID(ctx context.Context, id int64, visibility domain.Visibility) (*domain.Proposal, error) {
	query := proposalColumns + " WHERE id = $1"
	if clause := visibilityClause(visibility); clause != "" {
		query += " AND " + clause
	}

	p, err := scanProposal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	items, err := r.items(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return p, nil
}

func (r *ProposalRepository) items(ctx context.Context, proposalID int64) ([]domain.LineItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, proposal_id, service_id, quantity, unit_price, line_total, discount_percent,
		       record_status, created_at, updated_at
		FROM proposal_items
		WHERE proposal_id = $1
		ORDER BY id
	`, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load proposal items: %w", err)
	}
	defer rows.Close()

	items := []domain.LineItem{}
	for rows.Next() {
		var it domain.LineItem
		if err := rows.Scan(&it.ID, &it.ProposalID, &it.ServiceID, &it.Quantity, &it.UnitPrice, &it.LineTotal,
			&it.DiscountPercent, &it.RecordStatus, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan proposal item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load proposal items: %w", err)
	}
	return items, nil
}

// NumberExists checks every proposal, deactivated ones included, since the
// number column is unique across the table.
func (r *ProposalRepository) NumberExists(ctx context.Context, number string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM proposals WHERE number = $1 AND id <> $2)`,
		number, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check proposal number: %w", err)
	}
	return exists, nil
}

// Create inserts the proposal and its items in one transaction and fills in
// the generated ids.
func (r *ProposalRepository) Create(ctx context.Context, p *domain.Proposal) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO proposals (number, status, valid_until, notes, discount_percent, total,
		                       approval_required, client_id, legal_entity_id, created_by,
		                       record_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'active', $11, $12)
		RETURNING id
	`, p.Number, string(p.Status), p.ValidUntil, p.Notes, p.DiscountPercent, p.Total,
		p.ApprovalRequired, p.ClientID, p.LegalEntityID, p.CreatedBy, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to insert proposal: %w", err)
	}
	p.RecordStatus = domain.RecordActive

	if err := insertItems(ctx, tx, p); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit proposal: %w", err)
	}
	return nil
}

func (r *ProposalRepository) Update(ctx context.Context, p *domain.Proposal, replaceItems bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE proposals
		SET number = $1, status = $2, valid_until = $3, notes = $4, discount_percent = $5, total = $6,
		    approval_required = $7, approved_by = $8, approved_at = $9, rejection_reason = $10,
		    pdf_generated = $11, pdf_path = $12, pdf_generated_at = $13,
		    client_id = $14, legal_entity_id = $15, updated_at = $16
		WHERE id = $17 AND record_status = 'active'
	`, p.Number, string(p.Status), p.ValidUntil, p.Notes, p.DiscountPercent, p.Total,
		p.ApprovalRequired, p.ApprovedBy, p.ApprovedAt, p.RejectionReason,
		p.PDFGenerated, p.PDFPath, p.PDFGeneratedAt,
		p.ClientID, p.LegalEntityID, p.UpdatedAt, p.ID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to update proposal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("proposal %d: %w", p.ID, autherror.ErrNotFound)
	}

	if replaceItems {
		if _, err := tx.Exec(ctx, `
			UPDATE proposal_items SET record_status = 'deactivated', updated_at = $1
			WHERE proposal_id = $2 AND record_status = 'active'
		`, p.UpdatedAt, p.ID); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to deactivate proposal items: %w", err)
		}
		if err := insertItems(ctx, tx, p); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit proposal: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, q querier, p *domain.Proposal) error {
	for i := range p.Items {
		it := &p.Items[i]
		if it.RecordStatus == "" {
			it.RecordStatus = domain.RecordActive
		}
		it.ProposalID = p.ID
		err := q.QueryRow(ctx, `
			INSERT INTO proposal_items (proposal_id, service_id, quantity, unit_price, line_total,
			                            discount_percent, record_status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`, p.ID, it.ServiceID, it.Quantity, it.UnitPrice, it.LineTotal,
			it.DiscountPercent, string(it.RecordStatus), it.CreatedAt, it.UpdatedAt).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("failed to insert proposal item %d: %w", i+1, err)
		}
	}
	return nil
}

// SoftDelete marks the proposal deactivated. Items keep their own status.
func (r *ProposalRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE proposals SET record_status = 'deactivated', updated_at = now()
		WHERE id = $1 AND record_status = 'active'
	`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate proposal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("proposal %d: %w", id, autherror.ErrNotFound)
	}
	return nil
}
