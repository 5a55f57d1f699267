package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/proposal/domain"
	repo "github.com/Brunera17/TCC/internal/proposal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var proposalColumns = []string{
	"id", "number", "status", "valid_until", "notes", "discount_percent", "total",
	"approval_required", "approved_by", "approved_at", "rejection_reason",
	"pdf_generated", "pdf_path", "pdf_generated_at",
	"client_id", "legal_entity_id", "created_by", "record_status", "created_at", "updated_at",
}

var itemColumns = []string{
	"id", "proposal_id", "service_id", "quantity", "unit_price", "line_total", "discount_percent",
	"record_status", "created_at", "updated_at",
}

func proposalRow(rows *pgxmock.Rows, id int64, number string, clientID *int64) *pgxmock.Rows {
	now := time.Now()
	return rows.AddRow(id, number, domain.StatusDraft, nil, "", decimal.NewFromInt(10), decimal.NewFromInt(225),
		false, nil, nil, nil,
		false, nil, nil,
		clientID, nil, nil, domain.RecordActive, now, now)
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewProposalRepository(mock)
	ctx := context.Background()
	clientID := int64(7)

	t.Run("success with items", func(t *testing.T) {
		mock.ExpectQuery("FROM proposals WHERE id = \\$1 AND record_status = 'active'").
			WithArgs(int64(1)).
			WillReturnRows(proposalRow(pgxmock.NewRows(proposalColumns), 1, "PROP-0001", &clientID))
		now := time.Now()
		mock.ExpectQuery("FROM proposal_items").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(itemColumns).
				AddRow(int64(10), int64(1), nil, 2, decimal.NewFromInt(50), decimal.NewFromInt(100), nil, domain.RecordActive, now, now).
				AddRow(int64(11), int64(1), nil, 1, decimal.NewFromInt(150), decimal.NewFromInt(150), nil, domain.RecordDeactivated, now, now))

		p, err := r.GetByID(ctx, 1, domain.OnlyActive)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "PROP-0001", p.Number)
		assert.Equal(t, domain.StatusDraft, p.Status)
		require.NotNil(t, p.ClientID)
		assert.Equal(t, int64(7), *p.ClientID)
		assert.Nil(t, p.LegalEntityID)
		assert.True(t, p.Total.Equal(decimal.NewFromInt(225)))
		require.Len(t, p.Items, 2)
		assert.Equal(t, 2, p.Items[0].Quantity)
		assert.False(t, p.Items[1].IsActive())
	})

	t.Run("include deactivated drops the status filter", func(t *testing.T) {
		mock.ExpectQuery("FROM proposals WHERE id = \\$1$").
			WithArgs(int64(2)).
			WillReturnRows(proposalRow(pgxmock.NewRows(proposalColumns), 2, "PROP-0002", nil))
		mock.ExpectQuery("FROM proposal_items").
			WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows(itemColumns))

		p, err := r.GetByID(ctx, 2, domain.IncludeDeactivated)
		require.NoError(t, err)
		assert.Empty(t, p.Items)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("FROM proposals").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		p, err := r.GetByID(ctx, 99, domain.OnlyActive)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("item query error", func(t *testing.T) {
		mock.ExpectQuery("FROM proposals").
			WithArgs(int64(1)).
			WillReturnRows(proposalRow(pgxmock.NewRows(proposalColumns), 1, "PROP-0001", &clientID))
		mock.ExpectQuery("FROM proposal_items").
			WithArgs(int64(1)).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByID(ctx, 1, domain.OnlyActive)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewProposalRepository(mock)
	ctx := context.Background()
	clientID := int64(7)
	sent := domain.StatusSent

	t.Run("active only", func(t *testing.T) {
		mock.ExpectQuery("FROM proposals WHERE record_status = 'active' ORDER BY").
			WillReturnRows(proposalRow(proposalRow(pgxmock.NewRows(proposalColumns), 2, "PROP-0002", nil), 1, "PROP-0001", nil))

		proposals, err := r.List(ctx, domain.ListFilter{})
		require.NoError(t, err)
		require.Len(t, proposals, 2)
		assert.Equal(t, "PROP-0002", proposals[0].Number)
	})

	t.Run("by client and status including deactivated", func(t *testing.T) {
		mock.ExpectQuery("FROM proposals WHERE client_id = \\$1 AND status = \\$2 ORDER BY").
			WithArgs(clientID, "sent").
			WillReturnRows(pgxmock.NewRows(proposalColumns))

		proposals, err := r.List(ctx, domain.ListFilter{ClientID: &clientID, Status: &sent, Visibility: domain.IncludeDeactivated})
		require.NoError(t, err)
		assert.NotNil(t, proposals)
		assert.Empty(t, proposals)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("FROM proposals").WillReturnError(fmt.Errorf("db error"))

		_, err := r.List(ctx, domain.ListFilter{})
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNumberExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewProposalRepository(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("PROP-0001", int64(0)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := r.NumberExists(context.Background(), "PROP-0001", 0)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newProposal() *domain.Proposal {
	clientID := int64(7)
	now := time.Now()
	return &domain.Proposal{
		Number:          "PROP-0001",
		Status:          domain.StatusDraft,
		DiscountPercent: decimal.NewFromInt(10),
		Total:           decimal.NewFromInt(225),
		ClientID:        &clientID,
		CreatedAt:       now,
		UpdatedAt:       now,
		Items: []domain.LineItem{
			{Quantity: 2, UnitPrice: decimal.NewFromInt(50), LineTotal: decimal.NewFromInt(100), CreatedAt: now, UpdatedAt: now},
			{Quantity: 1, UnitPrice: decimal.NewFromInt(150), LineTotal: decimal.NewFromInt(150), CreatedAt: now, UpdatedAt: now},
		},
	}
}

func itemInsertArgs(proposalID int64, quantity int) []interface{} {
	return []interface{}{proposalID, pgxmock.AnyArg(), quantity, pgxmock.AnyArg(), pgxmock.AnyArg(),
		pgxmock.AnyArg(), "active", pgxmock.AnyArg(), pgxmock.AnyArg()}
}

func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewProposalRepository(mock)
	ctx := context.Background()
	proposalArgs := []interface{}{"PROP-0001", "draft", pgxmock.AnyArg(), "", pgxmock.AnyArg(), pgxmock.AnyArg(),
		false, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()}

	t.Run("success", func(t *testing.T) {
		p := newProposal()
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO proposals").
			WithArgs(proposalArgs...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectQuery("INSERT INTO proposal_items").
			WithArgs(itemInsertArgs(1, 2)...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
		mock.ExpectQuery("INSERT INTO proposal_items").
			WithArgs(itemInsertArgs(1, 1)...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectCommit()

		require.NoError(t, r.Create(ctx, p))
		assert.Equal(t, int64(1), p.ID)
		assert.Equal(t, int64(10), p.Items[0].ID)
		assert.Equal(t, int64(11), p.Items[1].ID)
		assert.Equal(t, int64(1), p.Items[1].ProposalID)
		assert.Equal(t, domain.RecordActive, p.RecordStatus)
	})

	t.Run("item failure rolls back", func(t *testing.T) {
		p := newProposal()
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO proposals").
			WithArgs(proposalArgs...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))
		mock.ExpectQuery("INSERT INTO proposal_items").
			WithArgs(itemInsertArgs(2, 2)...).
			WillReturnError(fmt.Errorf("db error"))
		mock.ExpectRollback()

		assert.Error(t, r.Create(ctx, p))
	})

	t.Run("begin failure", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(fmt.Errorf("pool exhausted"))
		assert.Error(t, r.Create(ctx, newProposal()))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewProposalRepository(mock)
	ctx := context.Background()

	updateArgs := func(id int64) []interface{} {
		args := make([]interface{}, 0, 17)
		args = append(args, "PROP-0001", "draft")
		for i := 0; i < 14; i++ {
			args = append(args, pgxmock.AnyArg())
		}
		return append(args, id)
	}

	t.Run("header only", func(t *testing.T) {
		p := newProposal()
		p.ID = 1
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE proposals").
			WithArgs(updateArgs(1)...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		assert.NoError(t, r.Update(ctx, p, false))
	})

	t.Run("replaces items", func(t *testing.T) {
		p := newProposal()
		p.ID = 1
		p.Items = p.Items[:1]
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE proposals").
			WithArgs(updateArgs(1)...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("UPDATE proposal_items SET record_status = 'deactivated'").
			WithArgs(pgxmock.AnyArg(), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))
		mock.ExpectQuery("INSERT INTO proposal_items").
			WithArgs(itemInsertArgs(1, 2)...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))
		mock.ExpectCommit()

		require.NoError(t, r.Update(ctx, p, true))
		assert.Equal(t, int64(12), p.Items[0].ID)
	})

	t.Run("missing proposal", func(t *testing.T) {
		p := newProposal()
		p.ID = 99
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE proposals").
			WithArgs(updateArgs(99)...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, r.Update(ctx, p, false), autherror.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewProposalRepository(mock)
	ctx := context.Background()

	mock.ExpectExec("UPDATE proposals SET record_status = 'deactivated'").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, r.SoftDelete(ctx, 1))

	mock.ExpectExec("UPDATE proposals SET record_status = 'deactivated'").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, r.SoftDelete(ctx, 1), autherror.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterpartyRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCounterpartyRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery("FROM clients").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := r.ClientExists(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery("FROM legal_entities").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	ok, err = r.LegalEntityExists(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectQuery("FROM clients").
		WithArgs(int64(8)).
		WillReturnError(fmt.Errorf("db error"))
	_, err = r.ClientExists(ctx, 8)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
