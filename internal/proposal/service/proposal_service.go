package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/logger"
	"github.com/Brunera17/TCC/internal/metrics"
	"github.com/Brunera17/TCC/internal/proposal/domain"
	"github.com/Brunera17/TCC/internal/proposal/dto"
	"github.com/Brunera17/TCC/internal/proposal/engine"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProposalService struct {
	repo    domain.ProposalRepository
	parties domain.CounterpartyRepository
	engine  *engine.Engine
	log     *zap.Logger
	// Now stamps created_at, updated_at and approval times.
	Now func() time.Time
}

func NewProposalService(repo domain.ProposalRepository, parties domain.CounterpartyRepository, eng *engine.Engine) *ProposalService {
	return &ProposalService{
		repo:    repo,
		parties: parties,
		engine:  eng,
		log:     logger.Named("proposal_service"),
		Now:     time.Now,
	}
}

func (s *ProposalService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Proposal, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProposalService) ListByClient(ctx context.Context, clientID int64) ([]domain.Proposal, error) {
	return s.repo.List(ctx, domain.ListFilter{ClientID: &clientID, Visibility: domain.OnlyActive})
}

// Get returns an active proposal or ErrNotFound.
func (s *ProposalService) Get(ctx context.Context, id int64) (*domain.Proposal, error) {
	p, err := s.repo.GetByID(ctx, id, domain.OnlyActive)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("proposal %d: %w", id, autherror.ErrNotFound)
	}
	return p, nil
}

func (s *ProposalService) Create(ctx context.Context, input dto.CreateProposalInput, createdBy string) (*domain.Proposal, error) {
	now := s.Now()
	p := &domain.Proposal{
		Number:           input.Number,
		Status:           domain.StatusDraft,
		ValidUntil:       input.ValidUntil,
		Notes:            input.Notes,
		DiscountPercent:  input.DiscountPercent,
		ApprovalRequired: input.ApprovalRequired,
		ClientID:         input.ClientID,
		LegalEntityID:    input.LegalEntityID,
		RecordStatus:     domain.RecordActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if createdBy != "" {
		p.CreatedBy = &createdBy
	}

	items, err := buildItems(input.Items, now)
	if err != nil {
		return nil, err
	}
	p.Items = items

	if err := s.checkNumber(ctx, p.Number, 0); err != nil {
		return nil, err
	}
	if err := s.checkCounterparty(ctx, p); err != nil {
		return nil, err
	}
	if _, err := s.engine.CalculateTotals(p); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("proposal created", zap.Int64("proposal_id", p.ID), zap.String("number", p.Number),
		zap.String("total", p.Total.StringFixed(2)))
	return p, nil
}

// Update applies the allow-listed fields of input. Only drafts can be edited,
// and any edit withdraws an earlier approval.
func (s *ProposalService) Update(ctx context.Context, id int64, input dto.UpdateProposalInput) (*domain.Proposal, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.StatusDraft {
		return nil, fmt.Errorf("%w: only draft proposals can be edited, proposal is %s",
			autherror.ErrInvalidStatusChange, p.Status)
	}

	now := s.Now()
	if input.Number != nil && *input.Number != p.Number {
		if err := s.checkNumber(ctx, *input.Number, p.ID); err != nil {
			return nil, err
		}
		p.Number = *input.Number
	}
	if input.ValidUntil != nil {
		p.ValidUntil = input.ValidUntil
	}
	if input.Notes != nil {
		p.Notes = *input.Notes
	}
	if input.DiscountPercent != nil {
		p.DiscountPercent = *input.DiscountPercent
	}
	if input.ApprovalRequired != nil {
		p.ApprovalRequired = *input.ApprovalRequired
	}

	// Setting one counterparty clears the other.
	if input.ClientID != nil || input.LegalEntityID != nil {
		p.ClientID = input.ClientID
		p.LegalEntityID = input.LegalEntityID
		if err := s.checkCounterparty(ctx, p); err != nil {
			return nil, err
		}
	}

	replaceItems := input.Items != nil
	if replaceItems {
		items, err := buildItems(*input.Items, now)
		if err != nil {
			return nil, err
		}
		p.Items = items
	}

	if _, err := s.engine.CalculateTotals(p); err != nil {
		return nil, err
	}
	p.ApprovedBy = nil
	p.ApprovedAt = nil
	p.UpdatedAt = now

	if err := s.repo.Update(ctx, p, replaceItems); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProposalService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info("proposal deactivated", zap.Int64("proposal_id", id))
	return nil
}

// Totals recomputes the totals of a stored proposal and persists the total if
// it had drifted.
func (s *ProposalService) Totals(ctx context.Context, id int64) (domain.Totals, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return domain.Totals{}, err
	}

	stored := p.Total
	totals, err := s.engine.CalculateTotals(p)
	if err != nil {
		return domain.Totals{}, err
	}
	if !stored.Equal(p.Total) {
		p.UpdatedAt = s.Now()
		if err := s.repo.Update(ctx, p, false); err != nil {
			return domain.Totals{}, err
		}
		s.log.Info("proposal total corrected", zap.Int64("proposal_id", id),
			zap.String("from", stored.StringFixed(2)), zap.String("to", p.Total.StringFixed(2)))
	}
	return totals, nil
}

func (s *ProposalService) Validate(ctx context.Context, id int64) (domain.ValidationResult, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	return s.validate(p)
}

func (s *ProposalService) validate(p *domain.Proposal) (domain.ValidationResult, error) {
	result, err := s.engine.Validate(p)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	metrics.ProposalValidations.WithLabelValues(strconv.FormatBool(result.Valid)).Inc()
	return result, nil
}

func (s *ProposalService) UpdatePDFStatus(ctx context.Context, id int64, filePath string, success bool) (*domain.Proposal, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.engine.UpdatePDFStatus(p, filePath, success); err != nil {
		return nil, err
	}
	p.UpdatedAt = s.Now()
	if err := s.repo.Update(ctx, p, false); err != nil {
		return nil, err
	}
	return p, nil
}

// ChangeStatus moves a proposal along its lifecycle. Sending requires a valid
// proposal and, when approval is required, a recorded approval. Rejections go
// through Reject so that a reason is kept.
func (s *ProposalService) ChangeStatus(ctx context.Context, id int64, to domain.Status) (*domain.Proposal, error) {
	if !to.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", autherror.ErrValidation, to)
	}
	if to == domain.StatusRejected {
		return nil, fmt.Errorf("%w: rejecting a proposal requires a reason", autherror.ErrValidation)
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(p.Status, to) {
		return nil, fmt.Errorf("%w: %s to %s", autherror.ErrInvalidStatusChange, p.Status, to)
	}

	if to == domain.StatusSent {
		result, err := s.validate(p)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, fmt.Errorf("%w: %v", autherror.ErrProposalNotSubmittable, result.Errors)
		}
		if p.ApprovalRequired && p.ApprovedBy == nil {
			return nil, fmt.Errorf("%w: approval pending", autherror.ErrProposalNotSubmittable)
		}
	}

	return s.save(ctx, p, func(p *domain.Proposal) { p.Status = to })
}

// Approve records who approved the proposal. Only open proposals can be approved.
func (s *ProposalService) Approve(ctx context.Context, id int64, approverID string) (*domain.Proposal, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.StatusDraft && p.Status != domain.StatusSent {
		return nil, fmt.Errorf("%w: cannot approve a %s proposal", autherror.ErrInvalidStatusChange, p.Status)
	}

	now := s.Now()
	return s.save(ctx, p, func(p *domain.Proposal) {
		p.ApprovedBy = &approverID
		p.ApprovedAt = &now
		p.RejectionReason = nil
	})
}

func (s *ProposalService) Reject(ctx context.Context, id int64, reason string) (*domain.Proposal, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(p.Status, domain.StatusRejected) {
		return nil, fmt.Errorf("%w: %s to %s", autherror.ErrInvalidStatusChange, p.Status, domain.StatusRejected)
	}

	return s.save(ctx, p, func(p *domain.Proposal) {
		p.Status = domain.StatusRejected
		p.RejectionReason = &reason
	})
}

func (s *ProposalService) save(ctx context.Context, p *domain.Proposal, apply func(*domain.Proposal)) (*domain.Proposal, error) {
	from := p.Status
	apply(p)
	p.UpdatedAt = s.Now()
	if err := s.repo.Update(ctx, p, false); err != nil {
		return nil, err
	}
	s.log.Info("proposal updated", zap.Int64("proposal_id", p.ID),
		zap.String("from", string(from)), zap.String("to", string(p.Status)))
	return p, nil
}

func (s *ProposalService) checkNumber(ctx context.Context, number string, excludeID int64) error {
	exists, err := s.repo.NumberExists(ctx, number, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return autherror.ErrProposalNumberInUse
	}
	return nil
}

// checkCounterparty requires exactly one of client and legal entity, and
// that it exists.
func (s *ProposalService) checkCounterparty(ctx context.Context, p *domain.Proposal) error {
	switch {
	case p.ClientID != nil && p.LegalEntityID != nil:
		return fmt.Errorf("%w: set either client_id or legal_entity_id, not both", autherror.ErrValidation)
	case p.ClientID != nil:
		ok, err := s.parties.ClientExists(ctx, *p.ClientID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("client %d: %w", *p.ClientID, autherror.ErrCounterpartyNotFound)
		}
	case p.LegalEntityID != nil:
		ok, err := s.parties.LegalEntityExists(ctx, *p.LegalEntityID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("legal entity %d: %w", *p.LegalEntityID, autherror.ErrCounterpartyNotFound)
		}
	}
	return nil
}

var hundred = decimal.NewFromInt(100)

func buildItems(inputs []dto.ItemInput, now time.Time) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(inputs))
	for i, in := range inputs {
		if in.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: item %d: unit price cannot be negative", autherror.ErrValidation, i+1)
		}
		if in.LineTotal != nil && in.LineTotal.IsNegative() {
			return nil, fmt.Errorf("%w: item %d: line total cannot be negative", autherror.ErrValidation, i+1)
		}
		if d := in.DiscountPercent; d != nil && (d.IsNegative() || d.GreaterThan(hundred)) {
			return nil, fmt.Errorf("%w: item %d: discount must be between 0 and 100", autherror.ErrValidation, i+1)
		}

		item := domain.LineItem{
			ServiceID:       in.ServiceID,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			DiscountPercent: in.DiscountPercent,
			RecordStatus:    domain.RecordActive,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if in.LineTotal != nil {
			item.LineTotal = *in.LineTotal
		} else {
			item.LineTotal = item.ExpectedTotal().Round(2)
		}
		items = append(items, item)
	}
	return items, nil
}
