package domain

//go:generate mockgen -destination=../../mocks/mock_proposal_repository.go -package=mocks github.com/Brunera17/TCC/internal/proposal/domain ProposalRepository,CounterpartyRepository

import "context"

// ListFilter narrows a proposal listing. Nil fields do not filter.
type ListFilter struct {
	ClientID   *int64
	Status     *Status
	Visibility Visibility
}

// ProposalRepository persists proposals together with their line items.
// GetByID returns (nil, nil) when nothing matches under the given visibility.
type ProposalRepository interface {
	List(ctx context.Context, filter ListFilter) ([]Proposal, error)
	GetByID(ctx context.Context, id int64, visibility Visibility) (*Proposal, error)
	NumberExists(ctx context.Context, number string, excludeID int64) (bool, error)
	Create(ctx context.Context, p *Proposal) error
	// Update writes the proposal row. When replaceItems is set, the stored
	// active items are deactivated and p.Items is inserted in their place.
	Update(ctx context.Context, p *Proposal, replaceItems bool) error
	SoftDelete(ctx context.Context, id int64) error
}

// CounterpartyRepository answers existence checks for the parties a proposal
// is addressed to. Deactivated records do not count.
type CounterpartyRepository interface {
	ClientExists(ctx context.Context, id int64) (bool, error)
	LegalEntityExists(ctx context.Context, id int64) (bool, error)
}
