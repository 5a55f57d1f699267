package domain

//go:generate mockgen -destination=../../mocks/mock_client_repository.go -package=mocks github.com/Brunera17/TCC/internal/client/domain ClientRepository,LegalEntityRepository

import "context"

// ClientRepository persists clients. GetByID only sees active rows and
// returns (nil, nil) when nothing matches; Deactivate returns ErrNotFound.
type ClientRepository interface {
	List(ctx context.Context, includeDeactivated bool) ([]Client, error)
	GetByID(ctx context.Context, id int64) (*Client, error)
	CPFInUse(ctx context.Context, cpf string, excludeID int64) (bool, error)
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	Deactivate(ctx context.Context, id int64) error
}

type LegalEntityFilter struct {
	ClientID           *int64
	IncludeDeactivated bool
}

// LegalEntityRepository follows the ClientRepository conventions. Create and
// Update report a duplicate CNPJ as ErrCNPJAlreadyInUse.
type LegalEntityRepository interface {
	List(ctx context.Context, filter LegalEntityFilter) ([]LegalEntity, error)
	GetByID(ctx context.Context, id int64) (*LegalEntity, error)
	Create(ctx context.Context, e *LegalEntity) error
	Update(ctx context.Context, e *LegalEntity) error
	Deactivate(ctx context.Context, id int64) error
}
