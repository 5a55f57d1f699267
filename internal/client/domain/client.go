package domain

import "time"

// Status is the soft-delete marker shared by clients and legal entities.
type Status string

const (
	StatusActive      Status = "active"
	StatusDeactivated Status = "deactivated"
)

// Client is a natural person the office serves.
type Client struct {
	ID        int64
	Name      string
	Email     *string
	CPF       *string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LegalEntity is a company, optionally owned by a client. CNPJ holds the 14
// digits without punctuation.
type LegalEntity struct {
	ID        int64
	ClientID  *int64
	LegalName string
	CNPJ      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
