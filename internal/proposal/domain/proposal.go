package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// IsValid reports whether s is one of the known proposal statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusRejected, StatusExpired:
		return true
	}
	return false
}

// transitions lists, for each status, the statuses a proposal may move to.
var transitions = map[Status][]Status{
	StatusDraft: {StatusSent, StatusExpired},
	StatusSent:  {StatusAccepted, StatusRejected, StatusExpired},
}

// CanTransition reports whether a proposal in status from may move to status to.
// Accepted, rejected and expired are terminal.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// RecordStatus replaces the boolean soft-delete flag: every record is either
// active or deactivated, and every read states which of the two it wants.
type RecordStatus string

const (
	RecordActive      RecordStatus = "active"
	RecordDeactivated RecordStatus = "deactivated"
)

type Visibility int

const (
	// OnlyActive hides deactivated records.
	OnlyActive Visibility = iota
	// IncludeDeactivated returns every record regardless of its status.
	IncludeDeactivated
)

type LineItem struct {
	ID         int64
	ProposalID int64
	ServiceID  *int64
	Quantity   int
	UnitPrice  decimal.Decimal
	LineTotal  decimal.Decimal
	// DiscountPercent is an optional per-line discount in the 0–100 range.
	DiscountPercent *decimal.Decimal
	RecordStatus    RecordStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether the item takes part in totals and validation.
func (i LineItem) IsActive() bool {
	return i.RecordStatus != RecordDeactivated
}

// ExpectedTotal is quantity × unit price, less the per-line discount if any.
func (i LineItem) ExpectedTotal() decimal.Decimal {
	total := i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
	if i.DiscountPercent != nil && !i.DiscountPercent.IsZero() {
		factor := decimal.NewFromInt(1).Sub(i.DiscountPercent.Div(decimal.NewFromInt(100)))
		total = total.Mul(factor)
	}
	return total
}

type Proposal struct {
	ID              int64
	Number          string
	Status          Status
	ValidUntil      *time.Time
	Notes           string
	DiscountPercent decimal.Decimal
	Total           decimal.Decimal

	ApprovalRequired bool
	ApprovedBy       *string
	ApprovedAt       *time.Time
	RejectionReason  *string

	PDFGenerated   bool
	PDFPath        *string
	PDFGeneratedAt *time.Time

	ClientID      *int64
	LegalEntityID *int64
	CreatedBy     *string

	Items        []LineItem
	RecordStatus RecordStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCounterparty reports whether a client or a legal entity is set.
func (p *Proposal) HasCounterparty() bool {
	return p.ClientID != nil || p.LegalEntityID != nil
}

// ActiveItems returns the items that are not deactivated, in their stored order.
func (p *Proposal) ActiveItems() []LineItem {
	active := make([]LineItem, 0, len(p.Items))
	for _, item := range p.Items {
		if item.IsActive() {
			active = append(active, item)
		}
	}
	return active
}

type Totals struct {
	Subtotal         decimal.Decimal `json:"subtotal"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	Total            decimal.Decimal `json:"total"`
	TotalQuantity    int             `json:"total_quantity"`
	AverageUnitValue decimal.Decimal `json:"average_unit_value"`
}

type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Summary  string   `json:"summary"`
}
