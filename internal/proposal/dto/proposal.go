package dto

import (
	"time"

	"github.com/Brunera17/TCC/internal/proposal/domain"
	"github.com/shopspring/decimal"
)

type ItemInput struct {
	ServiceID       *int64           `json:"service_id"`
	Quantity        int              `json:"quantity" validate:"gt=0"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	// LineTotal is computed from quantity, unit price and discount when omitted.
	LineTotal *decimal.Decimal `json:"line_total"`
}

type CreateProposalInput struct {
	Number           string          `json:"number" validate:"required,max=20"`
	ValidUntil       *time.Time      `json:"valid_until"`
	Notes            string          `json:"notes" validate:"max=255"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
	ApprovalRequired bool            `json:"approval_required"`
	ClientID         *int64          `json:"client_id"`
	LegalEntityID    *int64          `json:"legal_entity_id"`
	Items            []ItemInput     `json:"items" validate:"dive"`
}

// UpdateProposalInput lists every field a client may change. Nil means
// unchanged. Setting Items replaces the whole item list.
type UpdateProposalInput struct {
	Number           *string          `json:"number" validate:"omitempty,max=20"`
	ValidUntil       *time.Time       `json:"valid_until"`
	Notes            *string          `json:"notes" validate:"omitempty,max=255"`
	DiscountPercent  *decimal.Decimal `json:"discount_percent"`
	ApprovalRequired *bool            `json:"approval_required"`
	ClientID         *int64           `json:"client_id"`
	LegalEntityID    *int64           `json:"legal_entity_id"`
	Items            *[]ItemInput     `json:"items" validate:"omitempty,dive"`
}

type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=draft sent accepted rejected expired"`
}

type RejectInput struct {
	Reason string `json:"reason" validate:"required,max=255"`
}

type PDFStatusInput struct {
	Success  bool   `json:"success"`
	FilePath string `json:"file_path" validate:"max=255"`
}

type ItemOutput struct {
	ID              int64            `json:"id"`
	ServiceID       *int64           `json:"service_id,omitempty"`
	Quantity        int              `json:"quantity"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
	LineTotal       decimal.Decimal  `json:"line_total"`
	Status          string           `json:"status"`
}

type ProposalOutput struct {
	ID               int64           `json:"id"`
	Number           string          `json:"number"`
	Status           string          `json:"status"`
	ValidUntil       *time.Time      `json:"valid_until,omitempty"`
	Notes            string          `json:"notes"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
	Total            decimal.Decimal `json:"total"`
	ApprovalRequired bool            `json:"approval_required"`
	ApprovedBy       *string         `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`
	RejectionReason  *string         `json:"rejection_reason,omitempty"`
	PDFGenerated     bool            `json:"pdf_generated"`
	PDFPath          *string         `json:"pdf_path,omitempty"`
	PDFGeneratedAt   *time.Time      `json:"pdf_generated_at,omitempty"`
	ClientID         *int64          `json:"client_id,omitempty"`
	LegalEntityID    *int64          `json:"legal_entity_id,omitempty"`
	CreatedBy        *string         `json:"created_by,omitempty"`
	RecordStatus     string          `json:"record_status"`
	Items            []ItemOutput    `json:"items,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func NewProposalOutput(p *domain.Proposal) ProposalOutput {
	out := ProposalOutput{
		ID:               p.ID,
		Number:           p.Number,
		Status:           string(p.Status),
		ValidUntil:       p.ValidUntil,
		Notes:            p.Notes,
		DiscountPercent:  p.DiscountPercent,
		Total:            p.Total,
		ApprovalRequired: p.ApprovalRequired,
		ApprovedBy:       p.ApprovedBy,
		ApprovedAt:       p.ApprovedAt,
		RejectionReason:  p.RejectionReason,
		PDFGenerated:     p.PDFGenerated,
		PDFPath:          p.PDFPath,
		PDFGeneratedAt:   p.PDFGeneratedAt,
		ClientID:         p.ClientID,
		LegalEntityID:    p.LegalEntityID,
		CreatedBy:        p.CreatedBy,
		RecordStatus:     string(p.RecordStatus),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	for _, it := range p.Items {
		out.Items = append(out.Items, ItemOutput{
			ID:              it.ID,
			ServiceID:       it.ServiceID,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			LineTotal:       it.LineTotal,
			Status:          string(it.RecordStatus),
		})
	}
	return out
}

func NewProposalOutputs(ps []domain.Proposal) []ProposalOutput {
	out := make([]ProposalOutput, 0, len(ps))
	for i := range ps {
		out = append(out, NewProposalOutput(&ps[i]))
	}
	return out
}
