package engine

import (
	"fmt"
	"time"

	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/proposal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultApprovalThreshold = 10000
	// HighDiscountPercent is the discount above which a proposal is flagged.
	HighDiscountPercent = 50
)

var (
	hundred = decimal.NewFromInt(100)
	// lineTotalTolerance absorbs rounding of stored line totals to cents.
	lineTotalTolerance = decimal.RequireFromString("0.005")
)

// Engine computes totals and validates proposals. It never persists anything;
// callers are responsible for saving the mutated aggregate.
type Engine struct {
	approvalThreshold decimal.Decimal
	now               func() time.Time
}

type Option func(*Engine)

// WithClock overrides the time source used for validity checks and PDF timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithApprovalThreshold sets the total above which approval is suggested.
func WithApprovalThreshold(threshold decimal.Decimal) Option {
	return func(e *Engine) { e.approvalThreshold = threshold }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		approvalThreshold: decimal.NewFromInt(DefaultApprovalThreshold),
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CalculateTotals sums the active line items, applies the overall discount and
// stores the rounded total on p when it changed.
func (e *Engine) CalculateTotals(p *domain.Proposal) (domain.Totals, error) {
	if err := checkAggregate(p); err != nil {
		return domain.Totals{}, err
	}

	subtotal := decimal.Zero
	quantity := 0
	for _, item := range p.ActiveItems() {
		subtotal = subtotal.Add(item.LineTotal)
		quantity += item.Quantity
	}

	discountAmount := subtotal.Mul(p.DiscountPercent).Div(hundred)
	total := subtotal.Sub(discountAmount).Round(2)

	average := decimal.Zero
	if quantity > 0 {
		average = subtotal.Div(decimal.NewFromInt(int64(quantity))).Round(2)
	}

	if !p.Total.Equal(total) {
		p.Total = total
	}

	return domain.Totals{
		Subtotal:         subtotal.Round(2),
		DiscountPercent:  p.DiscountPercent,
		DiscountAmount:   discountAmount.Round(2),
		Total:            total,
		TotalQuantity:    quantity,
		AverageUnitValue: average,
	}, nil
}

// Validate reports blocking errors and non-blocking warnings for p. The
// proposal is left untouched; totals are computed on a copy.
func (e *Engine) Validate(p *domain.Proposal) (domain.ValidationResult, error) {
	if err := checkAggregate(p); err != nil {
		return domain.ValidationResult{}, err
	}

	errs := []string{}
	warnings := []string{}

	if p.Number == "" {
		errs = append(errs, "proposal number is required")
	}
	if !p.HasCounterparty() {
		errs = append(errs, "a client or legal entity must be set")
	}

	active := p.ActiveItems()
	if len(active) == 0 {
		errs = append(errs, "proposal must have at least one item")
	}

	if p.ValidUntil != nil && p.ValidUntil.Before(e.now()) {
		warnings = append(warnings, "proposal validity date has passed")
	}
	if p.DiscountPercent.GreaterThan(decimal.NewFromInt(HighDiscountPercent)) {
		warnings = append(warnings, fmt.Sprintf("discount above %d%% may require approval", HighDiscountPercent))
	}

	for _, item := range active {
		if item.Quantity <= 0 {
			errs = append(errs, fmt.Sprintf("item %d: quantity must be positive", item.ID))
		}
		if !item.UnitPrice.IsPositive() {
			errs = append(errs, fmt.Sprintf("item %d: unit price must be positive", item.ID))
		}
		if item.LineTotal.Sub(item.ExpectedTotal()).Abs().GreaterThan(lineTotalTolerance) {
			warnings = append(warnings, fmt.Sprintf("item %d: line total does not match quantity x unit price", item.ID))
		}
	}

	snapshot := *p
	totals, err := e.CalculateTotals(&snapshot)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	if totals.Total.GreaterThan(e.approvalThreshold) && !p.ApprovalRequired {
		warnings = append(warnings, fmt.Sprintf("total exceeds approval threshold of %s; consider marking the proposal as requiring approval", e.approvalThreshold.StringFixed(2)))
	}

	return domain.ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
		Summary:  fmt.Sprintf("%d error(s), %d warning(s)", len(errs), len(warnings)),
	}, nil
}

// UpdatePDFStatus records the outcome of a PDF generation attempt on p.
// The path and timestamp are only touched on success.
func (e *Engine) UpdatePDFStatus(p *domain.Proposal, filePath string, success bool) error {
	if p == nil {
		return fmt.Errorf("%w: proposal is nil", autherror.ErrValidation)
	}

	p.PDFGenerated = success
	if success && filePath != "" {
		path := filePath
		p.PDFPath = &path
	}
	if success {
		now := e.now()
		p.PDFGeneratedAt = &now
	}
	return nil
}

func checkAggregate(p *domain.Proposal) error {
	if p == nil {
		return fmt.Errorf("%w: proposal is nil", autherror.ErrValidation)
	}
	if p.DiscountPercent.IsNegative() || p.DiscountPercent.GreaterThan(hundred) {
		return fmt.Errorf("%w: discount percent %s outside 0-100", autherror.ErrValidation, p.DiscountPercent)
	}
	return nil
}
