package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentKind distinguishes a recurring interest payment from a settlement.
type PaymentKind string

const (
	// PaymentKindInterestOnly is a partial or recurring-interest payment.
	PaymentKindInterestOnly PaymentKind = "interest_only"

	// PaymentKindFull marks a settlement (quitação) payment.
	PaymentKindFull PaymentKind = "full"
)

// IsValid checks if the payment kind is known.
func (k PaymentKind) IsValid() bool {
	return k == PaymentKindInterestOnly || k == PaymentKindFull
}

// Payment is a single recorded payment against a loan. Payments are
// immutable once created; there is no edit path.
type Payment struct {
	ID                string
	LoanID            string
	Amount            decimal.Decimal
	Date              time.Time
	InstallmentNumber int
	Kind              PaymentKind
	ReceiptID         *string
	CreatedAt         time.Time
}

// Validate validates a payment before it is recorded.
func (p *Payment) Validate() error {
	if p.LoanID == "" {
		return ErrLoanRequired
	}

	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !p.Kind.IsValid() {
		return ErrInvalidPaymentKind
	}

	return nil
}
