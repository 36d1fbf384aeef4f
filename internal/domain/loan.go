package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType identifies a loan's repayment modality.
type PaymentType string

const (
	// PaymentTypeInstallments is a fixed number of scheduled payments.
	PaymentTypeInstallments PaymentType = "installments"

	// PaymentTypeInterestOnly charges recurring interest; principal is due in
	// a single settlement at the end.
	PaymentTypeInterestOnly PaymentType = "interest_only"

	// PaymentTypeDiario is an open-ended daily loan: the operator collects
	// day by day until the configured count is reached or the loan is
	// settled manually.
	PaymentTypeDiario PaymentType = "diario"
)

// IsValid checks if the payment type is known.
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeInstallments, PaymentTypeInterestOnly, PaymentTypeDiario:
		return true
	}
	return false
}

// LoanStatus is the loan's lifecycle state. It is derived from the payment
// history; the persisted value is only a cache of the last derivation.
type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "active"
	LoanStatusCompleted LoanStatus = "completed"
	LoanStatusDefaulted LoanStatus = "defaulted"
)

// Loan represents a loan originated for a client.
type Loan struct {
	ID                   string
	ClientID             string
	Amount               decimal.Decimal
	InterestRate         decimal.Decimal
	InterestAmount       decimal.Decimal
	TotalAmount          decimal.Decimal
	Installments         int
	NumberOfInstallments int
	InstallmentAmount    decimal.Decimal
	PaymentType          PaymentType
	StartDate            time.Time
	DueDate              time.Time
	EndDate              time.Time
	Status               LoanStatus
	Notes                string
	CreatedAt            time.Time
}

// Validate validates a loan at origination time.
func (l *Loan) Validate() error {
	if l.ClientID == "" {
		return ErrClientRequired
	}

	if !l.PaymentType.IsValid() {
		return ErrInvalidPaymentType
	}

	if l.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if l.InterestRate.IsNegative() {
		return ErrInvalidInterestRate
	}

	// With interest the total owed can never be below the principal.
	if l.InterestRate.IsPositive() && l.TotalAmount.LessThan(l.Amount) {
		return ErrTotalBelowPrincipal
	}

	return nil
}

// ExpectedInstallments returns the configured installment count, falling back
// to the legacy NumberOfInstallments field when Installments is unset.
func (l *Loan) ExpectedInstallments() int {
	if l.Installments > 0 {
		return l.Installments
	}

	if l.NumberOfInstallments > 0 {
		return l.NumberOfInstallments
	}

	return 0
}

// TotalPaid sums the confirmed amounts of the given payments.
func TotalPaid(payments []*Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}

	return total
}

// ComputeStatus derives the loan's lifecycle status from its payment history.
//
// Completed is a terminal state: once persisted it is returned as-is, so
// re-evaluation with stale or partially loaded payment data can never flip a
// settled loan back to active or defaulted.
func (l *Loan) ComputeStatus(payments []*Payment, today time.Time) LoanStatus {
	if l.Status == LoanStatusCompleted {
		return LoanStatusCompleted
	}

	if l.isSettled(payments) {
		return LoanStatusCompleted
	}

	if l.Overdue(today) {
		return LoanStatusDefaulted
	}

	return LoanStatusActive
}

func (l *Loan) isSettled(payments []*Payment) bool {
	switch l.PaymentType {
	case PaymentTypeDiario:
		// Either an explicit settlement payment or reaching the configured
		// day count closes a daily loan.
		if hasSettlementPayment(payments) {
			return true
		}

		expected := l.ExpectedInstallments()

		return expected > 0 && len(payments) >= expected

	case PaymentTypeInterestOnly:
		// Recurring interest never retires principal. Only a full payment
		// covering the total closes the loan.
		for _, p := range payments {
			if p.Kind == PaymentKindFull && p.Amount.GreaterThanOrEqual(l.TotalAmount) {
				return true
			}
		}

		return false

	default:
		if l.TotalAmount.IsPositive() && TotalPaid(payments).GreaterThanOrEqual(l.TotalAmount) {
			return true
		}

		expected := l.ExpectedInstallments()

		return expected > 0 && len(payments) >= expected
	}
}

// Overdue reports whether today is strictly past the due date. The comparison
// is at day granularity: a loan due today is not overdue.
func (l *Loan) Overdue(today time.Time) bool {
	if l.DueDate.IsZero() {
		return false
	}

	return truncateToDay(today).After(truncateToDay(l.DueDate))
}

// BalanceDue returns the amount still owed on the loan. Interest-only loans
// always owe the full total until settlement, regardless of recorded interest
// payments.
func (l *Loan) BalanceDue(payments []*Payment) decimal.Decimal {
	if l.PaymentType == PaymentTypeInterestOnly {
		return l.TotalAmount
	}

	return l.TotalAmount.Sub(TotalPaid(payments))
}

// InstallmentProgress returns how many installments were paid against how
// many are expected ("3/10 parcelas").
func (l *Loan) InstallmentProgress(payments []*Payment) (paid, expected int) {
	return len(payments), l.ExpectedInstallments()
}

func hasSettlementPayment(payments []*Payment) bool {
	for _, p := range payments {
		if p.Kind == PaymentKindFull {
			return true
		}
	}

	return false
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
