package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dinheirorapido/loanledger/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// LoanUseCase handles loan origination and lifecycle logic.
type LoanUseCase struct {
	txManager   TransactionManager
	loanRepo    LoanRepository
	paymentRepo PaymentRepository
	receiptRepo ReceiptRepository
	clientRepo  ClientRepository
	outboxRepo  OutboxRepository
	retrier     Retrier
	idGen       IDGenerator
	now         func() time.Time
}

// NewLoanUseCase creates a new LoanUseCase.
func NewLoanUseCase(
	txManager TransactionManager,
	loanRepo LoanRepository,
	paymentRepo PaymentRepository,
	receiptRepo ReceiptRepository,
	clientRepo ClientRepository,
	outboxRepo OutboxRepository,
	retrier Retrier,
	idGen IDGenerator,
) *LoanUseCase {
	return &LoanUseCase{
		txManager:   txManager,
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		receiptRepo: receiptRepo,
		clientRepo:  clientRepo,
		outboxRepo:  outboxRepo,
		retrier:     retrier,
		idGen:       idGen,
		now:         time.Now,
	}
}

// CreateLoanInput represents input for originating a loan.
type CreateLoanInput struct {
	ClientID     string
	Amount       decimal.Decimal
	InterestRate decimal.Decimal
	PaymentType  domain.PaymentType
	Installments int
	StartDate    time.Time
	DueDate      *time.Time
	Notes        string
}

// CreateLoan originates a loan: interest, total, and per-installment amounts
// are computed from the principal and rate, and due/end dates are derived
// from the modality when not given (daily loans run start + N days, the rest
// default to a 30-day term).
func (uc *LoanUseCase) CreateLoan(ctx context.Context, input CreateLoanInput) (*domain.Loan, error) {
	if _, err := uc.clientRepo.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	now := uc.now().UTC()

	start := input.StartDate
	if start.IsZero() {
		start = now
	}

	interest := input.Amount.Mul(input.InterestRate).Div(hundred).Round(2)
	total := input.Amount.Add(interest)

	installmentAmount := decimal.Zero
	if input.Installments > 0 {
		installmentAmount = total.DivRound(decimal.NewFromInt(int64(input.Installments)), 2)
	}

	var dueDate time.Time
	switch {
	case input.DueDate != nil:
		dueDate = *input.DueDate
	case input.PaymentType == domain.PaymentTypeDiario && input.Installments > 0:
		dueDate = start.AddDate(0, 0, input.Installments)
	default:
		dueDate = start.AddDate(0, 0, DefaultLoanTermDays)
	}

	loan := &domain.Loan{
		ID:                uc.idGen.Generate(),
		ClientID:          input.ClientID,
		Amount:            input.Amount,
		InterestRate:      input.InterestRate,
		InterestAmount:    interest,
		TotalAmount:       total,
		Installments:      input.Installments,
		InstallmentAmount: installmentAmount,
		PaymentType:       input.PaymentType,
		StartDate:         start,
		DueDate:           dueDate,
		EndDate:           dueDate,
		Status:            domain.LoanStatusActive,
		Notes:             input.Notes,
		CreatedAt:         now,
	}

	if err := loan.Validate(); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.loanRepo.CreateTx(ctx, tx, loan); err != nil {
		return nil, err
	}

	event := newOutboxEvent(domain.AggregateTypeLoan, loan.ID, domain.EventTypeLoanCreated, domain.LoanCreatedEvent{
		LoanID:      loan.ID,
		ClientID:    loan.ClientID,
		Amount:      loan.Amount.String(),
		TotalAmount: loan.TotalAmount.String(),
		PaymentType: string(loan.PaymentType),
	}, now)

	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return loan, nil
}

// LoanDetail is a loan together with its payment history and derived
// financial summary.
type LoanDetail struct {
	Loan                 *domain.Loan
	Payments             []*domain.Payment
	TotalPaid            decimal.Decimal
	BalanceDue           decimal.Decimal
	PaidInstallments     int
	ExpectedInstallments int
}

// GetLoan retrieves a loan with its financial summary. The status is
// recomputed from the payment history and the persisted value is updated
// when the derivation disagrees with it.
func (uc *LoanUseCase) GetLoan(ctx context.Context, id string) (*LoanDetail, error) {
	loan, err := uc.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.ListByLoan(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := uc.refreshStatus(ctx, loan, payments); err != nil {
		return nil, err
	}

	paid, expected := loan.InstallmentProgress(payments)

	return &LoanDetail{
		Loan:                 loan,
		Payments:             payments,
		TotalPaid:            domain.TotalPaid(payments),
		BalanceDue:           loan.BalanceDue(payments),
		PaidInstallments:     paid,
		ExpectedInstallments: expected,
	}, nil
}

// ListLoansInput represents input for listing loans.
type ListLoansInput struct {
	ClientID string
	Status   domain.LoanStatus
	Limit    int
	Offset   int
}

// ListLoans lists loans, optionally filtered by client or status.
func (uc *LoanUseCase) ListLoans(ctx context.Context, input ListLoansInput) ([]*domain.Loan, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	switch {
	case input.ClientID != "":
		return uc.loanRepo.ListByClient(ctx, input.ClientID, limit, offset)
	case input.Status != "":
		return uc.loanRepo.ListByStatus(ctx, input.Status, limit, offset)
	default:
		return uc.loanRepo.List(ctx, limit, offset)
	}
}

// DeleteLoan removes a loan with its payments and receipts in a single
// retried transaction.
func (uc *LoanUseCase) DeleteLoan(ctx context.Context, id string) error {
	loan, err := uc.loanRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.receiptRepo.DeleteByLoanTx(ctx, tx, id); err != nil {
			return err
		}

		if err := uc.paymentRepo.DeleteByLoanTx(ctx, tx, id); err != nil {
			return err
		}

		if err := uc.loanRepo.DeleteTx(ctx, tx, id); err != nil {
			return err
		}

		event := newOutboxEvent(domain.AggregateTypeLoan, id, domain.EventTypeLoanDeleted, map[string]any{
			"loan_id":   id,
			"client_id": loan.ClientID,
		}, uc.now().UTC())

		if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
}

// SweepResult summarizes a status sweep run.
type SweepResult struct {
	Examined     int
	Transitioned int
}

// SweepStatuses recomputes the status of every non-completed loan. Overdue
// loans flip to defaulted without waiting for someone to open them.
func (uc *LoanUseCase) SweepStatuses(ctx context.Context) (*SweepResult, error) {
	loans, err := uc.loanRepo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{}
	for _, loan := range loans {
		payments, err := uc.paymentRepo.ListByLoan(ctx, loan.ID)
		if err != nil {
			return nil, err
		}

		changed, err := uc.refreshStatus(ctx, loan, payments)
		if err != nil {
			return nil, err
		}

		result.Examined++
		if changed {
			result.Transitioned++
		}
	}

	return result, nil
}

// refreshStatus reconciles the persisted status with the derived one. The
// transition and its change event are written atomically.
func (uc *LoanUseCase) refreshStatus(ctx context.Context, loan *domain.Loan, payments []*domain.Payment) (bool, error) {
	computed := loan.ComputeStatus(payments, uc.now())
	if computed == loan.Status {
		return false, nil
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	if err := uc.loanRepo.UpdateStatus(ctx, tx, loan.ID, computed); err != nil {
		return false, err
	}

	event := newOutboxEvent(domain.AggregateTypeLoan, loan.ID, domain.EventTypeLoanStatusChanged, domain.LoanStatusChangedEvent{
		LoanID:    loan.ID,
		ClientID:  loan.ClientID,
		OldStatus: string(loan.Status),
		NewStatus: string(computed),
	}, uc.now().UTC())

	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}

	loan.Status = computed

	return true, nil
}
