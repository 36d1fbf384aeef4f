package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dinheirorapido/loanledger/internal/domain"
)

// PaymentUseCase records payments and issues their receipts.
type PaymentUseCase struct {
	txManager   TransactionManager
	loanRepo    LoanRepository
	paymentRepo PaymentRepository
	receiptRepo ReceiptRepository
	outboxRepo  OutboxRepository
	idGen       IDGenerator
	now         func() time.Time
}

// NewPaymentUseCase creates a new PaymentUseCase.
func NewPaymentUseCase(
	txManager TransactionManager,
	loanRepo LoanRepository,
	paymentRepo PaymentRepository,
	receiptRepo ReceiptRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
) *PaymentUseCase {
	return &PaymentUseCase{
		txManager:   txManager,
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		receiptRepo: receiptRepo,
		outboxRepo:  outboxRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

// RecordPaymentInput represents input for recording a payment. Kind is
// optional; when empty it is inferred from the loan's modality.
type RecordPaymentInput struct {
	LoanID            string
	Amount            decimal.Decimal
	Date              *time.Time
	Kind              domain.PaymentKind
	InstallmentNumber int
}

// RecordPaymentResult is the outcome of recording a payment: the payment,
// its receipt, and the loan with its refreshed status.
type RecordPaymentResult struct {
	Payment *domain.Payment
	Receipt *domain.Receipt
	Loan    *domain.Loan
}

// RecordPayment records a payment and issues its receipt in one database
// transaction. The loan row is locked for the duration, so the payment,
// the receipt, the receipt number, and the status transition are all
// observed together or not at all.
func (uc *PaymentUseCase) RecordPayment(ctx context.Context, input RecordPaymentInput) (*RecordPaymentResult, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	now := uc.now().UTC()

	paymentDate := now
	if input.Date != nil {
		paymentDate = input.Date.UTC()
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	loan, err := uc.loanRepo.GetByIDForUpdate(ctx, tx, input.LoanID)
	if err != nil {
		return nil, err
	}

	if loan.Status == domain.LoanStatusCompleted {
		return nil, domain.ErrLoanCompleted
	}

	kind := input.Kind
	if kind == "" {
		kind = inferPaymentKind(loan, input.Amount)
	}

	payments, err := uc.paymentRepo.ListByLoanTx(ctx, tx, loan.ID)
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:                uc.idGen.Generate(),
		LoanID:            loan.ID,
		Amount:            input.Amount,
		Date:              paymentDate,
		InstallmentNumber: input.InstallmentNumber,
		Kind:              kind,
		CreatedAt:         now,
	}

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if err := uc.paymentRepo.CreateTx(ctx, tx, payment); err != nil {
		return nil, err
	}

	// Daily loans collected at a different per-day amount get their expected
	// day count recalibrated so completion tracks the actual collection pace.
	if err := uc.recalibrateDiario(ctx, tx, loan, input.Amount); err != nil {
		return nil, err
	}

	seq, err := uc.receiptRepo.NextNumber(ctx, tx)
	if err != nil {
		return nil, err
	}

	receipt := &domain.Receipt{
		ID:            uc.idGen.Generate(),
		ClientID:      loan.ClientID,
		LoanID:        loan.ID,
		PaymentID:     payment.ID,
		Amount:        payment.Amount,
		Date:          paymentDate,
		DueDate:       loan.DueDate,
		ReceiptNumber: domain.FormatReceiptNumber(seq),
		CreatedAt:     now,
	}

	if err := uc.receiptRepo.CreateTx(ctx, tx, receipt); err != nil {
		return nil, err
	}

	if err := uc.paymentRepo.SetReceiptIDTx(ctx, tx, payment.ID, receipt.ID); err != nil {
		return nil, err
	}
	payment.ReceiptID = &receipt.ID

	payments = append(payments, payment)

	computed := loan.ComputeStatus(payments, now)
	if computed != loan.Status {
		if err := uc.loanRepo.UpdateStatus(ctx, tx, loan.ID, computed); err != nil {
			return nil, err
		}

		statusEvent := newOutboxEvent(domain.AggregateTypeLoan, loan.ID, domain.EventTypeLoanStatusChanged, domain.LoanStatusChangedEvent{
			LoanID:    loan.ID,
			ClientID:  loan.ClientID,
			OldStatus: string(loan.Status),
			NewStatus: string(computed),
		}, now)

		if err := uc.outboxRepo.Create(ctx, tx, statusEvent); err != nil {
			return nil, err
		}

		loan.Status = computed
	}

	paymentEvent := newOutboxEvent(domain.AggregateTypePayment, payment.ID, domain.EventTypePaymentRecorded, domain.PaymentRecordedEvent{
		PaymentID: payment.ID,
		LoanID:    loan.ID,
		Amount:    payment.Amount.String(),
		Kind:      string(payment.Kind),
	}, now)

	if err := uc.outboxRepo.Create(ctx, tx, paymentEvent); err != nil {
		return nil, err
	}

	receiptEvent := newOutboxEvent(domain.AggregateTypeReceipt, receipt.ID, domain.EventTypeReceiptIssued, domain.ReceiptIssuedEvent{
		ReceiptID:     receipt.ID,
		ReceiptNumber: receipt.ReceiptNumber,
		PaymentID:     payment.ID,
		LoanID:        loan.ID,
		Amount:        receipt.Amount.String(),
	}, now)

	if err := uc.outboxRepo.Create(ctx, tx, receiptEvent); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &RecordPaymentResult{
		Payment: payment,
		Receipt: receipt,
		Loan:    loan,
	}, nil
}

// GetPayment retrieves a payment by ID.
func (uc *PaymentUseCase) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}

// ListPayments lists the payments recorded against a loan.
func (uc *PaymentUseCase) ListPayments(ctx context.Context, loanID string) ([]*domain.Payment, error) {
	if _, err := uc.loanRepo.GetByID(ctx, loanID); err != nil {
		return nil, err
	}

	return uc.paymentRepo.ListByLoan(ctx, loanID)
}

// inferPaymentKind mirrors the operator UI defaults: installment payments
// are settlements of their slice, interest-only payments settle the loan
// only when they cover the total, daily collections stay partial.
func inferPaymentKind(loan *domain.Loan, amount decimal.Decimal) domain.PaymentKind {
	switch loan.PaymentType {
	case domain.PaymentTypeInterestOnly:
		if amount.GreaterThanOrEqual(loan.TotalAmount) {
			return domain.PaymentKindFull
		}
		return domain.PaymentKindInterestOnly

	case domain.PaymentTypeDiario:
		return domain.PaymentKindInterestOnly

	default:
		return domain.PaymentKindFull
	}
}

func (uc *PaymentUseCase) recalibrateDiario(ctx context.Context, tx Transaction, loan *domain.Loan, amount decimal.Decimal) error {
	if loan.PaymentType != domain.PaymentTypeDiario {
		return nil
	}

	if !loan.TotalAmount.IsPositive() || amount.Equal(loan.InstallmentAmount) {
		return nil
	}

	expected := int(loan.TotalAmount.Div(amount).Ceil().IntPart())
	if expected <= 0 || expected == loan.ExpectedInstallments() {
		return nil
	}

	if err := uc.loanRepo.UpdateInstallments(ctx, tx, loan.ID, expected, amount); err != nil {
		return err
	}

	loan.Installments = expected
	loan.InstallmentAmount = amount

	return nil
}
