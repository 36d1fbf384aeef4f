package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/recibo"
)

// ReceiptUseCase handles receipt queries, text rendering, and sharing.
type ReceiptUseCase struct {
	txManager   TransactionManager
	receiptRepo ReceiptRepository
	clientRepo  ClientRepository
	loanRepo    LoanRepository
	paymentRepo PaymentRepository
	outboxRepo  OutboxRepository
	now         func() time.Time
}

// NewReceiptUseCase creates a new ReceiptUseCase.
func NewReceiptUseCase(
	txManager TransactionManager,
	receiptRepo ReceiptRepository,
	clientRepo ClientRepository,
	loanRepo LoanRepository,
	paymentRepo PaymentRepository,
	outboxRepo OutboxRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		txManager:   txManager,
		receiptRepo: receiptRepo,
		clientRepo:  clientRepo,
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		outboxRepo:  outboxRepo,
		now:         time.Now,
	}
}

// GetReceipt retrieves a receipt by ID.
func (uc *ReceiptUseCase) GetReceipt(ctx context.Context, id string) (*domain.Receipt, error) {
	return uc.receiptRepo.GetByID(ctx, id)
}

// ListReceiptsInput represents input for listing receipts.
type ListReceiptsInput struct {
	ClientID string
	LoanID   string
	Limit    int
	Offset   int
}

// ListReceipts lists receipts, optionally filtered by client or loan.
func (uc *ReceiptUseCase) ListReceipts(ctx context.Context, input ListReceiptsInput) ([]*domain.Receipt, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	switch {
	case input.LoanID != "":
		return uc.receiptRepo.ListByLoan(ctx, input.LoanID)
	case input.ClientID != "":
		return uc.receiptRepo.ListByClient(ctx, input.ClientID, limit, offset)
	default:
		return uc.receiptRepo.List(ctx, limit, offset)
	}
}

// DeleteReceipt removes a receipt. The loan's status is left alone: deleting
// the paper trail does not unrecord the payment.
func (uc *ReceiptUseCase) DeleteReceipt(ctx context.Context, id string) error {
	receipt, err := uc.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.receiptRepo.DeleteTx(ctx, tx, id); err != nil {
		return err
	}

	event := newOutboxEvent(domain.AggregateTypeReceipt, id, domain.EventTypeReceiptDeleted, map[string]any{
		"receipt_id":     id,
		"receipt_number": receipt.ReceiptNumber,
		"loan_id":        receipt.LoanID,
	}, uc.now().UTC())

	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// RenderText renders the receipt as pt-BR text for printing or sharing.
func (uc *ReceiptUseCase) RenderText(ctx context.Context, id string) (string, error) {
	doc, err := uc.buildDocument(ctx, id)
	if err != nil {
		return "", err
	}

	return recibo.Render(*doc), nil
}

// WhatsAppLink renders the receipt and wraps it in a wa.me deep link. When
// phone is empty the client's registered phone is used.
func (uc *ReceiptUseCase) WhatsAppLink(ctx context.Context, id, phone string) (string, error) {
	receipt, err := uc.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if phone == "" {
		client, err := uc.clientRepo.GetByID(ctx, receipt.ClientID)
		if err != nil {
			return "", err
		}
		phone = client.Phone
	}

	text, err := uc.RenderText(ctx, id)
	if err != nil {
		return "", err
	}

	return recibo.ShareLink(phone, text)
}

func (uc *ReceiptUseCase) buildDocument(ctx context.Context, id string) (*recibo.Document, error) {
	receipt, err := uc.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client, err := uc.clientRepo.GetByID(ctx, receipt.ClientID)
	if err != nil {
		return nil, err
	}

	loan, err := uc.loanRepo.GetByID(ctx, receipt.LoanID)
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.ListByLoan(ctx, receipt.LoanID)
	if err != nil {
		return nil, err
	}

	doc := &recibo.Document{
		Number:         receipt.ReceiptNumber,
		ClientName:     client.Name,
		DueDate:        receipt.DueDate,
		PaymentDate:    receipt.Date,
		TotalConfirmed: domain.TotalPaid(payments),
		PaidToday:      receipt.Amount,
		GeneratedAt:    uc.now(),
	}

	if paid, expected := loan.InstallmentProgress(payments); expected > 0 {
		doc.InstallmentsPaid = fmt.Sprintf("%d/%d", paid, expected)
	}

	return doc, nil
}
