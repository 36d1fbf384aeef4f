package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dinheirorapido/loanledger/internal/domain"
)

// ClientRepository defines data access for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Client, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*domain.Client, error)
}

// LoanRepository defines data access for loans.
type LoanRepository interface {
	CreateTx(ctx context.Context, tx Transaction, loan *domain.Loan) error
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Loan, error)
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.LoanStatus) error
	UpdateInstallments(ctx context.Context, tx Transaction, id string, installments int, installmentAmount decimal.Decimal) error
	List(ctx context.Context, limit, offset int) ([]*domain.Loan, error)
	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.Loan, error)
	ListByStatus(ctx context.Context, status domain.LoanStatus, limit, offset int) ([]*domain.Loan, error)
	ListOpen(ctx context.Context) ([]*domain.Loan, error)
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	DeleteByClientTx(ctx context.Context, tx Transaction, clientID string) error
}

// PaymentRepository defines data access for payments.
type PaymentRepository interface {
	CreateTx(ctx context.Context, tx Transaction, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByLoan(ctx context.Context, loanID string) ([]*domain.Payment, error)
	ListByLoanTx(ctx context.Context, tx Transaction, loanID string) ([]*domain.Payment, error)
	SetReceiptIDTx(ctx context.Context, tx Transaction, paymentID, receiptID string) error
	DeleteByLoanTx(ctx context.Context, tx Transaction, loanID string) error
	DeleteByClientTx(ctx context.Context, tx Transaction, clientID string) error
}

// ReceiptRepository defines data access for receipts.
type ReceiptRepository interface {
	CreateTx(ctx context.Context, tx Transaction, receipt *domain.Receipt) error
	// NextNumber reserves the next value of the receipt number sequence
	// within the transaction issuing the receipt.
	NextNumber(ctx context.Context, tx Transaction) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.Receipt, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Receipt, error)
	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.Receipt, error)
	ListByLoan(ctx context.Context, loanID string) ([]*domain.Receipt, error)
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	DeleteByLoanTx(ctx context.Context, tx Transaction, loanID string) error
	DeleteByClientTx(ctx context.Context, tx Transaction, clientID string) error
}

// PixKeyRepository defines data access for pix keys.
type PixKeyRepository interface {
	Create(ctx context.Context, key *domain.PixKey) error
	GetByID(ctx context.Context, id string) (*domain.PixKey, error)
	Update(ctx context.Context, key *domain.PixKey) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.PixKey, error)
}

// ReportRepository defines aggregate queries for reporting.
type ReportRepository interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	LoanReport(ctx context.Context, filter domain.ReportFilter) (*domain.LoanReport, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient database failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
