package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// ReceiptRepository implements usecase.ReceiptRepository.
type ReceiptRepository struct {
	pool *pgxpool.Pool
}

// NewReceiptRepository creates a new ReceiptRepository.
func NewReceiptRepository(pool *pgxpool.Pool) *ReceiptRepository {
	return &ReceiptRepository{pool: pool}
}

const receiptColumns = `id, client_id, loan_id, payment_id, amount, date, due_date, receipt_number, created_at`

// CreateTx inserts a receipt within a transaction.
func (r *ReceiptRepository) CreateTx(ctx context.Context, tx usecase.Transaction, receipt *domain.Receipt) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := pgxTx.Exec(ctx, query,
		receipt.ID,
		receipt.ClientID,
		receipt.LoanID,
		receipt.PaymentID,
		receipt.Amount,
		receipt.Date,
		receipt.DueDate,
		receipt.ReceiptNumber,
		receipt.CreatedAt,
	)

	return err
}

// NextNumber reserves the next receipt number from the database sequence.
// Reserving inside the issuing transaction keeps numbers unique; gaps from
// rolled-back transactions are acceptable.
func (r *ReceiptRepository) NextNumber(ctx context.Context, tx usecase.Transaction) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()

	var seq int64
	err := pgxTx.QueryRow(ctx, `SELECT nextval('receipt_number_seq')`).Scan(&seq)

	return seq, err
}

// GetByID retrieves a receipt by ID.
func (r *ReceiptRepository) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE id = $1`

	receipt, err := scanReceipt(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrReceiptNotFound
	}

	return receipt, err
}

// List retrieves receipts with pagination.
func (r *ReceiptRepository) List(ctx context.Context, limit, offset int) ([]*domain.Receipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM receipts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReceipts(rows)
}

// ListByClient retrieves a client's receipts.
func (r *ReceiptRepository) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.Receipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM receipts
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReceipts(rows)
}

// ListByLoan retrieves a loan's receipts.
func (r *ReceiptRepository) ListByLoan(ctx context.Context, loanID string) ([]*domain.Receipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM receipts
		WHERE loan_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReceipts(rows)
}

// DeleteTx deletes a receipt within a transaction.
func (r *ReceiptRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM receipts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrReceiptNotFound
	}

	return nil
}

// DeleteByLoanTx deletes all receipts of a loan within a transaction.
func (r *ReceiptRepository) DeleteByLoanTx(ctx context.Context, tx usecase.Transaction, loanID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM receipts WHERE loan_id = $1`, loanID)

	return err
}

// DeleteByClientTx deletes all of a client's receipts within a transaction.
func (r *ReceiptRepository) DeleteByClientTx(ctx context.Context, tx usecase.Transaction, clientID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM receipts WHERE client_id = $1`, clientID)

	return err
}

func scanReceipt(row pgx.Row) (*domain.Receipt, error) {
	var receipt domain.Receipt

	err := row.Scan(
		&receipt.ID,
		&receipt.ClientID,
		&receipt.LoanID,
		&receipt.PaymentID,
		&receipt.Amount,
		&receipt.Date,
		&receipt.DueDate,
		&receipt.ReceiptNumber,
		&receipt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &receipt, nil
}

func scanReceipts(rows pgx.Rows) ([]*domain.Receipt, error) {
	var receipts []*domain.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	return receipts, rows.Err()
}
