package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

const paymentColumns = `id, loan_id, amount, date, installment_number, kind, receipt_id, created_at`

// CreateTx inserts a payment within a transaction.
func (r *PaymentRepository) CreateTx(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := pgxTx.Exec(ctx, query,
		payment.ID,
		payment.LoanID,
		payment.Amount,
		payment.Date,
		payment.InstallmentNumber,
		payment.Kind,
		payment.ReceiptID,
		payment.CreatedAt,
	)

	return err
}

// GetByID retrieves a payment by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPaymentNotFound
	}

	return payment, err
}

const listByLoanQuery = `
	SELECT ` + paymentColumns + `
	FROM payments
	WHERE loan_id = $1
	ORDER BY date, created_at
`

// ListByLoan retrieves all payments recorded against a loan.
func (r *PaymentRepository) ListByLoan(ctx context.Context, loanID string) ([]*domain.Payment, error) {
	rows, err := r.pool.Query(ctx, listByLoanQuery, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// ListByLoanTx retrieves a loan's payments within a transaction, so a
// payment being recorded sees a consistent history under the loan row lock.
func (r *PaymentRepository) ListByLoanTx(ctx context.Context, tx usecase.Transaction, loanID string) ([]*domain.Payment, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx, listByLoanQuery, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// SetReceiptIDTx links a payment to its receipt within a transaction.
func (r *PaymentRepository) SetReceiptIDTx(ctx context.Context, tx usecase.Transaction, paymentID, receiptID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `UPDATE payments SET receipt_id = $2 WHERE id = $1`, paymentID, receiptID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentNotFound
	}

	return nil
}

// DeleteByLoanTx deletes all payments of a loan within a transaction.
func (r *PaymentRepository) DeleteByLoanTx(ctx context.Context, tx usecase.Transaction, loanID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM payments WHERE loan_id = $1`, loanID)

	return err
}

// DeleteByClientTx deletes all payments belonging to a client's loans
// within a transaction.
func (r *PaymentRepository) DeleteByClientTx(ctx context.Context, tx usecase.Transaction, clientID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		DELETE FROM payments
		USING loans
		WHERE payments.loan_id = loans.id AND loans.client_id = $1
	`

	_, err := pgxTx.Exec(ctx, query, clientID)

	return err
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment

	err := row.Scan(
		&payment.ID,
		&payment.LoanID,
		&payment.Amount,
		&payment.Date,
		&payment.InstallmentNumber,
		&payment.Kind,
		&payment.ReceiptID,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func scanPayments(rows pgx.Rows) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
