package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// LoanRepository implements usecase.LoanRepository.
type LoanRepository struct {
	pool *pgxpool.Pool
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

const loanColumns = `id, client_id, amount, interest_rate, interest_amount, total_amount,
	installments, number_of_installments, installment_amount, payment_type,
	start_date, due_date, end_date, status, notes, created_at`

// CreateTx inserts a loan within a transaction.
func (r *LoanRepository) CreateTx(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := pgxTx.Exec(ctx, query, loanArgs(loan)...)

	return err
}

// GetByID retrieves a loan by ID.
func (r *LoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	loan, err := scanLoan(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrLoanNotFound
	}

	return loan, err
}

// GetByIDForUpdate retrieves a loan by ID with a row lock.
func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Loan, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1 FOR UPDATE`

	loan, err := scanLoan(pgxTx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrLoanNotFound
	}

	return loan, err
}

// UpdateStatus updates a loan's persisted status within a transaction.
func (r *LoanRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.LoanStatus) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `UPDATE loans SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLoanNotFound
	}

	return nil
}

// UpdateInstallments updates a loan's expected installment count and
// per-installment amount within a transaction.
func (r *LoanRepository) UpdateInstallments(ctx context.Context, tx usecase.Transaction, id string, installments int, installmentAmount decimal.Decimal) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE loans SET installments = $2, installment_amount = $3 WHERE id = $1`,
		id, installments, installmentAmount)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLoanNotFound
	}

	return nil
}

// List retrieves loans with pagination.
func (r *LoanRepository) List(ctx context.Context, limit, offset int) ([]*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoans(rows)
}

// ListByClient retrieves a client's loans.
func (r *LoanRepository) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoans(rows)
}

// ListByStatus retrieves loans in a given status.
func (r *LoanRepository) ListByStatus(ctx context.Context, status domain.LoanStatus, limit, offset int) ([]*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoans(rows)
}

// ListOpen retrieves every loan that has not reached the terminal completed
// state. Used by the status sweep.
func (r *LoanRepository) ListOpen(ctx context.Context) ([]*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE status <> $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, domain.LoanStatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoans(rows)
}

// DeleteTx deletes a loan within a transaction.
func (r *LoanRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLoanNotFound
	}

	return nil
}

// DeleteByClientTx deletes all of a client's loans within a transaction.
func (r *LoanRepository) DeleteByClientTx(ctx context.Context, tx usecase.Transaction, clientID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM loans WHERE client_id = $1`, clientID)

	return err
}

func loanArgs(loan *domain.Loan) []any {
	return []any{
		loan.ID,
		loan.ClientID,
		loan.Amount,
		loan.InterestRate,
		loan.InterestAmount,
		loan.TotalAmount,
		loan.Installments,
		loan.NumberOfInstallments,
		loan.InstallmentAmount,
		loan.PaymentType,
		loan.StartDate,
		loan.DueDate,
		loan.EndDate,
		loan.Status,
		loan.Notes,
		loan.CreatedAt,
	}
}

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var loan domain.Loan

	err := row.Scan(
		&loan.ID,
		&loan.ClientID,
		&loan.Amount,
		&loan.InterestRate,
		&loan.InterestAmount,
		&loan.TotalAmount,
		&loan.Installments,
		&loan.NumberOfInstallments,
		&loan.InstallmentAmount,
		&loan.PaymentType,
		&loan.StartDate,
		&loan.DueDate,
		&loan.EndDate,
		&loan.Status,
		&loan.Notes,
		&loan.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &loan, nil
}

func scanLoans(rows pgx.Rows) ([]*domain.Loan, error) {
	var loans []*domain.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}

	return loans, rows.Err()
}
