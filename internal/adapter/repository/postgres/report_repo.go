package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dinheirorapido/loanledger/internal/domain"
)

// ReportRepository implements usecase.ReportRepository with aggregate SQL.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// DashboardStats computes the portfolio-wide aggregates. Received totals
// come from receipts, the canonical ledger of confirmed payments.
func (r *ReportRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM loans WHERE status = 'active'),
			(SELECT COALESCE(SUM(amount), 0) FROM loans),
			(SELECT COALESCE(SUM(amount), 0) FROM receipts),
			(SELECT COALESCE(SUM(total_amount), 0) FROM loans WHERE status <> 'completed')
	`

	var stats domain.DashboardStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalClients,
		&stats.ActiveLoans,
		&stats.TotalLoaned,
		&stats.TotalReceived,
		&stats.OutstandingBalance,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// LoanReport computes per-status counts and totals for loans matching the
// filter.
func (r *ReportRepository) LoanReport(ctx context.Context, filter domain.ReportFilter) (*domain.LoanReport, error) {
	where, args := loanFilterClause(filter)

	countsQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE l.status = 'active'),
			COUNT(*) FILTER (WHERE l.status = 'completed'),
			COUNT(*) FILTER (WHERE l.status = 'defaulted'),
			COALESCE(SUM(l.amount), 0)
		FROM loans l
	` + where

	var report domain.LoanReport
	err := r.pool.QueryRow(ctx, countsQuery, args...).Scan(
		&report.TotalLoans,
		&report.ActiveLoans,
		&report.CompletedLoans,
		&report.DefaultedLoans,
		&report.TotalLoaned,
	)
	if err != nil {
		return nil, err
	}

	receivedQuery := `
		SELECT COALESCE(SUM(rc.amount), 0)
		FROM receipts rc
		JOIN loans l ON l.id = rc.loan_id
	` + where

	if err := r.pool.QueryRow(ctx, receivedQuery, args...).Scan(&report.TotalReceived); err != nil {
		return nil, err
	}

	report.GeneratedAt = time.Now().UTC()

	return &report, nil
}

// loanFilterClause builds a WHERE clause over the loans table (aliased l)
// shared by the report queries.
func loanFilterClause(filter domain.ReportFilter) (string, []any) {
	clause := ` WHERE 1=1`
	var args []any

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.StartDate != nil {
		clause += ` AND l.created_at >= ` + next(*filter.StartDate)
	}
	if filter.EndDate != nil {
		clause += ` AND l.created_at < ` + next(*filter.EndDate)
	}
	if filter.ClientID != "" {
		clause += ` AND l.client_id = ` + next(filter.ClientID)
	}
	if filter.Status != "" {
		clause += ` AND l.status = ` + next(filter.Status)
	}

	return clause, args
}
