package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats are the aggregate figures shown on the dashboard. Received
// totals come from receipts, the canonical record of confirmed payments.
type DashboardStats struct {
	TotalClients       int64
	ActiveLoans        int64
	TotalLoaned        decimal.Decimal
	TotalReceived      decimal.Decimal
	OutstandingBalance decimal.Decimal
}

// ReportFilter narrows a loan report by period, client, or status.
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	ClientID  string
	Status    LoanStatus
}

// LoanReport summarizes loans matching a filter.
type LoanReport struct {
	TotalLoans     int64
	ActiveLoans    int64
	CompletedLoans int64
	DefaultedLoans int64
	TotalLoaned    decimal.Decimal
	TotalReceived  decimal.Decimal
	GeneratedAt    time.Time
}
