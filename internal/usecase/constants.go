package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultLoanTermDays is the due date offset applied when a loan is
	// originated without an explicit due date.
	DefaultLoanTermDays = 30

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// DashboardCacheTTL is how long dashboard aggregates are cached.
	DashboardCacheTTL = 30 * time.Second
)
