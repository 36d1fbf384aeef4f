package domain

import "errors"

var (
	// Client errors
	ErrClientNotFound = errors.New("client not found")
	ErrClientRequired = errors.New("client is required")

	// Loan errors
	ErrLoanNotFound        = errors.New("loan not found")
	ErrLoanRequired        = errors.New("loan is required")
	ErrLoanCompleted       = errors.New("loan is already completed")
	ErrInvalidPaymentType  = errors.New("invalid payment type")
	ErrInvalidInterestRate = errors.New("interest rate cannot be negative")
	ErrTotalBelowPrincipal = errors.New("total amount cannot be below principal")

	// Payment errors
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidPaymentKind = errors.New("invalid payment kind")

	// Receipt errors
	ErrReceiptNotFound = errors.New("receipt not found")

	// Pix key errors
	ErrPixKeyNotFound    = errors.New("pix key not found")
	ErrInvalidPixKey     = errors.New("pix key value cannot be empty")
	ErrInvalidPixKeyType = errors.New("invalid pix key type")

	// Sharing errors
	ErrInvalidPhone = errors.New("invalid phone number")
)
