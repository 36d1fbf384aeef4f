package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidPersonName = errors.New("invalid name")
	ErrAmountTooLarge    = errors.New("amount exceeds maximum allowed")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrPasswordTooWeak   = errors.New("password does not meet requirements")
)

// Validation constants
const (
	MaxPersonNameLength = 255
	MaxLoanAmount       = "100000000" // 100 million BRL
	MinPasswordLength   = 8
	MaxPasswordLength   = 128
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidatePersonName validates a client or user name.
func ValidatePersonName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidPersonName)
	}

	if len(name) > MaxPersonNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidPersonName, MaxPersonNameLength)
	}

	return nil
}

// ValidateAmount validates a monetary amount for loans and payments.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxLoanAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxLoanAmount)
	}

	return nil
}

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePassword validates password strength.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooWeak, MinPasswordLength)
	}

	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must not exceed %d characters", ErrPasswordTooWeak, MaxPasswordLength)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
