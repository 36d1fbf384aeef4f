package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/dto"
	"github.com/dinheirorapido/loanledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeText writes a plain text response.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrLoanNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrReceiptNotFound),
		errors.Is(err, domain.ErrPixKeyNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLoanCompleted),
		errors.Is(err, domain.ErrEmailInUse):
		return http.StatusConflict
	case errors.Is(err, domain.ErrClientRequired),
		errors.Is(err, domain.ErrLoanRequired),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPaymentType),
		errors.Is(err, domain.ErrInvalidPaymentKind),
		errors.Is(err, domain.ErrInvalidInterestRate),
		errors.Is(err, domain.ErrTotalBelowPrincipal),
		errors.Is(err, domain.ErrInvalidPixKey),
		errors.Is(err, domain.ErrInvalidPixKeyType),
		errors.Is(err, domain.ErrInvalidPersonName),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrPasswordTooWeak):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
