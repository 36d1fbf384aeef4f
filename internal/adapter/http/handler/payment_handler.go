package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/dto"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// PaymentHandler handles payment-related HTTP requests.
type PaymentHandler struct {
	paymentUC *usecase.PaymentUseCase
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentUC *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// Record records a payment against a loan. The receipt is issued in the
// same transaction and returned alongside the refreshed loan.
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")
	if loanID == "" {
		writeError(w, http.StatusBadRequest, "missing loan ID", "")
		return
	}

	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.paymentUC.RecordPayment(r.Context(), req.ToUseCaseInput(loanID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record payment", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordPaymentFromUseCase(result))
}

// Get retrieves a payment by ID.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payment ID", "")
		return
	}

	payment, err := h.paymentUC.GetPayment(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get payment", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentFromDomain(payment))
}

// ListByLoan lists a loan's payment history.
func (h *PaymentHandler) ListByLoan(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")
	if loanID == "" {
		writeError(w, http.StatusBadRequest, "missing loan ID", "")
		return
	}

	payments, err := h.paymentUC.ListPayments(r.Context(), loanID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list payments", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentsFromDomain(payments))
}
