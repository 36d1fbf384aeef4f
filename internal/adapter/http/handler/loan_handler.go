package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/dto"
	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// LoanHandler handles loan-related HTTP requests.
type LoanHandler struct {
	loanUC *usecase.LoanUseCase
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(loanUC *usecase.LoanUseCase) *LoanHandler {
	return &LoanHandler{loanUC: loanUC}
}

// Create originates a new loan.
func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	loan, err := h.loanUC.CreateLoan(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create loan", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.LoanFromDomain(loan))
}

// Get retrieves a loan with its payments and financial summary.
func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing loan ID", "")
		return
	}

	detail, err := h.loanUC.GetLoan(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get loan", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.LoanDetailFromUseCase(detail))
}

// Delete removes a loan and its payments and receipts.
func (h *LoanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing loan ID", "")
		return
	}

	if err := h.loanUC.DeleteLoan(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete loan", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists loans, optionally filtered by client or status.
func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	loans, err := h.loanUC.ListLoans(r.Context(), usecase.ListLoansInput{
		ClientID: r.URL.Query().Get("client_id"),
		Status:   domain.LoanStatus(r.URL.Query().Get("status")),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list loans", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoansFromDomain(loans))
}

// ListByClient lists the loans of one client.
func (h *LoanHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	loans, err := h.loanUC.ListLoans(r.Context(), usecase.ListLoansInput{
		ClientID: clientID,
		Limit:    parseIntQuery(r, "limit", 50),
		Offset:   parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list client loans", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.LoansFromDomain(loans))
}

// Sweep recomputes the status of every open loan.
func (h *LoanHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.loanUC.SweepStatuses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sweep loan statuses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"examined":     result.Examined,
		"transitioned": result.Transitioned,
	})
}
