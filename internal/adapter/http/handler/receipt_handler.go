package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/dto"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// ReceiptHandler handles receipt-related HTTP requests.
type ReceiptHandler struct {
	receiptUC *usecase.ReceiptUseCase
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(receiptUC *usecase.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{receiptUC: receiptUC}
}

// Get retrieves a receipt by ID.
func (h *ReceiptHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing receipt ID", "")
		return
	}

	receipt, err := h.receiptUC.GetReceipt(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get receipt", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ReceiptFromDomain(receipt))
}

// List lists receipts, optionally filtered by client or loan.
func (h *ReceiptHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	receipts, err := h.receiptUC.ListReceipts(r.Context(), usecase.ListReceiptsInput{
		ClientID: r.URL.Query().Get("client_id"),
		LoanID:   r.URL.Query().Get("loan_id"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list receipts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceiptsFromDomain(receipts))
}

// Delete removes a receipt. The loan's payment history is untouched.
func (h *ReceiptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing receipt ID", "")
		return
	}

	if err := h.receiptUC.DeleteReceipt(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete receipt", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Text renders the receipt as the pt-BR plain text document.
func (h *ReceiptHandler) Text(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing receipt ID", "")
		return
	}

	text, err := h.receiptUC.RenderText(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to render receipt", err.Error())

		return
	}

	writeText(w, http.StatusOK, text)
}

// WhatsApp builds a wa.me share link with the rendered receipt as the
// message body. The phone query parameter overrides the client's phone.
func (h *ReceiptHandler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing receipt ID", "")
		return
	}

	link, err := h.receiptUC.WhatsAppLink(r.Context(), id, r.URL.Query().Get("phone"))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build share link", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ShareLinkResponse{URL: link})
}
