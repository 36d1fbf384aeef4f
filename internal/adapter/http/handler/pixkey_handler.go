package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/dto"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// PixKeyHandler handles Pix key HTTP requests.
type PixKeyHandler struct {
	pixKeyUC *usecase.PixKeyUseCase
}

// NewPixKeyHandler creates a new PixKeyHandler.
func NewPixKeyHandler(pixKeyUC *usecase.PixKeyUseCase) *PixKeyHandler {
	return &PixKeyHandler{pixKeyUC: pixKeyUC}
}

// Create registers a Pix key.
func (h *PixKeyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePixKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	key, err := h.pixKeyUC.CreatePixKey(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create pix key", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.PixKeyFromDomain(key))
}

// Get retrieves a Pix key by ID.
func (h *PixKeyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing pix key ID", "")
		return
	}

	key, err := h.pixKeyUC.GetPixKey(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get pix key", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PixKeyFromDomain(key))
}

// Update applies a partial update to a Pix key.
func (h *PixKeyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing pix key ID", "")
		return
	}

	var req dto.UpdatePixKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	key, err := h.pixKeyUC.UpdatePixKey(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update pix key", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PixKeyFromDomain(key))
}

// Delete removes a Pix key.
func (h *PixKeyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing pix key ID", "")
		return
	}

	if err := h.pixKeyUC.DeletePixKey(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete pix key", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists registered Pix keys.
func (h *PixKeyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	keys, err := h.pixKeyUC.ListPixKeys(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list pix keys", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PixKeysFromDomain(keys))
}
