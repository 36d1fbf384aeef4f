package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/dto"
	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// ClientService defines the behavior needed by ClientHandler.
type ClientService interface {
	CreateClient(ctx context.Context, input usecase.CreateClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	UpdateClient(ctx context.Context, input usecase.UpdateClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context, input usecase.ListClientsInput) ([]*domain.Client, error)
}

// ClientHandler handles client-related HTTP requests.
type ClientHandler struct {
	clientUC ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientUC ClientService) *ClientHandler {
	return &ClientHandler{clientUC: clientUC}
}

// Create registers a new client.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	client, err := h.clientUC.CreateClient(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create client", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ClientFromDomain(client))
}

// Get retrieves a client by ID.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	client, err := h.clientUC.GetClient(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get client", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ClientFromDomain(client))
}

// Update applies a partial update to a client profile.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	var req dto.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	client, err := h.clientUC.UpdateClient(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update client", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ClientFromDomain(client))
}

// Delete removes a client and everything recorded under it.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	if err := h.clientUC.DeleteClient(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete client", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists clients, optionally filtered by a search query.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	clients, err := h.clientUC.ListClients(r.Context(), usecase.ListClientsInput{
		Query:  r.URL.Query().Get("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list clients", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ClientsFromDomain(clients))
}
