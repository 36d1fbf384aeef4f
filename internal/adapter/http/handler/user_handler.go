package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/dto"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// UserHandler handles operator account administration.
type UserHandler struct {
	userUC *usecase.UserUseCase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUC *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// Create registers an operator account.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.CreateUser(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create user", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.UserFromDomain(user))
}

// Get retrieves an operator account by ID.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	user, err := h.userUC.GetUser(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get user", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// Update applies a partial update to an operator account.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.UpdateUser(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update user", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// Delete removes an operator account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	if err := h.userUC.DeleteUser(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete user", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists operator accounts.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	users, err := h.userUC.ListUsers(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UsersFromDomain(users))
}
