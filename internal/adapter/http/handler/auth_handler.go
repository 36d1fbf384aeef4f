package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/middleware"
	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/auth"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	userUC     *usecase.UserUseCase
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC *usecase.UserUseCase, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userUC:     userUC,
		jwtManager: jwtManager,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login response.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// UserInfo represents user information.
type UserInfo struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

// Login authenticates a user and issues a JWT.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User: UserInfo{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	})
}

// GetCurrentUser returns the current authenticated user.
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	writeJSON(w, http.StatusOK, UserInfo{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	})
}
