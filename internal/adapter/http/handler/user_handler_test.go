package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/dto"
	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
	"github.com/dinheirorapido/loanledger/internal/usecase/mocks"
)

func newUserHandler() (*UserHandler, *mocks.MockUserRepository) {
	repo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(repo, mocks.NewMockIDGenerator())
	return NewUserHandler(uc), repo
}

func createTestUser(t *testing.T, handler *UserHandler, email string, role domain.Role) dto.UserResponse {
	t.Helper()

	body, _ := json.Marshal(dto.CreateUserRequest{
		Email:    email,
		Name:     "Maria Souza",
		Password: "StrongPass1",
		Role:     role,
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("seed create failed: %d: %s", rr.Code, rr.Body.String())
	}

	var created dto.UserResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created user: %v", err)
	}
	return created
}

func TestUserHandler_Create_Success(t *testing.T) {
	handler, _ := newUserHandler()

	created := createTestUser(t, handler, "maria@example.com", domain.RoleOperator)

	if created.ID == "" || created.Role != domain.RoleOperator || !created.Active {
		t.Fatalf("unexpected response: %+v", created)
	}
}

func TestUserHandler_Create_NeverReturnsPasswordHash(t *testing.T) {
	handler, _ := newUserHandler()

	body, _ := json.Marshal(dto.CreateUserRequest{
		Email:    "maria@example.com",
		Name:     "Maria Souza",
		Password: "StrongPass1",
		Role:     domain.RoleViewer,
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	var raw map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, key := range []string{"password", "hashed_password"} {
		if _, ok := raw[key]; ok {
			t.Fatalf("response leaks %s", key)
		}
	}
}

func TestUserHandler_Create_InvalidRole(t *testing.T) {
	handler, _ := newUserHandler()

	body, _ := json.Marshal(dto.CreateUserRequest{
		Email:    "maria@example.com",
		Name:     "Maria Souza",
		Password: "StrongPass1",
		Role:     "superuser",
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	handler, _ := newUserHandler()

	createTestUser(t, handler, "maria@example.com", domain.RoleViewer)

	body, _ := json.Marshal(dto.CreateUserRequest{
		Email:    "maria@example.com",
		Name:     "Outra Maria",
		Password: "StrongPass1",
		Role:     domain.RoleViewer,
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	handler, _ := newUserHandler()

	req := httptest.NewRequest(http.MethodGet, "/users/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rr := httptest.NewRecorder()
	handler.Get(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestUserHandler_UpdateAndDelete(t *testing.T) {
	handler, _ := newUserHandler()

	created := createTestUser(t, handler, "maria@example.com", domain.RoleViewer)

	newRole := domain.RoleAdmin
	inactive := false
	updateBody, _ := json.Marshal(dto.UpdateUserRequest{Role: &newRole, Active: &inactive})

	req := httptest.NewRequest(http.MethodPut, "/users/"+created.ID, bytes.NewReader(updateBody))
	req = setChiURLParam(req, "id", created.ID)
	rr := httptest.NewRecorder()
	handler.Update(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d: %s", rr.Code, rr.Body.String())
	}

	var updated dto.UserResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode updated user: %v", err)
	}
	if updated.Role != domain.RoleAdmin || updated.Active {
		t.Fatalf("unexpected updated user: %+v", updated)
	}

	req = httptest.NewRequest(http.MethodDelete, "/users/"+created.ID, nil)
	req = setChiURLParam(req, "id", created.ID)
	rr = httptest.NewRecorder()
	handler.Delete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on delete, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/users/"+created.ID, nil)
	req = setChiURLParam(req, "id", created.ID)
	rr = httptest.NewRecorder()
	handler.Get(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rr.Code)
	}
}

func TestUserHandler_List(t *testing.T) {
	handler, _ := newUserHandler()

	createTestUser(t, handler, "maria@example.com", domain.RoleAdmin)
	createTestUser(t, handler, "joao@example.com", domain.RoleOperator)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp []*dto.UserResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp))
	}
}
