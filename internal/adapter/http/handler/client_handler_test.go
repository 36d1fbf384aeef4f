package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/dto"
	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

type clientServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateClientInput) (*domain.Client, error)
	getFn    func(ctx context.Context, id string) (*domain.Client, error)
	updateFn func(ctx context.Context, input usecase.UpdateClientInput) (*domain.Client, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, input usecase.ListClientsInput) ([]*domain.Client, error)
}

func (s *clientServiceStub) CreateClient(ctx context.Context, input usecase.CreateClientInput) (*domain.Client, error) {
	return s.createFn(ctx, input)
}

func (s *clientServiceStub) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.getFn(ctx, id)
}

func (s *clientServiceStub) UpdateClient(ctx context.Context, input usecase.UpdateClientInput) (*domain.Client, error) {
	return s.updateFn(ctx, input)
}

func (s *clientServiceStub) DeleteClient(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *clientServiceStub) ListClients(ctx context.Context, input usecase.ListClientsInput) ([]*domain.Client, error) {
	return s.listFn(ctx, input)
}

func TestClientHandler_Create_Success(t *testing.T) {
	client := &domain.Client{
		ID:    "client-1",
		Name:  "Maria Souza",
		Phone: "+5511999990000",
	}

	var captured usecase.CreateClientInput
	handler := NewClientHandler(&clientServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateClientInput) (*domain.Client, error) {
			captured = input
			return client, nil
		},
	})

	body, _ := json.Marshal(dto.CreateClientRequest{
		Name:  "Maria Souza",
		Phone: "+5511999990000",
	})

	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	if captured.Name != "Maria Souza" {
		t.Fatalf("expected input to propagate, got %+v", captured)
	}

	var resp dto.ClientResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "client-1" {
		t.Fatalf("expected client-1, got %s", resp.ID)
	}
}

func TestClientHandler_Create_InvalidBody(t *testing.T) {
	handler := NewClientHandler(&clientServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader([]byte("{invalid")))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestClientHandler_Create_ValidationError(t *testing.T) {
	handler := NewClientHandler(&clientServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateClientInput) (*domain.Client, error) {
			return nil, domain.ErrInvalidPersonName
		},
	})

	body, _ := json.Marshal(dto.CreateClientRequest{Name: ""})
	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestClientHandler_Get_NotFound(t *testing.T) {
	handler := NewClientHandler(&clientServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Client, error) {
			return nil, domain.ErrClientNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/clients/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestClientHandler_Update_Success(t *testing.T) {
	handler := NewClientHandler(&clientServiceStub{
		updateFn: func(ctx context.Context, input usecase.UpdateClientInput) (*domain.Client, error) {
			if input.ID != "client-1" {
				t.Fatalf("expected id client-1, got %s", input.ID)
			}
			return &domain.Client{ID: input.ID, Name: *input.Name}, nil
		},
	})

	name := "Novo Nome"
	body, _ := json.Marshal(dto.UpdateClientRequest{Name: &name})

	req := httptest.NewRequest(http.MethodPut, "/clients/client-1", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "client-1")
	rr := httptest.NewRecorder()

	handler.Update(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestClientHandler_Delete_Success(t *testing.T) {
	var deleted string
	handler := NewClientHandler(&clientServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/clients/client-1", nil)
	req = setChiURLParam(req, "id", "client-1")
	rr := httptest.NewRecorder()

	handler.Delete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if deleted != "client-1" {
		t.Fatalf("expected delete to receive id, got %q", deleted)
	}
}

func TestClientHandler_List_PassesQuery(t *testing.T) {
	var captured usecase.ListClientsInput
	handler := NewClientHandler(&clientServiceStub{
		listFn: func(ctx context.Context, input usecase.ListClientsInput) ([]*domain.Client, error) {
			captured = input
			return []*domain.Client{{ID: "c1"}, {ID: "c2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/clients?q=maria&limit=10&offset=5", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if captured.Query != "maria" || captured.Limit != 10 || captured.Offset != 5 {
		t.Fatalf("expected query params to propagate, got %+v", captured)
	}

	var resp []*dto.ClientResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(resp))
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
