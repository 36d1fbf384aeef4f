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

func newPixKeyHandler() (*PixKeyHandler, *mocks.MockPixKeyRepository) {
	repo := mocks.NewMockPixKeyRepository()
	uc := usecase.NewPixKeyUseCase(repo, mocks.NewMockIDGenerator())
	return NewPixKeyHandler(uc), repo
}

func TestPixKeyHandler_Create_Success(t *testing.T) {
	handler, _ := newPixKeyHandler()

	body, _ := json.Marshal(dto.CreatePixKeyRequest{
		Name:     "Principal",
		KeyType:  domain.PixKeyTypeCPF,
		KeyValue: "12345678900",
		Owner:    "Maria Souza",
	})

	req := httptest.NewRequest(http.MethodPost, "/pix-keys", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dto.PixKeyResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID == "" || resp.KeyType != domain.PixKeyTypeCPF {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPixKeyHandler_Create_InvalidType(t *testing.T) {
	handler, _ := newPixKeyHandler()

	body, _ := json.Marshal(dto.CreatePixKeyRequest{
		Name:     "Principal",
		KeyType:  "invalid",
		KeyValue: "12345678900",
	})

	req := httptest.NewRequest(http.MethodPost, "/pix-keys", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestPixKeyHandler_Get_NotFound(t *testing.T) {
	handler, _ := newPixKeyHandler()

	req := httptest.NewRequest(http.MethodGet, "/pix-keys/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestPixKeyHandler_UpdateAndDelete(t *testing.T) {
	handler, _ := newPixKeyHandler()

	// Seed via the create endpoint.
	body, _ := json.Marshal(dto.CreatePixKeyRequest{
		Name:     "Principal",
		KeyType:  domain.PixKeyTypeEmail,
		KeyValue: "maria@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/pix-keys", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	var created dto.PixKeyResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created key: %v", err)
	}

	newValue := "financeiro@example.com"
	updateBody, _ := json.Marshal(dto.UpdatePixKeyRequest{KeyValue: &newValue})

	req = httptest.NewRequest(http.MethodPut, "/pix-keys/"+created.ID, bytes.NewReader(updateBody))
	req = setChiURLParam(req, "id", created.ID)
	rr = httptest.NewRecorder()
	handler.Update(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d: %s", rr.Code, rr.Body.String())
	}

	var updated dto.PixKeyResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode updated key: %v", err)
	}
	if updated.KeyValue != newValue {
		t.Fatalf("expected updated key value, got %s", updated.KeyValue)
	}

	req = httptest.NewRequest(http.MethodDelete, "/pix-keys/"+created.ID, nil)
	req = setChiURLParam(req, "id", created.ID)
	rr = httptest.NewRecorder()
	handler.Delete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on delete, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/pix-keys/"+created.ID, nil)
	req = setChiURLParam(req, "id", created.ID)
	rr = httptest.NewRecorder()
	handler.Get(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rr.Code)
	}
}

func TestPixKeyHandler_List(t *testing.T) {
	handler, _ := newPixKeyHandler()

	for _, value := range []string{"11111111111", "22222222222"} {
		body, _ := json.Marshal(dto.CreatePixKeyRequest{
			Name:     "chave",
			KeyType:  domain.PixKeyTypeCPF,
			KeyValue: value,
		})
		req := httptest.NewRequest(http.MethodPost, "/pix-keys", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.Create(rr, req)
		if rr.Code != http.StatusCreated {
			t.Fatalf("seed create failed: %d", rr.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/pix-keys", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp []*dto.PixKeyResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(resp))
	}
}
