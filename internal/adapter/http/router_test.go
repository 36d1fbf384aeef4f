package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/handler"
	apimiddleware "github.com/dinheirorapido/loanledger/internal/adapter/http/middleware"
	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/auth"
	"github.com/dinheirorapido/loanledger/internal/usecase"
	"github.com/dinheirorapido/loanledger/internal/usecase/mocks"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"name":"Maria Souza"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clients/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/clients/",
		"GET /api/v1/clients/{id}",
		"GET /api/v1/clients/{id}/loans",
		"POST /api/v1/loans/",
		"POST /api/v1/loans/sweep",
		"POST /api/v1/loans/{id}/payments",
		"GET /api/v1/receipts/{id}/text",
		"GET /api/v1/receipts/{id}/whatsapp",
		"POST /api/v1/pix-keys/",
		"GET /api/v1/reports/dashboard",
		"GET /api/v1/reports/loans",
		"POST /api/v1/users/",
		"GET /api/v1/users/{id}",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func TestNewRouter_UsersRouteRequiresAdmin(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.JWTManager = jwtManager
		cfg.AuthEnabled = true
	}))

	viewerToken, err := jwtManager.Generate(&domain.User{
		ID: "u1", Email: "viewer@example.com", Role: domain.RoleViewer,
	})
	if err != nil {
		t.Fatalf("failed to generate viewer token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/", nil)
	req.Header.Set("Authorization", "Bearer "+viewerToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected viewer to be forbidden, got %d", rec.Code)
	}

	adminToken, err := jwtManager.Generate(&domain.User{
		ID: "u2", Email: "admin@example.com", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("failed to generate admin token: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected admin to list users, got %d", rec.Code)
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	txManager := mocks.NewMockTransactionManager()
	clientRepo := mocks.NewMockClientRepository()
	loanRepo := mocks.NewMockLoanRepository()
	paymentRepo := mocks.NewMockPaymentRepository()
	receiptRepo := mocks.NewMockReceiptRepository()
	outboxRepo := mocks.NewMockOutboxRepository()
	retrier := mocks.NewMockRetrier()
	idGen := mocks.NewMockIDGenerator()

	clientUC := usecase.NewClientUseCase(txManager, clientRepo, loanRepo, paymentRepo, receiptRepo, outboxRepo, retrier, idGen)
	loanUC := usecase.NewLoanUseCase(txManager, loanRepo, paymentRepo, receiptRepo, clientRepo, outboxRepo, retrier, idGen)
	paymentUC := usecase.NewPaymentUseCase(txManager, loanRepo, paymentRepo, receiptRepo, outboxRepo, idGen)
	receiptUC := usecase.NewReceiptUseCase(txManager, receiptRepo, clientRepo, loanRepo, paymentRepo, outboxRepo)
	pixKeyUC := usecase.NewPixKeyUseCase(mocks.NewMockPixKeyRepository(), idGen)
	reportUC := usecase.NewReportUseCase(mocks.NewMockReportRepository(), mocks.NewMockCache(), 0)
	userUC := usecase.NewUserUseCase(mocks.NewMockUserRepository(), idGen)

	cfg := RouterConfig{
		HealthHandler:  &handler.HealthHandler{},
		ClientHandler:  handler.NewClientHandler(clientUC),
		LoanHandler:    handler.NewLoanHandler(loanUC),
		PaymentHandler: handler.NewPaymentHandler(paymentUC),
		ReceiptHandler: handler.NewReceiptHandler(receiptUC),
		PixKeyHandler:  handler.NewPixKeyHandler(pixKeyUC),
		ReportHandler:  handler.NewReportHandler(reportUC),
		UserHandler:    handler.NewUserHandler(userUC),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
