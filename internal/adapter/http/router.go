package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/handler"
	"github.com/dinheirorapido/loanledger/internal/adapter/http/middleware"
	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/auth"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ClientHandler  *handler.ClientHandler
	LoanHandler    *handler.LoanHandler
	PaymentHandler *handler.PaymentHandler
	ReceiptHandler *handler.ReceiptHandler
	PixKeyHandler  *handler.PixKeyHandler
	ReportHandler  *handler.ReportHandler
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	HealthHandler  *handler.HealthHandler

	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	JWTManager       *auth.JWTManager
	AuthEnabled      bool

	// Logger is used for request logging. The zero value disables it.
	Logger zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		if cfg.AuthHandler != nil {
			r.Post("/auth/login", cfg.AuthHandler.Login)
		}

		r.Group(func(r chi.Router) {
			if cfg.AuthEnabled && cfg.JWTManager != nil {
				r.Use(middleware.AuthMiddleware(cfg.JWTManager))
			}

			if cfg.AuthHandler != nil {
				r.Get("/auth/me", cfg.AuthHandler.GetCurrentUser)
			}

			// User administration, admin only when auth is on
			if cfg.UserHandler != nil {
				r.Route("/users", func(r chi.Router) {
					if cfg.AuthEnabled && cfg.JWTManager != nil {
						r.Use(middleware.RequireRole(domain.RoleAdmin))
					}

					r.Post("/", cfg.UserHandler.Create)
					r.Get("/", cfg.UserHandler.List)
					r.Get("/{id}", cfg.UserHandler.Get)
					r.Put("/{id}", cfg.UserHandler.Update)
					r.Delete("/{id}", cfg.UserHandler.Delete)
				})
			}

			// Clients
			r.Route("/clients", func(r chi.Router) {
				r.Post("/", cfg.ClientHandler.Create)
				r.Get("/", cfg.ClientHandler.List)
				r.Get("/{id}", cfg.ClientHandler.Get)
				r.Put("/{id}", cfg.ClientHandler.Update)
				r.Delete("/{id}", cfg.ClientHandler.Delete)
				r.Get("/{id}/loans", cfg.LoanHandler.ListByClient)
			})

			// Loans and their payments
			r.Route("/loans", func(r chi.Router) {
				r.Post("/", cfg.LoanHandler.Create)
				r.Get("/", cfg.LoanHandler.List)
				r.Post("/sweep", cfg.LoanHandler.Sweep)
				r.Get("/{id}", cfg.LoanHandler.Get)
				r.Delete("/{id}", cfg.LoanHandler.Delete)
				r.Post("/{id}/payments", cfg.PaymentHandler.Record)
				r.Get("/{id}/payments", cfg.PaymentHandler.ListByLoan)
			})

			// Payments
			r.Get("/payments/{id}", cfg.PaymentHandler.Get)

			// Receipts
			r.Route("/receipts", func(r chi.Router) {
				r.Get("/", cfg.ReceiptHandler.List)
				r.Get("/{id}", cfg.ReceiptHandler.Get)
				r.Delete("/{id}", cfg.ReceiptHandler.Delete)
				r.Get("/{id}/text", cfg.ReceiptHandler.Text)
				r.Get("/{id}/whatsapp", cfg.ReceiptHandler.WhatsApp)
			})

			// Pix keys
			r.Route("/pix-keys", func(r chi.Router) {
				r.Post("/", cfg.PixKeyHandler.Create)
				r.Get("/", cfg.PixKeyHandler.List)
				r.Get("/{id}", cfg.PixKeyHandler.Get)
				r.Put("/{id}", cfg.PixKeyHandler.Update)
				r.Delete("/{id}", cfg.PixKeyHandler.Delete)
			})

			// Reports
			r.Route("/reports", func(r chi.Router) {
				r.Get("/dashboard", cfg.ReportHandler.Dashboard)
				r.Get("/loans", cfg.ReportHandler.Loans)
			})
		})
	})

	return r
}
