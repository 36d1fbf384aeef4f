package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Loan metrics
	LoansCreated      *prometheus.CounterVec
	LoansDeleted      prometheus.Counter
	LoanAmount        prometheus.Histogram
	StatusTransitions *prometheus.CounterVec

	// Payment metrics
	PaymentsRecorded *prometheus.CounterVec
	PaymentAmount    prometheus.Histogram
	PaymentErrors    *prometheus.CounterVec

	// Receipt metrics
	ReceiptsIssued  prometheus.Counter
	ReceiptsDeleted prometheus.Counter

	// Client metrics
	ClientsCreated prometheus.Counter
	ClientsDeleted prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Changefeed metrics
	EventsPublished *prometheus.CounterVec
	PublishErrors   prometheus.Counter

	// Sweep metrics
	SweepRuns        prometheus.Counter
	SweepTransitions prometheus.Counter

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Loan metrics
		LoansCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_loans_created_total",
				Help: "Total number of loans created by payment type",
			},
			[]string{"payment_type"},
		),
		LoansDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_loans_deleted_total",
			Help: "Total number of loans deleted",
		}),
		LoanAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loanledger_loan_amount",
			Help:    "Loan principal amounts",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
		}),
		StatusTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_loan_status_transitions_total",
				Help: "Total loan status transitions by target status",
			},
			[]string{"status"},
		),

		// Payment metrics
		PaymentsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_payments_recorded_total",
				Help: "Total number of payments recorded by kind",
			},
			[]string{"kind"},
		),
		PaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loanledger_payment_amount",
			Help:    "Payment amounts",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000},
		}),
		PaymentErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_payment_errors_total",
				Help: "Total number of payment errors by type",
			},
			[]string{"error_type"},
		),

		// Receipt metrics
		ReceiptsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_receipts_issued_total",
			Help: "Total number of receipts issued",
		}),
		ReceiptsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_receipts_deleted_total",
			Help: "Total number of receipts deleted",
		}),

		// Client metrics
		ClientsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_clients_created_total",
			Help: "Total number of clients created",
		}),
		ClientsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_clients_deleted_total",
			Help: "Total number of clients deleted",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loanledger_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loanledger_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "loanledger_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Changefeed metrics
		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_events_published_total",
				Help: "Total changefeed events published by type",
			},
			[]string{"event_type"},
		),
		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_publish_errors_total",
			Help: "Total changefeed publish errors",
		}),

		// Sweep metrics
		SweepRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_sweep_runs_total",
			Help: "Total status sweep runs",
		}),
		SweepTransitions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_sweep_transitions_total",
			Help: "Total status transitions applied by the sweep",
		}),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
