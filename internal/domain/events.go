package domain

import "time"

// Event types
const (
	EventTypeClientCreated     = "client.created"
	EventTypeClientDeleted     = "client.deleted"
	EventTypeLoanCreated       = "loan.created"
	EventTypeLoanDeleted       = "loan.deleted"
	EventTypeLoanStatusChanged = "loan.status_changed"
	EventTypePaymentRecorded   = "payment.recorded"
	EventTypeReceiptIssued     = "receipt.issued"
	EventTypeReceiptDeleted    = "receipt.deleted"
)

// Aggregate types. These double as change-feed channel names so consumers
// can subscribe per collection, mirroring row-level change notifications.
const (
	AggregateTypeClient  = "client"
	AggregateTypeLoan    = "loan"
	AggregateTypePayment = "payment"
	AggregateTypeReceipt = "receipt"
)

// OutboxEvent represents a change event waiting to be published.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// LoanStatusChangedEvent payload
type LoanStatusChangedEvent struct {
	LoanID    string `json:"loan_id"`
	ClientID  string `json:"client_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// PaymentRecordedEvent payload
type PaymentRecordedEvent struct {
	PaymentID string `json:"payment_id"`
	LoanID    string `json:"loan_id"`
	Amount    string `json:"amount"`
	Kind      string `json:"kind"`
}

// ReceiptIssuedEvent payload
type ReceiptIssuedEvent struct {
	ReceiptID     string `json:"receipt_id"`
	ReceiptNumber string `json:"receipt_number"`
	PaymentID     string `json:"payment_id"`
	LoanID        string `json:"loan_id"`
	Amount        string `json:"amount"`
}

// LoanCreatedEvent payload
type LoanCreatedEvent struct {
	LoanID      string `json:"loan_id"`
	ClientID    string `json:"client_id"`
	Amount      string `json:"amount"`
	TotalAmount string `json:"total_amount"`
	PaymentType string `json:"payment_type"`
}
