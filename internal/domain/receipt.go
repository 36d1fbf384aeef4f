package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the durable record of a confirmed payment. Receipts are issued
// 1:1 with payments, in the same transaction, and are the canonical ledger of
// amounts confirmed as received.
type Receipt struct {
	ID            string
	ClientID      string
	LoanID        string
	PaymentID     string
	Amount        decimal.Decimal
	Date          time.Time
	DueDate       time.Time
	ReceiptNumber string
	CreatedAt     time.Time
}

// FormatReceiptNumber builds the display code for a receipt from its
// sequence value. The sequence starts at 1000 so early codes keep the
// familiar four-digit shape; uniqueness is enforced by the store.
func FormatReceiptNumber(seq int64) string {
	return fmt.Sprintf("REC-%04d", seq)
}
