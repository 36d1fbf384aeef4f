package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CPF       string    `json:"cpf,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zip_code,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientFromDomain converts a domain client to a response.
func ClientFromDomain(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CPF:       c.CPF,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

// ClientsFromDomain converts domain clients to responses.
func ClientsFromDomain(clients []*domain.Client) []*ClientResponse {
	result := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		result[i] = ClientFromDomain(c)
	}
	return result
}

// LoanResponse represents a loan in API responses.
type LoanResponse struct {
	ID                string             `json:"id"`
	ClientID          string             `json:"client_id"`
	Amount            decimal.Decimal    `json:"amount"`
	InterestRate      decimal.Decimal    `json:"interest_rate"`
	InterestAmount    decimal.Decimal    `json:"interest_amount"`
	TotalAmount       decimal.Decimal    `json:"total_amount"`
	Installments      int                `json:"installments,omitempty"`
	InstallmentAmount decimal.Decimal    `json:"installment_amount"`
	PaymentType       domain.PaymentType `json:"payment_type"`
	StartDate         time.Time          `json:"start_date"`
	DueDate           time.Time          `json:"due_date"`
	EndDate           time.Time          `json:"end_date"`
	Status            domain.LoanStatus  `json:"status"`
	Notes             string             `json:"notes,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

// LoanFromDomain converts a domain loan to a response.
func LoanFromDomain(l *domain.Loan) *LoanResponse {
	return &LoanResponse{
		ID:                l.ID,
		ClientID:          l.ClientID,
		Amount:            l.Amount,
		InterestRate:      l.InterestRate,
		InterestAmount:    l.InterestAmount,
		TotalAmount:       l.TotalAmount,
		Installments:      l.ExpectedInstallments(),
		InstallmentAmount: l.InstallmentAmount,
		PaymentType:       l.PaymentType,
		StartDate:         l.StartDate,
		DueDate:           l.DueDate,
		EndDate:           l.EndDate,
		Status:            l.Status,
		Notes:             l.Notes,
		CreatedAt:         l.CreatedAt,
	}
}

// LoansFromDomain converts domain loans to responses.
func LoansFromDomain(loans []*domain.Loan) []*LoanResponse {
	result := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		result[i] = LoanFromDomain(l)
	}
	return result
}

// LoanDetailResponse is a loan with its payments and financial summary.
type LoanDetailResponse struct {
	Loan                 *LoanResponse      `json:"loan"`
	Payments             []*PaymentResponse `json:"payments"`
	TotalPaid            decimal.Decimal    `json:"total_paid"`
	BalanceDue           decimal.Decimal    `json:"balance_due"`
	PaidInstallments     int                `json:"paid_installments"`
	ExpectedInstallments int                `json:"expected_installments"`
}

// LoanDetailFromUseCase converts a use case loan detail to a response.
func LoanDetailFromUseCase(d *usecase.LoanDetail) *LoanDetailResponse {
	return &LoanDetailResponse{
		Loan:                 LoanFromDomain(d.Loan),
		Payments:             PaymentsFromDomain(d.Payments),
		TotalPaid:            d.TotalPaid,
		BalanceDue:           d.BalanceDue,
		PaidInstallments:     d.PaidInstallments,
		ExpectedInstallments: d.ExpectedInstallments,
	}
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID                string             `json:"id"`
	LoanID            string             `json:"loan_id"`
	Amount            decimal.Decimal    `json:"amount"`
	Date              time.Time          `json:"date"`
	InstallmentNumber int                `json:"installment_number,omitempty"`
	Kind              domain.PaymentKind `json:"kind"`
	ReceiptID         *string            `json:"receipt_id,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

// PaymentFromDomain converts a domain payment to a response.
func PaymentFromDomain(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:                p.ID,
		LoanID:            p.LoanID,
		Amount:            p.Amount,
		Date:              p.Date,
		InstallmentNumber: p.InstallmentNumber,
		Kind:              p.Kind,
		ReceiptID:         p.ReceiptID,
		CreatedAt:         p.CreatedAt,
	}
}

// PaymentsFromDomain converts domain payments to responses.
func PaymentsFromDomain(payments []*domain.Payment) []*PaymentResponse {
	result := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = PaymentFromDomain(p)
	}
	return result
}

// RecordPaymentResponse is the outcome of recording a payment.
type RecordPaymentResponse struct {
	Payment *PaymentResponse `json:"payment"`
	Receipt *ReceiptResponse `json:"receipt"`
	Loan    *LoanResponse    `json:"loan"`
}

// RecordPaymentFromUseCase converts a use case result to a response.
func RecordPaymentFromUseCase(r *usecase.RecordPaymentResult) *RecordPaymentResponse {
	return &RecordPaymentResponse{
		Payment: PaymentFromDomain(r.Payment),
		Receipt: ReceiptFromDomain(r.Receipt),
		Loan:    LoanFromDomain(r.Loan),
	}
}

// ReceiptResponse represents a receipt in API responses.
type ReceiptResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	LoanID        string          `json:"loan_id"`
	PaymentID     string          `json:"payment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	DueDate       time.Time       `json:"due_date"`
	ReceiptNumber string          `json:"receipt_number"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ReceiptFromDomain converts a domain receipt to a response.
func ReceiptFromDomain(r *domain.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		ID:            r.ID,
		ClientID:      r.ClientID,
		LoanID:        r.LoanID,
		PaymentID:     r.PaymentID,
		Amount:        r.Amount,
		Date:          r.Date,
		DueDate:       r.DueDate,
		ReceiptNumber: r.ReceiptNumber,
		CreatedAt:     r.CreatedAt,
	}
}

// ReceiptsFromDomain converts domain receipts to responses.
func ReceiptsFromDomain(receipts []*domain.Receipt) []*ReceiptResponse {
	result := make([]*ReceiptResponse, len(receipts))
	for i, r := range receipts {
		result[i] = ReceiptFromDomain(r)
	}
	return result
}

// PixKeyResponse represents a Pix key in API responses.
type PixKeyResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	KeyType   domain.PixKeyType `json:"key_type"`
	KeyValue  string            `json:"key_value"`
	Owner     string            `json:"owner,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// PixKeyFromDomain converts a domain Pix key to a response.
func PixKeyFromDomain(k *domain.PixKey) *PixKeyResponse {
	return &PixKeyResponse{
		ID:        k.ID,
		Name:      k.Name,
		KeyType:   k.KeyType,
		KeyValue:  k.KeyValue,
		Owner:     k.Owner,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}

// PixKeysFromDomain converts domain Pix keys to responses.
func PixKeysFromDomain(keys []*domain.PixKey) []*PixKeyResponse {
	result := make([]*PixKeyResponse, len(keys))
	for i, k := range keys {
		result[i] = PixKeyFromDomain(k)
	}
	return result
}

// DashboardResponse represents portfolio-wide aggregates.
type DashboardResponse struct {
	TotalClients       int64           `json:"total_clients"`
	ActiveLoans        int64           `json:"active_loans"`
	TotalLoaned        decimal.Decimal `json:"total_loaned"`
	TotalReceived      decimal.Decimal `json:"total_received"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// DashboardFromDomain converts domain dashboard stats to a response.
func DashboardFromDomain(s *domain.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalClients:       s.TotalClients,
		ActiveLoans:        s.ActiveLoans,
		TotalLoaned:        s.TotalLoaned,
		TotalReceived:      s.TotalReceived,
		OutstandingBalance: s.OutstandingBalance,
	}
}

// LoanReportResponse represents a filtered loan report.
type LoanReportResponse struct {
	TotalLoans     int64           `json:"total_loans"`
	ActiveLoans    int64           `json:"active_loans"`
	CompletedLoans int64           `json:"completed_loans"`
	DefaultedLoans int64           `json:"defaulted_loans"`
	TotalLoaned    decimal.Decimal `json:"total_loaned"`
	TotalReceived  decimal.Decimal `json:"total_received"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// LoanReportFromDomain converts a domain loan report to a response.
func LoanReportFromDomain(r *domain.LoanReport) *LoanReportResponse {
	return &LoanReportResponse{
		TotalLoans:     r.TotalLoans,
		ActiveLoans:    r.ActiveLoans,
		CompletedLoans: r.CompletedLoans,
		DefaultedLoans: r.DefaultedLoans,
		TotalLoaned:    r.TotalLoaned,
		TotalReceived:  r.TotalReceived,
		GeneratedAt:    r.GeneratedAt,
	}
}

// UserResponse represents an operator account in API responses. The password
// hash is never exposed.
type UserResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UsersFromDomain converts domain users to responses.
func UsersFromDomain(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = UserFromDomain(u)
	}
	return result
}

// ShareLinkResponse carries a wa.me link for sharing a receipt.
type ShareLinkResponse struct {
	URL string `json:"url"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
