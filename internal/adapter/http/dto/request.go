package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// CreateClientRequest represents a request to register a client.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	CPF     string `json:"cpf,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateClientRequest) ToUseCaseInput() usecase.CreateClientInput {
	return usecase.CreateClientInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		CPF:     r.CPF,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
		Notes:   r.Notes,
	}
}

// UpdateClientRequest represents a partial client update. Absent fields are
// left untouched.
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	CPF     *string `json:"cpf,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateClientRequest) ToUseCaseInput(id string) usecase.UpdateClientInput {
	return usecase.UpdateClientInput{
		ID:      id,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		CPF:     r.CPF,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
		Notes:   r.Notes,
	}
}

// CreateLoanRequest represents a request to originate a loan.
type CreateLoanRequest struct {
	ClientID     string             `json:"client_id"`
	Amount       decimal.Decimal    `json:"amount"`
	InterestRate decimal.Decimal    `json:"interest_rate"`
	PaymentType  domain.PaymentType `json:"payment_type"`
	Installments int                `json:"installments,omitempty"`
	StartDate    time.Time          `json:"start_date"`
	DueDate      *time.Time         `json:"due_date,omitempty"`
	Notes        string             `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLoanRequest) ToUseCaseInput() usecase.CreateLoanInput {
	return usecase.CreateLoanInput{
		ClientID:     r.ClientID,
		Amount:       r.Amount,
		InterestRate: r.InterestRate,
		PaymentType:  r.PaymentType,
		Installments: r.Installments,
		StartDate:    r.StartDate,
		DueDate:      r.DueDate,
		Notes:        r.Notes,
	}
}

// RecordPaymentRequest represents a request to record a payment against a
// loan.
type RecordPaymentRequest struct {
	Amount            decimal.Decimal    `json:"amount"`
	Date              *time.Time         `json:"date,omitempty"`
	Kind              domain.PaymentKind `json:"kind,omitempty"`
	InstallmentNumber int                `json:"installment_number,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPaymentRequest) ToUseCaseInput(loanID string) usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		LoanID:            loanID,
		Amount:            r.Amount,
		Date:              r.Date,
		Kind:              r.Kind,
		InstallmentNumber: r.InstallmentNumber,
	}
}

// CreatePixKeyRequest represents a request to register a Pix key.
type CreatePixKeyRequest struct {
	Name     string            `json:"name"`
	KeyType  domain.PixKeyType `json:"key_type"`
	KeyValue string            `json:"key_value"`
	Owner    string            `json:"owner,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePixKeyRequest) ToUseCaseInput() usecase.CreatePixKeyInput {
	return usecase.CreatePixKeyInput{
		Name:     r.Name,
		KeyType:  r.KeyType,
		KeyValue: r.KeyValue,
		Owner:    r.Owner,
	}
}

// UpdatePixKeyRequest represents a partial Pix key update.
type UpdatePixKeyRequest struct {
	Name     *string            `json:"name,omitempty"`
	KeyType  *domain.PixKeyType `json:"key_type,omitempty"`
	KeyValue *string            `json:"key_value,omitempty"`
	Owner    *string            `json:"owner,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdatePixKeyRequest) ToUseCaseInput(id string) usecase.UpdatePixKeyInput {
	return usecase.UpdatePixKeyInput{
		ID:       id,
		Name:     r.Name,
		KeyType:  r.KeyType,
		KeyValue: r.KeyValue,
		Owner:    r.Owner,
	}
}

// CreateUserRequest represents a request to register an operator account.
type CreateUserRequest struct {
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		Role:     r.Role,
	}
}

// UpdateUserRequest represents a partial operator account update.
type UpdateUserRequest struct {
	Name     *string      `json:"name,omitempty"`
	Role     *domain.Role `json:"role,omitempty"`
	Active   *bool        `json:"active,omitempty"`
	Password *string      `json:"password,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateUserRequest) ToUseCaseInput(id string) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		ID:       id,
		Name:     r.Name,
		Role:     r.Role,
		Active:   r.Active,
		Password: r.Password,
	}
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
