package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dinheirorapido/loanledger/internal/domain"
)

func TestCreateClientRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateClientRequest{
		Name:  "Maria Souza",
		Email: "maria@example.com",
		Phone: "+5511999990000",
		CPF:   "123.456.789-00",
		City:  "Sao Paulo",
	}

	got := req.ToUseCaseInput()

	if got.Name != "Maria Souza" || got.Email != "maria@example.com" {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
	if got.Phone != "+5511999990000" || got.CPF != "123.456.789-00" || got.City != "Sao Paulo" {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
}

func TestUpdateClientRequest_ToUseCaseInput(t *testing.T) {
	name := "Novo Nome"
	req := &UpdateClientRequest{Name: &name}

	got := req.ToUseCaseInput("client-1")

	if got.ID != "client-1" {
		t.Fatalf("expected id to propagate, got %+v", got)
	}
	if got.Name == nil || *got.Name != "Novo Nome" {
		t.Fatalf("expected name pointer to propagate, got %+v", got)
	}
	if got.Email != nil {
		t.Fatalf("expected absent fields to stay nil, got %+v", got)
	}
}

func TestCreateLoanRequest_ToUseCaseInput(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	due := start.AddDate(0, 1, 0)

	req := &CreateLoanRequest{
		ClientID:     "client-1",
		Amount:       decimal.RequireFromString("1000"),
		InterestRate: decimal.RequireFromString("20"),
		PaymentType:  domain.PaymentTypeInstallments,
		Installments: 4,
		StartDate:    start,
		DueDate:      &due,
		Notes:        "primeira operacao",
	}

	got := req.ToUseCaseInput()

	if got.ClientID != "client-1" || got.PaymentType != domain.PaymentTypeInstallments {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
	if !got.Amount.Equal(decimal.NewFromInt(1000)) || !got.InterestRate.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("amounts did not propagate: %+v", got)
	}
	if got.Installments != 4 || !got.StartDate.Equal(start) {
		t.Fatalf("schedule did not propagate: %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("due date did not propagate: %+v", got)
	}
}

func TestRecordPaymentRequest_ToUseCaseInput(t *testing.T) {
	date := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	req := &RecordPaymentRequest{
		Amount:            decimal.RequireFromString("250.50"),
		Date:              &date,
		Kind:              domain.PaymentKindInterestOnly,
		InstallmentNumber: 2,
	}

	got := req.ToUseCaseInput("loan-1")

	if got.LoanID != "loan-1" {
		t.Fatalf("expected loan id to propagate, got %+v", got)
	}
	if !got.Amount.Equal(decimal.RequireFromString("250.50")) {
		t.Fatalf("amount did not propagate: %+v", got)
	}
	if got.Kind != domain.PaymentKindInterestOnly || got.InstallmentNumber != 2 {
		t.Fatalf("kind/installment did not propagate: %+v", got)
	}
	if got.Date == nil || !got.Date.Equal(date) {
		t.Fatalf("date did not propagate: %+v", got)
	}
}

func TestCreatePixKeyRequest_ToUseCaseInput(t *testing.T) {
	req := &CreatePixKeyRequest{
		Name:     "Principal",
		KeyType:  domain.PixKeyTypeCPF,
		KeyValue: "12345678900",
		Owner:    "Maria Souza",
	}

	got := req.ToUseCaseInput()

	if got.Name != "Principal" || got.KeyType != domain.PixKeyTypeCPF {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
	if got.KeyValue != "12345678900" || got.Owner != "Maria Souza" {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
}

func TestUpdatePixKeyRequest_ToUseCaseInput(t *testing.T) {
	value := "maria@example.com"
	keyType := domain.PixKeyTypeEmail

	req := &UpdatePixKeyRequest{
		KeyType:  &keyType,
		KeyValue: &value,
	}

	got := req.ToUseCaseInput("pix-1")

	if got.ID != "pix-1" {
		t.Fatalf("expected id to propagate, got %+v", got)
	}
	if got.KeyType == nil || *got.KeyType != domain.PixKeyTypeEmail {
		t.Fatalf("expected key type pointer to propagate, got %+v", got)
	}
	if got.Name != nil || got.Owner != nil {
		t.Fatalf("expected absent fields to stay nil, got %+v", got)
	}
}
