package recibo

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"1", "R$ 1,00"},
		{"10.5", "R$ 10,50"},
		{"999.99", "R$ 999,99"},
		{"1000", "R$ 1.000,00"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-1234.56", "-R$ 1.234,56"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestRender(t *testing.T) {
	doc := Document{
		Number:           "REC-1042",
		ClientName:       "Maria Silva",
		DueDate:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PaymentDate:      time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		InstallmentsPaid: "3/10",
		TotalConfirmed:   decimal.RequireFromString("750"),
		PaidToday:        decimal.RequireFromString("250"),
		GeneratedAt:      time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
	}

	got := Render(doc)

	want := "RECIBO DE PAGAMENTO - Doc Nº REC-1042\n\n" +
		"Cliente: Maria Silva\n" +
		"Vencimento: 01/06/2024\n" +
		"Data de pagamento: 10/05/2024\n" +
		"Parcelas pagas: 3/10\n" +
		"Pago confirmado: R$ 750,00\n" +
		"Valor pago hoje: R$ 250,00\n" +
		"--------------------------\n\n" +
		"Gerado em: 10/05/2024 14:30\n\n" +
		"ATENÇÃO:\nOs dados acima informados são apenas para simples conferência e não servem como comprovante de pagamento."

	assert.Equal(t, want, got)
}

func TestRenderOmitsInstallmentsLine(t *testing.T) {
	doc := Document{
		Number:      "REC-1000",
		ClientName:  "Maria Silva",
		PaidToday:   decimal.RequireFromString("100"),
		GeneratedAt: time.Now(),
	}

	assert.NotContains(t, Render(doc), "Parcelas pagas")
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "formatted mobile", in: "(11) 98765-4321", want: "5511987654321"},
		{name: "bare 11 digits", in: "11987654321", want: "5511987654321"},
		{name: "already with country code", in: "5511987654321", want: "5511987654321"},
		{name: "trunk zero stripped", in: "011987654321", want: "5511987654321"},
		{name: "landline with country code", in: "551134567890", want: "551134567890"},
		{name: "stray zero after area code", in: "5511034567890", want: "551134567890"},
		{name: "foreign 13 digits keeps zero", in: "4420034567890", want: "4420034567890"},
		{name: "too short", in: "12345", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "letters only", in: "not a phone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShareLink(t *testing.T) {
	link, err := ShareLink("(11) 98765-4321", "Recibo Nº 1000")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511987654321?text="))
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")
}
