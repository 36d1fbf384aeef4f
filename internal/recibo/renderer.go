// Package recibo renders payment receipts as pt-BR text and builds WhatsApp
// share links for them.
package recibo

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Document holds everything the text receipt displays.
type Document struct {
	Number           string
	ClientName       string
	DueDate          time.Time
	PaymentDate      time.Time
	InstallmentsPaid string // "3/10"; empty omits the line
	TotalConfirmed   decimal.Decimal
	PaidToday        decimal.Decimal
	GeneratedAt      time.Time
}

// Render produces the receipt text. The layout is fixed: header with the
// document number, the payment facts, a rule, the generation timestamp, and
// the conference disclaimer.
func Render(doc Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "RECIBO DE PAGAMENTO - Doc Nº %s\n\n", doc.Number)
	fmt.Fprintf(&b, "Cliente: %s\n", doc.ClientName)
	fmt.Fprintf(&b, "Vencimento: %s\n", formatDate(doc.DueDate))
	fmt.Fprintf(&b, "Data de pagamento: %s\n", formatDate(doc.PaymentDate))

	if doc.InstallmentsPaid != "" {
		fmt.Fprintf(&b, "Parcelas pagas: %s\n", doc.InstallmentsPaid)
	}

	fmt.Fprintf(&b, "Pago confirmado: %s\n", FormatBRL(doc.TotalConfirmed))
	fmt.Fprintf(&b, "Valor pago hoje: %s\n", FormatBRL(doc.PaidToday))
	b.WriteString("--------------------------\n\n")
	fmt.Fprintf(&b, "Gerado em: %s %s\n\n", formatDate(doc.GeneratedAt), doc.GeneratedAt.Format("15:04"))
	b.WriteString("ATENÇÃO:\nOs dados acima informados são apenas para simples conferência e não servem como comprovante de pagamento.")

	return b.String()
}

// FormatBRL formats an amount in Brazilian currency style: R$ 1.234,56.
func FormatBRL(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}

	return out
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
