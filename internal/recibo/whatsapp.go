package recibo

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/dinheirorapido/loanledger/internal/domain"
)

var (
	nonDigits      = regexp.MustCompile(`\D`)
	validE164Local = regexp.MustCompile(`^\d{12,13}$`)
)

// NormalizePhone converts a Brazilian phone number in whatever shape the
// operator typed it into wa.me digit form (country code + DDD + number).
//
// Steps: strip punctuation, drop the national trunk zero, prefix the 55
// country code for 11-digit national numbers, and drop a stray zero that
// sometimes survives right after the area code. The result must be 12 or 13
// digits.
func NormalizePhone(raw string) (string, error) {
	digits := nonDigits.ReplaceAllString(raw, "")

	for len(digits) >= 11 && strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}

	if len(digits) == 11 {
		digits = "55" + digits
	}

	if len(digits) == 13 && strings.HasPrefix(digits, "55") && digits[4] == '0' {
		digits = digits[:4] + digits[5:]
	}

	if !validE164Local.MatchString(digits) {
		return "", domain.ErrInvalidPhone
	}

	return digits, nil
}

// ShareLink builds a wa.me deep link that opens a chat with the given phone
// pre-filled with the receipt text.
func ShareLink(phone, text string) (string, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}

	// QueryEscape encodes spaces as "+", which WhatsApp renders literally.
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")

	return "https://wa.me/" + normalized + "?text=" + encoded, nil
}
