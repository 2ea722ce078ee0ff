package sanitizer

import (
	"strings"
	"time"

	"github.com/paykit/cardkit/pkg/expiry"
)

// StripNonDigits removes every character outside 0-9. Idempotent; never
// fails. This is the coercion step for card numbers, turning
// human-formatted input like "4111-1111-1111-1111" into a bare digit
// string for validation.
func StripNonDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// NormalizeCardNumber strips formatting for storage and validation.
func NormalizeCardNumber(cardNumber string) string {
	return StripNonDigits(cardNumber)
}

// MaskCardNumber follows the PCI DSS convention of exposing only the last
// four digits.
func MaskCardNumber(cardNumber string) string {
	digits := NormalizeCardNumber(cardNumber)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// FormatCardNumber groups digits for display: 4-6-5 for 15-digit numbers
// (the Amex imprint), four-digit groups otherwise. Input outside common
// card lengths (13-19 digits) is returned unchanged to avoid data loss.
func FormatCardNumber(cardNumber string) string {
	digits := NormalizeCardNumber(cardNumber)
	if len(digits) < 13 || len(digits) > 19 {
		return cardNumber
	}

	if len(digits) == 15 {
		return digits[:4] + " " + digits[4:10] + " " + digits[10:]
	}

	var groups []string
	for i := 0; i < len(digits); i += 4 {
		end := min(i+4, len(digits))
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}

// CoerceExpiration builds the canonical expiration date for a month and
// year: the last calendar day of that month. The result always satisfies
// the expiration validator.
func CoerceExpiration(month time.Month, year int) time.Time {
	return expiry.EndOfMonth(year, month)
}
