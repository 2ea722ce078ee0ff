package validator

import (
	"fmt"
	"time"

	"github.com/paykit/cardkit/pkg/brand"
	"github.com/paykit/cardkit/pkg/expiry"
	"github.com/paykit/cardkit/pkg/luhn"
)

// Card numbers run 12 to 20 digits. Wider than any single network issues;
// this is a plausibility gate, not a brand check.
const (
	minCardNumberLen = 12
	maxCardNumberLen = 20
)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// digitsWithin is the shared shape gate: non-empty, ASCII digits only,
// length within [min, max] inclusive.
func digitsWithin(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max && isDigits(s)
}

// ValidCardNumber validates that value is a plausible credit card number:
// 12 to 20 digits passing the Luhn checksum. Value must already be a bare
// digit string; run sanitizer.NormalizeCardNumber first if it may carry
// formatting.
func ValidCardNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitsWithin(value, minCardNumberLen, maxCardNumberLen) && luhn.Valid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%q is not a valid credit card number", value),
			TranslationKey: "validation.card_number",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// ValidSecurityCode validates a CVV/CVC/CID code: exactly 3 or 4 digits.
// No coercion exists for security codes; callers supply a bare digit
// string.
func ValidSecurityCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitsWithin(value, 3, 4)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%q is not a valid credit card security code. Must be 3 or 4 digits", value),
			TranslationKey: "validation.card_security_code",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// ValidSecurityCodeForBrand pins the security code length to the network's
// size: 4 digits for American Express, 3 for everyone else.
func ValidSecurityCodeForBrand(field, value string, b brand.Brand) Rule {
	return Rule{
		Check: func() bool {
			return isDigits(value) && len(value) == b.SecurityCodeLength()
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%q is not a valid %s security code. Must be %d digits", value, b, b.SecurityCodeLength()),
			TranslationKey: "validation.card_security_code_brand",
			TranslationValues: map[string]any{
				"field":  field,
				"value":  value,
				"brand":  b.String(),
				"length": b.SecurityCodeLength(),
			},
		},
	}
}

// ValidExpirationDate validates that value is a canonical expiration date,
// the last calendar day of its month. Values built with
// sanitizer.CoerceExpiration always pass. Only the calendar day is
// compared; clock time and location are ignored.
func ValidExpirationDate(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			return expiry.IsEndOfMonth(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "expiration date is not the last day of the month",
			TranslationKey: "validation.card_expiration",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotExpired validates that the expiration month has not passed. Month
// granularity: a card expiring this month is still valid today.
func NotExpired(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !expiry.Expired(value, time.Now())
		},
		Error: ValidationError{
			Field:          field,
			Message:        "card has expired",
			TranslationKey: "validation.card_expired",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
