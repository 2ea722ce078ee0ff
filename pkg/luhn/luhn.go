// Package luhn implements the Luhn checksum used to gate card number
// plausibility. A passing checksum means the digit string could be a card
// number; it says nothing about whether the number was ever issued.
package luhn

import (
	"errors"
	"sync"
)

// ErrNotDigits is returned when input contains anything but ASCII digits.
var ErrNotDigits = errors.New("luhn: input must be ASCII digits")

var (
	tableOnce sync.Once
	doubled   [10]int
)

// table builds the doubled-digit lookup on first use, so callers that never
// validate a card number pay no initialization cost.
func table() *[10]int {
	tableOnce.Do(func() {
		for d := range doubled {
			v := d * 2
			if v > 9 {
				v -= 9
			}
			doubled[d] = v
		}
	})
	return &doubled
}

// Valid reports whether digits passes the Luhn checksum. Empty strings and
// strings containing non-digit characters are reported invalid rather than
// rejected with an error; length bounds are the caller's concern.
func Valid(digits string) bool {
	if digits == "" {
		return false
	}

	t := table()
	sum := 0
	double := false

	// Process digits right to left, doubling every second one.
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d = t[d]
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}

// CheckDigit returns the digit that makes partial followed by that digit
// pass Valid. Used when generating card numbers rather than checking them.
func CheckDigit(partial string) (byte, error) {
	if partial == "" {
		return 0, ErrNotDigits
	}

	t := table()
	sum := 0
	// The appended check digit takes the undoubled slot, so the last digit
	// of partial is doubled.
	double := true

	for i := len(partial) - 1; i >= 0; i-- {
		c := partial[i]
		if c < '0' || c > '9' {
			return 0, ErrNotDigits
		}
		d := int(c - '0')
		if double {
			d = t[d]
		}
		sum += d
		double = !double
	}

	return byte('0' + (10-sum%10)%10), nil
}
