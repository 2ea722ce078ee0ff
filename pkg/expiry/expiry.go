// Package expiry handles card expiration dates. An expiration date is
// canonically the last calendar day of its month: a card printed "10/26"
// is good through October 31, 2026.
package expiry

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrBadCardFace is returned when input is not MM/YY or MMYY digits.
	ErrBadCardFace = errors.New("expiry: card face must be MM/YY or MMYY")

	// ErrBadMonth is returned when the card-face month is outside 01-12.
	ErrBadMonth = errors.New("expiry: month must be between 01 and 12")
)

// EndOfMonth returns midnight UTC on the last calendar day of the given
// month and year, accounting for leap years. Out-of-range months normalize
// the way time.Date normalizes them (month 13 of 2025 is January 2026);
// callers wanting strict bounds should validate before calling.
func EndOfMonth(year int, month time.Month) time.Time {
	firstOfNext := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// IsEndOfMonth reports whether t falls on the last calendar day of its
// month. Only the date is inspected; clock time and location are ignored.
func IsEndOfMonth(t time.Time) bool {
	return t.Day() == EndOfMonth(t.Year(), t.Month()).Day()
}

// ParseCardFace parses "MM/YY" or "MMYY" into the canonical expiration
// date, the end of that month. Two-digit years map into 2000-2099.
func ParseCardFace(in string) (time.Time, error) {
	s := strings.TrimSpace(in)
	s = strings.ReplaceAll(s, "/", "")
	if len(s) != 4 {
		return time.Time{}, ErrBadCardFace
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, ErrBadCardFace
		}
	}

	mm := int(s[0]-'0')*10 + int(s[1]-'0')
	if mm < 1 || mm > 12 {
		return time.Time{}, ErrBadMonth
	}
	yy := int(s[2]-'0')*10 + int(s[3]-'0')

	return EndOfMonth(2000+yy, time.Month(mm)), nil
}

// CardFace formats t as "MM/YY" for card imprint.
func CardFace(t time.Time) string {
	return fmt.Sprintf("%02d/%02d", int(t.Month()), t.Year()%100)
}

// Expired reports whether at falls after the final day of t's expiration
// month, in UTC. A card expiring October 2026 is still valid for all of
// October 31.
func Expired(t, at time.Time) bool {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return !at.Before(firstOfNext)
}
