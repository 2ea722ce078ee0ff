// Package brand detects card networks from issuer identification number
// (IIN) prefixes. Detection is purely syntactic; it does not consult a BIN
// database and cannot distinguish co-branded or regional products.
package brand

import "strconv"

// Brand identifies a card network.
type Brand string

const (
	Visa       Brand = "visa"
	Mastercard Brand = "mastercard"
	Amex       Brand = "amex"
	Discover   Brand = "discover"
	JCB        Brand = "jcb"
	DinersClub Brand = "diners_club"
	UnionPay   Brand = "unionpay"
	Unknown    Brand = "unknown"
)

// Detect returns the brand for a digit-only card number, matching on the
// longest applicable IIN prefix. Unknown is returned for anything that does
// not match, including strings with non-digit characters; strip formatting
// before calling.
func Detect(digits string) Brand {
	if digits == "" {
		return Unknown
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Unknown
		}
	}

	switch {
	case prefixInRange(digits, 4, 2221, 2720), prefixInRange(digits, 2, 51, 55):
		return Mastercard
	case prefixInRange(digits, 4, 3528, 3589):
		return JCB
	case prefixInRange(digits, 4, 6011, 6011), prefixInRange(digits, 3, 644, 649), prefixInRange(digits, 2, 65, 65):
		return Discover
	case prefixInRange(digits, 3, 300, 305), prefixInRange(digits, 2, 36, 36), prefixInRange(digits, 2, 38, 38):
		return DinersClub
	case prefixInRange(digits, 2, 34, 34), prefixInRange(digits, 2, 37, 37):
		return Amex
	case prefixInRange(digits, 2, 62, 62):
		return UnionPay
	case digits[0] == '4':
		return Visa
	}

	return Unknown
}

// SecurityCodeLength returns the brand's security code size. American
// Express prints a 4-digit CID; every other network uses 3 digits.
func (b Brand) SecurityCodeLength() int {
	if b == Amex {
		return 4
	}
	return 3
}

// Lengths returns the account number lengths the brand issues, or nil for
// Unknown.
func (b Brand) Lengths() []int {
	switch b {
	case Visa:
		return []int{13, 16, 19}
	case Mastercard:
		return []int{16}
	case Amex:
		return []int{15}
	case Discover:
		return []int{16, 19}
	case JCB, UnionPay:
		return []int{16, 17, 18, 19}
	case DinersClub:
		return []int{14, 16, 19}
	}
	return nil
}

func (b Brand) String() string {
	return string(b)
}

func prefixInRange(digits string, width, lo, hi int) bool {
	if len(digits) < width {
		return false
	}
	n, err := strconv.Atoi(digits[:width])
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}
