package brand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paykit/cardkit/pkg/brand"
)

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		digits string
		want   brand.Brand
	}{
		{"visa classic", "4111111111111111", brand.Visa},
		{"visa 13-digit", "4222222222222", brand.Visa},
		{"mastercard 5-series", "5555555555554444", brand.Mastercard},
		{"mastercard 2-series", "2223000048400011", brand.Mastercard},
		{"amex 37", "378282246310005", brand.Amex},
		{"amex 34", "341111111111111", brand.Amex},
		{"discover 6011", "6011111111111117", brand.Discover},
		{"discover 65", "6511111111111119", brand.Discover},
		{"discover 644", "6441111111111111", brand.Discover},
		{"jcb", "3530111333300000", brand.JCB},
		{"diners 36", "36700102000000", brand.DinersClub},
		{"diners 300", "30010000000000", brand.DinersClub},
		{"diners 38", "38000000000006", brand.DinersClub},
		{"unionpay", "6212345678901232", brand.UnionPay},
		{"unknown prefix", "9999999999999999", brand.Unknown},
		{"empty", "", brand.Unknown},
		{"formatted input not accepted", "4111-1111-1111-1111", brand.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, brand.Detect(tt.digits))
		})
	}
}

func TestSecurityCodeLength(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, brand.Amex.SecurityCodeLength())
	assert.Equal(t, 3, brand.Visa.SecurityCodeLength())
	assert.Equal(t, 3, brand.Mastercard.SecurityCodeLength())
	assert.Equal(t, 3, brand.Unknown.SecurityCodeLength())
}

func TestLengths(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{15}, brand.Amex.Lengths())
	assert.Equal(t, []int{16}, brand.Mastercard.Lengths())
	assert.Contains(t, brand.Visa.Lengths(), 16)
	assert.Nil(t, brand.Unknown.Lengths())
}
