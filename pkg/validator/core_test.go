package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paykit/cardkit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()
	t.Run("returns nil when every rule passes", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidCardNumber("card_number", "4111111111111111"),
			validator.ValidSecurityCode("cvc", "123"),
		)
		assert.NoError(t, err)
	})

	t.Run("aggregates every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidCardNumber("card_number", "not a number"),
			validator.ValidSecurityCode("cvc", "12"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.True(t, verrs.Has("card_number"))
		assert.True(t, verrs.Has("cvc"))
		assert.Equal(t, []string{"card_number", "cvc"}, verrs.Fields())
	})

	t.Run("error string lists field and message", func(t *testing.T) {
		err := validator.Apply(validator.ValidSecurityCode("cvc", "12"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed: cvc:")
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		err := validator.Apply(validator.ValidSecurityCode("cvc", "12"))
		wrapped := fmt.Errorf("saving card: %w", err)

		verrs := validator.ExtractValidationErrors(wrapped)
		require.Len(t, verrs, 1)
		assert.Equal(t, []string{`"12" is not a valid credit card security code. Must be 3 or 4 digits`}, verrs.Get("cvc"))
		assert.True(t, validator.IsValidationError(wrapped))
	})
}
