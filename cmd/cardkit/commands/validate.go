package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paykit/cardkit/pkg/brand"
	"github.com/paykit/cardkit/pkg/sanitizer"
	"github.com/paykit/cardkit/pkg/validator"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <number>",
		Short: "Check a card number's plausibility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits := sanitizer.NormalizeCardNumber(args[0])
			if err := validator.Apply(validator.ValidCardNumber("card_number", digits)); err != nil {
				verrs := validator.ExtractValidationErrors(err)
				return errors.New(verrs[0].Message)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "valid %s card: %s\n",
				brand.Detect(digits), sanitizer.MaskCardNumber(digits))
			return nil
		},
	}
}
