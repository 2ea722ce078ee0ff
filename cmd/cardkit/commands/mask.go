package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paykit/cardkit/pkg/sanitizer"
)

func maskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mask <number>",
		Short: "Mask a card number for display, keeping the last four digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), sanitizer.MaskCardNumber(args[0]))
			return nil
		},
	}
}

func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <number>",
		Short: "Group a card number's digits for display",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), sanitizer.FormatCardNumber(args[0]))
			return nil
		},
	}
}
