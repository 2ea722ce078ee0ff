package commands

import "github.com/spf13/cobra"

// Execute runs the cardkit CLI.
func Execute() error {
	return NewRoot().Execute()
}

// NewRoot builds the root command with all subcommands attached.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "cardkit",
		Short:         "Validate and normalize payment card data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(validateCmd(), maskCmd(), formatCmd(), expiryCmd())
	return root
}
