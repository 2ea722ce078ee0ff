package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/paykit/cardkit/pkg/expiry"
)

func expiryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expiry <MM/YY>",
		Short: "Resolve a card-face expiry to its last calendar day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := expiry.ParseCardFace(args[0])
			if err != nil {
				return err
			}

			status := "valid"
			if expiry.Expired(end, time.Now()) {
				status = "expired"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", end.Format("2006-01-02"), status)
			return nil
		},
	}
}
