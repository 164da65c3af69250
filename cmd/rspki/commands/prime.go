package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// prime: print one probable prime of --bits bits in decimal.
func primeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prime",
		Short: "Generate a probable prime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return interruptible(cmd, func(ctx context.Context) error {
				p, err := appCtx.Keys.GeneratePrime(ctx, appCtx.Config.Bits)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
				return nil
			})
		},
	}
}
