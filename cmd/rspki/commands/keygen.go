package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// keygenCmd generates a key pair from two --bits-bit primes and prints both
// halves. Nothing is written to disk.
func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return interruptible(cmd, func(ctx context.Context) error {
				kp, _, err := appCtx.Keys.GenerateKeyPair(ctx, appCtx.Config.Bits)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "public key:", kp.Public)
				fmt.Fprintln(out, "private key:", kp.Private)
				return nil
			})
		},
	}
}
