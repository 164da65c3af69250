package commands

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ziliangpeng/rspki/internal/app"
	"github.com/ziliangpeng/rspki/internal/domain"
	"github.com/ziliangpeng/rspki/internal/services/bench"
)

var bitsLabel = color.New(color.Bold, color.FgCyan).SprintfFunc()

// benchCmd times prime generation over a geometric sweep of bit lengths.
func benchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark prime generation across bit lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sizes := bench.Sizes(appCtx.Config.BenchSizes)

			return interruptible(cmd, func(ctx context.Context) error {
				results, err := appCtx.Bench.Run(ctx, sizes, appCtx.Config.BenchRuns, func(r domain.BenchResult) {
					fmt.Fprintf(out, "%s; avg time %.2fs; max %.2fs; min %.2fs\n",
						bitsLabel("%d bits", r.Bits),
						r.Avg.Seconds(),
						r.Max.Seconds(),
						r.Min.Seconds(),
					)
				})
				if err != nil {
					return err
				}

				if appCtx.Results != nil {
					if err := appCtx.Results.SaveBenchResults(results); err != nil {
						return errors.Wrap(err, "saving bench results")
					}
					log.WithField("file", appCtx.Config.BenchOut).Info("bench results saved")
				}
				return nil
			})
		},
	}
	cmd.Flags().Int("runs", bench.DefaultRuns, "timings per bit length")
	cmd.Flags().Int("sizes", bench.DefaultSizes, "number of bit lengths, starting at 128 and growing by 5%")
	cmd.Flags().String("json", "", "also write results to this JSON file")
	_ = v.BindPFlag(app.KeyBenchRuns, cmd.Flags().Lookup("runs"))
	_ = v.BindPFlag(app.KeyBenchSizes, cmd.Flags().Lookup("sizes"))
	_ = v.BindPFlag(app.KeyBenchOut, cmd.Flags().Lookup("json"))
	return cmd
}
