package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/hilbert/formatter"
	"github.com/gnolang/hilbert/proof"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Check a proof file every time it is saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		e, err := loadEngine()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		return proof.Watch(ctx, logger, e, args[0], func(r *proof.Report, err error) {
			if err != nil {
				logger.Error("Error checking proof", zap.String("file", args[0]), zap.Error(err))
				return
			}
			fmt.Fprintln(out, formatter.GenerateFormattedReport(r))
		})
	},
}
