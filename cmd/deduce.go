package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/hilbert/formatter"
	"github.com/gnolang/hilbert/internal/checker"
	"github.com/gnolang/hilbert/internal/deduction"
	"github.com/gnolang/hilbert/proof"
)

var (
	deduceOutPath string
	noVerify      bool
)

var deduceCmd = &cobra.Command{
	Use:   "deduce <file>",
	Short: "Discharge the last hypothesis of a proof by the deduction theorem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEngine()
		if err != nil {
			return err
		}
		if noVerify {
			e.SetVerify(false)
		}

		src, err := proof.ReadSource(args[0])
		if err != nil {
			return err
		}

		d, err := e.Deduce(src)
		if err != nil {
			if list, ok := checker.AsErrorList(err); ok {
				logger.Debug("Deduction rejected",
					zap.String("file", src.File),
					zap.Int("errors", len(list)))
			}
			if errors.Is(err, deduction.ErrInvalidProof) && d != nil {
				fmt.Fprint(cmd.ErrOrStderr(), formatter.GenerateFormattedReport(d.Source))
				return ErrProofsFailed
			}
			return err
		}
		logger.Debug("Rewrote proof",
			zap.String("file", src.File),
			zap.Int("lines", len(d.Output.Lines)),
			zap.Bool("verified", d.Verified != nil))

		if deduceOutPath == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), d.Output.String())
			return err
		}
		return os.WriteFile(deduceOutPath, []byte(d.Output.String()), 0o644)
	},
}

func init() {
	deduceCmd.Flags().StringVarP(&deduceOutPath, "output", "o", "", "Output path (default stdout)")
	deduceCmd.Flags().BoolVar(&noVerify, "no-verify", false, "Do not check the rewritten proof")
}
