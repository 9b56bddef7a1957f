package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/hilbert/formatter"
	"github.com/gnolang/hilbert/proof"
)

var (
	checkJSONOutput bool
	checkOutPath    string
	dischargeSafety bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check proof files; use - to read a proof from stdin",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		e, err := loadEngine()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("discharge-safety") {
			e.SetDischargeSafety(dischargeSafety)
		}

		reports, err := runCheck(ctx, logger, e, args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		asJSON := checkJSONOutput || e.Config().Output.Format == proof.FormatJSON
		if err := printReports(cmd.OutOrStdout(), reports, asJSON, checkOutPath); err != nil {
			return err
		}

		for _, r := range reports {
			if !r.OK() {
				return ErrProofsFailed
			}
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output reports in JSON format")
	checkCmd.Flags().StringVarP(&checkOutPath, "output", "o", "", "Output path (default stdout)")
	checkCmd.Flags().BoolVar(&dischargeSafety, "discharge-safety", false, "Reject quantifier rules over variables free in the last hypothesis")
}

func runCheck(ctx context.Context, logger *zap.Logger, e *proof.Engine, paths []string, stdin io.Reader) ([]*proof.Report, error) {
	var (
		files   []string
		reports []*proof.Report
	)
	for _, p := range paths {
		if p != "-" {
			files = append(files, p)
			continue
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		r, err := proof.ProcessSource(e, "<stdin>", data)
		if err != nil {
			r = &proof.Report{File: "<stdin>", Err: err}
		}
		reports = append(reports, r)
	}

	if len(files) > 0 {
		fileReports, err := proof.ProcessFiles(ctx, logger, e, files, proof.ProcessFile)
		if err != nil {
			return nil, err
		}
		reports = append(reports, fileReports...)
	}

	for _, r := range reports {
		logger.Debug("Checked proof",
			zap.String("file", r.File),
			zap.Bool("ok", r.OK()),
			zap.Duration("elapsed", r.Elapsed))
	}
	return reports, nil
}

func printReports(w io.Writer, reports []*proof.Report, asJSON bool, outPath string) error {
	var out []byte
	if asJSON {
		d, err := formatter.MarshalReports(reports)
		if err != nil {
			return fmt.Errorf("marshalling reports: %w", err)
		}
		out = append(d, '\n')
	} else {
		out = []byte(formatter.GenerateFormattedReports(reports))
	}

	if outPath == "" {
		_, err := w.Write(out)
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}
