package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/hilbert/proof"
)

const defaultTimeout = 5 * time.Minute

// ErrProofsFailed is returned when at least one checked proof has errors.
var ErrProofsFailed = errors.New("proof check failed")

var (
	cfgFile     string
	timeout     time.Duration
	verbose     bool
	metricsFile string

	logger *zap.Logger
	engine *proof.Engine
)

var rootCmd = &cobra.Command{
	Use:           "hilbert",
	Short:         "hilbert - a checker for Hilbert-style first-order proofs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
}

// Execute runs the command line. Errors other than failed proofs are
// printed to stderr.
func Execute() error {
	err := run()
	if err != nil && !errors.Is(err, ErrProofsFailed) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

// run executes the command tree and flushes metrics and logs whether or
// not the command failed.
func run() error {
	err := rootCmd.Execute()
	if ferr := flush(); ferr != nil {
		if err == nil {
			return ferr
		}
		fmt.Fprintln(rootCmd.ErrOrStderr(), "error:", ferr)
	}
	return err
}

func flush() error {
	if logger == nil {
		return nil
	}
	defer func() { _ = logger.Sync() }()

	if metricsFile == "" || engine == nil {
		return nil
	}
	if err := engine.Metrics().WriteFile(metricsFile); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	logger.Debug("Metrics written", zap.String("file", metricsFile))
	return nil
}

// loadEngine builds the engine from the configuration file.
func loadEngine() (*proof.Engine, error) {
	e, err := proof.New(cfgFile)
	if err != nil {
		return nil, err
	}
	engine = e
	return e, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", proof.DefaultConfigFile, "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the whole run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging with timings")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write prometheus metrics to this file on exit")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(deduceCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(instantiateCmd)
}
