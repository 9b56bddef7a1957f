package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnolang/hilbert/proof"
)

var forceInit bool

// initCmd: hilbert init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = proof.DefaultConfigFile
		}
		if err := initConfigurationFile(path, forceInit); err != nil {
			return fmt.Errorf("initializing config file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")
}

func initConfigurationFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	return proof.WriteConfig(path, proof.DefaultConfig())
}
