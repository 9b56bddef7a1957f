package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnolang/hilbert/internal/numeral"
)

var (
	instVariable   string
	instValue      int
	instFile       string
	instSpecialize bool
)

var instantiateCmd = &cobra.Command{
	Use:   "instantiate [template...]",
	Short: "Replace a term variable by a numeral in a proof template",
	Long: `Replace every occurrence of a term variable by the numeral 0'...' of n.

With --specialize each argument is a formula F and the output is the two
lines deriving F with the numeral from the already proved @var F.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if instValue < 0 {
			return fmt.Errorf("--n must not be negative, got %d", instValue)
		}

		texts := args
		if instFile != "" {
			data, err := os.ReadFile(instFile)
			if err != nil {
				return err
			}
			texts = append(texts, strings.TrimRight(string(data), "\n"))
		}
		if len(texts) == 0 {
			return fmt.Errorf("no template given")
		}

		return instantiate(cmd.OutOrStdout(), texts)
	},
}

func init() {
	instantiateCmd.Flags().StringVar(&instVariable, "var", "a", "Term variable to replace")
	instantiateCmd.Flags().IntVar(&instValue, "n", 0, "Number whose numeral replaces the variable")
	instantiateCmd.Flags().StringVarP(&instFile, "file", "f", "", "Read the template from a file")
	instantiateCmd.Flags().BoolVar(&instSpecialize, "specialize", false, "Emit the lines specializing a universally quantified formula")
}

func instantiate(w io.Writer, texts []string) error {
	for _, text := range texts {
		if !instSpecialize {
			if _, err := fmt.Fprintln(w, numeral.Instantiate(text, instVariable, instValue)); err != nil {
				return err
			}
			continue
		}

		lines, err := numeral.Specialize(text, instVariable, instValue)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
			return err
		}
	}
	return nil
}
