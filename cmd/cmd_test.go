package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/hilbert/formatter"
	"github.com/gnolang/hilbert/proof"
)

func init() {
	color.NoColor = true
}

const modusPonensProof = "A, A->B |- B\nA\nA->B\nB\n"

// execute runs the command line with args. Flags keep their values
// between runs, so they are reset to their defaults first.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", ""}, args...))

	err := run()
	engine = nil
	return stdout.String(), stderr.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeProof(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	valid := writeProof(t, dir, "mp.proof", modusPonensProof)
	invalid := writeProof(t, dir, "bad.proof", "|-B\nB\n")

	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  error
	}{
		{
			name:     "valid proof",
			args:     []string{"check", valid},
			contains: []string{"(3) B (ModusPonens 1,2)", "ok: no errors"},
		},
		{
			name:     "invalid proof",
			args:     []string{"check", invalid},
			contains: []string{"(1) B (not proved)", "found 1 error"},
			wantErr:  ErrProofsFailed,
		},
		{
			name:     "directory",
			args:     []string{"check", dir},
			contains: []string{"mp.proof", "bad.proof"},
			wantErr:  ErrProofsFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "check", filepath.Join(t.TempDir(), "missing.proof"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProofsFailed)
}

func TestCheckCommandStdin(t *testing.T) {
	out, _, err := execute(t, modusPonensProof, "check", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<stdin>: A,A->B|-B\n"), out)
}

func TestCheckCommandJSON(t *testing.T) {
	valid := writeProof(t, t.TempDir(), "mp.proof", modusPonensProof)

	out, _, err := execute(t, "", "check", "--json", valid)
	require.NoError(t, err)

	var reports []formatter.ReportJSON
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.True(t, reports[0].OK)
	assert.Equal(t, "A,A->B|-B", reports[0].Header)
	assert.Len(t, reports[0].Lines, 3)
}

func TestCheckCommandOutputFile(t *testing.T) {
	dir := t.TempDir()
	valid := writeProof(t, dir, "mp.proof", modusPonensProof)
	outPath := filepath.Join(dir, "report.txt")

	out, _, err := execute(t, "", "check", "-o", outPath, valid)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ok: no errors")
}

func TestCheckCommandDischargeSafety(t *testing.T) {
	// x is free in P(x), the hypothesis a deduction would discharge.
	path := writeProof(t, t.TempDir(), "gen.proof", "R->Q(x), P(x) |- R->@xQ(x)\nR->Q(x)\nR->@xQ(x)\n")

	_, _, err := execute(t, "", "check", path)
	require.NoError(t, err)

	out, _, err := execute(t, "", "check", "--discharge-safety", path)
	require.ErrorIs(t, err, ErrProofsFailed)
	assert.Contains(t, out, "which occurs free in hypothesis P(x)")
}

func TestCheckCommandMetricsFile(t *testing.T) {
	dir := t.TempDir()
	valid := writeProof(t, dir, "mp.proof", modusPonensProof)
	invalid := writeProof(t, dir, "bad.proof", "|-B\nB\n")

	tests := []struct {
		name     string
		path     string
		wantErr  error
		contains []string
	}{
		{
			name:     "passing proof",
			path:     valid,
			contains: []string{`hilbert_check_proofs_total{status="ok"} 1`},
		},
		{
			name:    "failing proof",
			path:    invalid,
			wantErr: ErrProofsFailed,
			contains: []string{
				`hilbert_check_proofs_total{status="failed"} 1`,
				`hilbert_check_lines_total{outcome="unproved"} 1`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metricsPath := filepath.Join(t.TempDir(), "hilbert.prom")

			_, _, err := execute(t, "", "--metrics-file", metricsPath, "check", tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			data, err := os.ReadFile(metricsPath)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, string(data), s)
			}
		})
	}
}

func TestDeduceCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeProof(t, dir, "mp.proof", modusPonensProof)
	outPath := filepath.Join(dir, "deduced.proof")

	_, _, err := execute(t, "", "deduce", "-o", outPath, src)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "A|-"), string(data))

	out, _, err := execute(t, "", "check", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: no errors")
}

func TestDeduceCommandInvalidProof(t *testing.T) {
	src := writeProof(t, t.TempDir(), "bad.proof", "A|-B\nB\n")

	out, stderr, err := execute(t, "", "deduce", src)
	assert.ErrorIs(t, err, ErrProofsFailed)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "(1) B (not proved)")
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), proof.DefaultConfigFile)
	resetFlags(rootCmd)

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"--config", path, "init"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, stdout.String(), path)

	config, err := proof.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, proof.DefaultConfig(), config)

	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"--config", path, "init"})
	assert.Error(t, rootCmd.Execute())

	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"--config", path, "init", "--force"})
	assert.NoError(t, rootCmd.Execute())
}

func TestInstantiateCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		wantErr  bool
	}{
		{
			name:     "template",
			args:     []string{"instantiate", "--n", "2", "a+0=a"},
			expected: "0''+0=0''\n",
		},
		{
			name:     "other variable",
			args:     []string{"instantiate", "--var", "b", "--n", "1", "a+b=b+a"},
			expected: "a+0'=0'+a\n",
		},
		{
			name:     "specialize",
			args:     []string{"instantiate", "--specialize", "--n", "1", "a+0=a"},
			expected: "((@a((a+0)=a))->((0'+0)=0'))\n((0'+0)=0')\n",
		},
		{
			name:    "negative number",
			args:    []string{"instantiate", "--n", "-1", "a=a"},
			wantErr: true,
		},
		{
			name:    "no template",
			args:    []string{"instantiate"},
			wantErr: true,
		},
		{
			name:    "specialize without free variable",
			args:    []string{"instantiate", "--specialize", "b=b"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestInstantiateCommandFile(t *testing.T) {
	path := writeProof(t, t.TempDir(), "tmpl.proof", "|-a=a\na=a\n")

	out, _, err := execute(t, "", "instantiate", "--n", "3", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "|-0'''=0'''\n0'''=0'''\n", out)
}
