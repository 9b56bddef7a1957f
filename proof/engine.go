// Package proof checks proof files and rewrites them by the deduction
// theorem. It wires the parser and checker to configuration, metrics and
// the file system.
package proof

import (
	"fmt"
	"time"

	"github.com/gnolang/hilbert/internal/checker"
	"github.com/gnolang/hilbert/internal/deduction"
	"github.com/gnolang/hilbert/internal/metrics"
)

// ProofEngine checks proof files.
type ProofEngine interface {
	Run(path string) (*Report, error)
	RunSource(name string, data []byte) (*Report, error)
}

// Report is the outcome of checking one proof file. Err is set, and
// Result is nil, when the file could not be read or has no valid sequent.
type Report struct {
	File    string
	Header  string
	Result  *checker.Result
	Elapsed time.Duration
	Err     error
}

func (r *Report) OK() bool {
	return r.Err == nil && r.Result != nil && r.Result.OK()
}

// Deduction is a rewritten proof together with the check of its source
// and, when verification is enabled, of the rewrite itself.
type Deduction struct {
	Source   *Report
	Output   *deduction.Output
	Verified *checker.Result
}

type Engine struct {
	config  Config
	metrics *metrics.Recorder
}

// New loads the configuration at configurationPath and returns an engine
// recording into a fresh metrics registry.
func New(configurationPath string) (*Engine, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}
	return NewEngine(config, metrics.New()), nil
}

// NewEngine returns an engine for config. rec may be nil.
func NewEngine(config Config, rec *metrics.Recorder) *Engine {
	return &Engine{config: config, metrics: rec}
}

func (e *Engine) Config() Config {
	return e.config
}

func (e *Engine) Metrics() *metrics.Recorder {
	return e.metrics
}

// SetDischargeSafety overrides the configured banned-variable mode.
func (e *Engine) SetDischargeSafety(on bool) {
	e.config.Check.DischargeSafety = on
}

// SetVerify overrides whether deduction output is checked again.
func (e *Engine) SetVerify(on bool) {
	e.config.Deduction.Verify = on
}

func (e *Engine) Run(path string) (*Report, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return e.Check(src, e.config.Check.DischargeSafety)
}

func (e *Engine) RunSource(name string, data []byte) (*Report, error) {
	src, err := ParseSource(name, data)
	if err != nil {
		return nil, err
	}
	return e.Check(src, e.config.Check.DischargeSafety)
}

// Check parses and checks src. Only a malformed sequent line is an error;
// problems in proof lines are reported in the result.
func (e *Engine) Check(src *Source, dischargeSafety bool) (*Report, error) {
	start := time.Now()

	p, err := checker.NewProof(src.Header, src.Lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.File, err)
	}
	res := checker.New(checker.Options{DischargeSafety: dischargeSafety}).Check(p)

	elapsed := time.Since(start)
	e.metrics.ObserveCheck(res, elapsed)

	return &Report{
		File:    src.File,
		Header:  p.Header,
		Result:  res,
		Elapsed: elapsed,
	}, nil
}

// Deduce checks src with discharge safety on and rewrites it. A source
// proof with errors is not rewritten; the returned Deduction still holds
// its report.
func (e *Engine) Deduce(src *Source) (*Deduction, error) {
	report, err := e.Check(src, true)
	if err != nil {
		return nil, err
	}
	d := &Deduction{Source: report}

	out, err := deduction.Rewrite(report.Result.Proof, report.Result, e.config.Deduction.Templates.Deduction())
	if err != nil {
		return d, err
	}
	d.Output = out
	e.metrics.ObserveRewrite()

	if !e.config.Deduction.Verify {
		return d, nil
	}
	start := time.Now()
	verified, err := deduction.Verify(out)
	if verified != nil {
		e.metrics.ObserveCheck(verified, time.Since(start))
	}
	d.Verified = verified
	return d, err
}
