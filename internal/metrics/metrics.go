// Package metrics records proof-checking instrumentation in a private
// prometheus registry that can be dumped in textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gnolang/hilbert/internal/checker"
)

const namespace = "hilbert"

// Recorder holds the check metrics. The zero value is not usable; call New.
// A nil *Recorder ignores every observation.
type Recorder struct {
	reg *prometheus.Registry

	// lines counts classified lines.
	// Labels: outcome (a rule name such as ModusPonens, or an error kind)
	lines *prometheus.CounterVec

	// proofs counts checked proofs.
	// Labels: status (ok, failed)
	proofs *prometheus.CounterVec

	duration prometheus.Histogram
	rewrites prometheus.Counter
}

func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		lines: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "check",
			Name:      "lines_total",
			Help:      "Proof lines classified, by outcome",
		}, []string{"outcome"}),
		proofs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "check",
			Name:      "proofs_total",
			Help:      "Proofs checked, by status",
		}, []string{"status"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "check",
			Name:      "duration_seconds",
			Help:      "Time spent checking one proof",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		rewrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "deduction",
			Name:      "rewrites_total",
			Help:      "Proofs rewritten by the deduction theorem",
		}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// ObserveCheck records the outcome of one check that took d.
func (r *Recorder) ObserveCheck(res *checker.Result, d time.Duration) {
	if r == nil || res == nil {
		return
	}
	r.duration.Observe(d.Seconds())
	for _, l := range res.Lines {
		r.lines.WithLabelValues(Outcome(l)).Inc()
	}
	status := "ok"
	if !res.OK() {
		status = "failed"
	}
	r.proofs.WithLabelValues(status).Inc()
}

// ObserveRewrite counts one deduction rewrite.
func (r *Recorder) ObserveRewrite() {
	if r == nil {
		return
	}
	r.rewrites.Inc()
}

// WriteFile writes every metric to path in the textfile exposition format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

// Outcome is the label value used for a classified line.
func Outcome(l checker.Line) string {
	switch {
	case l.Err != nil:
		return l.Err.Kind.String()
	case l.Justification != nil:
		return l.Justification.Rule.String()
	default:
		return "unknown"
	}
}
