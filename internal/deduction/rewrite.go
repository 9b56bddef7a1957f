// Package deduction turns a checked proof of Γ,H |- F into a proof of
// Γ |- H->F.
//
// Every line L of the source proof is replaced by a fragment that ends in
// H->L. The fragment is chosen by the justification of L and filled in
// from a text template; see Templates.
package deduction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnolang/hilbert/internal/checker"
	"github.com/gnolang/hilbert/internal/formula"
	"github.com/gnolang/hilbert/internal/parser"
)

var (
	ErrNoHypothesis = errors.New("deduction: sequent has no hypothesis to discharge")
	ErrInvalidProof = errors.New("deduction: proof has errors")
	ErrUnverified   = errors.New("deduction: rewritten proof does not verify")
)

// Output is a rewritten proof.
type Output struct {
	Hypotheses []string
	Goal       string
	Lines      []string
}

// Header returns the sequent line of the rewritten proof.
func (o *Output) Header() string {
	return parser.FormatSequent(o.Hypotheses, o.Goal)
}

// String renders the header and every line, newline terminated.
func (o *Output) String() string {
	var b strings.Builder
	b.WriteString(o.Header())
	b.WriteByte('\n')
	for _, l := range o.Lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Rewrite discharges the last hypothesis of p. res must be the result of
// checking p with discharge safety enabled; a result with errors is
// rejected with ErrInvalidProof.
func Rewrite(p *checker.Proof, res *checker.Result, t Templates) (*Output, error) {
	if len(p.Hypotheses) == 0 {
		return nil, ErrNoHypothesis
	}
	if err := res.Errors.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}
	t = t.WithDefaults()

	last := len(p.Hypotheses) - 1
	h := p.Hypotheses[last]
	goal := p.Last()

	out := &Output{
		Hypotheses: append([]string(nil), p.HypothesisText[:last]...),
		Goal:       formula.Implies(h, goal).String(),
	}
	for _, line := range res.Lines {
		fragment, err := expand(p, line, h, t)
		if err != nil {
			return nil, err
		}
		out.Lines = append(out.Lines, fragment...)
	}
	return out, nil
}

func expand(p *checker.Proof, line checker.Line, h formula.Formula, t Templates) ([]string, error) {
	f := line.Formula
	j := line.Justification
	if f == nil || j == nil {
		return nil, fmt.Errorf("%w: line %d is not justified", ErrInvalidProof, line.Index+1)
	}

	hs := h.String()
	switch {
	case formula.Equal(f, h):
		return fill(t.Self, hs, "", "", ""), nil

	case j.IsInstance():
		return fill(t.Axiom, hs, f.String(), "", ""), nil

	case j.Rule == checker.RuleModusPonens:
		return fill(t.ModusPonens, hs, p.Lines[j.From].String(), f.String(), ""), nil

	case j.Rule == checker.RuleUniversal:
		impl := f.(*formula.Binary)
		q := impl.Right().(*formula.Quantified)
		return fill(t.Any, hs, impl.Left().String(), q.Body().String(), q.Ident()), nil

	case j.Rule == checker.RuleExistential:
		impl := f.(*formula.Binary)
		q := impl.Left().(*formula.Quantified)
		return fill(t.Exists, hs, q.Body().String(), impl.Right().String(), q.Ident()), nil
	}
	return nil, fmt.Errorf("deduction: line %d: unsupported justification %s", line.Index+1, j)
}

// fill substitutes the placeholders of tmpl and splits it into lines.
func fill(tmpl, h, a, b, x string) []string {
	r := strings.NewReplacer(
		PlaceholderHypothesis, h,
		PlaceholderA, a,
		PlaceholderB, b,
		PlaceholderVariable, x,
	)
	var lines []string
	for _, l := range strings.Split(r.Replace(tmpl), "\n") {
		if l = parser.StripSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Verify checks the rewritten proof. It returns ErrUnverified, wrapping
// the check errors, when the rewrite is not a valid proof of its header.
func Verify(out *Output) (*checker.Result, error) {
	p, err := checker.NewProof(out.Header(), out.Lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnverified, err)
	}
	res := checker.New(checker.Options{}).Check(p)
	if err := res.Errors.Err(); err != nil {
		return res, fmt.Errorf("%w: %w", ErrUnverified, err)
	}
	return res, nil
}
