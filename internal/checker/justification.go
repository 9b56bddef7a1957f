package checker

import (
	"fmt"

	"github.com/gnolang/hilbert/internal/formula"
)

// Rule is the kind of justification a line received.
type Rule int

const (
	RuleAxiom Rule = iota
	RuleArithAxiom
	RuleHypothesis
	RuleModusPonens
	RuleUniversal
	RuleExistential
)

func (r Rule) String() string {
	switch r {
	case RuleAxiom:
		return "Axiom"
	case RuleArithAxiom:
		return "ArithAxiom"
	case RuleHypothesis:
		return "Hypothesis"
	case RuleModusPonens:
		return "ModusPonens"
	case RuleUniversal:
		return "UniversalRule"
	case RuleExistential:
		return "ExistentialRule"
	default:
		return "?"
	}
}

// Justification records why a line holds. Line references are 0-based.
type Justification struct {
	Rule Rule

	// Number is the axiom schema number or the 1-based hypothesis number.
	Number int

	// From is the antecedent line for Modus Ponens and the premise line
	// for the quantifier rules.
	From int

	// Via is the implication line for Modus Ponens.
	Via int
}

func (j Justification) String() string {
	switch j.Rule {
	case RuleAxiom, RuleArithAxiom, RuleHypothesis:
		return fmt.Sprintf("%s %d", j.Rule, j.Number)
	case RuleModusPonens:
		return fmt.Sprintf("%s %d,%d", j.Rule, j.From+1, j.Via+1)
	case RuleUniversal, RuleExistential:
		return fmt.Sprintf("%s %d", j.Rule, j.From+1)
	default:
		return j.Rule.String()
	}
}

// IsInstance reports whether the line stands on its own: an axiom or a
// hypothesis.
func (j Justification) IsInstance() bool {
	return j.Rule == RuleAxiom || j.Rule == RuleArithAxiom || j.Rule == RuleHypothesis
}

// Line is the outcome for one proof line.
type Line struct {
	Index         int
	Source        string
	Formula       formula.Formula // nil on syntax error
	Justification *Justification  // nil when Err is set
	Err           *LineError
}

// Annotation returns the justification tag or the error message.
func (l Line) Annotation() string {
	if l.Err != nil {
		return l.Err.Msg
	}
	if l.Justification != nil {
		return l.Justification.String()
	}
	return ""
}

// Result is the outcome of checking a whole proof.
type Result struct {
	Proof  *Proof
	Lines  []Line
	Errors ErrorList
}

// OK reports whether the check found no errors.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}
