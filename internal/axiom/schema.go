// Package axiom holds the fixed axiom schemas and the metavariable matcher
// used to recognise their instances.
//
// In a schema, a propositional letter (A, B, C) stands for any formula and a
// term variable (a, b, c) stands for any term. The same letter must denote
// the same sub-formula or term everywhere it occurs.
package axiom

import (
	"github.com/gnolang/hilbert/internal/formula"
	"github.com/gnolang/hilbert/internal/parser"
)

// Family distinguishes the propositional schemas from the arithmetic ones.
type Family int

const (
	Propositional Family = iota
	Arithmetic
)

func (f Family) String() string {
	switch f {
	case Propositional:
		return "Axiom"
	case Arithmetic:
		return "ArithAxiom"
	default:
		return "?"
	}
}

// Schema is one numbered axiom schema.
type Schema struct {
	Family  Family
	Number  int
	Source  string
	Formula formula.Formula
}

var propositionalSources = []string{
	"A->B->A",
	"(A->B)->(A->B->C)->(A->C)",
	"A->B->A&B",
	"A&B->A",
	"A&B->B",
	"A->A|B",
	"B->A|B",
	"(A->C)->(B->C)->(A|B->C)",
	"(A->B)->(A->!B)->!A",
	"!!A->A",
}

var arithmeticSources = []string{
	"a=b->a'=b'",
	"(a=b)->(a=c)->(b=c)",
	"a'=b'->a=b",
	"!a'=0",
	"a+b'=(a+b)'",
	"a+0=a",
	"a*0=0",
	"a*b'=a*b+a",
}

// Numbers of the axiom schemas that are recognised structurally rather
// than by matching.
const (
	Induction                 = 9  // A(0) & @x.(A(x)->A(x')) -> A(x)
	UniversalInstantiation    = 11 // @x.A(x) -> A(t)
	ExistentialGeneralization = 12 // A(t) -> ?x.A(x)
)

var (
	propositional = compile(Propositional, propositionalSources)
	arithmetic    = compile(Arithmetic, arithmeticSources)
)

func compile(family Family, sources []string) []Schema {
	schemas := make([]Schema, len(sources))
	for i, src := range sources {
		schemas[i] = Schema{
			Family:  family,
			Number:  i + 1,
			Source:  src,
			Formula: parser.MustParse(src),
		}
	}
	return schemas
}

// PropositionalSchemas returns schemas 1-10 in order.
func PropositionalSchemas() []Schema {
	return propositional
}

// ArithmeticSchemas returns schemas A1-A8 in order.
func ArithmeticSchemas() []Schema {
	return arithmetic
}

// Find returns the earliest schema f is an instance of, propositional
// schemas first.
func Find(f formula.Formula) (Schema, bool) {
	for _, group := range [][]Schema{propositional, arithmetic} {
		for _, s := range group {
			if Matches(f, s.Formula, NewBindings()) {
				return s, true
			}
		}
	}
	return Schema{}, false
}
