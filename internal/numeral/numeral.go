// Package numeral builds the numerals 0, 0', 0'', ... of formal arithmetic
// and specialises formulas and proof texts to a concrete numeral.
package numeral

import (
	"fmt"
	"strings"

	"github.com/gnolang/hilbert/internal/formula"
	"github.com/gnolang/hilbert/internal/parser"
)

// Numeral returns the numeral of n: "0" followed by n successor marks.
func Numeral(n int) string {
	if n < 0 {
		n = 0
	}
	return "0" + strings.Repeat("'", n)
}

// Instantiate replaces every occurrence of the term variable in text with
// the numeral of n. Occurrences are identifier tokens, so "a1" is not an
// occurrence of "a"; bound occurrences are replaced too.
func Instantiate(text, variable string, n int) string {
	return formula.ReplaceIdent(text, variable, Numeral(n))
}

// Specialize returns the two proof lines deriving F[variable:=n] from
// @variable F: the instance of axiom 11 and the Modus Ponens conclusion.
// The universally quantified formula must already be proved.
func Specialize(text, variable string, n int) ([]string, error) {
	f, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	if !formula.IsFree(f, variable) {
		return nil, fmt.Errorf("variable %s does not occur free in %s", variable, f)
	}

	inst, err := parser.Parse(Instantiate(f.String(), variable, n))
	if err != nil {
		return nil, err
	}
	all := formula.ForAll(variable, f)
	return []string{
		formula.Implies(all, inst).String(),
		inst.String(),
	}, nil
}
