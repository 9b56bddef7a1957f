// Package subst decides whether one formula is obtained from another by
// substituting a term for the free occurrences of a variable, and whether
// that term was free for the substitution.
package subst

import (
	"fmt"

	"github.com/gnolang/hilbert/internal/formula"
)

// CaptureError reports a substituted term whose free variable ended up in
// the scope of a quantifier.
type CaptureError struct {
	Term     string
	Formula  string
	Variable string
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("term %s is not free for substitution into formula %s in place of variable %s",
		e.Term, e.Formula, e.Variable)
}

// Check reports whether instantiated equals template with one term t put in
// place of every free occurrence of variable. If t would be captured by a
// quantifier of instantiated, Check returns false and a *CaptureError.
//
// When variable has no free occurrence in template the two formulas must be
// identical.
func Check(template, instantiated formula.Formula, variable string) (bool, error) {
	s := &substitution{variable: variable}
	if !s.find(template, instantiated) {
		return false, nil
	}
	if s.term == nil {
		return true, nil
	}

	free := formula.FreeVariables(s.term)
	if len(free) == 0 {
		return true, nil
	}
	if s.captured(template, instantiated, make(map[string]int), free) {
		return false, &CaptureError{
			Term:     s.term.String(),
			Formula:  instantiated.String(),
			Variable: variable,
		}
	}
	return true, nil
}

// Term returns the term substituted for variable, or nil when there is no
// free occurrence or instantiated is not a substitution instance.
func Term(template, instantiated formula.Formula, variable string) formula.Formula {
	s := &substitution{variable: variable}
	if !s.find(template, instantiated) {
		return nil
	}
	return s.term
}

type substitution struct {
	variable string
	term     formula.Formula // fixed at the first free occurrence
}

func (s *substitution) find(template, inst formula.Formula) bool {
	if template.Kind().IsQuantifier() && template.Ident() == s.variable {
		return formula.Equal(template, inst)
	}
	if template.Kind() == formula.KindVariable && template.Ident() == s.variable {
		if s.term == nil {
			s.term = inst
			return true
		}
		return formula.Equal(s.term, inst)
	}

	if template.Kind() != inst.Kind() || template.Ident() != inst.Ident() {
		return false
	}
	tc, ic := template.Children(), inst.Children()
	if len(tc) != len(ic) {
		return false
	}
	for i := range tc {
		if !s.find(tc[i], ic[i]) {
			return false
		}
	}
	return true
}

// captured walks both trees along the shape already validated by find.
// depth counts, per name, the quantifiers of inst enclosing the current
// position.
func (s *substitution) captured(template, inst formula.Formula, depth map[string]int, free map[string]bool) bool {
	if template.Kind().IsQuantifier() && template.Ident() == s.variable {
		return false
	}
	if template.Kind() == formula.KindVariable && template.Ident() == s.variable {
		for name := range free {
			if depth[name] > 0 {
				return true
			}
		}
		return false
	}

	quantified := inst.Kind().IsQuantifier()
	if quantified {
		depth[inst.Ident()]++
	}
	tc, ic := template.Children(), inst.Children()
	captured := false
	for i := range tc {
		if s.captured(tc[i], ic[i], depth, free) {
			captured = true
			break
		}
	}
	if quantified {
		depth[inst.Ident()]--
	}
	return captured
}
