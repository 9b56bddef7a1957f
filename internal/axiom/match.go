package axiom

import "github.com/gnolang/hilbert/internal/formula"

// Bindings maps a schema metavariable to the canonical string it denotes.
type Bindings map[string]string

func NewBindings() Bindings {
	return make(Bindings)
}

// Matches reports whether candidate is an instance of schema. Bindings
// established along the way are recorded in b; the first occurrence of a
// metavariable binds it and later occurrences must agree.
func Matches(candidate, schema formula.Formula, b Bindings) bool {
	if isMetavariable(schema) {
		name := schema.Ident()
		if bound, ok := b[name]; ok {
			return bound == candidate.String()
		}
		b[name] = candidate.String()
		return true
	}

	if candidate.Kind() != schema.Kind() || candidate.Ident() != schema.Ident() {
		return false
	}

	cs, ss := candidate.Children(), schema.Children()
	if len(cs) != len(ss) {
		return false
	}
	for i := range ss {
		if !Matches(cs[i], ss[i], b) {
			return false
		}
	}
	return true
}

func isMetavariable(f formula.Formula) bool {
	switch n := f.(type) {
	case *formula.Variable:
		return true
	case *formula.Application:
		return n.IsPropositional()
	default:
		return false
	}
}
