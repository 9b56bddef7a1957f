package formula

// VariableSets holds the free and bound term variables of a formula.
// A name may be in both sets when it occurs both inside and outside the
// scope of a quantifier over it.
type VariableSets struct {
	Free  map[string]bool
	Bound map[string]bool
}

// Variables walks f once and collects its free and bound variables.
func Variables(f Formula) VariableSets {
	sets := VariableSets{
		Free:  make(map[string]bool),
		Bound: make(map[string]bool),
	}
	collectVariables(f, make(map[string]int), sets)
	return sets
}

// FreeVariables returns the names of variables with at least one free
// occurrence in f.
func FreeVariables(f Formula) map[string]bool {
	return Variables(f).Free
}

// BoundVariables returns the names of variables with at least one
// occurrence under a quantifier over the same name.
func BoundVariables(f Formula) map[string]bool {
	return Variables(f).Bound
}

// IsFree reports whether name occurs free in f.
func IsFree(f Formula, name string) bool {
	return FreeVariables(f)[name]
}

// depth counts, per name, how many enclosing quantifiers bind it.
func collectVariables(f Formula, depth map[string]int, sets VariableSets) {
	if f.Kind() == KindVariable {
		if depth[f.Ident()] == 0 {
			sets.Free[f.Ident()] = true
		} else {
			sets.Bound[f.Ident()] = true
		}
		return
	}

	quantified := f.Kind().IsQuantifier()
	if quantified {
		depth[f.Ident()]++
	}
	for _, child := range f.Children() {
		collectVariables(child, depth, sets)
	}
	if quantified {
		depth[f.Ident()]--
	}
}
