package formula

import "strings"

// Kind tags the variant of a Formula node.
type Kind int

const (
	_ Kind = iota
	KindImplication
	KindOr
	KindAnd
	KindNot
	KindForAll
	KindExists
	KindEquals
	KindPlus
	KindTimes
	KindSuccessor
	KindPredicate
	KindFunction
	KindVariable
	KindZero
)

func (k Kind) String() string {
	switch k {
	case KindImplication:
		return "Implication"
	case KindOr:
		return "Or"
	case KindAnd:
		return "And"
	case KindNot:
		return "Not"
	case KindForAll:
		return "ForAll"
	case KindExists:
		return "Exists"
	case KindEquals:
		return "Equals"
	case KindPlus:
		return "Plus"
	case KindTimes:
		return "Times"
	case KindSuccessor:
		return "Successor"
	case KindPredicate:
		return "Predicate"
	case KindFunction:
		return "Function"
	case KindVariable:
		return "Variable"
	case KindZero:
		return "Zero"
	default:
		return "?"
	}
}

// Symbol returns the operator text used in canonical strings.
func (k Kind) Symbol() string {
	switch k {
	case KindImplication:
		return "->"
	case KindOr:
		return "|"
	case KindAnd:
		return "&"
	case KindNot:
		return "!"
	case KindForAll:
		return "@"
	case KindExists:
		return "?"
	case KindEquals:
		return "="
	case KindPlus:
		return "+"
	case KindTimes:
		return "*"
	case KindSuccessor:
		return "'"
	default:
		return ""
	}
}

// IsQuantifier reports whether k binds a variable.
func (k Kind) IsQuantifier() bool {
	return k == KindForAll || k == KindExists
}

// Formula is a node of the expression tree.
type Formula interface {
	Kind() Kind
	// String returns the canonical string.
	String() string
	// Ident returns the bound variable, predicate, function or variable
	// name. It is empty for nodes that carry no name.
	Ident() string
	// Children returns the child nodes in canonical order.
	Children() []Formula
}

var (
	_ Formula = (*Binary)(nil)
	_ Formula = (*Unary)(nil)
	_ Formula = (*Quantified)(nil)
	_ Formula = (*Application)(nil)
	_ Formula = (*Variable)(nil)
	_ Formula = (*Zero)(nil)
)

// Binary is an implication, disjunction, conjunction, equality, sum or product.
type Binary struct {
	kind  Kind
	left  Formula
	right Formula
	str   string
}

// NewBinary builds a binary node. kind must be one of the binary kinds.
func NewBinary(kind Kind, left, right Formula) *Binary {
	return &Binary{
		kind:  kind,
		left:  left,
		right: right,
		str:   "(" + left.String() + kind.Symbol() + right.String() + ")",
	}
}

func Implies(left, right Formula) *Binary { return NewBinary(KindImplication, left, right) }
func Or(left, right Formula) *Binary      { return NewBinary(KindOr, left, right) }
func And(left, right Formula) *Binary     { return NewBinary(KindAnd, left, right) }
func Equals(left, right Formula) *Binary  { return NewBinary(KindEquals, left, right) }
func Plus(left, right Formula) *Binary    { return NewBinary(KindPlus, left, right) }
func Times(left, right Formula) *Binary   { return NewBinary(KindTimes, left, right) }

func (b *Binary) Kind() Kind          { return b.kind }
func (b *Binary) String() string      { return b.str }
func (b *Binary) Ident() string       { return "" }
func (b *Binary) Children() []Formula { return []Formula{b.left, b.right} }
func (b *Binary) Left() Formula       { return b.left }
func (b *Binary) Right() Formula      { return b.right }

// Unary is a negation or a successor.
type Unary struct {
	kind    Kind
	operand Formula
	str     string
}

// Not builds a negation.
func Not(operand Formula) *Unary {
	return &Unary{kind: KindNot, operand: operand, str: "(!" + operand.String() + ")"}
}

// Successor builds t'.
func Successor(operand Formula) *Unary {
	return &Unary{kind: KindSuccessor, operand: operand, str: operand.String() + "'"}
}

func (u *Unary) Kind() Kind          { return u.kind }
func (u *Unary) String() string      { return u.str }
func (u *Unary) Ident() string       { return "" }
func (u *Unary) Children() []Formula { return []Formula{u.operand} }
func (u *Unary) Operand() Formula    { return u.operand }

// Quantified is a universal or existential formula.
type Quantified struct {
	kind Kind
	name string
	body Formula
	str  string
}

// NewQuantified builds @x.body or ?x.body depending on kind.
func NewQuantified(kind Kind, name string, body Formula) *Quantified {
	return &Quantified{
		kind: kind,
		name: name,
		body: body,
		str:  "(" + kind.Symbol() + name + body.String() + ")",
	}
}

func ForAll(name string, body Formula) *Quantified { return NewQuantified(KindForAll, name, body) }
func Exists(name string, body Formula) *Quantified { return NewQuantified(KindExists, name, body) }

func (q *Quantified) Kind() Kind          { return q.kind }
func (q *Quantified) String() string      { return q.str }
func (q *Quantified) Ident() string       { return q.name }
func (q *Quantified) Children() []Formula { return []Formula{q.body} }
func (q *Quantified) Body() Formula       { return q.body }

// Application is a predicate (possibly nullary, i.e. a propositional
// variable) or a function term applied to arguments.
type Application struct {
	kind Kind
	name string
	args []Formula
	str  string
}

// Predicate builds P or P(t1,...,tn).
func Predicate(name string, args ...Formula) *Application {
	return newApplication(KindPredicate, name, args)
}

// Function builds f(t1,...,tn). At least one argument is expected.
func Function(name string, args ...Formula) *Application {
	return newApplication(KindFunction, name, args)
}

func newApplication(kind Kind, name string, args []Formula) *Application {
	str := name
	if len(args) > 0 {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = arg.String()
		}
		str += "(" + strings.Join(parts, ",") + ")"
	}
	return &Application{kind: kind, name: name, args: args, str: str}
}

func (a *Application) Kind() Kind          { return a.kind }
func (a *Application) String() string      { return a.str }
func (a *Application) Ident() string       { return a.name }
func (a *Application) Children() []Formula { return a.args }

// Args returns the argument terms.
func (a *Application) Args() []Formula { return a.args }

// IsPropositional reports whether a is a predicate without arguments.
func (a *Application) IsPropositional() bool {
	return a.kind == KindPredicate && len(a.args) == 0
}

// Variable is a term variable.
type Variable struct {
	name string
}

func Var(name string) *Variable { return &Variable{name: name} }

func (v *Variable) Kind() Kind          { return KindVariable }
func (v *Variable) String() string      { return v.name }
func (v *Variable) Ident() string       { return v.name }
func (v *Variable) Children() []Formula { return nil }

// Zero is the constant 0.
type Zero struct{}

func (Zero) Kind() Kind          { return KindZero }
func (Zero) String() string      { return "0" }
func (Zero) Ident() string       { return "" }
func (Zero) Children() []Formula { return nil }

// Equal compares two formulas by canonical string.
func Equal(a, b Formula) bool {
	return a.String() == b.String()
}
