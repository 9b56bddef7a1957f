// Package formula defines the expression tree shared by the parser, the
// axiom matcher and the proof checker.
//
// A Formula is an immutable tree. Every node computes its canonical string
// once, at construction, from the canonical strings of its children. Two
// formulas are considered equal iff their canonical strings are equal; no
// other equality test is used anywhere in the module.
//
// Canonical layout:
//   - binary connectives and arithmetic: (l->r) (l|r) (l&r) (l=r) (l+r) (l*r)
//   - negation: (!a)
//   - quantifiers: (@xA) (?xA)
//   - predicates: P, P(t1,t2)
//   - functions: f(t1,t2)
//   - successor: t'
//   - variables and zero: x, 0
//
// The canonical form re-parses to itself.
package formula
