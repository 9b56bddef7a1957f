// Package checker classifies every line of a Hilbert-style proof.
//
// Lines are examined strictly in order and may only refer to earlier lines.
// A line is, in this order of preference, an axiom instance, a Modus Ponens
// consequence, an instance of axiom 11, 12 or A9, a hypothesis, or the
// conclusion of a quantifier rule. Errors never stop the pass.
package checker

import (
	"maps"
	"slices"

	"github.com/gnolang/hilbert/internal/axiom"
	"github.com/gnolang/hilbert/internal/formula"
	"github.com/gnolang/hilbert/internal/subst"
)

// Options tunes a Checker.
type Options struct {
	// DischargeSafety rejects quantifier rules over a variable that is
	// free in the last hypothesis. It must be on when the proof is going
	// to be rewritten by the deduction theorem.
	DischargeSafety bool
}

type Checker struct {
	opts Options
}

func New(opts Options) *Checker {
	return &Checker{opts: opts}
}

// Check classifies every line of p and verifies that the last line is the
// goal of the sequent.
func (c *Checker) Check(p *Proof) *Result {
	run := &run{
		proof: p,
		index: NewIndex(p),
	}
	if c.opts.DischargeSafety && len(p.Hypotheses) > 0 {
		last := len(p.Hypotheses) - 1
		run.banned = formula.FreeVariables(p.Hypotheses[last])
		run.bannedBy = p.HypothesisText[last]
	}

	res := &Result{Proof: p, Lines: make([]Line, len(p.Lines))}
	for k := range p.Lines {
		line := Line{Index: k, Source: p.Source[k], Formula: p.Lines[k]}
		if err := p.syntaxErrors[k]; err != nil {
			line.Err = newLineError(k, KindSyntax, err)
		} else {
			line.Justification, line.Err = run.classify(k)
		}
		if line.Err != nil {
			res.Errors = append(res.Errors, line.Err)
		}
		res.Lines[k] = line
	}

	if last := p.Last(); last == nil || !formula.Equal(last, p.Goal) {
		res.Errors = append(res.Errors, &LineError{Kind: KindWrongGoal, Msg: MsgWrongGoal})
	}
	return res
}

type run struct {
	proof    *Proof
	index    *Index
	banned   map[string]bool
	bannedBy string
}

func (r *run) classify(k int) (*Justification, *LineError) {
	f := r.proof.Lines[k]

	if s, ok := axiom.Find(f); ok {
		rule := RuleAxiom
		if s.Family == axiom.Arithmetic {
			rule = RuleArithAxiom
		}
		return &Justification{Rule: rule, Number: s.Number}, nil
	}

	if j, ok := r.modusPonens(k); ok {
		return j, nil
	}

	if j, err := r.quantifierAxiom(k); j != nil || err != nil {
		return j, err
	}

	// An induction shape over a variable not free in its conclusion is
	// reported only when no later rule justifies the line.
	j, inductionErr := r.induction(k)
	if j != nil {
		return j, nil
	}

	if n, ok := r.index.Hypothesis(f.String()); ok {
		return &Justification{Rule: RuleHypothesis, Number: n + 1}, nil
	}

	if err := r.checkBanned(k); err != nil {
		return nil, err
	}

	if j, err := r.universalRule(k); j != nil || err != nil {
		return j, err
	}
	if j, err := r.existentialRule(k); j != nil || err != nil {
		return j, err
	}

	if inductionErr != nil {
		return nil, inductionErr
	}
	return nil, lineErrorf(k, KindUnproved, MsgUnproved)
}

// modusPonens looks for j < k with line j = (A->C) and i < k with line
// i = A, where C is line k. The first such j in line order wins, paired
// with the earliest occurrence of A.
func (r *run) modusPonens(k int) (*Justification, bool) {
	for _, j := range r.index.Consequents(r.proof.Lines[k].String()) {
		if j >= k {
			break
		}
		impl := r.proof.Lines[j].(*formula.Binary)
		if i, ok := r.index.First(impl.Left().String()); ok && i < k {
			return &Justification{Rule: RuleModusPonens, From: i, Via: j}, true
		}
	}
	return nil, false
}

// quantifierAxiom recognises (@xA)->A[x:=t] and A[x:=t]->(?xA).
func (r *run) quantifierAxiom(k int) (*Justification, *LineError) {
	impl, ok := implication(r.proof.Lines[k])
	if !ok {
		return nil, nil
	}

	var capture error
	if q, ok := impl.Left().(*formula.Quantified); ok && q.Kind() == formula.KindForAll {
		ok, err := subst.Check(q.Body(), impl.Right(), q.Ident())
		if ok {
			return &Justification{Rule: RuleAxiom, Number: axiom.UniversalInstantiation}, nil
		}
		capture = err
	}
	if q, ok := impl.Right().(*formula.Quantified); ok && q.Kind() == formula.KindExists {
		ok, err := subst.Check(q.Body(), impl.Left(), q.Ident())
		if ok {
			return &Justification{Rule: RuleAxiom, Number: axiom.ExistentialGeneralization}, nil
		}
		if capture == nil {
			capture = err
		}
	}
	if capture != nil {
		return nil, newLineError(k, KindCapture, capture)
	}
	return nil, nil
}

// induction recognises (C[x:=0] & @x(C->C[x:=x'])) -> C. Replacement is
// done on identifier tokens of the canonical string.
func (r *run) induction(k int) (*Justification, *LineError) {
	impl, ok := implication(r.proof.Lines[k])
	if !ok {
		return nil, nil
	}
	conj, ok := impl.Left().(*formula.Binary)
	if !ok || conj.Kind() != formula.KindAnd {
		return nil, nil
	}
	q, ok := conj.Right().(*formula.Quantified)
	if !ok || q.Kind() != formula.KindForAll {
		return nil, nil
	}
	step, ok := implication(q.Body())
	if !ok {
		return nil, nil
	}

	x := q.Ident()
	conclusion := impl.Right().String()
	if !formula.IsFree(impl.Right(), x) {
		return nil, lineErrorf(k, KindFreeVariable,
			"variable %s does not occur free in formula %s", x, conclusion)
	}
	if conj.Left().String() != formula.ReplaceIdent(conclusion, x, "0") ||
		step.Left().String() != conclusion ||
		step.Right().String() != formula.ReplaceIdent(conclusion, x, x+"'") {
		return nil, nil
	}
	return &Justification{Rule: RuleArithAxiom, Number: axiom.Induction}, nil
}

// checkBanned rejects a line quantifying over a variable that is free in
// the hypothesis about to be discharged.
func (r *run) checkBanned(k int) *LineError {
	if len(r.banned) == 0 {
		return nil
	}
	f := r.proof.Lines[k]

	vars := formula.BoundVariables(f)
	if impl, ok := implication(f); ok {
		for _, side := range []formula.Formula{impl.Left(), impl.Right()} {
			if side.Kind().IsQuantifier() {
				vars[side.Ident()] = true
			}
		}
	}
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		if r.banned[name] {
			return lineErrorf(k, KindFreeVariable,
				"quantifier rule used over variable %s, which occurs free in hypothesis %s", name, r.bannedBy)
		}
	}
	return nil
}

// universalRule derives A->(@xB) from an earlier A->B when x is not free
// in A.
func (r *run) universalRule(k int) (*Justification, *LineError) {
	impl, ok := implication(r.proof.Lines[k])
	if !ok {
		return nil, nil
	}
	q, ok := impl.Right().(*formula.Quantified)
	if !ok || q.Kind() != formula.KindForAll {
		return nil, nil
	}
	premise, ok := r.earlier(formula.Implies(impl.Left(), q.Body()), k)
	if !ok {
		return nil, nil
	}
	if formula.IsFree(impl.Left(), q.Ident()) {
		return nil, lineErrorf(k, KindFreeVariable,
			"variable %s occurs free in formula %s", q.Ident(), impl.Left())
	}
	return &Justification{Rule: RuleUniversal, From: premise}, nil
}

// existentialRule derives (?xA)->B from an earlier A->B when x is not free
// in B.
func (r *run) existentialRule(k int) (*Justification, *LineError) {
	impl, ok := implication(r.proof.Lines[k])
	if !ok {
		return nil, nil
	}
	q, ok := impl.Left().(*formula.Quantified)
	if !ok || q.Kind() != formula.KindExists {
		return nil, nil
	}
	premise, ok := r.earlier(formula.Implies(q.Body(), impl.Right()), k)
	if !ok {
		return nil, nil
	}
	if formula.IsFree(impl.Right(), q.Ident()) {
		return nil, lineErrorf(k, KindFreeVariable,
			"variable %s occurs free in formula %s", q.Ident(), impl.Right())
	}
	return &Justification{Rule: RuleExistential, From: premise}, nil
}

func (r *run) earlier(f formula.Formula, k int) (int, bool) {
	i, ok := r.index.First(f.String())
	if !ok || i >= k {
		return 0, false
	}
	return i, true
}

func implication(f formula.Formula) (*formula.Binary, bool) {
	b, ok := f.(*formula.Binary)
	if !ok || b.Kind() != formula.KindImplication {
		return nil, false
	}
	return b, true
}
