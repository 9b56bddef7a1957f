package checker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/hilbert/internal/parser"
)

func check(t *testing.T, opts Options, header string, lines ...string) *Result {
	t.Helper()
	p, err := NewProof(header, lines)
	require.NoError(t, err)
	return New(opts).Check(p)
}

func annotations(r *Result) []string {
	out := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		out[i] = l.Annotation()
	}
	return out
}

func TestCheckJustifications(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		header string
		lines  []string
		want   []string
	}{
		{
			name:   "modus ponens tie-break",
			header: "A,A->B|-B",
			lines:  []string{"A", "A->B", "B"},
			want:   []string{"Hypothesis 1", "Hypothesis 2", "ModusPonens 1,2"},
		},
		{
			name:   "self implication",
			header: "|-A->A",
			lines: []string{
				"A->(A->A)",
				"(A->(A->A))->(A->(A->A)->A)->(A->A)",
				"(A->(A->A)->A)->(A->A)",
				"A->(A->A)->A",
				"A->A",
			},
			want: []string{"Axiom 1", "Axiom 2", "ModusPonens 1,2", "Axiom 1", "ModusPonens 4,3"},
		},
		{
			name:   "antecedent after implication",
			header: "A->B,A|-B",
			lines:  []string{"A->B", "A", "B"},
			want:   []string{"Hypothesis 1", "Hypothesis 2", "ModusPonens 2,1"},
		},
		{
			name:   "earliest antecedent is reported",
			header: "A,A->B|-B",
			lines:  []string{"A", "A", "A->B", "B"},
			want:   []string{"Hypothesis 1", "Hypothesis 1", "Hypothesis 2", "ModusPonens 1,3"},
		},
		{
			name:   "arithmetic axiom",
			header: "|-a=b->a'=b'",
			lines:  []string{"a=b->a'=b'"},
			want:   []string{"ArithAxiom 1"},
		},
		{
			name:   "arithmetic axiom with compound terms",
			header: "|-x*0''=x*0'+x",
			lines:  []string{"x*0''=x*0'+x"},
			want:   []string{"ArithAxiom 8"},
		},
		{
			name:   "universal instantiation",
			header: "|-@xP(x)->P(0')",
			lines:  []string{"@xP(x)->P(0')"},
			want:   []string{"Axiom 11"},
		},
		{
			name:   "universal instantiation without occurrence",
			header: "|-@xP->P",
			lines:  []string{"@xP->P"},
			want:   []string{"Axiom 11"},
		},
		{
			name:   "existential generalization",
			header: "|-P(y)->?xP(x)",
			lines:  []string{"P(y)->?xP(x)"},
			want:   []string{"Axiom 12"},
		},
		{
			name:   "induction",
			header: "|-(0=0&@x(x=x->x'=x'))->x=x",
			lines:  []string{"(0=0&@x(x=x->x'=x'))->x=x"},
			want:   []string{"ArithAxiom 9"},
		},
		{
			name:   "induction over addition",
			header: "|-(0+0=0&@a(a+0=a->a'+0=a'))->a+0=a",
			lines:  []string{"(0+0=0&@a(a+0=a->a'+0=a'))->a+0=a"},
			want:   []string{"ArithAxiom 9"},
		},
		{
			name:   "induction shape as hypothesis",
			header: "(P&@x(Q->R))->S|-(P&@x(Q->R))->S",
			lines:  []string{"(P&@x(Q->R))->S"},
			want:   []string{"Hypothesis 1"},
		},
		{
			name:   "universal rule",
			header: "P->Q(x)|-P->@xQ(x)",
			lines:  []string{"P->Q(x)", "P->@xQ(x)"},
			want:   []string{"Hypothesis 1", "UniversalRule 1"},
		},
		{
			name:   "existential rule",
			header: "Q(x)->P|-?xQ(x)->P",
			lines:  []string{"Q(x)->P", "?xQ(x)->P"},
			want:   []string{"Hypothesis 1", "ExistentialRule 1"},
		},
		{
			name:   "duplicate hypothesis keeps first position",
			header: "A,A|-A",
			lines:  []string{"A"},
			want:   []string{"Hypothesis 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := check(t, Options{}, tt.header, tt.lines...)
			assert.True(t, res.OK(), "unexpected errors: %v", res.Errors)
			assert.Equal(t, tt.want, annotations(res))
		})
	}
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		opts   Options
		header string
		lines  []string
		kinds  []ErrorKind
		lineNo []int
	}{
		{
			name:   "unproved",
			header: "|-B",
			lines:  []string{"B"},
			kinds:  []ErrorKind{KindUnproved},
			lineNo: []int{1},
		},
		{
			name:   "wrong goal",
			header: "|-A->(A->A)",
			lines:  []string{"B->(B->B)"},
			kinds:  []ErrorKind{KindWrongGoal},
			lineNo: []int{0},
		},
		{
			name:   "empty proof",
			header: "|-A->(A->A)",
			kinds:  []ErrorKind{KindWrongGoal},
			lineNo: []int{0},
		},
		{
			name:   "syntax error does not stop the pass",
			header: "|-A->(A->A)",
			lines:  []string{"A&", "A->(A->A)"},
			kinds:  []ErrorKind{KindSyntax},
			lineNo: []int{1},
		},
		{
			name:   "syntax error on last line",
			header: "|-A->(A->A)",
			lines:  []string{"A->(A->A)", "(A"},
			kinds:  []ErrorKind{KindSyntax, KindWrongGoal},
			lineNo: []int{2, 0},
		},
		{
			name:   "induction variable not free in conclusion",
			header: "|-(P&@x(Q->R))->S",
			lines:  []string{"(P&@x(Q->R))->S"},
			kinds:  []ErrorKind{KindFreeVariable},
			lineNo: []int{1},
		},
		{
			name:   "induction variable bound in conclusion",
			header: "|-(0=0&@x(@xx=x->@xx=x))->@xx=x",
			lines:  []string{"(0=0&@x(@xx=x->@xx=x))->@xx=x"},
			kinds:  []ErrorKind{KindFreeVariable},
			lineNo: []int{1},
		},
		{
			name:   "capture in universal instantiation",
			header: "|-@x?y(x=y)->?y(y=y)",
			lines:  []string{"@x?y(x=y)->?y(y=y)"},
			kinds:  []ErrorKind{KindCapture},
			lineNo: []int{1},
		},
		{
			name:   "capture in existential generalization",
			header: "|-@y(y=y)->?x@y(x=y)",
			lines:  []string{"@y(y=y)->?x@y(x=y)"},
			kinds:  []ErrorKind{KindCapture},
			lineNo: []int{1},
		},
		{
			name:   "universal rule over free variable",
			header: "R(x)->Q(x)|-R(x)->@xQ(x)",
			lines:  []string{"R(x)->Q(x)", "R(x)->@xQ(x)"},
			kinds:  []ErrorKind{KindFreeVariable},
			lineNo: []int{2},
		},
		{
			name:   "existential rule over free variable",
			header: "Q(x)->R(x)|-?xQ(x)->R(x)",
			lines:  []string{"Q(x)->R(x)", "?xQ(x)->R(x)"},
			kinds:  []ErrorKind{KindFreeVariable},
			lineNo: []int{2},
		},
		{
			name:   "quantifier rule without premise",
			header: "|-P->@xQ(x)",
			lines:  []string{"P->@xQ(x)"},
			kinds:  []ErrorKind{KindUnproved},
			lineNo: []int{1},
		},
		{
			name:   "forward reference",
			header: "A->B|-B",
			lines:  []string{"B", "A->B"},
			kinds:  []ErrorKind{KindUnproved, KindWrongGoal},
			lineNo: []int{1, 0},
		},
		{
			name:   "banned variable",
			opts:   Options{DischargeSafety: true},
			header: "R->Q(x),P(x)|-R->@xQ(x)",
			lines:  []string{"R->Q(x)", "R->@xQ(x)"},
			kinds:  []ErrorKind{KindFreeVariable},
			lineNo: []int{2},
		},
		{
			name:   "banned vacuous quantifier",
			opts:   Options{DischargeSafety: true},
			header: "R->Q,P(x)|-R->@xQ",
			lines:  []string{"R->Q", "R->@xQ"},
			kinds:  []ErrorKind{KindFreeVariable},
			lineNo: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := check(t, tt.opts, tt.header, tt.lines...)
			require.Len(t, res.Errors, len(tt.kinds), "errors: %v", res.Errors)
			for i, e := range res.Errors {
				assert.Equal(t, tt.kinds[i], e.Kind, "error %d: %v", i, e)
				assert.Equal(t, tt.lineNo[i], e.Line, "error %d: %v", i, e)
			}
			assert.Len(t, res.Lines, len(tt.lines))
		})
	}
}

func TestDischargeSafetyIsOptIn(t *testing.T) {
	t.Parallel()
	header := "R->Q(x),P(x)|-R->@xQ(x)"
	lines := []string{"R->Q(x)", "R->@xQ(x)"}

	res := check(t, Options{}, header, lines...)
	assert.True(t, res.OK())
	assert.Equal(t, "UniversalRule 1", res.Lines[1].Annotation())

	res = check(t, Options{DischargeSafety: true}, header, lines...)
	require.Len(t, res.Errors, 1)
	assert.Equal(t,
		"(2) quantifier rule used over variable x, which occurs free in hypothesis P(x)",
		res.Errors[0].Error())
}

func TestBannedCheckSkipsJustifiedLines(t *testing.T) {
	t.Parallel()
	res := check(t, Options{DischargeSafety: true}, "P(x)|-@xP(x)->P(x)", "@xP(x)->P(x)")
	assert.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Equal(t, "Axiom 11", res.Lines[0].Annotation())
}

func TestMessages(t *testing.T) {
	t.Parallel()

	res := check(t, Options{}, "|-B", "B")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "(1) not proved", res.Errors[0].Error())
	assert.Equal(t, MsgUnproved, res.Lines[0].Annotation())

	res = check(t, Options{}, "R(x)->Q(x)|-R(x)->@xQ(x)", "R(x)->Q(x)", "R(x)->@xQ(x)")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "(2) variable x occurs free in formula R(x)", res.Errors[0].Error())

	res = check(t, Options{}, "|-@x?y(x=y)->?y(y=y)", "@x?y(x=y)->?y(y=y)")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, KindCapture, res.Errors[0].Kind)

	res = check(t, Options{}, "|-A")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, MsgWrongGoal, res.Errors[0].Error())

	res = check(t, Options{}, "|-A", "A&")
	var syntaxErr *parser.SyntaxError
	require.NotEmpty(t, res.Errors)
	assert.True(t, errors.As(res.Errors[0], &syntaxErr))
}

func TestNewProofHeader(t *testing.T) {
	t.Parallel()

	_, err := NewProof("A->A", nil)
	assert.ErrorIs(t, err, parser.ErrNoTurnstile)

	_, err = NewProof("A&|-A", nil)
	var syntaxErr *parser.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)

	p, err := NewProof(" P(x, y) , Q |- R ", []string{" R "})
	require.NoError(t, err)
	assert.Equal(t, []string{"P(x,y)", "Q"}, p.HypothesisText)
	assert.Equal(t, "P(x,y),Q|-R", p.Header)
	assert.Equal(t, []string{"R"}, p.Source)
}

func TestIndex(t *testing.T) {
	t.Parallel()
	p, err := NewProof("|-B", []string{"A->B", "C", "A->B", "C->B", "(", "A"})
	require.NoError(t, err)

	idx := NewIndex(p)
	i, ok := idx.First("(A->B)")
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = idx.First("B")
	assert.False(t, ok)

	assert.Equal(t, []int{0, 2, 3}, idx.Consequents("B"))
	assert.Empty(t, idx.Consequents("A"))
}

func TestErrorList(t *testing.T) {
	t.Parallel()
	var list ErrorList
	assert.Equal(t, "no errors", list.Error())
	assert.NoError(t, list.Err())

	list = append(list, &LineError{Line: 3, Kind: KindUnproved, Msg: MsgUnproved})
	assert.Equal(t, "(3) not proved", list.Error())

	list = append(list, &LineError{Kind: KindWrongGoal, Msg: MsgWrongGoal})
	assert.Equal(t, "(3) not proved (and 1 more)", list.Error())

	got, ok := AsErrorList(list.Err())
	require.True(t, ok)
	assert.Len(t, got, 2)
}

func TestJustificationString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		j    Justification
		want string
	}{
		{Justification{Rule: RuleAxiom, Number: 4}, "Axiom 4"},
		{Justification{Rule: RuleArithAxiom, Number: 9}, "ArithAxiom 9"},
		{Justification{Rule: RuleHypothesis, Number: 2}, "Hypothesis 2"},
		{Justification{Rule: RuleModusPonens, From: 0, Via: 4}, "ModusPonens 1,5"},
		{Justification{Rule: RuleUniversal, From: 6}, "UniversalRule 7"},
		{Justification{Rule: RuleExistential, From: 1}, "ExistentialRule 2"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.j.String())
		})
	}
}
