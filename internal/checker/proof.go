package checker

import (
	"github.com/gnolang/hilbert/internal/formula"
	"github.com/gnolang/hilbert/internal/parser"
)

// Proof is a sequent with its numbered lines.
type Proof struct {
	Header         string
	Hypotheses     []formula.Formula
	HypothesisText []string
	Goal           formula.Formula
	GoalText       string

	// Lines[i] is nil when Source[i] failed to parse; the cause is kept in
	// syntaxErrors[i].
	Lines        []formula.Formula
	Source       []string
	syntaxErrors []error
}

// NewProof parses a sequent header and its proof lines. A malformed header
// is an error; a malformed line is recorded and reported by the check.
func NewProof(header string, lines []string) (*Proof, error) {
	seq, err := parser.ParseSequent(header)
	if err != nil {
		return nil, err
	}

	p := &Proof{
		Header:         parser.StripSpace(header),
		Hypotheses:     seq.Hypotheses,
		HypothesisText: seq.HypothesisText,
		Goal:           seq.Goal,
		GoalText:       seq.GoalText,
		Lines:          make([]formula.Formula, len(lines)),
		Source:         make([]string, len(lines)),
		syntaxErrors:   make([]error, len(lines)),
	}
	for i, src := range lines {
		p.Source[i] = parser.StripSpace(src)
		f, err := parser.Parse(src)
		if err != nil {
			p.syntaxErrors[i] = err
			continue
		}
		p.Lines[i] = f
	}
	return p, nil
}

// Last returns the final line's formula, or nil for an empty proof or an
// unparsable final line.
func (p *Proof) Last() formula.Formula {
	if len(p.Lines) == 0 {
		return nil
	}
	return p.Lines[len(p.Lines)-1]
}

// Index holds the lookups derived from a proof. It is built once and not
// modified afterwards.
type Index struct {
	first       map[string]int
	consequents map[string][]int
	hypotheses  map[string]int
}

// NewIndex builds the lookups for p.
func NewIndex(p *Proof) *Index {
	idx := &Index{
		first:       make(map[string]int, len(p.Lines)),
		consequents: make(map[string][]int),
		hypotheses:  make(map[string]int, len(p.Hypotheses)),
	}
	for i, f := range p.Lines {
		if f == nil {
			continue
		}
		key := f.String()
		if _, ok := idx.first[key]; !ok {
			idx.first[key] = i
		}
		if impl, ok := f.(*formula.Binary); ok && impl.Kind() == formula.KindImplication {
			right := impl.Right().String()
			idx.consequents[right] = append(idx.consequents[right], i)
		}
	}
	for i, h := range p.Hypotheses {
		if _, ok := idx.hypotheses[h.String()]; !ok {
			idx.hypotheses[h.String()] = i
		}
	}
	return idx
}

// First returns the earliest line index whose canonical string is key.
func (idx *Index) First(key string) (int, bool) {
	i, ok := idx.first[key]
	return i, ok
}

// Consequents returns, in ascending order, the implication lines whose
// right-hand side has canonical string key.
func (idx *Index) Consequents(key string) []int {
	return idx.consequents[key]
}

// Hypothesis returns the 0-based position of the hypothesis key.
func (idx *Index) Hypothesis(key string) (int, bool) {
	i, ok := idx.hypotheses[key]
	return i, ok
}
