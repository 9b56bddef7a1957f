package parser

import (
	"errors"
	"strings"

	"github.com/gnolang/hilbert/internal/formula"
)

// Turnstile separates hypotheses from the goal in a sequent.
const Turnstile = "|-"

// ErrNoTurnstile is returned for a header line without "|-".
var ErrNoTurnstile = errors.New("sequent has no \"|-\"")

// Sequent is a parsed claim H1,...,Hn |- Goal.
type Sequent struct {
	Hypotheses     []formula.Formula
	HypothesisText []string
	Goal           formula.Formula
	GoalText       string
}

// SplitSequent splits a sequent into hypothesis texts and goal text.
// Commas nested inside parentheses belong to argument lists and do not
// separate hypotheses.
func SplitSequent(text string) (hypotheses []string, goal string, err error) {
	text = StripSpace(text)

	var parts []string
	depth, last, seen := 0, 0, false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 && !seen {
				parts = append(parts, text[last:i])
				last = i + 1
			}
		case '|':
			if depth == 0 && !seen && strings.HasPrefix(text[i:], Turnstile) {
				parts = append(parts, text[last:i])
				last = i + len(Turnstile)
				seen = true
				i++
			}
		}
	}
	if !seen {
		return nil, "", ErrNoTurnstile
	}

	goal = text[last:]
	if len(parts) == 1 && parts[0] == "" {
		return nil, goal, nil
	}
	return parts, goal, nil
}

// ParseSequent splits and parses a sequent header.
func ParseSequent(text string) (*Sequent, error) {
	hyps, goal, err := SplitSequent(text)
	if err != nil {
		return nil, err
	}

	s := &Sequent{HypothesisText: hyps, GoalText: goal}
	for _, h := range hyps {
		f, err := Parse(h)
		if err != nil {
			return nil, err
		}
		s.Hypotheses = append(s.Hypotheses, f)
	}
	if s.Goal, err = Parse(goal); err != nil {
		return nil, err
	}
	return s, nil
}

// FormatSequent renders hypotheses and goal back into header form.
func FormatSequent(hypotheses []string, goal string) string {
	return strings.Join(hypotheses, ",") + Turnstile + goal
}
