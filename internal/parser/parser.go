// Package parser turns formula and term text into formula trees.
//
// Grammar, lowest precedence first:
//
//	Expr       := Disj ('->' Expr)?
//	Disj       := Conj ('|' Conj)*
//	Conj       := Unary ('&' Unary)*
//	Unary      := '!' Unary | '(' Expr ')' | Quantified | Predicate
//	Quantified := ('@'|'?') Variable Unary
//	Predicate  := UpperId ('(' Term (',' Term)* ')')? | Term '=' Term
//	Term       := Add
//	Add        := Mul ('+' Mul)*
//	Mul        := Inc ('*' Inc)*
//	Inc        := Primary ("'")*
//	Primary    := LowerId ('(' Term (',' Term)* ')')? | '(' Term ')' | '0'
//
// A '(' in formula position opens a term when the character after its
// matching ')' is one of = + * or '.
package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gnolang/hilbert/internal/formula"
)

// Parser is a single forward cursor over whitespace-free input.
type Parser struct {
	input string
	pos   int
}

// New returns a parser over text with all whitespace removed.
func New(text string) *Parser {
	return &Parser{input: StripSpace(text)}
}

// Parse parses a complete formula.
func Parse(text string) (formula.Formula, error) {
	p := New(text)
	f, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseTerm parses a complete term.
func ParseTerm(text string) (formula.Formula, error) {
	p := New(text)
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustParse is Parse for fixed, known-good text. It panics on error.
func MustParse(text string) formula.Formula {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return f
}

// StripSpace removes every whitespace character from s.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func (p *Parser) parseExpr() (formula.Formula, error) {
	left, err := p.parseDisj()
	if err != nil {
		return nil, err
	}
	if !p.peekArrow() {
		return left, nil
	}
	p.pos += 2
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return formula.Implies(left, right), nil
}

func (p *Parser) parseDisj() (formula.Formula, error) {
	left, err := p.parseConj()
	if err != nil {
		return nil, err
	}
	for p.peek() == '|' {
		p.pos++
		right, err := p.parseConj()
		if err != nil {
			return nil, err
		}
		left = formula.Or(left, right)
	}
	return left, nil
}

func (p *Parser) parseConj() (formula.Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek() == '&' {
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = formula.And(left, right)
	}
	return left, nil
}

func (p *Parser) parseUnary() (formula.Formula, error) {
	switch c := p.peek(); {
	case c == '!':
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return formula.Not(operand), nil

	case c == '(' && !p.opensTerm():
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return inner, nil

	case c == '@' || c == '?':
		return p.parseQuantified()

	default:
		return p.parsePredicate()
	}
}

func (p *Parser) parseQuantified() (formula.Formula, error) {
	kind := formula.KindForAll
	if p.peek() == '?' {
		kind = formula.KindExists
	}
	p.pos++

	if !isLower(p.peek()) {
		return nil, p.errorf("expected bound variable")
	}
	name := p.scanIdent()

	body, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return formula.NewQuantified(kind, name, body), nil
}

func (p *Parser) parsePredicate() (formula.Formula, error) {
	if isUpper(p.peek()) {
		name := p.scanIdent()
		if p.peek() != '(' {
			return formula.Predicate(name), nil
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return formula.Predicate(name, args...), nil
	}

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expect('='); err != nil {
		return nil, err
	}
	right, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return formula.Equals(left, right), nil
}

func (p *Parser) parseTerm() (formula.Formula, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.peek() == '+' {
		p.pos++
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = formula.Plus(left, right)
	}
	return left, nil
}

func (p *Parser) parseMul() (formula.Formula, error) {
	left, err := p.parseInc()
	if err != nil {
		return nil, err
	}
	for p.peek() == '*' {
		p.pos++
		right, err := p.parseInc()
		if err != nil {
			return nil, err
		}
		left = formula.Times(left, right)
	}
	return left, nil
}

func (p *Parser) parseInc() (formula.Formula, error) {
	t, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek() == '\'' {
		p.pos++
		t = formula.Successor(t)
	}
	return t, nil
}

func (p *Parser) parsePrimary() (formula.Formula, error) {
	switch c := p.peek(); {
	case isLower(c):
		name := p.scanIdent()
		if p.peek() != '(' {
			return formula.Var(name), nil
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return formula.Function(name, args...), nil

	case c == '(':
		p.pos++
		inner, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return inner, nil

	case c == '0':
		p.pos++
		return formula.Zero{}, nil

	case c == 0:
		return nil, p.errorf("unexpected end of input, expected term")

	default:
		return nil, p.errorf("unexpected character %q, expected term", c)
	}
}

// parseArgs parses '(' Term (',' Term)* ')'.
func (p *Parser) parseArgs() ([]formula.Formula, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	var args []formula.Formula
	for {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		if p.peek() != ',' {
			break
		}
		p.pos++
	}
	if p.peek() != ')' {
		return nil, p.errorf("unterminated argument list")
	}
	p.pos++
	return args, nil
}

// opensTerm looks past the parenthesis at the cursor and reports whether
// the group is followed by a term operator.
func (p *Parser) opensTerm() bool {
	depth := 0
	for i := p.pos; i < len(p.input); i++ {
		switch p.input[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if i+1 >= len(p.input) {
					return false
				}
				switch p.input[i+1] {
				case '=', '+', '*', '\'':
					return true
				}
				return false
			}
		}
	}
	return false
}

func (p *Parser) scanIdent() string {
	start := p.pos
	p.pos++
	for isDigit(p.peek()) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *Parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) peekArrow() bool {
	return strings.HasPrefix(p.input[p.pos:], "->")
}

func (p *Parser) expect(c byte) error {
	if p.peek() != c {
		if p.pos >= len(p.input) {
			return p.errorf("unexpected end of input, expected %q", c)
		}
		return p.errorf("unexpected character %q, expected %q", p.peek(), c)
	}
	p.pos++
	return nil
}

func (p *Parser) expectEnd() error {
	if p.pos < len(p.input) {
		if p.peek() == ')' {
			return p.errorf("unbalanced parenthesis")
		}
		return p.errorf("unexpected character %q", p.peek())
	}
	return nil
}

func (p *Parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Input: p.input, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }
