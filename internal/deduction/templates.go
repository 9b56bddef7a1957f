package deduction

import (
	"strings"
)

// Placeholders recognised in fragment templates.
const (
	PlaceholderHypothesis = "{H}"
	PlaceholderA          = "{A}"
	PlaceholderB          = "{B}"
	PlaceholderVariable   = "{x}"
)

// Templates are the proof fragments emitted for each kind of line. Each
// template holds one formula per line. {H} is the discharged hypothesis;
// the meaning of {A}, {B} and {x} depends on the fragment:
//
//	Self         the line is {H} itself
//	Axiom        the line {A} is an axiom or a remaining hypothesis
//	ModusPonens  {A} is the antecedent line, {B} the current line
//	Any          the current line is {A}->@{x}{B}
//	Exists       the current line is ?{x}{A}->{B}
//
// Every fragment must end with {H}->L, where L is the current line.
type Templates struct {
	Self        string `yaml:"self,omitempty"`
	Axiom       string `yaml:"axiom,omitempty"`
	ModusPonens string `yaml:"modus_ponens,omitempty"`
	Any         string `yaml:"any,omitempty"`
	Exists      string `yaml:"exists,omitempty"`
}

// DefaultTemplates returns the built-in fragments.
func DefaultTemplates() Templates {
	return Templates{
		Self:        defaultSelf,
		Axiom:       defaultAxiom,
		ModusPonens: defaultModusPonens,
		Any:         defaultAny,
		Exists:      defaultExists,
	}
}

// WithDefaults fills every empty template from DefaultTemplates.
func (t Templates) WithDefaults() Templates {
	d := DefaultTemplates()
	if t.Self == "" {
		t.Self = d.Self
	}
	if t.Axiom == "" {
		t.Axiom = d.Axiom
	}
	if t.ModusPonens == "" {
		t.ModusPonens = d.ModusPonens
	}
	if t.Any == "" {
		t.Any = d.Any
	}
	if t.Exists == "" {
		t.Exists = d.Exists
	}
	return t
}

var defaultSelf = strings.Join([]string{
	"{H}->({H}->{H})",
	"({H}->({H}->{H}))->(({H}->(({H}->{H})->{H}))->({H}->{H}))",
	"({H}->(({H}->{H})->{H}))->({H}->{H})",
	"{H}->(({H}->{H})->{H})",
	"{H}->{H}",
}, "\n")

var defaultAxiom = strings.Join([]string{
	"{A}",
	"{A}->({H}->{A})",
	"{H}->{A}",
}, "\n")

var defaultModusPonens = strings.Join([]string{
	"({H}->{A})->(({H}->({A}->{B}))->({H}->{B}))",
	"({H}->({A}->{B}))->({H}->{B})",
	"{H}->{B}",
}, "\n")

// From {H}->({A}->{B}) and {x} not free in {H} or {A}, derive
// {H}->({A}->@{x}{B}) by going through ({H}&{A})->{B}.
var defaultAny = strings.Join([]string{
	"({H}&{A})->{H}",
	"({H}&{A})->{A}",
	"({H}->({A}->{B}))->(({H}&{A})->({H}->({A}->{B})))",
	"({H}&{A})->({H}->({A}->{B}))",
	"(({H}&{A})->{H})->((({H}&{A})->({H}->({A}->{B})))->(({H}&{A})->({A}->{B})))",
	"(({H}&{A})->({H}->({A}->{B})))->(({H}&{A})->({A}->{B}))",
	"({H}&{A})->({A}->{B})",
	"(({H}&{A})->{A})->((({H}&{A})->({A}->{B}))->(({H}&{A})->{B}))",
	"(({H}&{A})->({A}->{B}))->(({H}&{A})->{B})",
	"({H}&{A})->{B}",
	"({H}&{A})->(@{x}{B})",
	"{H}->({A}->({H}&{A}))",
	"(({H}&{A})->(@{x}{B}))->({A}->(({H}&{A})->(@{x}{B})))",
	"{A}->(({H}&{A})->(@{x}{B}))",
	"({A}->(({H}&{A})->(@{x}{B})))->({H}->({A}->(({H}&{A})->(@{x}{B}))))",
	"{H}->({A}->(({H}&{A})->(@{x}{B})))",
	"({A}->({H}&{A}))->(({A}->(({H}&{A})->(@{x}{B})))->({A}->(@{x}{B})))",
	"(({A}->({H}&{A}))->(({A}->(({H}&{A})->(@{x}{B})))->({A}->(@{x}{B}))))->({H}->(({A}->({H}&{A}))->(({A}->(({H}&{A})->(@{x}{B})))->({A}->(@{x}{B})))))",
	"{H}->(({A}->({H}&{A}))->(({A}->(({H}&{A})->(@{x}{B})))->({A}->(@{x}{B}))))",
	"({H}->({A}->({H}&{A})))->(({H}->(({A}->({H}&{A}))->(({A}->(({H}&{A})->(@{x}{B})))->({A}->(@{x}{B})))))->({H}->(({A}->(({H}&{A})->(@{x}{B})))->({A}->(@{x}{B})))))",
	"({H}->(({A}->({H}&{A}))->(({A}->(({H}&{A})->(@{x}{B})))->({A}->(@{x}{B})))))->({H}->(({A}->(({H}&{A})->(@{x}{B})))->({A}->(@{x}{B}))))",
	"{H}->(({A}->(({H}&{A})->(@{x}{B})))->({A}->(@{x}{B})))",
	"({H}->({A}->(({H}&{A})->(@{x}{B}))))->(({H}->(({A}->(({H}&{A})->(@{x}{B})))->({A}->(@{x}{B}))))->({H}->({A}->(@{x}{B}))))",
	"({H}->(({A}->(({H}&{A})->(@{x}{B})))->({A}->(@{x}{B}))))->({H}->({A}->(@{x}{B})))",
	"{H}->({A}->(@{x}{B}))",
}, "\n")

// From {H}->({A}->{B}), swap to {A}->({H}->{B}), apply the existential
// rule and swap back.
var defaultExists = strings.Join([]string{
	"({H}->({A}->{B}))->({A}->({H}->({A}->{B})))",
	"{A}->({H}->({A}->{B}))",
	"{A}->({H}->{A})",
	"({H}->{A})->(({H}->({A}->{B}))->({H}->{B}))",
	"(({H}->{A})->(({H}->({A}->{B}))->({H}->{B})))->({A}->(({H}->{A})->(({H}->({A}->{B}))->({H}->{B}))))",
	"{A}->(({H}->{A})->(({H}->({A}->{B}))->({H}->{B})))",
	"({A}->({H}->{A}))->(({A}->(({H}->{A})->(({H}->({A}->{B}))->({H}->{B}))))->({A}->(({H}->({A}->{B}))->({H}->{B}))))",
	"({A}->(({H}->{A})->(({H}->({A}->{B}))->({H}->{B}))))->({A}->(({H}->({A}->{B}))->({H}->{B})))",
	"{A}->(({H}->({A}->{B}))->({H}->{B}))",
	"({A}->({H}->({A}->{B})))->(({A}->(({H}->({A}->{B}))->({H}->{B})))->({A}->({H}->{B})))",
	"({A}->(({H}->({A}->{B}))->({H}->{B})))->({A}->({H}->{B}))",
	"{A}->({H}->{B})",
	"(?{x}{A})->({H}->{B})",
	"((?{x}{A})->({H}->{B}))->({H}->((?{x}{A})->({H}->{B})))",
	"{H}->((?{x}{A})->({H}->{B}))",
	"{H}->((?{x}{A})->{H})",
	"((?{x}{A})->{H})->(((?{x}{A})->({H}->{B}))->((?{x}{A})->{B}))",
	"(((?{x}{A})->{H})->(((?{x}{A})->({H}->{B}))->((?{x}{A})->{B})))->({H}->(((?{x}{A})->{H})->(((?{x}{A})->({H}->{B}))->((?{x}{A})->{B}))))",
	"{H}->(((?{x}{A})->{H})->(((?{x}{A})->({H}->{B}))->((?{x}{A})->{B})))",
	"({H}->((?{x}{A})->{H}))->(({H}->(((?{x}{A})->{H})->(((?{x}{A})->({H}->{B}))->((?{x}{A})->{B}))))->({H}->(((?{x}{A})->({H}->{B}))->((?{x}{A})->{B}))))",
	"({H}->(((?{x}{A})->{H})->(((?{x}{A})->({H}->{B}))->((?{x}{A})->{B}))))->({H}->(((?{x}{A})->({H}->{B}))->((?{x}{A})->{B})))",
	"{H}->(((?{x}{A})->({H}->{B}))->((?{x}{A})->{B}))",
	"({H}->((?{x}{A})->({H}->{B})))->(({H}->(((?{x}{A})->({H}->{B}))->((?{x}{A})->{B})))->({H}->((?{x}{A})->{B})))",
	"({H}->(((?{x}{A})->({H}->{B}))->((?{x}{A})->{B})))->({H}->((?{x}{A})->{B}))",
	"{H}->((?{x}{A})->{B})",
}, "\n")
