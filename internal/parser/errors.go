package parser

import "fmt"

const nearWidth = 16

// SyntaxError reports malformed formula or term text.
type SyntaxError struct {
	Input string // whitespace-stripped input
	Pos   int    // byte offset into Input
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Pos >= len(e.Input) {
		return fmt.Sprintf("syntax error in %q at end of input: %s", e.Input, e.Msg)
	}
	return fmt.Sprintf("syntax error in %q near %q: %s", e.Input, e.Near(), e.Msg)
}

// Near returns the offending substring starting at Pos.
func (e *SyntaxError) Near() string {
	if e.Pos >= len(e.Input) {
		return ""
	}
	end := min(e.Pos+nearWidth, len(e.Input))
	return e.Input[e.Pos:end]
}
