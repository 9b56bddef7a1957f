package checker

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a line error.
type ErrorKind int

const (
	KindSyntax ErrorKind = iota
	KindCapture
	KindFreeVariable
	KindUnproved
	KindWrongGoal
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindCapture:
		return "capture"
	case KindFreeVariable:
		return "free-variable"
	case KindUnproved:
		return "unproved"
	case KindWrongGoal:
		return "wrong-goal"
	default:
		return "unknown"
	}
}

// MsgWrongGoal is reported when the last line is not the sequent's goal.
const MsgWrongGoal = "proved the wrong statement"

// MsgUnproved is reported for a line no rule justifies.
const MsgUnproved = "not proved"

// LineError is a problem found while classifying one proof line.
type LineError struct {
	Line int // 1-based; 0 when the error concerns the whole proof
	Kind ErrorKind
	Msg  string
	Err  error // underlying cause, if any
}

func (e *LineError) Error() string {
	if e.Line <= 0 {
		return e.Msg
	}
	return fmt.Sprintf("(%d) %s", e.Line, e.Msg)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func newLineError(index int, kind ErrorKind, err error) *LineError {
	return &LineError{Line: index + 1, Kind: kind, Msg: err.Error(), Err: err}
}

func lineErrorf(index int, kind ErrorKind, format string, args ...any) *LineError {
	return &LineError{Line: index + 1, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// ErrorList is every error gathered during one check.
type ErrorList []*LineError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Err returns l as an error, or nil when l is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// AsErrorList extracts an ErrorList from err.
func AsErrorList(err error) (ErrorList, bool) {
	var list ErrorList
	if errors.As(err, &list) {
		return list, true
	}
	return nil, false
}
