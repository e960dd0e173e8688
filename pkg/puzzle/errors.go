package puzzle

import (
	"errors"
	"fmt"
)

// Solver errors. Parse failures are reported as *ParseError, which matches
// ErrParse under errors.Is.
var (
	ErrParse         = errors.New("parse error")
	ErrInvariant     = errors.New("invariant violated")
	ErrNoSolution    = errors.New("no solution")
	ErrUnknownDay    = errors.New("unknown day")
	ErrInputMissing  = errors.New("input file not found")
	ErrAnswerChanged = errors.New("answer differs from recorded run")
)

// Answer log errors.
var (
	ErrLogDetached     = errors.New("answer log is detached")
	ErrAlreadyAttached = errors.New("answer log is already attached")
	ErrNotFound        = errors.New("run not found")
)

// ParseError reports input text that does not match a day's grammar.
// Line is 1-based; zero means the error is not tied to a single line.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error on line %d %q: %s", e.Line, e.Text, e.Reason)
	}
	if e.Text != "" {
		return fmt.Sprintf("parse error in %q: %s", e.Text, e.Reason)
	}
	return "parse error: " + e.Reason
}

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Parsef builds a *ParseError for line (1-based) holding text.
func Parsef(line int, text, format string, args ...any) error {
	return &ParseError{Line: line, Text: text, Reason: fmt.Sprintf(format, args...)}
}

// Invariantf wraps ErrInvariant with a formatted description.
func Invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// AtLine sets the line number of a *ParseError that has none and returns
// err. Other errors pass through unchanged.
func AtLine(err error, line int) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Line == 0 {
		pe.Line = line
	}
	return err
}
