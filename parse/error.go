package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EndOfInput is the Unexpected value of an Error raised at the end of the text.
const EndOfInput = "end of input"

// Error represents a structural failure while parsing.
//
// The error always carries the position at which it occurred, what was found there and the set of
// things that would have been accepted instead. Errors raised by conversions (eg. integer overflow)
// carry the underlying cause in Err.
type Error struct {
	Pos        Position
	Unexpected string
	Expected   []string
	Err        error

	// committed is true if input was consumed before the failure, which stops alternatives from
	// being attempted.
	committed bool
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message())
}

// Message returns the error without position information.
func (e *Error) Message() string {
	var expected string
	if len(e.Expected) > 0 {
		expected = fmt.Sprintf(" (expected %s)", joinExpected(e.Expected))
	}
	switch {
	case e.Err != nil && e.Unexpected == "":
		return e.Err.Error() + expected
	case e.Err != nil:
		return fmt.Sprintf("unexpected %s: %s%s", e.Unexpected, e.Err, expected)
	default:
		return fmt.Sprintf("unexpected %s%s", e.Unexpected, expected)
	}
}

// Position the error occurred at.
func (e *Error) Position() Position { return e.Pos }

func (e *Error) Unwrap() error { return e.Err }

// AtEOF returns true if parsing failed because the input ended early.
func (e *Error) AtEOF() bool { return e.Unexpected == EndOfInput }

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Err: fmt.Errorf(format, args...)}
}

// AnnotateError wraps an existing error with a position.
//
// If the existing error is already an *Error it is returned unmodified.
func AnnotateError(pos Position, err error) *Error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}
	return &Error{Pos: pos, Err: err}
}

func expected(in Input, what ...string) *Error {
	return &Error{Pos: in.pos, Unexpected: in.unexpected(), Expected: what}
}

// Commit marks err as raised after input was consumed, which stops alternatives from being
// attempted.
func Commit(err error) error {
	return commit(err)
}

func commit(err error) error {
	perr, ok := err.(*Error)
	if !ok || perr.committed {
		return err
	}
	out := *perr
	out.committed = true
	return &out
}

// uncommit resets the consumption marker on err.
func uncommit(err error) error {
	perr, ok := err.(*Error)
	if !ok || !perr.committed {
		return err
	}
	out := *perr
	out.committed = false
	return &out
}

func isCommitted(err error) bool {
	perr, ok := err.(*Error)
	return !ok || perr.committed
}

// merge two uncommitted errors raised by alternatives.
//
// The error that got further wins. At the same position the expected sets are combined.
func merge(a, b error) error {
	pa, aok := a.(*Error)
	pb, bok := b.(*Error)
	switch {
	case !aok:
		return a
	case !bok:
		return b
	case pa.Pos.Offset > pb.Pos.Offset:
		return a
	case pb.Pos.Offset > pa.Pos.Offset:
		return b
	}
	out := *pa
	out.Expected = union(pa.Expected, pb.Expected)
	if out.Err == nil {
		out.Err = pb.Err
	}
	return &out
}

// union of two expected sets, preserving order.
func union(a, b []string) []string {
	out := append([]string{}, a...)
	for _, s := range b {
		if !contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func joinExpected(expected []string) string {
	switch len(expected) {
	case 1:
		return expected[0]
	case 2:
		return expected[0] + " or " + expected[1]
	}
	return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
}

func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}
