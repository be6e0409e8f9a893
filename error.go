package advent

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/advent-go/advent/parse"
)

// Kind of failure that aborted a run.
type Kind int

const (
	// KindParse is a structural failure to parse the input.
	KindParse Kind = iota
	// KindNumber is a malformed or out of range integer.
	KindNumber
	// KindIO is a failure reading input or writing output.
	KindIO
	// KindSolve is a failure reported by a solver.
	KindSolve
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindNumber:
		return "malformed number"
	case KindIO:
		return "i/o error"
	case KindSolve:
		return "solver failed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by the harness and by parts when a stage of a run fails.
//
// Part is zero for failures that are not specific to a part, eg. reading the input.
type Error struct {
	Part int
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Part == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("part %d: %s: %s", e.Part, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Classify an arbitrary error into a Kind.
//
// Numeric conversion failures are recognised anywhere in the chain, including inside a
// *parse.Error. Errors already classified keep their Kind. Anything unrecognised is a parse
// failure.
func Classify(err error) Kind {
	var (
		aerr    *Error
		numErr  *strconv.NumError
		perr    *parse.Error
		pathErr *fs.PathError
	)
	switch {
	case errors.As(err, &aerr):
		return aerr.Kind
	case errors.As(err, &numErr):
		return KindNumber
	case errors.As(err, &perr):
		return KindParse
	case errors.As(err, &pathErr), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.ErrClosedPipe):
		return KindIO
	}
	return KindParse
}

// wrap err as an *Error of the given part, classifying it if kind is negative.
func wrap(part int, kind Kind, err error) error {
	if kind < 0 {
		kind = Classify(err)
	}
	var aerr *Error
	if errors.As(err, &aerr) && aerr.Part == part && aerr.Kind == kind {
		return aerr
	}
	return &Error{Part: part, Kind: kind, Err: err}
}

// classify is passed to wrap to request classification.
const classify Kind = -1
