package advent

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

// An Option to modify the behaviour of the Harness.
type Option func(h *Harness) error

// Input sets the reader the puzzle input is read from. Defaults to os.Stdin.
func Input(r io.Reader) Option {
	return func(h *Harness) error {
		if r == nil {
			return errors.New("input reader must not be nil")
		}
		h.in = r
		return nil
	}
}

// Output sets the writer answers are printed to. Defaults to os.Stdout.
func Output(w io.Writer) Option {
	return func(h *Harness) error {
		if w == nil {
			return errors.New("output writer must not be nil")
		}
		h.out = w
		return nil
	}
}

// Logger sets the logger used to trace a run. Defaults to a no-op logger.
func Logger(logger *zap.Logger) Option {
	return func(h *Harness) error {
		if logger == nil {
			logger = zap.NewNop()
		}
		h.log = logger
		return nil
	}
}
