package advent

import (
	"fmt"
	"io"
)

// A Part of a daily puzzle.
//
// Run decodes the input, solves it and prints a single line "Part <N>: <value>" to w. Nothing is
// printed if any stage fails.
type Part interface {
	Number() int
	Run(input string, w io.Writer) error
}

// PartOne wraps a solver for the first part of a puzzle.
func PartOne[T, R any](decode Decoder[T], solve func(T) R) Part {
	return &part[T, R]{number: 1, decode: decode, solve: infallible(solve)}
}

// PartTwo wraps a solver for the second part of a puzzle.
func PartTwo[T, R any](decode Decoder[T], solve func(T) R) Part {
	return &part[T, R]{number: 2, decode: decode, solve: infallible(solve)}
}

// PartOneE wraps a fallible solver for the first part of a puzzle.
func PartOneE[T, R any](decode Decoder[T], solve func(T) (R, error)) Part {
	return &part[T, R]{number: 1, decode: decode, solve: solve}
}

// PartTwoE wraps a fallible solver for the second part of a puzzle.
func PartTwoE[T, R any](decode Decoder[T], solve func(T) (R, error)) Part {
	return &part[T, R]{number: 2, decode: decode, solve: solve}
}

func infallible[T, R any](solve func(T) R) func(T) (R, error) {
	return func(v T) (R, error) { return solve(v), nil }
}

type part[T, R any] struct {
	number int
	decode Decoder[T]
	solve  func(T) (R, error)
}

func (p *part[T, R]) Number() int { return p.number }

func (p *part[T, R]) Run(input string, w io.Writer) error {
	v, err := p.decode(input)
	if err != nil {
		return wrap(p.number, classify, err)
	}
	result, err := p.solve(v)
	if err != nil {
		return wrap(p.number, KindSolve, err)
	}
	if _, err := fmt.Fprintf(w, "Part %d: %v\n", p.number, result); err != nil {
		return wrap(p.number, KindIO, err)
	}
	return nil
}
