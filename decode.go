package advent

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/advent-go/advent/parse"
)

// A Decoder converts the raw puzzle input into the argument of a solver.
//
// The decoding policy is always chosen explicitly: Lines for newline separated records, Whole for
// a single value spanning the entire input, Text for the raw text.
type Decoder[T any] func(input string) (T, error)

// Lines decodes newline separated records, each of which must be fully parsed by p.
//
// A trailing newline is ignored and "\r\n" line endings are accepted. Decoding stops at the first
// record that fails and no partial result is returned.
func Lines[T any](p parse.Parser[T]) Decoder[[]T] {
	return func(input string) ([]T, error) {
		input = strings.TrimSuffix(input, "\n")
		if input == "" {
			return []T{}, nil
		}
		var (
			out = []T{}
			pos = parse.Start
		)
		for _, line := range strings.SplitAfter(input, "\n") {
			record := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			v, err := p.ParseAt(record, pos)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			pos = parse.Position{Offset: pos.Offset + len(line), Line: pos.Line + 1, Column: 1}
		}
		return out, nil
	}
}

// Whole decodes the entire input as a single value parsed by p.
func Whole[T any](p parse.Parser[T]) Decoder[T] {
	return p.Parse
}

// Grammar decodes the entire input using the grammar declared by T.
func Grammar[T parse.Grammar[T]]() Decoder[T] {
	return Whole(parse.Of[T]())
}

// LinesOf decodes newline separated records using the grammar declared by T.
func LinesOf[T parse.Grammar[T]]() Decoder[[]T] {
	return Lines(parse.Of[T]())
}

// ErrInvalidUTF8 is returned by Text for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Text passes the raw input through unchanged.
func Text() Decoder[string] {
	return func(input string) (string, error) {
		if !utf8.ValidString(input) {
			return "", ErrInvalidUTF8
		}
		return input, nil
	}
}
