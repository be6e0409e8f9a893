package parse

import (
	"reflect"
	"sync"
)

// A Parser attempts to consume a prefix of the input.
//
// On success it returns the parsed value and the input following it. On failure it returns an
// error, usually an *Error, and the returned Input should be ignored.
type Parser[T any] func(in Input) (T, Input, error)

// Parse the whole of s.
//
// Parsing fails if any input remains once p has matched.
func (p Parser[T]) Parse(s string) (T, error) {
	return p.ParseAt(s, Start)
}

// ParseAt parses the whole of s, reporting positions relative to pos.
func (p Parser[T]) ParseAt(s string, pos Position) (T, error) {
	out, _, err := Skip(p, EOF())(NewInputAt(s, pos))
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// ParsePrefix parses a prefix of s, returning the unconsumed remainder.
func (p Parser[T]) ParsePrefix(s string) (T, string, error) {
	out, rest, err := p(NewInput(s))
	if err != nil {
		var zero T
		return zero, s, err
	}
	return out, rest.Rest(), nil
}

// Or attempts q if p fails without consuming input.
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return Choice(p, q)
}

// Label replaces the expected set reported when p fails without consuming input.
func (p Parser[T]) Label(name string) Parser[T] {
	return func(in Input) (T, Input, error) {
		out, rest, err := p(in)
		if err != nil && !isCommitted(err) {
			perr := *err.(*Error)
			if perr.Pos == in.pos {
				perr.Expected = []string{name}
			}
			return out, rest, &perr
		}
		return out, rest, err
	}
}

// Grammar is implemented by types that declare their own grammar.
//
//	type Point struct{ X, Y int }
//
//	func (Point) Grammar() parse.Parser[Point] {
//		return parse.Seq2(parse.Skip(parse.Int[int](), parse.Rune(',')), parse.Int[int](),
//			func(x, y int) Point { return Point{x, y} })
//	}
type Grammar[T any] interface {
	Grammar() Parser[T]
}

// grammars holds the parser for each grammar type, keyed by reflect.Type.
var grammars sync.Map

// Of returns the grammar declared by T.
//
// The grammar is constructed once per type on first use, which allows a grammar to refer to
// itself.
func Of[T Grammar[T]]() Parser[T] {
	key := reflect.TypeFor[T]()
	if p, ok := grammars.Load(key); ok {
		return p.(Parser[T])
	}
	p, _ := grammars.LoadOrStore(key, Lazy(func() Parser[T] {
		var zero T
		return zero.Grammar()
	}))
	return p.(Parser[T])
}

// Lazy defers construction of a parser until it is first used.
//
// This is required for recursive grammars.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)
	return func(in Input) (T, Input, error) {
		return get()(in)
	}
}
