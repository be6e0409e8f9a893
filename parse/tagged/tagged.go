// Package tagged adapts grammars declared with participle struct tags into parse combinators.
//
// This allows a record type to declare its grammar tersely in its field tags:
//
//	type Command struct {
//		Direction string `@("forward" | "up" | "down")`
//		Units     int    `@Int`
//	}
//
//	var command = tagged.MustBuild[Command]()
//
// The resulting parser consumes the remainder of the current line.
package tagged

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/advent-go/advent/parse"
)

// Build a line parser for the struct-tag grammar of G.
func Build[G any](options ...participle.Option) (parse.Parser[G], error) {
	p, err := participle.Build[G](options...)
	if err != nil {
		return nil, err
	}
	return func(in parse.Input) (G, parse.Input, error) {
		var zero G
		line := in.Rest()
		if eol := strings.IndexAny(line, "\r\n"); eol >= 0 {
			line = line[:eol]
		}
		out, err := p.ParseString("", line)
		if err != nil {
			return zero, in, rebase(in.Pos(), err)
		}
		return *out, in.Advance(len(line)), nil
	}, nil
}

// MustBuild is like Build but panics if the grammar is invalid.
func MustBuild[G any](options ...participle.Option) parse.Parser[G] {
	p, err := Build[G](options...)
	if err != nil {
		panic(err)
	}
	return p
}

// rebase a participle error, which is relative to the start of the line, onto pos.
func rebase(pos parse.Position, err error) error {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return parse.AnnotateError(pos, err)
	}
	at := perr.Position()
	pos.Offset += at.Offset
	pos.Column += at.Column - 1
	out := parse.AnnotateError(pos, &grammarError{perr})
	if at.Offset == 0 {
		return out
	}
	return parse.Commit(out)
}

// grammarError strips participle's own position from its message.
type grammarError struct {
	err participle.Error
}

func (g *grammarError) Error() string { return g.err.Message() }
func (g *grammarError) Unwrap() error { return g.err }
