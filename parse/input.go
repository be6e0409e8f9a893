package parse

import (
	"fmt"
	"unicode/utf8"
)

// Position of a rune in the source text.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Start is the position of the first rune of a text.
var Start = Position{Line: 1, Column: 1}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Offset: %d, Line: %d, Column: %d}", p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// advance returns the position following r.
func (p Position) advance(r rune, size int) Position {
	p.Offset += size
	if r == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
	return p
}

// Input is an immutable cursor into the source text.
//
// Parsers never mutate an Input, they return a new one positioned after whatever they consumed,
// so backtracking is simply holding on to an earlier value.
type Input struct {
	src    string
	cursor int
	pos    Position
	// hint lists what else would have been accepted at pos, collected from parsers that stopped
	// there without consuming input.
	hint *Error
}

// NewInput creates an Input at the start of s.
func NewInput(s string) Input {
	return Input{src: s, pos: Start}
}

// NewInputAt creates an Input over s whose first rune is reported at pos.
//
// This is used when s is a fragment of a larger text, eg. one line of a file.
func NewInputAt(s string, pos Position) Input {
	return Input{src: s, pos: pos}
}

// Pos of the next rune.
func (in Input) Pos() Position { return in.pos }

// Rest returns the unconsumed text.
func (in Input) Rest() string { return in.src[in.cursor:] }

// EOF returns true if all input has been consumed.
func (in Input) EOF() bool { return in.cursor >= len(in.src) }

// Peek at the next rune without consuming it.
func (in Input) Peek() (rune, bool) {
	if in.EOF() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(in.src[in.cursor:])
	return r, true
}

// Next consumes a single rune.
//
// The returned Input is unchanged when at EOF.
func (in Input) Next() (rune, Input) {
	if in.EOF() {
		return 0, in
	}
	r, size := utf8.DecodeRuneInString(in.src[in.cursor:])
	in.cursor += size
	in.pos = in.pos.advance(r, size)
	in.hint = nil
	return r, in
}

// Advance consumes the next n bytes of input, which must end on a rune boundary.
func (in Input) Advance(n int) Input {
	end := in.cursor + n
	for in.cursor < end && !in.EOF() {
		_, in = in.Next()
	}
	return in
}

// Consumed returns true if "later" is positioned after in.
func (in Input) Consumed(later Input) bool {
	return later.cursor > in.cursor
}

// slice returns the text between in and a later cursor.
func (in Input) slice(later Input) string {
	return in.src[in.cursor:later.cursor]
}

// unexpected describes the next rune for error messages.
func (in Input) unexpected() string {
	r, ok := in.Peek()
	if !ok {
		return EndOfInput
	}
	return quoteRune(r)
}

// hinted records a failure that consumed nothing at in as an alternative that was also acceptable
// there.
func (in Input) hinted(err error) Input {
	perr, ok := err.(*Error)
	if !ok || perr.committed || perr.Err != nil || perr.Pos.Offset != in.pos.Offset || len(perr.Expected) == 0 {
		return in
	}
	in.hint = &Error{Pos: in.pos, Unexpected: perr.Unexpected, Expected: union(in.hints(), perr.Expected)}
	return in
}

func (in Input) hints() []string {
	if in.hint == nil || in.hint.Pos.Offset != in.pos.Offset {
		return nil
	}
	return in.hint.Expected
}

// explain adds the alternatives hinted at in to the expected set of an error raised there.
func (in Input) explain(err error) error {
	hints := in.hints()
	perr, ok := err.(*Error)
	if !ok || len(hints) == 0 || perr.Err != nil || perr.Pos.Offset != in.pos.Offset {
		return err
	}
	out := *perr
	out.Expected = union(hints, perr.Expected)
	return &out
}
