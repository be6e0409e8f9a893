// Package parse is a small parser combinator library over text.
//
// A Parser[T] consumes a prefix of an Input and returns a T. Larger parsers are composed from
// smaller ones with ordinary functions:
//
//   - Rune, String, Digit, Satisfy, ... Match primitives.
//   - Seq2, Seq3, Seq4 Match in sequence and combine the values.
//   - Skip, Then, Between Match in sequence and keep one value.
//   - Choice, Or Match one of the alternatives.
//   - Many, Many1, SepBy, SepBy1, Count Match repeatedly.
//   - Map, TryMap Transform values.
//
// Types declare their own grammar by implementing Grammar:
//
//	type Position struct{ X, Y int }
//
//	func (Position) Grammar() parse.Parser[Position] {
//		return parse.Seq2(
//			parse.Skip(parse.Int[int](), parse.Rune(',')),
//			parse.Int[int](),
//			func(x, y int) Position { return Position{x, y} },
//		)
//	}
//
//	pos, err := parse.Of[Position]().Parse("3,4")
//
// Alternatives are predictive: once an alternative consumes input, failures are reported rather
// than the next alternative being tried. Attempt allows backtracking where this is not wanted.
package parse
