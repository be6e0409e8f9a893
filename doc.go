// Package advent is a harness for daily puzzle programs.
//
// Each program reads its puzzle input from stdin and prints two answers:
//
//	Part 1: <value>
//	Part 2: <value>
//
// A program pairs a Decoder, which turns the raw input into a typed value, with a pure solver for
// each part. The harness reads stdin once, then runs part one followed by part two:
//
//	func main() {
//		advent.Main(
//			advent.PartOne(advent.Lines(parse.Int[int]()), partOne),
//			advent.PartTwo(advent.Lines(parse.Int[int]()), partTwo),
//		)
//	}
//
//	func partOne(depths []int) int { ... }
//	func partTwo(depths []int) int { ... }
//
// Decoders are built from parsers in package parse, either directly or from the grammar a type
// declares by implementing parse.Grammar.
package advent
