// Command day05 counts overlapping hydrothermal vent lines.
package main

import (
	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

type point struct{ X, Y int }

func (point) Grammar() parse.Parser[point] {
	return parse.Seq2(parse.Int[int](), parse.Then(parse.Rune(','), parse.Int[int]()), func(x, y int) point {
		return point{x, y}
	})
}

type segment struct{ From, To point }

func (segment) Grammar() parse.Parser[segment] {
	arrow := parse.Between(parse.Spaces(), parse.String("->"), parse.Spaces())
	return parse.Seq2(parse.Of[point](), parse.Then(arrow, parse.Of[point]()), func(from, to point) segment {
		return segment{from, to}
	})
}

func (s segment) diagonal() bool {
	return s.From.X != s.To.X && s.From.Y != s.To.Y
}

func main() {
	advent.Main(
		advent.PartOne(advent.LinesOf[segment](), partOne),
		advent.PartTwo(advent.LinesOf[segment](), partTwo),
	)
}

func partOne(segments []segment) int {
	straight := []segment{}
	for _, s := range segments {
		if !s.diagonal() {
			straight = append(straight, s)
		}
	}
	return overlaps(straight)
}

func partTwo(segments []segment) int {
	return overlaps(segments)
}

// overlaps counts the points covered by at least two segments. Diagonal segments are at 45
// degrees.
func overlaps(segments []segment) int {
	covered := map[point]int{}
	for _, s := range segments {
		dx, dy := sign(s.To.X-s.From.X), sign(s.To.Y-s.From.Y)
		for p := s.From; ; p = (point{p.X + dx, p.Y + dy}) {
			covered[p]++
			if p == s.To {
				break
			}
		}
	}
	count := 0
	for _, n := range covered {
		if n > 1 {
			count++
		}
	}
	return count
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
