// Command day07 aligns crab submarines at the cheapest position.
package main

import (
	"slices"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

var positions = advent.Whole(parse.Line(parse.SepBy1(parse.Int[int](), parse.Rune(','))))

func main() {
	advent.Main(
		advent.PartOne(positions, partOne),
		advent.PartTwo(positions, partTwo),
	)
}

// The median minimises the sum of absolute distances.
func partOne(positions []int) int {
	sorted := slices.Clone(positions)
	slices.Sort(sorted)
	median := sorted[len(sorted)/2]
	fuel := 0
	for _, p := range positions {
		fuel += abs(p - median)
	}
	return fuel
}

func partTwo(positions []int) int {
	lo, hi := slices.Min(positions), slices.Max(positions)
	best := -1
	for target := lo; target <= hi; target++ {
		fuel := 0
		for _, p := range positions {
			n := abs(p - target)
			fuel += n * (n + 1) / 2
		}
		if best < 0 || fuel < best {
			best = fuel
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
