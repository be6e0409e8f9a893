// Command day01 counts how often sonar depth measurements increase.
package main

import (
	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

func main() {
	depths := advent.Lines(parse.Uint[uint]())
	advent.Main(
		advent.PartOne(depths, partOne),
		advent.PartTwo(depths, partTwo),
	)
}

func partOne(depths []uint) int {
	return increases(depths, 1)
}

// Consecutive three measurement windows share two measurements, so comparing their sums reduces
// to comparing the measurements three apart.
func partTwo(depths []uint) int {
	return increases(depths, 3)
}

func increases(depths []uint, window int) int {
	count := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			count++
		}
	}
	return count
}
