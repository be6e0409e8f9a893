// Command day06 models the growth of a lanternfish school.
package main

import (
	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

var timers = advent.Whole(parse.Line(parse.SepBy1(parse.Uint[uint8](), parse.Rune(','))))

func main() {
	advent.Main(
		advent.PartOne(timers, partOne),
		advent.PartTwo(timers, partTwo),
	)
}

func partOne(timers []uint8) uint64 { return simulate(timers, 80) }

func partTwo(timers []uint8) uint64 { return simulate(timers, 256) }

// simulate counts fish by timer value rather than tracking each fish.
func simulate(timers []uint8, days int) uint64 {
	var counts [9]uint64
	for _, t := range timers {
		if int(t) < len(counts) {
			counts[t]++
		}
	}
	for day := 0; day < days; day++ {
		spawning := counts[0]
		copy(counts[:], counts[1:])
		counts[6] += spawning
		counts[8] = spawning
	}
	var total uint64
	for _, n := range counts {
		total += n
	}
	return total
}
