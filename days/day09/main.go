// Command day09 finds the low points and basins of a cave floor heightmap.
package main

import (
	"slices"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

type heightmap [][]int

var height = parse.Map(parse.Digit(), func(r rune) int { return int(r - '0') })

var heights = advent.Lines(parse.Many1(height))

func main() {
	advent.Main(
		advent.PartOne(heights, partOne),
		advent.PartTwo(heights, partTwo),
	)
}

type point struct{ x, y int }

func (h heightmap) neighbours(p point) []point {
	out := make([]point, 0, 4)
	for _, d := range []point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		n := point{p.x + d.x, p.y + d.y}
		if n.y >= 0 && n.y < len(h) && n.x >= 0 && n.x < len(h[n.y]) {
			out = append(out, n)
		}
	}
	return out
}

func (h heightmap) at(p point) int { return h[p.y][p.x] }

func (h heightmap) lowPoints() []point {
	out := []point{}
	for y, row := range h {
		for x := range row {
			p := point{x, y}
			low := true
			for _, n := range h.neighbours(p) {
				low = low && h.at(n) > h.at(p)
			}
			if low {
				out = append(out, p)
			}
		}
	}
	return out
}

func partOne(rows [][]int) int {
	h := heightmap(rows)
	risk := 0
	for _, p := range h.lowPoints() {
		risk += h.at(p) + 1
	}
	return risk
}

// partTwo multiplies the sizes of the three largest basins. A basin is flooded from its low
// point and bounded by height 9.
func partTwo(rows [][]int) int {
	h := heightmap(rows)
	sizes := []int{}
	for _, low := range h.lowPoints() {
		seen := map[point]bool{low: true}
		queue := []point{low}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, n := range h.neighbours(p) {
				if !seen[n] && h.at(n) != 9 {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		sizes = append(sizes, len(seen))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	product := 1
	for i := 0; i < 3 && i < len(sizes); i++ {
		product *= sizes[i]
	}
	return product
}
