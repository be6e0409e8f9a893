// Command day11 simulates flashing dumbo octopuses.
package main

import (
	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

var energy = advent.Lines(parse.Many1(parse.Map(parse.Digit(), func(r rune) int { return int(r - '0') })))

func main() {
	advent.Main(
		advent.PartOne(energy, partOne),
		advent.PartTwo(energy, partTwo),
	)
}

type grid [][]int

func (g grid) clone() grid {
	out := make(grid, len(g))
	for y, row := range g {
		out[y] = append([]int(nil), row...)
	}
	return out
}

func (g grid) size() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}

// step advances the grid one step in place and returns the number of octopuses that flashed.
func (g grid) step() int {
	type point struct{ x, y int }
	pending := []point{}
	for y, row := range g {
		for x := range row {
			g[y][x]++
			if g[y][x] > 9 {
				pending = append(pending, point{x, y})
			}
		}
	}
	flashed := map[point]bool{}
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if flashed[p] {
			continue
		}
		flashed[p] = true
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				n := point{p.x + dx, p.y + dy}
				if n == p || n.y < 0 || n.y >= len(g) || n.x < 0 || n.x >= len(g[n.y]) {
					continue
				}
				g[n.y][n.x]++
				if g[n.y][n.x] > 9 && !flashed[n] {
					pending = append(pending, n)
				}
			}
		}
	}
	for p := range flashed {
		g[p.y][p.x] = 0
	}
	return len(flashed)
}

func partOne(rows [][]int) int {
	g := grid(rows).clone()
	total := 0
	for i := 0; i < 100; i++ {
		total += g.step()
	}
	return total
}

func partTwo(rows [][]int) int {
	g := grid(rows).clone()
	if g.size() == 0 {
		return 0
	}
	for step := 1; ; step++ {
		if g.step() == g.size() {
			return step
		}
	}
}
