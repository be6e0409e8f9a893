// Command day15 finds the lowest risk path through a cave of chitons.
package main

import (
	"container/heap"
	"errors"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

var risks = advent.Lines(parse.Many1(parse.Map(parse.Digit(), func(r rune) int { return int(r - '0') })))

func main() {
	advent.Main(
		advent.PartOneE(risks, partOne),
		advent.PartTwoE(risks, partTwo),
	)
}

func partOne(rows [][]int) (int, error) {
	return lowestRisk(rows)
}

// partTwo tiles the map five times in each direction, each tile's risk one higher than the tile
// above or to its left, wrapping from 9 back to 1.
func partTwo(rows [][]int) (int, error) {
	if len(rows) == 0 {
		return 0, errEmpty
	}
	h, w := len(rows), len(rows[0])
	tiled := make([][]int, h*5)
	for y := range tiled {
		tiled[y] = make([]int, w*5)
		for x := range tiled[y] {
			if x%w >= len(rows[y%h]) {
				return 0, errRagged
			}
			risk := rows[y%h][x%w] + y/h + x/w
			tiled[y][x] = (risk-1)%9 + 1
		}
	}
	return lowestRisk(tiled)
}

var (
	errEmpty  = errors.New("empty map")
	errRagged = errors.New("map rows differ in length")
)

type point struct{ x, y int }

type node struct {
	point
	risk int
}

type queue []node

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].risk < q[j].risk }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(node)) }
func (q *queue) Pop() any {
	old := *q
	n := old[len(old)-1]
	*q = old[:len(old)-1]
	return n
}

// lowestRisk finds the total risk of the safest path from the top left to the bottom right,
// not counting the starting position.
func lowestRisk(rows [][]int) (int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, errEmpty
	}
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return 0, errRagged
		}
	}
	goal := point{len(rows[0]) - 1, len(rows) - 1}
	best := map[point]int{{0, 0}: 0}
	q := &queue{{point{0, 0}, 0}}
	for q.Len() > 0 {
		n := heap.Pop(q).(node)
		if n.point == goal {
			return n.risk, nil
		}
		if n.risk > best[n.point] {
			continue
		}
		for _, d := range []point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			next := point{n.x + d.x, n.y + d.y}
			if next.x < 0 || next.y < 0 || next.x > goal.x || next.y > goal.y {
				continue
			}
			risk := n.risk + rows[next.y][next.x]
			if prev, seen := best[next]; !seen || risk < prev {
				best[next] = risk
				heap.Push(q, node{next, risk})
			}
		}
	}
	return 0, errors.New("no path to the bottom right")
}
