// Command day12 counts the paths through a cave system.
package main

import (
	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

type cave string

// small caves have lower case names and may be visited at most once.
func (c cave) small() bool { return c[0] >= 'a' && c[0] <= 'z' }

type tunnel struct{ A, B cave }

func (tunnel) Grammar() parse.Parser[tunnel] {
	name := parse.Map(parse.Recognize(parse.Many1(parse.Letter())), func(s string) cave { return cave(s) })
	return parse.Seq2(name, parse.Then(parse.Rune('-'), name), func(a, b cave) tunnel { return tunnel{a, b} })
}

func main() {
	advent.Main(
		advent.PartOne(advent.LinesOf[tunnel](), partOne),
		advent.PartTwo(advent.LinesOf[tunnel](), partTwo),
	)
}

type graph map[cave][]cave

func connect(tunnels []tunnel) graph {
	g := graph{}
	for _, t := range tunnels {
		g[t.A] = append(g[t.A], t.B)
		g[t.B] = append(g[t.B], t.A)
	}
	return g
}

func partOne(tunnels []tunnel) int {
	return connect(tunnels).paths("start", map[cave]int{}, false)
}

func partTwo(tunnels []tunnel) int {
	return connect(tunnels).paths("start", map[cave]int{}, true)
}

// paths counts routes from c to "end". If revisit is true a single small cave other than
// "start" may be visited twice.
func (g graph) paths(c cave, visits map[cave]int, revisit bool) int {
	if c == "end" {
		return 1
	}
	if c.small() {
		visits[c]++
		defer func() { visits[c]-- }()
	}
	count := 0
	for _, next := range g[c] {
		switch {
		case next == "start":
		case !next.small() || visits[next] == 0:
			count += g.paths(next, visits, revisit)
		case revisit:
			count += g.paths(next, visits, false)
		}
	}
	return count
}
