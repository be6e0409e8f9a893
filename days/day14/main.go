// Command day14 grows a polymer by pair insertion.
package main

import (
	"fmt"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

type pair [2]rune

type manual struct {
	Template string
	Rules    map[pair]rune
}

func (manual) Grammar() parse.Parser[manual] {
	element := parse.Upper()
	template := parse.Line(parse.Recognize(parse.Many1(element)))
	rule := parse.Seq3(element, element, parse.Then(parse.String(" -> "), element), func(a, b, insert rune) [3]rune {
		return [3]rune{a, b, insert}
	})
	rules := parse.Map(parse.Many1(parse.Line(rule)), func(rules [][3]rune) map[pair]rune {
		out := map[pair]rune{}
		for _, r := range rules {
			out[pair{r[0], r[1]}] = r[2]
		}
		return out
	})
	return parse.Seq2(template, parse.Then(parse.Newline(), rules), func(template string, rules map[pair]rune) manual {
		return manual{template, rules}
	})
}

func main() {
	advent.Main(
		advent.PartOneE(advent.Grammar[manual](), partOne),
		advent.PartTwoE(advent.Grammar[manual](), partTwo),
	)
}

func partOne(m manual) (uint64, error) { return m.spread(10) }

func partTwo(m manual) (uint64, error) { return m.spread(40) }

// spread returns the difference between the most and least common elements after the given
// number of insertion steps.
func (m manual) spread(steps int) (uint64, error) {
	p := &polymer{rules: m.Rules, memo: map[memoKey]counts{}}
	total := counts{}
	template := []rune(m.Template)
	for _, r := range template {
		total[r]++
	}
	for i := 1; i < len(template); i++ {
		total.add(p.inserted(pair{template[i-1], template[i]}, steps))
	}
	if len(total) == 0 {
		return 0, fmt.Errorf("empty template")
	}
	least, most := ^uint64(0), uint64(0)
	for _, n := range total {
		least, most = min(least, n), max(most, n)
	}
	return most - least, nil
}

type counts map[rune]uint64

func (c counts) add(other counts) {
	for r, n := range other {
		c[r] += n
	}
}

type memoKey struct {
	pair  pair
	steps int
}

type polymer struct {
	rules map[pair]rune
	memo  map[memoKey]counts
}

// inserted counts the elements inserted between a pair over the given number of steps.
func (p *polymer) inserted(between pair, steps int) counts {
	insert, ok := p.rules[between]
	if steps == 0 || !ok {
		return counts{}
	}
	key := memoKey{between, steps}
	if c, ok := p.memo[key]; ok {
		return c
	}
	c := counts{insert: 1}
	c.add(p.inserted(pair{between[0], insert}, steps-1))
	c.add(p.inserted(pair{insert, between[1]}, steps-1))
	p.memo[key] = c
	return c
}
