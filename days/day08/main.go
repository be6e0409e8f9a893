// Command day08 decodes scrambled seven-segment displays.
package main

import (
	"fmt"
	"math/bits"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

// pattern is a set of lit segments, bit 0 for 'a' through bit 6 for 'g'.
type pattern uint8

func (p pattern) size() int { return bits.OnesCount8(uint8(p)) }

func (p pattern) contains(q pattern) bool { return p&q == q }

type entry struct {
	Signals []pattern
	Outputs []pattern
}

func (entry) Grammar() parse.Parser[entry] {
	segments := parse.Map(parse.Many1(parse.OneOf("abcdefg")), func(segments []rune) pattern {
		var p pattern
		for _, s := range segments {
			p |= 1 << (s - 'a')
		}
		return p
	})
	signals := parse.Many1(parse.Skip(segments, parse.Rune(' ')))
	outputs := parse.Then(parse.String("| "), parse.SepBy1(segments, parse.Rune(' ')))
	return parse.Seq2(signals, outputs, func(signals, outputs []pattern) entry {
		return entry{signals, outputs}
	})
}

func main() {
	advent.Main(
		advent.PartOne(advent.LinesOf[entry](), partOne),
		advent.PartTwoE(advent.LinesOf[entry](), partTwo),
	)
}

// partOne counts output digits identifiable by their segment count alone: 1, 4, 7 and 8.
func partOne(entries []entry) int {
	count := 0
	for _, e := range entries {
		for _, o := range e.Outputs {
			switch o.size() {
			case 2, 3, 4, 7:
				count++
			}
		}
	}
	return count
}

func partTwo(entries []entry) (int, error) {
	total := 0
	for i, e := range entries {
		digits, err := solve(e.Signals)
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i+1, err)
		}
		value := 0
		for _, o := range e.Outputs {
			d, ok := digits[o]
			if !ok {
				return 0, fmt.Errorf("entry %d: output %07b matches no digit", i+1, o)
			}
			value = value*10 + d
		}
		total += value
	}
	return total, nil
}

// solve deduces which pattern shows each digit from the ten unique signal patterns.
func solve(signals []pattern) (map[pattern]int, error) {
	var known [10]pattern
	for _, s := range signals {
		switch s.size() {
		case 2:
			known[1] = s
		case 3:
			known[7] = s
		case 4:
			known[4] = s
		case 7:
			known[8] = s
		}
	}
	for _, s := range signals {
		if s.size() == 6 {
			switch {
			case s.contains(known[4]):
				known[9] = s
			case s.contains(known[1]):
				known[0] = s
			default:
				known[6] = s
			}
		}
	}
	for _, s := range signals {
		if s.size() == 5 {
			switch {
			case s.contains(known[1]):
				known[3] = s
			case known[6].contains(s):
				known[5] = s
			default:
				known[2] = s
			}
		}
	}
	digits := map[pattern]int{}
	for d, p := range known {
		if p == 0 {
			return nil, fmt.Errorf("no pattern found for %d", d)
		}
		if _, dup := digits[p]; dup {
			return nil, fmt.Errorf("pattern %07b matches more than one digit", p)
		}
		digits[p] = d
	}
	if len(signals) != len(digits) {
		return nil, fmt.Errorf("expected %d distinct signal patterns, got %d", len(digits), len(signals))
	}
	return digits, nil
}
