// Command day13 folds transparent paper to reveal an activation code.
package main

import (
	"strings"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
	"github.com/advent-go/advent/parse/tagged"
)

type dot struct{ X, Y int }

type fold struct {
	Axis string `"fold" "along" @("x" | "y") "="`
	Line int    `@Int`
}

type manual struct {
	Dots  []dot
	Folds []fold
}

func (manual) Grammar() parse.Parser[manual] {
	number := parse.Int[int]()
	d := parse.Seq2(number, parse.Then(parse.Rune(','), number), func(x, y int) dot { return dot{x, y} })
	dots := parse.Many1(parse.Line(d))
	folds := parse.Many1(parse.Line(tagged.MustBuild[fold]()))
	return parse.Seq2(dots, parse.Then(parse.Newline(), folds), func(dots []dot, folds []fold) manual {
		return manual{dots, folds}
	})
}

func main() {
	advent.Main(
		advent.PartOne(advent.Grammar[manual](), partOne),
		advent.PartTwo(advent.Grammar[manual](), partTwo),
	)
}

type paper map[dot]bool

func (p paper) fold(f fold) paper {
	out := paper{}
	for d := range p {
		switch {
		case f.Axis == "x" && d.X > f.Line:
			d.X = 2*f.Line - d.X
		case f.Axis == "y" && d.Y > f.Line:
			d.Y = 2*f.Line - d.Y
		}
		out[d] = true
	}
	return out
}

func newPaper(dots []dot) paper {
	p := paper{}
	for _, d := range dots {
		p[d] = true
	}
	return p
}

func partOne(m manual) int {
	return len(newPaper(m.Dots).fold(m.Folds[0]))
}

// partTwo renders the folded paper. The fold lines bound the final sheet.
func partTwo(m manual) string {
	p := newPaper(m.Dots)
	width, height := 0, 0
	for _, d := range m.Dots {
		width, height = max(width, d.X+1), max(height, d.Y+1)
	}
	for _, f := range m.Folds {
		p = p.fold(f)
		if f.Axis == "x" {
			width = f.Line
		} else {
			height = f.Line
		}
	}
	w := &strings.Builder{}
	for y := 0; y < height; y++ {
		w.WriteByte('\n')
		for x := 0; x < width; x++ {
			if p[dot{x, y}] {
				w.WriteByte('#')
			} else {
				w.WriteByte('.')
			}
		}
	}
	return w.String()
}
