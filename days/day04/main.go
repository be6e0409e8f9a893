// Command day04 plays bingo against a giant squid.
package main

import (
	"errors"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

type board [][]int

type game struct {
	Draws  []int
	Boards []board
}

func (game) Grammar() parse.Parser[game] {
	number := parse.Int[int]()
	draws := parse.Line(parse.SepBy1(number, parse.Rune(',')))
	row := parse.Then(parse.Spaces(), parse.SepBy1(number, parse.Many1(parse.Space())))
	card := parse.Map(parse.Many1(parse.Line(row)), func(rows [][]int) board { return rows })
	boards := parse.Many1(parse.Then(parse.Newline(), card))
	return parse.Seq2(draws, boards, func(draws []int, boards []board) game {
		return game{Draws: draws, Boards: boards}
	})
}

var errNoWinner = errors.New("no board wins")

func main() {
	advent.Main(
		advent.PartOneE(advent.Grammar[game](), partOne),
		advent.PartTwoE(advent.Grammar[game](), partTwo),
	)
}

func partOne(g game) (int, error) {
	scores := g.play()
	if len(scores) == 0 {
		return 0, errNoWinner
	}
	return scores[0], nil
}

func partTwo(g game) (int, error) {
	scores := g.play()
	if len(scores) == 0 {
		return 0, errNoWinner
	}
	return scores[len(scores)-1], nil
}

// play returns the final score of each board in the order the boards win.
func (g game) play() []int {
	marked := make([][][]bool, len(g.Boards))
	for i, b := range g.Boards {
		marked[i] = make([][]bool, len(b))
		for y, row := range b {
			marked[i][y] = make([]bool, len(row))
		}
	}
	won := make([]bool, len(g.Boards))
	scores := []int{}
	for _, draw := range g.Draws {
		for i, b := range g.Boards {
			if won[i] {
				continue
			}
			for y, row := range b {
				for x, v := range row {
					if v == draw {
						marked[i][y][x] = true
					}
				}
			}
			if complete(marked[i]) {
				won[i] = true
				scores = append(scores, unmarked(b, marked[i])*draw)
			}
		}
	}
	return scores
}

func complete(marked [][]bool) bool {
	for y := range marked {
		full := true
		for x := range marked[y] {
			full = full && marked[y][x]
		}
		if full {
			return true
		}
	}
	for x := range marked[0] {
		full := true
		for y := range marked {
			full = full && x < len(marked[y]) && marked[y][x]
		}
		if full {
			return true
		}
	}
	return false
}

func unmarked(b board, marked [][]bool) int {
	sum := 0
	for y, row := range b {
		for x, v := range row {
			if !marked[y][x] {
				sum += v
			}
		}
	}
	return sum
}
