// Command day10 scores corrupted and incomplete navigation subsystem lines.
package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

// chunk is a bracket pair enclosing zero or more chunks.
type chunk struct {
	Open     rune
	Children []chunk
}

var pairs = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

func (chunk) Grammar() parse.Parser[chunk] {
	alternatives := []parse.Parser[chunk]{}
	for _, open := range "([{<" {
		body := parse.Between(parse.Rune(open), parse.Many(parse.Of[chunk]()), parse.Rune(pairs[open]))
		alternatives = append(alternatives, parse.Map(body, func(children []chunk) chunk {
			return chunk{Open: open, Children: children}
		}))
	}
	return parse.Choice(alternatives...)
}

var chunks = parse.Many(parse.Of[chunk]())

var navigation = advent.Lines(parse.Recognize(parse.Many(parse.OneOf("()[]{}<>"))))

func main() {
	advent.Main(
		advent.PartOneE(navigation, partOne),
		advent.PartTwoE(navigation, partTwo),
	)
}

var (
	syntaxScores     = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completionScores = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

func partOne(lines []string) (int, error) {
	score := 0
	for _, line := range lines {
		illegal, err := corruption(line)
		if err != nil {
			return 0, err
		}
		score += syntaxScores[illegal]
	}
	return score, nil
}

func partTwo(lines []string) (int, error) {
	scores := []int{}
	for _, line := range lines {
		illegal, err := corruption(line)
		if err != nil {
			return 0, err
		}
		if illegal != 0 {
			continue
		}
		completion, err := complete(line)
		if err != nil {
			return 0, err
		}
		if completion == "" {
			continue
		}
		score := 0
		for _, r := range completion {
			score = score*5 + completionScores[r]
		}
		scores = append(scores, score)
	}
	if len(scores) == 0 {
		return 0, errors.New("no incomplete lines")
	}
	slices.Sort(scores)
	return scores[len(scores)/2], nil
}

// corruption returns the first illegal closing character of a line, or 0 if the line is
// complete or merely incomplete.
func corruption(line string) (rune, error) {
	_, err := chunks.Parse(line)
	var perr *parse.Error
	if err == nil || errors.As(err, &perr) && perr.AtEOF() {
		return 0, nil
	}
	if perr == nil {
		return 0, err
	}
	return unquote(perr.Unexpected)
}

// complete returns the closing characters an incomplete line is missing, by repeatedly
// appending the closer the parser expects at the end of input.
func complete(line string) (string, error) {
	completion := []rune{}
	for {
		_, err := chunks.Parse(line + string(completion))
		if err == nil {
			return string(completion), nil
		}
		var perr *parse.Error
		if !errors.As(err, &perr) || !perr.AtEOF() {
			return "", fmt.Errorf("cannot complete %q: %w", line, err)
		}
		closer := closing(perr.Expected)
		if closer == 0 {
			return "", fmt.Errorf("cannot complete %q: %w", line, err)
		}
		completion = append(completion, closer)
	}
}

// closing returns the single closing character among the expected alternatives, or 0. Openers
// are always acceptable inside a chunk and are ignored.
func closing(expected []string) rune {
	var closer rune
	for _, quoted := range expected {
		r, err := unquote(quoted)
		if err != nil || !isCloser(r) {
			continue
		}
		if closer != 0 {
			return 0
		}
		closer = r
	}
	return closer
}

func isCloser(r rune) bool {
	for _, want := range pairs {
		if r == want {
			return true
		}
	}
	return false
}

func unquote(quoted string) (rune, error) {
	s, err := strconv.Unquote(quoted)
	if err != nil || len([]rune(s)) != 1 {
		return 0, fmt.Errorf("not a single character: %s", quoted)
	}
	return []rune(s)[0], nil
}
