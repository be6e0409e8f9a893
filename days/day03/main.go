// Command day03 decodes the submarine's binary diagnostic report.
package main

import (
	"errors"
	"fmt"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

var report = advent.Lines(parse.Recognize(parse.Many1(parse.OneOf("01"))))

func main() {
	advent.Main(
		advent.PartOneE(report, partOne),
		advent.PartTwoE(report, partTwo),
	)
}

func partOne(report []string) (uint64, error) {
	width, err := reportWidth(report)
	if err != nil {
		return 0, err
	}
	var gamma, epsilon uint64
	for bit := 0; bit < width; bit++ {
		gamma <<= 1
		epsilon <<= 1
		if mostCommon(report, bit) == '1' {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	return gamma * epsilon, nil
}

func partTwo(report []string) (uint64, error) {
	width, err := reportWidth(report)
	if err != nil {
		return 0, err
	}
	oxygen, err := rating(report, width, func(common byte) byte { return common })
	if err != nil {
		return 0, fmt.Errorf("oxygen generator rating: %w", err)
	}
	scrubber, err := rating(report, width, func(common byte) byte { return '0' + '1' - common })
	if err != nil {
		return 0, fmt.Errorf("CO2 scrubber rating: %w", err)
	}
	return oxygen * scrubber, nil
}

// mostCommon returns the most common value of a bit position, preferring '1' on a tie.
func mostCommon(report []string, bit int) byte {
	ones := 0
	for _, line := range report {
		if line[bit] == '1' {
			ones++
		}
	}
	if ones*2 >= len(report) {
		return '1'
	}
	return '0'
}

// rating repeatedly keeps the numbers whose bit matches the criteria until one remains.
func rating(report []string, width int, criteria func(common byte) byte) (uint64, error) {
	candidates := report
	for bit := 0; bit < width && len(candidates) > 1; bit++ {
		want := criteria(mostCommon(candidates, bit))
		kept := []string{}
		for _, line := range candidates {
			if line[bit] == want {
				kept = append(kept, line)
			}
		}
		candidates = kept
	}
	if len(candidates) != 1 {
		return 0, fmt.Errorf("%d candidates remain", len(candidates))
	}
	var value uint64
	for _, c := range candidates[0] {
		value = value<<1 | uint64(c-'0')
	}
	return value, nil
}

func reportWidth(report []string) (int, error) {
	if len(report) == 0 {
		return 0, errors.New("empty report")
	}
	width := len(report[0])
	for i, line := range report {
		if len(line) != width {
			return 0, fmt.Errorf("line %d has %d bits, expected %d", i+1, len(line), width)
		}
	}
	if width > 64 {
		return 0, fmt.Errorf("%d bit numbers are too wide", width)
	}
	return width, nil
}
