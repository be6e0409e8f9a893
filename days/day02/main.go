// Command day02 pilots the submarine through a list of commands.
package main

import (
	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse/tagged"
)

type command struct {
	Direction string `@("forward" | "down" | "up")`
	Units     int    `@Int`
}

var commands = advent.Lines(tagged.MustBuild[command]())

func main() {
	advent.Main(
		advent.PartOne(commands, partOne),
		advent.PartTwo(commands, partTwo),
	)
}

func partOne(commands []command) int {
	horizontal, depth := 0, 0
	for _, c := range commands {
		switch c.Direction {
		case "forward":
			horizontal += c.Units
		case "down":
			depth += c.Units
		case "up":
			depth -= c.Units
		}
	}
	return horizontal * depth
}

func partTwo(commands []command) int {
	horizontal, depth, aim := 0, 0, 0
	for _, c := range commands {
		switch c.Direction {
		case "forward":
			horizontal += c.Units
			depth += aim * c.Units
		case "down":
			aim += c.Units
		case "up":
			aim -= c.Units
		}
	}
	return horizontal * depth
}
