package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent"
)

const sample = "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf\n"

func TestParts(t *testing.T) {
	entries, err := advent.LinesOf[entry]()(sample)
	require.NoError(t, err)
	require.Len(t, entries[0].Signals, 10)
	require.Len(t, entries[0].Outputs, 4)
	require.Equal(t, 0, partOne(entries))
	two, err := partTwo(entries)
	require.NoError(t, err)
	require.Equal(t, 5353, two)
}

func TestSolve(t *testing.T) {
	entries, err := advent.LinesOf[entry]()(sample)
	require.NoError(t, err)
	digits, err := solve(entries[0].Signals)
	require.NoError(t, err)
	// "ab" is the only two segment pattern.
	require.Equal(t, 1, digits[pattern(0b0000011)])
}

func TestInconsistentSignals(t *testing.T) {
	entries, err := advent.LinesOf[entry]()("ab ab ab ab ab ab ab ab ab ab | ab\n")
	require.NoError(t, err)
	_, err = partTwo(entries)
	require.Error(t, err)
}
