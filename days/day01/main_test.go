package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

const sample = `199
200
208
210
200
207
240
269
260
263
`

func TestParts(t *testing.T) {
	depths, err := advent.Lines(parse.Uint[uint]())(sample)
	require.NoError(t, err)
	require.Equal(t, 7, partOne(depths))
	require.Equal(t, 5, partTwo(depths))
}

func TestHarness(t *testing.T) {
	depths := advent.Lines(parse.Uint[uint]())
	out := &bytes.Buffer{}
	h, err := advent.New(advent.Input(strings.NewReader(sample)), advent.Output(out))
	require.NoError(t, err)
	err = h.Run(advent.PartOne(depths, partOne), advent.PartTwo(depths, partTwo))
	require.NoError(t, err)
	require.Equal(t, "Part 1: 7\nPart 2: 5\n", out.String())
}

func TestNegativeDepth(t *testing.T) {
	h, err := advent.New(advent.Input(strings.NewReader("1\n-2\n")), advent.Output(&bytes.Buffer{}))
	require.NoError(t, err)
	depths := advent.Lines(parse.Uint[uint]())
	err = h.Run(advent.PartOne(depths, partOne), advent.PartTwo(depths, partTwo))
	require.EqualError(t, err, `part 1: parse error: 2:1: unexpected '-' (expected integer)`)
}
