package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent"
)

const sample = `0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
`

func TestParts(t *testing.T) {
	segments, err := advent.LinesOf[segment]()(sample)
	require.NoError(t, err)
	require.Equal(t, segment{point{0, 9}, point{5, 9}}, segments[0])
	require.Equal(t, 5, partOne(segments))
	require.Equal(t, 12, partTwo(segments))
}

func TestMalformedSegment(t *testing.T) {
	_, err := advent.LinesOf[segment]()("0,9 -> 5,9\n8,0 => 0,8\n")
	require.EqualError(t, err, `2:5: unexpected '=' (expected space or "->")`)
}
