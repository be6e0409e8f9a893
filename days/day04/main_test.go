package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent"
)

const sample = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`

func TestGrammar(t *testing.T) {
	g, err := advent.Grammar[game]()(sample)
	require.NoError(t, err)
	require.Len(t, g.Draws, 27)
	require.Len(t, g.Boards, 3)
	require.Equal(t, []int{8, 2, 23, 4, 24}, g.Boards[0][1])
}

func TestParts(t *testing.T) {
	g, err := advent.Grammar[game]()(sample)
	require.NoError(t, err)
	one, err := partOne(g)
	require.NoError(t, err)
	require.Equal(t, 4512, one)
	two, err := partTwo(g)
	require.NoError(t, err)
	require.Equal(t, 1924, two)
}

func TestNoWinner(t *testing.T) {
	g, err := advent.Grammar[game]()("1,2\n\n1 3\n4 5\n")
	require.NoError(t, err)
	_, err = partOne(g)
	require.ErrorIs(t, err, errNoWinner)
}
