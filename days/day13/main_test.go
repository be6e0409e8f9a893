package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent"
)

const sample = `6,10
0,14
9,10
0,3
10,4
4,11
6,0
6,12
4,1
0,13
10,12
3,4
3,0
8,4
1,10
2,14
8,10
9,0

fold along y=7
fold along x=5
`

func TestGrammar(t *testing.T) {
	m, err := advent.Grammar[manual]()(sample)
	require.NoError(t, err)
	require.Len(t, m.Dots, 18)
	require.Equal(t, []fold{{"y", 7}, {"x", 5}}, m.Folds)
}

func TestParts(t *testing.T) {
	m, err := advent.Grammar[manual]()(sample)
	require.NoError(t, err)
	require.Equal(t, 17, partOne(m))
	expected := "\n#####" +
		"\n#...#" +
		"\n#...#" +
		"\n#...#" +
		"\n#####" +
		"\n....." +
		"\n....."
	require.Equal(t, expected, partTwo(m))
}

func TestMalformedFold(t *testing.T) {
	_, err := advent.Grammar[manual]()("1,2\n\nfold along z=3\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "3:12:")
}
