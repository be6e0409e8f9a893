package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
`

func TestParts(t *testing.T) {
	rows, err := risks(sample)
	require.NoError(t, err)
	one, err := partOne(rows)
	require.NoError(t, err)
	require.Equal(t, 40, one)
	two, err := partTwo(rows)
	require.NoError(t, err)
	require.Equal(t, 315, two)
}

func TestRaggedMap(t *testing.T) {
	rows, err := risks("123\n45\n")
	require.NoError(t, err)
	_, err = partOne(rows)
	require.ErrorIs(t, err, errRagged)
	_, err = partTwo(rows)
	require.ErrorIs(t, err, errRagged)
}
