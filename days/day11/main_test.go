package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
`

func TestParts(t *testing.T) {
	rows, err := energy(sample)
	require.NoError(t, err)
	require.Equal(t, 1656, partOne(rows))
	require.Equal(t, 195, partTwo(rows))
	// Solvers work on a copy.
	require.Equal(t, 5, rows[0][0])
}

func TestStep(t *testing.T) {
	rows, err := energy("11111\n19991\n19191\n19991\n11111\n")
	require.NoError(t, err)
	g := grid(rows)
	require.Equal(t, 9, g.step())
	require.Equal(t, []int{3, 4, 5, 4, 3}, g[0])
	require.Equal(t, []int{4, 0, 0, 0, 4}, g[1])
}
