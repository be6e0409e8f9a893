package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
`

func TestParts(t *testing.T) {
	actual, err := report(sample)
	require.NoError(t, err)
	one, err := partOne(actual)
	require.NoError(t, err)
	require.Equal(t, uint64(198), one)
	two, err := partTwo(actual)
	require.NoError(t, err)
	require.Equal(t, uint64(230), two)
}

func TestRaggedReport(t *testing.T) {
	actual, err := report("101\n11\n")
	require.NoError(t, err)
	_, err = partOne(actual)
	require.EqualError(t, err, "line 2 has 2 bits, expected 3")
}

func TestEmptyReport(t *testing.T) {
	actual, err := report("")
	require.NoError(t, err)
	_, err = partTwo(actual)
	require.EqualError(t, err, "empty report")
}
