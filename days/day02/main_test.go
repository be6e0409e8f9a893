package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `forward 5
down 5
forward 8
up 3
down 8
forward 2
`

func TestParts(t *testing.T) {
	actual, err := commands(sample)
	require.NoError(t, err)
	require.Equal(t, command{"forward", 5}, actual[0])
	require.Equal(t, 150, partOne(actual))
	require.Equal(t, 900, partTwo(actual))
}

func TestUnknownDirection(t *testing.T) {
	_, err := commands("forward 5\nbackward 2\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "2:1:")
}
