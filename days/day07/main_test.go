package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParts(t *testing.T) {
	actual, err := positions("16,1,2,0,4,2,7,1,2,14\n")
	require.NoError(t, err)
	require.Equal(t, 37, partOne(actual))
	require.Equal(t, 168, partTwo(actual))
}

func TestDanglingSeparator(t *testing.T) {
	_, err := positions("16,1,\n")
	require.EqualError(t, err, `1:6: unexpected '\n' (expected integer)`)
}
