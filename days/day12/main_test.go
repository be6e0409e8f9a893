package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent"
)

const sample = `start-A
start-b
A-c
A-b
b-d
A-end
b-end
`

const larger = `dc-end
HN-start
start-kj
dc-start
dc-HN
LN-dc
HN-end
kj-sa
kj-HN
kj-dc
`

func TestParts(t *testing.T) {
	tunnels, err := advent.LinesOf[tunnel]()(sample)
	require.NoError(t, err)
	require.Equal(t, tunnel{"start", "A"}, tunnels[0])
	require.Equal(t, 10, partOne(tunnels))
	require.Equal(t, 36, partTwo(tunnels))
}

func TestLarger(t *testing.T) {
	tunnels, err := advent.LinesOf[tunnel]()(larger)
	require.NoError(t, err)
	require.Equal(t, 19, partOne(tunnels))
	require.Equal(t, 103, partTwo(tunnels))
}
