package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent"
)

const sample = `NNCB

CH -> B
HH -> N
CB -> H
NH -> C
HB -> C
HC -> B
HN -> C
NN -> C
BH -> H
BN -> B
BB -> N
BC -> B
CC -> N
CN -> C
NC -> B
NB -> B
`

func TestParts(t *testing.T) {
	m, err := advent.Grammar[manual]()(sample)
	require.NoError(t, err)
	require.Equal(t, "NNCB", m.Template)
	require.Equal(t, 'B', m.Rules[pair{'C', 'H'}])

	one, err := partOne(m)
	require.NoError(t, err)
	require.Equal(t, uint64(1588), one)
	two, err := partTwo(m)
	require.NoError(t, err)
	require.Equal(t, uint64(2188189693529), two)
}

func TestMalformedRule(t *testing.T) {
	_, err := advent.Grammar[manual]()("NN\n\nNN => C\n")
	require.EqualError(t, err, `3:3: unexpected ' ' (expected " -> ")`)
}
