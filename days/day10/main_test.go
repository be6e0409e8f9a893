package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent/parse"
)

const sample = `[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
`

func TestParts(t *testing.T) {
	lines, err := navigation(sample)
	require.NoError(t, err)
	one, err := partOne(lines)
	require.NoError(t, err)
	require.Equal(t, 26397, one)
	two, err := partTwo(lines)
	require.NoError(t, err)
	require.Equal(t, 288957, two)
}

func TestCorruption(t *testing.T) {
	illegal, err := corruption("{([(<{}[<>[]}>{[]{[(<()>")
	require.NoError(t, err)
	require.Equal(t, '}', illegal)

	illegal, err = corruption("[({(<(())[]>[[{[]{<()<>>")
	require.NoError(t, err)
	require.Equal(t, rune(0), illegal)
}

func TestComplete(t *testing.T) {
	completion, err := complete("[({(<(())[]>[[{[]{<()<>>")
	require.NoError(t, err)
	require.Equal(t, "}}]])})]", completion)

	completion, err = complete("()[]")
	require.NoError(t, err)
	require.Equal(t, "", completion)
}

func TestClosingIgnoresOpeners(t *testing.T) {
	_, err := chunks.Parse("{<>")
	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	require.Greater(t, len(perr.Expected), 1)
	require.Equal(t, '}', closing(perr.Expected))

	require.Equal(t, rune(0), closing([]string{"'('", "'['"}))
}
