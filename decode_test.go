package advent_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

type cave struct {
	Name  string
	Small bool
}

func (cave) Grammar() parse.Parser[cave] {
	big := parse.Map(parse.Recognize(parse.Many1(parse.Upper())), func(name string) cave { return cave{Name: name} })
	small := parse.Map(parse.Recognize(parse.Many1(parse.Lower())), func(name string) cave { return cave{Name: name, Small: true} })
	return big.Or(small)
}

func TestLinesPreservesOrder(t *testing.T) {
	actual, err := advent.Lines(parse.Int[int]())("3\n1\n2\n")
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2}, actual)

	actual, err = advent.Lines(parse.Int[int]())("3\r\n1\r\n2")
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2}, actual)
}

func TestLinesEmpty(t *testing.T) {
	actual, err := advent.Lines(parse.Int[int]())("")
	require.NoError(t, err)
	require.Empty(t, actual)
}

func TestLinesRejectsMalformedRecord(t *testing.T) {
	for k := 0; k < 5; k++ {
		records := []string{"10", "20", "30", "40", "50"}
		records[k] = "1O"
		actual, err := advent.Lines(parse.Int[int]())(strings.Join(records, "\n") + "\n")
		require.Error(t, err)
		require.Nil(t, actual)

		var perr *parse.Error
		require.ErrorAs(t, err, &perr)
		require.Equal(t, k+1, perr.Pos.Line)
		require.Equal(t, 2, perr.Pos.Column)
		require.Equal(t, k*3+1, perr.Pos.Offset)
	}
}

func TestLinesRejectsTrailingCharacters(t *testing.T) {
	_, err := advent.Lines(parse.Int[int]())("1\n2 \n3\n")
	require.EqualError(t, err, `2:2: unexpected ' ' (expected digit or end of input)`)
}

func TestLinesOf(t *testing.T) {
	actual, err := advent.LinesOf[cave]()("start\nAB\nc\n")
	require.NoError(t, err)
	require.Equal(t, []cave{{"start", true}, {"AB", false}, {"c", true}}, actual)
}

func TestGrammarWhole(t *testing.T) {
	actual, err := advent.Grammar[cave]()("XY")
	require.NoError(t, err)
	require.Equal(t, cave{Name: "XY"}, actual)

	_, err = advent.Grammar[cave]()("XY\n")
	require.EqualError(t, err, `1:3: unexpected '\n' (expected upper case letter or end of input)`)
}

func TestText(t *testing.T) {
	actual, err := advent.Text()("raw\ntext\n")
	require.NoError(t, err)
	require.Equal(t, "raw\ntext\n", actual)

	_, err = advent.Text()("\xff")
	require.ErrorIs(t, err, advent.ErrInvalidUTF8)
}

func TestPartPrintsOneLine(t *testing.T) {
	out := &bytes.Buffer{}
	p := advent.PartTwo(advent.Lines(parse.Int[int]()), func(values []int) int { return len(values) })
	require.Equal(t, 2, p.Number())
	require.NoError(t, p.Run("5\n6\n", out))
	require.Equal(t, "Part 2: 2\n", out.String())
}

func TestPartPrintsMultiLineValues(t *testing.T) {
	out := &bytes.Buffer{}
	p := advent.PartOne(advent.Text(), func(s string) string { return "\n" + strings.TrimSpace(s) })
	require.NoError(t, p.Run("#.#\n.#.\n", out))
	require.Equal(t, "Part 1: \n#.#\n.#.\n", out.String())
}

func TestPartPrintsNothingOnParseFailure(t *testing.T) {
	out := &bytes.Buffer{}
	called := false
	p := advent.PartOne(advent.Lines(parse.Int[int]()), func(values []int) int {
		called = true
		return 0
	})
	err := p.Run("1\n?\n", out)
	require.Error(t, err)
	require.False(t, called)
	require.Empty(t, out.String())
}

func TestPartSolverFailure(t *testing.T) {
	out := &bytes.Buffer{}
	p := advent.PartTwoE(advent.Text(), func(string) (int, error) { return 0, errors.New("no winner") })
	err := p.Run("", out)
	require.EqualError(t, err, "part 2: solver failed: no winner")
	require.Equal(t, advent.KindSolve, advent.Classify(err))
	require.Empty(t, out.String())
}

func TestClassify(t *testing.T) {
	require.Equal(t, advent.KindParse, advent.Classify(errors.New("anything")))
	require.Equal(t, advent.KindParse, advent.Classify(parse.Errorf(parse.Start, "bad")))
	_, err := parse.Uint[uint8]().Parse("1000")
	require.Equal(t, advent.KindNumber, advent.Classify(err))
	require.Equal(t, "malformed number", advent.KindNumber.String())
}
