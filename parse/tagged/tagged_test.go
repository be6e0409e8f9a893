package tagged_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent/parse"
	"github.com/advent-go/advent/parse/tagged"
)

type command struct {
	Direction string `@("forward" | "up" | "down")`
	Units     int    `@Int`
}

type fold struct {
	Axis string `"fold" "along" @("x" | "y") "="`
	Line int    `@Int`
}

func TestLineGrammar(t *testing.T) {
	p := tagged.MustBuild[command]()
	actual, err := p.Parse("forward 5")
	require.NoError(t, err)
	require.Equal(t, command{Direction: "forward", Units: 5}, actual)
}

func TestLineGrammarStopsAtNewline(t *testing.T) {
	p := parse.Many1(parse.Line(tagged.MustBuild[command]()))
	actual, err := p.Parse("forward 5\ndown 5\nup 3\n")
	require.NoError(t, err)
	require.Equal(t, []command{{"forward", 5}, {"down", 5}, {"up", 3}}, actual)
}

func TestLineGrammarComposes(t *testing.T) {
	coords := parse.Line(parse.Recognize(parse.Many1(parse.Digit())))
	p := parse.Seq2(coords, tagged.MustBuild[fold](), func(_ string, f fold) fold { return f })
	actual, err := p.Parse("12\nfold along y=7")
	require.NoError(t, err)
	require.Equal(t, fold{Axis: "y", Line: 7}, actual)
}

func TestLineGrammarErrorIsRebased(t *testing.T) {
	p := parse.Many1(parse.Line(tagged.MustBuild[command]()))
	_, err := p.Parse("forward 5\ndown x\n")
	require.Error(t, err)

	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 2, perr.Pos.Line)
	require.Equal(t, 6, perr.Pos.Column)
	require.Equal(t, 15, perr.Pos.Offset)
}

func TestInvalidGrammar(t *testing.T) {
	type invalid struct {
		Value string `@NoSuchToken`
	}
	_, err := tagged.Build[invalid]()
	require.Error(t, err)
}
