package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent/parse"
)

func TestTrace(t *testing.T) {
	w := &strings.Builder{}
	number := parse.Trace(w, "number", parse.Int[int]())
	_, err := parse.SepBy1(number, parse.Rune(',')).Parse("1,x")
	require.Error(t, err)
	require.Equal(t, `1:1 "1,x" number
1:3 "x" number
1:3 "x" number failed: 1:3: unexpected 'x' (expected integer)
`, w.String())
}
