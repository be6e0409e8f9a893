package advent_test

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

func TestErrorReporting(t *testing.T) {
	err := &advent.Error{Part: 2, Kind: advent.KindParse, Err: parse.Errorf(parse.Position{Offset: 4, Line: 2, Column: 3}, "bad")}
	require.EqualError(t, err, "part 2: parse error: 2:3: bad")

	err = &advent.Error{Kind: advent.KindIO, Err: io.ErrUnexpectedEOF}
	require.EqualError(t, err, "i/o error: unexpected EOF")
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	require.Equal(t, "Kind(9)", advent.Kind(9).String())
}

func TestClassifyIO(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "input.txt", Err: fs.ErrNotExist}
	require.Equal(t, advent.KindIO, advent.Classify(fmt.Errorf("reading: %w", pathErr)))
	require.Equal(t, advent.KindIO, advent.Classify(io.ErrClosedPipe))
}

func TestClassifyKeepsKind(t *testing.T) {
	err := fmt.Errorf("context: %w", &advent.Error{Part: 1, Kind: advent.KindSolve, Err: errors.New("stuck")})
	require.Equal(t, advent.KindSolve, advent.Classify(err))
}
