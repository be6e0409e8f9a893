package parse

import (
	"fmt"
	"io"
)

// Trace writes each attempt to parse p, and its outcome, to w.
//
// Each attempt is written as the position, the next few characters of input and name. Failures
// are followed by the error.
func Trace[T any](w io.Writer, name string, p Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		fmt.Fprintf(w, "%s %q %s\n", in.Pos(), peek(in, 8), name)
		v, rest, err := p(in)
		if err != nil {
			fmt.Fprintf(w, "%s %q %s failed: %s\n", in.Pos(), peek(in, 8), name, err)
		}
		return v, rest, err
	}
}

func peek(in Input, n int) string {
	rest := []rune(in.Rest())
	if len(rest) > n {
		rest = rest[:n]
	}
	return string(rest)
}
