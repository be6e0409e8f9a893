package parse

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

// Satisfy consumes a single rune matching pred.
//
// "label" describes the accepted runes in error messages.
func Satisfy(label string, pred func(rune) bool) Parser[rune] {
	return func(in Input) (rune, Input, error) {
		r, ok := in.Peek()
		if !ok || !pred(r) {
			return 0, in, expected(in, label)
		}
		_, rest := in.Next()
		return r, rest, nil
	}
}

// Rune matches exactly r.
func Rune(r rune) Parser[rune] {
	return Satisfy(quoteRune(r), func(c rune) bool { return c == r })
}

// AnyRune matches any single rune.
func AnyRune() Parser[rune] {
	return Satisfy("any character", func(rune) bool { return true })
}

// OneOf matches any rune in chars.
func OneOf(chars string) Parser[rune] {
	return Satisfy("one of "+strconv.Quote(chars), func(r rune) bool {
		return strings.ContainsRune(chars, r)
	})
}

// NoneOf matches any rune not in chars.
func NoneOf(chars string) Parser[rune] {
	return Satisfy("none of "+strconv.Quote(chars), func(r rune) bool {
		return !strings.ContainsRune(chars, r)
	})
}

// Digit matches a decimal digit.
func Digit() Parser[rune] {
	return Satisfy("digit", func(r rune) bool { return r >= '0' && r <= '9' })
}

// HexDigit matches a hexadecimal digit of either case.
func HexDigit() Parser[rune] {
	return Satisfy("hex digit", func(r rune) bool {
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	})
}

// Upper matches an upper case letter.
func Upper() Parser[rune] { return Satisfy("upper case letter", unicode.IsUpper) }

// Lower matches a lower case letter.
func Lower() Parser[rune] { return Satisfy("lower case letter", unicode.IsLower) }

// Letter matches any letter.
func Letter() Parser[rune] { return Satisfy("letter", unicode.IsLetter) }

// Space matches a single space or tab.
func Space() Parser[rune] {
	return Satisfy("space", func(r rune) bool { return r == ' ' || r == '\t' })
}

// Spaces skips zero or more spaces or tabs.
//
// Unlike unicode.IsSpace, newlines are not skipped as most puzzle inputs are line oriented.
func Spaces() Parser[string] {
	return Recognize(Many(Space()))
}

// Newline matches "\n" or "\r\n".
func Newline() Parser[rune] {
	return Choice(
		Rune('\n'),
		Then(Rune('\r'), Rune('\n')),
	).Label("newline")
}

// String matches the literal s.
//
// The match is atomic: if s does not match in full, no input is consumed.
func String(s string) Parser[string] {
	label := strconv.Quote(s)
	return func(in Input) (string, Input, error) {
		if !strings.HasPrefix(in.Rest(), s) {
			return "", in, expected(in, label)
		}
		return s, in.Advance(len(s)), nil
	}
}

// EOF matches the end of input.
func EOF() Parser[struct{}] {
	return func(in Input) (struct{}, Input, error) {
		if !in.EOF() {
			return struct{}{}, in, expected(in, EndOfInput)
		}
		return struct{}{}, in, nil
	}
}

// Uint parses an unsigned decimal integer.
//
// Values that do not fit in T fail with an *Error wrapping a *strconv.NumError.
func Uint[T constraints.Unsigned]() Parser[T] {
	digits := Recognize(Many1(Digit())).Label("integer")
	return TryMap(digits, func(s string) (T, error) {
		n, err := strconv.ParseUint(s, 10, 64)
		if err == nil && uint64(T(n)) != n {
			err = &strconv.NumError{Func: "ParseUint", Num: s, Err: strconv.ErrRange}
		}
		return T(n), err
	})
}

// Int parses an optionally signed decimal integer.
//
// Values that do not fit in T fail with an *Error wrapping a *strconv.NumError.
func Int[T constraints.Signed]() Parser[T] {
	sign := Optional(Recognize(OneOf("+-")), "")
	digits := Recognize(Seq2(sign, Many1(Digit()), func(string, []rune) struct{} { return struct{}{} })).Label("integer")
	return TryMap(digits, func(s string) (T, error) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil && int64(T(n)) != n {
			err = &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrRange}
		}
		return T(n), err
	})
}
