package parse

// Pure succeeds with v without consuming input.
func Pure[T any](v T) Parser[T] {
	return func(in Input) (T, Input, error) {
		return v, in, nil
	}
}

// Map the value of a successful parse.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) (U, Input, error) {
		v, rest, err := p(in)
		if err != nil {
			var zero U
			return zero, in, err
		}
		return f(v), rest, nil
	}
}

// TryMap maps the value of a successful parse with a fallible conversion.
//
// Conversion errors are reported at the position p started at.
func TryMap[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(in Input) (U, Input, error) {
		var zero U
		v, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}
		out, err := f(v)
		if err != nil {
			perr := *AnnotateError(in.pos, err)
			perr.committed = in.Consumed(rest)
			return zero, in, &perr
		}
		return out, rest, nil
	}
}

// Skip parses p then q, keeping the value of p.
func Skip[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return Seq2(p, q, func(t T, _ U) T { return t })
}

// Then parses p then q, keeping the value of q.
func Then[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Seq2(p, q, func(_ T, u U) U { return u })
}

// Between parses open, p, then close, keeping the value of p.
func Between[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return Seq3(open, p, close, func(_ O, t T, _ C) T { return t })
}

// Seq2 parses a then b and combines their values.
func Seq2[A, B, R any](a Parser[A], b Parser[B], f func(A, B) R) Parser[R] {
	return func(in Input) (R, Input, error) {
		var zero R
		av, rest, err := a(in)
		if err != nil {
			return zero, in, err
		}
		bv, rest, err := step(in, rest, b)
		if err != nil {
			return zero, in, err
		}
		return f(av, bv), rest, nil
	}
}

// Seq3 parses a, b then c and combines their values.
func Seq3[A, B, C, R any](a Parser[A], b Parser[B], c Parser[C], f func(A, B, C) R) Parser[R] {
	return func(in Input) (R, Input, error) {
		var zero R
		av, rest, err := a(in)
		if err != nil {
			return zero, in, err
		}
		bv, rest, err := step(in, rest, b)
		if err != nil {
			return zero, in, err
		}
		cv, rest, err := step(in, rest, c)
		if err != nil {
			return zero, in, err
		}
		return f(av, bv, cv), rest, nil
	}
}

// Seq4 parses a, b, c then d and combines their values.
func Seq4[A, B, C, D, R any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], f func(A, B, C, D) R) Parser[R] {
	return func(in Input) (R, Input, error) {
		var zero R
		av, rest, err := a(in)
		if err != nil {
			return zero, in, err
		}
		bv, rest, err := step(in, rest, b)
		if err != nil {
			return zero, in, err
		}
		cv, rest, err := step(in, rest, c)
		if err != nil {
			return zero, in, err
		}
		dv, rest, err := step(in, rest, d)
		if err != nil {
			return zero, in, err
		}
		return f(av, bv, cv, dv), rest, nil
	}
}

// step runs the next element of a sequence that began at start.
//
// Once a sequence has consumed input its failures are committed. A failure at the position the
// previous element stopped at also reports what that element would have accepted.
func step[T any](start, cur Input, p Parser[T]) (T, Input, error) {
	v, rest, err := p(cur)
	if err == nil {
		return v, rest, nil
	}
	err = cur.explain(err)
	if start.Consumed(cur) {
		err = commit(err)
	}
	return v, rest, err
}

// Choice tries each parser in turn, returning the first success.
//
// An alternative is only attempted if the previous one failed without consuming input. Wrap an
// alternative in Attempt to allow backtracking over it.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		var (
			zero T
			last error
		)
		for _, p := range parsers {
			v, rest, err := p(in)
			if err == nil {
				if last != nil && !in.Consumed(rest) {
					rest = rest.hinted(last)
				}
				return v, rest, nil
			}
			if isCommitted(err) {
				return zero, in, err
			}
			if last == nil {
				last = err
			} else {
				last = merge(last, err)
			}
		}
		if last == nil {
			last = expected(in)
		}
		return zero, in, last
	}
}

// Attempt p, behaving as if no input was consumed if it fails.
func Attempt[T any](p Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		v, rest, err := p(in)
		if err != nil {
			return v, in, uncommit(err)
		}
		return v, rest, nil
	}
}

// Optional parses p, returning def if p fails without consuming input.
func Optional[T any](p Parser[T], def T) Parser[T] {
	return func(in Input) (T, Input, error) {
		v, rest, err := p(in)
		if err == nil {
			return v, rest, nil
		}
		if isCommitted(err) {
			return v, in, err
		}
		return def, in.hinted(err), nil
	}
}

// Many parses p zero or more times.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		return many(in, in, p, nil)
	}
}

// Many1 parses p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		first, rest, err := p(in)
		if err != nil {
			return nil, in, err
		}
		return many(in, rest, p, []T{first})
	}
}

func many[T any](start, cur Input, p Parser[T], out []T) ([]T, Input, error) {
	for {
		v, rest, err := p(cur)
		if err != nil {
			if isCommitted(err) {
				return nil, start, err
			}
			return out, cur.hinted(err), nil
		}
		// Stop on a match that consumed nothing, it would otherwise repeat forever.
		if !cur.Consumed(rest) {
			return append(out, v), rest, nil
		}
		out = append(out, v)
		cur = rest
	}
}

// SepBy parses zero or more p separated by sep.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Optional(SepBy1(p, sep), nil)
}

// SepBy1 parses one or more p separated by sep.
//
// A separator must be followed by p.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Seq2(p, Many(Then(sep, p)), func(first T, tail []T) []T {
		return append([]T{first}, tail...)
	})
}

// Count parses exactly n occurrences of p.
func Count[T any](n int, p Parser[T]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		out := make([]T, 0, n)
		cur := in
		for i := 0; i < n; i++ {
			v, rest, err := step(in, cur, p)
			if err != nil {
				return nil, in, err
			}
			out = append(out, v)
			cur = rest
		}
		return out, cur, nil
	}
}

// Recognize returns the text consumed by p rather than its value.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(in Input) (string, Input, error) {
		_, rest, err := p(in)
		if err != nil {
			return "", in, err
		}
		return in.slice(rest), rest, nil
	}
}

// Line parses p followed by a newline or the end of input.
func Line[T any](p Parser[T]) Parser[T] {
	return Skip(p, Choice(Map(Newline(), func(rune) struct{} { return struct{}{} }), EOF()))
}
