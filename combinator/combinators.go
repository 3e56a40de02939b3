package combinator

// Map applies fn to the value produced by parser.
func Map[A, B any](parser Parser[A], fn func(A) B) Parser[B] {
	return Func[B](func(input string) (string, B, error) {
		rest, value, err := parser.Parse(input)
		if err != nil {
			var zero B
			return rest, zero, err
		}
		return rest, fn(value), nil
	})
}

// Pair runs first and then second on the remainder, producing both values.
func Pair[A, B any](first Parser[A], second Parser[B]) Parser[Tuple[A, B]] {
	return Func[Tuple[A, B]](func(input string) (string, Tuple[A, B], error) {
		rest, a, err := first.Parse(input)
		if err != nil {
			return rest, Tuple[A, B]{}, err
		}
		rest, b, err := second.Parse(rest)
		if err != nil {
			return rest, Tuple[A, B]{}, err
		}
		return rest, Tuple[A, B]{a, b}, nil
	})
}

// Left is Pair keeping only the value of first.
func Left[A, B any](first Parser[A], second Parser[B]) Parser[A] {
	return Map(Pair(first, second), func(t Tuple[A, B]) A { return t.First })
}

// Right is Pair keeping only the value of second.
func Right[A, B any](first Parser[A], second Parser[B]) Parser[B] {
	return Map(Pair(first, second), func(t Tuple[A, B]) B { return t.Second })
}

// Either tries first and, if it does not match, second from the same input.
//
// The first match wins.
func Either[T any](first, second Parser[T]) Parser[T] {
	return Func[T](func(input string) (string, T, error) {
		rest, value, err := first.Parse(input)
		if err == nil || !IsMismatch(err) {
			return rest, value, err
		}
		return second.Parse(input)
	})
}

// Pred matches if parser matches and predicate accepts its value.
//
// A rejected value fails at the original input.
func Pred[T any](parser Parser[T], predicate func(T) bool) Parser[T] {
	return Func[T](func(input string) (string, T, error) {
		rest, value, err := parser.Parse(input)
		var zero T
		if err != nil {
			if !IsMismatch(err) {
				return rest, zero, err
			}
			return input, zero, Fail(input)
		}
		if !predicate(value) {
			return input, zero, Fail(input)
		}
		return rest, value, nil
	})
}

// AndThen runs parser, then the parser returned by next for its value.
//
// This allows later parsing to depend on earlier values, eg. matching a
// closing tag against the name in an opening tag.
func AndThen[A, B any](parser Parser[A], next func(A) Parser[B]) Parser[B] {
	return Func[B](func(input string) (string, B, error) {
		rest, value, err := parser.Parse(input)
		if err != nil {
			var zero B
			return rest, zero, err
		}
		return next(value).Parse(rest)
	})
}

// OneOrMore matches parser at least once, as many times as possible.
func OneOrMore[T any](parser Parser[T]) Parser[[]T] {
	return Func[[]T](func(input string) (string, []T, error) {
		rest, first, err := parser.Parse(input)
		if err != nil {
			if !IsMismatch(err) {
				return rest, nil, err
			}
			return input, nil, Fail(input)
		}
		return repeat(parser, rest, []T{first})
	})
}

// ZeroOrMore matches parser as many times as possible. It only fails if
// parser aborts.
func ZeroOrMore[T any](parser Parser[T]) Parser[[]T] {
	return Func[[]T](func(input string) (string, []T, error) {
		return repeat[T](parser, input, nil)
	})
}

func repeat[T any](parser Parser[T], input string, out []T) (string, []T, error) {
	for {
		rest, value, err := parser.Parse(input)
		if err != nil {
			if !IsMismatch(err) {
				return rest, nil, err
			}
			return input, out, nil
		}
		out = append(out, value)
		// A match that consumed nothing would match forever.
		if len(rest) == len(input) {
			return rest, out, nil
		}
		input = rest
	}
}

// Recognize matches parser and produces the input it consumed, discarding its value.
func Recognize[T any](parser Parser[T]) Parser[string] {
	return Func[string](func(input string) (string, string, error) {
		rest, _, err := parser.Parse(input)
		if err != nil {
			return rest, "", err
		}
		return rest, input[:len(input)-len(rest)], nil
	})
}

// WhitespaceWrap matches parser surrounded by optional whitespace.
func WhitespaceWrap[T any](parser Parser[T]) Parser[T] {
	return Right(Space0(), Left(parser, Space0()))
}
