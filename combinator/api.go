package combinator

import (
	"errors"
	"fmt"
)

// A Parser consumes a prefix of input.
//
// On success rest is a suffix of input. On failure err is non-nil.
type Parser[T any] interface {
	Parse(input string) (rest string, value T, err error)
}

// Func is a plain function that satisfies Parser.
type Func[T any] func(input string) (string, T, error)

// Parse calls f(input).
func (f Func[T]) Parse(input string) (string, T, error) { return f(input) }

// Unit is the value produced by parsers that only consume syntax.
type Unit = struct{}

// Tuple is the value produced by Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Mismatch is returned when a parser does not match its input.
type Mismatch struct {
	// Remaining input at the point of failure.
	Remaining string
}

// Fail returns a *Mismatch at input.
func Fail(input string) error {
	return &Mismatch{Remaining: input}
}

func (m *Mismatch) Error() string {
	if m.Remaining == "" {
		return "no match at end of input"
	}
	return fmt.Sprintf("no match at %q", preview(m.Remaining))
}

// IsMismatch returns true if err is or wraps a *Mismatch.
func IsMismatch(err error) bool {
	var mismatch *Mismatch
	return errors.As(err, &mismatch)
}

// Remaining returns the failure position recorded in err, if any.
func Remaining(err error) (string, bool) {
	var mismatch *Mismatch
	if errors.As(err, &mismatch) {
		return mismatch.Remaining, true
	}
	return "", false
}

func preview(s string) string {
	const limit = 32
	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + "…"
		}
		n++
	}
	return s
}
