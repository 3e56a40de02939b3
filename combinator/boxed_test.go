package combinator

import (
	"strconv"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

func TestBox(t *testing.T) {
	boxed := Box(Identifier())
	require.Same(t, boxed, Box[string](boxed))
	rest, value, err := boxed.Parse("abc def")
	require.NoError(t, err)
	require.Equal(t, "abc", value)
	require.Equal(t, " def", rest)
}

// A recursive grammar: sum of nested parenthesised digit lists, eg. "(1(2 3))".
func TestLazyRecursion(t *testing.T) {
	var term Parser[int]
	digit := Map(Char(unicode.IsDigit), func(r rune) int {
		n, _ := strconv.Atoi(string(r))
		return n
	})
	group := Right(Literal("("), Left(
		ZeroOrMore(WhitespaceWrap(Lazy(func() Parser[int] { return term }))),
		Literal(")"),
	))
	term = Box(Either(digit, Map(group, func(values []int) int {
		sum := 0
		for _, v := range values {
			sum += v
		}
		return sum
	})))

	rest, value, err := term.Parse("(1 (2 3) ((4)))")
	require.NoError(t, err)
	require.Equal(t, 10, value)
	require.Equal(t, "", rest)

	_, _, err = term.Parse("(1 (2 3)")
	require.Equal(t, &Mismatch{Remaining: ""}, err)
}
