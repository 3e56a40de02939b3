package combinator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Literal matches expected exactly.
func Literal(expected string) Parser[Unit] {
	return Func[Unit](func(input string) (string, Unit, error) {
		if strings.HasPrefix(input, expected) {
			return input[len(expected):], Unit{}, nil
		}
		return input, Unit{}, Fail(input)
	})
}

// AnyChar matches a single UTF-8 encoded rune.
func AnyChar() Parser[rune] {
	return Func[rune](anyChar)
}

func anyChar(input string) (string, rune, error) {
	if input == "" {
		return input, 0, Fail(input)
	}
	r, size := utf8.DecodeRuneInString(input)
	return input[size:], r, nil
}

// Char matches a single rune satisfying predicate.
func Char(predicate func(r rune) bool) Parser[rune] {
	return Pred(AnyChar(), predicate)
}

// Identifier matches a letter followed by any number of letters, digits or hyphens.
func Identifier() Parser[string] {
	return Func[string](identifier)
}

func identifier(input string) (string, string, error) {
	r, size := utf8.DecodeRuneInString(input)
	if size == 0 || !unicode.IsLetter(r) {
		return input, "", Fail(input)
	}
	end := size
	for end < len(input) {
		r, size = utf8.DecodeRuneInString(input[end:])
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-' {
			break
		}
		end += size
	}
	return input[end:], input[:end], nil
}

// WhitespaceChar matches a single Unicode whitespace rune.
func WhitespaceChar() Parser[rune] {
	return Char(unicode.IsSpace)
}

// Space0 matches zero or more whitespace runes.
func Space0() Parser[[]rune] {
	return ZeroOrMore(WhitespaceChar())
}

// Space1 matches one or more whitespace runes.
func Space1() Parser[[]rune] {
	return OneOrMore(WhitespaceChar())
}
