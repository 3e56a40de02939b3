package combinator

import "sync"

// Boxed holds a Parser behind an interface.
//
// Go's generic combinators return interface values already, but a grammar
// rule that refers to itself still needs a single named value to refer to.
// Boxed is that value.
type Boxed[T any] struct {
	parser Parser[T]
}

var _ Parser[int] = &Boxed[int]{}

// Box wraps parser.
func Box[T any](parser Parser[T]) *Boxed[T] {
	if boxed, ok := parser.(*Boxed[T]); ok {
		return boxed
	}
	return &Boxed[T]{parser: parser}
}

// Parse delegates to the boxed parser.
func (b *Boxed[T]) Parse(input string) (string, T, error) {
	return b.parser.Parse(input)
}

// Lazy defers calling build until the returned parser is first used.
//
// This allows recursive rules to be declared before they are complete:
//
//	var expr combinator.Parser[int]
//	expr = combinator.Either(number, combinator.Lazy(func() combinator.Parser[int] { return parens(expr) }))
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var (
		once   sync.Once
		parser Parser[T]
	)
	return Func[T](func(input string) (string, T, error) {
		once.Do(func() { parser = build() })
		return parser.Parse(input)
	})
}
