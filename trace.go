package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/markup/combinator"
)

// Trace the parse to "w".
//
// Each attempt to match a rule is written on its own line, indented by
// element depth.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

func rule[T any](g *grammar, name string, depth int, parser combinator.Parser[T]) combinator.Parser[T] {
	if g.trace == nil {
		return parser
	}
	indent := strings.Repeat("  ", depth-1)
	return combinator.Func[T](func(input string) (string, T, error) {
		fmt.Fprintf(g.trace, "%s%s %s\n", indent, near(input), name)
		return parser.Parse(input)
	})
}
