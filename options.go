package markup

import "fmt"

// DefaultMaxDepth is the nesting limit used unless overridden with MaxDepth.
const DefaultMaxDepth = 1000

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// MaxDepth limits how deeply elements with closing tags may nest.
//
// The outermost element is at depth 1. Zero disables the limit, in which
// case deeply nested input is bounded only by the goroutine stack.
func MaxDepth(depth int) Option {
	return func(p *Parser) error {
		if depth < 0 {
			return fmt.Errorf("invalid maximum depth %d", depth)
		}
		p.maxDepth = depth
		return nil
	}
}
