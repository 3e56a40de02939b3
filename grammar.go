package markup

import (
	"io"

	"github.com/alecthomas/markup/combinator"
)

type tag = combinator.Tuple[string, []Attribute]

// grammar builds the element rules.
//
// depth is the nesting level of the element being parsed, starting at 1.
type grammar struct {
	maxDepth int
	trace    io.Writer
}

var bare = &grammar{}

// QuotedString matches a double-quoted string without escapes.
func QuotedString() combinator.Parser[string] { return bare.quotedString(1) }

// AttributePair matches key="value".
func AttributePair() combinator.Parser[Attribute] { return bare.attributePair(1) }

// Attributes matches zero or more whitespace-prefixed attribute pairs.
func Attributes() combinator.Parser[[]Attribute] { return bare.attributes(1) }

// ElementStart matches "<" name attributes.
func ElementStart() combinator.Parser[combinator.Tuple[string, []Attribute]] {
	return bare.elementStart(1)
}

// SingleElement matches a self-closing element, eg. <br/>.
func SingleElement() combinator.Parser[*Element] { return bare.singleElement(1) }

// OpenElement matches an opening tag, eg. <div class="x">.
//
// The returned Element has no children.
func OpenElement() combinator.Parser[*Element] { return bare.openElement(1) }

// CloseElement matches a closing tag for the element called name.
func CloseElement(name string) combinator.Parser[string] { return bare.closeElement(name, 1) }

// ParentElement matches an opening tag, its children and the matching closing tag.
func ParentElement() combinator.Parser[*Element] { return bare.parentElement(1) }

// ElementRule matches a single element surrounded by optional whitespace.
//
// It does not limit nesting depth; use a Parser for that.
func ElementRule() combinator.Parser[*Element] { return bare.element(1) }

func (g *grammar) quotedString(depth int) combinator.Parser[string] {
	return rule(g, "QuotedString", depth, combinator.Right(
		combinator.Literal(`"`),
		combinator.Left(
			combinator.Recognize(combinator.ZeroOrMore(combinator.Char(func(r rune) bool { return r != '"' }))),
			combinator.Literal(`"`),
		),
	))
}

func (g *grammar) attributePair(depth int) combinator.Parser[Attribute] {
	return rule(g, "AttributePair", depth, combinator.Map(
		combinator.Pair(combinator.Identifier(), combinator.Right(combinator.Literal("="), g.quotedString(depth))),
		func(kv combinator.Tuple[string, string]) Attribute { return Attribute{Key: kv.First, Value: kv.Second} },
	))
}

func (g *grammar) attributes(depth int) combinator.Parser[[]Attribute] {
	return combinator.ZeroOrMore(combinator.Right(combinator.Space1(), g.attributePair(depth)))
}

func (g *grammar) elementStart(depth int) combinator.Parser[tag] {
	return combinator.Right(combinator.Literal("<"), combinator.Pair(combinator.Identifier(), g.attributes(depth)))
}

func (g *grammar) singleElement(depth int) combinator.Parser[*Element] {
	return rule(g, "SingleElement", depth, combinator.Map(
		combinator.Left(g.elementStart(depth), combinator.Literal("/>")),
		func(t tag) *Element { return &Element{Name: t.First, Attributes: t.Second} },
	))
}

func (g *grammar) openElement(depth int) combinator.Parser[*Element] {
	return rule(g, "OpenElement", depth, combinator.Map(
		combinator.Left(g.elementStart(depth), combinator.Literal(">")),
		func(t tag) *Element { return &Element{Name: t.First, Attributes: t.Second} },
	))
}

func (g *grammar) closeElement(name string, depth int) combinator.Parser[string] {
	return rule(g, "CloseElement", depth, combinator.Pred(
		combinator.Right(combinator.Literal("</"), combinator.Left(combinator.Identifier(), combinator.Literal(">"))),
		func(closing string) bool { return closing == name },
	))
}

func (g *grammar) parentElement(depth int) combinator.Parser[*Element] {
	if g.maxDepth > 0 && depth > g.maxDepth {
		return g.tooDeep(depth)
	}
	return rule(g, "ParentElement", depth, combinator.AndThen(g.openElement(depth), func(open *Element) combinator.Parser[*Element] {
		return combinator.Map(
			combinator.Left(combinator.ZeroOrMore(g.element(depth+1)), g.closeElement(open.Name, depth)),
			func(children []*Element) *Element {
				return &Element{Name: open.Name, Attributes: open.Attributes, Children: children}
			},
		)
	}))
}

// tooDeep aborts on any opening tag.
func (g *grammar) tooDeep(depth int) combinator.Parser[*Element] {
	open := g.openElement(depth)
	return combinator.Func[*Element](func(input string) (string, *Element, error) {
		_, el, err := open.Parse(input)
		if err != nil {
			return input, nil, err
		}
		return input, nil, &DepthError{Name: el.Name, MaxDepth: g.maxDepth, remaining: input}
	})
}

func (g *grammar) element(depth int) combinator.Parser[*Element] {
	return combinator.Box(rule(g, "Element", depth, combinator.WhitespaceWrap(
		combinator.Either(g.singleElement(depth), g.parentElement(depth)),
	)))
}
