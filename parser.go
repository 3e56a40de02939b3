package markup

import (
	"errors"
	"io"

	"github.com/alecthomas/markup/combinator"
)

// A Parser for markup documents.
type Parser struct {
	maxDepth int
	trace    io.Writer
	mappers  []Mapper
	root     combinator.Parser[*Element]
}

// New creates a Parser.
func New(options ...Option) (*Parser, error) {
	p := &Parser{maxDepth: DefaultMaxDepth}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	g := &grammar{maxDepth: p.maxDepth, trace: p.trace}
	p.root = g.element(1)
	return p, nil
}

// MustNew calls New(options...) and panics if an error occurs.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the EBNF for the grammar.
func (p *Parser) String() string {
	return grammarEBNF
}

// Parse a document from r.
//
// The document must consist of exactly one element, optionally surrounded by whitespace.
func (p *Parser) Parse(filename string, r io.Reader) (*Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.ParseString(filename, string(data))
}

// ParseBytes parses a document from b.
func (p *Parser) ParseBytes(filename string, b []byte) (*Element, error) {
	return p.ParseString(filename, string(b))
}

// ParseString parses a document from s.
func (p *Parser) ParseString(filename string, s string) (*Element, error) {
	element, rest, err := p.ParsePrefix(filename, s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, &UnexpectedInputError{Remaining: rest, Pos: PositionOf(filename, s, rest)}
	}
	return element, nil
}

// ParsePrefix parses a single element from the start of s and returns any
// unparsed text following it.
func (p *Parser) ParsePrefix(filename string, s string) (*Element, string, error) {
	rest, element, err := p.root.Parse(s)
	if err != nil {
		return nil, "", annotate(filename, s, err)
	}
	if len(p.mappers) > 0 {
		mapped, err := applyMappers(element, p.mappers)
		if err != nil {
			return nil, "", Wrapf(Position{Filename: filename}, err, "map")
		}
		if mapped == nil {
			return nil, "", Errorf(Position{Filename: filename}, "root element <%s> was removed by a mapper", element.Name)
		}
		element = mapped
	}
	return element, rest, nil
}

func annotate(filename, source string, err error) error {
	var depth *DepthError
	if errors.As(err, &depth) {
		out := *depth
		out.Pos = PositionOf(filename, source, depth.remaining)
		return &out
	}
	if remaining, ok := combinator.Remaining(err); ok {
		return &UnexpectedInputError{Remaining: remaining, Pos: PositionOf(filename, source, remaining)}
	}
	return err
}
