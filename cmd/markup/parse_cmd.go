package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/pkg/errors"

	"github.com/alecthomas/markup"
)

type parseCmd struct {
	Format   string   `short:"f" enum:"tree,markup,repr" default:"tree" help:"Output format (${enum})."`
	MaxDepth int      `default:"${max_depth}" help:"Maximum nesting depth of elements with closing tags, 0 for no limit."`
	Lower    bool     `help:"Lower-case element names and attribute keys."`
	Trace    bool     `help:"Trace grammar rules to stderr."`
	Files    []string `arg:"" optional:"" type:"existingfile" help:"Documents to parse (stdin if omitted)."`
}

func (c *parseCmd) Help() string {
	return `
Each document must contain exactly one element. Parse errors are reported as
file:line:column.
`
}

func (c *parseCmd) Run(std *stdio) error {
	options := []markup.Option{markup.MaxDepth(c.MaxDepth)}
	if c.Lower {
		options = append(options, markup.Lower())
	}
	if c.Trace {
		options = append(options, markup.Trace(std.Err))
	}
	parser, err := markup.New(options...)
	if err != nil {
		return err
	}
	if len(c.Files) == 0 {
		data, err := io.ReadAll(std.In)
		if err != nil {
			return errors.Wrap(err, "read stdin")
		}
		return c.parse(std.Out, parser, "<stdin>", data)
	}
	for _, file := range c.Files {
		data, err := os.ReadFile(file)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := c.parse(std.Out, parser, file, data); err != nil {
			return err
		}
	}
	return nil
}

func (c *parseCmd) parse(w io.Writer, parser *markup.Parser, filename string, data []byte) error {
	element, err := parser.ParseBytes(filename, data)
	if err != nil {
		return err
	}
	switch c.Format {
	case "markup":
		fmt.Fprintln(w, element)
	case "repr":
		repr.New(w, repr.Indent("  "), repr.OmitEmpty(true)).Println(element)
	default:
		return printTree(w, element)
	}
	return nil
}

func printTree(w io.Writer, root *markup.Element) error {
	depth := 0
	return markup.Visit(root, func(element *markup.Element, next func() error) error {
		line := &strings.Builder{}
		line.WriteString(strings.Repeat("  ", depth))
		line.WriteString(element.Name)
		for _, attr := range element.Attributes {
			fmt.Fprintf(line, " %s=%q", attr.Key, attr.Value)
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
		depth++
		defer func() { depth-- }()
		return next()
	})
}
