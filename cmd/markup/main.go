// Command markup parses markup documents and prints their element trees.
package main

import (
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/alecthomas/markup"
)

var version = "dev"

// CLI is the command-line interface.
type CLI struct {
	Version kong.VersionFlag `help:"Show version."`

	Parse   parseCmd   `cmd:"" help:"Parse documents and print their element trees."`
	Grammar grammarCmd `cmd:"" help:"Print the grammar as EBNF."`
}

type stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func newParser(cli *CLI, std *stdio, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("markup"),
		kong.Description(`Parse and inspect documents in a minimal XML-like markup dialect.`),
		kong.Vars{
			"version":   version,
			"max_depth": strconv.Itoa(markup.DefaultMaxDepth),
		},
		kong.Bind(std),
		kong.Writers(std.Out, std.Err),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	cli := &CLI{}
	parser, err := newParser(cli, &stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = kctx.Run()
	kctx.FatalIfErrorf(err)
}
