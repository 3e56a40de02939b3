package main

import (
	"fmt"

	"github.com/alecthomas/markup"
)

type grammarCmd struct{}

func (c *grammarCmd) Run(std *stdio) error {
	parser, err := markup.New()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(std.Out, parser.String())
	return err
}
