package main

import (
	"context"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	c := &CLI{}
	parser, err := newParser(c)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	stdout := colorable.NewColorable(os.Stdout)
	logger := newLogger(stdout, c.Log.Level, isatty.IsTerminal(os.Stdout.Fd()))

	ok, err := c.run(context.Background(), stdout, logger)
	kctx.FatalIfErrorf(err)
	if !ok {
		os.Exit(1)
	}
}
