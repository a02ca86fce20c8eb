package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-edn/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		d, err := readInput(cc.In, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		if err := viewData(cfg, cc.Out, d); err != nil {
			return fmt.Errorf("error processing %s: %w", displayName(file), err)
		}
	}
	return nil
}

func viewData(cfg *ViewConfig, w io.Writer, d []byte) error {
	nodes, err := parseNodes(d, cfg.All, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	return writeNodes(cfg.MainConfig, w, nodes, cfg.outFormat(format.EDNFormat), cfg.All)
}
