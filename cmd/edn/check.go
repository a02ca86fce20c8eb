package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range inputs(args) {
		d, err := readInput(cc.In, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		if !checkData(cfg, cc.Out, displayName(file), d) {
			failed++
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkData reports on w whether d parses, and where and why it does not.
func checkData(cfg *CheckConfig, w io.Writer, name string, d []byte) bool {
	nodes, err := parseNodes(d, cfg.All, cfg.parseOpts()...)
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", name, err)
		return false
	}
	if cfg.All {
		fmt.Fprintf(w, "%s: ok (%d values)\n", name, len(nodes))
		return true
	}
	fmt.Fprintf(w, "%s: ok\n", name)
	return true
}
