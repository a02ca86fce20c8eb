package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-edn/encode"
	"github.com/signadot/go-edn/ir"
	"github.com/signadot/go-edn/libdiff"
	"github.com/signadot/go-edn/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: at most one diff arg may be standard input", cli.ErrUsage)
	}
	y1, err := getObjFile(cc.In, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", displayName(args[0]), err)
	}
	y2, err := getObjFile(cc.In, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", displayName(args[1]), err)
	}
	differs, err := diffInputs(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getObjFile(r io.Reader, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readInput(r, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// diffInputs writes the difference between the canonical encodings of a
// and b, if they are not equal.
func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if ir.Equal(a, b) {
		return false, nil
	}
	from, err := canonical(cfg.MainConfig, a)
	if err != nil {
		return false, err
	}
	to, err := canonical(cfg.MainConfig, b)
	if err != nil {
		return false, err
	}
	if _, err := io.WriteString(w, libdiff.Text(from, to, cfg.useColor(w))+"\n"); err != nil {
		return false, err
	}
	return true, nil
}

func canonical(cfg *MainConfig, y *ir.Node) (string, error) {
	b := &strings.Builder{}
	if err := encode.Encode(y, b, encode.EncodeCommas(!cfg.NoCommas)); err != nil {
		return "", err
	}
	return b.String(), nil
}
