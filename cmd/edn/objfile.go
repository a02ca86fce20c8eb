package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-edn/ir"
	"github.com/signadot/go-edn/parse"
)

// readInput reads the named file, or r when the name is "-".
func readInput(r io.Reader, path string) ([]byte, error) {
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// parseNodes parses d as one value, or as a sequence of values when all is
// set.
func parseNodes(d []byte, all bool, opts ...parse.ParseOption) ([]*ir.Node, error) {
	if all {
		return parse.ParseAll(d, opts...)
	}
	n, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return []*ir.Node{n}, nil
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}

// inputs returns the files named by args, standard input if there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
