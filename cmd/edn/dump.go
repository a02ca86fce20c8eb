package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/go-edn/encode"
	"github.com/signadot/go-edn/format"
	"github.com/signadot/go-edn/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		d, err := readInput(cc.In, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		if err := dumpData(cfg, cc.Out, d); err != nil {
			return fmt.Errorf("error processing %s: %w", displayName(file), err)
		}
	}
	return nil
}

func dumpData(cfg *DumpConfig, w io.Writer, d []byte) error {
	nodes, err := parseNodes(d, cfg.All, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	return writeNodes(cfg.MainConfig, w, nodes, cfg.outFormat(format.JSONFormat), cfg.All)
}

// writeNodes writes nodes one per line in edn, or as a tree with spans in
// json or yaml. A sequence is written as an array.
func writeNodes(cfg *MainConfig, w io.Writer, nodes []*ir.Node, f format.Format, seq bool) error {
	if f.IsEDN() {
		opts := cfg.encOpts(w)
		for i, n := range nodes {
			if err := encode.Encode(n, w, opts...); err != nil {
				return fmt.Errorf("error encoding value %d: %w", i, err)
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		return nil
	}
	var v any = nodes
	if !seq && len(nodes) == 1 {
		v = nodes[0]
	}
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	if f.IsYAML() {
		d, err = yaml.JSONToYAML(d)
		if err != nil {
			return fmt.Errorf("error converting to yaml: %w", err)
		}
	} else {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}
