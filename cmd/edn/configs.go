package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-edn/encode"
	"github.com/signadot/go-edn/format"
	"github.com/signadot/go-edn/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	NoCommas bool `cli:"name=nocommas desc='separate map entries without commas'"`
	Depth    int  `cli:"name=depth desc='maximum collection nesting depth'"`
	Trace    bool `cli:"name=trace desc='log parsing steps to stderr'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Depth > 0 {
		res = append(res, parse.MaxDepth(cfg.Depth))
	}
	if cfg.Trace {
		res = append(res, parse.ParseTrace(true))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeCommas(!cfg.NoCommas),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether output to w is colored: always with -color,
// never with -color=false, and otherwise when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.colorSet() {
		return false
	}
	return isTerminal(w)
}

func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	All  bool `cli:"name=a desc='read a sequence of values'"`
	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	All   bool `cli:"name=a desc='read a sequence of values'"`
	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig

	All  bool `cli:"name=a desc='read a sequence of values'"`
	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
