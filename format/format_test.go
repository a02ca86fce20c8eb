package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"e": EDNFormat, "edn": EDNFormat,
		"j": JSONFormat, "json": JSONFormat,
		"y": YAMLFormat, "yaml": YAMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("%s: got %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range []Format{EDNFormat, JSONFormat, YAMLFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil || g != f {
			t.Errorf("%s: got %v, %v", d, g, err)
		}
	}
	if _, err := Format(7).MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}
