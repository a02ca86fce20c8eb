package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-edn/format"
	"github.com/signadot/go-edn/parse"
)

func TestViewData(t *testing.T) {
	tests := []struct {
		in   string
		all  bool
		want string
	}{
		{in: "{:b 2 :a [1 , 2]}", want: "{:a [1 2], :b 2}\n"},
		{in: "; comment\n#{3 1 3}", want: "#{1 3}\n"},
		{in: "1 :k (x)", all: true, want: "1\n:k\n(x)\n"},
		{in: " ; nothing\n", all: true, want: ""},
	}
	for _, tt := range tests {
		cfg := &ViewConfig{MainConfig: &MainConfig{}, All: tt.all}
		buf := &bytes.Buffer{}
		if err := viewData(cfg, buf, []byte(tt.in)); err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestViewNoCommas(t *testing.T) {
	cfg := &ViewConfig{MainConfig: &MainConfig{NoCommas: true}}
	buf := &bytes.Buffer{}
	if err := viewData(cfg, buf, []byte("{:a 1 :b 2}")); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{:a 1 :b 2}\n" {
		t.Errorf("got %q", got)
	}
}

func TestCheckData(t *testing.T) {
	cfg := &CheckConfig{MainConfig: &MainConfig{}}
	buf := &bytes.Buffer{}
	if !checkData(cfg, buf, "a.edn", []byte("[1 2]")) {
		t.Errorf("expected success")
	}
	if checkData(cfg, buf, "b.edn", []byte("{:a 1 :b}")) {
		t.Errorf("expected failure")
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[0] != "a.edn: ok" {
		t.Fatalf("got %q", lines)
	}
	if !strings.HasPrefix(lines[1], "b.edn: parse error: map with odd number of elements") ||
		!strings.Contains(lines[1], "offset 8") {
		t.Errorf("got %q", lines[1])
	}

	cfg.All = true
	buf.Reset()
	if !checkData(cfg, buf, "c.edn", []byte("1 2 3")) || buf.String() != "c.edn: ok (3 values)\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestCheckDepth(t *testing.T) {
	cfg := &CheckConfig{MainConfig: &MainConfig{Depth: 1}}
	buf := &bytes.Buffer{}
	if checkData(cfg, buf, "d", []byte("[[1]]")) {
		t.Errorf("expected failure, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "nesting too deep") {
		t.Errorf("got %q", buf.String())
	}
}

func TestDumpData(t *testing.T) {
	cfg := &DumpConfig{MainConfig: &MainConfig{}}
	buf := &bytes.Buffer{}
	if err := dumpData(cfg, buf, []byte("[1 :a]")); err != nil {
		t.Fatal(err)
	}
	var got struct {
		Type   string
		Span   []int
		Values []struct {
			Type string
			Span []int
		}
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v in %s", err, buf.String())
	}
	if got.Type != "Vector" || len(got.Values) != 2 || got.Values[1].Type != "Keyword" {
		t.Errorf("got %+v", got)
	}
	if diff := cmp.Diff([]int{3, 5}, got.Values[1].Span); diff != "" {
		t.Errorf("span (-want +got):\n%s", diff)
	}

	y := format.YAMLFormat
	cfg.OutFormat = &y
	buf.Reset()
	if err := dumpData(cfg, buf, []byte(":k")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "type: Keyword") {
		t.Errorf("got %q", buf.String())
	}
}

func TestDiffInputs(t *testing.T) {
	cfg := &DiffConfig{MainConfig: &MainConfig{}}
	a, err := parse.ParseString("{:a 1 :b 2}")
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.ParseString("{:b 2, :a 1}")
	if err != nil {
		t.Fatal(err)
	}
	c, err := parse.ParseString("{:a 1 :b 3}")
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	differs, err := diffInputs(cfg, buf, a, b)
	if err != nil || differs || buf.Len() != 0 {
		t.Errorf("got %v %v %q", differs, err, buf.String())
	}
	differs, err = diffInputs(cfg, buf, a, c)
	if err != nil || !differs {
		t.Fatalf("got %v %v", differs, err)
	}
	if got := buf.String(); got != "{:a 1, :b [-2-]{+3+}}\n" {
		t.Errorf("got %q", got)
	}
}
