package parse

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/go-edn/debug"
	"github.com/signadot/go-edn/ir"
	"github.com/signadot/go-edn/token"
)

// Parse parses the single literal in d, which may be surrounded by
// whitespace and comments.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(d, opts)
	n, end, err := p.value(0)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, p.failure()
	}
	if end != len(d) {
		return nil, p.errAt(ErrTrailing, end, "end of input")
	}
	return n, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseAll parses the sequence of literals in d, separated by whitespace
// and comments. Input holding only whitespace and comments yields no
// nodes.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	p := newParser(d, opts)
	res := []*ir.Node{}
	i := token.Insignificant(d)
	for i < len(d) {
		n, end, err := p.value(i)
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, p.failure()
		}
		res = append(res, n)
		i = end
	}
	return res, nil
}

// an alternative returns a nil node without error when it does not match
// at i, and an error when input matching it is malformed.
type alternative struct {
	name  string
	parse func(p *parser, i int) (*ir.Node, int, error)
}

var alternatives []alternative

func init() {
	// order matters: the first alternative which matches wins.
	alternatives = []alternative{
		{"nil", (*parser).nilValue},
		{"nan", (*parser).nan},
		{"infinity", (*parser).infinity},
		{"boolean", (*parser).boolean},
		{"float", (*parser).float},
		{"octalinteger", (*parser).octalInteger},
		{"hexinteger", (*parser).hexInteger},
		{"basedinteger", (*parser).basedInteger},
		{"bigint", (*parser).bigInt},
		{"integer", (*parser).integer},
		{"text", (*parser).text},
		{"keyword", (*parser).keyword},
		{"symbol", (*parser).symbol},
		{"list", (*parser).list},
		{"vector", (*parser).vector},
		{"map", (*parser).mapping},
		{"set", (*parser).set},
	}
}

type parser struct {
	d     []byte
	doc   *token.PosDoc
	opts  *parseOpts
	depth int

	// furthest offset at which something failed to match, and what.
	failAt   int
	expected []string
}

func newParser(d []byte, opts []ParseOption) *parser {
	return &parser{
		d:    d,
		opts: newParseOpts(opts),
	}
}

// value skips insignificant input, parses one literal, and skips
// insignificant input after it. It returns the offset following all of
// that.
func (p *parser) value(i int) (*ir.Node, int, error) {
	i += token.Insignificant(p.d[i:])
	for j := range alternatives {
		alt := &alternatives[j]
		n, end, err := alt.parse(p, i)
		if err != nil {
			if p.opts.trace {
				debug.Logf("edn: %s failed at %d: %v\n", alt.name, i, err)
			}
			return nil, i, err
		}
		if n == nil {
			if p.opts.trace {
				debug.Logf("edn: %s did not match at %d\n", alt.name, i)
			}
			p.fail(i, alt.name)
			continue
		}
		if p.opts.trace {
			debug.Logf("edn: %s matched %s\n", alt.name, n.Span)
		}
		return n, end + token.Insignificant(p.d[end:]), nil
	}
	return nil, i, nil
}

func (p *parser) fail(i int, what string) {
	switch {
	case i > p.failAt:
		p.failAt = i
		p.expected = append(p.expected[:0], what)
	case i == p.failAt:
		p.expected = append(p.expected, what)
	}
}

func (p *parser) pos(i int) *token.Pos {
	if p.doc == nil {
		p.doc = token.NewPosDoc(p.d)
	}
	return p.doc.Pos(i)
}

func (p *parser) failure() error {
	expected := slices.Clone(p.expected)
	slices.Sort(expected)
	return &ParseError{
		Err:      ErrParse,
		Offset:   p.failAt,
		Pos:      p.pos(p.failAt),
		Expected: slices.Compact(expected),
	}
}

func (p *parser) errAt(err error, i int, expected ...string) error {
	if !errors.Is(err, ErrParse) {
		err = fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &ParseError{
		Err:      err,
		Offset:   i,
		Pos:      p.pos(i),
		Expected: expected,
	}
}

func (p *parser) hasPrefix(i int, pre string) bool {
	return bytes.HasPrefix(p.d[i:], []byte(pre))
}

// atom gives n the span [i, end) if it is properly delimited. Otherwise it
// does not match.
func (p *parser) atom(n *ir.Node, i, end int) (*ir.Node, int, error) {
	if !token.AtBoundary(p.d, end) {
		return nil, i, nil
	}
	return n.WithSpan(ir.Span{Start: i, End: end}), end, nil
}
