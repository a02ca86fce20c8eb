package parse

import (
	"github.com/signadot/go-edn/ir"
	"github.com/signadot/go-edn/token"
)

func (p *parser) list(i int) (*ir.Node, int, error) {
	vs, end, err := p.members(i, "(", ')')
	if vs == nil || err != nil {
		return nil, i, err
	}
	return ir.FromList(vs).WithSpan(ir.Span{Start: i, End: end}), end, nil
}

func (p *parser) vector(i int) (*ir.Node, int, error) {
	vs, end, err := p.members(i, "[", ']')
	if vs == nil || err != nil {
		return nil, i, err
	}
	return ir.FromVector(vs).WithSpan(ir.Span{Start: i, End: end}), end, nil
}

func (p *parser) set(i int) (*ir.Node, int, error) {
	vs, end, err := p.members(i, "#{", '}')
	if vs == nil || err != nil {
		return nil, i, err
	}
	return ir.FromSet(vs).WithSpan(ir.Span{Start: i, End: end}), end, nil
}

// mapping reads the members of a map as alternating keys and values.
func (p *parser) mapping(i int) (*ir.Node, int, error) {
	vs, end, err := p.members(i, "{", '}')
	if vs == nil || err != nil {
		return nil, i, err
	}
	if len(vs)%2 != 0 {
		return nil, i, p.errAt(ErrOddMap, end-1)
	}
	kvs := make([]ir.KeyVal, 0, len(vs)/2)
	for j := 0; j < len(vs); j += 2 {
		kvs = append(kvs, ir.KeyVal{Key: vs[j], Val: vs[j+1]})
	}
	return ir.FromKeyVals(kvs).WithSpan(ir.Span{Start: i, End: end}), end, nil
}

// members parses open, zero or more values, and close starting at i. It
// returns a nil slice if the collection does not match, and the offset
// following close otherwise.
func (p *parser) members(i int, open string, close byte) ([]*ir.Node, int, error) {
	if !p.hasPrefix(i, open) {
		return nil, i, nil
	}
	if p.depth >= p.opts.maxDepth {
		return nil, i, p.errAt(ErrDepth, i)
	}
	p.depth++
	defer func() { p.depth-- }()

	j := i + len(open)
	j += token.Insignificant(p.d[j:])
	res := []*ir.Node{}
	for {
		if j == len(p.d) {
			return nil, i, p.errAt(token.ErrUnterminated, j, string(close))
		}
		if p.d[j] == close {
			return res, j + 1, nil
		}
		v, end, err := p.value(j)
		if err != nil {
			return nil, i, err
		}
		if v == nil {
			p.fail(j, string(close))
			return nil, i, nil
		}
		res = append(res, v)
		j = end
	}
}
