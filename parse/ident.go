package parse

import (
	"github.com/signadot/go-edn/ir"
	"github.com/signadot/go-edn/token"
)

func (p *parser) text(i int) (*ir.Node, int, error) {
	if i == len(p.d) || p.d[i] != '"' {
		return nil, i, nil
	}
	n, s, err := token.ScanText(p.d[i:])
	if err != nil {
		return nil, i, p.errAt(err, i+n)
	}
	return ir.FromText(s).WithSpan(ir.Span{Start: i, End: i + n}), i + n, nil
}

func (p *parser) keyword(i int) (*ir.Node, int, error) {
	if i == len(p.d) || p.d[i] != ':' {
		return nil, i, nil
	}
	ns, name, end, err := p.ident(i+1, false)
	if err != nil || name == "" {
		return nil, i, err
	}
	return p.atom(ir.FromKeyword(ns, name), i, end)
}

func (p *parser) symbol(i int) (*ir.Node, int, error) {
	ns, name, end, err := p.ident(i, true)
	if err != nil || name == "" {
		return nil, i, err
	}
	return p.atom(ir.FromSymbol(ns, name), i, end)
}

// ident scans [namespace "/"] name at i. The name is empty if nothing
// matches. A separator without a namespace before it is an error.
func (p *parser) ident(i int, specials bool) (string, string, int, error) {
	d := p.d[i:]
	if len(d) > 1 && d[0] == '/' && token.IsSymbolStart(d[1]) {
		return "", "", i, p.errAt(token.ErrNamespace, i)
	}
	ns := ""
	if n := token.Namespace(d); n > 0 && n < len(d) && d[n] == '/' {
		ns = string(d[:n])
		d = d[n+1:]
		i += n + 1
	}
	n := token.Name(d)
	if n == 0 && specials {
		n = specialName(d)
	}
	if n == 0 {
		return "", "", i, nil
	}
	return ns, string(d[:n]), i + n, nil
}

// specialName matches the symbol names "..." and ".".
func specialName(d []byte) int {
	switch {
	case len(d) >= 3 && string(d[:3]) == "...":
		return 3
	case len(d) >= 1 && d[0] == '.':
		return 1
	}
	return 0
}
