package parse

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/signadot/go-edn/ir"
	"github.com/signadot/go-edn/token"
)

func (p *parser) nilValue(i int) (*ir.Node, int, error) {
	if !p.hasPrefix(i, "nil") {
		return nil, i, nil
	}
	return p.atom(ir.Nil(), i, i+3)
}

func (p *parser) boolean(i int) (*ir.Node, int, error) {
	switch {
	case p.hasPrefix(i, "true"):
		return p.atom(ir.FromBool(true), i, i+4)
	case p.hasPrefix(i, "false"):
		return p.atom(ir.FromBool(false), i, i+5)
	}
	return nil, i, nil
}

// sentinel returns the offset following "#f" and at least one whitespace
// character, or -1.
func (p *parser) sentinel(i int) int {
	if !p.hasPrefix(i, "#f") {
		return -1
	}
	j := i + 2
	for j < len(p.d) && token.IsWhitespace(p.d[j]) {
		j++
	}
	if j == i+2 {
		return -1
	}
	return j
}

func (p *parser) nan(i int) (*ir.Node, int, error) {
	j := p.sentinel(i)
	if j < 0 || !p.hasPrefix(j, "NaN") {
		return nil, i, nil
	}
	return p.atom(ir.NaN(), i, j+3)
}

func (p *parser) infinity(i int) (*ir.Node, int, error) {
	j := p.sentinel(i)
	if j < 0 || j == len(p.d) || !token.IsSign(p.d[j]) || !p.hasPrefix(j+1, "Infinity") {
		return nil, i, nil
	}
	sign := 1
	if p.d[j] == '-' {
		sign = -1
	}
	return p.atom(ir.Inf(sign), i, j+1+len("Infinity"))
}

func (p *parser) float(i int) (*ir.Node, int, error) {
	n := token.Float(p.d[i:])
	if n == 0 || !token.AtBoundary(p.d, i+n) {
		return nil, i, nil
	}
	lit := string(p.d[i : i+n])
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, i, p.errAt(fmt.Errorf("%w: %s", token.ErrFloatRange, lit), i)
	}
	return p.atom(ir.FromFloat(f), i, i+n)
}

func (p *parser) octalInteger(i int) (*ir.Node, int, error) {
	if i == len(p.d) || p.d[i] != '0' {
		return nil, i, nil
	}
	n := token.OctalDigits(p.d[i+1:])
	if n == 0 {
		return nil, i, nil
	}
	return p.radixInteger(i, i+1, i+1+n, 8)
}

func (p *parser) hexInteger(i int) (*ir.Node, int, error) {
	if !p.hasPrefix(i, "0x") {
		return nil, i, nil
	}
	n := token.HexDigits(p.d[i+2:])
	if n == 0 {
		return nil, i, nil
	}
	return p.radixInteger(i, i+2, i+2+n, 16)
}

// basedInteger matches <radix>r<digits>. Once that shape is matched, a
// radix outside [2, 36] or a digit invalid for the radix is an error rather
// than a reason to try the remaining alternatives.
func (p *parser) basedInteger(i int) (*ir.Node, int, error) {
	rn := token.Digits(p.d[i:])
	if rn == 0 || i+rn == len(p.d) || p.d[i+rn] != 'r' {
		return nil, i, nil
	}
	start := i + rn + 1
	n := token.Alphanumerics(p.d[start:])
	if n == 0 || !token.AtBoundary(p.d, start+n) {
		return nil, i, nil
	}
	radixLit := string(p.d[i : i+rn])
	radix, err := strconv.Atoi(radixLit)
	if err != nil || radix < 2 || radix > 36 || radixLit[0] == '0' {
		return nil, i, p.errAt(fmt.Errorf("%w: %s", token.ErrRadix, radixLit), i)
	}
	return p.radixInteger(i, start, start+n, radix)
}

// radixInteger parses the digits in [start, end) with the given radix as
// the integer literal spanning [i, end).
func (p *parser) radixInteger(i, start, end, radix int) (*ir.Node, int, error) {
	if !token.AtBoundary(p.d, end) {
		return nil, i, nil
	}
	lit := string(p.d[start:end])
	v, err := strconv.ParseInt(lit, radix, 64)
	if err != nil {
		return nil, i, p.errAt(numErr(err, string(p.d[i:end])), i)
	}
	return p.atom(ir.FromInt(v), i, end)
}

func numErr(err error, lit string) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %s", token.ErrIntegerRange, lit)
	}
	return fmt.Errorf("%w: %s", token.ErrNumber, lit)
}

func (p *parser) bigInt(i int) (*ir.Node, int, error) {
	n := token.SignedDigits(p.d[i:])
	if n == 0 || i+n == len(p.d) || p.d[i+n] != 'N' {
		return nil, i, nil
	}
	if !token.AtBoundary(p.d, i+n+1) {
		return nil, i, nil
	}
	v, ok := new(big.Int).SetString(string(p.d[i:i+n]), 10)
	if !ok {
		return nil, i, p.errAt(fmt.Errorf("%w: %s", token.ErrNumber, p.d[i:i+n+1]), i)
	}
	return p.atom(ir.FromBigInt(v), i, i+n+1)
}

// integer never falls back to a big integer: a plain literal outside the
// range of int64 is an error.
func (p *parser) integer(i int) (*ir.Node, int, error) {
	n := token.SignedDigits(p.d[i:])
	if n == 0 || !token.AtBoundary(p.d, i+n) {
		return nil, i, nil
	}
	v, err := strconv.ParseInt(string(p.d[i:i+n]), 10, 64)
	if err != nil {
		return nil, i, p.errAt(numErr(err, string(p.d[i:i+n])), i)
	}
	return p.atom(ir.FromInt(v), i, i+n)
}
