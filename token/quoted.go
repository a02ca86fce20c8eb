package token

import (
	"strings"
	"unicode/utf8"
)

// ScanText scans the quoted text literal at the start of d, which must
// begin with '"'. On success it returns the number of bytes consumed,
// including both quotes, and the unescaped body.
//
// On failure the returned offset locates the problem: the offending byte
// for a bad escape or bad utf8, len(d) for an unterminated literal.
func ScanText(d []byte) (int, string, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, "", ErrUnterminated
	}
	b := &strings.Builder{}
	i := 1
	n := len(d)
	for i < n {
		c := d[i]
		switch c {
		case '"':
			return i + 1, b.String(), nil
		case '\\':
			if i+1 == n {
				return n, "", ErrUnterminated
			}
			r, ok := unescape(d[i+1])
			if !ok {
				return i, "", ErrBadEscape
			}
			b.WriteByte(r)
			i += 2
			continue
		}
		if c < utf8.RuneSelf {
			b.WriteByte(c)
			i++
			continue
		}
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return i, "", ErrBadUTF8
		}
		b.WriteRune(r)
		i += sz
	}
	return n, "", ErrUnterminated
}

func unescape(c byte) (byte, bool) {
	switch c {
	case '"':
		return '"', true
	case 't':
		return '\t', true
	case '\\':
		return '\\', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	}
	return 0, false
}

// Quote returns v as a text literal which [ScanText] reads back as v.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\t':
			d = append(d, '\\', 't')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		default:
			d = append(d, c)
		}
	}
	d = append(d, '"')
	return string(d)
}
