// Package token provides the lexical primitives of the edn notation.
//
// The functions here are the leaves of the grammar implemented by package
// parse: character classes, digit and float scanners, quoted text scanning
// and quoting, and mapping of byte offsets to lines and columns with [PosDoc].
//
// None of the scanners allocate or keep state; they report how many bytes at
// the start of their input belong to the construct in question, 0 meaning no
// match.
package token
