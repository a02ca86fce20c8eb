// Package parse parses edn text into [ir.Node] trees.
//
// # Usage
//
//	// Parse one literal
//	node, err := parse.Parse([]byte(`{:name "alice", :age 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1 2 3]`)
//
//	// Parse a sequence of literals
//	nodes, err := parse.ParseAll(data)
//
// Every node carries the span of input it was read from.
//
// # Grammar
//
// A value is tried against the following alternatives in order, the first
// match winning: nil, #f NaN, #f ±Infinity, booleans, floats, octal
// integers (031), hexadecimal integers (0x1F), integers with an explicit
// radix (16rFF), big integers (12N), integers, text, keywords, symbols,
// lists, vectors, maps and sets. Whitespace (including commas) and ;
// comments may surround any value.
//
// Atoms must be followed by whitespace, a comment, a delimiter or the end
// of input, so nilly is a symbol rather than nil followed by ly.
//
// # Errors
//
// Failures are reported as [*ParseError]. When no alternative matches, the
// error holds the furthest offset reached and the alternatives attempted
// there. Malformed literals (an out of range integer, a bad radix, a bad
// escape, an unterminated literal or collection, a map with an odd number
// of elements) fail immediately at the offending position.
//
// # Related Packages
//
//   - github.com/signadot/go-edn/ir - value tree
//   - github.com/signadot/go-edn/encode - encode trees to text
//   - github.com/signadot/go-edn/token - lexical primitives
package parse
