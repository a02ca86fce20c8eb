// Package encode encodes IR nodes to edn text.
//
// # Usage
//
//	node := ir.FromVector([]*ir.Node{
//	    ir.FromKeyword("db", "ident"),
//	    ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode with colors
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Output is a single line. Parsing it back with package parse yields a
// node equal to the input under [ir.Equal].
//
// # Related Packages
//
//   - github.com/signadot/go-edn/ir - value tree
//   - github.com/signadot/go-edn/parse - parse text to IR
package encode
