// Package ir provides the value tree produced by parsing edn text.
//
// # Overview
//
// Every parsed value is an [*Node]: a recursive tagged union whose Type
// selects which payload fields are meaningful, together with the [Span] of
// input bytes it was read from. Children are themselves nodes, so every
// subtree can be located in the source independently.
//
// The tree is strictly nested. Nodes carry no parent pointers and no
// reference to the input beyond their spans.
//
// # Node Types
//
//   - NilType: nil
//   - BoolType: true, false
//   - IntegerType: signed 64-bit integer
//   - BigIntType: arbitrary precision integer
//   - FloatType: float64 under a total order ([OrderedFloat])
//   - TextType: quoted text
//   - SymbolType, KeywordType: optionally namespaced identifiers
//   - ListType, VectorType: ordered sequences, duplicates allowed
//   - SetType: unique members in canonical order
//   - MapType: unique keys in canonical order, with values
//
// # Ordering
//
// [Compare] is a total order over all nodes. Nodes of different types order
// by type rank (the order of the list above); nodes of the same type order
// by payload, sequences lexicographically. Sets and maps keep their members
// sorted by this order, which also defines their equality.
//
// # Creating Nodes
//
//	kw := ir.FromKeyword("db", "ident")
//	vec := ir.FromVector([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	set := ir.FromSet([]*ir.Node{ir.FromInt(2), ir.FromInt(1), ir.FromInt(2)})
//	m := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromKeyword("", "a"), Val: ir.FromInt(1)},
//	})
package ir
