package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes of different types are ordered by type alone, so an Integer never
// equals a BigInteger or a Float of the same magnitude. Spans are ignored.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NilType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntegerType:
		return cmp.Compare(a.Int64, b.Int64)
	case BigIntType:
		return compareBigInts(a, b)
	case FloatType:
		return a.Float64.Compare(b.Float64)
	case TextType:
		return strings.Compare(a.Text, b.Text)
	case SymbolType, KeywordType:
		return compareNames(a, b)
	case ListType, VectorType, SetType:
		return compareSeqs(a, b)
	case MapType:
		return compareMaps(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same value.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Nil < Boolean < Integer < BigInteger < Float < Text < Symbol <
// Keyword < List < Vector < Set < Map
func rank(t Type) int {
	switch t {
	case NilType:
		return 0
	case BoolType:
		return 1
	case IntegerType:
		return 2
	case BigIntType:
		return 3
	case FloatType:
		return 4
	case TextType:
		return 5
	case SymbolType:
		return 6
	case KeywordType:
		return 7
	case ListType:
		return 8
	case VectorType:
		return 9
	case SetType:
		return 10
	case MapType:
		return 11
	}
	return 100
}

func compareBigInts(a, b *Node) int {
	switch {
	case a.BigInt == nil && b.BigInt == nil:
		return 0
	case a.BigInt == nil:
		return -1
	case b.BigInt == nil:
		return 1
	}
	return a.BigInt.Cmp(b.BigInt)
}

// names without a namespace sort before namespaced ones.
func compareNames(a, b *Node) int {
	hasA, hasB := a.Namespace != "", b.Namespace != ""
	if hasA != hasB {
		if hasA {
			return 1
		}
		return -1
	}
	if c := strings.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

func compareSeqs(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareMaps(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
