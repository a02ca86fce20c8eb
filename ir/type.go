package ir

import "fmt"

type Type int

const (
	NilType Type = iota
	BoolType
	IntegerType
	BigIntType
	FloatType
	TextType
	SymbolType
	KeywordType
	ListType
	VectorType
	SetType
	MapType
)

var typeNames = map[Type]string{
	NilType:     "Nil",
	BoolType:    "Boolean",
	IntegerType: "Integer",
	BigIntType:  "BigInteger",
	FloatType:   "Float",
	TextType:    "Text",
	SymbolType:  "Symbol",
	KeywordType: "Keyword",
	ListType:    "List",
	VectorType:  "Vector",
	SetType:     "Set",
	MapType:     "Map",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

// IsCollection reports whether nodes of type t have children.
func (t Type) IsCollection() bool {
	switch t {
	case ListType, VectorType, SetType, MapType:
		return true
	}
	return false
}

func Types() []Type {
	return []Type{
		NilType,
		BoolType,
		IntegerType,
		BigIntType,
		FloatType,
		TextType,
		SymbolType,
		KeywordType,
		ListType,
		VectorType,
		SetType,
		MapType,
	}
}
