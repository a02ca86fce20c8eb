package ir

import (
	"math"
	"math/big"
)

// Node is a value together with the span of input it was read from.
//
// Fields are used according to Type:
//
//   - BoolType: Bool
//   - IntegerType: Int64
//   - BigIntType: BigInt
//   - FloatType: Float64
//   - TextType: Text
//   - SymbolType, KeywordType: Namespace (empty when absent) and Name
//   - ListType, VectorType, SetType: Values
//   - MapType: Fields (keys) and Values, index aligned
type Node struct {
	Type Type
	Span Span

	Bool      bool
	Int64     int64
	BigInt    *big.Int
	Float64   OrderedFloat
	Text      string
	Namespace string
	Name      string

	Fields []*Node
	Values []*Node
}

func (y *Node) WithSpan(s Span) *Node {
	y.Span = s
	return y
}

func Nil() *Node {
	return &Node{Type: NilType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntegerType,
		Int64: v,
	}
}

func FromBigInt(v *big.Int) *Node {
	return &Node{
		Type:   BigIntType,
		BigInt: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: OrderedFloat(f),
	}
}

func NaN() *Node {
	return FromFloat(math.NaN())
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) *Node {
	return FromFloat(math.Inf(sign))
}

func FromText(v string) *Node {
	return &Node{
		Type: TextType,
		Text: v,
	}
}

func FromSymbol(ns, name string) *Node {
	return &Node{
		Type:      SymbolType,
		Namespace: ns,
		Name:      name,
	}
}

func FromKeyword(ns, name string) *Node {
	return &Node{
		Type:      KeywordType,
		Namespace: ns,
		Name:      name,
	}
}

func FromList(vs []*Node) *Node {
	return &Node{
		Type:   ListType,
		Values: vs,
	}
}

func FromVector(vs []*Node) *Node {
	return &Node{
		Type:   VectorType,
		Values: vs,
	}
}

func (y *Node) Clone() *Node {
	res := *y
	if y.BigInt != nil {
		res.BigInt = new(big.Int).Set(y.BigInt)
	}
	res.Fields = cloneAll(y.Fields)
	res.Values = cloneAll(y.Values)
	return &res
}

func cloneAll(ns []*Node) []*Node {
	if ns == nil {
		return nil
	}
	res := make([]*Node, len(ns))
	for i, n := range ns {
		res[i] = n.Clone()
	}
	return res
}

// WithoutSpans returns a deep copy of y in which every span is zero.
func (y *Node) WithoutSpans() *Node {
	res := y.Clone()
	res.Visit(func(n *Node, isPost bool) (bool, error) {
		n.Span = Span{}
		return true, nil
	})
	return res
}

// Visit calls f on y and its descendants in pre-order (isPost false) and
// post-order (isPost true). Map keys are visited before their values.
// Children are skipped when the pre-order call returns false.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for i, yy := range y.Values {
			if i < len(y.Fields) {
				if err := y.Fields[i].Visit(f); err != nil {
					return err
				}
			}
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Len returns the number of members of a collection, 0 otherwise.
func (y *Node) Len() int {
	if !y.Type.IsCollection() {
		return 0
	}
	return len(y.Values)
}
