package ir

import (
	"fmt"
	"math/big"
)

func (y *Node) expect(t Type) error {
	if y.Type != t {
		return fmt.Errorf("%w: %s is not %s", ErrType, y.Type, t)
	}
	return nil
}

func (y *Node) AsBool() (bool, error) {
	if err := y.expect(BoolType); err != nil {
		return false, err
	}
	return y.Bool, nil
}

func (y *Node) AsInt() (int64, error) {
	if err := y.expect(IntegerType); err != nil {
		return 0, err
	}
	return y.Int64, nil
}

func (y *Node) AsBigInt() (*big.Int, error) {
	if err := y.expect(BigIntType); err != nil {
		return nil, err
	}
	return y.BigInt, nil
}

func (y *Node) AsFloat() (float64, error) {
	if err := y.expect(FloatType); err != nil {
		return 0, err
	}
	return float64(y.Float64), nil
}

func (y *Node) AsText() (string, error) {
	if err := y.expect(TextType); err != nil {
		return "", err
	}
	return y.Text, nil
}

// AsSymbol returns the namespace and name of a symbol. The namespace is
// empty for unqualified symbols.
func (y *Node) AsSymbol() (string, string, error) {
	if err := y.expect(SymbolType); err != nil {
		return "", "", err
	}
	return y.Namespace, y.Name, nil
}

func (y *Node) AsKeyword() (string, string, error) {
	if err := y.expect(KeywordType); err != nil {
		return "", "", err
	}
	return y.Namespace, y.Name, nil
}

func (y *Node) IsNil() bool {
	return y.Type == NilType
}
