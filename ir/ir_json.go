package ir

import (
	"encoding/json"
	"strconv"
)

type irBase struct {
	Type   Type    `json:"type"`
	Span   Span    `json:"span"`
	Fields []*Node `json:"fields,omitempty"`
	Values []*Node `json:"values,omitempty"`

	Namespace string `json:"namespace,omitempty"`
	Name      string `json:"name,omitempty"`
}

// MarshalJSON renders the node as a tree annotated with spans. Big
// integers and floats are rendered as strings so that values outside the
// range of JSON numbers survive.
func (y *Node) MarshalJSON() ([]byte, error) {
	base := irBase{
		Type:      y.Type,
		Span:      y.Span,
		Fields:    y.Fields,
		Values:    y.Values,
		Namespace: y.Namespace,
		Name:      y.Name,
	}
	switch y.Type {
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: base, Bool: y.Bool})
	case IntegerType:
		type C struct {
			irBase
			Int int64 `json:"int"`
		}
		return json.Marshal(C{irBase: base, Int: y.Int64})
	case BigIntType:
		type C struct {
			irBase
			BigInt string `json:"bigint"`
		}
		return json.Marshal(C{irBase: base, BigInt: y.BigInt.String()})
	case FloatType:
		type C struct {
			irBase
			Float string `json:"float"`
		}
		f := strconv.FormatFloat(float64(y.Float64), 'g', -1, 64)
		return json.Marshal(C{irBase: base, Float: f})
	case TextType:
		type C struct {
			irBase
			Text string `json:"text"`
		}
		return json.Marshal(C{irBase: base, Text: y.Text})
	default:
		return json.Marshal(base)
	}
}
