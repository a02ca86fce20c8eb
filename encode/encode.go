package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/go-edn/ir"
	"github.com/signadot/go-edn/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	commas bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		commas: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.NilType:
		return writeValue(w, es, node.Type, "nil")
	case ir.BoolType:
		return writeValue(w, es, node.Type, strconv.FormatBool(node.Bool))
	case ir.IntegerType:
		return writeValue(w, es, node.Type, strconv.FormatInt(node.Int64, 10))
	case ir.BigIntType:
		if node.BigInt == nil {
			return fmt.Errorf("%w: big integer without value", ErrEncoding)
		}
		return writeValue(w, es, node.Type, node.BigInt.String()+"N")
	case ir.FloatType:
		return writeValue(w, es, node.Type, formatFloat(float64(node.Float64)))
	case ir.TextType:
		return writeValue(w, es, node.Type, token.Quote(node.Text))
	case ir.SymbolType:
		return writeIdent(w, es, node, "")
	case ir.KeywordType:
		return writeIdent(w, es, node, ":")
	case ir.ListType:
		return writeSeq(w, es, node, "(", ")")
	case ir.VectorType:
		return writeSeq(w, es, node, "[", "]")
	case ir.SetType:
		return writeSeq(w, es, node, "#{", "}")
	case ir.MapType:
		return writeMap(w, es, node)
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
	}
}

// formatFloat always yields a float literal: a fraction or an exponent is
// present, and the non finite values use their sentinel forms.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "#f NaN"
	case math.IsInf(f, 1):
		return "#f +Infinity"
	case math.IsInf(f, -1):
		return "#f -Infinity"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func writeIdent(w io.Writer, es *EncState, node *ir.Node, prefix string) error {
	if !validName(node) {
		return fmt.Errorf("%w: invalid %s name %q", ErrEncoding, node.Type, node.Name)
	}
	if node.Namespace != "" && token.Namespace([]byte(node.Namespace)) != len(node.Namespace) {
		return fmt.Errorf("%w: invalid %s namespace %q", ErrEncoding, node.Type, node.Namespace)
	}
	if err := writeString(w, colorize(es, node.Type, SepColor, prefix)); err != nil {
		return err
	}
	if node.Namespace != "" {
		if err := writeString(w, colorize(es, node.Type, NamespaceColor, node.Namespace+"/")); err != nil {
			return err
		}
	}
	return writeValue(w, es, node.Type, node.Name)
}

func validName(node *ir.Node) bool {
	if node.Type == ir.SymbolType && (node.Name == "." || node.Name == "...") {
		return true
	}
	return node.Name != "" && token.Name([]byte(node.Name)) == len(node.Name)
}

func writeSeq(w io.Writer, es *EncState, node *ir.Node, open, close string) error {
	if err := writeString(w, colorize(es, node.Type, SepColor, open)); err != nil {
		return err
	}
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeString(w, colorize(es, node.Type, SepColor, close))
}

func writeMap(w io.Writer, es *EncState, node *ir.Node) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: map with %d keys and %d values", ErrEncoding, len(node.Fields), len(node.Values))
	}
	if err := writeString(w, colorize(es, node.Type, SepColor, "{")); err != nil {
		return err
	}
	sep := " "
	if es.commas {
		sep = ", "
	}
	for i := range node.Fields {
		if i > 0 {
			if err := writeString(w, colorize(es, node.Type, SepColor, sep)); err != nil {
				return err
			}
		}
		if err := encode(node.Fields[i], w, es); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeString(w, colorize(es, node.Type, SepColor, "}"))
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	return writeString(w, colorize(es, t, ValueColor, s))
}

func colorize(es *EncState, t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil || s == "" {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
