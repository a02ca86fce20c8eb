package ir

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromSetKeepsFirst(t *testing.T) {
	first := FromInt(1).WithSpan(Span{1, 2})
	second := FromInt(1).WithSpan(Span{5, 6})
	set := FromSet([]*Node{FromInt(3), first, FromInt(2), second, NaN(), NaN()})
	if set.Len() != 4 {
		t.Fatalf("got %d members, want 4", set.Len())
	}
	if set.Values[0] != first {
		t.Errorf("first occurrence should be kept, got span %s", set.Values[0].Span)
	}
	for i := 1; i < len(set.Values); i++ {
		if Compare(set.Values[i-1], set.Values[i]) >= 0 {
			t.Errorf("members %d and %d out of order", i-1, i)
		}
	}
	if !Contains(set, NaN()) || !Contains(set, FromInt(2)) || Contains(set, FromInt(4)) {
		t.Errorf("Contains")
	}
}

func TestFromKeyValsLaterWins(t *testing.T) {
	k1 := FromKeyword("", "a").WithSpan(Span{1, 3})
	k2 := FromKeyword("", "a").WithSpan(Span{6, 8})
	m := FromKeyVals([]KeyVal{
		{Key: FromKeyword("", "b"), Val: FromInt(0)},
		{Key: k1, Val: FromInt(1)},
		{Key: k2, Val: FromInt(2)},
	})
	if len(m.Fields) != 2 || len(m.Values) != 2 {
		t.Fatalf("got %d entries, want 2", len(m.Fields))
	}
	if m.Fields[0] != k2 {
		t.Errorf("later key should replace earlier one")
	}
	v := Get(m, FromKeyword("", "a"))
	if v == nil || v.Int64 != 2 {
		t.Errorf("Get(:a) = %v, want 2", v)
	}
	if Get(m, FromKeyword("", "c")) != nil {
		t.Errorf("Get(:c) should be nil")
	}
	kvs := m.KeyVals()
	if kvs[1].Key.Name != "b" || kvs[1].Val.Int64 != 0 {
		t.Errorf("KeyVals order")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	pairs := [][2]*Node{
		{NaN(), FromFloat(math.Float64frombits(0x7ff8000000000001))},
		{FromFloat(0), FromFloat(math.Copysign(0, -1))},
		{FromBigInt(big.NewInt(-12)), FromBigInt(big.NewInt(-12))},
		{
			FromSet([]*Node{FromInt(2), FromInt(1)}).WithSpan(Span{0, 9}),
			FromSet([]*Node{FromInt(1), FromInt(2)}),
		},
		{
			FromKeyVals([]KeyVal{{Key: FromSymbol("a", "b"), Val: FromText("x")}}),
			FromKeyVals([]KeyVal{{Key: FromSymbol("a", "b"), Val: FromText("x")}}),
		},
	}
	for i, p := range pairs {
		if !Equal(p[0], p[1]) {
			t.Errorf("pair %d: not equal", i)
			continue
		}
		if p[0].Hash() != p[1].Hash() {
			t.Errorf("pair %d: equal nodes with different hashes", i)
		}
	}
	if FromInt(1).Hash() == FromFloat(1).Hash() {
		t.Errorf("Integer and Float should hash differently")
	}
}

func TestWithoutSpans(t *testing.T) {
	v := FromVector([]*Node{
		FromInt(1).WithSpan(Span{1, 2}),
		FromKeyVals([]KeyVal{{
			Key: FromKeyword("", "k").WithSpan(Span{4, 6}),
			Val: FromBigInt(big.NewInt(3)).WithSpan(Span{7, 9}),
		}}).WithSpan(Span{3, 10}),
	}).WithSpan(Span{0, 11})
	w := v.WithoutSpans()
	if !Equal(v, w) {
		t.Fatalf("WithoutSpans changed the value")
	}
	w.Visit(func(n *Node, isPost bool) (bool, error) {
		if n.Span != (Span{}) {
			t.Errorf("%s has span %s", n.Type, n.Span)
		}
		return true, nil
	})
	if v.Values[1].Fields[0].Span != (Span{4, 6}) {
		t.Errorf("original was modified")
	}
	w.Values[1].Values[0].BigInt.SetInt64(4)
	if v.Values[1].Values[0].BigInt.Int64() != 3 {
		t.Errorf("big ints should be copied")
	}
}

func TestVisitOrder(t *testing.T) {
	m := FromKeyVals([]KeyVal{
		{Key: FromKeyword("", "a"), Val: FromList([]*Node{FromInt(1)})},
	})
	var got []string
	m.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			got = append(got, n.Type.String())
		}
		return true, nil
	})
	want := []string{"Map", "Keyword", "List", "Integer"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visit order (-want +got):\n%s", diff)
	}
}

func TestAccessors(t *testing.T) {
	if i, err := FromInt(4).AsInt(); err != nil || i != 4 {
		t.Errorf("AsInt = %d, %v", i, err)
	}
	if _, err := FromInt(4).AsText(); !errors.Is(err, ErrType) {
		t.Errorf("AsText on Integer: %v", err)
	}
	ns, name, err := FromKeyword("db", "ident").AsKeyword()
	if err != nil || ns != "db" || name != "ident" {
		t.Errorf("AsKeyword = %q %q %v", ns, name, err)
	}
	if _, _, err := FromKeyword("db", "ident").AsSymbol(); !errors.Is(err, ErrType) {
		t.Errorf("AsSymbol on Keyword: %v", err)
	}
}

func TestTypeText(t *testing.T) {
	for _, tt := range Types() {
		d, err := tt.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != tt {
			t.Errorf("%s round tripped to %s", tt, back)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	v := FromVector([]*Node{
		FromKeyword("a", "b").WithSpan(Span{1, 5}),
		NaN().WithSpan(Span{6, 12}),
	}).WithSpan(Span{0, 13})
	d, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"Vector","span":[0,13],"values":[` +
		`{"type":"Keyword","span":[1,5],"namespace":"a","name":"b"},` +
		`{"type":"Float","span":[6,12],"float":"NaN"}]}`
	if string(d) != want {
		t.Errorf("got %s\nwant %s", d, want)
	}
}
