package ir

import (
	"math"
	"math/big"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking
		{"Nil < Bool", Nil(), FromBool(false), -1},
		{"Bool < Integer", FromBool(true), FromInt(0), -1},
		{"Integer < BigInteger", FromInt(5), FromBigInt(big.NewInt(1)), -1},
		{"BigInteger < Float", FromBigInt(big.NewInt(5)), FromFloat(1), -1},
		{"Float < Text", FromFloat(1), FromText(""), -1},
		{"Text < Symbol", FromText("z"), FromSymbol("", "a"), -1},
		{"Symbol < Keyword", FromSymbol("z", "z"), FromKeyword("", "a"), -1},
		{"Keyword < List", FromKeyword("", "a"), FromList(nil), -1},
		{"List < Vector", FromList([]*Node{FromInt(9)}), FromVector(nil), -1},
		{"Vector < Set", FromVector(nil), FromSet(nil), -1},
		{"Set < Map", FromSet(nil), FromKeyVals(nil), -1},

		// no numeric tower
		{"Integer != Float", FromInt(1), FromFloat(1), -1},
		{"Integer != BigInteger", FromInt(1), FromBigInt(big.NewInt(1)), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},
		{"Int < Int", FromInt(-2), FromInt(1), -1},
		{"Big < Big", FromBigInt(big.NewInt(-2)), FromBigInt(big.NewInt(1)), -1},
		{"Big == Big", FromBigInt(big.NewInt(7)), FromBigInt(big.NewInt(7)), 0},
		{"Float < Float", FromFloat(1.5), FromFloat(2), -1},
		{"-Inf < Float", Inf(-1), FromFloat(-1e300), -1},
		{"Float < +Inf", FromFloat(1e300), Inf(1), -1},
		{"+Inf < NaN", Inf(1), NaN(), -1},
		{"NaN == NaN", NaN(), NaN(), 0},
		{"-0 == 0", FromFloat(math.Copysign(0, -1)), FromFloat(0), 0},
		{"Text < Text", FromText("a"), FromText("b"), -1},

		{"plain < namespaced", FromSymbol("", "z"), FromSymbol("a", "a"), -1},
		{"namespace first", FromKeyword("a", "z"), FromKeyword("b", "a"), -1},
		{"name second", FromKeyword("a", "a"), FromKeyword("a", "b"), -1},
		{"keyword == keyword", FromKeyword("a", "b"), FromKeyword("a", "b"), 0},

		{"Empty == Empty", FromVector(nil), FromVector([]*Node{}), 0},
		{"Short < Long", FromVector([]*Node{FromInt(1)}), FromVector([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Element Comparison", FromList([]*Node{FromInt(2)}), FromList([]*Node{FromInt(1), FromInt(5)}), 1},

		{"Map Key Comparison",
			FromKeyVals([]KeyVal{{Key: FromKeyword("", "a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromKeyword("", "b"), Val: FromInt(1)}}),
			-1},
		{"Map Value Comparison",
			FromKeyVals([]KeyVal{{Key: FromKeyword("", "a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromKeyword("", "a"), Val: FromInt(2)}}),
			-1},
		{"Sets by content",
			FromSet([]*Node{FromInt(2), FromInt(1)}),
			FromSet([]*Node{FromInt(1), FromInt(2)}),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestCompareIgnoresSpans(t *testing.T) {
	a := FromInt(1).WithSpan(Span{0, 1})
	b := FromInt(1).WithSpan(Span{5, 6})
	if !Equal(a, b) {
		t.Errorf("spans should not affect equality")
	}
}
