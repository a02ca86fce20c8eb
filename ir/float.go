package ir

import (
	"cmp"
	"math"
)

// OrderedFloat is a float64 under a total order: NaN equals NaN and sorts
// after every other value, and -0 equals +0.
type OrderedFloat float64

func (f OrderedFloat) IsNaN() bool {
	return math.IsNaN(float64(f))
}

func (f OrderedFloat) Compare(g OrderedFloat) int {
	fn, gn := f.IsNaN(), g.IsNaN()
	switch {
	case fn && gn:
		return 0
	case fn:
		return 1
	case gn:
		return -1
	}
	return cmp.Compare(float64(f), float64(g))
}
