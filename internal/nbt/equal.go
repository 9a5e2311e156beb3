package nbt

import (
	"math"
	"slices"
)

// Equal reports whether a and b have the same kind and value. Lists compare
// element by element; compounds compare by key regardless of order.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case Float:
		return sameFloat(float64(x), float64(b.(Float)))
	case Double:
		return sameFloat(float64(x), float64(b.(Double)))
	case ByteArray:
		return slices.Equal(x, b.(ByteArray))
	case IntArray:
		return slices.Equal(x, b.(IntArray))
	case LongArray:
		return slices.Equal(x, b.(LongArray))
	case *List:
		y := b.(*List)
		if x == y {
			return true
		}
		return slices.EqualFunc(x.elems, y.elems, Equal)
	case *Compound:
		y := b.(*Compound)
		if x == y {
			return true
		}
		if x.Len() != y.Len() {
			return false
		}
		for name, t := range x.All() {
			other, ok := y.Get(name)
			if !ok || !Equal(t, other) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func sameFloat(a, b float64) bool {
	return a == b || math.IsNaN(a) && math.IsNaN(b)
}
