// Package linkcut: built-in combine functions for common path aggregates.
package linkcut

import "golang.org/x/exp/constraints"

// CombineFunc folds two aggregate values into one. It must be associative
// and order-insensitive: reversal of a path (MakeRoot) may feed operands in
// either order.
type CombineFunc[V any] func(a, b V) V

// Numeric constrains the value types accepted by Sum.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Sum returns a combiner that adds values; with unit values it counts
// path length in nodes.
func Sum[T Numeric]() CombineFunc[T] {
	return func(a, b T) T { return a + b }
}

// Min returns a combiner that keeps the smaller value.
func Min[T constraints.Ordered]() CombineFunc[T] {
	return func(a, b T) T {
		if a < b {
			return a
		}

		return b
	}
}

// Max returns a combiner that keeps the larger value.
func Max[T constraints.Ordered]() CombineFunc[T] {
	return func(a, b T) T {
		if a > b {
			return a
		}

		return b
	}
}
