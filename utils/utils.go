package utils

import "golang.org/x/exp/constraints"

type Order uint8

const (
	DescOrder Order = iota
	AscOrder
)

func GetZero[T any]() T {
	var result T
	return result
}

// Compare builds a three-way comparator for ordered types.
// DescOrder flips the sign so that larger values sort first.
func Compare[T constraints.Ordered](order Order) func(a, b T) int {
	return func(a, b T) int {
		r := 0
		switch {
		case a < b:
			r = -1
		case a > b:
			r = 1
		}

		if order == DescOrder {
			return -r
		}

		return r
	}
}
