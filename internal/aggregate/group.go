// Package aggregate groups payments by a key and ranks the resulting totals.
package aggregate

import "iter"

// GroupSum partitions seq by key and sums value within each partition.
//
// The summation order inside a partition follows seq; results are equal up to
// floating-point rounding for any permutation of the input. An empty seq
// yields an empty, non-nil map.
func GroupSum[T any](seq iter.Seq[T], key func(T) string, value func(T) float64) map[string]float64 {
	out := make(map[string]float64)
	for item := range seq {
		out[key(item)] += value(item)
	}
	return out
}

// GroupCount counts the items of seq sharing each key.
func GroupCount[T any](seq iter.Seq[T], key func(T) string) map[string]int {
	out := make(map[string]int)
	for item := range seq {
		out[key(item)]++
	}
	return out
}
