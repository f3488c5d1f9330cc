package sortbench

import "golang.org/x/exp/constraints"

// Stats counts the primitive operations performed by a single sort call.
// Comparisons is exact; Moves counts element writes (including copies in
// and out of auxiliary buffers for the merge-based sorts).
//
// The Stats variants exist for empirical complexity verification: an
// adaptive sort on already-sorted input must show O(n) comparisons, and
// that claim is only testable with an operation count, not a clock.
type Stats struct {
	Comparisons int64
	Moves       int64
}

func orderedLess[T constraints.Ordered](a, b T) bool { return a < b }

// countingLess wraps less so every comparison is tallied.
func countingLess[T any](less func(a, b T) bool, stats *Stats) func(a, b T) bool {
	return func(a, b T) bool {
		stats.Comparisons++
		return less(a, b)
	}
}
