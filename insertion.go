package sortbench

import "golang.org/x/exp/constraints"

// InsertionSort sorts a in place: each element is held out, strictly
// greater elements to its left are shifted right one position, and the
// held element drops into the gap. Stable, because only strictly greater
// elements are shifted past.
//
// O(n) comparisons on already-sorted input, O(n²) on random or reversed
// input. No auxiliary storage beyond the held element, which makes it
// the right tool for short or nearly-sorted sequences and useless for
// large random ones.
func InsertionSort[T constraints.Ordered](a []T) {
	insertionSort(a, orderedLess[T], nil)
}

// InsertionSortFunc is InsertionSort under a caller-supplied ordering.
func InsertionSortFunc[T any](a []T, less func(a, b T) bool) {
	insertionSort(a, less, nil)
}

// InsertionSortStats sorts a in place and reports operation counts.
func InsertionSortStats[T constraints.Ordered](a []T) Stats {
	var stats Stats
	insertionSort(a, countingLess(orderedLess[T], &stats), &stats)
	return stats
}

func insertionSort[T any](a []T, less func(a, b T) bool, stats *Stats) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && less(key, a[j]) {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
		if stats != nil {
			stats.Moves += int64(i - j) // shifts plus the final insert
		}
	}
}

// binaryInsertionSort sorts a[lo:hi] given that a[lo:start] is already
// sorted. The insertion point is found by binary search, landing after
// any run of equal elements to keep the sort stable. Comparisons drop to
// O(n log n) but moves stay quadratic, so this is only used on the short
// ranges the hybrid sort feeds it.
func binaryInsertionSort[T any](a []T, lo, hi, start int, less func(a, b T) bool, stats *Stats) {
	if start == lo {
		start++
	}
	for ; start < hi; start++ {
		pivot := a[start]

		left, right := lo, start
		for left < right {
			mid := int(uint(left+right) >> 1)
			if less(pivot, a[mid]) {
				right = mid
			} else {
				left = mid + 1
			}
		}

		copy(a[left+1:start+1], a[left:start])
		a[left] = pivot
		if stats != nil {
			stats.Moves += int64(start-left) + 1
		}
	}
}
