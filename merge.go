package sortbench

import "golang.org/x/exp/constraints"

// MergeSort sorts a in place from the caller's point of view. One
// auxiliary buffer of ⌈n/2⌉ elements is allocated per call and released
// on return; the recursion reuses it at every level.
//
// Classic top-down merge sort: split at the midpoint until sub-length
// ≤ 1, then merge adjacent sorted halves, breaking ties in favor of the
// left half so the sort stays stable. O(n log n) comparisons regardless
// of existing order; deliberately not adaptive, which is exactly what
// makes it a useful baseline next to the hybrid sort.
func MergeSort[T constraints.Ordered](a []T) {
	mergeSortRoot(a, orderedLess[T], nil)
}

// MergeSortFunc is MergeSort under a caller-supplied ordering.
func MergeSortFunc[T any](a []T, less func(a, b T) bool) {
	mergeSortRoot(a, less, nil)
}

// MergeSortStats sorts a in place and reports operation counts.
func MergeSortStats[T constraints.Ordered](a []T) Stats {
	var stats Stats
	mergeSortRoot(a, countingLess(orderedLess[T], &stats), &stats)
	return stats
}

func mergeSortRoot[T any](a []T, less func(a, b T) bool, stats *Stats) {
	if len(a) < 2 {
		return
	}
	buf := make([]T, (len(a)+1)/2)
	mergeSort(a, buf, less, stats)
}

func mergeSort[T any](a, buf []T, less func(a, b T) bool, stats *Stats) {
	if len(a) < 2 {
		return
	}
	mid := len(a) / 2
	mergeSort(a[:mid], buf, less, stats)
	mergeSort(a[mid:], buf, less, stats)
	mergeHalves(a, mid, buf, less, stats)
}

// mergeHalves merges the sorted halves a[:mid] and a[mid:]. The left
// half is copied into buf first; merging back never overwrites an unread
// right-half element because the write cursor trails the right cursor.
func mergeHalves[T any](a []T, mid int, buf []T, less func(a, b T) bool, stats *Stats) {
	left := buf[:mid]
	copy(left, a[:mid])

	i, j, k := 0, mid, 0
	for i < len(left) && j < len(a) {
		if less(a[j], left[i]) {
			a[k] = a[j]
			j++
		} else {
			a[k] = left[i]
			i++
		}
		k++
	}
	for i < len(left) {
		a[k] = left[i]
		i++
		k++
	}
	// Right-half leftovers are already in place.

	if stats != nil {
		stats.Moves += int64(mid) + int64(k)
	}
}
