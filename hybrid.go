package sortbench

import "golang.org/x/exp/constraints"

const (
	// minMerge is the smallest input length that engages the full
	// run-merging machinery; anything shorter is handled by a single
	// binary insertion pass over the initial run.
	minMerge = 32

	// initialMinGallop is how many consecutive comparisons one run must
	// win before a merge switches into galloping mode.
	initialMinGallop = 7

	// initialTmpLen caps the merge buffer allocated up front; merges of
	// longer runs grow it on demand.
	initialTmpLen = 256
)

// HybridSort sorts a in place using a run-adaptive hybrid of insertion
// sort and merge sort (the timsort family).
//
// The input is scanned left to right for maximal runs: ascending runs
// are taken as-is, strictly descending runs are reversed in place. Runs
// shorter than a size-derived minimum are extended with binary insertion
// sort. Pending runs sit on a stack and are merged whenever the classic
// balance invariants are violated, using a galloping merge that skips
// over long already-ordered stretches.
//
// O(n) comparisons on sorted or reverse-sorted input (a single run after
// normalization), O(n log n) worst case. Stable.
func HybridSort[T constraints.Ordered](a []T) {
	hybridSort(a, orderedLess[T], nil)
}

// HybridSortFunc is HybridSort under a caller-supplied ordering.
func HybridSortFunc[T any](a []T, less func(a, b T) bool) {
	hybridSort(a, less, nil)
}

// HybridSortStats sorts a in place and reports operation counts.
func HybridSortStats[T constraints.Ordered](a []T) Stats {
	var stats Stats
	hybridSort(a, countingLess(orderedLess[T], &stats), &stats)
	return stats
}

func hybridSort[T any](a []T, less func(a, b T) bool, stats *Stats) {
	n := len(a)
	if n < 2 {
		return
	}

	if n < minMerge {
		initRun := countRunAndMakeAscending(a, 0, n, less, stats)
		binaryInsertionSort(a, 0, n, initRun, less, stats)
		return
	}

	h := &hybridSorter[T]{
		a:         a,
		less:      less,
		stats:     stats,
		minGallop: initialMinGallop,
		tmp:       make([]T, tmpLen(n)),
		runBase:   make([]int, pendingRunCapacity(n)),
		runLen:    make([]int, pendingRunCapacity(n)),
	}

	minRun := minRunLength(n)
	lo, remaining := 0, n
	for remaining > 0 {
		runLen := countRunAndMakeAscending(a, lo, lo+remaining, less, stats)

		// Short natural run: extend it to minRun (or to the end of the
		// input) with binary insertion sort.
		if runLen < minRun {
			force := minRun
			if remaining < force {
				force = remaining
			}
			binaryInsertionSort(a, lo, lo+force, lo+runLen, less, stats)
			runLen = force
		}

		h.pushRun(lo, runLen)
		h.mergeCollapse()

		lo += runLen
		remaining -= runLen
	}

	h.mergeForceCollapse()
}

// hybridSorter holds the merge state for one HybridSort call: the
// pending-run stack, the shared merge buffer, and the adaptive gallop
// threshold.
type hybridSorter[T any] struct {
	a     []T
	less  func(a, b T) bool
	stats *Stats

	minGallop int
	tmp       []T

	// Pending-run stack. runBase[i]+runLen[i] == runBase[i+1]: the runs
	// partition a[0:lo] exactly, no gaps or overlaps.
	runBase   []int
	runLen    []int
	stackSize int
}

// countRunAndMakeAscending returns the length of the maximal run
// starting at lo. An ascending run (a[i] <= a[i+1]) is left alone; a
// strictly descending run is reversed in place. Strictness matters:
// reversing a descending run with equal elements would break stability.
func countRunAndMakeAscending[T any](a []T, lo, hi int, less func(a, b T) bool, stats *Stats) int {
	runHi := lo + 1
	if runHi == hi {
		return 1
	}

	if less(a[runHi], a[lo]) {
		runHi++
		for runHi < hi && less(a[runHi], a[runHi-1]) {
			runHi++
		}
		reverseRange(a, lo, runHi)
		if stats != nil {
			stats.Moves += int64(runHi - lo)
		}
	} else {
		runHi++
		for runHi < hi && !less(a[runHi], a[runHi-1]) {
			runHi++
		}
	}

	return runHi - lo
}

func reverseRange[T any](a []T, lo, hi int) {
	hi--
	for lo < hi {
		a[lo], a[hi] = a[hi], a[lo]
		lo++
		hi--
	}
}

// minRunLength returns the minimum run length for an input of length n:
// n itself when n < minMerge, otherwise a value in [minMerge/2, minMerge]
// chosen so that n/minRun is close to, but no larger than, a power of 2.
// Balanced merges come from that power-of-2 shape.
func minRunLength(n int) int {
	r := 0
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

// pendingRunCapacity sizes the run stack so it cannot overflow for an
// input of length n, given the balance invariants (runs on the stack
// grow at least as fast as Fibonacci numbers).
func pendingRunCapacity(n int) int {
	switch {
	case n < 120:
		return 5
	case n < 1542:
		return 10
	case n < 119151:
		return 24
	default:
		return 49
	}
}

func tmpLen(n int) int {
	if n < 2*initialTmpLen {
		return n >> 1
	}
	return initialTmpLen
}

func (h *hybridSorter[T]) pushRun(base, length int) {
	h.runBase[h.stackSize] = base
	h.runLen[h.stackSize] = length
	h.stackSize++
}

// mergeCollapse restores the stack invariants after a push:
//
//	runLen[i-2] > runLen[i-1] + runLen[i]
//	runLen[i-1] > runLen[i]
//
// checked one entry deeper as well, so a violation buried by a single
// push cannot survive. When an invariant fails, the smaller neighbor of
// the violating run is merged first.
func (h *hybridSorter[T]) mergeCollapse() {
	for h.stackSize > 1 {
		n := h.stackSize - 2
		switch {
		case n > 0 && h.runLen[n-1] <= h.runLen[n]+h.runLen[n+1]:
			if h.runLen[n-1] < h.runLen[n+1] {
				n--
			}
			h.mergeAt(n)
		case h.runLen[n] <= h.runLen[n+1]:
			h.mergeAt(n)
		default:
			return
		}
	}
}

// mergeForceCollapse merges all pending runs down to one. Called once,
// at the end of the input.
func (h *hybridSorter[T]) mergeForceCollapse() {
	for h.stackSize > 1 {
		n := h.stackSize - 2
		if n > 0 && h.runLen[n-1] < h.runLen[n+1] {
			n--
		}
		h.mergeAt(n)
	}
}

// mergeAt merges the adjacent runs at stack positions i and i+1, where i
// is the second- or third-from-top entry. Elements of the first run that
// precede the second run's minimum, and elements of the second run that
// follow the first run's maximum, are located by galloping and excluded
// from the merge up front.
func (h *hybridSorter[T]) mergeAt(i int) {
	base1, len1 := h.runBase[i], h.runLen[i]
	base2, len2 := h.runBase[i+1], h.runLen[i+1]

	h.runLen[i] = len1 + len2
	if i == h.stackSize-3 {
		h.runBase[i+1] = h.runBase[i+2]
		h.runLen[i+1] = h.runLen[i+2]
	}
	h.stackSize--

	k := gallopRight(h.a[base2], h.a, base1, len1, 0, h.less)
	base1 += k
	len1 -= k
	if len1 == 0 {
		return
	}

	len2 = gallopLeft(h.a[base1+len1-1], h.a, base2, len2, len2-1, h.less)
	if len2 == 0 {
		return
	}

	// Merge what remains, buffering the shorter side.
	if len1 <= len2 {
		h.mergeLo(base1, len1, base2, len2)
	} else {
		h.mergeHi(base1, len1, base2, len2)
	}
}

// mergeLo merges two adjacent runs with len1 <= len2, buffering the
// first run and merging front to back. Starts in one-at-a-time mode;
// when one run wins minGallop comparisons in a row, switches to
// galloping, and backs off again when galloping stops paying.
func (h *hybridSorter[T]) mergeLo(base1, len1, base2, len2 int) {
	a := h.a
	less := h.less
	tmp := h.ensureTmp(len1)
	copy(tmp, a[base1:base1+len1])
	h.move(len1)

	cursor1 := 0     // into tmp
	cursor2 := base2 // into a
	dest := base1    // into a

	// The second run's first element precedes the whole first run here
	// (mergeAt trimmed anything smaller), so move it unconditionally.
	a[dest] = a[cursor2]
	dest++
	cursor2++
	len2--
	h.move(1)
	if len2 == 0 {
		copy(a[dest:], tmp[cursor1:cursor1+len1])
		h.move(len1)
		return
	}
	if len1 == 1 {
		copy(a[dest:], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1]
		h.move(len2 + 1)
		return
	}

	minGallop := h.minGallop
outer:
	for {
		count1, count2 := 0, 0

		// One-at-a-time mode.
		for {
			if less(a[cursor2], tmp[cursor1]) {
				a[dest] = a[cursor2]
				dest++
				cursor2++
				count2++
				count1 = 0
				len2--
				h.move(1)
				if len2 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor1]
				dest++
				cursor1++
				count1++
				count2 = 0
				len1--
				h.move(1)
				if len1 == 1 {
					break outer
				}
			}
			if count1|count2 >= minGallop {
				break
			}
		}

		// Galloping mode.
		for {
			count1 = gallopRight(a[cursor2], tmp, cursor1, len1, 0, less)
			if count1 != 0 {
				copy(a[dest:], tmp[cursor1:cursor1+count1])
				h.move(count1)
				dest += count1
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor2]
			dest++
			cursor2++
			len2--
			h.move(1)
			if len2 == 0 {
				break outer
			}

			count2 = gallopLeft(tmp[cursor1], a, cursor2, len2, 0, less)
			if count2 != 0 {
				copy(a[dest:], a[cursor2:cursor2+count2])
				h.move(count2)
				dest += count2
				cursor2 += count2
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor1]
			dest++
			cursor1++
			len1--
			h.move(1)
			if len1 == 1 {
				break outer
			}

			minGallop--
			if count1 < initialMinGallop && count2 < initialMinGallop {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2 // penalize leaving gallop mode
	}
	if minGallop < 1 {
		minGallop = 1
	}
	h.minGallop = minGallop

	if len1 == 1 {
		copy(a[dest:], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1] // last element of run 1 ends the merge
		h.move(len2 + 1)
	} else {
		copy(a[dest:], tmp[cursor1:cursor1+len1])
		h.move(len1)
	}
}

// mergeHi is the mirror of mergeLo for len1 > len2: buffer the second
// run and merge back to front.
func (h *hybridSorter[T]) mergeHi(base1, len1, base2, len2 int) {
	a := h.a
	less := h.less
	tmp := h.ensureTmp(len2)
	copy(tmp, a[base2:base2+len2])
	h.move(len2)

	cursor1 := base1 + len1 - 1 // into a
	cursor2 := len2 - 1         // into tmp
	dest := base2 + len2 - 1    // into a

	// The first run's last element follows the whole second run here.
	a[dest] = a[cursor1]
	dest--
	cursor1--
	len1--
	h.move(1)
	if len1 == 0 {
		copy(a[dest-(len2-1):], tmp[:len2])
		h.move(len2)
		return
	}
	if len2 == 1 {
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2]
		h.move(len1 + 1)
		return
	}

	minGallop := h.minGallop
outer:
	for {
		count1, count2 := 0, 0

		// One-at-a-time mode.
		for {
			if less(tmp[cursor2], a[cursor1]) {
				a[dest] = a[cursor1]
				dest--
				cursor1--
				count1++
				count2 = 0
				len1--
				h.move(1)
				if len1 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor2]
				dest--
				cursor2--
				count2++
				count1 = 0
				len2--
				h.move(1)
				if len2 == 1 {
					break outer
				}
			}
			if count1|count2 >= minGallop {
				break
			}
		}

		// Galloping mode.
		for {
			count1 = len1 - gallopRight(tmp[cursor2], a, base1, len1, len1-1, less)
			if count1 != 0 {
				dest -= count1
				cursor1 -= count1
				len1 -= count1
				copy(a[dest+1:], a[cursor1+1:cursor1+1+count1])
				h.move(count1)
				if len1 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor2]
			dest--
			cursor2--
			len2--
			h.move(1)
			if len2 == 1 {
				break outer
			}

			count2 = len2 - gallopLeft(a[cursor1], tmp, 0, len2, len2-1, less)
			if count2 != 0 {
				dest -= count2
				cursor2 -= count2
				len2 -= count2
				copy(a[dest+1:], tmp[cursor2+1:cursor2+1+count2])
				h.move(count2)
				if len2 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor1]
			dest--
			cursor1--
			len1--
			h.move(1)
			if len1 == 0 {
				break outer
			}

			minGallop--
			if count1 < initialMinGallop && count2 < initialMinGallop {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2 // penalize leaving gallop mode
	}
	if minGallop < 1 {
		minGallop = 1
	}
	h.minGallop = minGallop

	if len2 == 1 {
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2] // first element of run 2 opens the merge
		h.move(len1 + 1)
	} else {
		copy(a[dest-(len2-1):], tmp[:len2])
		h.move(len2)
	}
}

func (h *hybridSorter[T]) ensureTmp(n int) []T {
	if cap(h.tmp) < n {
		h.tmp = make([]T, n)
	}
	return h.tmp[:n]
}

func (h *hybridSorter[T]) move(n int) {
	if h.stats != nil {
		h.stats.Moves += int64(n)
	}
}

// gallopLeft returns the leftmost index k in [0, n] such that inserting
// key at a[base+k] keeps a[base:base+n] sorted: a[base+k-1] < key <=
// a[base+k]. The search starts from hint with exponentially growing
// steps, then binary-searches the bracketed range. Equal elements
// resolve to the left, which is what keeps merges stable when key comes
// from the left run.
func gallopLeft[T any](key T, a []T, base, n, hint int, less func(a, b T) bool) int {
	lastOfs, ofs := 0, 1
	if less(a[base+hint], key) {
		// Gallop right until a[base+hint+lastOfs] < key <= a[base+hint+ofs].
		maxOfs := n - hint
		for ofs < maxOfs && less(a[base+hint+ofs], key) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	} else {
		// Gallop left until a[base+hint-ofs] < key <= a[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && !less(a[base+hint-ofs], key) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}

	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)/2
		if less(a[base+m], key) {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}

// gallopRight is gallopLeft's mirror: the rightmost index k such that
// a[base+k-1] <= key < a[base+k]. Equal elements resolve to the right,
// for keys coming from the right run.
func gallopRight[T any](key T, a []T, base, n, hint int, less func(a, b T) bool) int {
	lastOfs, ofs := 0, 1
	if less(key, a[base+hint]) {
		// Gallop left until a[base+hint-ofs] <= key < a[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && less(key, a[base+hint-ofs]) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		// Gallop right until a[base+hint+lastOfs] <= key < a[base+hint+ofs].
		maxOfs := n - hint
		for ofs < maxOfs && !less(key, a[base+hint+ofs]) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	}

	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)/2
		if less(key, a[base+m]) {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}
