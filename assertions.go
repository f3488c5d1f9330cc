package sortbench

import (
	"testing"

	"golang.org/x/exp/constraints"
)

// Element is a key/tag pair for stability checks: keys collide on
// purpose, tags record the original position so a reordering of equal
// keys is observable.
type Element struct {
	Key int
	Tag int
}

// ByKey orders Elements by key only, leaving tags invisible to the sort.
func ByKey(a, b Element) bool { return a.Key < b.Key }

// AssertSorted verifies got is non-decreasing.
func AssertSorted[T constraints.Ordered](t *testing.T, got []T) {
	t.Helper()

	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Errorf("not sorted at index %d: %v > %v", i, got[i-1], got[i])
			return
		}
	}

	t.Logf("✓ Sorted: %d elements non-decreasing", len(got))
}

// AssertPermutation verifies got holds exactly the same multiset of
// elements as original — nothing lost, duplicated or invented.
func AssertPermutation[T comparable](t *testing.T, original, got []T) {
	t.Helper()

	if len(original) != len(got) {
		t.Errorf("length changed: %d -> %d", len(original), len(got))
		return
	}

	counts := make(map[T]int, len(original))
	for _, v := range original {
		counts[v]++
	}
	for _, v := range got {
		counts[v]--
		if counts[v] < 0 {
			t.Errorf("element %v appears more often in output than in input", v)
			return
		}
	}
	for v, c := range counts {
		if c != 0 {
			t.Errorf("element %v lost from output (%d missing)", v, c)
			return
		}
	}

	t.Logf("✓ Permutation: same multiset of %d elements", len(got))
}

// AssertStableSort runs sortFn over a copy of input ordered ByKey and
// verifies equal keys keep their original relative order (tags ascending
// within each key group).
func AssertStableSort(t *testing.T, sortFn func([]Element, func(a, b Element) bool), input []Element) {
	t.Helper()

	got := make([]Element, len(input))
	copy(got, input)
	sortFn(got, ByKey)

	for i := 1; i < len(got); i++ {
		if got[i].Key < got[i-1].Key {
			t.Errorf("not sorted by key at index %d: %v > %v", i, got[i-1], got[i])
			return
		}
		if got[i].Key == got[i-1].Key && got[i].Tag < got[i-1].Tag {
			t.Errorf("stability violated at index %d: key %d, tag %d placed after tag %d",
				i, got[i].Key, got[i].Tag, got[i-1].Tag)
			return
		}
	}

	t.Logf("✓ Stable: %d elements, equal keys keep input order", len(got))
}

// AssertAdaptive verifies an instrumented sort stayed within a linear
// comparison budget: Comparisons ≤ maxFactor·n. This is how the O(n)
// best-case claim of the hybrid sort is checked — with an operation
// count, not a clock.
func AssertAdaptive(t *testing.T, stats Stats, n int, maxFactor float64) {
	t.Helper()

	budget := int64(maxFactor * float64(n))
	if stats.Comparisons > budget {
		t.Errorf("comparison count not linear: %d comparisons for n=%d (budget %d = %.1f·n)",
			stats.Comparisons, n, budget, maxFactor)
		return
	}

	t.Logf("✓ Adaptive: %d comparisons for n=%d (budget %.1f·n)", stats.Comparisons, n, maxFactor)
}

// AssertComplexityClass fits a power law to one measured series and
// verifies the fitted exponent classifies as want.
func AssertComplexityClass(t *testing.T, records []TimingRecord, want ComplexityClass) {
	t.Helper()

	fit, err := FitPowerLaw(records)
	if err != nil {
		t.Fatalf("power law fit failed: %v", err)
	}

	got := Classify(fit.Exponent)
	if got != want {
		t.Errorf("complexity class mismatch: exponent %.3f classifies as %s, want %s (R²=%.4f)",
			fit.Exponent, got, want, fit.RSquared)
		return
	}

	t.Logf("✓ Complexity: exponent %.3f → %s (R²=%.4f)", fit.Exponent, got, fit.RSquared)
}

// AssertSortCorrect runs the full correctness battery for one sort
// function on one input: the output is a sorted permutation of the
// input, and sorting again changes nothing (idempotence).
func AssertSortCorrect(t *testing.T, sortFn func([]int), input []int) {
	t.Helper()

	got := make([]int, len(input))
	copy(got, input)
	sortFn(got)

	AssertSorted(t, got)
	AssertPermutation(t, input, got)

	again := make([]int, len(got))
	copy(again, got)
	sortFn(again)
	for i := range got {
		if again[i] != got[i] {
			t.Errorf("not idempotent: second sort changed index %d: %d -> %d", i, got[i], again[i])
			return
		}
	}
}
