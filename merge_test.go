package sortbench

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestMergeSort_Concrete pins the scenario from the package contract.
func TestMergeSort_Concrete(t *testing.T) {
	a := []int{5, 4, 3, 2, 1}
	MergeSort(a)

	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, a); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// TestMergeSort_MatchesReference checks against the standard library on
// every pattern.
func TestMergeSort_MatchesReference(t *testing.T) {
	for _, pattern := range AllPatterns() {
		input, err := Generate(5000, pattern, DefaultSeed)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		want := make([]int, len(input))
		copy(want, input)
		sort.Ints(want)

		got := make([]int, len(input))
		copy(got, input)
		MergeSort(got)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: mismatch vs reference (-want +got):\n%s", pattern, diff)
		}

		AssertSortCorrect(t, MergeSort[int], input)
	}
}

// TestMergeSort_TrivialInputs covers the no-op lengths.
func TestMergeSort_TrivialInputs(t *testing.T) {
	var empty []int
	MergeSort(empty)

	one := []int{42}
	MergeSort(one)
	if one[0] != 42 {
		t.Errorf("single element changed: %d", one[0])
	}
}

// TestMergeSort_Stable verifies ties break in favor of the left half all
// the way up the recursion.
func TestMergeSort_Stable(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	input := make([]Element, 3000)
	for i := range input {
		input[i] = Element{Key: rnd.Intn(20), Tag: i}
	}

	AssertStableSort(t, MergeSortFunc[Element], input)
}

// TestMergeSortStats_Linearithmic bounds comparisons by n·⌈log2 n⌉ on
// every pattern — merge sort does the same work regardless of existing
// order, which is exactly what makes it the non-adaptive baseline.
func TestMergeSortStats_Linearithmic(t *testing.T) {
	const n = 4096
	budget := int64(n * int(math.Ceil(math.Log2(n))))

	for _, pattern := range AllPatterns() {
		a, err := Generate(n, pattern, DefaultSeed)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		stats := MergeSortStats(a)
		if stats.Comparisons > budget {
			t.Errorf("%s: comparisons %d exceed n·log2(n) budget %d", pattern, stats.Comparisons, budget)
		}
		t.Logf("%s n=%d: %d comparisons (budget %d)", pattern, n, stats.Comparisons, budget)
	}
}
