package sortbench

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestInsertionSort_Concrete pins the scenario from the package contract.
func TestInsertionSort_Concrete(t *testing.T) {
	a := []int{3, 1, 2}
	InsertionSort(a)

	if diff := cmp.Diff([]int{1, 2, 3}, a); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// TestInsertionSort_MatchesReference checks against the standard library
// on every pattern at a size the quadratic sort can afford.
func TestInsertionSort_MatchesReference(t *testing.T) {
	for _, pattern := range AllPatterns() {
		input, err := Generate(2000, pattern, DefaultSeed)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		want := make([]int, len(input))
		copy(want, input)
		sort.Ints(want)

		got := make([]int, len(input))
		copy(got, input)
		InsertionSort(got)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: mismatch vs reference (-want +got):\n%s", pattern, diff)
		}

		AssertSortCorrect(t, InsertionSort[int], input)
	}
}

// TestInsertionSort_TrivialInputs covers the no-op lengths.
func TestInsertionSort_TrivialInputs(t *testing.T) {
	var empty []int
	InsertionSort(empty)

	one := []int{42}
	InsertionSort(one)
	if one[0] != 42 {
		t.Errorf("single element changed: %d", one[0])
	}
}

// TestInsertionSort_Stable verifies equal keys keep their input order.
func TestInsertionSort_Stable(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	input := make([]Element, 500)
	for i := range input {
		input[i] = Element{Key: rnd.Intn(10), Tag: i}
	}

	AssertStableSort(t, InsertionSortFunc[Element], input)
}

// TestInsertionSortStats_BestCase: sorted input costs exactly n-1
// comparisons and no shifts.
func TestInsertionSortStats_BestCase(t *testing.T) {
	const n = 1000
	a, err := Generate(n, PatternSorted, DefaultSeed)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	stats := InsertionSortStats(a)
	if stats.Comparisons != n-1 {
		t.Errorf("comparisons on sorted input: got %d, want %d", stats.Comparisons, n-1)
	}
	AssertAdaptive(t, stats, n, 1.0)
}

// TestInsertionSortStats_WorstCase: reversed input costs the full
// n(n-1)/2 comparisons.
func TestInsertionSortStats_WorstCase(t *testing.T) {
	const n = 200
	a, err := Generate(n, PatternReversed, DefaultSeed)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	stats := InsertionSortStats(a)
	want := int64(n * (n - 1) / 2)
	if stats.Comparisons != want {
		t.Errorf("comparisons on reversed input: got %d, want %d", stats.Comparisons, want)
	}
	t.Logf("reversed n=%d: %d comparisons, %d moves", n, stats.Comparisons, stats.Moves)
}
