package sortbench

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidArgument is returned when a caller passes a negative size or
// an unrecognized pattern or algorithm name. Wrap-checked with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Pattern names an input distribution for the generator.
type Pattern string

const (
	// PatternRandom is uniformly sampled values, independent per position.
	PatternRandom Pattern = "random"

	// PatternSorted is 0..n-1, already in non-decreasing order.
	PatternSorted Pattern = "sorted"

	// PatternReversed is n-1..0, strictly decreasing (a single descending
	// run, which run-adaptive sorts normalize with one reversal).
	PatternReversed Pattern = "reversed"

	// PatternNearlySorted starts from PatternSorted and applies random
	// pairwise swaps to roughly 1% of positions. Swaps may overlap or
	// cancel; that is the defined semantics, not corrected.
	PatternNearlySorted Pattern = "nearly_sorted"
)

// AllPatterns returns every supported pattern, in presentation order.
func AllPatterns() []Pattern {
	return []Pattern{PatternRandom, PatternSorted, PatternReversed, PatternNearlySorted}
}

// DefaultSeed is the seed used by DefaultConfig. Any fixed seed gives a
// reproducible dataset; 42 keeps historical results comparable.
const DefaultSeed int64 = 42

// randomValueMax bounds the values drawn for PatternRandom.
const randomValueMax = 1_000_000

// nearlySortedSwapFraction is the fraction of positions perturbed by
// PatternNearlySorted. Each swap picks two independent uniform positions,
// so the result differs from sorted order in at most 2×round(0.01n) spots.
const nearlySortedSwapFraction = 0.01

// Generate produces a sequence of length n following the given pattern.
// Generation is deterministic for a given (n, pattern, seed) triple.
//
// n = 0 and n = 1 yield trivially sorted sequences for every pattern.
// A negative n or an unknown pattern fails with ErrInvalidArgument and
// allocates nothing.
func Generate(n int, pattern Pattern, seed int64) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n)
	}

	switch pattern {
	case PatternRandom:
		rnd := rand.New(rand.NewSource(seed))
		a := make([]int, n)
		for i := range a {
			a[i] = rnd.Intn(randomValueMax + 1)
		}
		return a, nil

	case PatternSorted:
		a := make([]int, n)
		for i := range a {
			a[i] = i
		}
		return a, nil

	case PatternReversed:
		a := make([]int, n)
		for i := range a {
			a[i] = n - 1 - i
		}
		return a, nil

	case PatternNearlySorted:
		a := make([]int, n)
		for i := range a {
			a[i] = i
		}
		if n < 2 {
			return a, nil
		}
		rnd := rand.New(rand.NewSource(seed))
		swaps := int(math.Round(nearlySortedSwapFraction * float64(n)))
		for s := 0; s < swaps; s++ {
			i, j := rnd.Intn(n), rnd.Intn(n)
			a[i], a[j] = a[j], a[i]
		}
		return a, nil

	default:
		return nil, fmt.Errorf("%w: unknown pattern %q", ErrInvalidArgument, pattern)
	}
}
