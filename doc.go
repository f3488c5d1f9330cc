// Package sortbench measures the empirical complexity of comparison
// sorts.
//
// # Overview
//
// sortbench implements three classic stable sorts from first principles
// — insertion sort, merge sort, and a run-adaptive hybrid sort — and a
// benchmark harness that times them across input sizes and input
// distributions, then derives growth ratios and power-law fits from the
// raw timings.
//
// Unlike a throughput benchmark that answers "how fast is this?", the
// harness answers "how does it grow?": the ratio between elapsed times
// at consecutive sizes is the empirical fingerprint of the complexity
// class (×2 per doubling for O(n), ×2.2 for O(n log n), ×4 for O(n²)).
//
// # Architecture
//
// The package components:
//
//   - pattern.go    - Input generators (random, sorted, reversed, nearly_sorted)
//   - insertion.go  - In-place insertion sort
//   - merge.go      - Top-down merge sort
//   - hybrid.go     - Run-adaptive hybrid sort with galloping merges
//   - harness.go    - Trial matrix runner producing timing records
//   - growth.go     - Growth ratios, power-law fitting, classification
//   - assertions.go - Test helpers for sort properties
//
// # Quick Start
//
// Run the default measurement matrix:
//
//	report, err := sortbench.Run(ctx, sortbench.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, g := range report.Growth {
//	    fmt.Printf("%s/%s %d→%d: ×%.2f\n",
//	        g.Pattern, g.Algorithm, g.FromSize, g.ToSize, g.Ratio)
//	}
//
// Fit a whole series to t = c·n^p and classify it:
//
//	fit, err := sortbench.FitPowerLaw(report.Series(
//	    sortbench.PatternRandom, sortbench.AlgorithmMerge))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("exponent %.2f → %s\n", fit.Exponent, sortbench.Classify(fit.Exponent))
//
// # The Sorts
//
// All three sorts mutate the caller's slice, preserve the relative order
// of equal elements (stability), and are no-ops on lengths 0 and 1.
//
//   - InsertionSort: O(n) best / O(n²) worst, no auxiliary storage.
//   - MergeSort: O(n log n) always, ⌈n/2⌉ auxiliary elements per call,
//     deliberately not adaptive — the clean baseline.
//   - HybridSort: detects natural runs, extends short ones by binary
//     insertion, merges off a balance-invariant stack with galloping.
//     O(n) on sorted or reversed input, O(n log n) worst case.
//
// Each sort also has a Func variant taking a caller ordering (that is
// how stability becomes observable) and a Stats variant counting
// comparisons and moves (that is how adaptivity becomes testable).
//
// # Skips and Failures
//
// Insertion sort above Config.MaxInsertionSize is recorded as an
// explicit skipped entry, never dropped silently. A trial that panics
// lands in Report.Failures and the remaining trials still run.
//
// # Testing
//
// Use the assertion helpers to validate sort properties:
//
//	func TestMySort(t *testing.T) {
//	    input, _ := sortbench.Generate(1000, sortbench.PatternRandom, 1)
//	    sortbench.AssertSortCorrect(t, sortbench.HybridSort[int], input)
//
//	    stats := sortbench.HybridSortStats(sortedInput)
//	    sortbench.AssertAdaptive(t, stats, len(sortedInput), 2.0)
//	}
//
// # Philosophy
//
// Timing tables alone do not prove a complexity claim; they only
// suggest one. sortbench pairs wall-clock growth ratios with operation
// counts: the O(n) best case of the hybrid sort is asserted on
// comparisons, where it is deterministic, and the growth ratios are
// left to tell the asymptotic story at scale.
//
// Report rendering, CSV/markdown tables and plotting are external
// collaborators: this package exposes raw records, ratios and fits, and
// stops there.
//
// # See Also
//
//   - examples/sortbench - runnable demo logging a full report
package sortbench
