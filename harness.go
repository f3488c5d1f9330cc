package sortbench

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Algorithm identifies one of the benchmarked sorts.
type Algorithm string

const (
	AlgorithmInsertion Algorithm = "insertion"
	AlgorithmMerge     Algorithm = "merge"
	AlgorithmHybrid    Algorithm = "hybrid"
)

// AllAlgorithms returns every supported algorithm, in presentation order.
func AllAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmInsertion, AlgorithmMerge, AlgorithmHybrid}
}

func sortFuncFor(alg Algorithm) (func([]int), error) {
	switch alg {
	case AlgorithmInsertion:
		return InsertionSort[int], nil
	case AlgorithmMerge:
		return MergeSort[int], nil
	case AlgorithmHybrid:
		return HybridSort[int], nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidArgument, alg)
	}
}

// Config controls a benchmark run.
type Config struct {
	// Sizes to measure, in the order growth ratios should pair them.
	Sizes []int

	// Patterns and Algorithms form the trial matrix together with Sizes.
	Patterns   []Pattern
	Algorithms []Algorithm

	// Seed makes dataset generation reproducible. The same dataset is
	// shared (read-only) by every algorithm at a given pattern and size.
	Seed int64

	// Repeats is how many times each trial is timed; the recorded
	// elapsed time is the minimum, which is the least noisy estimator
	// for a deterministic workload.
	Repeats int

	// MaxInsertionSize skips insertion sort above this size instead of
	// waiting out its quadratic worst case. 0 disables the cap. Skips
	// are recorded explicitly, never dropped silently.
	MaxInsertionSize int

	// Parallelism is the number of trials in flight at once; 0 or 1
	// runs sequentially. Parallel trials each own their input copy and
	// timer, but they do share cores, so keep this at 1 when absolute
	// timings matter more than throughput.
	Parallelism int
}

// DefaultConfig mirrors the reference measurement setup: 1k/2k/5k, the
// full pattern and algorithm matrix, three repeats, insertion capped at
// 5000 elements.
func DefaultConfig() Config {
	return Config{
		Sizes:            []int{1000, 2000, 5000},
		Patterns:         AllPatterns(),
		Algorithms:       AllAlgorithms(),
		Seed:             DefaultSeed,
		Repeats:          3,
		MaxInsertionSize: 5000,
		Parallelism:      0,
	}
}

func (cfg Config) validate() error {
	if len(cfg.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidArgument)
	}
	for _, n := range cfg.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n)
		}
	}
	if len(cfg.Patterns) == 0 {
		return fmt.Errorf("%w: no patterns", ErrInvalidArgument)
	}
	for _, p := range cfg.Patterns {
		if _, err := Generate(0, p, cfg.Seed); err != nil {
			return err
		}
	}
	if len(cfg.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrInvalidArgument)
	}
	for _, alg := range cfg.Algorithms {
		if _, err := sortFuncFor(alg); err != nil {
			return err
		}
	}
	if cfg.Repeats < 1 {
		return fmt.Errorf("%w: repeats must be >= 1, got %d", ErrInvalidArgument, cfg.Repeats)
	}
	return nil
}

// TimingRecord is one measured (or explicitly skipped) trial. Immutable
// after creation.
type TimingRecord struct {
	Pattern   Pattern
	Algorithm Algorithm
	Size      int

	// Elapsed is the minimum across repeats; Samples holds every repeat.
	Elapsed time.Duration
	Samples []time.Duration

	// Skipped marks a trial excluded by policy (see MaxInsertionSize).
	// A skipped record carries no timing data.
	Skipped    bool
	SkipReason string
}

// TrialError is a trial that failed outright (a recovered panic). Failed
// trials never abort the run; they are collected and surfaced at the end.
type TrialError struct {
	Pattern   Pattern
	Algorithm Algorithm
	Size      int
	Err       error
}

// GrowthRatio is elapsed(ToSize)/elapsed(FromSize) for two consecutive
// measured sizes of the same (pattern, algorithm) pair. It is the
// empirical fingerprint of the complexity class: ×2 per doubling for
// O(n), ×2.2 for O(n log n), ×4 for O(n²).
type GrowthRatio struct {
	Pattern   Pattern
	Algorithm Algorithm
	FromSize  int
	ToSize    int
	Ratio     float64
}

// Report is the outcome of one benchmark run.
type Report struct {
	Records  []TimingRecord
	Growth   []GrowthRatio
	Failures []TrialError
}

// Series returns the measured (non-skipped) records for one
// (pattern, algorithm) pair, in record order.
func (r Report) Series(pattern Pattern, alg Algorithm) []TimingRecord {
	var out []TimingRecord
	for _, rec := range r.Records {
		if rec.Pattern == pattern && rec.Algorithm == alg && !rec.Skipped {
			out = append(out, rec)
		}
	}
	return out
}

type trial struct {
	pattern    Pattern
	algorithm  Algorithm
	size       int
	input      []int // shared read-only across algorithms
	sort       func([]int)
	skipReason string
}

// Run executes the full (pattern, size, algorithm) trial matrix and
// returns the collected timing records, growth ratios and failures.
//
// Invalid configuration fails up front with ErrInvalidArgument before
// any trial runs. Per-trial panics are recovered into Report.Failures
// and the run continues. Cancelling ctx stops scheduling further trials
// and returns the partial report together with ctx.Err().
func Run(ctx context.Context, cfg Config) (Report, error) {
	if err := cfg.validate(); err != nil {
		return Report{}, err
	}

	// Build the trial list first: one dataset per (pattern, size),
	// shared read-only by every algorithm for a fair comparison.
	trials := make([]trial, 0, len(cfg.Patterns)*len(cfg.Sizes)*len(cfg.Algorithms))
	for _, pattern := range cfg.Patterns {
		for _, size := range cfg.Sizes {
			input, err := Generate(size, pattern, cfg.Seed)
			if err != nil {
				return Report{}, err
			}
			for _, alg := range cfg.Algorithms {
				tr := trial{pattern: pattern, algorithm: alg, size: size, input: input}
				if reason := cfg.skipReason(alg, size); reason != "" {
					tr.skipReason = reason
				} else {
					tr.sort, _ = sortFuncFor(alg) // validated above
				}
				trials = append(trials, tr)
			}
		}
	}

	records := make([]TimingRecord, len(trials))
	done := make([]bool, len(trials))
	var (
		mu       sync.Mutex
		failures []TrialError
	)

	execute := func(i int) {
		tr := trials[i]
		if tr.skipReason != "" {
			records[i] = TimingRecord{
				Pattern:    tr.pattern,
				Algorithm:  tr.algorithm,
				Size:       tr.size,
				Skipped:    true,
				SkipReason: tr.skipReason,
			}
			done[i] = true
			return
		}

		samples, err := timeTrial(tr.input, tr.sort, cfg.Repeats)
		if err != nil {
			mu.Lock()
			failures = append(failures, TrialError{
				Pattern:   tr.pattern,
				Algorithm: tr.algorithm,
				Size:      tr.size,
				Err:       err,
			})
			mu.Unlock()
			return
		}

		records[i] = TimingRecord{
			Pattern:   tr.pattern,
			Algorithm: tr.algorithm,
			Size:      tr.size,
			Elapsed:   minDuration(samples),
			Samples:   samples,
		}
		done[i] = true
	}

	var runErr error
	if cfg.Parallelism > 1 {
		g := new(errgroup.Group)
		g.SetLimit(cfg.Parallelism)
		for i := range trials {
			if err := ctx.Err(); err != nil {
				runErr = err
				break
			}
			i := i
			g.Go(func() error {
				execute(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range trials {
			if err := ctx.Err(); err != nil {
				runErr = err
				break
			}
			execute(i)
		}
	}

	report := Report{Failures: failures}
	for i := range records {
		if done[i] {
			report.Records = append(report.Records, records[i])
		}
	}
	report.Growth = computeGrowth(report.Records)
	return report, runErr
}

func (cfg Config) skipReason(alg Algorithm, size int) string {
	if alg == AlgorithmInsertion && cfg.MaxInsertionSize > 0 && size > cfg.MaxInsertionSize {
		return fmt.Sprintf("size %d exceeds insertion sort cap %d", size, cfg.MaxInsertionSize)
	}
	return ""
}

// timeTrial times repeats sort calls over fresh copies of input and
// returns the individual samples. Only the sort call is inside the
// clock; copying the input is not. A panicking sort is reported as an
// error instead of taking down the whole run.
func timeTrial(input []int, sortFn func([]int), repeats int) (samples []time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			samples = nil
			err = fmt.Errorf("sort panicked: %v", r)
		}
	}()

	samples = make([]time.Duration, 0, repeats)
	buf := make([]int, len(input))
	for r := 0; r < repeats; r++ {
		copy(buf, input)
		start := time.Now()
		sortFn(buf)
		samples = append(samples, time.Since(start))
	}
	return samples, nil
}

func minDuration(samples []time.Duration) time.Duration {
	min := samples[0]
	for _, s := range samples[1:] {
		if s < min {
			min = s
		}
	}
	return min
}
