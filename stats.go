package sortbench

import (
	"math"
	"time"
)

// Statistics summarizes the repeat samples of one trial. With a handful
// of repeats over a deterministic workload the minimum is the headline
// number (everything above it is scheduling noise); mean and stddev are
// kept to make that noise visible.
type Statistics struct {
	Mean   time.Duration
	Stddev time.Duration
	Min    time.Duration
	Max    time.Duration
}

// TrialStatistics computes summary statistics over a trial's samples.
// Empty input yields the zero value.
func TrialStatistics(samples []time.Duration) Statistics {
	if len(samples) == 0 {
		return Statistics{}
	}

	min, max := samples[0], samples[0]
	var sum time.Duration
	for _, s := range samples {
		sum += s
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	mean := sum / time.Duration(len(samples))

	var variance float64
	for _, s := range samples {
		diff := float64(s - mean)
		variance += diff * diff
	}
	stddev := time.Duration(math.Sqrt(variance / float64(len(samples))))

	return Statistics{
		Mean:   mean,
		Stddev: stddev,
		Min:    min,
		Max:    max,
	}
}
