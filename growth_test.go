package sortbench

import (
	"context"
	"math"
	"testing"
	"time"
)

func quadraticRecords(sizes ...int) []TimingRecord {
	records := make([]TimingRecord, 0, len(sizes))
	for _, n := range sizes {
		records = append(records, TimingRecord{
			Pattern:   PatternRandom,
			Algorithm: AlgorithmInsertion,
			Size:      n,
			Elapsed:   time.Duration(n*n) * 2 * time.Nanosecond,
		})
	}
	return records
}

// TestComputeGrowth_QuadraticRatios: t = c·n² gives ×4 on a doubling and
// ×6.25 on a 2000→5000 step, the reference values of the report.
func TestComputeGrowth_QuadraticRatios(t *testing.T) {
	growth := computeGrowth(quadraticRecords(1000, 2000, 5000))

	if len(growth) != 2 {
		t.Fatalf("expected 2 ratios, got %d", len(growth))
	}
	if math.Abs(growth[0].Ratio-4.0) > 1e-9 {
		t.Errorf("1000→2000: got ×%.4f, want ×4", growth[0].Ratio)
	}
	if math.Abs(growth[1].Ratio-6.25) > 1e-9 {
		t.Errorf("2000→5000: got ×%.4f, want ×6.25", growth[1].Ratio)
	}
}

// TestComputeGrowth_SkipsExcluded: skipped records produce no pair, and
// the series resumes across the gap.
func TestComputeGrowth_SkipsExcluded(t *testing.T) {
	records := quadraticRecords(1000, 2000, 5000)
	records[1].Skipped = true
	records[1].Elapsed = 0

	growth := computeGrowth(records)
	if len(growth) != 1 {
		t.Fatalf("expected 1 ratio across the gap, got %d", len(growth))
	}
	if growth[0].FromSize != 1000 || growth[0].ToSize != 5000 {
		t.Errorf("got %d→%d, want 1000→5000", growth[0].FromSize, growth[0].ToSize)
	}
}

// TestFitPowerLaw_RecoversQuadratic: synthetic t = c·n² data must come
// back with exponent ≈ 2 and a perfect fit.
func TestFitPowerLaw_RecoversQuadratic(t *testing.T) {
	fit, err := FitPowerLaw(quadraticRecords(1000, 2000, 5000, 10000))
	if err != nil {
		t.Fatalf("FitPowerLaw failed: %v", err)
	}

	if math.Abs(fit.Exponent-2.0) > 0.01 {
		t.Errorf("exponent: got %.4f, want ≈2", fit.Exponent)
	}
	if fit.RSquared < 0.999 {
		t.Errorf("R²: got %.4f, want ≈1", fit.RSquared)
	}
	if got := Classify(fit.Exponent); got != ComplexityQuadratic {
		t.Errorf("classification: got %s, want %s", got, ComplexityQuadratic)
	}

	predicted := fit.Predict(20000)
	want := (time.Duration(20000*20000) * 2 * time.Nanosecond).Seconds()
	if math.Abs(predicted-want)/want > 0.01 {
		t.Errorf("prediction at 20000: got %.6f s, want %.6f s", predicted, want)
	}
}

// TestFitPowerLaw_RecoversLinear: t = c·n data classifies as linear.
func TestFitPowerLaw_RecoversLinear(t *testing.T) {
	var records []TimingRecord
	for _, n := range []int{1000, 2000, 5000} {
		records = append(records, TimingRecord{
			Pattern:   PatternSorted,
			Algorithm: AlgorithmHybrid,
			Size:      n,
			Elapsed:   time.Duration(n) * 50 * time.Nanosecond,
		})
	}

	AssertComplexityClass(t, records, ComplexityLinear)
}

// TestFitPowerLaw_Errors: too few or degenerate points must fail, not
// fabricate a fit.
func TestFitPowerLaw_Errors(t *testing.T) {
	if _, err := FitPowerLaw(quadraticRecords(1000)); err == nil {
		t.Error("single point: expected error")
	}
	if _, err := FitPowerLaw(nil); err == nil {
		t.Error("no points: expected error")
	}
	if _, err := FitPowerLaw(quadraticRecords(1000, 1000, 1000)); err == nil {
		t.Error("all points at one size: expected error")
	}
}

// TestClassify pins the class boundaries.
func TestClassify(t *testing.T) {
	cases := []struct {
		exponent float64
		want     ComplexityClass
	}{
		{0.05, ComplexityConstant},
		{1.0, ComplexityLinear},
		{1.1, ComplexityLinear},
		{1.25, ComplexityLinearithmic},
		{2.0, ComplexityQuadratic},
		{3.0, ComplexityPolynomial},
	}
	for _, c := range cases {
		if got := Classify(c.exponent); got != c.want {
			t.Errorf("Classify(%.2f) = %s, want %s", c.exponent, got, c.want)
		}
	}
}

// TestExpectedRatio pins the reference ratios the report compares
// against: O(n) ×2/×2.5, O(n log n) ≈×2.2/×2.4, O(n²) ×4/×6.25.
func TestExpectedRatio(t *testing.T) {
	if got := ExpectedRatio(ComplexityLinear, 1000, 2000); got != 2 {
		t.Errorf("linear 1000→2000: got %.2f, want 2", got)
	}
	if got := ExpectedRatio(ComplexityLinear, 2000, 5000); got != 2.5 {
		t.Errorf("linear 2000→5000: got %.2f, want 2.5", got)
	}
	if got := ExpectedRatio(ComplexityQuadratic, 1000, 2000); got != 4 {
		t.Errorf("quadratic 1000→2000: got %.2f, want 4", got)
	}
	if got := ExpectedRatio(ComplexityQuadratic, 2000, 5000); got != 6.25 {
		t.Errorf("quadratic 2000→5000: got %.2f, want 6.25", got)
	}

	nlogn := ExpectedRatio(ComplexityLinearithmic, 1000, 2000)
	if nlogn < 2.1 || nlogn > 2.3 {
		t.Errorf("linearithmic 1000→2000: got %.3f, want ≈2.2", nlogn)
	}

	if !math.IsNaN(ExpectedRatio(ComplexityPolynomial, 1000, 2000)) {
		t.Error("polynomial class has no single expected ratio, want NaN")
	}
}

// TestEndToEnd_GrowthSeparatesClasses is the empirical claim of the
// whole exercise: at identical sizes, insertion sort's measured growth
// on random input must exceed the hybrid sort's. Kept at modest sizes so
// the test stays fast; the budget is generous because wall clocks are
// noisy in CI.
func TestEndToEnd_GrowthSeparatesClasses(t *testing.T) {
	if testing.Short() {
		t.Skip("timing-sensitive")
	}

	cfg := Config{
		Sizes:      []int{4000, 8000},
		Patterns:   []Pattern{PatternRandom},
		Algorithms: []Algorithm{AlgorithmInsertion, AlgorithmHybrid},
		Seed:       DefaultSeed,
		Repeats:    3,
	}

	report, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(report.Growth) != 2 {
		t.Fatalf("expected 2 growth ratios, got %d", len(report.Growth))
	}

	var insertion, hybrid float64
	for _, g := range report.Growth {
		switch g.Algorithm {
		case AlgorithmInsertion:
			insertion = g.Ratio
		case AlgorithmHybrid:
			hybrid = g.Ratio
		}
	}

	t.Logf("random 4000→8000: insertion ×%.2f, hybrid ×%.2f", insertion, hybrid)
	if insertion <= hybrid {
		t.Errorf("quadratic growth (×%.2f) should exceed linearithmic growth (×%.2f)", insertion, hybrid)
	}
}
