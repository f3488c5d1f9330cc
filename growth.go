package sortbench

import (
	"fmt"
	"math"
)

// computeGrowth derives growth ratios from measured records: for each
// (pattern, algorithm) pair, consecutive measured sizes are paired in
// record order. Skipped and failed trials simply produce no pair, and a
// zero elapsed time (possible for very small inputs below the clock's
// resolution) is excluded rather than divided by.
func computeGrowth(records []TimingRecord) []GrowthRatio {
	type key struct {
		pattern   Pattern
		algorithm Algorithm
	}

	var growth []GrowthRatio
	prev := make(map[key]TimingRecord)

	for _, rec := range records {
		if rec.Skipped {
			continue
		}
		k := key{rec.Pattern, rec.Algorithm}
		if p, ok := prev[k]; ok && p.Elapsed > 0 {
			growth = append(growth, GrowthRatio{
				Pattern:   rec.Pattern,
				Algorithm: rec.Algorithm,
				FromSize:  p.Size,
				ToSize:    rec.Size,
				Ratio:     float64(rec.Elapsed) / float64(p.Elapsed),
			})
		}
		prev[k] = rec
	}

	return growth
}

// PowerLawFit models one timing series as t = Coefficient · n^Exponent.
// The exponent is the empirical complexity estimate: ≈1 for O(n), ≈1.1
// for O(n log n) at these sizes, ≈2 for O(n²).
type PowerLawFit struct {
	Coefficient float64 // c, in seconds
	Exponent    float64 // p
	RSquared    float64 // goodness of fit in log-log space (1.0 = perfect)
}

// FitPowerLaw fits t = c·n^p to the measured records of one
// (pattern, algorithm) series by least squares on the linearized form
//
//	ln t = ln c + p·ln n
//
// Needs at least two measured points at distinct sizes; skipped records
// and sub-resolution timings are ignored.
func FitPowerLaw(records []TimingRecord) (PowerLawFit, error) {
	var xs, ys []float64
	for _, rec := range records {
		if rec.Skipped || rec.Elapsed <= 0 || rec.Size < 1 {
			continue
		}
		xs = append(xs, math.Log(float64(rec.Size)))
		ys = append(ys, math.Log(rec.Elapsed.Seconds()))
	}
	if len(xs) < 2 {
		return PowerLawFit{}, fmt.Errorf("need at least 2 measured points, got %d", len(xs))
	}

	n := float64(len(xs))
	var sumX, sumY, sumXX, sumXY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}

	det := n*sumXX - sumX*sumX
	if math.Abs(det) < 1e-10 {
		return PowerLawFit{}, fmt.Errorf("degenerate fit: all %d points at the same size", len(xs))
	}

	p := (n*sumXY - sumX*sumY) / det
	lnC := (sumY - p*sumX) / n

	// R² in log space.
	meanY := sumY / n
	var ssRes, ssTot float64
	for i := range xs {
		predicted := lnC + p*xs[i]
		ssRes += (ys[i] - predicted) * (ys[i] - predicted)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}
	rSquared := 1.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
	}

	return PowerLawFit{
		Coefficient: math.Exp(lnC),
		Exponent:    p,
		RSquared:    rSquared,
	}, nil
}

// Predict returns the modeled elapsed seconds at size n.
func (f PowerLawFit) Predict(n int) float64 {
	return f.Coefficient * math.Pow(float64(n), f.Exponent)
}

// ComplexityClass is the asymptotic family an empirical exponent maps to.
type ComplexityClass string

const (
	ComplexityConstant     ComplexityClass = "O(1)"
	ComplexityLinear       ComplexityClass = "O(n)"
	ComplexityLinearithmic ComplexityClass = "O(n log n)"
	ComplexityQuadratic    ComplexityClass = "O(n^2)"
	ComplexityPolynomial   ComplexityClass = "O(n^k)"
)

// Classify maps a fitted exponent onto a complexity class. Linear and
// linearithmic are close neighbors empirically (at 1k–5k elements the
// log factor adds only ~0.1 to the exponent), so the boundary between
// them is necessarily soft; quadratic is unambiguous.
func Classify(exponent float64) ComplexityClass {
	switch {
	case exponent < 0.5:
		return ComplexityConstant
	case exponent < 1.15:
		return ComplexityLinear
	case exponent < 1.6:
		return ComplexityLinearithmic
	case exponent < 2.5:
		return ComplexityQuadratic
	default:
		return ComplexityPolynomial
	}
}

// ExpectedRatio returns the growth ratio a class predicts between two
// sizes: 2 for O(n) on a doubling, ≈2.2 for O(n log n), 4 for O(n²).
// Unknown classes yield NaN.
func ExpectedRatio(class ComplexityClass, fromSize, toSize int) float64 {
	n1, n2 := float64(fromSize), float64(toSize)
	if n1 <= 1 || n2 <= 1 {
		return math.NaN()
	}
	switch class {
	case ComplexityConstant:
		return 1
	case ComplexityLinear:
		return n2 / n1
	case ComplexityLinearithmic:
		return (n2 * math.Log2(n2)) / (n1 * math.Log2(n1))
	case ComplexityQuadratic:
		return (n2 * n2) / (n1 * n1)
	default:
		return math.NaN()
	}
}
