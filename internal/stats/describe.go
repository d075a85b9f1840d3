package stats

import (
	"math"
	"slices"
	"sort"

	moremath "github.com/aclements/go-moremath/stats"

	"github.com/guttosm/bfpulse/internal/domain/models"
)

// DefaultFenceCoef is the classic Tukey multiplier for the inner fences.
const DefaultFenceCoef = 1.5

// Options configures Describe.
type Options struct {
	Method    Method  // quantile plotting position (default Weibull)
	FenceCoef float64 // IQR multiplier for the fences; zero means DefaultFenceCoef
}

// DefaultOptions returns Weibull quartiles and 1.5*IQR fences.
func DefaultOptions() Options {
	return Options{Method: Weibull, FenceCoef: DefaultFenceCoef}
}

// Describe summarises values.
//
// The median is Q2 under opts.Method, so the skew distance stays consistent
// with the quartiles. When the median is zero the skew distance is undefined
// and SkewPct is NaN; Describe still succeeds.
//
// values is not modified. An empty slice fails with ErrEmptyInput and no
// partial summary.
func Describe(values []float64, opts Options) (models.Summary, error) {
	if len(values) == 0 {
		return models.Summary{}, ErrEmptyInput
	}
	coef := opts.FenceCoef
	if coef == 0 {
		coef = DefaultFenceCoef
	}
	if coef < 0 || math.IsNaN(coef) {
		return models.Summary{}, ErrInvalidFenceCoef
	}
	pos, ok := positions[opts.Method]
	if !ok {
		return models.Summary{}, ErrUnknownMethod
	}

	sorted := slices.Clone(values)
	sort.Float64s(sorted)
	sample := moremath.Sample{Xs: sorted, Sorted: true}

	minV, maxV := sample.Bounds()
	q1 := quantile(sorted, 0.25, pos.alpha, pos.beta)
	q2 := quantile(sorted, 0.50, pos.alpha, pos.beta)
	q3 := quantile(sorted, 0.75, pos.alpha, pos.beta)
	iqr := q3 - q1
	lower, upper := Fences(q1, q3, coef)

	s := models.Summary{
		Count:      len(sorted),
		Method:     opts.Method.String(),
		Mean:       sample.Mean(),
		StdDev:     sample.StdDev(),
		Median:     q2,
		Min:        minV,
		Max:        maxV,
		Range:      maxV - minV,
		Q1:         q1,
		Q2:         q2,
		Q3:         q3,
		IQR:        iqr,
		FenceCoef:  coef,
		LowerFence: lower,
		UpperFence: upper,
	}

	s.OutliersBelow, s.OutliersAbove = CountOutliers(sorted, lower, upper)

	skew, err := SkewDistance(s.Mean, s.Median)
	if err != nil {
		skew = math.NaN()
	}
	s.SkewPct = skew

	return s, nil
}

// SkewDistance returns how far the mean sits from the median, as a
// percentage of the median: |(mean-median)/median|*100.
func SkewDistance(mean, median float64) (float64, error) {
	if median == 0 {
		return math.NaN(), ErrDivisionByZero
	}
	return math.Abs((mean-median)/median) * 100, nil
}

// Fences returns the lower and upper outlier bounds q1-coef*IQR and q3+coef*IQR.
func Fences(q1, q3, coef float64) (lower, upper float64) {
	iqr := q3 - q1
	return q1 - coef*iqr, q3 + coef*iqr
}

// CountOutliers counts values strictly below lower and strictly above upper.
// NaN values fall in neither bucket.
func CountOutliers(values []float64, lower, upper float64) (below, above int) {
	for _, v := range values {
		switch {
		case v < lower:
			below++
		case v > upper:
			above++
		}
	}
	return below, above
}
