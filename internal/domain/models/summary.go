package models

import "math"

// Summary holds the descriptive statistics of the installment amounts.
//
// Fields:
//   - Count: number of values summarised.
//   - Mean, StdDev: arithmetic mean and sample (n-1) standard deviation.
//   - Median: equal to Q2, computed with the same quantile method as Q1/Q3.
//   - Min, Max, Range: bounds and Max-Min.
//   - Q1, Q2, Q3, IQR: quartiles and Q3-Q1.
//   - LowerFence, UpperFence: Q1-FenceCoef*IQR and Q3+FenceCoef*IQR.
//   - SkewPct: |(Mean-Median)/Median|*100; NaN when Median is zero.
//   - OutliersBelow, OutliersAbove: values strictly outside the fences.
//
// A Summary is a value object; it is recomputed, never updated.
type Summary struct {
	Count         int     `json:"count"`
	Method        string  `json:"method"`
	Mean          float64 `json:"mean"`
	StdDev        float64 `json:"std_dev"`
	Median        float64 `json:"median"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	Range         float64 `json:"range"`
	Q1            float64 `json:"q1"`
	Q2            float64 `json:"q2"`
	Q3            float64 `json:"q3"`
	IQR           float64 `json:"iqr"`
	FenceCoef     float64 `json:"fence_coef"`
	LowerFence    float64 `json:"lower_fence"`
	UpperFence    float64 `json:"upper_fence"`
	SkewPct       float64 `json:"-"`
	OutliersBelow int     `json:"outliers_below"`
	OutliersAbove int     `json:"outliers_above"`
}

// SkewDefined reports whether SkewPct carries a value.
func (s Summary) SkewDefined() bool { return !math.IsNaN(s.SkewPct) }
