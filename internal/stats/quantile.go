package stats

import (
	"fmt"
	"math"
	"strings"
)

// Method selects the plotting-position convention used to interpolate quantiles.
type Method int

const (
	// Weibull places probability p at rank p*(n+1). It is the default.
	Weibull Method = iota
	// Linear places p at rank (n-1)*p+1 (the common "type 7" rule).
	Linear
	// Hazen places p at rank n*p+1/2.
	Hazen
	// MedianUnbiased places p at rank (n+1/3)*p+1/3.
	MedianUnbiased
	// NormalUnbiased places p at rank (n+1/4)*p+3/8.
	NormalUnbiased
)

// plotting positions as (alpha, beta); rank = (n+1-alpha-beta)*p + alpha, 1-based.
var positions = map[Method]struct {
	name        string
	alpha, beta float64
}{
	Weibull:        {"weibull", 0, 0},
	Linear:         {"linear", 1, 1},
	Hazen:          {"hazen", 0.5, 0.5},
	MedianUnbiased: {"median_unbiased", 1.0 / 3, 1.0 / 3},
	NormalUnbiased: {"normal_unbiased", 3.0 / 8, 3.0 / 8},
}

func (m Method) String() string {
	if pos, ok := positions[m]; ok {
		return pos.name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a configuration name (case-insensitive) to a Method.
func ParseMethod(name string) (Method, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for m, pos := range positions {
		if pos.name == n {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Quantile returns the p-quantile of sorted (ascending) values.
//
// The rank is clamped to [1, n], so p=0 yields the minimum and p=1 the
// maximum under every method. sorted is not modified.
func Quantile(sorted []float64, p float64, m Method) (float64, error) {
	if len(sorted) == 0 {
		return math.NaN(), ErrEmptyInput
	}
	if !(p >= 0 && p <= 1) {
		return math.NaN(), fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	pos, ok := positions[m]
	if !ok {
		return math.NaN(), fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
	return quantile(sorted, p, pos.alpha, pos.beta), nil
}

func quantile(sorted []float64, p, alpha, beta float64) float64 {
	n := len(sorted)
	h := (float64(n)+1-alpha-beta)*p + alpha
	h = math.Max(1, math.Min(float64(n), h))

	lo := math.Floor(h)
	i := int(lo) // 1-based rank of the lower order statistic
	frac := h - lo
	if i >= n || frac == 0 {
		return sorted[i-1]
	}
	return sorted[i-1] + frac*(sorted[i]-sorted[i-1])
}
