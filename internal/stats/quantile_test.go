package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantile_Weibull(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{0.1, 10}, // rank 0.5 clamps to the first order statistic
		{0.25, 12.5},
		{0.5, 25},
		{0.75, 37.5},
		{0.9, 40}, // rank 4.5 clamps to the last order statistic
		{1, 40},
	}
	for _, tc := range cases {
		got, err := Quantile(sorted, tc.p, Weibull)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "p=%v", tc.p)
	}
}

func TestQuantile_Methods(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	cases := []struct {
		m    Method
		want float64 // p = 0.25
	}{
		{Weibull, 2.75},
		{Linear, 3.25},
		{Hazen, 3},
		{MedianUnbiased, 2.9166666666666665},
		{NormalUnbiased, 2.9375},
	}
	for _, tc := range cases {
		t.Run(tc.m.String(), func(t *testing.T) {
			got, err := Quantile(sorted, 0.25, tc.m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestQuantile_Bounds(t *testing.T) {
	sorted := []float64{-3, 1, 4, 4, 9}
	for m := range positions {
		lo, err := Quantile(sorted, 0, m)
		require.NoError(t, err)
		hi, err := Quantile(sorted, 1, m)
		require.NoError(t, err)
		assert.Equal(t, -3.0, lo, "method %v", m)
		assert.Equal(t, 9.0, hi, "method %v", m)
	}
}

func TestQuantile_SingleValue(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 1} {
		got, err := Quantile([]float64{42}, p, Weibull)
		require.NoError(t, err)
		assert.Equal(t, 42.0, got)
	}
}

func TestQuantile_Errors(t *testing.T) {
	_, err := Quantile(nil, 0.5, Weibull)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Quantile([]float64{1}, 1.5, Weibull)
	assert.ErrorIs(t, err, ErrInvalidProbability)

	_, err = Quantile([]float64{1}, -0.1, Weibull)
	assert.ErrorIs(t, err, ErrInvalidProbability)

	_, err = Quantile([]float64{1}, 0.5, Method(99))
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestParseMethod(t *testing.T) {
	cases := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"weibull", Weibull, false},
		{" WEIBULL ", Weibull, false},
		{"linear", Linear, false},
		{"hazen", Hazen, false},
		{"median_unbiased", MedianUnbiased, false},
		{"normal_unbiased", NormalUnbiased, false},
		{"nearest", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseMethod(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrUnknownMethod, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
	assert.Equal(t, "Method(99)", Method(99).String())
}
