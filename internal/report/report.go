// Package report turns an Analysis into something a person can read: a console
// report, a JSON document or a PNG with two charts.
package report

import (
	"context"
	"math"

	"github.com/shopspring/decimal"

	"github.com/guttosm/bfpulse/internal/domain/models"
)

// Analysis is everything the pipeline produced for one dataset.
//
// Summary is nil when the statistics stage failed (for example on an empty
// dataset); renderers print what is available instead of aborting.
type Analysis struct {
	Source  string
	Summary *models.Summary
	Ranking []models.CategoryTotal
	Amounts []float64
}

// Renderer writes an Analysis to some output.
type Renderer interface {
	Name() string
	Render(ctx context.Context, a *Analysis) error
}

// money formats v with two decimal places. decimal panics on non-finite
// floats, so those are spelled out.
func money(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
