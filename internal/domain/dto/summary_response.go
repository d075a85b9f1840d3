package dto

import "github.com/guttosm/bfpulse/internal/domain/models"

// SummaryResponse represents the JSON structure returned by the
// GET /api/v1/summary endpoint.
//
// SkewPct is null when the median is zero and the skew distance is undefined.
type SummaryResponse struct {
	Count         int      `json:"count" example:"2140335"`
	Method        string   `json:"method" example:"weibull"`
	Mean          float64  `json:"mean" example:"681.45"`
	StdDev        float64  `json:"std_dev" example:"212.10"`
	Median        float64  `json:"median" example:"650.00"`
	Min           float64  `json:"min" example:"25.00"`
	Max           float64  `json:"max" example:"4664.00"`
	Range         float64  `json:"range" example:"4639.00"`
	Q1            float64  `json:"q1" example:"600.00"`
	Q2            float64  `json:"q2" example:"650.00"`
	Q3            float64  `json:"q3" example:"750.00"`
	IQR           float64  `json:"iqr" example:"150.00"`
	LowerFence    float64  `json:"lower_fence" example:"375.00"`
	UpperFence    float64  `json:"upper_fence" example:"975.00"`
	SkewPct       *float64 `json:"skew_pct" example:"4.84"`
	OutliersBelow int      `json:"outliers_below" example:"1203"`
	OutliersAbove int      `json:"outliers_above" example:"5310"`
}

// NewSummaryResponse maps a models.Summary into its API contract.
func NewSummaryResponse(s models.Summary) SummaryResponse {
	resp := SummaryResponse{
		Count:         s.Count,
		Method:        s.Method,
		Mean:          s.Mean,
		StdDev:        s.StdDev,
		Median:        s.Median,
		Min:           s.Min,
		Max:           s.Max,
		Range:         s.Range,
		Q1:            s.Q1,
		Q2:            s.Q2,
		Q3:            s.Q3,
		IQR:           s.IQR,
		LowerFence:    s.LowerFence,
		UpperFence:    s.UpperFence,
		OutliersBelow: s.OutliersBelow,
		OutliersAbove: s.OutliersAbove,
	}
	if s.SkewDefined() {
		v := s.SkewPct
		resp.SkewPct = &v
	}
	return resp
}
