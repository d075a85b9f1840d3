package report

import (
	"context"
	"io"
	"math"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/guttosm/bfpulse/internal/domain/models"
)

// JSONRenderer writes the Analysis as one JSON document.
type JSONRenderer struct {
	Out    io.Writer
	Indent bool
}

func NewJSONRenderer(out io.Writer) *JSONRenderer {
	return &JSONRenderer{Out: out, Indent: true}
}

func (r *JSONRenderer) Name() string { return "json" }

// number encodes NaN and ±Inf as null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

type jsonSummary struct {
	Count         int    `json:"count"`
	Method        string `json:"method"`
	Mean          number `json:"mean"`
	StdDev        number `json:"std_dev"`
	Median        number `json:"median"`
	Min           number `json:"min"`
	Max           number `json:"max"`
	Range         number `json:"range"`
	Q1            number `json:"q1"`
	Q2            number `json:"q2"`
	Q3            number `json:"q3"`
	IQR           number `json:"iqr"`
	FenceCoef     number `json:"fence_coef"`
	LowerFence    number `json:"lower_fence"`
	UpperFence    number `json:"upper_fence"`
	SkewPct       number `json:"skew_pct"`
	OutliersBelow int    `json:"outliers_below"`
	OutliersAbove int    `json:"outliers_above"`
}

type jsonEntry struct {
	UF    string `json:"uf"`
	Total number `json:"total"`
	Count int    `json:"count"`
}

type jsonReport struct {
	Source       string       `json:"source"`
	Summary      *jsonSummary `json:"summary"`
	Ranking      []jsonEntry  `json:"ranking"`
	Observations []string     `json:"observations"`
}

func newJSONSummary(s *models.Summary) *jsonSummary {
	if s == nil {
		return nil
	}
	return &jsonSummary{
		Count:         s.Count,
		Method:        s.Method,
		Mean:          number(s.Mean),
		StdDev:        number(s.StdDev),
		Median:        number(s.Median),
		Min:           number(s.Min),
		Max:           number(s.Max),
		Range:         number(s.Range),
		Q1:            number(s.Q1),
		Q2:            number(s.Q2),
		Q3:            number(s.Q3),
		IQR:           number(s.IQR),
		FenceCoef:     number(s.FenceCoef),
		LowerFence:    number(s.LowerFence),
		UpperFence:    number(s.UpperFence),
		SkewPct:       number(s.SkewPct),
		OutliersBelow: s.OutliersBelow,
		OutliersAbove: s.OutliersAbove,
	}
}

func (r *JSONRenderer) Render(ctx context.Context, a *Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := jsonReport{
		Source:       a.Source,
		Summary:      newJSONSummary(a.Summary),
		Ranking:      make([]jsonEntry, len(a.Ranking)),
		Observations: Observations(a),
	}
	for i, e := range a.Ranking {
		doc.Ranking[i] = jsonEntry{UF: e.Category, Total: number(e.Total), Count: e.Count}
	}
	if doc.Observations == nil {
		doc.Observations = []string{}
	}

	enc := json.NewEncoder(r.Out)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}
