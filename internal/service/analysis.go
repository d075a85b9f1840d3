package service

import (
	"context"
	"errors"

	"github.com/guttosm/bfpulse/internal/aggregate"
	"github.com/guttosm/bfpulse/internal/domain/models"
	"github.com/guttosm/bfpulse/internal/logger"
	"github.com/guttosm/bfpulse/internal/stats"
)

// ErrInvalidK is returned when a ranking is requested with a negative K.
var ErrInvalidK = errors.New("k must not be negative")

// AnalysisService computes statistics and rankings over one immutable dataset.
type AnalysisService interface {
	Summary(ctx context.Context, method stats.Method) (*models.Summary, error)
	Ranking(ctx context.Context, k int) ([]models.CategoryTotal, error)
	Amounts() []float64
	Len() int
}

type analysisService struct {
	ds        *models.Dataset
	fenceCoef float64
}

// NewAnalysisService wraps ds. A zero fenceCoef falls back to stats.DefaultFenceCoef.
func NewAnalysisService(ds *models.Dataset, fenceCoef float64) AnalysisService {
	if ds == nil {
		ds = models.NewDataset("", nil)
	}
	return &analysisService{ds: ds, fenceCoef: fenceCoef}
}

func (s *analysisService) Summary(ctx context.Context, method stats.Method) (*models.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sum, err := stats.Describe(s.ds.Amounts(), stats.Options{Method: method, FenceCoef: s.fenceCoef})
	if err != nil {
		return nil, err
	}
	if !sum.SkewDefined() {
		logger.L().Warn().
			Str("source", s.ds.Source()).
			Err(stats.ErrDivisionByZero).
			Msg("median is zero; skew distance undefined")
	}
	return &sum, nil
}

func (s *analysisService) Ranking(ctx context.Context, k int) ([]models.CategoryTotal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, ErrInvalidK
	}
	totals := aggregate.GroupSum(s.ds.All(), byUF, byAmount)
	counts := aggregate.GroupCount(s.ds.All(), byUF)
	return aggregate.TopK(totals, counts, k), nil
}

func (s *analysisService) Amounts() []float64 { return s.ds.Amounts() }

func (s *analysisService) Len() int { return s.ds.Len() }

func byUF(p models.Payment) string      { return p.UF }
func byAmount(p models.Payment) float64 { return p.Amount }
