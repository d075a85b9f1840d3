package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/bfpulse/config"
	"github.com/guttosm/bfpulse/internal/ingestion"
	"github.com/guttosm/bfpulse/internal/logger"
	"github.com/guttosm/bfpulse/internal/report"
	"github.com/guttosm/bfpulse/internal/service"
	"github.com/guttosm/bfpulse/internal/stats"
)

// RunAnalysis loads the Parquet dataset, computes the statistics and the
// ranking and hands the result to every renderer in order.
//
// A load failure stops the pipeline. Any later failure is logged and the
// remaining stages still run: an empty dataset still prints the (empty)
// ranking, and a renderer failure never affects the renderers before it.
// The returned error joins every stage failure.
func RunAnalysis(ctx context.Context, cfg config.Config, renderers ...report.Renderer) error {
	log := logger.L()
	path := cfg.Data.Path()

	method, err := stats.ParseMethod(cfg.Analysis.QuantileMethod)
	if err != nil {
		return fmt.Errorf("invalid QUANTILE_METHOD: %w", err)
	}

	start := time.Now()
	ds, err := ingestion.LoadDataset(ctx, path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("load failed")
		return err
	}
	log.Info().Str("path", path).Int("rows", ds.Len()).Dur("elapsed", time.Since(start)).Msg("dataset loaded")

	svc := service.NewAnalysisService(ds, cfg.Analysis.FenceCoef)
	a := &report.Analysis{Source: ds.Source(), Amounts: svc.Amounts()}

	var errs []error

	if sum, err := svc.Summary(ctx, method); err != nil {
		log.Error().Err(err).Str("stage", "stats").Msg("statistics unavailable")
		errs = append(errs, fmt.Errorf("stats: %w", err))
	} else {
		a.Summary = sum
	}

	if ranking, err := svc.Ranking(ctx, cfg.Analysis.TopK); err != nil {
		log.Error().Err(err).Str("stage", "aggregate").Msg("ranking unavailable")
		errs = append(errs, fmt.Errorf("ranking: %w", err))
	} else {
		a.Ranking = ranking
	}

	for _, r := range renderers {
		if err := render(ctx, r, a); err != nil {
			log.Error().Err(err).Str("stage", "render").Str("renderer", r.Name()).Msg("render failed")
			errs = append(errs, fmt.Errorf("render %s: %w", r.Name(), err))
		}
	}

	return errors.Join(errs...)
}

// render runs r and turns a panic into an error.
func render(ctx context.Context, r report.Renderer, a *report.Analysis) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return r.Render(ctx, a)
}
