package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/bfpulse/internal/domain/models"
	"github.com/guttosm/bfpulse/internal/logger"
)

const maxMonths = 12

// ErrInvalidMonths is returned when the month count is outside 1..12.
var ErrInvalidMonths = errors.New("months must be between 1 and 12")

// ConvertDirectory parses the monthly payment CSV files of the last nMonths
// competence months found in dir and writes them as a single Parquet file at out.
//
// Behavior:
//   - Fails with ErrInvalidMonths when nMonths is outside 1..12.
//   - Expects exactly one file per month named "YYYYMM_NovoBolsaFamilia.csv".
//   - Validates presence of every file upfront and lists all missing ones.
//   - Parses files concurrently (min(nMonths, NumCPU), or parallel when > 0).
//   - If any file fails, cancels the rest and returns that error.
//   - Rows are written oldest month first, each file in its original row order.
//
// Returns the number of rows written.
func ConvertDirectory(ctx context.Context, dir, out string, nMonths, parallel int, now time.Time) (int, error) {
	if nMonths < 1 || nMonths > maxMonths {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidMonths, nMonths)
	}
	months := LastNMonths(nMonths, now)

	// Oldest first so the dataset keeps chronological order.
	files := make([]string, len(months))
	var missing []string
	for i, m := range months {
		name := monthFileName(m)
		full := filepath.Join(dir, name)
		files[len(months)-1-i] = full

		if _, err := os.Stat(full); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, name)
			} else {
				return 0, fmt.Errorf("stat failed for %s: %w", full, err)
			}
		}
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("missing required files: %s", strings.Join(missing, ", "))
	}

	maxParallel := min(len(files), runtime.NumCPU())
	if parallel > 0 {
		maxParallel = min(parallel, len(files))
	}
	logger.L().Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", maxParallel).Msg("conversion start")

	results := make([][]models.Payment, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, file := range files {
		g.Go(func() error {
			start := time.Now()
			base := filepath.Base(file)
			logger.L().Info().Int("idx", i+1).Int("total", len(files)).Str("file", base).Msg("file start")

			payments, err := parseFile(gctx, file)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", file, err)
			}
			results[i] = payments
			logger.L().Info().Int("idx", i+1).Int("total", len(files)).Str("file", base).Int("rows", len(payments)).Dur("elapsed", time.Since(start)).Msg("file done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]models.Payment, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}
	if err := WriteDataset(out, all); err != nil {
		return 0, err
	}

	logger.L().Info().Str("out", out).Int("rows", total).Msg("conversion done")
	return total, nil
}
