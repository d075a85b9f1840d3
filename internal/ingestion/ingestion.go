package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/bfpulse/internal/domain/models"
	"github.com/guttosm/bfpulse/internal/logger"
	"github.com/guttosm/bfpulse/internal/storage"
)

const defaultBatchSize = 5000

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.PaymentsRepository {
	return storage.NewPaymentsRepository(db)
}

// PersistDataset loads the Parquet dataset at path and stores its payments in Postgres.
//
// Behavior:
//   - The source key is the file's base name; each source is ingested once.
//   - Already ingested sources are skipped unless force is set.
//   - Payments stored for the source are always deleted before inserting, so rows
//     committed by an interrupted run never survive into the retry.
//   - Payments are inserted in batches of 5000, each batch in its own transaction.
//   - The ingestion log is written last, so an interrupted run is retried in full.
//
// Returns the number of rows persisted (0 when skipped).
func PersistDataset(ctx context.Context, path string, db *sql.DB, force bool) (int, error) {
	repo := repoCtor(db)
	source := filepath.Base(path)
	runID := uuid.NewString()
	log := logger.L().With().Str("source", source).Str("run_id", runID).Logger()

	exists, err := repo.HasIngestionForSource(ctx, source)
	if err != nil {
		return 0, fmt.Errorf("source %s: check ingestion log: %w", source, err)
	}
	if exists && !force {
		log.Info().Bool("skipped", true).Msg("already ingested")
		return 0, nil
	}

	start := time.Now()
	ds, err := LoadDataset(ctx, path)
	if err != nil {
		return 0, err
	}
	log.Info().Int("rows", ds.Len()).Dur("elapsed", time.Since(start)).Msg("dataset loaded")

	if err := repo.DeletePaymentsBySource(ctx, source); err != nil {
		return 0, fmt.Errorf("source %s: delete existing: %w", source, err)
	}

	total, err := persistBatches(ctx, repo, source, ds, defaultBatchSize)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("ingestion failed")
		return 0, fmt.Errorf("source %s: %w", source, err)
	}

	if err := repo.UpsertIngestionLog(ctx, source, total, runID); err != nil {
		return 0, fmt.Errorf("source %s: upsert ingestion log: %w", source, err)
	}
	log.Info().Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("ingestion done")
	return total, nil
}

func persistBatches(ctx context.Context, repo storage.PaymentsRepository, source string, ds *models.Dataset, batch int) (int, error) {
	buf := make([]models.Payment, 0, batch)
	total := 0

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertPaymentsBatch(ctx, source, buf); err != nil {
			return err
		}
		total += len(buf)
		buf = buf[:0]
		return nil
	}

	for p := range ds.All() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		buf = append(buf, p)
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending row %d: %w", total+len(buf), err)
			}
		}
	}

	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}
	return total, nil
}
