package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	pq "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"

	"github.com/guttosm/bfpulse/db"
	"github.com/guttosm/bfpulse/internal/domain/models"
)

// PaymentsRepository defines contract for DB operations.
type PaymentsRepository interface {
	InsertPaymentsBatch(ctx context.Context, source string, payments []models.Payment) error
	HasIngestionForSource(ctx context.Context, source string) (bool, error)
	UpsertIngestionLog(ctx context.Context, source string, rowCount int, runID string) error
	DeletePaymentsBySource(ctx context.Context, source string) error
	LoadPayments(ctx context.Context) (*models.Dataset, error)
}

type paymentsRepository struct {
	db *sql.DB
}

func NewPaymentsRepository(db *sql.DB) PaymentsRepository {
	return &paymentsRepository{db: db}
}

// Migrate applies the embedded goose migrations.
func Migrate(sqlDB *sql.DB) error {
	goose.SetBaseFS(db.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, db.MigrationsDir); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// InsertPaymentsBatch copies multiple payments into DB in a single transaction.
func (r *paymentsRepository) InsertPaymentsBatch(ctx context.Context, source string, payments []models.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.ExecContext(ctx, `SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"payments",
		"source",
		"competence_month",
		"reference_month",
		"uf",
		"municipality_code",
		"municipality_name",
		"beneficiary_cpf",
		"beneficiary_nis",
		"beneficiary_name",
		"amount",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	// empty month codes go to NULL; CHAR(6) would reject them otherwise
	toNullString := func(s string) interface{} {
		if s == "" {
			return nil
		}
		return s
	}

	for _, p := range payments {
		if _, err := stmt.ExecContext(ctx,
			source,
			toNullString(p.CompetenceMonth),
			toNullString(p.ReferenceMonth),
			p.UF,
			p.MunicipalityCode,
			p.MunicipalityName,
			p.BeneficiaryCPF,
			p.BeneficiaryNIS,
			p.BeneficiaryName,
			p.Amount,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// HasIngestionForSource checks if a source file was already ingested.
func (r *paymentsRepository) HasIngestionForSource(ctx context.Context, source string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE source = $1)`, source).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or updates) an ingestion entry for a source file.
func (r *paymentsRepository) UpsertIngestionLog(ctx context.Context, source string, rowCount int, runID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ingestion_log (source, row_count, run_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (source)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  run_id = EXCLUDED.run_id,
					  ingested_at = NOW()
	`, source, rowCount, runID)
	return err
}

// DeletePaymentsBySource removes all payments loaded from a source file.
func (r *paymentsRepository) DeletePaymentsBySource(ctx context.Context, source string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE source = $1`, source)
	return err
}

// LoadPayments reads every stored payment, in insertion order, into an immutable Dataset.
func (r *paymentsRepository) LoadPayments(ctx context.Context) (*models.Dataset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT COALESCE(competence_month, ''), COALESCE(reference_month, ''), uf,
		       COALESCE(municipality_code, ''), COALESCE(municipality_name, ''),
		       COALESCE(beneficiary_cpf, ''), COALESCE(beneficiary_nis, ''),
		       COALESCE(beneficiary_name, ''), amount
		FROM payments
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(
			&p.CompetenceMonth,
			&p.ReferenceMonth,
			&p.UF,
			&p.MunicipalityCode,
			&p.MunicipalityName,
			&p.BeneficiaryCPF,
			&p.BeneficiaryNIS,
			&p.BeneficiaryName,
			&p.Amount,
		); err != nil {
			return nil, err
		}
		p.UF = strings.TrimSpace(p.UF)
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return models.NewDataset("postgres:payments", payments), nil
}
