package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/guttosm/bfpulse/internal/domain/models"
)

// ErrLoad marks every failure to load the payments dataset: missing or
// unreadable file, malformed Parquet, or a required column absent.
var ErrLoad = errors.New("load dataset")

const (
	// ColumnCategory and ColumnAmount are the columns the analysis needs.
	// Names are fixed by the data producer and must match exactly.
	ColumnCategory = "UF"
	ColumnAmount   = "VALOR PARCELA"

	readBatchSize = 8192
)

// paymentRow is the Parquet layout of a payment. Column names keep the
// publisher's Portuguese headers so files written by other tools load as-is.
type paymentRow struct {
	CompetenceMonth  string  `parquet:"MÊS COMPETÊNCIA,optional"`
	ReferenceMonth   string  `parquet:"MÊS REFERÊNCIA,optional"`
	UF               string  `parquet:"UF,optional"`
	MunicipalityCode string  `parquet:"CÓDIGO MUNICÍPIO SIAFI,optional"`
	MunicipalityName string  `parquet:"NOME MUNICÍPIO,optional"`
	BeneficiaryCPF   string  `parquet:"CPF FAVORECIDO,optional"`
	BeneficiaryNIS   string  `parquet:"NIS FAVORECIDO,optional"`
	BeneficiaryName  string  `parquet:"NOME FAVORECIDO,optional"`
	Amount           float64 `parquet:"VALOR PARCELA,optional"`
}

func (r paymentRow) toModel() models.Payment {
	return models.Payment(r)
}

func fromModel(p models.Payment) paymentRow {
	return paymentRow(p)
}

// LoadDataset reads the whole Parquet file at path into an immutable Dataset.
//
// The file schema must contain ColumnCategory and ColumnAmount; other
// columns are optional and ignored when absent. Every failure wraps ErrLoad.
func LoadDataset(ctx context.Context, path string) (ds *models.Dataset, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrLoad, path, err)
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", ErrLoad, path, err)
	}

	pf, err := parquet.OpenFile(f, st.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: read parquet footer %s: %w", ErrLoad, path, err)
	}

	var missing []string
	for _, col := range []string{ColumnCategory, ColumnAmount} {
		if _, ok := pf.Schema().Lookup(col); !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s: missing required columns: %s", ErrLoad, path, strings.Join(missing, ", "))
	}

	// The generic reader panics when the file cannot be converted to paymentRow.
	defer func() {
		if r := recover(); r != nil {
			ds, err = nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, r)
		}
	}()

	reader := parquet.NewGenericReader[paymentRow](f)
	defer func() { _ = reader.Close() }()

	payments := make([]models.Payment, 0, pf.NumRows())
	buf := make([]paymentRow, readBatchSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, rerr := reader.Read(buf)
		for _, row := range buf[:n] {
			payments = append(payments, row.toModel())
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: read rows %s: %w", ErrLoad, path, rerr)
		}
	}

	return models.NewDataset(path, payments), nil
}

// WriteDataset writes payments to path as a Parquet file, replacing it.
func WriteDataset(path string, payments []models.Payment) error {
	rows := make([]paymentRow, len(payments))
	for i, p := range payments {
		rows[i] = fromModel(p)
	}
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("write parquet %s: %w", path, err)
	}
	return nil
}
