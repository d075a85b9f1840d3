package ingestion

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/guttosm/bfpulse/internal/domain/models"
	"github.com/guttosm/bfpulse/internal/logger"
)

// expectedHeaders enforces strict column ordering for the monthly
// "Novo Bolsa Família" payment files.
// If the header doesn't match EXACTLY (order + count), conversion must fail.
var expectedHeaders = []string{
	"MÊS COMPETÊNCIA",
	"MÊS REFERÊNCIA",
	"UF",
	"CÓDIGO MUNICÍPIO SIAFI",
	"NOME MUNICÍPIO",
	"CPF FAVORECIDO",
	"NIS FAVORECIDO",
	"NOME FAVORECIDO",
	"VALOR PARCELA",
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// errMissingAmount marks a row whose VALOR PARCELA cell is empty.
var errMissingAmount = errors.New("empty VALOR PARCELA")

// parseFile opens, validates and parses one monthly payments file.
// It fails on:
//   - header not matching expected order/length
//   - a row with a different column count
//   - a malformed installment value
//   - unrecoverable I/O errors
//
// It tolerates:
//   - empty descriptive cells (they become zero values)
//   - rows with an empty VALOR PARCELA, which are skipped and counted in a
//     warning so they do not enter the statistics as zero-valued payments
//   - ISO-8859-1 files (the publisher's encoding) as well as UTF-8 ones
func parseFile(ctx context.Context, path string) ([]models.Payment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	src, err := decodedReader(f)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	r := csv.NewReader(src)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow variable but we’ll check explicitly

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	var out []models.Payment
	lineNumber := 1 // header already read
	skipped := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(expectedHeaders) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		p, err := recordToPayment(rec)
		if errors.Is(err, errMissingAmount) {
			skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		out = append(out, p)
	}

	if skipped > 0 {
		logger.L().Warn().Str("file", filepath.Base(path)).Int("skipped", skipped).Int("rows", len(out)).
			Msg("rows without VALOR PARCELA skipped")
	}
	return out, nil
}

// decodedReader strips a UTF-8 BOM and transcodes ISO-8859-1 input to UTF-8.
// The encoding is decided on the first buffered chunk of the file.
func decodedReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, 4096)
	head, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}

	if bytes.HasPrefix(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
		return br, nil
	}
	// A multi-byte rune may be cut at the end of the peeked chunk; judge on complete lines.
	if i := bytes.LastIndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	if utf8.Valid(head) {
		return br, nil
	}
	return charmap.ISO8859_1.NewDecoder().Reader(br), nil
}

// recordToPayment converts a single CSV record (already validated length==9)
// into a models.Payment. It is STRICT about the amount: a malformed value is
// an error and an empty one returns errMissingAmount. Other empty cells map
// to zero-values.
//
// VALOR PARCELA uses a comma as decimal separator and may carry dots as
// thousands separators ("1.250,00").
func recordToPayment(rec []string) (models.Payment, error) {
	p := models.Payment{
		CompetenceMonth:  strings.TrimSpace(rec[0]),
		ReferenceMonth:   strings.TrimSpace(rec[1]),
		UF:               strings.ToUpper(strings.TrimSpace(rec[2])),
		MunicipalityCode: strings.TrimSpace(rec[3]),
		MunicipalityName: strings.TrimSpace(rec[4]),
		BeneficiaryCPF:   strings.TrimSpace(rec[5]),
		BeneficiaryNIS:   strings.TrimSpace(rec[6]),
		BeneficiaryName:  strings.TrimSpace(rec[7]),
	}

	s := strings.TrimSpace(rec[8])
	if s == "" {
		return p, errMissingAmount
	}
	v, err := parseAmount(s)
	if err != nil {
		return p, fmt.Errorf("invalid VALOR PARCELA %q: %w", s, err)
	}
	p.Amount = v

	return p, nil
}

func parseAmount(s string) (float64, error) {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
