package ingestion

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConvertDirectory(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	writeTempFile(t, dir, "202402_NovoBolsaFamilia.csv", validHeader+row("SP", "100,00")+row("SP", "50,00"))
	writeTempFile(t, dir, "202401_NovoBolsaFamilia.csv", validHeader+row("BA", "30,00"))
	out := filepath.Join(t.TempDir(), "nested", "bolsa_familia.parquet")

	n, err := ConvertDirectory(context.Background(), dir, out, 2, 0, now)
	if err != nil {
		t.Fatalf("ConvertDirectory: %v", err)
	}
	if n != 3 {
		t.Fatalf("rows: want 3 got %d", n)
	}

	ds, err := LoadDataset(context.Background(), out)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	// oldest month first
	want := []float64{30, 100, 50}
	got := ds.Amounts()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("amounts: want %v got %v", want, got)
		}
	}
}

func TestConvertDirectory_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	writeTempFile(t, dir, "202402_NovoBolsaFamilia.csv", validHeader)

	_, err := ConvertDirectory(context.Background(), dir, filepath.Join(dir, "out.parquet"), 3, 1, now)
	if err == nil || !strings.Contains(err.Error(), "missing required files") {
		t.Fatalf("expected missing files error, got %v", err)
	}
	for _, name := range []string{"202401_NovoBolsaFamilia.csv", "202312_NovoBolsaFamilia.csv"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error %q does not list %s", err, name)
		}
	}
}

func TestConvertDirectory_BadFileFailsAll(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	writeTempFile(t, dir, "202402_NovoBolsaFamilia.csv", validHeader+row("SP", "100,00"))
	writeTempFile(t, dir, "202401_NovoBolsaFamilia.csv", "X;Y\n")

	if _, err := ConvertDirectory(context.Background(), dir, filepath.Join(dir, "out.parquet"), 2, 2, now); err == nil {
		t.Fatalf("expected error from invalid header")
	}
}

func TestConvertDirectory_MonthsOutOfRange(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, n := range []int{0, -1, 13} {
		_, err := ConvertDirectory(context.Background(), dir, filepath.Join(dir, "out.parquet"), n, 0, now)
		if !errors.Is(err, ErrInvalidMonths) {
			t.Fatalf("months=%d: expected ErrInvalidMonths, got %v", n, err)
		}
	}
}
