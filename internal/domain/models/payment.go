package models

import "iter"

// Payment represents a single row of the Bolsa Família payments file
// published by Portal da Transparência.
//
// Column order (Portuguese header → field):
//  1. MÊS COMPETÊNCIA        → CompetenceMonth ("YYYYMM")
//  2. MÊS REFERÊNCIA         → ReferenceMonth ("YYYYMM")
//  3. UF                     → UF
//  4. CÓDIGO MUNICÍPIO SIAFI → MunicipalityCode
//  5. NOME MUNICÍPIO         → MunicipalityName
//  6. CPF FAVORECIDO         → BeneficiaryCPF (masked at the source)
//  7. NIS FAVORECIDO         → BeneficiaryNIS
//  8. NOME FAVORECIDO        → BeneficiaryName
//  9. VALOR PARCELA          → Amount (BRL)
//
// Only UF and Amount take part in the statistics.
type Payment struct {
	CompetenceMonth  string
	ReferenceMonth   string
	UF               string
	MunicipalityCode string
	MunicipalityName string
	BeneficiaryCPF   string
	BeneficiaryNIS   string
	BeneficiaryName  string
	Amount           float64
}

// Dataset is the full, in-memory collection of payments of one analysis run.
//
// A Dataset is built once and never mutated afterwards; every statistic is a
// pure function of it. It is safe for concurrent readers.
type Dataset struct {
	source   string
	payments []Payment
}

// NewDataset takes ownership of payments. Callers must not modify the slice afterwards.
func NewDataset(source string, payments []Payment) *Dataset {
	if payments == nil {
		payments = []Payment{}
	}
	return &Dataset{source: source, payments: payments}
}

// Source names where the payments were loaded from (file path or table).
func (d *Dataset) Source() string { return d.source }

// Len returns the number of payments.
func (d *Dataset) Len() int { return len(d.payments) }

// All iterates the payments in load order.
func (d *Dataset) All() iter.Seq[Payment] {
	return func(yield func(Payment) bool) {
		for _, p := range d.payments {
			if !yield(p) {
				return
			}
		}
	}
}

// Amounts returns a fresh copy of the amount column in load order.
func (d *Dataset) Amounts() []float64 {
	out := make([]float64, len(d.payments))
	for i, p := range d.payments {
		out[i] = p.Amount
	}
	return out
}
