package models

import "testing"

func TestDataset_AmountsIsACopy(t *testing.T) {
	ds := NewDataset("mem", []Payment{{UF: "SP", Amount: 100}, {UF: "BA", Amount: 30}})

	a := ds.Amounts()
	a[0] = -1

	if got := ds.Amounts()[0]; got != 100 {
		t.Fatalf("dataset mutated through Amounts(): got %v", got)
	}
	if ds.Len() != 2 || ds.Source() != "mem" {
		t.Fatalf("unexpected dataset: len=%d source=%q", ds.Len(), ds.Source())
	}
}

func TestDataset_AllStopsEarly(t *testing.T) {
	ds := NewDataset("mem", []Payment{{UF: "SP"}, {UF: "BA"}, {UF: "RJ"}})

	var seen []string
	for p := range ds.All() {
		seen = append(seen, p.UF)
		if len(seen) == 2 {
			break
		}
	}
	if len(seen) != 2 || seen[0] != "SP" || seen[1] != "BA" {
		t.Fatalf("unexpected iteration order: %v", seen)
	}
}

func TestNewDataset_NilPayments(t *testing.T) {
	ds := NewDataset("empty", nil)
	if ds.Len() != 0 || len(ds.Amounts()) != 0 {
		t.Fatalf("expected empty dataset")
	}
}
