package aggregate

import (
	"cmp"
	"slices"

	"github.com/guttosm/bfpulse/internal/domain/models"
)

// DefaultTopK is the number of states kept by the ranking unless configured otherwise.
const DefaultTopK = 12

// TopK orders totals by value descending and keeps the first k entries.
//
// Ties are broken by category ascending so the ranking is deterministic.
// k <= 0 or k larger than the number of categories returns every entry.
// counts is optional and fills CategoryTotal.Count.
func TopK(totals map[string]float64, counts map[string]int, k int) []models.CategoryTotal {
	out := make([]models.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, models.CategoryTotal{Category: category, Total: total, Count: counts[category]})
	}

	slices.SortFunc(out, func(a, b models.CategoryTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})

	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out
}
