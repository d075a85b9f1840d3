package ingestion

import "time"

const (
	competenceLayout = "200601" // YYYYMM
	fileSuffix       = "_NovoBolsaFamilia.csv"
)

// LastNMonths returns the first day of the last n competence months before
// from's month, most recent first. The current month is never included: its
// payment file is only published after the month closes.
func LastNMonths(n int, from time.Time) []time.Time {
	out := make([]time.Time, 0, n)
	y, m, _ := from.Date()
	d := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	for len(out) < n {
		d = d.AddDate(0, -1, 0)
		out = append(out, d)
	}
	return out
}

// monthFileName is the name Portal da Transparência gives to a month's file,
// e.g. "202403_NovoBolsaFamilia.csv".
func monthFileName(month time.Time) string {
	return month.Format(competenceLayout) + fileSuffix
}
