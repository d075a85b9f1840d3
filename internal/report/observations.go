package report

import (
	"fmt"
	"strings"
)

// HomogeneityThresholdPct is the mean/median distance under which the
// distribution is described as homogeneous.
const HomogeneityThresholdPct = 5.0

// Observations derives the narrative paragraph of the report from the numbers.
func Observations(a *Analysis) []string {
	var out []string

	if s := a.Summary; s != nil {
		switch {
		case !s.SkewDefined():
			out = append(out, "A mediana é zero, portanto a distância entre média e mediana é indefinida.")
		case s.SkewPct <= HomogeneityThresholdPct:
			out = append(out, fmt.Sprintf(
				"A distância entre média e mediana (%s%%) indica tendência de homogeneidade; a média é uma medida confiável.",
				money(s.SkewPct)))
		default:
			out = append(out, fmt.Sprintf(
				"A distância entre média e mediana (%s%%) indica assimetria; a mediana representa melhor o valor típico.",
				money(s.SkewPct)))
		}

		if n := s.OutliersBelow + s.OutliersAbove; n > 0 {
			out = append(out, fmt.Sprintf(
				"Há %d valores discrepantes: %d abaixo do limite inferior (%s) e %d acima do limite superior (%s).",
				n, s.OutliersBelow, money(s.LowerFence), s.OutliersAbove, money(s.UpperFence)))
		} else {
			out = append(out, "Nenhum valor está fora dos limites inferior e superior.")
		}

		out = append(out, fmt.Sprintf(
			"A amplitude total é de R$ %s (máximo %s, mínimo %s).",
			money(s.Range), money(s.Max), money(s.Min)))
	}

	switch n := len(a.Ranking); {
	case n == 1:
		out = append(out, fmt.Sprintf("O único estado no ranking é %s.", a.Ranking[0].Category))
	case n >= 4:
		out = append(out, fmt.Sprintf(
			"Entre os %d maiores estados destacam-se %s e %s; os menores entre eles são %s e %s.",
			n, a.Ranking[0].Category, a.Ranking[1].Category, a.Ranking[n-2].Category, a.Ranking[n-1].Category))
	case n > 1:
		ufs := make([]string, n)
		for i, e := range a.Ranking {
			ufs[i] = e.Category
		}
		out = append(out, fmt.Sprintf("Ranking dos estados: %s.", strings.Join(ufs, ", ")))
	}

	return out
}
