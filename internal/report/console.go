package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const rule = "------------------------------"

// ConsoleRenderer prints the plain-text report.
type ConsoleRenderer struct {
	Out io.Writer
}

func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{Out: out}
}

func (r *ConsoleRenderer) Name() string { return "console" }

func (r *ConsoleRenderer) Render(ctx context.Context, a *Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	if s := a.Summary; s != nil {
		skew := "indefinida"
		if s.SkewDefined() {
			skew = money(s.SkewPct) + "%"
		}

		fmt.Fprintf(&b, "\nMEDIDAS DE TENDÊNCIA CENTRAL:\n%s\n", rule)
		fmt.Fprintf(&b, "Média: %s\n", money(s.Mean))
		fmt.Fprintf(&b, "Mediana: %s\n", money(s.Median))
		fmt.Fprintf(&b, "Distância: %s\n", skew)

		fmt.Fprintf(&b, "\nMEDIDAS DE DISPERSÃO:\n%s\n", rule)
		fmt.Fprintf(&b, "Máximo: %s\n", money(s.Max))
		fmt.Fprintf(&b, "Mínimo: %s\n", money(s.Min))
		fmt.Fprintf(&b, "Amplitude Total: %s\n", money(s.Range))
		fmt.Fprintf(&b, "Desvio Padrão: %s\n", money(s.StdDev))

		fmt.Fprintf(&b, "\nMEDIDAS DE POSIÇÃO (%s):\n%s\n", s.Method, rule)
		fmt.Fprintf(&b, "Mínimo: %s\n", money(s.Min))
		fmt.Fprintf(&b, "Limite Inferior: %s\n", money(s.LowerFence))
		fmt.Fprintf(&b, "Q1 (25%%): %s\n", money(s.Q1))
		fmt.Fprintf(&b, "Q2 (50%%): %s\n", money(s.Q2))
		fmt.Fprintf(&b, "Q3 (75%%): %s\n", money(s.Q3))
		fmt.Fprintf(&b, "IQR: %s\n", money(s.IQR))
		fmt.Fprintf(&b, "Limite Superior: %s\n", money(s.UpperFence))
		fmt.Fprintf(&b, "Máximo: %s\n", money(s.Max))
		fmt.Fprintf(&b, "Outliers: %d abaixo, %d acima\n", s.OutliersBelow, s.OutliersAbove)
	} else {
		fmt.Fprintf(&b, "\nMEDIDAS ESTATÍSTICAS:\n%s\nindisponíveis (nenhum valor de parcela)\n", rule)
	}

	fmt.Fprintf(&b, "\nTOP %d ESTADOS POR TOTAL DE PARCELAS:\n%s\n", len(a.Ranking), rule)
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tUF\tTOTAL PARCELA\tPAGAMENTOS\t")
	for i, e := range a.Ranking {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t\n", i+1, e.Category, money(e.Total), e.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if obs := Observations(a); len(obs) > 0 {
		fmt.Fprintf(&b, "\nOBSERVAÇÕES:\n%s\n", rule)
		for _, o := range obs {
			fmt.Fprintf(&b, "- %s\n", o)
		}
	}

	_, err := io.WriteString(r.Out, b.String())
	return err
}
