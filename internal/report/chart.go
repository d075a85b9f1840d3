package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNothingToPlot is returned when there are no amounts for the box plot.
var ErrNothingToPlot = errors.New("no amounts to plot")

// ChartRenderer draws the ranking bar chart and the amount box plot side by
// side and saves them as a PNG.
type ChartRenderer struct {
	Path   string
	Width  vg.Length
	Height vg.Length
}

// NewChartRenderer uses a 15x6 inch canvas.
func NewChartRenderer(path string) *ChartRenderer {
	return &ChartRenderer{Path: path, Width: 15 * vg.Inch, Height: 6 * vg.Inch}
}

func (r *ChartRenderer) Name() string { return "chart" }

func (r *ChartRenderer) Render(ctx context.Context, a *Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(a.Amounts) == 0 {
		return ErrNothingToPlot
	}

	bars, err := rankingBars(a)
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	box, err := amountsBox(a.Amounts)
	if err != nil {
		return fmt.Errorf("box plot: %w", err)
	}

	img := vgimg.New(r.Width, r.Height)
	dc := draw.New(img)
	pad := vg.Millimeter * 4
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      2 * pad,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
	}
	plots := [][]*plot.Plot{{bars, box}}
	canvases := plot.Align(plots, tiles, dc)
	bars.Draw(canvases[0][0])
	box.Draw(canvases[0][1])

	if err := os.MkdirAll(filepath.Dir(r.Path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(r.Path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write png: %w", err)
	}
	return f.Close()
}

func rankingBars(a *Analysis) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d Estados com Maior Total de Parcelas", len(a.Ranking))
	p.X.Label.Text = "Estado (UF)"
	p.Y.Label.Text = "Valor das Parcelas"
	if len(a.Ranking) == 0 {
		return p, nil
	}

	values := make(plotter.Values, len(a.Ranking))
	labels := make([]string, len(a.Ranking))
	for i, e := range a.Ranking {
		values[i] = e.Total
		labels[i] = e.Category
	}

	bc, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, err
	}
	bc.Color = plotutil.Color(0)
	bc.LineStyle.Width = 0
	p.Add(bc)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p, nil
}

func amountsBox(amounts []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Distribuição dos Valores das Parcelas"
	p.X.Label.Text = "Valor Parcela"

	box, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(amounts))
	if err != nil {
		return nil, err
	}
	box.Horizontal = true
	p.Add(box)
	p.NominalY("")
	return p, nil
}
