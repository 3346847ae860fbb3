// Package report renders the per-cycle word frequency bar chart.
package report

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"newswatch/internal/crawler"
)

// RenderChart draws a bar chart of the ranked words and writes it to path,
// overwriting any previous cycle's file. The output format follows the path
// extension ('.png' expected).
func RenderChart(top []crawler.WordCount, path string) error {
	p := plot.New()
	p.Title.Text = "Top Words in Stored News Text"
	p.X.Label.Text = "Words"
	p.Y.Label.Text = "Counts"

	values := make(plotter.Values, len(top))
	labels := make([]string, len(top))
	for i, wc := range top {
		values[i] = float64(wc.Count)
		labels[i] = wc.Word
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
