package report

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/user/parametric_toolkit_go/internal/fenestration"
)

// CreateScaleLinePlot renders the per-panel opening scale factors in panel
// order, with dashed reference lines at the configured min and max opening
// scales, and returns the plot as PNG bytes.
func CreateScaleLinePlot(records []fenestration.PanelRecord, minOpening, maxOpening float64) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no fenestration records to plot")
	}

	p := plot.New()
	p.Title.Text = "Opening Scale Factor per Panel"
	p.X.Label.Text = "Panel Index"
	p.Y.Label.Text = "Scale Factor"
	p.Add(plotter.NewGrid())

	n := float64(len(records) - 1)
	for _, ref := range []struct {
		label string
		value float64
	}{
		{"Min Opening", minOpening},
		{"Max Opening", maxOpening},
	} {
		refLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: ref.value}, {X: n, Y: ref.value}})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s reference line: %v", ref.label, err)
		}
		refLine.Color = color.RGBA{R: 255, A: 255}
		refLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(refLine)
		p.Legend.Add(fmt.Sprintf("%s (%.2f)", ref.label, ref.value), refLine)
	}

	scalePts := make(plotter.XYs, len(records))
	normPts := make(plotter.XYs, len(records))
	for i, rec := range records {
		scalePts[i] = plotter.XY{X: float64(i), Y: rec.ScaleFactor}
		normPts[i] = plotter.XY{X: float64(i), Y: rec.NormalizedValue}
	}

	scaleLine, err := plotter.NewLine(scalePts)
	if err != nil {
		return nil, fmt.Errorf("failed to create scale factor line: %v", err)
	}
	scaleLine.Color = color.RGBA{B: 255, A: 255}
	scaleLine.LineStyle.Width = vg.Points(1.5)
	p.Add(scaleLine)
	p.Legend.Add("Scale Factor", scaleLine)

	normLine, err := plotter.NewLine(normPts)
	if err != nil {
		return nil, fmt.Errorf("failed to create normalized value line: %v", err)
	}
	normLine.Color = color.RGBA{G: 128, B: 128, A: 255}
	normLine.LineStyle.Width = vg.Points(1)
	p.Add(normLine)
	p.Legend.Add("Normalized Data", normLine)

	p.Legend.Top = true
	p.Legend.XOffs = vg.Points(10)

	writer, err := p.WriterTo(vg.Points(800), vg.Points(400), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %v", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %v", err)
	}
	return buf.Bytes(), nil
}

// CreateCategoryPlot renders the category occupancy (panel count per
// category bin) as a line-with-points profile and returns PNG bytes.
func CreateCategoryPlot(records []fenestration.PanelRecord, numCategories int) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no fenestration records to plot")
	}
	if numCategories <= 0 {
		return nil, fmt.Errorf("numCategories must be positive, got %d", numCategories)
	}

	counts := make([]int, numCategories)
	for _, rec := range records {
		if rec.Category >= 0 && rec.Category < numCategories {
			counts[rec.Category]++
		}
	}

	p := plot.New()
	p.Title.Text = "Panel Count per Category"
	p.X.Label.Text = "Category"
	p.Y.Label.Text = "Panels"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, numCategories)
	for i, c := range counts {
		pts[i] = plotter.XY{X: float64(i), Y: float64(c)}
	}
	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create category plot: %v", err)
	}
	line.Color = color.RGBA{R: 128, B: 128, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(2)
	p.Add(line, scatter)

	ticks := make([]plot.Tick, numCategories)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Min = 0

	writer, err := p.WriterTo(vg.Points(800), vg.Points(400), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %v", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %v", err)
	}
	return buf.Bytes(), nil
}
