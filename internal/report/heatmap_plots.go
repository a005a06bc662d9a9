package report

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/user/parametric_toolkit_go/internal/fenestration"
)

// Heatmap value columns.
const (
	ColOpeningPercent = "Opening %"
	ColNormalized     = "Normalized"
	ColCategory       = "Category"
	ColScaleFactor    = "Scale Factor"
)

// panelGrid adapts per-panel records to plotter.GridXYZ. Records are
// row-major: U varies fastest, matching the panel id order.
type panelGrid struct {
	values         []float64
	uCount, vCount int
}

func (g *panelGrid) Dims() (c, r int)   { return g.uCount, g.vCount }
func (g *panelGrid) Z(c, r int) float64 { return g.values[r*g.uCount+c] }
func (g *panelGrid) X(c int) float64    { return float64(c) }
func (g *panelGrid) Y(r int) float64    { return float64(r) }

// recordValue extracts the named column from a record.
func recordValue(rec fenestration.PanelRecord, valueCol string) (float64, error) {
	switch valueCol {
	case ColOpeningPercent:
		return rec.OpeningPercent, nil
	case ColNormalized:
		return rec.NormalizedValue, nil
	case ColCategory:
		return float64(rec.Category), nil
	case ColScaleFactor:
		return rec.ScaleFactor, nil
	default:
		return 0, fmt.Errorf("unknown value column for heatmap: %s", valueCol)
	}
}

// CreateGridHeatmap renders a facade heatmap of the given record column over
// the u x v panel grid and returns it as PNG bytes.
func CreateGridHeatmap(records []fenestration.PanelRecord, uCount, vCount int, valueCol, plotTitle string) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no fenestration records to plot heatmap")
	}
	if uCount <= 0 || vCount <= 0 || len(records) != uCount*vCount {
		return nil, fmt.Errorf("records (%d) do not fill a %dx%d grid", len(records), uCount, vCount)
	}

	grid := &panelGrid{
		values: make([]float64, len(records)),
		uCount: uCount,
		vCount: vCount,
	}
	minVal, maxVal := 0.0, 0.0
	for i, rec := range records {
		val, err := recordValue(rec, valueCol)
		if err != nil {
			return nil, err
		}
		grid.values[i] = val
		if i == 0 || val < minVal {
			minVal = val
		}
		if i == 0 || val > maxVal {
			maxVal = val
		}
	}
	if minVal == maxVal {
		maxVal = minVal + 1
	}

	p := plot.New()
	p.Title.Text = plotTitle
	p.X.Label.Text = "Panel Column (U)"
	p.Y.Label.Text = "Panel Row (V)"

	var pal palette.Palette
	if valueCol == ColNormalized {
		// Diverging palette centered on the 0.5 no-data midpoint.
		pal = moreland.SmoothBlueRed().Palette(255)
	} else {
		pal = palette.Heat(12, 1)
	}

	hm := plotter.NewHeatMap(grid, pal)
	hm.Min = minVal
	hm.Max = maxVal
	p.Add(hm)

	// Tick labels use the 1-based identifiers that appear in panel ids.
	xTicks := make([]plot.Tick, uCount)
	for c := 0; c < uCount; c++ {
		xTicks[c] = plot.Tick{Value: float64(c), Label: fmt.Sprintf("%02d", c+1)}
	}
	yTicks := make([]plot.Tick, vCount)
	for r := 0; r < vCount; r++ {
		yTicks[r] = plot.Tick{Value: float64(r), Label: fmt.Sprintf("%02d", r+1)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Min, p.X.Max = -0.5, float64(uCount)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(vCount)-0.5

	writer, err := p.WriterTo(vg.Points(700), vg.Points(500), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create heatmap writer: %v", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write heatmap to buffer: %v", err)
	}
	return buf.Bytes(), nil
}
