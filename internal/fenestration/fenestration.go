// Package fenestration cuts data-driven openings into a panel grid: raw data
// is normalized, binned into categories, mapped to opening scales, and each
// opening is cut into its panel with the shared template curve.
package fenestration

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/user/parametric_toolkit_go/internal/geometry"
)

// NormalizeData maps raw values to [0, 1] by min-max normalization. When all
// values are equal there is no discriminating data and every output is 0.5.
func NormalizeData(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	minVal := floats.Min(values)
	maxVal := floats.Max(values)

	normalized := make([]float64, len(values))
	if maxVal == minVal {
		for i := range normalized {
			normalized[i] = 0.5
		}
		return normalized
	}
	for i, v := range values {
		normalized[i] = (v - minVal) / (maxVal - minVal)
	}
	return normalized
}

// BinIntoCategories assigns each normalized value a bucket index in
// [0, numCategories). A normalized value of exactly 1.0 clamps into the last
// bin rather than overflowing.
func BinIntoCategories(normalized []float64, numCategories int) []int {
	categories := make([]int, len(normalized))
	for i, norm := range normalized {
		category := int(norm * float64(numCategories))
		if category > numCategories-1 {
			category = numCategories - 1
		}
		categories[i] = category
	}
	return categories
}

// CalculateOpeningScale maps a normalized value to an opening scale factor.
// With invert set, higher data values produce smaller openings.
func CalculateOpeningScale(normalized, minScale, maxScale float64, invert bool) float64 {
	if invert {
		return maxScale - normalized*(maxScale-minScale)
	}
	return minScale + normalized*(maxScale-minScale)
}

// CreateFenestratedPanel cuts a scaled copy of the opening template into the
// panel. A scale factor of zero returns the panel itself, uncut, with zero
// opening metrics. The template is never mutated: scaling and repositioning
// are applied to a duplicate, scale first (about the template's own reference
// plane), then a remap onto the panel's midpoint frame.
func CreateFenestratedPanel(panel geometry.Surface, template *geometry.Curve, scaleFactor float64, panelID string, opts Options) (geometry.Geometry, PanelRecord, error) {
	record := PanelRecord{ID: panelID, ScaleFactor: scaleFactor}

	if scaleFactor == 0 {
		record.PanelArea = panel.Area()
		return panel, record, nil
	}

	uMid := panel.Domain(geometry.AxisU).Mid()
	vMid := panel.Domain(geometry.AxisV).Mid()
	frame, err := panel.FrameAt(uMid, vMid)
	if err != nil {
		return nil, record, fmt.Errorf("fenestration: no frame for panel %s: %w", panelID, err)
	}

	world := geometry.WorldXY()
	opening := template.Transformed(
		geometry.ScaleAboutPlane(world, scaleFactor, scaleFactor, 1.0).
			Then(geometry.PlaneToPlane(world, frame)),
	)

	panelBrep := panel.ToBrep()
	result := cutOpening(panelBrep, opening, frame, opts)

	openingArea, err := opening.Area()
	if err != nil {
		return nil, record, fmt.Errorf("fenestration: opening area for panel %s: %w", panelID, err)
	}
	record.OpeningArea = openingArea
	record.PanelArea = panel.Area()
	if record.PanelArea > 0 {
		record.OpeningPercent = record.OpeningArea / record.PanelArea * 100
	}
	return result, record, nil
}

// cutOpening applies the configured cutting strategy, falling back to the
// uncut panel brep when the cut fails.
func cutOpening(panelBrep *geometry.Brep, opening *geometry.Curve, frame geometry.Plane, opts Options) *geometry.Brep {
	switch opts.Strategy {
	case StrategyBooleanDifference:
		cutter, err := geometry.Extrude(opening, frame.ZAxis)
		if err != nil {
			return panelBrep
		}
		cut, err := geometry.BooleanDifference(panelBrep, cutter)
		if err != nil {
			return panelBrep
		}
		return cut
	default: // StrategyProjectSplit
		projected := geometry.ProjectCurveToBrep(opening, panelBrep, frame.ZAxis, opts.Tolerance)
		if len(projected) == 0 {
			return panelBrep
		}
		split, err := geometry.SplitFace(panelBrep.Faces[0], projected[0], opts.Tolerance)
		if err != nil || len(split.Faces) < 2 {
			return panelBrep
		}
		// A successful split yields multiple faces; keep the largest.
		largest := split.Faces[0]
		for _, f := range split.Faces[1:] {
			if f.Area() > largest.Area() {
				largest = f
			}
		}
		return largest.DuplicateFace()
	}
}

// AdaptiveFenestration runs the full pipeline over index-aligned panels, ids
// and data values. All outputs stay index-aligned with the input order; on
// any failure no partial result is returned.
func AdaptiveFenestration(panels []geometry.Surface, ids []string, dataValues []float64, template *geometry.Curve, opts Options) (*Result, error) {
	if len(panels) != len(dataValues) || len(panels) != len(ids) {
		return nil, fmt.Errorf("fenestration: panels (%d), ids (%d) and data values (%d) must have matching lengths: %w",
			len(panels), len(ids), len(dataValues), geometry.ErrInvalidInput)
	}
	if template == nil || !template.IsClosed() {
		return nil, fmt.Errorf("fenestration: opening template must be a closed curve: %w", geometry.ErrInvalidInput)
	}

	normalized := NormalizeData(dataValues)
	categories := BinIntoCategories(normalized, opts.NumCategories)

	scaleFactors := make([]float64, len(normalized))
	for i, norm := range normalized {
		scaleFactors[i] = CalculateOpeningScale(norm, opts.MinOpening, opts.MaxOpening, opts.Invert)
	}

	result := &Result{
		Panels:       make([]geometry.Geometry, 0, len(panels)),
		Records:      make([]PanelRecord, 0, len(panels)),
		Categories:   categories,
		ScaleFactors: scaleFactors,
	}
	for i, panel := range panels {
		cut, record, err := CreateFenestratedPanel(panel, template, scaleFactors[i], ids[i], opts)
		if err != nil {
			return nil, err
		}
		record.Category = categories[i]
		record.RawValue = dataValues[i]
		record.NormalizedValue = normalized[i]

		result.Panels = append(result.Panels, cut)
		result.Records = append(result.Records, record)
	}
	return result, nil
}
