// Package analysis derives aggregate facade statistics from per-panel
// fenestration records: totals, per-row and per-column means, and an
// opening-size ranking for reporting.
package analysis

import (
	"fmt"
	"sort"

	"github.com/user/parametric_toolkit_go/internal/fenestration"
)

// AnalyzeFacade computes grid-level statistics for a fenestration result.
// Records are expected in panel-id order (U varies fastest within each V
// row) over a uCount x vCount grid.
func AnalyzeFacade(records []fenestration.PanelRecord, uCount, vCount int) (*FacadeStats, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no fenestration records to analyze")
	}
	if uCount <= 0 || vCount <= 0 || len(records) != uCount*vCount {
		return nil, fmt.Errorf("records (%d) do not fill a %dx%d grid", len(records), uCount, vCount)
	}

	stats := NewFacadeStats()
	stats.PanelCount = len(records)
	stats.MinOpening = records[0].OpeningPercent
	stats.MaxOpening = records[0].OpeningPercent

	sumOpening := 0.0
	rowSumOpening := make([]float64, vCount)
	rowSumNorm := make([]float64, vCount)
	colSumOpening := make([]float64, uCount)
	colSumNorm := make([]float64, uCount)

	for i, rec := range records {
		u := i % uCount
		v := i / uCount

		if rec.ScaleFactor == 0 {
			stats.SolidPanelCount++
		}
		stats.TotalPanelArea += rec.PanelArea
		stats.TotalOpeningArea += rec.OpeningArea
		sumOpening += rec.OpeningPercent
		if rec.OpeningPercent < stats.MinOpening {
			stats.MinOpening = rec.OpeningPercent
		}
		if rec.OpeningPercent > stats.MaxOpening {
			stats.MaxOpening = rec.OpeningPercent
		}

		rowSumOpening[v] += rec.OpeningPercent
		rowSumNorm[v] += rec.NormalizedValue
		colSumOpening[u] += rec.OpeningPercent
		colSumNorm[u] += rec.NormalizedValue
	}
	stats.MeanOpening = sumOpening / float64(len(records))

	for v := 0; v < vCount; v++ {
		stats.RowStats = append(stats.RowStats, RowStats{
			Index:          v + 1,
			MeanOpening:    rowSumOpening[v] / float64(uCount),
			MeanNormalized: rowSumNorm[v] / float64(uCount),
			PanelCount:     uCount,
		})
	}
	for u := 0; u < uCount; u++ {
		stats.ColumnStats = append(stats.ColumnStats, RowStats{
			Index:          u + 1,
			MeanOpening:    colSumOpening[u] / float64(vCount),
			MeanNormalized: colSumNorm[u] / float64(vCount),
			PanelCount:     vCount,
		})
	}

	stats.RankedByOpening = make([]fenestration.PanelRecord, len(records))
	copy(stats.RankedByOpening, records)
	sort.SliceStable(stats.RankedByOpening, func(i, j int) bool {
		return stats.RankedByOpening[i].OpeningPercent > stats.RankedByOpening[j].OpeningPercent
	})

	return stats, nil
}
