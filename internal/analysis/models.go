package analysis

import "github.com/user/parametric_toolkit_go/internal/fenestration"

// RowStats holds aggregate opening metrics for one grid row or column.
type RowStats struct {
	Index          int     // 1-based row (V) or column (U) identifier
	MeanOpening    float64 // mean opening percent
	MeanNormalized float64
	PanelCount     int
}

// FacadeStats summarises a fenestration result over its panel grid.
type FacadeStats struct {
	PanelCount       int
	SolidPanelCount  int // panels with a zero scale factor
	TotalPanelArea   float64
	TotalOpeningArea float64
	MeanOpening      float64 // mean opening percent across panels
	MinOpening       float64
	MaxOpening       float64
	RowStats         []RowStats                 // per V row, ascending
	ColumnStats      []RowStats                 // per U column, ascending
	RankedByOpening  []fenestration.PanelRecord // descending opening percent
	AnalysisErrors   []string
}

// NewFacadeStats initializes an empty stats container.
func NewFacadeStats() *FacadeStats {
	return &FacadeStats{
		RowStats:        make([]RowStats, 0),
		ColumnStats:     make([]RowStats, 0),
		RankedByOpening: make([]fenestration.PanelRecord, 0),
		AnalysisErrors:  make([]string, 0),
	}
}
