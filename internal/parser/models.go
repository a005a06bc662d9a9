package parser

// PanelDataSeries holds one scalar measurement per panel, index-aligned with
// the panel grid, plus optional per-row panel ids read from the file.
type PanelDataSeries struct {
	Values      []float64
	IDs         []string // empty when the CSV carries bare values only
	NumValues   int
	ParseErrors []string // non-fatal warnings collected during parsing
}

// NewPanelDataSeries initializes an empty series.
func NewPanelDataSeries() *PanelDataSeries {
	return &PanelDataSeries{
		Values:      make([]float64, 0),
		IDs:         make([]string, 0),
		ParseErrors: make([]string, 0),
	}
}
