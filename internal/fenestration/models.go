package fenestration

import "github.com/user/parametric_toolkit_go/internal/geometry"

// CutStrategy selects how an opening is cut into a panel. Both strategies
// satisfy the same metrics contract.
type CutStrategy int

const (
	// StrategyProjectSplit projects the opening curve onto the panel brep and
	// splits the face, keeping the largest resulting face.
	StrategyProjectSplit CutStrategy = iota
	// StrategyBooleanDifference extrudes the opening curve along the frame
	// normal and subtracts the prism from the panel brep.
	StrategyBooleanDifference
)

// Options control the adaptive fenestration pipeline.
type Options struct {
	MinOpening    float64     // opening scale at the low end of the data
	MaxOpening    float64     // opening scale at the high end of the data
	NumCategories int         // discrete bins for classification
	Invert        bool        // higher data values produce smaller openings
	Strategy      CutStrategy // cutting strategy
	Tolerance     float64     // projection/split tolerance
}

// DefaultOptions returns the standard pipeline settings.
func DefaultOptions() Options {
	return Options{
		MinOpening:    0.0,
		MaxOpening:    0.5,
		NumCategories: 11,
		Invert:        true,
		Strategy:      StrategyProjectSplit,
		Tolerance:     0.01,
	}
}

// PanelRecord holds the per-panel fenestration metrics. Records are created
// once per panel and never mutated afterward.
type PanelRecord struct {
	ID              string
	RawValue        float64
	NormalizedValue float64
	Category        int
	ScaleFactor     float64
	OpeningArea     float64
	PanelArea       float64
	OpeningPercent  float64
}

// Result bundles the index-aligned outputs of AdaptiveFenestration.
type Result struct {
	Panels       []geometry.Geometry
	Records      []PanelRecord
	Categories   []int
	ScaleFactors []float64
}
