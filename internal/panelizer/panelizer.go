// Package panelizer subdivides a parametric surface into a u-by-v grid of
// quadrilateral panels with row-major identifiers.
package panelizer

import (
	"fmt"

	"github.com/user/parametric_toolkit_go/internal/geometry"
)

// DefaultPrefix is the panel id prefix used when the caller passes "".
const DefaultPrefix = "P"

// GeneratePanelIDs returns panel ids in row-major order: the U index varies
// fastest within each V row.
//
// GeneratePanelIDs(2, 3, "P") yields
// P-01-01, P-02-01, P-01-02, P-02-02, P-01-03, P-02-03.
func GeneratePanelIDs(uCount, vCount int, prefix string) ([]string, error) {
	if uCount <= 0 || vCount <= 0 {
		return nil, fmt.Errorf("panelizer: u and v counts must be greater than zero: %w", geometry.ErrInvalidInput)
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	ids := make([]string, 0, uCount*vCount)
	for v := 1; v <= vCount; v++ {
		for u := 1; u <= uCount; u++ {
			ids = append(ids, fmt.Sprintf("%s-%02d-%02d", prefix, u, v))
		}
	}
	return ids, nil
}

// asSurface coerces the accepted surface-like input variants to a parametric
// surface: a surface is used as-is, a face contributes its underlying
// surface, and a brep contributes its first face's surface.
func asSurface(input any) (geometry.Surface, error) {
	switch v := input.(type) {
	case nil:
		return nil, fmt.Errorf("panelizer: no surface supplied: %w", geometry.ErrInvalidInput)
	case geometry.Surface:
		return v, nil
	case *geometry.Face:
		if v == nil || v.Surface == nil {
			return nil, fmt.Errorf("panelizer: face has no underlying surface: %w", geometry.ErrInvalidInput)
		}
		return v.Surface, nil
	case *geometry.Brep:
		if v == nil || len(v.Faces) == 0 {
			return nil, fmt.Errorf("panelizer: brep has no faces: %w", geometry.ErrInvalidInput)
		}
		return asSurface(v.Faces[0])
	default:
		return nil, fmt.Errorf("panelizer: cannot panelize %T: %w", input, geometry.ErrUnsupportedInput)
	}
}

// PanelizeSurface subdivides the surface into uCount*vCount bilinear patches,
// index-aligned with the ids from GeneratePanelIDs. The surface's U and V
// domains are sampled independently at evenly spaced parameters, inclusive of
// both domain endpoints.
func PanelizeSurface(input any, uCount, vCount int, prefix string) ([]geometry.Surface, []string, error) {
	srf, err := asSurface(input)
	if err != nil {
		return nil, nil, err
	}
	ids, err := GeneratePanelIDs(uCount, vCount, prefix)
	if err != nil {
		return nil, nil, err
	}

	uDom := srf.Domain(geometry.AxisU)
	vDom := srf.Domain(geometry.AxisV)
	uParams := make([]float64, uCount+1)
	for i := 0; i <= uCount; i++ {
		uParams[i] = uDom.ParameterAt(float64(i) / float64(uCount))
	}
	vParams := make([]float64, vCount+1)
	for i := 0; i <= vCount; i++ {
		vParams[i] = vDom.ParameterAt(float64(i) / float64(vCount))
	}

	panels := make([]geometry.Surface, 0, uCount*vCount)
	for v := 0; v < vCount; v++ {
		for u := 0; u < uCount; u++ {
			patch, err := geometry.NewPatchFromCorners(
				srf.PointAt(uParams[u], vParams[v]),
				srf.PointAt(uParams[u+1], vParams[v]),
				srf.PointAt(uParams[u+1], vParams[v+1]),
				srf.PointAt(uParams[u], vParams[v+1]),
			)
			if err != nil {
				return nil, nil, fmt.Errorf("panelizer: patch construction failed at cell (%d, %d): %w", u+1, v+1, err)
			}
			panels = append(panels, patch)
		}
	}
	return panels, ids, nil
}
