// Package tower lofts twisted tower envelopes: a single closed plan curve is
// copied floor by floor, each copy lifted and rotated about a shared axis,
// and consecutive floors are lofted into surface panels.
package tower

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/user/parametric_toolkit_go/internal/geometry"
)

// TwistTower builds the floor curves and lofted surfaces of a twisted tower.
//
// Floor i sits at elevation i*floorHeight and is rotated by a cumulative
// i*rotationPerFloor degrees about the Z axis through the axis point lifted
// to that floor's height. A nil axisPoint defaults to the centroid of the
// base curve's bounding box. The base curve itself is never modified; every
// floor is built from a transformed duplicate.
func TwistTower(base *geometry.Curve, floorCount int, floorHeight float64, rotationPerFloor int, axisPoint *r3.Vec) ([]geometry.Surface, []*geometry.Curve, error) {
	if base == nil {
		return nil, nil, fmt.Errorf("tower: no base curve provided: %w", geometry.ErrInvalidInput)
	}
	if !base.IsClosed() {
		return nil, nil, fmt.Errorf("tower: base curve must be closed: %w", geometry.ErrInvalidInput)
	}
	if floorCount < 2 {
		return nil, nil, fmt.Errorf("tower: floor count must be at least 2: %w", geometry.ErrInvalidInput)
	}
	if floorHeight <= 0 {
		return nil, nil, fmt.Errorf("tower: floor height must be greater than zero: %w", geometry.ErrInvalidInput)
	}

	var axis r3.Vec
	if axisPoint != nil {
		axis = *axisPoint
	} else {
		axis = base.BoundingBox().Center()
	}

	floorCurves := make([]*geometry.Curve, 0, floorCount)
	for i := 0; i < floorCount; i++ {
		z := float64(i) * floorHeight
		rotationDegrees := i * rotationPerFloor

		// Translation first, then rotation about the axis elevated to this
		// floor's height, composed into a single transform.
		xf := geometry.Translation(r3.Vec{Z: z})
		if rotationDegrees != 0 {
			elevated := r3.Vec{X: axis.X, Y: axis.Y, Z: z}
			xf = xf.Then(geometry.RotationAboutAxis(
				float64(rotationDegrees)*math.Pi/180,
				r3.Vec{Z: 1},
				elevated,
			))
		}
		floorCurves = append(floorCurves, base.Transformed(xf))
	}

	var surfaces []geometry.Surface
	for i := 0; i < floorCount-1; i++ {
		loft, err := geometry.Loft([]*geometry.Curve{floorCurves[i], floorCurves[i+1]})
		if err != nil {
			return nil, nil, fmt.Errorf("tower: loft failed between floors %d and %d: %w", i+1, i+2, err)
		}
		for _, face := range loft.Faces {
			surfaces = append(surfaces, face.Surface)
		}
	}
	return surfaces, floorCurves, nil
}
