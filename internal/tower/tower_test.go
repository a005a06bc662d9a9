package tower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/user/parametric_toolkit_go/internal/geometry"
)

func basePlan(t *testing.T) *geometry.Curve {
	t.Helper()
	c, err := geometry.NewRectangleCurve(geometry.WorldXY(), 10, 10)
	require.NoError(t, err)
	return c
}

func TestTwistTowerValidation(t *testing.T) {
	base := basePlan(t)

	_, _, err := TwistTower(nil, 4, 3.5, 5, nil)
	assert.ErrorIs(t, err, geometry.ErrInvalidInput, "nil base curve")

	open, err := geometry.NewPolylineCurve([]r3.Vec{{}, {X: 1}, {X: 2, Y: 1}}, false)
	require.NoError(t, err)
	_, _, err = TwistTower(open, 4, 3.5, 5, nil)
	assert.ErrorIs(t, err, geometry.ErrInvalidInput, "open base curve")

	_, _, err = TwistTower(base, 1, 3.5, 5, nil)
	assert.ErrorIs(t, err, geometry.ErrInvalidInput, "floor count below 2")

	_, _, err = TwistTower(base, 4, 0, 5, nil)
	assert.ErrorIs(t, err, geometry.ErrInvalidInput, "non-positive floor height")
}

func TestTwistTowerFloorsAndSurfaces(t *testing.T) {
	base := basePlan(t)

	surfaces, floors, err := TwistTower(base, 4, 3.5, 5, nil)
	require.NoError(t, err)

	require.Len(t, floors, 4, "one curve per floor")
	assert.GreaterOrEqual(t, len(surfaces), 3, "at least one surface per consecutive floor pair")
	assert.Len(t, surfaces, 12, "four ruled quads per loft, three lofts")

	for i, floor := range floors {
		assert.True(t, floor.IsClosed(), "floor %d stays closed", i)
		for _, p := range floor.Points() {
			assert.InDelta(t, float64(i)*3.5, p.Z, 1e-9, "floor %d elevation", i)
		}
	}
}

func TestTwistTowerRotationPerFloor(t *testing.T) {
	base := basePlan(t)

	// 90 degrees per floor about the plan centroid: corner (-5,-5) moves to
	// (5,-5) on floor 1 and back to (5,5) on floor 2.
	_, floors, err := TwistTower(base, 3, 2, 90, nil)
	require.NoError(t, err)

	first := floors[1].Points()[0]
	assert.InDelta(t, 5.0, first.X, 1e-9)
	assert.InDelta(t, -5.0, first.Y, 1e-9)
	assert.InDelta(t, 2.0, first.Z, 1e-9)

	second := floors[2].Points()[0]
	assert.InDelta(t, 5.0, second.X, 1e-9)
	assert.InDelta(t, 5.0, second.Y, 1e-9)
	assert.InDelta(t, 4.0, second.Z, 1e-9)
}

func TestTwistTowerExplicitAxis(t *testing.T) {
	base := basePlan(t)
	axis := r3.Vec{X: 5, Y: 5}

	// Rotating 180 degrees about the corner (5, 5): the opposite corner
	// (-5, -5) lands at (15, 15).
	_, floors, err := TwistTower(base, 2, 3, 180, &axis)
	require.NoError(t, err)

	moved := floors[1].Points()[0]
	assert.InDelta(t, 15.0, moved.X, 1e-9)
	assert.InDelta(t, 15.0, moved.Y, 1e-9)
	assert.InDelta(t, 3.0, moved.Z, 1e-9)
}

func TestTwistTowerZeroRotation(t *testing.T) {
	base := basePlan(t)

	_, floors, err := TwistTower(base, 3, 2.5, 0, nil)
	require.NoError(t, err)

	basePts := base.Points()
	for i, floor := range floors {
		for j, p := range floor.Points() {
			assert.InDelta(t, basePts[j].X, p.X, 1e-12, "floor %d keeps plan X", i)
			assert.InDelta(t, basePts[j].Y, p.Y, 1e-12, "floor %d keeps plan Y", i)
		}
	}
}

func TestTwistTowerBaseCurveUnmodified(t *testing.T) {
	base := basePlan(t)
	before := base.Points()

	_, _, err := TwistTower(base, 5, 3, 15, nil)
	require.NoError(t, err)

	assert.Equal(t, before, base.Points(), "base curve is bit-identical after the call")
}
