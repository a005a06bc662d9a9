package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewPolylineCurveValidation(t *testing.T) {
	_, err := NewPolylineCurve([]r3.Vec{{X: 1}}, false)
	assert.ErrorIs(t, err, ErrInvalidInput, "one vertex is not a polyline")

	_, err = NewPolylineCurve([]r3.Vec{{}, {X: 1}}, true)
	assert.ErrorIs(t, err, ErrInvalidInput, "closed curve needs three vertices")

	c, err := NewPolylineCurve([]r3.Vec{{}, {X: 1}}, false)
	require.NoError(t, err)
	assert.False(t, c.IsClosed())
}

func TestCurveImmutability(t *testing.T) {
	src := []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
	c, err := NewPolylineCurve(src, true)
	require.NoError(t, err)

	before := c.Points()
	moved := c.Transformed(Translation(r3.Vec{Z: 5}))
	assert.Equal(t, before, c.Points(), "transform must not touch the source curve")
	assert.InDelta(t, 5.0, moved.Points()[0].Z, tol)

	// Mutating the constructor slice or a Points copy has no effect either.
	src[0] = r3.Vec{X: 99}
	pts := c.Points()
	pts[1] = r3.Vec{Y: 99}
	assert.Equal(t, before, c.Points(), "curve does not share vertex storage")
}

func TestCurvePlaneAndArea(t *testing.T) {
	rect, err := NewRectangleCurve(WorldXY(), 4, 2)
	require.NoError(t, err)

	pl, err := rect.Plane()
	require.NoError(t, err)
	assertVec(t, r3.Vec{}, pl.Origin, "centroid of a centered rectangle")
	assert.InDelta(t, 1.0, absf(pl.ZAxis.Z), tol, "normal along Z")

	area, err := rect.Area()
	require.NoError(t, err)
	assert.InDelta(t, 8.0, area, tol)

	// Area is invariant under rigid motion.
	moved := rect.Transformed(Translation(r3.Vec{X: 3, Z: 7}))
	movedArea, err := moved.Area()
	require.NoError(t, err)
	assert.InDelta(t, 8.0, movedArea, tol)

	open, err := NewPolylineCurve([]r3.Vec{{}, {X: 1}}, false)
	require.NoError(t, err)
	_, err = open.Plane()
	assert.ErrorIs(t, err, ErrInvalidInput, "open curves have no plane")

	degenerate, err := NewPolylineCurve([]r3.Vec{{}, {X: 1}, {X: 2}}, true)
	require.NoError(t, err)
	_, err = degenerate.Plane()
	assert.ErrorIs(t, err, ErrConstruction, "collinear curve has no plane")
}

func TestPolygonCurve(t *testing.T) {
	hex, err := NewPolygonCurve(WorldXY(), 1, 6)
	require.NoError(t, err)
	assert.True(t, hex.IsClosed())
	assert.Equal(t, 6, hex.PointCount())

	area, err := hex.Area()
	require.NoError(t, err)
	assert.InDelta(t, 2.598076211, area, 1e-6, "regular hexagon area 3*sqrt(3)/2")

	_, err = NewPolygonCurve(WorldXY(), 1, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBoundingBox(t *testing.T) {
	c, err := NewPolylineCurve([]r3.Vec{{X: -1, Y: 2}, {X: 3, Y: -4}, {Z: 5}}, true)
	require.NoError(t, err)
	box := c.BoundingBox()
	assertVec(t, r3.Vec{X: -1, Y: -4}, box.Min, "box min")
	assertVec(t, r3.Vec{X: 3, Y: 2, Z: 5}, box.Max, "box max")
	assertVec(t, r3.Vec{X: 1, Y: -1, Z: 2.5}, box.Center(), "box center")
}
