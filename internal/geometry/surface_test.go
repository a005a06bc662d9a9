package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func unitPatch(t *testing.T) *BilinearPatch {
	t.Helper()
	p, err := NewPatchFromCorners(
		r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 1, Y: 1}, r3.Vec{Y: 1},
	)
	require.NoError(t, err)
	return p
}

func TestPatchConstructionRejectsDegenerateCorners(t *testing.T) {
	_, err := NewPatchFromCorners(r3.Vec{}, r3.Vec{}, r3.Vec{}, r3.Vec{})
	assert.ErrorIs(t, err, ErrConstruction, "coincident corners")

	_, err = NewPatchFromCorners(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 2}, r3.Vec{X: 3})
	assert.ErrorIs(t, err, ErrConstruction, "collinear corners")
}

func TestPatchEvaluation(t *testing.T) {
	p := unitPatch(t)

	assert.Equal(t, Interval{Min: 0, Max: 1}, p.Domain(AxisU))
	assert.Equal(t, Interval{Min: 0, Max: 1}, p.Domain(AxisV))

	assertVec(t, r3.Vec{}, p.PointAt(0, 0), "corner A")
	assertVec(t, r3.Vec{X: 1, Y: 1}, p.PointAt(1, 1), "corner C")
	assertVec(t, r3.Vec{X: 0.5, Y: 0.5}, p.PointAt(0.5, 0.5), "center")

	assert.InDelta(t, 1.0, p.Area(), tol, "unit square area")
}

func TestPatchFrame(t *testing.T) {
	p := unitPatch(t)
	frame, err := p.FrameAt(0.5, 0.5)
	require.NoError(t, err)
	assertVec(t, r3.Vec{X: 0.5, Y: 0.5}, frame.Origin, "frame origin at evaluation point")
	assertVec(t, r3.Vec{X: 1}, frame.XAxis, "X along the U tangent")
	assertVec(t, r3.Vec{Z: 1}, frame.ZAxis, "normal along Z")
}

func TestPlaneSurface(t *testing.T) {
	s, err := NewPlaneSurface(WorldXY(), 20, 12)
	require.NoError(t, err)

	assert.Equal(t, Interval{Min: 0, Max: 20}, s.Domain(AxisU))
	assert.Equal(t, Interval{Min: 0, Max: 12}, s.Domain(AxisV))
	assert.InDelta(t, 240.0, s.Area(), tol)
	assertVec(t, r3.Vec{X: 5, Y: 6}, s.PointAt(5, 6), "plane coordinates")

	frame, err := s.FrameAt(10, 6)
	require.NoError(t, err)
	assertVec(t, r3.Vec{X: 10, Y: 6}, frame.Origin, "frame follows the evaluation point")
	assertVec(t, r3.Vec{Z: 1}, frame.ZAxis, "frame keeps the plane normal")

	brep := s.ToBrep()
	require.Len(t, brep.Faces, 1)
	assert.InDelta(t, 240.0, brep.Area(), tol)

	_, err = NewPlaneSurface(WorldXY(), 0, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
