package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func assertVec(t *testing.T, want, got r3.Vec, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "%s: X", msg)
	assert.InDelta(t, want.Y, got.Y, tol, "%s: Y", msg)
	assert.InDelta(t, want.Z, got.Z, tol, "%s: Z", msg)
}

func TestTranslation(t *testing.T) {
	xf := Translation(r3.Vec{X: 1, Y: 2, Z: 3})
	assertVec(t, r3.Vec{X: 1, Y: 2, Z: 4}, xf.Apply(r3.Vec{Z: 1}), "translated point")
	assertVec(t, r3.Vec{X: 1}, xf.ApplyVec(r3.Vec{X: 1}), "directions ignore translation")
}

func TestRotationAboutAxis(t *testing.T) {
	// Quarter turn about Z through the origin: (x, y) -> (-y, x).
	xf := RotationAboutAxis(math.Pi/2, r3.Vec{Z: 1}, r3.Vec{})
	assertVec(t, r3.Vec{Y: 1}, xf.Apply(r3.Vec{X: 1}), "quarter turn about origin")

	// Same turn about an elevated center keeps the center fixed.
	center := r3.Vec{X: 2, Y: 1, Z: 5}
	xf = RotationAboutAxis(math.Pi/2, r3.Vec{Z: 1}, center)
	assertVec(t, center, xf.Apply(center), "rotation center is fixed")
	assertVec(t, r3.Vec{X: 2, Y: 2, Z: 5}, xf.Apply(r3.Vec{X: 3, Y: 1, Z: 5}), "point swings around the center")
}

func TestScaleAboutPlane(t *testing.T) {
	xf := ScaleAboutPlane(WorldXY(), 2, 3, 1)
	assertVec(t, r3.Vec{X: 2, Y: 3, Z: 4}, xf.Apply(r3.Vec{X: 1, Y: 1, Z: 4}), "non-uniform scale")

	// Scaling about a shifted plane is anchored at its origin.
	shifted := WorldXY()
	shifted.Origin = r3.Vec{X: 1}
	xf = ScaleAboutPlane(shifted, 2, 2, 2)
	assertVec(t, r3.Vec{X: 1}, xf.Apply(r3.Vec{X: 1}), "plane origin is fixed")
	assertVec(t, r3.Vec{X: 3}, xf.Apply(r3.Vec{X: 2}), "scaled away from the anchor")
}

func TestPlaneToPlane(t *testing.T) {
	to := Plane{
		Origin: r3.Vec{X: 10, Y: 20, Z: 30},
		XAxis:  r3.Vec{Y: 1},
		YAxis:  r3.Vec{X: -1},
		ZAxis:  r3.Vec{Z: 1},
	}
	xf := PlaneToPlane(WorldXY(), to)
	assertVec(t, to.Origin, xf.Apply(r3.Vec{}), "origin maps to origin")
	assertVec(t, to.PointAt(1, 0, 0), xf.Apply(r3.Vec{X: 1}), "x axis maps to x axis")
	assertVec(t, to.PointAt(0, 2, 0), xf.Apply(r3.Vec{Y: 2}), "y axis maps to y axis")
}

func TestThenComposesLeftToRight(t *testing.T) {
	// Translate up, then rotate about the elevated center: the moved point
	// must swing around (0, 0, 1), not around the world origin.
	lift := Translation(r3.Vec{Z: 1})
	spin := RotationAboutAxis(math.Pi/2, r3.Vec{Z: 1}, r3.Vec{Z: 1})
	xf := lift.Then(spin)
	assertVec(t, r3.Vec{Y: 1, Z: 1}, xf.Apply(r3.Vec{X: 1}), "translation applied before rotation")

	// Reversed order gives a different result.
	reversed := spin.Then(lift)
	assertVec(t, r3.Vec{Y: 1, Z: 1}, reversed.Apply(r3.Vec{X: 1, Z: 0}), "pure-Z translation commutes here")

	// A case where order genuinely matters: scale then translate.
	scale := ScaleAboutPlane(WorldXY(), 2, 2, 2)
	move := Translation(r3.Vec{X: 1})
	assertVec(t, r3.Vec{X: 3}, scale.Then(move).Apply(r3.Vec{X: 1}), "scale before translate")
	assertVec(t, r3.Vec{X: 4}, move.Then(scale).Apply(r3.Vec{X: 1}), "translate before scale")
}
