package geometry

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is an affine map p' = M*p + t. Transforms are values; applying
// one never mutates the input geometry.
type Transform struct {
	m [3][3]float64
	t r3.Vec
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Translation returns a pure translation by v.
func Translation(v r3.Vec) Transform {
	xf := Identity()
	xf.t = v
	return xf
}

// RotationAboutAxis returns a rotation of angle radians about the given axis
// direction passing through center.
func RotationAboutAxis(angle float64, axis, center r3.Vec) Transform {
	rot := r3.NewRotation(angle, axis)
	xf := Transform{m: linearFromBasis(
		rot.Rotate(r3.Vec{X: 1}),
		rot.Rotate(r3.Vec{Y: 1}),
		rot.Rotate(r3.Vec{Z: 1}),
	)}
	// Fix the center: t = c - M*c.
	xf.t = r3.Sub(center, xf.applyLinear(center))
	return xf
}

// ScaleAboutPlane returns a non-uniform scale by (sx, sy, sz) measured in the
// coordinates of plane pl and anchored at its origin.
func ScaleAboutPlane(pl Plane, sx, sy, sz float64) Transform {
	// M = B * S * B^T with B the (orthonormal) plane basis.
	b := linearFromBasis(pl.XAxis, pl.YAxis, pl.ZAxis)
	s := [3][3]float64{{sx, 0, 0}, {0, sy, 0}, {0, 0, sz}}
	m := matMul(matMul(b, s), matTranspose(b))
	xf := Transform{m: m}
	xf.t = r3.Sub(pl.Origin, xf.applyLinear(pl.Origin))
	return xf
}

// PlaneToPlane returns the rigid map carrying the `from` frame onto the `to`
// frame: from's origin lands on to's origin and each axis on its counterpart.
func PlaneToPlane(from, to Plane) Transform {
	bFrom := linearFromBasis(from.XAxis, from.YAxis, from.ZAxis)
	bTo := linearFromBasis(to.XAxis, to.YAxis, to.ZAxis)
	xf := Transform{m: matMul(bTo, matTranspose(bFrom))}
	xf.t = r3.Sub(to.Origin, xf.applyLinear(from.Origin))
	return xf
}

// Then composes two transforms: a.Then(b) applies a first, then b.
func (a Transform) Then(b Transform) Transform {
	return Transform{
		m: matMul(b.m, a.m),
		t: r3.Add(b.applyLinear(a.t), b.t),
	}
}

// Apply maps a point through the transform.
func (a Transform) Apply(p r3.Vec) r3.Vec {
	return r3.Add(a.applyLinear(p), a.t)
}

// ApplyVec maps a direction through the linear part only.
func (a Transform) ApplyVec(v r3.Vec) r3.Vec {
	return a.applyLinear(v)
}

func (a Transform) applyLinear(p r3.Vec) r3.Vec {
	return r3.Vec{
		X: a.m[0][0]*p.X + a.m[0][1]*p.Y + a.m[0][2]*p.Z,
		Y: a.m[1][0]*p.X + a.m[1][1]*p.Y + a.m[1][2]*p.Z,
		Z: a.m[2][0]*p.X + a.m[2][1]*p.Y + a.m[2][2]*p.Z,
	}
}

// linearFromBasis builds the matrix whose columns are the given vectors.
func linearFromBasis(x, y, z r3.Vec) [3][3]float64 {
	return [3][3]float64{
		{x.X, y.X, z.X},
		{x.Y, y.Y, z.Y},
		{x.Z, y.Z, z.Z},
	}
}

func matMul(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

func matTranspose(a [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[j][i]
		}
	}
	return out
}
