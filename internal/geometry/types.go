package geometry

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// degenerateTol is the squared-length threshold below which a direction
// vector is treated as zero.
const degenerateTol = 1e-12

// Interval is a closed parameter range along one surface axis.
type Interval struct {
	Min, Max float64
}

// Length returns Max - Min.
func (iv Interval) Length() float64 { return iv.Max - iv.Min }

// Mid returns the domain midpoint.
func (iv Interval) Mid() float64 { return (iv.Min + iv.Max) / 2 }

// ParameterAt linearly interpolates the interval: t=0 gives Min, t=1 gives Max.
func (iv Interval) ParameterAt(t float64) float64 {
	return iv.Min + t*(iv.Max-iv.Min)
}

// Plane is an oriented local coordinate frame: an origin plus a right-handed
// orthonormal basis.
type Plane struct {
	Origin r3.Vec
	XAxis  r3.Vec
	YAxis  r3.Vec
	ZAxis  r3.Vec
}

// WorldXY returns the world XY plane at the origin.
func WorldXY() Plane {
	return Plane{
		XAxis: r3.Vec{X: 1},
		YAxis: r3.Vec{Y: 1},
		ZAxis: r3.Vec{Z: 1},
	}
}

// PointAt maps plane coordinates (x, y, z) to a world point.
func (pl Plane) PointAt(x, y, z float64) r3.Vec {
	p := pl.Origin
	p = r3.Add(p, r3.Scale(x, pl.XAxis))
	p = r3.Add(p, r3.Scale(y, pl.YAxis))
	p = r3.Add(p, r3.Scale(z, pl.ZAxis))
	return p
}

// Coordinates expresses a world point in plane coordinates. The basis is
// assumed orthonormal, so this is a projection onto the three axes.
func (pl Plane) Coordinates(p r3.Vec) (x, y, z float64) {
	d := r3.Sub(p, pl.Origin)
	return r3.Dot(d, pl.XAxis), r3.Dot(d, pl.YAxis), r3.Dot(d, pl.ZAxis)
}

// planeFromNormal builds a plane at origin with ZAxis normal, choosing
// X and Y axes perpendicular to it.
func planeFromNormal(origin, normal r3.Vec) (Plane, error) {
	if r3.Norm2(normal) < degenerateTol {
		return Plane{}, ErrConstruction
	}
	z := r3.Unit(normal)
	// Pick the world axis least aligned with z as the seed for X.
	seed := r3.Vec{X: 1}
	if absf(z.X) > absf(z.Y) && absf(z.X) > absf(z.Z) {
		seed = r3.Vec{Y: 1}
	}
	x := r3.Sub(seed, r3.Scale(r3.Dot(seed, z), z))
	if r3.Norm2(x) < degenerateTol {
		return Plane{}, ErrConstruction
	}
	x = r3.Unit(x)
	y := r3.Cross(z, x)
	return Plane{Origin: origin, XAxis: x, YAxis: y, ZAxis: z}, nil
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max r3.Vec
}

// Center returns the box centroid.
func (b Box) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// expand grows the box to contain p.
func (b Box) expand(p r3.Vec) Box {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// Geometry is anything with a computable surface area: surfaces, faces and
// breps all satisfy it. Fenestration results are returned through this
// interface so an uncut panel can pass through unchanged.
type Geometry interface {
	Area() float64
}
