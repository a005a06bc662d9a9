package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Axis indices for Surface.Domain.
const (
	AxisU = 0
	AxisV = 1
)

// Surface is a parametric surface over two independent parameter domains.
// FrameAt fails explicitly on degenerate geometry rather than returning a
// degenerate frame.
type Surface interface {
	Domain(axis int) Interval
	PointAt(u, v float64) r3.Vec
	FrameAt(u, v float64) (Plane, error)
	Area() float64
	ToBrep() *Brep
}

// BilinearPatch is a four-corner surface patch with bilinear interpolation
// across the unit parameter square. Corners run counter-clockwise:
// A=(0,0), B=(1,0), C=(1,1), D=(0,1).
type BilinearPatch struct {
	a, b, c, d r3.Vec
}

// NewPatchFromCorners constructs a patch through four corner points. It fails
// when the corners are degenerate (coincident or collinear enough that the
// patch has no well-defined normal at its center).
func NewPatchFromCorners(a, b, c, d r3.Vec) (*BilinearPatch, error) {
	p := &BilinearPatch{a: a, b: b, c: c, d: d}
	if _, err := p.FrameAt(0.5, 0.5); err != nil {
		return nil, fmt.Errorf("degenerate corner points: %w", ErrConstruction)
	}
	return p, nil
}

// Domain returns the unit interval for both axes.
func (p *BilinearPatch) Domain(axis int) Interval {
	return Interval{Min: 0, Max: 1}
}

// Corners returns the four corner points in construction order.
func (p *BilinearPatch) Corners() [4]r3.Vec {
	return [4]r3.Vec{p.a, p.b, p.c, p.d}
}

// PointAt evaluates the patch at (u, v).
func (p *BilinearPatch) PointAt(u, v float64) r3.Vec {
	bottom := r3.Add(r3.Scale(1-u, p.a), r3.Scale(u, p.b))
	top := r3.Add(r3.Scale(1-u, p.d), r3.Scale(u, p.c))
	return r3.Add(r3.Scale(1-v, bottom), r3.Scale(v, top))
}

// FrameAt evaluates the local frame at (u, v): X along the U tangent, Z along
// the surface normal.
func (p *BilinearPatch) FrameAt(u, v float64) (Plane, error) {
	du := r3.Add(r3.Scale(1-v, r3.Sub(p.b, p.a)), r3.Scale(v, r3.Sub(p.c, p.d)))
	dv := r3.Add(r3.Scale(1-u, r3.Sub(p.d, p.a)), r3.Scale(u, r3.Sub(p.c, p.b)))
	normal := r3.Cross(du, dv)
	if r3.Norm2(du) < degenerateTol || r3.Norm2(normal) < degenerateTol {
		return Plane{}, fmt.Errorf("degenerate frame at (%g, %g): %w", u, v, ErrConstruction)
	}
	x := r3.Unit(du)
	z := r3.Unit(normal)
	return Plane{Origin: p.PointAt(u, v), XAxis: x, YAxis: r3.Cross(z, x), ZAxis: z}, nil
}

// Area returns the patch area, computed from its two corner triangles. Exact
// for planar patches, a close approximation for mildly warped ones.
func (p *BilinearPatch) Area() float64 {
	t1 := r3.Norm(r3.Cross(r3.Sub(p.b, p.a), r3.Sub(p.c, p.a))) / 2
	t2 := r3.Norm(r3.Cross(r3.Sub(p.c, p.a), r3.Sub(p.d, p.a))) / 2
	return t1 + t2
}

// ToBrep converts the patch to a single-face boundary representation.
func (p *BilinearPatch) ToBrep() *Brep {
	return &Brep{Faces: []*Face{{
		Surface:   p,
		OuterLoop: []r3.Vec{p.a, p.b, p.c, p.d},
	}}}
}

// PlaneSurface is a rectangular region of a plane, parameterised by plane
// coordinates: U spans [0, width], V spans [0, height].
type PlaneSurface struct {
	plane         Plane
	width, height float64
}

// NewPlaneSurface builds a planar surface of the given extent.
func NewPlaneSurface(pl Plane, width, height float64) (*PlaneSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("plane surface dimensions must be positive: %w", ErrInvalidInput)
	}
	return &PlaneSurface{plane: pl, width: width, height: height}, nil
}

// Domain returns [0, width] for U and [0, height] for V.
func (s *PlaneSurface) Domain(axis int) Interval {
	if axis == AxisU {
		return Interval{Min: 0, Max: s.width}
	}
	return Interval{Min: 0, Max: s.height}
}

// PointAt evaluates the plane at coordinates (u, v).
func (s *PlaneSurface) PointAt(u, v float64) r3.Vec {
	return s.plane.PointAt(u, v, 0)
}

// FrameAt returns the base plane translated to the evaluated point.
func (s *PlaneSurface) FrameAt(u, v float64) (Plane, error) {
	pl := s.plane
	pl.Origin = s.PointAt(u, v)
	return pl, nil
}

// Area returns width times height.
func (s *PlaneSurface) Area() float64 { return s.width * s.height }

// ToBrep converts the surface to a single-face boundary representation.
func (s *PlaneSurface) ToBrep() *Brep {
	return &Brep{Faces: []*Face{{
		Surface: s,
		OuterLoop: []r3.Vec{
			s.PointAt(0, 0),
			s.PointAt(s.width, 0),
			s.PointAt(s.width, s.height),
			s.PointAt(0, s.height),
		},
	}}}
}
