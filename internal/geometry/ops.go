package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ProjectCurveToBrep projects a curve onto the faces of a brep along the
// given direction. Each face that catches the whole curve (every projected
// vertex inside its outer loop, within tol of the face plane construction)
// contributes one projected curve. Returns nil when nothing lands.
func ProjectCurveToBrep(c *Curve, b *Brep, dir r3.Vec, tol float64) []*Curve {
	if c == nil || b == nil || r3.Norm2(dir) < degenerateTol {
		return nil
	}
	var out []*Curve
	for _, face := range b.Faces {
		pl, err := face.Plane()
		if err != nil {
			continue
		}
		denom := r3.Dot(dir, pl.ZAxis)
		if absf(denom) < tol {
			continue // direction parallel to the face
		}
		pts := c.Points()
		inside := true
		for i, p := range pts {
			// Line-plane intersection: p + s*dir on the face plane.
			s := r3.Dot(r3.Sub(pl.Origin, p), pl.ZAxis) / denom
			pts[i] = r3.Add(p, r3.Scale(s, dir))
			if !face.contains(pl, pts[i]) {
				inside = false
				break
			}
		}
		if !inside {
			continue
		}
		projected, err := NewPolylineCurve(pts, c.IsClosed())
		if err != nil {
			continue
		}
		out = append(out, projected)
	}
	return out
}

// SplitFace splits a face along a closed curve lying on it. A successful
// split yields a two-face brep: the outer region with the curve as a hole,
// and the inner region bounded by the curve. It fails when the curve is not
// entirely inside the face.
func SplitFace(f *Face, c *Curve, tol float64) (*Brep, error) {
	if f == nil || c == nil || !c.IsClosed() {
		return nil, fmt.Errorf("split needs a face and a closed curve: %w", ErrInvalidInput)
	}
	pl, err := f.Plane()
	if err != nil {
		return nil, err
	}
	pts := c.Points()
	for _, p := range pts {
		_, _, dz := pl.Coordinates(p)
		if absf(dz) > tol {
			return nil, fmt.Errorf("curve does not lie on the face: %w", ErrConstruction)
		}
		if !f.contains(pl, p) {
			return nil, fmt.Errorf("curve extends outside the face: %w", ErrConstruction)
		}
	}
	outer := &Face{Surface: f.Surface, OuterLoop: f.OuterLoop}
	outer.Holes = append(outer.Holes, f.Holes...)
	outer.Holes = append(outer.Holes, pts)
	inner := &Face{OuterLoop: pts}
	return &Brep{Faces: []*Face{outer, inner}}, nil
}

// BooleanDifference subtracts a prism cutter from a single-planar-face panel
// brep. The cutter's profile is taken from its first cap face and projected
// onto the panel plane. It fails when the profile misses the panel.
func BooleanDifference(panel, cutter *Brep) (*Brep, error) {
	if panel == nil || cutter == nil || len(panel.Faces) == 0 || len(cutter.Faces) == 0 {
		return nil, fmt.Errorf("boolean difference needs two non-empty breps: %w", ErrInvalidInput)
	}
	face := panel.Faces[0]
	pl, err := face.Plane()
	if err != nil {
		return nil, err
	}
	profile := cutter.Faces[0].OuterLoop
	projected := make([]r3.Vec, len(profile))
	for i, p := range profile {
		x, y, _ := pl.Coordinates(p)
		projected[i] = pl.PointAt(x, y, 0)
		if !face.contains(pl, projected[i]) {
			return nil, fmt.Errorf("cutter does not pierce the panel: %w", ErrConstruction)
		}
	}
	result := face.DuplicateFace()
	result.Faces[0].Holes = append(result.Faces[0].Holes, projected)
	return result, nil
}

// Loft builds a ruled brep through an ordered sequence of curves: one
// bilinear quad face per edge between each consecutive pair. All curves must
// share a vertex count, which duplication plus transform preserves.
func Loft(curves []*Curve) (*Brep, error) {
	if len(curves) < 2 {
		return nil, fmt.Errorf("loft needs at least two section curves: %w", ErrInvalidInput)
	}
	count := curves[0].PointCount()
	closed := curves[0].IsClosed()
	for i, c := range curves[1:] {
		if c.PointCount() != count || c.IsClosed() != closed {
			return nil, fmt.Errorf("section curve %d does not match the first section: %w", i+1, ErrInvalidInput)
		}
	}
	segments := count - 1
	if closed {
		segments = count
	}
	brep := &Brep{}
	for i := 0; i < len(curves)-1; i++ {
		lower := curves[i].Points()
		upper := curves[i+1].Points()
		for s := 0; s < segments; s++ {
			j := (s + 1) % count
			patch, err := NewPatchFromCorners(lower[s], lower[j], upper[j], upper[s])
			if err != nil {
				return nil, fmt.Errorf("loft segment %d between sections %d and %d: %w", s, i, i+1, ErrConstruction)
			}
			brep.Faces = append(brep.Faces, &Face{
				Surface:   patch,
				OuterLoop: []r3.Vec{lower[s], lower[j], upper[j], upper[s]},
			})
		}
	}
	return brep, nil
}
