package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Curve is a polyline curve, optionally closed. Curves are immutable: every
// transforming operation returns a new curve and the vertex slice is never
// shared with callers.
type Curve struct {
	pts    []r3.Vec
	closed bool
}

// NewPolylineCurve builds a curve through the given vertices. For a closed
// curve the first vertex is not repeated at the end. At least two vertices
// are required, three for a closed curve.
func NewPolylineCurve(pts []r3.Vec, closed bool) (*Curve, error) {
	if len(pts) < 2 || (closed && len(pts) < 3) {
		return nil, fmt.Errorf("polyline needs at least %d vertices: %w", 2+boolToInt(closed), ErrInvalidInput)
	}
	c := &Curve{pts: make([]r3.Vec, len(pts)), closed: closed}
	copy(c.pts, pts)
	return c, nil
}

// NewRectangleCurve builds a closed rectangle of the given width and height
// centered on the plane origin.
func NewRectangleCurve(pl Plane, width, height float64) (*Curve, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rectangle dimensions must be positive: %w", ErrInvalidInput)
	}
	hw, hh := width/2, height/2
	return NewPolylineCurve([]r3.Vec{
		pl.PointAt(-hw, -hh, 0),
		pl.PointAt(hw, -hh, 0),
		pl.PointAt(hw, hh, 0),
		pl.PointAt(-hw, hh, 0),
	}, true)
}

// NewPolygonCurve builds a closed regular polygon with the given
// circumradius, centered on the plane origin. It doubles as the circle
// stand-in for opening templates.
func NewPolygonCurve(pl Plane, radius float64, sides int) (*Curve, error) {
	if radius <= 0 || sides < 3 {
		return nil, fmt.Errorf("polygon needs radius > 0 and at least 3 sides: %w", ErrInvalidInput)
	}
	pts := make([]r3.Vec, sides)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		pts[i] = pl.PointAt(radius*math.Cos(a), radius*math.Sin(a), 0)
	}
	return NewPolylineCurve(pts, true)
}

// IsClosed reports whether the curve is closed.
func (c *Curve) IsClosed() bool { return c.closed }

// PointCount returns the number of vertices.
func (c *Curve) PointCount() int { return len(c.pts) }

// Points returns a copy of the vertex sequence.
func (c *Curve) Points() []r3.Vec {
	out := make([]r3.Vec, len(c.pts))
	copy(out, c.pts)
	return out
}

// Duplicate returns an independent copy of the curve.
func (c *Curve) Duplicate() *Curve {
	d := &Curve{pts: make([]r3.Vec, len(c.pts)), closed: c.closed}
	copy(d.pts, c.pts)
	return d
}

// Transformed returns a new curve with xf applied to every vertex. The
// receiver is left untouched.
func (c *Curve) Transformed(xf Transform) *Curve {
	d := c.Duplicate()
	for i, p := range d.pts {
		d.pts[i] = xf.Apply(p)
	}
	return d
}

// BoundingBox returns the axis-aligned bounding box of the vertices.
func (c *Curve) BoundingBox() Box {
	b := Box{Min: c.pts[0], Max: c.pts[0]}
	for _, p := range c.pts[1:] {
		b = b.expand(p)
	}
	return b
}

// Plane returns the best-fit plane of a closed curve, with the ZAxis along
// the Newell normal and the origin at the vertex centroid. It fails for open
// or degenerate (collinear) curves.
func (c *Curve) Plane() (Plane, error) {
	if !c.closed {
		return Plane{}, fmt.Errorf("plane of an open curve: %w", ErrInvalidInput)
	}
	var normal, centroid r3.Vec
	n := len(c.pts)
	for i, p := range c.pts {
		q := c.pts[(i+1)%n]
		normal.X += (p.Y - q.Y) * (p.Z + q.Z)
		normal.Y += (p.Z - q.Z) * (p.X + q.X)
		normal.Z += (p.X - q.X) * (p.Y + q.Y)
		centroid = r3.Add(centroid, p)
	}
	centroid = r3.Scale(1/float64(n), centroid)
	pl, err := planeFromNormal(centroid, normal)
	if err != nil {
		return Plane{}, fmt.Errorf("degenerate curve has no plane: %w", ErrConstruction)
	}
	return pl, nil
}

// Area returns the area enclosed by a closed planar curve.
func (c *Curve) Area() (float64, error) {
	pl, err := c.Plane()
	if err != nil {
		return 0, err
	}
	return math.Abs(planar.Area(c.ring(pl))), nil
}

// ring projects the vertices into plane coordinates as a closed orb ring.
func (c *Curve) ring(pl Plane) orb.Ring {
	ring := make(orb.Ring, 0, len(c.pts)+1)
	for _, p := range c.pts {
		x, y, _ := pl.Coordinates(p)
		ring = append(ring, orb.Point{x, y})
	}
	ring = append(ring, ring[0])
	return ring
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
