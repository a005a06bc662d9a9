package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Brep is a boundary representation: a collection of faces.
type Brep struct {
	Faces []*Face
}

// Area returns the summed area of all faces.
func (b *Brep) Area() float64 {
	total := 0.0
	for _, f := range b.Faces {
		total += f.Area()
	}
	return total
}

// Face is one planar-boundary face of a brep: an outer loop plus zero or
// more hole loops, with an optional underlying surface.
type Face struct {
	Surface   Surface
	OuterLoop []r3.Vec
	Holes     [][]r3.Vec
}

// Plane returns the best-fit plane of the outer loop.
func (f *Face) Plane() (Plane, error) {
	c, err := NewPolylineCurve(f.OuterLoop, true)
	if err != nil {
		return Plane{}, err
	}
	return c.Plane()
}

// Area returns the outer loop area minus the hole areas.
func (f *Face) Area() float64 {
	pl, err := f.Plane()
	if err != nil {
		return 0
	}
	area := math.Abs(planar.Area(loopRing(f.OuterLoop, pl)))
	for _, hole := range f.Holes {
		area -= math.Abs(planar.Area(loopRing(hole, pl)))
	}
	if area < 0 {
		return 0
	}
	return area
}

// DuplicateFace extracts the face into a standalone single-face brep.
func (f *Face) DuplicateFace() *Brep {
	outer := make([]r3.Vec, len(f.OuterLoop))
	copy(outer, f.OuterLoop)
	holes := make([][]r3.Vec, len(f.Holes))
	for i, h := range f.Holes {
		holes[i] = make([]r3.Vec, len(h))
		copy(holes[i], h)
	}
	return &Brep{Faces: []*Face{{Surface: f.Surface, OuterLoop: outer, Holes: holes}}}
}

// contains reports whether the point lies inside the outer loop and outside
// every hole, tested in the face plane.
func (f *Face) contains(pl Plane, p r3.Vec) bool {
	pt := loopPoint(p, pl)
	if !planar.RingContains(loopRing(f.OuterLoop, pl), pt) {
		return false
	}
	for _, hole := range f.Holes {
		if planar.RingContains(loopRing(hole, pl), pt) {
			return false
		}
	}
	return true
}

// Extrude sweeps a closed curve along a vector into a prism brep: two cap
// faces joined by one quad side face per edge.
func Extrude(c *Curve, dir r3.Vec) (*Brep, error) {
	if c == nil || !c.IsClosed() {
		return nil, fmt.Errorf("extrusion needs a closed profile curve: %w", ErrInvalidInput)
	}
	if r3.Norm2(dir) < degenerateTol {
		return nil, fmt.Errorf("extrusion direction is zero: %w", ErrInvalidInput)
	}
	base := c.Points()
	top := make([]r3.Vec, len(base))
	for i, p := range base {
		top[i] = r3.Add(p, dir)
	}
	brep := &Brep{Faces: []*Face{
		{OuterLoop: base},
		{OuterLoop: top},
	}}
	for i := range base {
		j := (i + 1) % len(base)
		brep.Faces = append(brep.Faces, &Face{
			OuterLoop: []r3.Vec{base[i], base[j], top[j], top[i]},
		})
	}
	return brep, nil
}

func loopRing(loop []r3.Vec, pl Plane) orb.Ring {
	ring := make(orb.Ring, 0, len(loop)+1)
	for _, p := range loop {
		ring = append(ring, loopPoint(p, pl))
	}
	ring = append(ring, ring[0])
	return ring
}

func loopPoint(p r3.Vec, pl Plane) orb.Point {
	x, y, _ := pl.Coordinates(p)
	return orb.Point{x, y}
}
