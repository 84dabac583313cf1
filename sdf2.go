package sdf

import (
	"math"

	"github.com/soypat/sdfparts/internal/d2"
	"github.com/soypat/sdfparts/internal/d3"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// 2D signed distance function utility functions.

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate takes a point in 2D space as input and returns
	// the minimum distance of the SDF2 to the point. The distance
	// is negative if the point is contained within the SDF2.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the SDF2.
	Bounds() r2.Box
}

type SDF2Union interface {
	SDF2
	SetMin(MinFunc)
}

type SDF2Diff interface {
	SDF2
	SetMax(MaxFunc)
}

// MinFunc is a minimum functions for SDF blending.
type MinFunc func(a, b float64) float64

// Transform SDF2 (rotation and translation are distance preserving)

// transform2 transforms an SDF2 with rotation, translation and scaling.
type transform2 struct {
	sdf  SDF2
	mInv m33
	bb   r2.Box
}

// Transform2D applies a transformation matrix to an SDF2.
// Distance is *not* preserved with scaling.
func Transform2D(sdf SDF2, m m33) SDF2 {
	if sdf == nil {
		panic("nil sdf argument")
	}
	if e, ok := sdf.(empty2); ok {
		return empty2{center: m.MulPosition(e.center)}
	}
	return &transform2{
		sdf:  sdf,
		mInv: m.Inverse(),
		bb:   m.MulBox(sdf.Bounds()),
	}
}

// Evaluate returns the minimum distance to a transformed SDF2.
// Distance is *not* preserved with scaling.
func (s *transform2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(s.mInv.MulPosition(p))
}

// Bounds returns the bounding box of a transformed SDF2.
func (s *transform2) Bounds() r2.Box {
	return s.bb
}

// slice2 creates an SDF2 from a planar slice through an SDF3.
type slice2 struct {
	sdf SDF3   // the sdf3 being sliced
	a   r3.Vec // 3d point for 2d origin
	u   r3.Vec // vector for the 2d x-axis
	v   r3.Vec // vector for the 2d y-axis
	bb  r2.Box // bounding box
}

// Slice2D returns an SDF2 created from a planar slice through an SDF3.
// a is point on slicing plane, n is normal to slicing plane
func Slice2D(sdf SDF3, a, n r3.Vec) SDF2 {
	s := slice2{}
	s.sdf = sdf
	s.a = a
	// work out the x/y vectors on the plane.
	if n.X == 0 {
		s.u = r3.Vec{X: 1, Y: 0, Z: 0}
	} else if n.Y == 0 {
		s.u = r3.Vec{X: 0, Y: 1, Z: 0}
	} else if n.Z == 0 {
		s.u = r3.Vec{X: 0, Y: 0, Z: 1}
	} else {
		s.u = r3.Vec{X: n.Y, Y: -n.X, Z: 0}
	}
	s.v = r3.Cross(n, s.u)
	s.u = r3.Unit(s.u)
	s.v = r3.Unit(s.v)
	// work out the bounding box by projecting the 3d bounding box onto the plane.
	v3 := d3.Box(sdf.Bounds()).Vertices()
	vec := make(d2.Set, len(v3))
	n = r3.Unit(n)
	for i, v := range v3 {
		va := r3.Sub(v, s.a)
		pa := r3.Sub(va, r3.Scale(r3.Dot(n, va), n))
		vec[i] = r2.Vec{X: r3.Dot(pa, s.u), Y: r3.Dot(pa, s.v)}
	}
	s.bb = r2.Box{Min: vec.Min(), Max: vec.Max()}
	return &s
}

// Evaluate returns the minimum distance to the sliced SDF2.
func (s *slice2) Evaluate(p r2.Vec) float64 {
	pnew := r3.Add(s.a, r3.Scale(p.X, s.u))
	pnew = r3.Add(pnew, r3.Scale(p.Y, s.v))
	return s.sdf.Evaluate(pnew)
}

// Bounds returns the bounding box of the sliced SDF2.
func (s *slice2) Bounds() r2.Box {
	return s.bb
}

// union2 is a union of multiple SDF2 objects.
type union2 struct {
	sdf []SDF2
	min MinFunc
	bb  r2.Box
}

// Union2D returns the union of multiple SDF2 objects. Empty SDF2s are
// dropped from the union; if a single object remains it is still wrapped
// so the caller may set a blending function.
func Union2D(sdf ...SDF2) SDF2Union {
	s := union2{min: math.Min}
	for _, x := range sdf {
		if x == nil {
			panic("nil argument found")
		}
		if _, ok := x.(empty2); ok {
			continue
		}
		s.sdf = append(s.sdf, x)
	}
	if len(s.sdf) == 0 {
		return empty2{}
	}
	// work out the bounding box
	bb := d2.Box(s.sdf[0].Bounds())
	for _, x := range s.sdf[1:] {
		bb = bb.Extend(d2.Box(x.Bounds()))
	}
	s.bb = r2.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to the SDF2 union.
func (s *union2) Evaluate(p r2.Vec) float64 {
	if len(s.sdf) == 1 {
		return s.sdf[0].Evaluate(p)
	}
	// work out the min/max distance for every bounding box
	vs := make([]r2.Vec, len(s.sdf))
	minDist2 := -1.0
	minIndex := 0
	for i := range s.sdf {
		vs[i] = d2.Box(s.sdf[i].Bounds()).MinMaxDist2(p)
		// as we go record the sdf with the minimum minimum d2 value
		if minDist2 < 0 || vs[i].X < minDist2 {
			minDist2 = vs[i].X
			minIndex = i
		}
	}

	var d float64
	first := true
	for i := range s.sdf {
		// only an sdf whose min/max distances overlap
		// the minimum box are worthy of consideration
		if i == minIndex || d2.Overlap(vs[minIndex], vs[i]) {
			x := s.sdf[i].Evaluate(p)
			if first {
				first = false
				d = x
			} else {
				d = s.min(d, x)
			}
		}
	}
	return d
}

// SetMin sets the minimum function to control SDF2 blending.
func (s *union2) SetMin(min MinFunc) {
	s.min = min
}

// Bounds returns the bounding box of an SDF2 union.
func (s *union2) Bounds() r2.Box {
	return s.bb
}

// diff2 is the difference of two SDF2s.
type diff2 struct {
	s0  SDF2
	s1  SDF2
	max MaxFunc
	bb  r2.Box
}

// Difference2D returns the difference of two SDF2 objects, s0 - s1.
// Subtracting an empty SDF2 returns s0 unchanged.
func Difference2D(s0, s1 SDF2) SDF2Diff {
	if s0 == nil || s1 == nil {
		panic("nil sdf argument")
	}
	return &diff2{
		s0:  s0,
		s1:  s1,
		max: math.Max,
		bb:  s0.Bounds(),
	}
}

// Evaluate returns the minimum distance to the difference of two SDF2s.
func (s *diff2) Evaluate(p r2.Vec) float64 {
	if _, ok := s.s1.(empty2); ok {
		return s.s0.Evaluate(p)
	}
	return s.max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *diff2) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of the difference of two SDF2s.
func (s *diff2) Bounds() r2.Box {
	return s.bb
}

// intersection2 is the intersection of two SDF2s.
type intersection2 struct {
	s0  SDF2
	s1  SDF2
	max MaxFunc
	bb  r2.Box
}

// Intersect2D returns the intersection of two SDF2s.
func Intersect2D(s0, s1 SDF2) SDF2Diff {
	if s0 == nil || s1 == nil {
		panic("nil sdf argument")
	}
	bb0, bb1 := s0.Bounds(), s1.Bounds()
	return &intersection2{
		s0:  s0,
		s1:  s1,
		max: math.Max,
		bb: r2.Box{
			Min: d2.MaxElem(bb0.Min, bb1.Min),
			Max: d2.MinElem(bb0.Max, bb1.Max),
		},
	}
}

// Evaluate returns the minimum distance to the SDF2 intersection.
func (s *intersection2) Evaluate(p r2.Vec) float64 {
	return s.max(s.s0.Evaluate(p), s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *intersection2) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of an SDF2 intersection.
func (s *intersection2) Bounds() r2.Box {
	return s.bb
}

// Multi2D creates a union of an SDF2 at a set of 2D positions.
func Multi2D(s SDF2, positions []r2.Vec) SDF2 {
	if s == nil {
		panic("nil sdf argument")
	}
	if len(positions) == 0 {
		panic("empty positions")
	}
	objects := make([]SDF2, len(positions))
	for i, p := range positions {
		objects[i] = Transform2D(s, Translate2D(p))
	}
	return Union2D(objects...)
}

// Empty2D returns an SDF2 that contains no points. It is dropped
// from unions and subtracting it is a no-op.
func Empty2D() SDF2 {
	return empty2{}
}

// IsEmpty2D reports whether s was built by Empty2D or is a union of nothing.
func IsEmpty2D(s SDF2) bool {
	_, ok := s.(empty2)
	return ok
}

type empty2 struct {
	center r2.Vec
}

var _ SDF2Union = empty2{}

func (e empty2) Evaluate(r2.Vec) float64 {
	return math.MaxFloat64
}

func (e empty2) Bounds() r2.Box {
	return r2.Box{
		Min: e.center,
		Max: e.center,
	}
}

func (e empty2) SetMin(MinFunc) {}
func (e empty2) SetMax(MaxFunc) {}

// offset2 is an SDF2 grown (or shrunk with negative distance) by a fixed distance.
type offset2 struct {
	sdf      SDF2
	distance float64
	bb       r2.Box
}

// Offset2D returns an SDF2 that offsets the distance function of another SDF2.
func Offset2D(sdf SDF2, distance float64) SDF2 {
	if sdf == nil {
		panic("nil sdf argument")
	}
	bb := d2.Box(sdf.Bounds())
	d := d2.Elem(distance)
	return &offset2{
		sdf:      sdf,
		distance: distance,
		bb:       r2.Box{Min: r2.Sub(bb.Min, d), Max: r2.Add(bb.Max, d)},
	}
}

// Evaluate returns the minimum distance to an offset SDF2.
func (s *offset2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(p) - s.distance
}

// Bounds returns the bounding box of an offset SDF2.
func (s *offset2) Bounds() r2.Box {
	return s.bb
}

// LineOf2D returns a union of 2D objects positioned along a line from p0 to p1.
// The pattern is read one character per position: 'x' places an object and any
// other character leaves a gap. A single character pattern places the object at p0.
// An empty pattern yields an empty SDF2.
func LineOf2D(s SDF2, p0, p1 r2.Vec, pattern string) SDF2 {
	if s == nil {
		panic("nil sdf argument")
	}
	if pattern == "" {
		return Empty2D()
	}
	var step r2.Vec
	if n := len(pattern); n > 1 {
		step = r2.Scale(1/float64(n-1), r2.Sub(p1, p0))
	}
	var objects []SDF2
	x := p0
	for _, c := range pattern {
		if c == 'x' {
			objects = append(objects, Transform2D(s, Translate2D(x)))
		}
		x = r2.Add(x, step)
	}
	return Union2D(objects...)
}
