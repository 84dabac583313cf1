package sdf

import (
	"math"

	"github.com/soypat/sdfparts/internal/d2"
	"github.com/soypat/sdfparts/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// 3D signed distance utility functions.

// SDF3 is the interface to a 3d signed distance function object.
type SDF3 interface {
	// Evaluate takes a point in 3D space as input and returns
	// the minimum distance of the SDF3 to the point. The distance
	// is negative if the point is contained within the SDF3.
	Evaluate(p r3.Vec) float64
	// Bounds returns the bounding box that completely contains
	// the SDF3.
	Bounds() r3.Box
}

type SDF3Union interface {
	SDF3
	SetMin(MinFunc)
}

type SDF3Diff interface {
	SDF3
	SetMax(MaxFunc)
}

// revolution3 solid of revolution, SDF2 to SDF3.
type revolution3 struct {
	sdf SDF2
	bb  r3.Box
}

// Revolve3D returns an SDF3 for a full solid of revolution of sdf about the
// Y axis of the profile, which becomes the Z axis of the solid.
// The profile should lie in the X >= 0 half plane.
func Revolve3D(sdf SDF2) SDF3 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	bb := sdf.Bounds()
	l := math.Max(math.Abs(bb.Min.X), math.Abs(bb.Max.X))
	return &revolution3{
		sdf: sdf,
		bb: r3.Box{
			Min: r3.Vec{X: -l, Y: -l, Z: bb.Min.Y},
			Max: r3.Vec{X: l, Y: l, Z: bb.Max.Y},
		},
	}
}

// Evaluate returns the minimum distance to a solid of revolution.
func (s *revolution3) Evaluate(p r3.Vec) float64 {
	x := math.Hypot(p.X, p.Y)
	return s.sdf.Evaluate(r2.Vec{X: x, Y: p.Z})
}

// Bounds returns the bounding box for a solid of revolution.
func (s *revolution3) Bounds() r3.Box {
	return s.bb
}

// extrude3 extrudes an SDF2 to an SDF3.
type extrude3 struct {
	sdf    SDF2
	height float64
	bb     r3.Box
}

// Extrude3D does a linear extrude on an SDF2. The resulting
// solid is centered about the XY plane: it spans [-height/2, height/2] in Z.
func Extrude3D(sdf SDF2, height float64) SDF3 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	if height <= 0 {
		panic("extrusion height must be positive")
	}
	s := extrude3{}
	s.sdf = sdf
	s.height = height / 2
	// work out the bounding box
	bb := sdf.Bounds()
	s.bb = r3.Box{Min: r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: -s.height}, Max: r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: s.height}}
	return &s
}

// Evaluate returns the minimum distance to an extrusion.
func (s *extrude3) Evaluate(p r3.Vec) float64 {
	// sdf for the projected 2d surface
	a := s.sdf.Evaluate(r2.Vec{X: p.X, Y: p.Y})
	// sdf for the extrusion region: z = [-height, height]
	b := math.Abs(p.Z) - s.height
	// return the intersection
	return math.Max(a, b)
}

// Bounds returns the bounding box for an extrusion.
func (s *extrude3) Bounds() r3.Box {
	return s.bb
}

// transform3 is an SDF3 transformed with a 4x4 transformation matrix.
type transform3 struct {
	sdf  SDF3
	mInv m44
	bb   r3.Box
}

// Transform3D applies a transformation matrix to an SDF3.
func Transform3D(sdf SDF3, matrix m44) SDF3 {
	if sdf == nil {
		panic("nil sdf argument")
	}
	return &transform3{
		sdf:  sdf,
		mInv: matrix.Inverse(),
		bb:   matrix.MulBox(sdf.Bounds()),
	}
}

// Evaluate returns the minimum distance to a transformed SDF3.
// Distance is *not* preserved with scaling.
func (s *transform3) Evaluate(p r3.Vec) float64 {
	return s.sdf.Evaluate(s.mInv.MulPosition(p))
}

// Bounds returns the bounding box of a transformed SDF3.
func (s *transform3) Bounds() r3.Box {
	return s.bb
}

// scaleUniform3 is an SDF3 scaled uniformly in XYZ directions.
type scaleUniform3 struct {
	sdf     SDF3
	k, invk float64
	bb      r3.Box
}

// ScaleUniform3D uniformly scales an SDF3 on all axes.
// Distance is correct with scaling.
func ScaleUniform3D(sdf SDF3, k float64) SDF3 {
	if k <= 0 {
		panic("scale factor must be positive")
	}
	m := Scale3D(r3.Vec{X: k, Y: k, Z: k})
	return &scaleUniform3{
		sdf:  sdf,
		k:    k,
		invk: 1.0 / k,
		bb:   m.MulBox(sdf.Bounds()),
	}
}

// Evaluate returns the minimum distance to a uniformly scaled SDF3.
func (s *scaleUniform3) Evaluate(p r3.Vec) float64 {
	q := r3.Scale(s.invk, p)
	return s.sdf.Evaluate(q) * s.k
}

// Bounds returns the bounding box of a uniformly scaled SDF3.
func (s *scaleUniform3) Bounds() r3.Box {
	return s.bb
}

// union3 is a union of SDF3s.
type union3 struct {
	sdf []SDF3
	min MinFunc
	bb  r3.Box
}

// Union3D returns the union of multiple SDF3 objects.
func Union3D(sdf ...SDF3) SDF3Union {
	if len(sdf) == 0 {
		panic("union requires at least one sdf")
	}
	s := union3{sdf: sdf, min: math.Min}
	for _, x := range s.sdf {
		if x == nil {
			panic("nil argument found")
		}
	}
	bb := d3.Box(s.sdf[0].Bounds())
	for _, x := range s.sdf[1:] {
		bb = bb.Extend(d3.Box(x.Bounds()))
	}
	s.bb = r3.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to an SDF3 union.
func (s *union3) Evaluate(p r3.Vec) float64 {
	d := s.sdf[0].Evaluate(p)
	for _, x := range s.sdf[1:] {
		d = s.min(d, x.Evaluate(p))
	}
	return d
}

// SetMin sets the minimum function to control blending.
func (s *union3) SetMin(min MinFunc) {
	s.min = min
}

// Bounds returns the bounding box of an SDF3 union.
func (s *union3) Bounds() r3.Box {
	return s.bb
}

// diff3 is the difference of two SDF3s, s0 - s1.
type diff3 struct {
	s0  SDF3
	s1  SDF3
	max MaxFunc
	bb  r3.Box
}

// Difference3D returns the difference of two SDF3s, s0 - s1.
func Difference3D(s0, s1 SDF3) SDF3Diff {
	if s0 == nil || s1 == nil {
		panic("nil sdf argument")
	}
	return &diff3{
		s0:  s0,
		s1:  s1,
		max: math.Max,
		bb:  s0.Bounds(),
	}
}

// Evaluate returns the minimum distance to the SDF3 difference.
func (s *diff3) Evaluate(p r3.Vec) float64 {
	return s.max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *diff3) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of the SDF3 difference.
func (s *diff3) Bounds() r3.Box {
	return s.bb
}

// intersection3 is the intersection of two SDF3s.
type intersection3 struct {
	s0  SDF3
	s1  SDF3
	max MaxFunc
	bb  r3.Box
}

// Intersect3D returns the intersection of two SDF3s.
func Intersect3D(s0, s1 SDF3) SDF3Diff {
	if s0 == nil || s1 == nil {
		panic("nil sdf argument")
	}
	bb0, bb1 := s0.Bounds(), s1.Bounds()
	return &intersection3{
		s0:  s0,
		s1:  s1,
		max: math.Max,
		bb: r3.Box{
			Min: d3.MaxElem(bb0.Min, bb1.Min),
			Max: d3.MinElem(bb0.Max, bb1.Max),
		},
	}
}

// Evaluate returns the minimum distance to the SDF3 intersection.
func (s *intersection3) Evaluate(p r3.Vec) float64 {
	return s.max(s.s0.Evaluate(p), s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *intersection3) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of an SDF3 intersection.
func (s *intersection3) Bounds() r3.Box {
	return s.bb
}

// rotateCopy3 rotates and creates N copies of an SDF3 about the Z axis.
type rotateCopy3 struct {
	sdf   SDF3
	theta float64
	bb    r3.Box
}

// RotateCopy3D rotates and copies an SDF3 n times about the Z axis in a full circle.
func RotateCopy3D(sdf SDF3, n int) SDF3 {
	if n <= 0 {
		panic("invalid number of copies")
	}
	// work out the bounding box
	bb := sdf.Bounds()
	zmax, zmin := bb.Max.Z, bb.Min.Z
	rmax := 0.0
	// find the bounding box vertex with the greatest distance from the z-axis
	for _, v := range d2.Box(r2.Box{Min: r2.Vec{X: bb.Min.X, Y: bb.Min.Y}, Max: r2.Vec{X: bb.Max.X, Y: bb.Max.Y}}).Vertices() {
		rmax = math.Max(rmax, r2.Norm(v))
	}
	return &rotateCopy3{
		sdf:   sdf,
		theta: tau / float64(n),
		bb: r3.Box{
			Min: r3.Vec{X: -rmax, Y: -rmax, Z: zmin},
			Max: r3.Vec{X: rmax, Y: rmax, Z: zmax},
		},
	}
}

// Evaluate returns the minimum distance to a rotate/copy SDF3.
func (s *rotateCopy3) Evaluate(p r3.Vec) float64 {
	// Map p to a point in the first copy sector.
	rho := math.Hypot(p.X, p.Y)
	theta := SawTooth(math.Atan2(p.Y, p.X), s.theta)
	sin, cos := math.Sincos(theta)
	return s.sdf.Evaluate(r3.Vec{X: rho * cos, Y: rho * sin, Z: p.Z})
}

// Bounds returns the bounding box of a rotate/copy SDF3.
func (s *rotateCopy3) Bounds() r3.Box {
	return s.bb
}
