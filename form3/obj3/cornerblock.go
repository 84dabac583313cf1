package obj3

import (
	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/form3"
	"gonum.org/v1/gonum/spatial/r3"
)

// CornerBlockParams defines a cube with three orthogonal screw holes.
type CornerBlockParams struct {
	Size         float64
	HoleDiameter float64
	Round        float64 // edge rounding of the cube
}

// CornerBlock returns a cube centered at the origin drilled through by
// one hole along each axis.
func CornerBlock(k CornerBlockParams) (sdf.SDF3, error) {
	switch {
	case !(k.Size > 0):
		return nil, paramErr("corner block", "size %g must be positive", k.Size)
	case !(k.HoleDiameter > 0) || k.HoleDiameter >= k.Size:
		return nil, paramErr("corner block", "hole diameter %g must be within (0, %g)", k.HoleDiameter, k.Size)
	case k.Round < 0 || 2*k.Round > k.Size:
		return nil, paramErr("corner block", "rounding %g is out of range", k.Round)
	}
	body, err := form3.Box(r3.Vec{X: k.Size, Y: k.Size, Z: k.Size}, k.Round)
	if err != nil {
		return nil, paramErr("corner block", "%v", err)
	}
	hole, err := form3.Cylinder(k.Size+1, k.HoleDiameter/2, 0)
	if err != nil {
		return nil, paramErr("corner block", "%v", err)
	}
	holes := sdf.Union3D(
		hole,
		sdf.Transform3D(hole, sdf.RotateX(sdf.DtoR(90))),
		sdf.Transform3D(hole, sdf.RotateY(sdf.DtoR(90))),
	)
	return sdf.Difference3D(body, holes), nil
}
