package obj3

import (
	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/form2"
	"github.com/soypat/sdfparts/form3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// BracketParams defines a flat extrusion bracket with two mounting holes.
type BracketParams struct {
	Width        float64
	Height       float64
	Thickness    float64
	HoleDiameter float64
	HoleSpacing  float64 // distance between hole centers along X
}

// Bracket returns a flat bracket centered at the origin, Thickness along
// Z, with two holes at (±HoleSpacing/2, 0).
func Bracket(k BracketParams) (sdf.SDF3, error) {
	switch {
	case !(k.Width > 0) || !(k.Height > 0) || !(k.Thickness > 0):
		return nil, paramErr("bracket", "size %gx%gx%g must be positive", k.Width, k.Height, k.Thickness)
	case !(k.HoleDiameter > 0) || k.HoleDiameter >= k.Height:
		return nil, paramErr("bracket", "hole diameter %g must be within (0, %g)", k.HoleDiameter, k.Height)
	case !(k.HoleSpacing > k.HoleDiameter) || k.HoleSpacing+k.HoleDiameter >= k.Width:
		return nil, paramErr("bracket", "hole spacing %g must keep holes apart and inside width %g", k.HoleSpacing, k.Width)
	}
	body, err := form3.Box(r3.Vec{X: k.Width, Y: k.Height, Z: k.Thickness}, 0)
	if err != nil {
		return nil, paramErr("bracket", "%v", err)
	}
	hole, err := form2.Circle(k.HoleDiameter / 2)
	if err != nil {
		return nil, paramErr("bracket", "%v", err)
	}
	offset := k.HoleSpacing / 2
	holes2d := sdf.Multi2D(hole, []r2.Vec{{X: -offset}, {X: offset}})
	holes := sdf.Extrude3D(holes2d, k.Thickness+1)
	return sdf.Difference3D(body, holes), nil
}

// BracketFor returns a bracket sized to an extrusion of the given width
// whose holes are placed over the center channels of two adjacent
// profiles.
func BracketFor(width, holeDiameter, thickness float64) BracketParams {
	return BracketParams{
		Width:        2 * width,
		Height:       width,
		Thickness:    thickness,
		HoleDiameter: holeDiameter,
		HoleSpacing:  width,
	}
}
