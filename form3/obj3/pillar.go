package obj3

import (
	"math"

	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/form2/must2"
	"github.com/soypat/sdfparts/form3"
	"github.com/soypat/sdfparts/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Spacer pillars and board standoffs.

// PillarParams defines the parameters of a spacer pillar.
type PillarParams struct {
	Height       float64
	Diameter     float64 // outer diameter, across flats' circumcircle for hex pillars
	Style        CylinderStyle
	HoleDiameter float64
	HoleDepth    float64 // > 0 is a hole from the top, < 0 is a support stub, 0 is a through hole
	NumberWebs   int     // number of triangular gussets around the pillar base
	WebHeight    float64
	WebDiameter  float64
	WebWidth     float64
	Chamfer      float64 // top edge chamfer as a fraction of the outer radius, 0 for none
}

// Pillar returns a spacer pillar centered at the origin with its axis on
// Z. A zero HoleDepth drills the hole through the whole pillar.
func Pillar(k PillarParams) (sdf.SDF3, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	s, err := pillarBody(k)
	if err != nil {
		return nil, paramErr("pillar", "%v", err)
	}
	if k.NumberWebs > 0 {
		webs := sdf.RotateCopy3D(pillarWeb(k), k.NumberWebs)
		s = sdf.Union3D(s, webs)
		// Cut off any part of the webs that protrude from the top of the pillar
		cut := must3.Cylinder(k.Height, 0.5*math.Max(k.WebDiameter, k.Diameter), 0)
		s = sdf.Intersect3D(s, cut)
	}
	if k.HoleDiameter == 0 {
		return s, nil
	}
	hole := pillarHole(k)
	if k.HoleDepth >= 0 {
		return sdf.Difference3D(s, hole), nil
	}
	// support stub
	return sdf.Union3D(s, hole), nil
}

func (k PillarParams) validate() error {
	switch {
	case !(k.Height > 0) || !(k.Diameter > 0):
		return paramErr("pillar", "height %g and diameter %g must be positive", k.Height, k.Diameter)
	case k.HoleDiameter < 0 || (k.HoleDepth >= 0 && k.HoleDiameter >= k.Diameter):
		return paramErr("pillar", "hole diameter %g must be within [0, %g)", k.HoleDiameter, k.Diameter)
	case k.HoleDepth > k.Height:
		return paramErr("pillar", "hole depth %g exceeds height %g", k.HoleDepth, k.Height)
	case k.Style != CylinderCircular && k.Style != CylinderHex:
		return paramErr("pillar", "unsupported style %s", k.Style)
	case !(k.Chamfer >= 0) || k.Chamfer >= 1:
		return paramErr("pillar", "chamfer %g must be within [0, 1)", k.Chamfer)
	case k.NumberWebs < 0:
		return paramErr("pillar", "negative number of webs")
	case k.NumberWebs > 0 && (!(k.WebHeight > 0) || !(k.WebDiameter > k.Diameter) || !(k.WebWidth > 0)):
		return paramErr("pillar", "webs need positive height and width and a diameter larger than the pillar")
	}
	return nil
}

// pillarWeb returns a single triangular web standing on the pillar base.
func pillarWeb(k PillarParams) sdf.SDF3 {
	w := must2.NewPolygon()
	w.Add(0, 0)
	w.Add(0.5*k.WebDiameter, 0)
	w.Add(0, k.WebHeight)
	s := sdf.Extrude3D(must2.Polygon(w.Vertices()), k.WebWidth)
	m := sdf.Translate3D(r3.Vec{Z: -0.5 * k.Height}).Mul(sdf.RotateX(sdf.DtoR(90)))
	return sdf.Transform3D(s, m)
}

// pillarBody returns the pillar without hole or webs.
func pillarBody(k PillarParams) (s sdf.SDF3, err error) {
	if k.Style == CylinderHex {
		s = HexPrism(0.5*k.Diameter, k.Height)
	} else if s, err = form3.Cylinder(k.Height, 0.5*k.Diameter, 0); err != nil {
		return nil, err
	}
	if k.Chamfer == 0 {
		return s, nil
	}
	return form3.ChamferedCylinder(s, 0, k.Chamfer)
}

// pillarHole returns a pillar screw hole (or support stub).
func pillarHole(k PillarParams) sdf.SDF3 {
	depth := k.HoleDepth
	if depth == 0 {
		// through hole, slightly longer than the pillar
		return must3.Cylinder(k.Height+1, 0.5*k.HoleDiameter, 0)
	}
	s := must3.Cylinder(math.Abs(depth), 0.5*k.HoleDiameter, 0)
	zOfs := 0.5 * (k.Height - depth)
	return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{Z: zOfs}))
}
