package obj3

import (
	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/form2/must2"
)

// HexPrism returns a hexagonal prism of the given circumradius centered at
// the origin with its axis on Z. A vertex lies on the +X axis and the
// vertical edges are rounded by 8% of the radius.
func HexPrism(radius, height float64) sdf.SDF3 {
	if radius <= 0 || height <= 0 {
		panic("hex prism radius and height must be positive")
	}
	cornerRound := radius * 0.08
	hex2d := sdf.Offset2D(must2.Polygon(must2.Nagon(6, radius-cornerRound)), cornerRound)
	return sdf.Extrude3D(hex2d, height)
}
