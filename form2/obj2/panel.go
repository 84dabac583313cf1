package obj2

import (
	"fmt"

	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/form2"
	"gonum.org/v1/gonum/spatial/r2"
)

/*

2D Panel with rounded corners and edge holes.

Note: The hole pattern is used to layout multiple holes along an edge.

Examples:

"x" - single hole on edge
"xx" - two holes on edge
"x.x" = two holes on edge with spacing
"xx.x.xx" = five holes on edge with spacing
etc.

*/

// PanelParams defines the parameters for a 2D panel.
type PanelParams struct {
	Size         r2.Vec     // size of the panel
	CornerRadius float64    // radius of rounded corners
	HoleDiameter float64    // diameter of panel holes
	HoleMargin   [4]float64 // hole margins for top, right, bottom, left
	HolePattern  [4]string  // hole pattern for top, right, bottom, left
	Thickness    float64    // panel thickness (3d only)
}

// Panel returns a 2d panel with holes on the edges.
func Panel(k PanelParams) (sdf.SDF2, error) {
	for _, m := range k.HoleMargin {
		if m < 0 {
			return nil, fmt.Errorf("panel: hole margin %g < 0", m)
		}
	}
	s0, err := form2.Box(k.Size, k.CornerRadius)
	if err != nil {
		return nil, fmt.Errorf("panel: %w", err)
	}
	if k.HoleDiameter <= 0.0 {
		// no holes
		return s0, nil
	}

	// corners
	tl := r2.Vec{X: -0.5*k.Size.X + k.HoleMargin[3], Y: 0.5*k.Size.Y - k.HoleMargin[0]}
	tr := r2.Vec{X: 0.5*k.Size.X - k.HoleMargin[1], Y: 0.5*k.Size.Y - k.HoleMargin[0]}
	br := r2.Vec{X: 0.5*k.Size.X - k.HoleMargin[1], Y: -0.5*k.Size.Y + k.HoleMargin[2]}
	bl := r2.Vec{X: -0.5*k.Size.X + k.HoleMargin[3], Y: -0.5*k.Size.Y + k.HoleMargin[2]}

	// holes
	hole, err := form2.Circle(0.5 * k.HoleDiameter)
	if err != nil {
		return nil, fmt.Errorf("panel hole: %w", err)
	}
	holes := []sdf.SDF2{
		// clockwise: top, right, bottom, left
		sdf.LineOf2D(hole, tl, tr, k.HolePattern[0]),
		sdf.LineOf2D(hole, tr, br, k.HolePattern[1]),
		sdf.LineOf2D(hole, br, bl, k.HolePattern[2]),
		sdf.LineOf2D(hole, bl, tl, k.HolePattern[3]),
	}
	return sdf.Difference2D(s0, sdf.Union2D(holes...)), nil
}

// JoiningPlateParams returns the parameters of a square plate that
// joins extrusions of the given width. One hole sits over the center
// channel of every cell along each edge.
func JoiningPlateParams(width float64, cells int, holeDiameter, thickness float64) PanelParams {
	if width <= 0 || cells < 1 {
		panic("invalid joining plate size")
	}
	pattern := "x"
	for i := 1; i < cells; i++ {
		pattern += "x"
	}
	side := width * float64(cells)
	margin := width / 2
	return PanelParams{
		Size:         r2.Vec{X: side, Y: side},
		CornerRadius: width / 10,
		HoleDiameter: holeDiameter,
		HoleMargin:   [4]float64{margin, margin, margin, margin},
		HolePattern:  [4]string{pattern, pattern, pattern, pattern},
		Thickness:    thickness,
	}
}
