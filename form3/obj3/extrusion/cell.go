package extrusion

import (
	"math"

	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// rect returns a w×h rectangle whose center is placed at c.
func rect(w, h float64, c r2.Vec) sdf.SDF2 {
	b := must2.Box(r2.Vec{X: w, Y: h}, 0)
	if c == (r2.Vec{}) {
		return b
	}
	return sdf.Transform2D(b, sdf.Translate2D(c))
}

// CornerMotif returns the shape of one quadrant of a cell: two channel
// lips joined at the outer corner and the corner block of side
// CornerSquare. The outer corner lies at the origin and the shape
// opens into the +X+Y quadrant.
func CornerMotif(p Profile) sdf.SDF2 {
	c := p.CornerSquare()
	tl := p.TabLength()
	t := p.TabThickness
	var parts []sdf.SDF2
	if t > 0 {
		parts = append(parts,
			rect(tl, t, r2.Vec{X: tl / 2, Y: t / 2}),
			rect(t, tl, r2.Vec{X: t / 2, Y: tl / 2}),
		)
	}
	if c > 0 {
		parts = append(parts, rect(c, c, r2.Vec{X: c / 2, Y: c / 2}))
	}
	s := sdf.Union2D(parts...)
	if p.FilletRadius > 0 {
		s.SetMin(sdf.RoundMin(p.FilletRadius))
	}
	return s
}

// quadrants lists the rotation (degrees) and corner position, in units
// of W/2, of each corner motif.
var quadrants = [4]struct {
	deg    float64
	corner r2.Vec
}{
	{deg: 0, corner: r2.Vec{X: -1, Y: -1}},
	{deg: 90, corner: r2.Vec{X: 1, Y: -1}},
	{deg: 180, corner: r2.Vec{X: 1, Y: 1}},
	{deg: 270, corner: r2.Vec{X: -1, Y: 1}},
}

// corners returns the corner motif placed in all four quadrants of a
// cell centered at the origin.
func corners(p Profile) []sdf.SDF2 {
	motif := CornerMotif(p)
	out := make([]sdf.SDF2, 0, len(quadrants))
	for _, q := range quadrants {
		m := sdf.Translate2D(r2.Scale(p.Width/2, q.corner)).Mul(sdf.Rotate2D(sdf.DtoR(q.deg)))
		out = append(out, sdf.Transform2D(motif, m))
	}
	return out
}

// CenterMotif returns the solid center feature of a cell. It is empty
// when the profile has no center motif.
func CenterMotif(p Profile) sdf.SDF2 {
	s, _ := p.CenterMotif.Shape()
	return s
}

// Spars returns the four diagonal spars of a cell. Each spar is a
// SparLength × SparThickness rectangle rotated to 45°, 135°, 225° or
// 315° and pushed outward by (c + |motif|)/4 along its own axis.
func Spars(p Profile) []sdf.SDF2 {
	l, t := p.SparLength(), p.SparThickness
	if t <= 0 || l <= 0 {
		return nil
	}
	bar := must2.Box(r2.Vec{X: l, Y: t}, 0)
	offset := (p.CornerSquare() + p.CenterMotif.Magnitude()) / 4
	out := make([]sdf.SDF2, 0, 4)
	for _, deg := range [4]float64{45, 135, 225, 315} {
		theta := sdf.DtoR(deg)
		sin, cos := math.Sincos(theta)
		m := sdf.Translate2D(r2.Vec{X: offset * cos, Y: offset * sin}).Mul(sdf.Rotate2D(theta))
		out = append(out, sdf.Transform2D(bar, m))
	}
	return out
}

// CellOutline returns the unholed outline of one cell centered at the
// origin: four corner motifs, the center motif and the spars joined in
// a single union.
func CellOutline(p Profile) sdf.SDF2 {
	parts := corners(p)
	parts = append(parts, CenterMotif(p))
	parts = append(parts, Spars(p)...)
	return sdf.Union2D(parts...)
}

// CornerHolePositions returns the centers of the corner holes of a cell
// centered at the origin.
func CornerHolePositions(p Profile) []r2.Vec {
	c := p.CornerSquare()
	return []r2.Vec{{X: -c, Y: -c}, {X: c, Y: -c}, {X: c, Y: c}, {X: -c, Y: c}}
}

// Holes returns every hole of a cell as a single union. Corner holes
// are only included when cornerHoles is set and the profile has one.
// The result is empty if there is nothing to cut.
func Holes(p Profile, cornerHoles bool) sdf.SDF2 {
	var holes []sdf.SDF2
	if center, ok := p.CenterHole.Shape(); ok {
		holes = append(holes, center)
	}
	if corner, ok := p.CornerHole.Shape(); ok && cornerHoles {
		for _, pos := range CornerHolePositions(p) {
			holes = append(holes, sdf.Transform2D(corner, sdf.Translate2D(pos)))
		}
	}
	return sdf.Union2D(holes...)
}

// Cell returns one finished cell centered at the origin.
func Cell(p Profile, cornerHoles bool) sdf.SDF2 {
	return sdf.Difference2D(CellOutline(p), Holes(p, cornerHoles))
}
