package extrusion

import (
	sdf "github.com/soypat/sdfparts"
	"gonum.org/v1/gonum/spatial/r2"
)

// tileCells replicates cell at every cell center of the profile. The
// cell is built once, copies only differ by translation.
func tileCells(p Profile, cell sdf.SDF2) []sdf.SDF2 {
	ys := p.cellCenters()
	out := make([]sdf.SDF2, len(ys))
	for i, y := range ys {
		out[i] = sdf.Transform2D(cell, sdf.Translate2D(r2.Vec{Y: y}))
	}
	return out
}

// Bridge returns the material joining two stacked cells across the
// boundary at height yMid: two lip strips on the outer faces and four
// bars of SparLength, one per quadrant.
func Bridge(p Profile, yMid float64) sdf.SDF2 {
	var parts []sdf.SDF2
	w, t := p.Width, p.TabThickness
	if t > 0 {
		h := w - p.ChannelWidth
		x := w/2 - t/2
		parts = append(parts, rect(t, h, r2.Vec{X: -x, Y: yMid}), rect(t, h, r2.Vec{X: x, Y: yMid}))
	}
	l, st := p.SparLength(), p.SparThickness
	if l > 0 && st > 0 {
		x := w/2 - l/2
		upper := []sdf.SDF2{
			rect(l, st, r2.Vec{X: -x, Y: st / 2}),
			rect(l, st, r2.Vec{X: x, Y: st / 2}),
		}
		// lower pair: upper pair rotated 180° about the boundary center.
		flip := sdf.Rotate2D(sdf.DtoR(180))
		for _, bar := range upper {
			parts = append(parts,
				sdf.Transform2D(bar, sdf.Translate2D(r2.Vec{Y: yMid})),
				sdf.Transform2D(bar, sdf.Translate2D(r2.Vec{Y: yMid}).Mul(flip)),
			)
		}
	}
	return sdf.Union2D(parts...)
}

// Tile stacks the finished cell along the height of the profile and
// joins adjacent cells with bridges. A single cell profile is returned
// with no bridges.
func Tile(p Profile, cell sdf.SDF2) sdf.SDF2 {
	parts := tileCells(p, cell)
	for _, y := range p.boundaries() {
		parts = append(parts, Bridge(p, y))
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return sdf.Union2D(parts...)
}
