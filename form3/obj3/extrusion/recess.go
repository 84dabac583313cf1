package extrusion

import (
	sdf "github.com/soypat/sdfparts"
	"gonum.org/v1/gonum/spatial/r2"
)

// Notches returns the recess notches of every cell, four per cell,
// one on each channel face. Each notch is a 2·Depth × Width rectangle
// centered on the face. Empty if the profile has no recess.
func Notches(p Profile) sdf.SDF2 {
	if !p.HasRecess {
		return sdf.Empty2D()
	}
	notch := rect(2*p.Recess.Depth, p.Recess.Width, r2.Vec{X: p.Width / 2})
	var cuts []sdf.SDF2
	for _, y := range p.cellCenters() {
		for _, deg := range [4]float64{0, 90, 180, 270} {
			m := sdf.Translate2D(r2.Vec{Y: y}).Mul(sdf.Rotate2D(sdf.DtoR(deg)))
			cuts = append(cuts, sdf.Transform2D(notch, m))
		}
	}
	return sdf.Union2D(cuts...)
}

// RecessCut cuts the profile's recess notches out of s.
func RecessCut(p Profile, s sdf.SDF2) sdf.SDF2 {
	if !p.HasRecess {
		return s
	}
	return sdf.Difference2D(s, Notches(p))
}
