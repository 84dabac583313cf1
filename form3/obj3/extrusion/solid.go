package extrusion

import (
	"fmt"

	sdf "github.com/soypat/sdfparts"
	"gonum.org/v1/gonum/spatial/r3"
)

// AluminiumDensity is the density of 6063 aluminium in g/mm³.
const AluminiumDensity = 2.70e-3

// CrossSection returns the finished cross-section of the profile:
// tiled cells with holes, bridges and recess notches.
func CrossSection(p Profile, cornerHoles bool) sdf.SDF2 {
	return RecessCut(p, Tile(p, Cell(p, cornerHoles)))
}

// Extrude sweeps a cross-section along Z. The solid spans [0, length],
// or [-length/2, length/2] when centered. Errors wrap ErrExtrusion.
func Extrude(s sdf.SDF2, length float64, centered bool) (sdf.SDF3, error) {
	if !(length > 0) {
		return nil, fmt.Errorf("%w: length %g must be positive", ErrExtrusion, length)
	}
	solid := sdf.Extrude3D(s, length)
	if centered {
		return solid, nil
	}
	return sdf.Transform3D(solid, sdf.Translate3D(r3.Vec{Z: length / 2})), nil
}

// Build returns the solid extrusion of p. Corner holes are cut into the
// cross-section before the sweep when cornerHoles is set.
func Build(p Profile, length float64, centered, cornerHoles bool) (sdf.SDF3, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	s, err := Extrude(CrossSection(p, cornerHoles), length, centered)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.label(), err)
	}
	return s, nil
}

// Area estimates the area of the cross-section in mm² by sampling
// res points along the profile width.
func Area(p Profile, cornerHoles bool, res int) (float64, error) {
	if res <= 0 {
		return 0, fmt.Errorf("%w: area resolution %d must be positive", ErrConfiguration, res)
	}
	cells := p.Cells()
	return sdf.Area2D(CrossSection(p, cornerHoles), sdf.V2i{res, res * cells})
}

// MassPerMetre returns the mass in grams of one metre of the profile
// extruded in aluminium.
func MassPerMetre(p Profile, cornerHoles bool, res int) (float64, error) {
	area, err := Area(p, cornerHoles, res)
	if err != nil {
		return 0, err
	}
	return area * 1000 * AluminiumDensity, nil
}
