package matter

import (
	"sort"
	"strings"

	sdf "github.com/soypat/sdfparts"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{name: "pla", shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// PETG shrinks slightly more than PLA and strings when pulled.
	PETG = ViscousMaterial{name: "petg", shrink: 0.4e-2, pullShrink: .5}
	// ABS shrinks considerably once off the bed, mostly warping long extrusions.
	ABS = ViscousMaterial{name: "abs", shrink: 0.8e-2, pullShrink: .4}
)

var materials = map[string]ViscousMaterial{
	PLA.name:  PLA,
	PETG.name: PETG,
	ABS.name:  ABS,
}

// ViscousMaterial describes the dimensional error of a printed thermoplastic.
type ViscousMaterial struct {
	name string
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Lookup returns the material registered under name. Case is ignored.
func Lookup(name string) (ViscousMaterial, bool) {
	m, ok := materials[strings.ToLower(name)]
	return m, ok
}

// Names returns the sorted names of the known materials.
func Names() []string {
	names := make([]string, 0, len(materials))
	for name := range materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m ViscousMaterial) String() string { return m.name }

// Shrink returns the fraction a printed part contracts on cooling.
func (m ViscousMaterial) Shrink() float64 { return m.shrink }

// Scale enlarges s so it contracts to nominal size once printed.
func (m ViscousMaterial) Scale(s sdf.SDF3) sdf.SDF3 {
	return sdf.ScaleUniform3D(s, m.ScaleFactor())
}

// ScaleFactor is the uniform scale applied by Scale.
func (m ViscousMaterial) ScaleFactor() float64 {
	return 1 / (1 - m.shrink)
}

// InternalDimScale returns the dimension to model an internal feature
// (a hole or a slot) with so it prints at real size.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}
