package extrusion

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrConfiguration is returned for profile parameters that cannot
	// describe a well formed cross-section.
	ErrConfiguration = errors.New("invalid extrusion profile")
	// ErrExtrusion is returned for an invalid sweep length.
	ErrExtrusion = errors.New("invalid extrusion length")
)

// Params is the raw parameter set of a T-slot profile as found in
// catalogs and configuration files. CenterHole, CornerHole and
// CenterMotif are sign encoded, see ResolveHoleSpec.
// A zero RecessWidth means the profile has no recess.
type Params struct {
	Name                 string  `mapstructure:"name"`
	Width                float64 `mapstructure:"width"`
	Height               float64 `mapstructure:"height"`
	CenterHole           float64 `mapstructure:"center_hole"`
	CornerHole           float64 `mapstructure:"corner_hole"`
	CenterMotif          float64 `mapstructure:"center_motif"`
	ChannelWidth         float64 `mapstructure:"channel_width"`
	InternalChannelWidth float64 `mapstructure:"internal_channel_width"`
	TabThickness         float64 `mapstructure:"tab_thickness"`
	SparThickness        float64 `mapstructure:"spar_thickness"`
	FilletRadius         float64 `mapstructure:"fillet_radius"`
	RecessWidth          float64 `mapstructure:"recess_width"`
	RecessDepth          float64 `mapstructure:"recess_depth"`
}

// Recess is a rectangular notch cut into each open channel face.
type Recess struct {
	Width float64
	Depth float64
}

// Profile is a validated T-slot extrusion profile. Values are only
// obtained through NewProfile or the catalog and are never mutated.
type Profile struct {
	Name                 string
	Width                float64
	Height               float64
	CenterHole           HoleSpec
	CornerHole           HoleSpec
	CenterMotif          HoleSpec
	ChannelWidth         float64
	InternalChannelWidth float64
	TabThickness         float64
	SparThickness        float64
	FilletRadius         float64
	// Recess is only meaningful when HasRecess is set.
	Recess    Recess
	HasRecess bool
}

// NewProfile decodes the sign-encoded fields of k and validates the
// resulting profile. Errors wrap ErrConfiguration.
func NewProfile(k Params) (Profile, error) {
	p := Profile{
		Name:                 k.Name,
		Width:                k.Width,
		Height:               k.Height,
		CenterHole:           ResolveHoleSpec(k.CenterHole),
		CornerHole:           ResolveHoleSpec(k.CornerHole),
		CenterMotif:          ResolveHoleSpec(k.CenterMotif),
		ChannelWidth:         k.ChannelWidth,
		InternalChannelWidth: k.InternalChannelWidth,
		TabThickness:         k.TabThickness,
		SparThickness:        k.SparThickness,
		FilletRadius:         k.FilletRadius,
	}
	if k.RecessWidth != 0 || k.RecessDepth != 0 {
		p.Recess = Recess{Width: k.RecessWidth, Depth: k.RecessDepth}
		p.HasRecess = true
	}
	if err := p.validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Params returns the sign-encoded parameters of p.
func (p Profile) Params() Params {
	k := Params{
		Name:                 p.Name,
		Width:                p.Width,
		Height:               p.Height,
		CenterHole:           p.CenterHole.Signed(),
		CornerHole:           p.CornerHole.Signed(),
		CenterMotif:          p.CenterMotif.Signed(),
		ChannelWidth:         p.ChannelWidth,
		InternalChannelWidth: p.InternalChannelWidth,
		TabThickness:         p.TabThickness,
		SparThickness:        p.SparThickness,
		FilletRadius:         p.FilletRadius,
	}
	if p.HasRecess {
		k.RecessWidth = p.Recess.Width
		k.RecessDepth = p.Recess.Depth
	}
	return k
}

func (p Profile) validate() error {
	fail := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s: %s", ErrConfiguration, p.label(), fmt.Sprintf(format, args...))
	}
	for _, h := range [...]struct {
		name string
		spec HoleSpec
	}{{"center hole", p.CenterHole}, {"corner hole", p.CornerHole}, {"center motif", p.CenterMotif}} {
		if !h.spec.None() && (math.IsNaN(h.spec.Size) || math.IsInf(h.spec.Size, 0)) {
			return fail("%s %g is not a finite size", h.name, h.spec.Size)
		}
	}
	switch {
	case !(p.Width > 0):
		return fail("width %g must be positive", p.Width)
	case !(p.Height > 0):
		return fail("height %g must be positive", p.Height)
	case !(p.InternalChannelWidth >= 0):
		return fail("internal channel width %g must not be negative", p.InternalChannelWidth)
	case p.InternalChannelWidth >= p.Width:
		return fail("internal channel width %g must be smaller than width %g", p.InternalChannelWidth, p.Width)
	case p.CenterMotif.Magnitude() >= p.InternalChannelWidth && !p.CenterMotif.None():
		return fail("center motif %s must be smaller than internal channel width %g", p.CenterMotif, p.InternalChannelWidth)
	case !(p.ChannelWidth > 0) || p.ChannelWidth >= p.Width:
		return fail("channel width %g must be within (0, %g)", p.ChannelWidth, p.Width)
	case !(p.TabThickness >= 0):
		return fail("tab thickness %g must not be negative", p.TabThickness)
	case !(p.SparThickness >= 0):
		return fail("spar thickness %g must not be negative", p.SparThickness)
	case !(p.FilletRadius >= 0):
		return fail("fillet radius %g must not be negative", p.FilletRadius)
	case p.SparThickness > 0 && p.SparLength() <= 0:
		return fail("spar thickness %g leaves no spar length", p.SparThickness)
	}
	if !(p.CenterHole.Magnitude() <= p.Width) || !(p.CornerHole.Magnitude() <= p.Width) {
		return fail("holes must fit within width %g", p.Width)
	}
	if r := p.Recess; p.HasRecess {
		if !(r.Width > 0) || !(r.Depth > 0) {
			return fail("recess %gx%g must have positive width and depth", r.Width, r.Depth)
		}
		if r.Width >= p.Width || 2*r.Depth >= p.Width {
			return fail("recess %gx%g does not fit width %g", r.Width, r.Depth, p.Width)
		}
	}
	return nil
}

func (p Profile) label() string {
	if p.Name == "" {
		return "unnamed profile"
	}
	return fmt.Sprintf("profile %q", p.Name)
}

// Cells returns the number of W×W cells stacked along the height.
func (p Profile) Cells() int {
	n := int(math.Round(p.Height / p.Width))
	if n < 1 {
		return 1
	}
	return n
}

// CornerSquare returns the side of the corner block, (W-icw)/2.
// Corner holes are centered at (±c, ±c).
func (p Profile) CornerSquare() float64 {
	return (p.Width - p.InternalChannelWidth) / 2
}

// SparLength returns the length of the diagonal spars and bridge bars
// given by the miter-joint relation c + t·tan(22.5°) - t/√2.
func (p Profile) SparLength() float64 {
	t := p.SparThickness
	return p.CornerSquare() + t*math.Tan(math.Pi/8) - t/math.Sqrt2
}

// TabLength returns the length of each channel lip, (W-channel)/2.
func (p Profile) TabLength() float64 {
	return (p.Width - p.ChannelWidth) / 2
}

// cellCenters returns the Y offsets of every cell center.
func (p Profile) cellCenters() []float64 {
	n := p.Cells()
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = -p.Height/2 + p.Width/2 + float64(i)*p.Width
	}
	return ys
}

// boundaries returns the Y offsets of every internal cell boundary.
func (p Profile) boundaries() []float64 {
	n := p.Cells()
	ys := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		ys = append(ys, -p.Height/2+float64(i)*p.Width)
	}
	return ys
}

func (p Profile) String() string {
	return fmt.Sprintf("%s %gx%g (%d cells)", p.Name, p.Width, p.Height, p.Cells())
}
