package extrusion

import (
	"fmt"
	"math"

	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// holeEpsilon is the magnitude under which a signed hole parameter
// is considered absent.
const holeEpsilon = 1e-9

// HoleKind enumerates the shapes a HoleSpec may take.
type HoleKind int

const (
	HoleNone HoleKind = iota
	HoleCircle
	HoleSquare
)

func (k HoleKind) String() (str string) {
	switch k {
	case HoleNone:
		str = "none"
	case HoleCircle:
		str = "circle"
	case HoleSquare:
		str = "square"
	default:
		str = "unknown"
	}
	return str
}

// HoleSpec describes a centered planar feature. It is used for holes
// as well as for the solid center motif of a cell. Size is the
// diameter of a circle or the side of a square.
type HoleSpec struct {
	Kind HoleKind
	Size float64
}

// ResolveHoleSpec decodes a sign-encoded magnitude m into a HoleSpec.
// Values with |m| < 1e-9 yield no feature, negative values a circle of
// diameter |m| and positive values a square of side m.
func ResolveHoleSpec(m float64) HoleSpec {
	switch {
	case math.Abs(m) < holeEpsilon:
		return HoleSpec{Kind: HoleNone}
	case m < 0:
		return HoleSpec{Kind: HoleCircle, Size: -m}
	default:
		return HoleSpec{Kind: HoleSquare, Size: m}
	}
}

// Circle returns the HoleSpec of a circle of diameter d.
func Circle(d float64) HoleSpec { return HoleSpec{Kind: HoleCircle, Size: d} }

// Square returns the HoleSpec of a square of side s.
func Square(s float64) HoleSpec { return HoleSpec{Kind: HoleSquare, Size: s} }

// None reports whether h describes no feature.
func (h HoleSpec) None() bool { return h.Kind == HoleNone }

// Magnitude returns the diameter or side of the feature, zero for none.
func (h HoleSpec) Magnitude() float64 {
	if h.None() {
		return 0
	}
	return h.Size
}

// Signed returns the sign-encoded magnitude h was decoded from.
func (h HoleSpec) Signed() float64 {
	switch h.Kind {
	case HoleCircle:
		return -h.Size
	case HoleSquare:
		return h.Size
	}
	return 0
}

// Area returns the exact area of the feature.
func (h HoleSpec) Area() float64 {
	switch h.Kind {
	case HoleCircle:
		return math.Pi * h.Size * h.Size / 4
	case HoleSquare:
		return h.Size * h.Size
	}
	return 0
}

// Shape returns the feature centered at the origin. The boolean
// result is false when h describes no feature.
func (h HoleSpec) Shape() (sdf.SDF2, bool) {
	switch h.Kind {
	case HoleCircle:
		return must2.Circle(h.Size / 2), true
	case HoleSquare:
		return must2.Box(r2.Vec{X: h.Size, Y: h.Size}, 0), true
	}
	return sdf.Empty2D(), false
}

func (h HoleSpec) String() string {
	if h.None() {
		return h.Kind.String()
	}
	return fmt.Sprintf("%s(%g)", h.Kind, h.Size)
}
