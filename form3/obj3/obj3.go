package obj3

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is wrapped by the errors of part constructors that
// receive parameters describing no solid.
var ErrInvalidParams = errors.New("invalid part parameters")

func paramErr(part, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidParams, part, fmt.Sprintf(format, args...))
}

// CylinderStyle selects the outer shape of a round part.
type CylinderStyle int

const (
	_ CylinderStyle = iota
	CylinderCircular
	CylinderHex
)

func (c CylinderStyle) String() (str string) {
	switch c {
	case CylinderCircular:
		str = "circular"
	case CylinderHex:
		str = "hex"
	default:
		str = "unknown"
	}
	return str
}

// ParseCylinderStyle returns the style named s.
func ParseCylinderStyle(s string) (CylinderStyle, error) {
	switch s {
	case "", "circular":
		return CylinderCircular, nil
	case "hex":
		return CylinderHex, nil
	}
	return 0, fmt.Errorf("%w: unknown cylinder style %q", ErrInvalidParams, s)
}
