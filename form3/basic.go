package form3

import (
	"fmt"
	"runtime/debug"

	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/form2/must2"
	"github.com/soypat/sdfparts/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Stack returns the stack trace captured when the shape constructor failed.
func (s *shapeErr) Stack() string {
	return s.stack
}

// Box return an SDF3 for a 3d box (rounded corners with round > 0).
func Box(size r3.Vec, round float64) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Box(size, round), err
}

// Sphere return an SDF3 for a sphere.
func Sphere(radius float64) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Sphere(radius), err
}

// Cylinder return an SDF3 for a cylinder (rounded edges with round > 0).
func Cylinder(height, radius, round float64) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Cylinder(height, radius, round), err
}

// ChamferedCylinder intersects s with a solid of revolution whose bottom
// and top edges are chamfered by kb and kt times the radius of the
// bounding box of s. s is expected to be centered on the Z axis.
func ChamferedCylinder(s sdf.SDF3, kb, kt float64) (_ sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	bb := s.Bounds()
	l := bb.Max.Z
	r := bb.Max.X
	if kb < 0 || kt < 0 || kb+kt >= (l-bb.Min.Z)/r {
		panic("invalid chamfer factors")
	}
	p := must2.NewPolygon()
	p.Add(0, bb.Min.Z)
	if kb > 0 {
		p.Add(r-r*kb, bb.Min.Z)
	}
	p.Add(r, bb.Min.Z+r*kb)
	p.Add(r, l-r*kt)
	if kt > 0 {
		p.Add(r-r*kt, l)
	}
	p.Add(0, l)
	cc := sdf.Revolve3D(must2.Polygon(p.Vertices()))
	return sdf.Intersect3D(s, cc), nil
}
