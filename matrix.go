package sdf

import (
	"math"

	"github.com/soypat/sdfparts/internal/d2"
	"github.com/soypat/sdfparts/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// m33 is a 3x3 row-major matrix representing an affine 2D transformation.
type m33 [9]float64

// m44 is a 4x4 row-major matrix representing an affine 3D transformation.
type m44 [16]float64

func identity3d() m44 {
	return m44{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate2D returns a 3x3 translation matrix.
func Translate2D(v r2.Vec) m33 {
	return m33{
		1, 0, v.X,
		0, 1, v.Y,
		0, 0, 1,
	}
}

// Scale2D returns a 3x3 scaling matrix.
// Distance is *not* preserved with scaling.
func Scale2D(v r2.Vec) m33 {
	return m33{
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, 1,
	}
}

// Rotate2D returns an orthographic 3x3 rotation matrix (right hand rule).
// theta is in radians.
func Rotate2D(theta float64) m33 {
	s, c := math.Sincos(theta)
	return m33{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Mul multiplies 3x3 matrices, the result applies b first and then a.
func (a m33) Mul(b m33) m33 {
	var m m33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i*3+j] = a[i*3]*b[j] + a[i*3+1]*b[3+j] + a[i*3+2]*b[6+j]
		}
	}
	return m
}

// Inverse returns the inverse of an affine 3x3 matrix.
func (a m33) Inverse() m33 {
	det := a[0]*a[4] - a[1]*a[3]
	if det == 0 {
		panic("singular 2d transform")
	}
	id := 1 / det
	m := m33{
		a[4] * id, -a[1] * id, 0,
		-a[3] * id, a[0] * id, 0,
		0, 0, 1,
	}
	// inverse translation is -R⁻¹·t
	m[2] = -(m[0]*a[2] + m[1]*a[5])
	m[5] = -(m[3]*a[2] + m[4]*a[5])
	return m
}

// MulPosition multiplies a 2d position by a rotate/translate matrix.
func (a m33) MulPosition(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a[0]*b.X + a[1]*b.Y + a[2],
		Y: a[3]*b.X + a[4]*b.Y + a[5],
	}
}

// MulBox rotates/translates a 2d bounding box and resizes for axis-alignment.
func (a m33) MulBox(box r2.Box) r2.Box {
	// http://dev.theomader.com/transform-bounding-boxes/
	r := r2.Vec{X: a[0], Y: a[3]}
	u := r2.Vec{X: a[1], Y: a[4]}
	t := r2.Vec{X: a[2], Y: a[5]}
	xa := r2.Scale(box.Min.X, r)
	xb := r2.Scale(box.Max.X, r)
	ya := r2.Scale(box.Min.Y, u)
	yb := r2.Scale(box.Max.Y, u)
	xa, xb = d2.MinElem(xa, xb), d2.MaxElem(xa, xb)
	ya, yb = d2.MinElem(ya, yb), d2.MaxElem(ya, yb)
	return r2.Box{
		Min: r2.Add(r2.Add(xa, ya), t),
		Max: r2.Add(r2.Add(xb, yb), t),
	}
}

// Translate3D returns a 4x4 translation matrix.
func Translate3D(v r3.Vec) m44 {
	return m44{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// Scale3D returns a 4x4 scaling matrix.
// Distance is *not* preserved with scaling.
func Scale3D(v r3.Vec) m44 {
	return m44{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a 4x4 matrix with rotation about the X axis.
func RotateX(theta float64) m44 {
	s, c := math.Sincos(theta)
	return m44{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a 4x4 matrix with rotation about the Y axis.
func RotateY(theta float64) m44 {
	s, c := math.Sincos(theta)
	return m44{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a 4x4 matrix with rotation about the Z axis.
func RotateZ(theta float64) m44 {
	s, c := math.Sincos(theta)
	return m44{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies 4x4 matrices, the result applies b first and then a.
func (a m44) Mul(b m44) m44 {
	var m m44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i*4+j] = a[i*4]*b[j] + a[i*4+1]*b[4+j] + a[i*4+2]*b[8+j] + a[i*4+3]*b[12+j]
		}
	}
	return m
}

// Inverse returns the inverse of an affine 4x4 matrix.
func (a m44) Inverse() m44 {
	// cofactors of the upper 3x3 block
	c00 := a[5]*a[10] - a[6]*a[9]
	c01 := a[6]*a[8] - a[4]*a[10]
	c02 := a[4]*a[9] - a[5]*a[8]
	det := a[0]*c00 + a[1]*c01 + a[2]*c02
	if det == 0 {
		panic("singular 3d transform")
	}
	id := 1 / det
	m := identity3d()
	m[0] = c00 * id
	m[1] = (a[2]*a[9] - a[1]*a[10]) * id
	m[2] = (a[1]*a[6] - a[2]*a[5]) * id
	m[4] = c01 * id
	m[5] = (a[0]*a[10] - a[2]*a[8]) * id
	m[6] = (a[2]*a[4] - a[0]*a[6]) * id
	m[8] = c02 * id
	m[9] = (a[1]*a[8] - a[0]*a[9]) * id
	m[10] = (a[0]*a[5] - a[1]*a[4]) * id
	// inverse translation is -R⁻¹·t
	m[3] = -(m[0]*a[3] + m[1]*a[7] + m[2]*a[11])
	m[7] = -(m[4]*a[3] + m[5]*a[7] + m[6]*a[11])
	m[11] = -(m[8]*a[3] + m[9]*a[7] + m[10]*a[11])
	return m
}

// MulPosition multiplies a 3d position by a rotate/translate matrix.
func (a m44) MulPosition(b r3.Vec) r3.Vec {
	return r3.Vec{
		X: a[0]*b.X + a[1]*b.Y + a[2]*b.Z + a[3],
		Y: a[4]*b.X + a[5]*b.Y + a[6]*b.Z + a[7],
		Z: a[8]*b.X + a[9]*b.Y + a[10]*b.Z + a[11],
	}
}

// MulBox rotates/translates a 3d bounding box and resizes for axis-alignment.
func (a m44) MulBox(box r3.Box) r3.Box {
	vs := d3.Box(box).Vertices()
	for i := range vs {
		vs[i] = a.MulPosition(vs[i])
	}
	return r3.Box{Min: vs.Min(), Max: vs.Max()}
}
