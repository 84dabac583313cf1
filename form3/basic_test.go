package form3

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestShapeErrors(t *testing.T) {
	_, err := Box(r3.Vec{X: -1, Y: 1, Z: 1}, 0)
	require.Error(t, err)
	assert.Equal(t, "size <= 0", err.Error())
	var stacked interface{ Stack() string }
	require.True(t, errors.As(err, &stacked))
	assert.NotEmpty(t, stacked.Stack())

	_, err = Box(r3.Vec{X: 2, Y: 2, Z: 2}, 1.5)
	assert.Error(t, err)
	_, err = Sphere(0)
	assert.Error(t, err)
	_, err = Cylinder(10, 2, 3)
	assert.Error(t, err)
	_, err = Cylinder(10, 2, 0.5)
	assert.NoError(t, err)
}

func TestBoxDistance(t *testing.T) {
	b, err := Box(r3.Vec{X: 10, Y: 20, Z: 30}, 0)
	require.NoError(t, err)
	assert.InDelta(t, -5, b.Evaluate(r3.Vec{}), 1e-12)
	assert.InDelta(t, 1, b.Evaluate(r3.Vec{X: 6}), 1e-12)
	assert.InDelta(t, math.Sqrt2, b.Evaluate(r3.Vec{X: 6, Y: 11}), 1e-12)
	bb := b.Bounds()
	assert.Equal(t, r3.Vec{X: 5, Y: 10, Z: 15}, bb.Max)
}

func TestChamferedCylinder(t *testing.T) {
	cyl, err := Cylinder(20, 5, 0)
	require.NoError(t, err)
	c, err := ChamferedCylinder(cyl, 0.2, 0.2)
	require.NoError(t, err)
	assert.Less(t, c.Evaluate(r3.Vec{X: 2}), 0.0)
	// Inside the plain cylinder but past the 1mm top chamfer.
	corner := r3.Vec{X: 4.8, Z: 9.8}
	assert.Less(t, cyl.Evaluate(corner), 0.0)
	assert.Greater(t, c.Evaluate(corner), 0.0)

	_, err = ChamferedCylinder(cyl, 3, 2)
	assert.Error(t, err)
	_, err = ChamferedCylinder(cyl, -0.1, 0)
	assert.Error(t, err)
}
