package matter_test

import (
	"testing"

	"github.com/soypat/sdfparts/form3"
	"github.com/soypat/sdfparts/helpers/matter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestLookup(t *testing.T) {
	m, ok := matter.Lookup("PLA")
	require.True(t, ok)
	assert.Equal(t, matter.PLA, m)
	assert.Equal(t, "pla", m.String())
	_, ok = matter.Lookup("nylon")
	assert.False(t, ok)
	assert.Equal(t, []string{"abs", "petg", "pla"}, matter.Names())
}

func TestScale(t *testing.T) {
	box, err := form3.Box(r3.Vec{X: 20, Y: 20, Z: 100}, 0)
	require.NoError(t, err)
	for _, m := range []matter.ViscousMaterial{matter.PLA, matter.PETG, matter.ABS} {
		scaled := m.Scale(box)
		bb := scaled.Bounds()
		k := m.ScaleFactor()
		assert.Greater(t, k, 1.0, m.String())
		assert.InDelta(t, 100*k, bb.Max.Z-bb.Min.Z, 1e-9, m.String())
		// A scaled part shrinks back to nominal length.
		assert.InDelta(t, 100, (bb.Max.Z-bb.Min.Z)*(1-m.Shrink()), 1e-9, m.String())
		assert.Less(t, scaled.Evaluate(r3.Vec{Z: 50 * k * 0.999}), 0.0, m.String())
	}
}

func TestInternalDimScale(t *testing.T) {
	assert.InDelta(t, 5*1.002+0.45, matter.PLA.InternalDimScale(5), 1e-12)
	assert.Panics(t, func() { matter.PLA.InternalDimScale(0) })
}
