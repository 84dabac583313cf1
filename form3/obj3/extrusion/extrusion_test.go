package extrusion

import (
	"errors"
	"math"
	"testing"

	sdf "github.com/soypat/sdfparts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func e2020(t testing.TB) Profile {
	t.Helper()
	p, ok := Lookup("E2020")
	require.True(t, ok)
	return p
}

func profileFrom(t testing.TB, k Params) Profile {
	t.Helper()
	p, err := NewProfile(k)
	require.NoError(t, err)
	return p
}

func TestResolveHoleSpec(t *testing.T) {
	for _, tc := range []struct {
		m    float64
		want HoleSpec
	}{
		{m: 0, want: HoleSpec{}},
		{m: 1e-10, want: HoleSpec{}},
		{m: -1e-10, want: HoleSpec{}},
		{m: -4.2, want: Circle(4.2)},
		{m: 4.2, want: Square(4.2)},
		{m: 1e-8, want: Square(1e-8)},
	} {
		got := ResolveHoleSpec(tc.m)
		assert.Equal(t, tc.want, got, "m=%g", tc.m)
		if !got.None() {
			assert.Equal(t, tc.m, got.Signed())
		}
	}
	_, ok := ResolveHoleSpec(0).Shape()
	assert.False(t, ok)
	assert.InDelta(t, math.Pi*2.1*2.1, Circle(4.2).Area(), 1e-12)
	assert.InDelta(t, 17.64, Square(4.2).Area(), 1e-12)
}

func TestNewProfileErrors(t *testing.T) {
	base := e2020(t).Params()
	for name, mutate := range map[string]func(k *Params){
		"zero width":           func(k *Params) { k.Width = 0 },
		"negative height":      func(k *Params) { k.Height = -20 },
		"icw equals width":     func(k *Params) { k.InternalChannelWidth = k.Width },
		"motif too large":      func(k *Params) { k.CenterMotif = -k.InternalChannelWidth },
		"zero channel":         func(k *Params) { k.ChannelWidth = 0 },
		"channel too wide":     func(k *Params) { k.ChannelWidth = k.Width },
		"negative tab":         func(k *Params) { k.TabThickness = -1 },
		"negative spar":        func(k *Params) { k.SparThickness = -1 },
		"negative fillet":      func(k *Params) { k.FilletRadius = -0.1 },
		"recess without depth": func(k *Params) { k.RecessWidth = 5 },
		"recess too wide":      func(k *Params) { k.RecessWidth, k.RecessDepth = 20, 0.5 },
		"NaN center hole":      func(k *Params) { k.CenterHole = math.NaN() },
		"NaN corner hole":      func(k *Params) { k.CornerHole = math.NaN() },
		"NaN center motif":     func(k *Params) { k.CenterMotif = math.NaN() },
		"infinite center hole": func(k *Params) { k.CenterHole = math.Inf(-1) },
	} {
		k := base
		mutate(&k)
		_, err := NewProfile(k)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrConfiguration), name)
		assert.Contains(t, err.Error(), "E2020", name)
	}
	_, err := NewProfile(base)
	assert.NoError(t, err)
}

func TestBuildErrors(t *testing.T) {
	p := e2020(t)
	for _, length := range []float64{0, -10, math.NaN()} {
		_, err := Build(p, length, false, false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrExtrusion))
		assert.False(t, errors.Is(err, ErrConfiguration))
	}
	_, err := Build(Profile{Name: "bad"}, 10, false, false)
	assert.True(t, errors.Is(err, ErrConfiguration))
	bad := e2020(t)
	bad.CenterHole = Square(math.NaN())
	_, err = Build(bad, 10, false, false)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestDerivedValues(t *testing.T) {
	p := e2020(t)
	assert.Equal(t, 1, p.Cells())
	assert.InDelta(t, 4.0, p.CornerSquare(), 1e-12)
	assert.InDelta(t, 6.9, p.TabLength(), 1e-12)
	want := 4 + 1.5*math.Tan(math.Pi/8) - 1.5/math.Sqrt2
	assert.InDelta(t, want, p.SparLength(), 1e-12)

	tall, _ := Lookup("E2080")
	assert.Equal(t, 4, tall.Cells())
	assert.Equal(t, []float64{-30, -10, 10, 30}, tall.cellCenters())
	assert.Equal(t, []float64{-20, 0, 20}, tall.boundaries())

	// Heights under half a width still produce one cell.
	k := p.Params()
	k.Height = 8
	assert.Equal(t, 1, profileFrom(t, k).Cells())
}

func TestCellOutlineSymmetry(t *testing.T) {
	for _, name := range []string{"E1515", "E2020", "E3030", "E4040"} {
		p, ok := Lookup(name)
		require.True(t, ok)
		outline := CellOutline(p)
		const n = 41
		half := p.Width/2 + 1
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := r2.Vec{X: -half + 2*half*float64(i)/(n-1), Y: -half + 2*half*float64(j)/(n-1)}
				d := outline.Evaluate(v)
				assert.InDelta(t, d, outline.Evaluate(r2.Vec{X: -v.X, Y: v.Y}), 1e-6, "%s reflect X at %v", name, v)
				assert.InDelta(t, d, outline.Evaluate(r2.Vec{X: v.X, Y: -v.Y}), 1e-6, "%s reflect Y at %v", name, v)
			}
		}
	}
}

func TestCornerMotifPlacement(t *testing.T) {
	p := e2020(t)
	outline := CellOutline(p)
	// Each corner block is solid and each channel opening is empty.
	for _, c := range []r2.Vec{{X: -8, Y: -8}, {X: 8, Y: -8}, {X: 8, Y: 8}, {X: -8, Y: 8}} {
		assert.Less(t, outline.Evaluate(c), 0.0, "corner block at %v", c)
	}
	for _, c := range []r2.Vec{{X: 0, Y: -9.5}, {X: 9.5, Y: 0}, {X: 0, Y: 9.5}, {X: -9.5, Y: 0}} {
		assert.Greater(t, outline.Evaluate(c), 0.0, "channel opening at %v", c)
	}
	// Lips narrow every channel opening to ChannelWidth (6.2).
	for _, deg := range []float64{0, 90, 180, 270} {
		rot := sdf.Rotate2D(sdf.DtoR(deg))
		for _, x := range []float64{-3.5, 3.5} {
			q := rot.MulPosition(r2.Vec{X: x, Y: -9.5})
			assert.Less(t, outline.Evaluate(q), 0.0, "lip at %v", q)
		}
		for _, x := range []float64{-2.9, 2.9} {
			q := rot.MulPosition(r2.Vec{X: x, Y: -9.5})
			assert.Greater(t, outline.Evaluate(q), 0.0, "channel opening at %v", q)
		}
	}
	bb := outline.Bounds()
	assert.InDelta(t, -10, bb.Min.X, 1e-9)
	assert.InDelta(t, 10, bb.Max.Y, 1e-9)
}

func TestTwoCellTiling(t *testing.T) {
	k, _ := Lookup("E1515")
	params := k.Params()
	params.Height = 30
	p := profileFrom(t, params)
	require.Equal(t, 2, p.Cells())
	assert.Equal(t, []float64{-7.5, 7.5}, p.cellCenters())

	cell := Cell(p, false)
	cellArea, err := sdf.Area2D(cell, sdf.V2i{600, 600})
	require.NoError(t, err)
	stacked := sdf.Union2D(tileCells(p, cell)...)
	bb := stacked.Bounds()
	assert.InDelta(t, -15, bb.Min.Y, 1e-9)
	assert.InDelta(t, 15, bb.Max.Y, 1e-9)
	stackedArea, err := sdf.Area2D(stacked, sdf.V2i{600, 1200})
	require.NoError(t, err)
	// No gap and no overlap between the cells.
	assert.InEpsilon(t, 2*cellArea, stackedArea, 0.01)

	// Bridge: two strips t×(W-channel) and four l×st bars, each bar
	// overlapping a strip by t×st.
	bridge := Bridge(p, 0)
	st, l := p.SparThickness, p.SparLength()
	wantBridge := 2*p.TabThickness*(p.Width-p.ChannelWidth) + 4*l*st - 4*p.TabThickness*st
	bridgeArea, err := sdf.Area2D(bridge, sdf.V2i{1500, 1200})
	require.NoError(t, err)
	assert.InEpsilon(t, wantBridge, bridgeArea, 0.02)

	// The tiled area is both cells plus the bridge material they lack.
	tiled := Tile(p, cell)
	tiledArea, err := sdf.Area2D(tiled, sdf.V2i{600, 1200})
	require.NoError(t, err)
	added, err := sdf.Area2D(sdf.Difference2D(bridge, stacked), sdf.V2i{600, 600})
	require.NoError(t, err)
	assert.Greater(t, added, 0.0)
	assert.InEpsilon(t, 2*cellArea+added, tiledArea, 0.01)

	x := p.Width/2 - p.TabThickness/2
	assert.Less(t, Bridge(p, 0).Evaluate(r2.Vec{X: x, Y: 0}), 0.0)
	assert.Less(t, Bridge(p, 0).Evaluate(r2.Vec{X: -x, Y: 0}), 0.0)
	assert.Less(t, tiled.Evaluate(r2.Vec{X: x, Y: 0}), 0.0)
	bx := p.Width/2 - p.SparLength()/2
	for _, v := range []r2.Vec{{X: bx, Y: 0.25}, {X: -bx, Y: 0.25}, {X: bx, Y: -0.25}, {X: -bx, Y: -0.25}} {
		assert.Less(t, Bridge(p, 0).Evaluate(v), 0.0, "bridge bar at %v", v)
	}
}

func TestSingleCellHasNoBridges(t *testing.T) {
	p := e2020(t)
	cell := Cell(p, true)
	tiled := Tile(p, cell)
	for _, v := range []r2.Vec{{X: 1, Y: 2}, {X: 9.1, Y: 0}, {X: 4, Y: 4}} {
		assert.Equal(t, cell.Evaluate(v), tiled.Evaluate(v))
	}
}

func TestExtrudeBounds(t *testing.T) {
	p := e2020(t)
	s, err := Build(p, 50, true, false)
	require.NoError(t, err)
	bb := s.Bounds()
	assert.InDelta(t, -25, bb.Min.Z, 1e-9)
	assert.InDelta(t, 25, bb.Max.Z, 1e-9)

	s, err = Build(p, 50, false, false)
	require.NoError(t, err)
	bb = s.Bounds()
	assert.InDelta(t, 0, bb.Min.Z, 1e-9)
	assert.InDelta(t, 50, bb.Max.Z, 1e-9)
	// Material on both ends of the sweep and none beyond.
	assert.Less(t, s.Evaluate(r3.Vec{X: -8, Y: -8, Z: 0.5}), 0.0)
	assert.Less(t, s.Evaluate(r3.Vec{X: -8, Y: -8, Z: 49.5}), 0.0)
	assert.Greater(t, s.Evaluate(r3.Vec{X: -8, Y: -8, Z: -0.5}), 0.0)
	assert.Greater(t, s.Evaluate(r3.Vec{X: -8, Y: -8, Z: 50.5}), 0.0)
}

func TestHoleShapeAreas(t *testing.T) {
	k := e2020(t).Params()
	k.CornerHole = 0
	area := func(centerHole float64) float64 {
		k.CenterHole = centerHole
		a, err := sdf.Area2D(Cell(profileFrom(t, k), false), sdf.V2i{1000, 1000})
		require.NoError(t, err)
		return a
	}
	solid := area(0)
	assert.InDelta(t, math.Pi*2.1*2.1, solid-area(-4.2), 0.2)
	assert.InDelta(t, 17.64, solid-area(4.2), 0.2)
}

func TestE2020Footprint(t *testing.T) {
	p := e2020(t)
	assert.Equal(t, Circle(4.2), p.CenterHole)
	assert.Equal(t, Circle(3.0), p.CornerHole)
	s, err := Build(p, 100, false, true)
	require.NoError(t, err)
	bb := s.Bounds()
	assert.InDelta(t, -10, bb.Min.X, 1e-9)
	assert.InDelta(t, -10, bb.Min.Y, 1e-9)
	assert.InDelta(t, 10, bb.Max.X, 1e-9)
	assert.InDelta(t, 10, bb.Max.Y, 1e-9)
	assert.InDelta(t, 0, bb.Min.Z, 1e-9)
	assert.InDelta(t, 100, bb.Max.Z, 1e-9)

	positions := CornerHolePositions(p)
	assert.ElementsMatch(t, []r2.Vec{{X: -4, Y: -4}, {X: 4, Y: -4}, {X: 4, Y: 4}, {X: -4, Y: 4}}, positions)

	holes := Holes(p, true)
	assert.InDelta(t, -2.1, holes.Evaluate(r2.Vec{}), 1e-9)
	for _, c := range positions {
		assert.InDelta(t, -1.5, holes.Evaluate(c), 1e-9, "corner hole at %v", c)
		assert.InDelta(t, 0, holes.Evaluate(r2.Add(c, r2.Vec{X: 1.5})), 1e-9)
	}
	assert.Greater(t, holes.Evaluate(r2.Vec{X: 2, Y: 2}), 0.0)

	slice := sdf.Slice2D(s, r3.Vec{Z: 50}, r3.Vec{Z: 1})
	assert.Greater(t, slice.Evaluate(r2.Vec{}), 0.0)
	for _, c := range positions {
		assert.Greater(t, slice.Evaluate(c), 0.0, "corner hole at %v", c)
	}
	// material of the center motif just outside the hole
	assert.Less(t, slice.Evaluate(r2.Vec{X: 2.6}), 0.0)

	// Without corner holes only the center hole is cut.
	noCorner := Holes(p, false)
	assert.Greater(t, noCorner.Evaluate(r2.Vec{X: 4, Y: 4}), 0.0)
}

func TestBuildIdempotent(t *testing.T) {
	k := e2020(t).Params()
	a, err := Build(profileFrom(t, k), 100, false, true)
	require.NoError(t, err)
	b, err := Build(profileFrom(t, k), 100, false, true)
	require.NoError(t, err)
	assert.Equal(t, a.Bounds(), b.Bounds())
	for x := -11.0; x <= 11; x += 0.7 {
		for y := -11.0; y <= 11; y += 0.7 {
			v := r3.Vec{X: x, Y: y, Z: 20}
			assert.Equal(t, a.Evaluate(v), b.Evaluate(v))
		}
	}
	p := profileFrom(t, k)
	areaA, err := Area(p, true, 300)
	require.NoError(t, err)
	areaB, err := Area(p, true, 300)
	require.NoError(t, err)
	assert.Equal(t, areaA, areaB)
}

func TestRecessNotches(t *testing.T) {
	p, ok := Lookup("E2020T")
	require.True(t, ok)
	require.True(t, p.HasRecess)
	assert.Equal(t, Recess{Width: 7.2, Depth: 0.5}, p.Recess)

	plain := p
	plain.HasRecess = false
	withRecess := CrossSection(p, false)
	without := CrossSection(plain, false)

	// Local frame notch points on the +X face, rotated onto each face.
	points := []r2.Vec{{X: 9.75, Y: 3.4}, {X: 9.75, Y: -3.4}}
	for _, deg := range []float64{0, 90, 180, 270} {
		rot := sdf.Rotate2D(sdf.DtoR(deg))
		for _, v := range points {
			q := rot.MulPosition(v)
			assert.Less(t, without.Evaluate(q), 0.0, "lip material at %v", q)
			assert.Greater(t, withRecess.Evaluate(q), 0.0, "notch at %v", q)
		}
		// outside the notch width the lip is untouched
		q := rot.MulPosition(r2.Vec{X: 9.75, Y: 3.8})
		assert.Less(t, withRecess.Evaluate(q), 0.0, "lip at %v", q)
	}

	// Each notch is 1.0 × 7.2 in its local frame.
	notches := Notches(p)
	assert.InDelta(t, -0.5, notches.Evaluate(r2.Vec{X: 10}), 1e-9)
	assert.InDelta(t, 0, notches.Evaluate(r2.Vec{X: 10.5}), 1e-9)
	assert.InDelta(t, 0, notches.Evaluate(r2.Vec{X: 10, Y: 3.6}), 1e-9)

	a0, err := sdf.Area2D(without, sdf.V2i{1000, 1000})
	require.NoError(t, err)
	a1, err := sdf.Area2D(withRecess, sdf.V2i{1000, 1000})
	require.NoError(t, err)
	// Four faces, two lip corners of 0.5 × 0.5 each.
	assert.InDelta(t, 2.0, a0-a1, 0.1)
}

func TestRecessEveryCell(t *testing.T) {
	k, _ := Lookup("E2020T")
	params := k.Params()
	params.Height = 40
	p := profileFrom(t, params)
	s := CrossSection(p, false)
	for _, y := range p.cellCenters() {
		for _, v := range []r2.Vec{{X: 9.75, Y: y + 3.4}, {X: -9.75, Y: y - 3.4}} {
			assert.Greater(t, s.Evaluate(v), 0.0, "notch at %v", v)
		}
	}
}

func TestCatalog(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"E1515", "E2020", "E2020T", "E2040", "E2060", "E2080", "E3030", "E3060", "E4040", "E4080"}, names)
	for _, name := range names {
		p, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, p.Name)
		_, err := Build(p, 10, true, true)
		assert.NoError(t, err, name)
	}
	_, ok := Lookup("E9999")
	assert.False(t, ok)

	// Returned names are a copy.
	names[0] = "changed"
	assert.Equal(t, "E1515", Names()[0])

	custom := e2020(t).Params()
	custom.Name = "E2020"
	custom.CenterHole = -5
	c, err := NewCatalog(Builtin(), custom, Params{Name: "X1", Width: 10, Height: 10, ChannelWidth: 3, InternalChannelWidth: 6, TabThickness: 1})
	require.NoError(t, err)
	p, ok := c.Lookup("E2020")
	require.True(t, ok)
	assert.Equal(t, Circle(5), p.CenterHole)
	assert.Contains(t, c.Names(), "X1")
	// builtin is not modified
	p, _ = Lookup("E2020")
	assert.Equal(t, Circle(4.2), p.CenterHole)

	_, err = NewCatalog(nil, Params{Name: "bad"})
	assert.True(t, errors.Is(err, ErrConfiguration))
	_, err = NewCatalog(nil, Params{Width: 10, Height: 10})
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestCatalogProfilesAreValues(t *testing.T) {
	p, ok := Lookup("E2020T")
	require.True(t, ok)
	p.Recess.Width = 1
	p.Recess.Depth = 3
	p.HasRecess = false
	p.CenterHole = Square(1)

	q, ok := Lookup("E2020T")
	require.True(t, ok)
	assert.True(t, q.HasRecess)
	assert.Equal(t, Recess{Width: 7.2, Depth: 0.5}, q.Recess)
	assert.Equal(t, Circle(5), q.CenterHole)

	c, err := NewCatalog(Builtin())
	require.NoError(t, err)
	q, _ = c.Lookup("E2020T")
	assert.Equal(t, Recess{Width: 7.2, Depth: 0.5}, q.Recess)
}

func TestMassPerMetre(t *testing.T) {
	p := e2020(t)
	area, err := Area(p, true, 400)
	require.NoError(t, err)
	assert.Greater(t, area, 0.0)
	assert.Less(t, area, 400.0)
	mass, err := MassPerMetre(p, true, 400)
	require.NoError(t, err)
	assert.InDelta(t, area*2.7, mass, 1e-9)
	_, err = Area(p, true, 0)
	assert.Error(t, err)
}

func BenchmarkCrossSection(b *testing.B) {
	p, _ := Lookup("E2080")
	s := CrossSection(p, true)
	v := r2.Vec{X: 3.3, Y: 7.1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Evaluate(v)
	}
}
