package sdf

import (
	"errors"
	"math"

	"github.com/soypat/sdfparts/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pi  = math.Pi
	tau = 2 * pi
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// SawTooth generates a sawtooth function. Returns [-period/2, period/2)
func SawTooth(x, period float64) float64 {
	x += period / 2
	t := x / period
	return period*(t-math.Floor(t)) - period/2
}

// RoundMin returns a minimum function that uses a quarter-circle to join the two objects smoothly.
func RoundMin(k float64) MinFunc {
	return func(a, b float64) float64 {
		u := d2.MaxElem(r2.Vec{X: k - a, Y: k - b}, r2.Vec{})
		return math.Max(k, math.Min(a, b)) - r2.Norm(u)
	}
}

// MaxFunc is a maximum function for SDF blending.
type MaxFunc func(a, b float64) float64

// Map2 maps a 2d region to integer grid coordinates.
type Map2 struct {
	bb    d2.Box // bounding box
	grid  V2i    // integral dimension
	delta r2.Vec
}

// NewMap2 returns a 2d region to grid coordinates map.
func NewMap2(bb r2.Box, grid V2i) (*Map2, error) {
	// sanity check the bounding box
	bbSize := d2.Box(bb).Size()
	if bbSize.X <= 0 || bbSize.Y <= 0 {
		return nil, errors.New("bad bounding box")
	}
	// sanity check the integer dimensions
	if grid[0] <= 0 || grid[1] <= 0 {
		return nil, errors.New("bad grid dimensions")
	}
	return &Map2{
		bb:    d2.Box(bb),
		grid:  grid,
		delta: d2.DivElem(bbSize, r2.Vec{X: float64(grid[0]), Y: float64(grid[1])}),
	}, nil
}

// ToV2 converts grid integer coordinates to the 2d region coordinates
// of the grid cell center.
func (m *Map2) ToV2(p V2i) r2.Vec {
	ofs := d2.MulElem(r2.Vec{X: float64(p[0]) + 0.5, Y: float64(p[1]) + 0.5}, m.delta)
	return r2.Add(m.bb.Min, ofs)
}

// CellArea returns the area of a single grid cell.
func (m *Map2) CellArea() float64 {
	return m.delta.X * m.delta.Y
}

// Area2D estimates the area enclosed by an SDF2 by sampling the
// center of every cell of a grid laid over its bounding box.
// The error is proportional to the perimeter times the cell size.
func Area2D(s SDF2, grid V2i) (float64, error) {
	if IsEmpty2D(s) {
		return 0, nil
	}
	m, err := NewMap2(s.Bounds(), grid)
	if err != nil {
		return 0, err
	}
	inside := 0
	for i := 0; i < grid[0]; i++ {
		for j := 0; j < grid[1]; j++ {
			if s.Evaluate(m.ToV2(V2i{i, j})) <= 0 {
				inside++
			}
		}
	}
	return float64(inside) * m.CellArea(), nil
}
