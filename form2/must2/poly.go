package must2

import (
	"math"

	"github.com/soypat/sdfparts/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// Polygon returns an SDF2 made from a closed set of line segments.
func Polygon(vertex []r2.Vec) *polygon {
	s := polygon{}

	n := len(vertex)
	if n < 3 {
		panic("number of vertices < 3")
	}

	// Close the loop (if necessary)
	s.vertex = append([]r2.Vec(nil), vertex...)
	if !d2.EqualWithin(vertex[0], vertex[n-1], tolerance) {
		s.vertex = append(s.vertex, vertex[0])
	}

	// allocate pre-calculated line segment info
	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)

	vmin := s.vertex[0]
	vmax := s.vertex[0]

	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		if s.length[i] == 0 {
			panic("repeated polygon vertex")
		}
		s.vector[i] = r2.Unit(l)
		vmin = d2.MinElem(vmin, s.vertex[i])
		vmax = d2.MaxElem(vmax, s.vertex[i])
	}

	s.bb = r2.Box{Min: vmin, Max: vmax}
	return &s
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	// iterate over the line segments
	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])

	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		// Distance to line segment
		if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa)) // distance to vertex[0] of line
		} else if t > s.length[i] {
			dd = math.Min(dd, r2.Norm2(pb)) // distance to vertex[1] of line
		} else {
			dd = math.Min(dd, dn*dn) // normal distance to line
		}

		// Is the point in the polygon?
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
			wn--
		}
	}

	// normalise d*d to d
	d := math.Sqrt(dd)
	if wn != 0 {
		// p is inside the polygon
		return -d
	}
	return d
}

// Bounds returns the bounding box of a 2d polygon.
func (s *polygon) Bounds() r2.Box {
	return s.bb
}

// PolygonBuilder stores a set of 2d polygon vertices.
type PolygonBuilder struct {
	vlist []r2.Vec
}

// NewPolygon returns an empty polygon.
func NewPolygon() *PolygonBuilder {
	return &PolygonBuilder{}
}

// Add appends a vertex given by its absolute coordinates.
func (p *PolygonBuilder) Add(x, y float64) *PolygonBuilder {
	p.vlist = append(p.vlist, r2.Vec{X: x, Y: y})
	return p
}

// AddRel appends a vertex relative to the previous vertex.
func (p *PolygonBuilder) AddRel(dx, dy float64) *PolygonBuilder {
	if len(p.vlist) == 0 {
		panic("relative vertex with no previous vertex")
	}
	last := p.vlist[len(p.vlist)-1]
	return p.Add(last.X+dx, last.Y+dy)
}

// Vertices returns the vertices of the polygon.
func (p *PolygonBuilder) Vertices() []r2.Vec {
	return append([]r2.Vec(nil), p.vlist...)
}

// Nagon return the vertices of a N sided regular polygon.
func Nagon(n int, radius float64) d2.Set {
	if n < 3 {
		panic("n < 3")
	}
	v := make(d2.Set, n)
	for i := range v {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		v[i] = r2.Vec{X: radius * cos, Y: radius * sin}
	}
	return v
}
