package render

import (
	"io"
	"math"
	"runtime"
	"sync"

	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Options configures a mesher.
type Options struct {
	// Workers bounds the number of goroutines evaluating the SDF3.
	// Values below 1 use runtime.NumCPU().
	Workers int
}

// surfaceNets meshes an SDF3 with the surface nets method on a uniform
// grid. Grid layers along Z are evaluated concurrently in batches of
// Workers layers and meshed in order so output is deterministic.
type surfaceNets struct {
	s       sdf.SDF3
	origin  r3.Vec
	res     float64
	n       sdf.V3i // grid points per axis
	workers int

	fields    [][]float64 // SDF3 samples per Z layer, released once meshed
	evaluated int         // number of Z layers evaluated
	cells     []cellLayer // surface vertices per cell layer
	k         int         // next Z layer to mesh
	unwritten triangle3Buffer
	triangles int
}

// cellLayer holds the surface vertex of every cell of a cell layer.
type cellLayer struct {
	idx   []int32 // index into verts, -1 for cells the surface does not cross
	verts []r3.Vec
}

// cube corner offsets, bit 0 is X, bit 1 is Y and bit 2 is Z.
var cornerOffsets = [8]r3.Vec{
	{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
}

// cubeEdges lists the 12 edges of a cube as corner index pairs.
var cubeEdges = func() (edges [12][2]int) {
	n := 0
	for c := 0; c < 8; c++ {
		for _, bit := range [3]int{1, 2, 4} {
			if c&bit == 0 {
				edges[n] = [2]int{c, c | bit}
				n++
			}
		}
	}
	return edges
}()

// NewRenderer returns a Renderer that meshes s on a grid of meshCells
// cells along the longest axis of its bounding box.
func NewRenderer(s sdf.SDF3, meshCells int, opts Options) *surfaceNets {
	if meshCells < 2 {
		panic("meshCells must be 2 or larger")
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	// Scale the bounding box about the center and pad it by a cell so
	// the outer grid layers lie outside the object surface.
	bb := d3.Box(s.Bounds()).ScaleAboutCenter(1.01)
	res := d3.Max(bb.Size()) / float64(meshCells)
	origin := r3.Sub(bb.Min, d3.Elem(res))
	size := r3.Add(bb.Size(), d3.Elem(2*res))
	n := sdf.V3i{
		int(math.Ceil(size.X/res)) + 1,
		int(math.Ceil(size.Y/res)) + 1,
		int(math.Ceil(size.Z/res)) + 1,
	}
	for i := range n {
		if n[i] < 3 {
			n[i] = 3
		}
	}
	return &surfaceNets{
		s:         s,
		origin:    origin,
		res:       res,
		n:         n,
		workers:   workers,
		fields:    make([][]float64, n[2]),
		cells:     make([]cellLayer, n[2]-1),
		k:         1,
		unwritten: triangle3Buffer{buf: make([]Triangle3, 0, 1024)},
	}
}

// Resolution returns the side of a grid cell.
func (sn *surfaceNets) Resolution() float64 { return sn.res }

// ReadTriangles writes triangles rendered from the model into the argument buffer.
// returns number of triangles written and io.EOF once the model is exhausted.
func (sn *surfaceNets) ReadTriangles(dst []Triangle3) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	for n < len(dst) {
		if sn.unwritten.Len() > 0 {
			n += sn.unwritten.Read(dst[n:])
			continue
		}
		if sn.k > sn.n[2]-2 {
			// Done rendering model.
			return n, io.EOF
		}
		sn.step()
	}
	return n, nil
}

// step meshes Z layer sn.k into the unwritten buffer.
func (sn *surfaceNets) step() {
	k := sn.k
	sn.evaluate(k + 1)
	if k == 1 {
		sn.buildCells(0)
	}
	sn.buildCells(k)
	sn.emit(k)
	// layer k-1 is no longer referenced
	sn.fields[k-1] = nil
	sn.cells[k-1] = cellLayer{}
	sn.k++
}

// evaluate samples every Z layer up to and including k, evaluating a
// batch of up to workers layers concurrently.
func (sn *surfaceNets) evaluate(k int) {
	for sn.evaluated <= k {
		end := min(sn.evaluated+sn.workers, sn.n[2])
		var wg sync.WaitGroup
		for kk := sn.evaluated; kk < end; kk++ {
			wg.Add(1)
			go func(kk int) {
				defer wg.Done()
				sn.fields[kk] = sn.sampleLayer(kk)
			}(kk)
		}
		wg.Wait()
		sn.evaluated = end
	}
}

func (sn *surfaceNets) sampleLayer(k int) []float64 {
	nx, ny := sn.n[0], sn.n[1]
	layer := make([]float64, nx*ny)
	z := sn.origin.Z + float64(k)*sn.res
	for j := 0; j < ny; j++ {
		y := sn.origin.Y + float64(j)*sn.res
		for i := 0; i < nx; i++ {
			layer[j*nx+i] = sn.s.Evaluate(r3.Vec{X: sn.origin.X + float64(i)*sn.res, Y: y, Z: z})
		}
	}
	return layer
}

// buildCells places a vertex in every cell of cell layer k crossed by
// the surface, at the mean of the edge crossings.
func (sn *surfaceNets) buildCells(k int) {
	nx, ny := sn.n[0], sn.n[1]
	f0, f1 := sn.fields[k], sn.fields[k+1]
	layer := cellLayer{idx: make([]int32, (nx-1)*(ny-1))}
	var d [8]float64
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			inside := 0
			for c := range d {
				f := f0
				if c&4 != 0 {
					f = f1
				}
				d[c] = f[(j+c>>1&1)*nx+i+c&1]
				if d[c] < 0 {
					inside++
				}
			}
			ci := j*(nx-1) + i
			if inside == 0 || inside == 8 {
				layer.idx[ci] = -1
				continue
			}
			var sum r3.Vec
			crossings := 0
			for _, e := range cubeEdges {
				a, b := d[e[0]], d[e[1]]
				if (a < 0) == (b < 0) {
					continue
				}
				t := a / (a - b)
				p := r3.Add(cornerOffsets[e[0]], r3.Scale(t, r3.Sub(cornerOffsets[e[1]], cornerOffsets[e[0]])))
				sum = r3.Add(sum, p)
				crossings++
			}
			local := r3.Scale(1/float64(crossings), sum)
			cell := r3.Vec{X: float64(i), Y: float64(j), Z: float64(k)}
			layer.idx[ci] = int32(len(layer.verts))
			layer.verts = append(layer.verts, r3.Add(sn.origin, r3.Scale(sn.res, r3.Add(cell, local))))
		}
	}
	sn.cells[k] = layer
}

func (sn *surfaceNets) vertex(layer cellLayer, i, j int) r3.Vec {
	return layer.verts[layer.idx[j*(sn.n[0]-1)+i]]
}

// emit writes the quads of every grid edge on Z layer k crossed by the
// surface, plus the Z edges joining layer k to k+1.
func (sn *surfaceNets) emit(k int) {
	nx, ny := sn.n[0], sn.n[1]
	f, fz := sn.fields[k], sn.fields[k+1]
	lo, hi := sn.cells[k-1], sn.cells[k]
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			a := f[j*nx+i]
			interiorX := i >= 1 && i < nx-1
			interiorY := j >= 1 && j < ny-1
			if i < nx-1 && interiorY {
				if b := f[j*nx+i+1]; (a < 0) != (b < 0) {
					sn.quad([4]r3.Vec{
						sn.vertex(lo, i, j-1), sn.vertex(lo, i, j),
						sn.vertex(hi, i, j), sn.vertex(hi, i, j-1),
					}, a < 0)
				}
			}
			if j < ny-1 && interiorX {
				if b := f[(j+1)*nx+i]; (a < 0) != (b < 0) {
					sn.quad([4]r3.Vec{
						sn.vertex(lo, i-1, j), sn.vertex(hi, i-1, j),
						sn.vertex(hi, i, j), sn.vertex(lo, i, j),
					}, a < 0)
				}
			}
			if interiorX && interiorY {
				if b := fz[j*nx+i]; (a < 0) != (b < 0) {
					sn.quad([4]r3.Vec{
						sn.vertex(hi, i-1, j-1), sn.vertex(hi, i, j-1),
						sn.vertex(hi, i, j), sn.vertex(hi, i-1, j),
					}, a < 0)
				}
			}
		}
	}
}

// quad writes two triangles. The vertices of q are counter-clockwise
// about the positive axis of the crossed edge, forward is true when the
// surface normal points along that axis.
func (sn *surfaceNets) quad(q [4]r3.Vec, forward bool) {
	if !forward {
		q[1], q[3] = q[3], q[1]
	}
	for _, t := range [2]Triangle3{
		{V: [3]r3.Vec{q[0], q[1], q[2]}},
		{V: [3]r3.Vec{q[0], q[2], q[3]}},
	} {
		if sn.sliver(t) {
			continue
		}
		sn.unwritten.Write([]Triangle3{t})
		sn.triangles++
	}
}

// sliver reports triangles too small to survive float32 export.
func (sn *surfaceNets) sliver(t Triangle3) bool {
	tol := sn.res * 1e-3
	if t.Degenerate(tol) {
		return true
	}
	area2 := r3.Norm(r3.Cross(r3.Sub(t.V[1], t.V[0]), r3.Sub(t.V[2], t.V[0])))
	return area2 < tol*tol
}
