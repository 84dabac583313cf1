package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Binary STL layout: an 80 byte header, a little endian uint32 triangle
// count and one 50 byte record per triangle.
const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

const trianglesInBuffer = 1 << 10

var errCalculatedNormalMismatch = errors.New("STL triangle normal not approximately equal to normal calculated from vertices. Ignore this error if model is OK")

// CreateSTL streams the triangles of a Renderer to a binary STL file.
// The triangle count in the header is written once the Renderer is exhausted.
func CreateSTL(path string, r Renderer) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	// Header is written last, once the count is known.
	if _, err = file.Seek(stlHeaderSize, io.SeekStart); err != nil {
		return err
	}
	n, err := io.CopyBuffer(file, &stlReader{r: r}, make([]byte, stlTriangleSize*trianglesInBuffer))
	if err != nil {
		return err
	}
	header := stlHeader(uint32(n / stlTriangleSize))
	_, err = file.WriteAt(header[:], 0)
	return err
}

// WriteSTL writes model triangles to a writer in binary STL format.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return errors.New("no triangles to write")
	}
	bw := bufio.NewWriter(w)
	header := stlHeader(uint32(len(model)))
	bw.Write(header[:])
	var b [stlTriangleSize]byte
	for _, t := range model {
		st := stlFromTriangle3(t)
		st.put(b[:])
		bw.Write(b[:])
	}
	// bufio.Writer errors are sticky and surface on Flush.
	return bw.Flush()
}

// ReadSTL reads a binary STL model, validating every triangle read.
// Triangles whose stored normal disagrees with their vertices are returned
// along with an error for which IsNormalMismatch reports true.
func ReadSTL(r io.Reader) ([]Triangle3, error) {
	var header [stlHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read STL header: %w", err)
	}
	count := binary.LittleEndian.Uint32(header[80:])
	if count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	model := make([]Triangle3, 0, min(count, 1<<20))
	var (
		b          [stlTriangleSize]byte
		d          stlTriangle
		mismatches int
	)
	for i := 0; i < int(count); i++ {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("%d/%d STL triangles read: %w", i, count, err)
		}
		d.get(b[:])
		err := d.validate()
		if errors.Is(err, errCalculatedNormalMismatch) {
			mismatches++
		} else if err != nil {
			return nil, fmt.Errorf("STL triangle %d: %w", i, err)
		}
		model = append(model, d.toTriangle3())
	}
	if mismatches > 0 {
		// For high resolution models this error may be incorrectly returned.
		return model, fmt.Errorf("%w (%d/%d triangles)", errCalculatedNormalMismatch, mismatches, count)
	}
	return model, nil
}

// IsNormalMismatch reports whether err only flags STL normals that
// disagree with the triangle vertices.
func IsNormalMismatch(err error) bool {
	return errors.Is(err, errCalculatedNormalMismatch)
}

func stlHeader(count uint32) (h [stlHeaderSize]byte) {
	binary.LittleEndian.PutUint32(h[80:], count)
	return h
}

// stlReader encodes the triangles of a Renderer as STL records.
type stlReader struct {
	r   Renderer
	buf [trianglesInBuffer]Triangle3
}

func (s *stlReader) Read(b []byte) (int, error) {
	nt := min(len(b)/stlTriangleSize, len(s.buf))
	if nt == 0 {
		return 0, io.ErrShortBuffer
	}
	n, err := s.r.ReadTriangles(s.buf[:nt])
	for i, t := range s.buf[:n] {
		st := stlFromTriangle3(t)
		st.put(b[i*stlTriangleSize:])
	}
	return n * stlTriangleSize, err
}

// stlTriangle is an STL record. The trailing attribute count is unused.
type stlTriangle struct {
	normal [3]float32
	v      [3][3]float32
}

func stlFromTriangle3(t Triangle3) (d stlTriangle) {
	d.normal = toF32(t.Normal())
	for i, v := range t.V {
		d.v[i] = toF32(v)
	}
	return d
}

func (d *stlTriangle) toTriangle3() (t Triangle3) {
	for i, v := range d.v {
		t.V[i] = r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
	}
	return t
}

func (d *stlTriangle) put(b []byte) {
	_ = b[stlTriangleSize-1] // early bounds check
	put3F32(b, d.normal)
	for i, v := range d.v {
		put3F32(b[12+12*i:], v)
	}
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (d *stlTriangle) get(b []byte) {
	_ = b[stlTriangleSize-1] // early bounds check
	d.normal = get3F32(b)
	for i := range d.v {
		d.v[i] = get3F32(b[12+12*i:])
	}
}

func (d *stlTriangle) validate() error {
	const (
		degenerateTol = 1e-12
		normTol       = 5e-2
	)
	if !finite3F32(d.normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	for _, v := range d.v {
		if !finite3F32(v) {
			return errors.New("inf/NaN STL triangle vertex")
		}
	}
	// check for identical vertices.
	for i := range d.v {
		if equalWithin3F32(d.v[i], d.v[(i+1)%3], degenerateTol) {
			return errors.New("triangle is degenerate")
		}
	}
	n := toF32(d.toTriangle3().Normal())
	neg := [3]float32{-n[0], -n[1], -n[2]}
	if !equalWithin3F32(n, d.normal, normTol) && !equalWithin3F32(neg, d.normal, normTol) {
		return errCalculatedNormalMismatch
	}
	return nil
}

func toF32(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func put3F32(b []byte, f [3]float32) {
	for i, x := range f {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(x))
	}
}

func get3F32(b []byte) (f [3]float32) {
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return f
}

func finite3F32(f [3]float32) bool {
	for _, x := range f {
		if math32.IsNaN(x) || math32.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func equalWithin3F32(a, b [3]float32, tol float32) bool {
	return math32.Abs(a[0]-b[0]) <= tol &&
		math32.Abs(a[1]-b[1]) <= tol &&
		math32.Abs(a[2]-b[2]) <= tol
}
