package render

import (
	"errors"
	"io"
)

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like io.ReadAll. Triangles returned
// alongside io.EOF are kept.
func RenderAll(r Renderer) ([]Triangle3, error) {
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, trianglesInBuffer)
	for {
		nt, err := r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if errors.Is(err, io.EOF) {
			return result, nil
		} else if err != nil {
			return result, err
		}
	}
}

// sliceRenderer serves an already meshed model as a Renderer.
type sliceRenderer struct {
	model []Triangle3
}

// NewSliceRenderer returns a Renderer that reads back model.
func NewSliceRenderer(model []Triangle3) Renderer {
	return &sliceRenderer{model: model}
}

func (s *sliceRenderer) ReadTriangles(dst []Triangle3) (int, error) {
	n := copy(dst, s.model)
	s.model = s.model[n:]
	if len(s.model) == 0 {
		return n, io.EOF
	}
	return n, nil
}

type triangle3Buffer struct {
	buf []Triangle3
}

// Read reads from this buffer.
func (b *triangle3Buffer) Read(t []Triangle3) int {
	n := copy(t, b.buf)
	b.buf = b.buf[n:]
	return n
}

// Write appends triangles to this buffer.
func (b *triangle3Buffer) Write(t []Triangle3) int {
	b.buf = append(b.buf, t...)
	return len(t)
}

func (b *triangle3Buffer) Len() int { return len(b.buf) }
