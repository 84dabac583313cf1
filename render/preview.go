package render

import (
	"errors"
	"image"
	"image/png"
	"io"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// PreviewOptions configures the shaded preview of a model.
// The zero value renders an 800x600 isometric view.
type PreviewOptions struct {
	Width, Height int
	// Supersampling factor used for antialiasing.
	Scale int
	// Eye is the camera position after the model is fit in a bi-unit cube.
	Eye r3.Vec
	// Object and background colors as hex strings, i.e: "#468966".
	Color, Background string
}

func (opt PreviewOptions) withDefaults() PreviewOptions {
	if opt.Width <= 0 {
		opt.Width = 800
	}
	if opt.Height <= 0 {
		opt.Height = 600
	}
	if opt.Scale <= 0 {
		opt.Scale = 2
	}
	if opt.Eye == (r3.Vec{}) {
		opt.Eye = r3.Vec{X: 2.4, Y: 2.4, Z: 2.4} // iso view.
	}
	if opt.Color == "" {
		opt.Color = "#468966"
	}
	if opt.Background == "" {
		opt.Background = "#FFF8E3"
	}
	return opt
}

// PreviewImage renders a phong shaded image of model looking at the origin with Z up.
func PreviewImage(model []Triangle3, opt PreviewOptions) (image.Image, error) {
	if len(model) == 0 {
		return nil, errors.New("no triangles to preview")
	}
	opt = opt.withDefaults()
	const (
		fovy      = 30 // vertical field of view in degrees
		near, far = 1, 10
	)
	var (
		eye    = fauxgl.V(opt.Eye.X, opt.Eye.Y, opt.Eye.Z) // camera position
		center = fauxgl.V(0, 0, 0)                         // view center position
		up     = fauxgl.V(0, 0, 1)                         // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()      // light direction
	)
	triangles := make([]*fauxgl.Triangle, len(model))
	for i, t := range model {
		triangles[i] = fauxgl.NewTriangleForPoints(toFauxgl(t.V[0]), toFauxgl(t.V[1]), toFauxgl(t.V[2]))
	}
	mesh := fauxgl.NewTriangleMesh(triangles)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(opt.Width*opt.Scale, opt.Height*opt.Scale)
	context.ClearColorBufferWith(fauxgl.HexColor(opt.Background))
	aspect := float64(opt.Width) / float64(opt.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(opt.Color)
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	img := context.Image()
	return resize.Resize(uint(opt.Width), uint(opt.Height), img, resize.Bilinear), nil
}

// Preview renders model as in PreviewImage and encodes it to w as PNG.
func Preview(w io.Writer, model []Triangle3, opt PreviewOptions) error {
	img, err := PreviewImage(model, opt)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePreview renders model as in PreviewImage and saves it as a PNG file.
func SavePreview(path string, model []Triangle3, opt PreviewOptions) error {
	img, err := PreviewImage(model, opt)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

func toFauxgl(v r3.Vec) fauxgl.Vector { return fauxgl.V(v.X, v.Y, v.Z) }
