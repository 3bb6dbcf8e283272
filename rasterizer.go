package rast

import (
	"errors"
	"fmt"

	"github.com/gogpu/rast/internal/raster"
)

// ErrInvalidViewport is returned when a viewport dimension is not positive.
// The dimensions divide the projection's scale factors, so this class of
// error is rejected up front instead of letting NaNs reach the pixel
// buffer.
var ErrInvalidViewport = errors.New("rast: invalid viewport dimensions")

// Rasterizer renders a single owned triangle into a fresh pixel buffer
// each frame. It holds no other state between Render calls: two Render
// calls with no intervening mutation produce bit-identical buffers.
//
// Rasterizer is NOT safe for concurrent use. The expected pattern is one
// rasterizer per render loop, driven from a single goroutine.
type Rasterizer struct {
	width    int
	height   int
	triangle Triangle
	engine   *raster.Rasterizer
}

// New creates a Rasterizer for the given viewport dimensions, owning the
// default red/green/blue triangle.
//
// Returns ErrInvalidViewport if width or height is not positive.
func New(width, height int) (*Rasterizer, error) {
	engine, err := raster.NewRasterizer(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidViewport, width, height)
	}

	return &Rasterizer{
		width:    width,
		height:   height,
		triangle: DefaultTriangle(),
		engine:   engine,
	}, nil
}

// Width returns the viewport width in pixels.
func (r *Rasterizer) Width() int {
	return r.width
}

// Height returns the viewport height in pixels.
func (r *Rasterizer) Height() int {
	return r.height
}

// Size returns width and height as a convenience.
func (r *Rasterizer) Size() (width, height int) {
	return r.width, r.height
}

// Triangle returns a copy of the owned triangle.
func (r *Rasterizer) Triangle() Triangle {
	return r.triangle
}

// SetTriangle replaces the owned triangle. Call between frames, never
// concurrently with Render.
func (r *Rasterizer) SetTriangle(t Triangle) {
	r.triangle = t
}

// Resize changes the viewport dimensions. The owned triangle is kept.
//
// Returns ErrInvalidViewport if width or height is not positive; on error
// the rasterizer keeps its previous dimensions.
func (r *Rasterizer) Resize(width, height int) error {
	if width == r.width && height == r.height {
		return nil
	}

	engine, err := raster.NewRasterizer(width, height)
	if err != nil {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidViewport, width, height)
	}

	r.width = width
	r.height = height
	r.engine = engine
	return nil
}

// Update advances per-frame state. It currently changes nothing but is
// part of the per-frame contract: callers invoke Update then Render each
// frame, and animation hooks slot in here without changing the call
// pattern.
func (r *Rasterizer) Update() {}

// Render rasterizes the owned triangle and returns the completed pixel
// buffer. The buffer is created fresh on every call and handed to the
// caller; the rasterizer retains no reference to it.
//
// Pixels the triangle does not cover keep their initial transparent-black
// value. A triangle entirely outside the viewport yields an untouched
// buffer.
func (r *Rasterizer) Render() *Pixmap {
	pm := NewPixmap(r.width, r.height)

	r.engine.FillTriangle(&pixmapAdapter{pixmap: pm},
		engineVertex(r.triangle.V0),
		engineVertex(r.triangle.V1),
		engineVertex(r.triangle.V2),
	)

	return pm
}

// pixmapAdapter adapts rast.Pixmap to the raster.Pixmap interface.
type pixmapAdapter struct {
	pixmap *Pixmap
}

func (p *pixmapAdapter) Width() int {
	return p.pixmap.Width()
}

func (p *pixmapAdapter) Height() int {
	return p.pixmap.Height()
}

func (p *pixmapAdapter) SetPixel(x, y int, c raster.RGBA) {
	p.pixmap.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// engineVertex converts a public Vertex to the engine's vertex type.
func engineVertex(v Vertex) raster.Vertex {
	return raster.Vertex{
		Position: raster.Vec3{X: v.Position.X, Y: v.Position.Y, Z: v.Position.Z},
		Color:    raster.Vec3{X: v.Color.X, Y: v.Color.Y, Z: v.Color.Z},
	}
}
