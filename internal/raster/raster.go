package raster

import "github.com/chewxy/math32"

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float32
}

// Pixmap is an interface for writing pixels (avoids import cycle).
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGBA)
}

// Vertex pairs a world-space position with an RGB color.
type Vertex struct {
	Position Vec3
	Color    Vec3
}

// Rasterizer fills triangles on a fixed viewport.
type Rasterizer struct {
	vp Viewport
}

// NewRasterizer creates a rasterizer for the given viewport dimensions.
// Returns ErrInvalidViewport if either dimension is not positive.
func NewRasterizer(width, height int) (*Rasterizer, error) {
	vp, err := NewViewport(width, height)
	if err != nil {
		return nil, err
	}
	return &Rasterizer{vp: vp}, nil
}

// Viewport returns the rasterizer's viewport.
func (r *Rasterizer) Viewport() Viewport { return r.vp }

// FillTriangle rasterizes one triangle onto a pixmap.
//
// The three vertices are projected to raster space, an axis-aligned
// bounding box over the projected points is clamped to the viewport, and
// every integer pixel inside the box is tested against the three edges in
// cyclic order. A pixel is covered iff all three edge values are >= 0, so
// points exactly on an edge or vertex count as inside. Covered pixels get
// the barycentric blend of the vertex colors with alpha 1; everything else
// is left untouched.
//
// The sample point for pixel (i, j) is exactly (i, j), without the
// half-pixel offset the projection itself applies. Changing that would
// shift the rendered triangle by half a pixel and invalidate pinned
// outputs.
func (r *Rasterizer) FillTriangle(pm Pixmap, v0, v1, v2 Vertex) {
	p0 := r.vp.ProjectWorldToRaster(v0.Position)
	p1 := r.vp.ProjectWorldToRaster(v1.Position)
	p2 := r.vp.ProjectWorldToRaster(v2.Position)

	// Bounding box over the projected points, clamped to the viewport.
	// Truncation to int happens after the min/max, matching the projection's
	// raster-space convention.
	xMin := int(math32.Max(math32.Min(p0.X, math32.Min(p1.X, p2.X)), 0))
	xMax := int(math32.Min(math32.Max(p0.X, math32.Max(p1.X, p2.X)), float32(r.vp.width-1)))
	yMin := int(math32.Max(math32.Min(p0.Y, math32.Min(p1.Y, p2.Y)), 0))
	yMax := int(math32.Min(math32.Max(p0.Y, math32.Max(p1.Y, p2.Y)), float32(r.vp.height-1)))

	for j := yMin; j <= yMax; j++ {
		for i := xMin; i <= xMax; i++ {
			sample := Vec2{X: float32(i), Y: float32(j)}

			// Unnormalized barycentric weights, one per opposite vertex.
			alpha0 := EdgeFunction(p1, p2, sample)
			alpha1 := EdgeFunction(p2, p0, sample)
			alpha2 := EdgeFunction(p0, p1, sample)

			if alpha0 < 0 || alpha1 < 0 || alpha2 < 0 {
				continue
			}

			total := alpha0 + alpha1 + alpha2
			if total != 0 {
				alpha0 /= total
				alpha1 /= total
				alpha2 /= total
			} else {
				// Degenerate triangle: all projected points collinear or
				// coincident. Uniform weights keep the output defined.
				alpha0 = 1.0 / 3.0
				alpha1 = 1.0 / 3.0
				alpha2 = 1.0 / 3.0
			}

			pm.SetPixel(i, j, RGBA{
				R: alpha0*v0.Color.X + alpha1*v1.Color.X + alpha2*v2.Color.X,
				G: alpha0*v0.Color.Y + alpha1*v1.Color.Y + alpha2*v2.Color.Y,
				B: alpha0*v0.Color.Z + alpha1*v1.Color.Z + alpha2*v2.Color.Z,
				A: 1,
			})
		}
	}
}
