// Package raster implements the projection and triangle-fill engine.
//
// The package works on small value types of its own (Vec2, Vec3, RGBA)
// and writes through the Pixmap interface, keeping it free of dependencies
// on the public API package. All arithmetic is single-precision float32.
package raster

import "errors"

// ErrInvalidViewport is returned when a viewport dimension is not positive.
// Both dimensions act as divisors in the projection, so a zero value would
// otherwise put NaN or Inf into every projected coordinate.
var ErrInvalidViewport = errors.New("raster: invalid viewport dimensions")

// Vec2 is a raster-space point: origin top-left, y increasing downward.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a world-space point. Z is carried but unused by the projection.
type Vec3 struct {
	X, Y, Z float32
}

// Viewport is the target pixel grid. Both dimensions are positive.
type Viewport struct {
	width  int
	height int
}

// NewViewport creates a viewport, validating that both dimensions are
// positive.
func NewViewport(width, height int) (Viewport, error) {
	if width <= 0 || height <= 0 {
		return Viewport{}, ErrInvalidViewport
	}
	return Viewport{width: width, height: height}, nil
}

// Width returns the viewport width in pixels.
func (v Viewport) Width() int { return v.width }

// Height returns the viewport height in pixels.
func (v Viewport) Height() int { return v.height }

// ProjectWorldToRaster maps a world-space point to raster space.
//
// The input x is divided by the aspect ratio, giving aspect-corrected NDC,
// then both axes are scaled to the pixel grid. The y axis is inverted
// because raster y grows downward while world y grows upward, and both
// axes subtract 0.5 so that integral world positions land on pixel centers.
//
// Pure function of (point, viewport); the viewport invariant guarantees
// the divisions are well defined.
func (v Viewport) ProjectWorldToRaster(p Vec3) Vec2 {
	aspect := float32(v.width) / float32(v.height)

	ndcX := p.X / aspect
	ndcY := p.Y

	xScale := 2 / float32(v.width)
	yScale := 2 / float32(v.height)

	return Vec2{
		X: (ndcX+1)/xScale - 0.5,
		Y: (1-ndcY)/yScale - 0.5,
	}
}
