// Package rast provides a minimal CPU triangle rasterizer for Go.
//
// # Overview
//
// rast projects a single triangle defined in world space onto a pixel grid
// and produces a flat RGBA float buffer with per-pixel barycentric color
// interpolation. It is a small, deterministic software pipeline intended as
// the CPU counterpart of a GPU renderer: the library computes pixels, a
// presentation layer uploads and displays them.
//
// # Quick Start
//
//	import "github.com/gogpu/rast"
//
//	r, err := rast.New(800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm := r.Render()
//	_ = pm.SavePNG("triangle.png")
//
// # Pipeline
//
// Each Render call runs the same three stages:
//   - Projection: world space -> aspect-corrected NDC -> raster space,
//     origin top-left, y growing downward.
//   - Bounding box: the axis-aligned pixel rectangle around the projected
//     triangle, clamped to the viewport.
//   - Coverage and shading: a signed-area edge function decides containment
//     and supplies the barycentric weights that blend the vertex colors.
//
// The buffer is created fresh per call; pixels the triangle does not cover
// stay transparent black. Rendering is single-threaded and performs no I/O.
//
// # Collaborators
//
// The imageio subpackage converts between the float RGBA representation and
// common file formats. The gpu subpackage owns the device/texture boundary
// for presenting rendered frames.
package rast

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
