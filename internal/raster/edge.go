package raster

// EdgeFunction returns the signed area of the parallelogram spanned by
// (point - v0) and (v1 - v0).
//
// The sign encodes which side of the directed edge v0->v1 the point lies
// on: positive to the left, negative to the right, zero on the edge. It is
// the single primitive the rasterizer uses for both containment testing
// and barycentric weighting; there is no separate point-in-triangle
// routine.
func EdgeFunction(v0, v1, point Vec2) float32 {
	return (point.X-v0.X)*(v1.Y-v0.Y) - (point.Y-v0.Y)*(v1.X-v0.X)
}
