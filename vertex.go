package rast

// Vertex is a single triangle corner: a world-space position and an RGB
// color with unit-range components. The z position is carried for future
// use; the current projection ignores it.
type Vertex struct {
	Position Vec3
	Color    Vec3
}

// Triangle holds exactly three vertices in a fixed winding order.
// The Rasterizer owns its triangle and is its sole mutator.
type Triangle struct {
	V0, V1, V2 Vertex
}

// DefaultTriangle returns the built-in triangle every new Rasterizer
// starts with: a unit right triangle with red, green, and blue corners.
func DefaultTriangle() Triangle {
	return Triangle{
		V0: Vertex{Position: V3(0, 0, 0), Color: V3(1, 0, 0)},
		V1: Vertex{Position: V3(1, 0, 0), Color: V3(0, 1, 0)},
		V2: Vertex{Position: V3(0, 1, 0), Color: V3(0, 0, 1)},
	}
}
