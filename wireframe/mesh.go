// Package wireframe turns the meshes handed to the render collaborator into
// screen-space line segments. Both front-ends draw with it: the window one
// strokes the segments, the terminal one rasterises them into cells.
package wireframe

import (
	"github.com/plus3/grotto/linalg"
)

// Mesh is an edge list over model-space vertices.
type Mesh struct {
	Vertices []linalg.Vec3
	Edges    [][2]int
}

// Cube returns an axis-aligned box centred on the origin with the given
// half-extents.
func Cube(half linalg.Vec3) Mesh {
	x, y, z := half[0], half[1], half[2]
	return Mesh{
		Vertices: []linalg.Vec3{
			{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
			{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}
