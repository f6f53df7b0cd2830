package assets

import "github.com/go-gl/mathgl/mgl32"

// NewPlane returns a square in the XZ plane centered on the origin, facing +Y.
func NewPlane(size float32) *Mesh {
	h := size / 2
	return &Mesh{
		Name: "Plane",
		Vertices: []mgl32.Vec3{
			{-h, 0, h},
			{h, 0, h},
			{h, 0, -h},
			{-h, 0, -h},
		},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
	}
}

// NewCube returns an axis-aligned cube centered on the origin.
func NewCube(size float32) *Mesh {
	h := size / 2
	v := []mgl32.Vec3{
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
	}
	quads := [][4]uint16{
		{0, 1, 2, 3}, // +Z
		{5, 4, 7, 6}, // -Z
		{4, 0, 3, 7}, // -X
		{1, 5, 6, 2}, // +X
		{3, 2, 6, 7}, // +Y
		{4, 5, 1, 0}, // -Y
	}
	indices := make([]uint16, 0, len(quads)*6)
	for _, q := range quads {
		indices = append(indices, q[0], q[1], q[2], q[0], q[2], q[3])
	}
	return &Mesh{Name: "Cube", Vertices: v, Indices: indices}
}
