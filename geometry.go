package glsteps

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is static triangle geometry: positions plus optional indices.
type Mesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint32
}

// Preset meshes. Treat them as read-only.
var (
	// TriangleMesh covers the whole viewport.
	TriangleMesh = Mesh{
		Vertices: []mgl32.Vec3{
			{-1.0, -1.0, 0.0},
			{1.0, -1.0, 0.0},
			{0.0, 1.0, 0.0},
		},
		Indices: []uint32{0, 1, 2},
	}

	// RectangleMesh is a quad built from two triangles sharing a diagonal.
	RectangleMesh = Mesh{
		Vertices: []mgl32.Vec3{
			{0.5, 0.5, 0.0},   // top right
			{0.5, -0.5, 0.0},  // bottom right
			{-0.5, -0.5, 0.0}, // bottom left
			{-0.5, 0.5, 0.0},  // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
	}

	LeftTriangleMesh = Mesh{
		Vertices: []mgl32.Vec3{
			{-0.9, -0.5, 0.0},
			{0.0, -0.5, 0.0},
			{-0.45, 0.5, 0.0},
		},
		Indices: []uint32{0, 1, 2},
	}

	RightTriangleMesh = Mesh{
		Vertices: []mgl32.Vec3{
			{0.0, -0.5, 0.0},
			{0.9, -0.5, 0.0},
			{0.45, 0.5, 0.0},
		},
		Indices: []uint32{0, 1, 2},
	}
)

// Indexed reports whether the mesh draws through an element buffer.
func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// Count returns the number of elements a draw call covers.
func (m Mesh) Count() int32 {
	if m.Indexed() {
		return int32(len(m.Indices))
	}
	return int32(len(m.Vertices))
}

// Floats returns the positions as tightly packed xyz floats.
func (m Mesh) Floats() []float32 {
	out := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// Validate checks that the mesh can be drawn as a triangle list.
func (m Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalidMesh)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: index %d at position %d out of range (%d vertices)",
				ErrInvalidMesh, idx, i, len(m.Vertices))
		}
	}
	if m.Count()%3 != 0 {
		return fmt.Errorf("%w: %d elements is not a whole number of triangles", ErrInvalidMesh, m.Count())
	}
	return nil
}
