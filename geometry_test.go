package glsteps_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glsteps"
	"github.com/go-theft-auto/glsteps/gltest"
)

func TestPresetMeshesAreValid(t *testing.T) {
	presets := map[string]glsteps.Mesh{
		"triangle":  glsteps.TriangleMesh,
		"rectangle": glsteps.RectangleMesh,
		"left":      glsteps.LeftTriangleMesh,
		"right":     glsteps.RightTriangleMesh,
	}
	for name, m := range presets {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, m.Validate())
			for _, idx := range m.Indices {
				assert.Less(t, int(idx), len(m.Vertices))
			}
		})
	}
	assert.EqualValues(t, 3, glsteps.TriangleMesh.Count())
	assert.EqualValues(t, 6, glsteps.RectangleMesh.Count())
}

func TestMeshValidate(t *testing.T) {
	tri := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	tests := []struct {
		name string
		mesh glsteps.Mesh
		ok   bool
	}{
		{"empty", glsteps.Mesh{}, false},
		{"no indices", glsteps.Mesh{Vertices: tri}, true},
		{"index out of range", glsteps.Mesh{Vertices: tri, Indices: []uint32{0, 1, 3}}, false},
		{"partial triangle", glsteps.Mesh{Vertices: tri, Indices: []uint32{0, 1}}, false},
		{"two vertices", glsteps.Mesh{Vertices: tri[:2]}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, glsteps.ErrInvalidMesh)
			}
		})
	}
}

func TestMeshFloats(t *testing.T) {
	got := glsteps.TriangleMesh.Floats()
	assert.Equal(t, []float32{
		-1, -1, 0,
		1, -1, 0,
		0, 1, 0,
	}, got)
}

func TestUploadMesh(t *testing.T) {
	d := gltest.NewDriver()

	va, err := glsteps.UploadMesh(d, glsteps.RectangleMesh)
	require.NoError(t, err)
	assert.True(t, va.Indexed())
	assert.EqualValues(t, 6, va.Count())
	assert.Equal(t, glsteps.RectangleMesh.Floats(), d.Vertices(va.Handle()))
	assert.Equal(t, glsteps.RectangleMesh.Indices, d.Indices(va.Handle()))
	assert.True(t, d.AttribEnabled(va.Handle(), 0))
	assert.Zero(t, d.BoundVertexArray(), "vertex array is unbound after setup")

	before := d.LiveObjects()
	va.Delete()
	va.Delete()
	assert.Equal(t, before-3, d.LiveObjects())
}

func TestUploadMeshWithoutIndices(t *testing.T) {
	d := gltest.NewDriver()
	m := glsteps.Mesh{Vertices: glsteps.TriangleMesh.Vertices}

	va, err := glsteps.UploadMesh(d, m)
	require.NoError(t, err)
	assert.False(t, va.Indexed())

	va.Draw()
	require.Len(t, d.Draws, 1)
	assert.False(t, d.Draws[0].Indexed)
	assert.EqualValues(t, 3, d.Draws[0].Count)
}

func TestUploadMeshRejectsInvalid(t *testing.T) {
	d := gltest.NewDriver()
	_, err := glsteps.UploadMesh(d, glsteps.Mesh{})
	assert.ErrorIs(t, err, glsteps.ErrInvalidMesh)
	assert.Zero(t, d.LiveObjects())
}
