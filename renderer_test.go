package glsteps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glsteps"
	"github.com/go-theft-auto/glsteps/gltest"
)

func buildPass(t *testing.T, d *gltest.Driver, name string, m glsteps.Mesh) glsteps.Pass {
	t.Helper()
	b := glsteps.NewBuilder(d, glsteps.WithLogger(nopLogger()))
	p, err := b.Build(validVertex, validFragment)
	require.NoError(t, err)
	va, err := glsteps.UploadMesh(d, m)
	require.NoError(t, err)
	return glsteps.Pass{Name: name, Program: p, Mesh: va}
}

func TestRendererFrame(t *testing.T) {
	d := gltest.NewDriver()
	left := buildPass(t, d, "left", glsteps.LeftTriangleMesh)
	right := buildPass(t, d, "right", glsteps.RightTriangleMesh)

	r := glsteps.NewRenderer(d)
	state := glsteps.DefaultRenderState()
	r.Frame(state, []glsteps.Pass{left, right})

	assert.Equal(t, 1, d.Clears)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1.0}, d.Background)
	require.Len(t, d.Draws, 2)
	assert.Equal(t, left.Program.Handle(), d.Draws[0].Program)
	assert.Equal(t, left.Mesh.Handle(), d.Draws[0].VertexArray)
	assert.Equal(t, right.Program.Handle(), d.Draws[1].Program)
	assert.True(t, d.Draws[1].Indexed)
	assert.EqualValues(t, 3, d.Draws[1].Count)

	assert.Equal(t, glsteps.FrameStats{Frames: 1, DrawCalls: 2}, r.Stats())
}

func TestRendererAppliesPolygonModeOnChange(t *testing.T) {
	d := gltest.NewDriver()
	pass := buildPass(t, d, "rect", glsteps.RectangleMesh)
	r := glsteps.NewRenderer(d)
	state := glsteps.DefaultRenderState()

	r.Frame(state, []glsteps.Pass{pass})
	r.Frame(state, []glsteps.Pass{pass})
	assert.Equal(t, 1, d.ModeCalls)

	state.TogglePolygonMode()
	r.Frame(state, []glsteps.Pass{pass})
	assert.Equal(t, 2, d.ModeCalls)
	assert.Equal(t, glsteps.PolygonLine, d.Draws[2].PolygonMode)

	state.TogglePolygonMode()
	r.Frame(state, []glsteps.Pass{pass})
	assert.Equal(t, glsteps.PolygonFill, d.Mode)
}

func TestRendererResize(t *testing.T) {
	d := gltest.NewDriver()
	glsteps.NewRenderer(d).Resize(1024, 768)
	assert.Equal(t, [][4]int32{{0, 0, 1024, 768}}, d.Viewports)
}

func TestRunStopsWhenWindowCloses(t *testing.T) {
	w := gltest.NewWindow(3)
	frames := 0
	err := glsteps.Run(w, func() error {
		frames++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, frames)
	assert.Equal(t, 3, w.Swaps)
	assert.Equal(t, 3, w.Polls)
}

func TestRunReturnsFrameError(t *testing.T) {
	w := gltest.NewWindow(10)
	boom := assert.AnError
	err := glsteps.Run(w, func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, w.Swaps)
}
