package glsteps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glsteps"
	"github.com/go-theft-auto/glsteps/gltest"
)

func TestTogglePolygonModeTwiceRestores(t *testing.T) {
	s := glsteps.DefaultRenderState()
	require.Equal(t, glsteps.PolygonFill, s.PolygonMode)

	s.TogglePolygonMode()
	assert.Equal(t, glsteps.PolygonLine, s.PolygonMode)
	s.TogglePolygonMode()
	assert.Equal(t, glsteps.PolygonFill, s.PolygonMode)
}

func TestPolygonModeText(t *testing.T) {
	var m glsteps.PolygonMode
	require.NoError(t, m.UnmarshalText([]byte("wireframe")))
	assert.Equal(t, glsteps.PolygonLine, m)

	text, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "line", string(text))

	assert.ErrorIs(t, m.UnmarshalText([]byte("points")), glsteps.ErrInvalidConfig)
}

func TestProcessInput(t *testing.T) {
	w := gltest.NewWindow(0)
	s := glsteps.DefaultRenderState()

	assert.False(t, glsteps.ProcessInput(w, &s).Close)
	assert.Equal(t, glsteps.PolygonFill, s.PolygonMode)

	w.Press(0, glsteps.Key1)
	glsteps.ProcessInput(w, &s)
	assert.Equal(t, glsteps.PolygonLine, s.PolygonMode)

	w.Frame = 1
	w.Press(1, glsteps.Key2)
	glsteps.ProcessInput(w, &s)
	assert.Equal(t, glsteps.PolygonFill, s.PolygonMode)

	w.Frame = 2
	w.Press(2, glsteps.KeyEscape)
	assert.True(t, glsteps.ProcessInput(w, &s).Close)
}
