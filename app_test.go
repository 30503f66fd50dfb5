package glsteps_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glsteps"
	"github.com/go-theft-auto/glsteps/gltest"
)

func newTestApp(t *testing.T, lesson string, files map[string]string) (*glsteps.App, *gltest.Driver, glsteps.Config) {
	t.Helper()
	cfg := glsteps.DefaultConfig()
	cfg.Lesson = lesson
	cfg.ShaderDir = writeShaders(t, files)
	d := gltest.NewDriver()
	app := glsteps.NewApp(cfg, d, nopLogger())
	t.Cleanup(func() { _ = app.Close() })
	return app, d, cfg
}

func TestAppTriangleEndToEnd(t *testing.T) {
	cfg := glsteps.DefaultConfig()
	cfg.Lesson = "triangle"
	cfg.ShaderDir = writeShaders(t, allShaders())
	d := gltest.NewDriver()
	logger, buf := testLogger()
	app := glsteps.NewApp(cfg, d, logger)
	defer app.Close()

	require.NoError(t, app.Setup())
	assert.Empty(t, app.BuildErrors())

	w := gltest.NewWindow(5)
	require.NoError(t, app.Run(w))

	assert.Equal(t, glsteps.FrameStats{Frames: 5, DrawCalls: 5}, app.Stats())
	require.Len(t, d.Draws, 5)
	for _, draw := range d.Draws {
		assert.True(t, draw.Indexed)
		assert.EqualValues(t, 3, draw.Count)
	}
	assert.NotContains(t, buf.String(), "ERROR::")
}

func TestAppTwoPrograms(t *testing.T) {
	app, d, _ := newTestApp(t, "two-programs", allShaders())
	require.NoError(t, app.Setup())

	passes := app.Passes()
	require.Len(t, passes, 2)
	assert.NotEqual(t, passes[0].Program.Handle(), passes[1].Program.Handle())

	require.NoError(t, app.Frame())
	require.Len(t, d.Draws, 2)
	assert.Equal(t, passes[0].Program.Handle(), d.Draws[0].Program)
	assert.Equal(t, passes[1].Program.Handle(), d.Draws[1].Program)
}

func TestAppWindowLessonDrawsNothing(t *testing.T) {
	app, d, _ := newTestApp(t, "window", map[string]string{"shader.vert": validVertex})
	require.NoError(t, app.Setup())

	require.NoError(t, app.Frame())
	assert.Empty(t, d.Draws)
	assert.Equal(t, 1, d.Clears)
	assert.Zero(t, d.LiveObjects(), "probe shader is released")
}

func TestAppMissingShaderIsFatal(t *testing.T) {
	files := allShaders()
	delete(files, "shader.frag")
	app, _, _ := newTestApp(t, "triangle", files)
	assert.Error(t, app.Setup())
}

func TestAppBuildFailureContinues(t *testing.T) {
	files := allShaders()
	files["shader.frag"] = brokenFragment
	app, d, _ := newTestApp(t, "rectangle", files)

	require.NoError(t, app.Setup())
	assert.NotEmpty(t, app.BuildErrors())
	require.Len(t, app.Passes(), 1)
	assert.False(t, app.Passes()[0].Program.OK())

	// The unusable program is still drawn with.
	require.NoError(t, app.Frame())
	assert.Len(t, d.Draws, 1)
}

func TestAppStrictBuildFailure(t *testing.T) {
	files := allShaders()
	files["shader_t2.frag"] = brokenFragment
	cfg := glsteps.DefaultConfig()
	cfg.Strict = true
	cfg.ShaderDir = writeShaders(t, files)
	app := glsteps.NewApp(cfg, gltest.NewDriver(), nopLogger())
	defer app.Close()

	err := app.Setup()
	var be *glsteps.BuildError
	assert.ErrorAs(t, err, &be)
}

func TestAppUnknownLesson(t *testing.T) {
	app, _, _ := newTestApp(t, "teapot", allShaders())
	assert.ErrorIs(t, app.Setup(), glsteps.ErrUnknownLesson)
}

func TestAppInputAndFrameLimit(t *testing.T) {
	app, d, _ := newTestApp(t, "rectangle", allShaders())
	require.NoError(t, app.Setup())

	w := gltest.NewWindow(0)
	w.Press(1, glsteps.Key1)
	w.Press(3, glsteps.Key2)
	w.Press(4, glsteps.KeyEscape)
	require.NoError(t, app.Run(w))

	// Escape is seen on frame 4, which is still drawn.
	require.Len(t, d.Draws, 5)
	modes := make([]glsteps.PolygonMode, len(d.Draws))
	for i, draw := range d.Draws {
		modes[i] = draw.PolygonMode
	}
	assert.Equal(t, []glsteps.PolygonMode{
		glsteps.PolygonFill,
		glsteps.PolygonLine,
		glsteps.PolygonLine,
		glsteps.PolygonFill,
		glsteps.PolygonFill,
	}, modes)
}

func TestAppMaxFrames(t *testing.T) {
	cfg := glsteps.DefaultConfig()
	cfg.Lesson = "triangle"
	cfg.MaxFrames = 2
	cfg.ShaderDir = writeShaders(t, allShaders())
	app := glsteps.NewApp(cfg, gltest.NewDriver(), nopLogger())
	defer app.Close()
	require.NoError(t, app.Setup())

	w := gltest.NewWindow(100)
	require.NoError(t, app.Run(w))
	assert.Equal(t, 2, app.Stats().Frames)
}

func TestAppReload(t *testing.T) {
	app, d, cfg := newTestApp(t, "two-programs", allShaders())
	require.NoError(t, app.Setup())
	before := app.Passes()

	// A broken edit keeps the previous program.
	path := filepath.Join(cfg.ShaderDir, "shader_t1.frag")
	require.NoError(t, os.WriteFile(path, []byte(brokenFragment), 0o644))
	assert.Error(t, app.Reload("shader_t1.frag"))
	assert.Equal(t, before[0].Program.Handle(), app.Passes()[0].Program.Handle())
	assert.True(t, d.Live(before[0].Program.Handle()))

	// A fixed edit swaps in a new program and releases the old one.
	require.NoError(t, os.WriteFile(path, []byte(validFragment), 0o644))
	require.NoError(t, app.Reload("shader_t1.frag"))
	after := app.Passes()
	assert.NotEqual(t, before[0].Program.Handle(), after[0].Program.Handle())
	assert.False(t, d.Live(before[0].Program.Handle()))
	assert.Equal(t, before[1].Program.Handle(), after[1].Program.Handle(), "untouched pass is kept")
}

func TestAppCloseReleasesObjects(t *testing.T) {
	cfg := glsteps.DefaultConfig()
	cfg.ShaderDir = writeShaders(t, allShaders())
	d := gltest.NewDriver()
	app := glsteps.NewApp(cfg, d, nopLogger())
	require.NoError(t, app.Setup())
	assert.NotZero(t, d.LiveObjects())

	require.NoError(t, app.Close())
	assert.Zero(t, d.LiveObjects())
}
