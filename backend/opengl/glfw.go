package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glsteps"
)

// Window owns the GLFW window and the OpenGL context current on it.
// Create it on the main thread, with runtime.LockOSThread in effect.
type Window struct {
	window   *glfw.Window
	onResize func(width, height int)
}

var _ glsteps.Window = (*Window)(nil)

// OpenWindow initializes GLFW, creates a window with a 4.1 core context,
// makes the context current and loads the GL function pointers.
func OpenWindow(cfg glsteps.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{window: win}
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	return w, nil
}

// OnResize registers fn to run whenever the framebuffer size changes.
// It fires once immediately with the current size.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
	if fn != nil {
		fn(w.window.GetFramebufferSize())
	}
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// FramebufferSize returns the framebuffer size in pixels, which can differ
// from the window size on high-DPI displays.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Pressed reports whether key is held down.
func (w *Window) Pressed(key glsteps.Key) bool {
	gk, ok := glfwKey(key)
	if !ok {
		return false
	}
	return w.window.GetKey(gk) == glfw.Press
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.window.Destroy()
	glfw.Terminate()
}

// glfwKey maps glsteps keys to GLFW keys.
func glfwKey(key glsteps.Key) (glfw.Key, bool) {
	switch key {
	case glsteps.KeyEscape:
		return glfw.KeyEscape, true
	case glsteps.Key1:
		return glfw.Key1, true
	case glsteps.Key2:
		return glfw.Key2, true
	default:
		return glfw.KeyUnknown, false
	}
}
