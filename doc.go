/*
Package glsteps is a minimal OpenGL bring-up pipeline: shader source
loading, shader compilation and program linking with status checks, static
vertex buffer setup and a blocking render loop.

The package talks to the graphics API only through the Driver interface.
backend/opengl implements it on go-gl and also provides the GLFW window;
gltest provides a recording fake for tests.

# Quick Start

	window, _ := opengl.OpenWindow(cfg.Window)
	defer window.Close()

	app := glsteps.NewApp(cfg, opengl.NewDriver(), nil)
	defer app.Close()
	window.OnResize(app.Resize)

	if err := app.Setup(); err != nil {
	    return err
	}
	return app.Run(window)

# Lessons

The sequence is split into lessons, selected with Config.Lesson:

	window          clear only; compiles shader.vert as a probe
	triangle        one triangle, shader.vert + shader.frag
	rectangle       indexed quad from 4 vertices and 6 indices
	two-programs    two triangles, shader_t1.frag and shader_t2.frag

# Keys

	Escape  close the window
	1       wireframe rasterization
	2       filled rasterization

# Build Failures

Compile and link failures never abort. The failure is logged with a fixed
label such as

	ERROR::SHADER::VERTEX::COMPILATION_FAILED
	ERROR::SHADER::PROGRAM::LINKING_FAILED

and the caller gets the unusable shader or program back together with a
*BuildError carrying the driver's info log. Set Config.Strict to make the
App refuse to start instead.

# Hot Reload

With Config.Watch set, the App watches the lesson's shader files and
rebuilds affected programs between frames. A rebuild that fails keeps the
previous program.
*/
package glsteps
