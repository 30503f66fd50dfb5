// Package opengl provides the OpenGL 4.1 core driver and the GLFW window
// for the glsteps package.
package opengl

import (
	"image"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glsteps"
)

// Driver implements glsteps.Driver on the current OpenGL context.
// gl.Init must have succeeded before any method is called; OpenWindow
// takes care of that.
type Driver struct{}

var _ glsteps.Driver = (*Driver)(nil)

// NewDriver returns a driver for the context current on the calling thread.
func NewDriver() *Driver {
	return &Driver{}
}

// Version returns the GL_VERSION string of the current context.
func (d *Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func shaderType(stage glsteps.ShaderStage) uint32 {
	if stage == glsteps.FragmentStage {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (d *Driver) CreateShader(stage glsteps.ShaderStage) uint32 {
	return gl.CreateShader(shaderType(stage))
}

func (d *Driver) ShaderSource(shader uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (d *Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *Driver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns the whole info log, sized by INFO_LOG_LENGTH.
func (d *Driver) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Driver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Driver) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Driver) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Driver) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (d *Driver) BindArrayBuffer(buf uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
}

func (d *Driver) BindElementBuffer(buf uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf)
}

func (d *Driver) BufferVertices(data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Driver) BufferIndices(data []uint32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Driver) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (d *Driver) VertexAttribPointer(index uint32, size, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Driver) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// PolygonMode sets the mode for both faces; core profiles reject anything else.
func (d *Driver) PolygonMode(mode glsteps.PolygonMode) {
	if mode == glsteps.PolygonLine {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (d *Driver) DrawArrays(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// DrawElements draws count uint32 indices from the bound element buffer.
func (d *Driver) DrawElements(count int32) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_INT, 0)
}

// ReadFramebuffer reads the color buffer into an image with the origin at
// the top left.
func (d *Driver) ReadFramebuffer(width, height int) *image.RGBA {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return img
}
