// Package gltest provides in-memory doubles for glsteps.Driver and
// glsteps.Window, so rendering logic can be tested without a GPU.
package gltest

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/glsteps"
)

// Draw records one draw call and the state bound when it was issued.
type Draw struct {
	Program     uint32
	VertexArray uint32
	Indexed     bool
	Count       int32
	PolygonMode glsteps.PolygonMode
}

type shaderObj struct {
	stage    glsteps.ShaderStage
	source   string
	compiled bool
	log      string
	deleted  bool
}

type programObj struct {
	shaders []uint32
	linked  bool
	log     string
	deleted bool
}

type vertexArrayObj struct {
	arrayBuffer   uint32
	elementBuffer uint32
	attribs       map[uint32]bool
	deleted       bool
}

// Driver is a recording fake of the graphics driver.
//
// A shader compiles when its source declares "void main" and contains no
// "#error" line. A program links when it has exactly one compiled vertex
// shader and one compiled fragment shader attached.
type Driver struct {
	next uint32

	shaders  map[uint32]*shaderObj
	programs map[uint32]*programObj
	arrays   map[uint32]*vertexArrayObj
	buffers  map[uint32]bool
	vertices map[uint32][]float32
	indices  map[uint32][]uint32
	deleted  map[uint32]bool

	program     uint32
	vao         uint32
	arrayBuffer uint32

	Mode       glsteps.PolygonMode
	ModeCalls  int
	Background [4]float32
	Clears     int
	Viewports  [][4]int32
	Draws      []Draw
}

var _ glsteps.Driver = (*Driver)(nil)

// NewDriver returns an empty fake driver.
func NewDriver() *Driver {
	return &Driver{
		shaders:  make(map[uint32]*shaderObj),
		programs: make(map[uint32]*programObj),
		arrays:   make(map[uint32]*vertexArrayObj),
		buffers:  make(map[uint32]bool),
		vertices: make(map[uint32][]float32),
		indices:  make(map[uint32][]uint32),
		deleted:  make(map[uint32]bool),
	}
}

func (d *Driver) handle() uint32 {
	d.next++
	return d.next
}

func (d *Driver) CreateShader(stage glsteps.ShaderStage) uint32 {
	h := d.handle()
	d.shaders[h] = &shaderObj{stage: stage}
	return h
}

func (d *Driver) ShaderSource(shader uint32, source string) {
	if s, ok := d.shaders[shader]; ok {
		s.source = source
	}
}

func (d *Driver) CompileShader(shader uint32) {
	s, ok := d.shaders[shader]
	if !ok {
		return
	}
	switch {
	case strings.Contains(s.source, "#error"):
		s.compiled = false
		s.log = "0:1(1): error: #error directive"
	case !strings.Contains(s.source, "void main"):
		s.compiled = false
		s.log = "0:1(1): error: no function main() defined"
	default:
		s.compiled = true
		s.log = ""
	}
}

func (d *Driver) ShaderCompiled(shader uint32) bool {
	s, ok := d.shaders[shader]
	return ok && s.compiled
}

func (d *Driver) ShaderInfoLog(shader uint32) string {
	if s, ok := d.shaders[shader]; ok {
		return s.log
	}
	return ""
}

func (d *Driver) DeleteShader(shader uint32) {
	if s, ok := d.shaders[shader]; ok {
		s.deleted = true
	}
}

func (d *Driver) CreateProgram() uint32 {
	h := d.handle()
	d.programs[h] = &programObj{}
	return h
}

func (d *Driver) AttachShader(program, shader uint32) {
	if p, ok := d.programs[program]; ok {
		p.shaders = append(p.shaders, shader)
	}
}

func (d *Driver) LinkProgram(program uint32) {
	p, ok := d.programs[program]
	if !ok {
		return
	}
	var vertex, fragment int
	for _, h := range p.shaders {
		s, ok := d.shaders[h]
		if !ok || s.deleted || !s.compiled {
			p.linked = false
			p.log = fmt.Sprintf("error: shader %d is not compiled", h)
			return
		}
		switch s.stage {
		case glsteps.VertexStage:
			vertex++
		case glsteps.FragmentStage:
			fragment++
		}
	}
	if vertex != 1 || fragment != 1 {
		p.linked = false
		p.log = fmt.Sprintf("error: need one vertex and one fragment shader, have %d and %d", vertex, fragment)
		return
	}
	p.linked = true
	p.log = ""
}

func (d *Driver) ProgramLinked(program uint32) bool {
	p, ok := d.programs[program]
	return ok && p.linked
}

func (d *Driver) ProgramInfoLog(program uint32) string {
	if p, ok := d.programs[program]; ok {
		return p.log
	}
	return ""
}

func (d *Driver) UseProgram(program uint32) {
	d.program = program
}

func (d *Driver) DeleteProgram(program uint32) {
	if p, ok := d.programs[program]; ok {
		p.deleted = true
	}
}

func (d *Driver) GenVertexArray() uint32 {
	h := d.handle()
	d.arrays[h] = &vertexArrayObj{attribs: make(map[uint32]bool)}
	return h
}

func (d *Driver) BindVertexArray(vao uint32) {
	d.vao = vao
}

func (d *Driver) DeleteVertexArray(vao uint32) {
	if a, ok := d.arrays[vao]; ok {
		a.deleted = true
	}
}

func (d *Driver) GenBuffer() uint32 {
	h := d.handle()
	d.buffers[h] = true
	return h
}

func (d *Driver) BindArrayBuffer(buf uint32) {
	d.arrayBuffer = buf
	if a, ok := d.arrays[d.vao]; ok {
		a.arrayBuffer = buf
	}
}

func (d *Driver) BindElementBuffer(buf uint32) {
	if a, ok := d.arrays[d.vao]; ok {
		a.elementBuffer = buf
	}
}

func (d *Driver) BufferVertices(data []float32) {
	d.vertices[d.arrayBuffer] = append([]float32(nil), data...)
}

func (d *Driver) BufferIndices(data []uint32) {
	if a, ok := d.arrays[d.vao]; ok {
		d.indices[a.elementBuffer] = append([]uint32(nil), data...)
	}
}

func (d *Driver) DeleteBuffer(buf uint32) {
	d.deleted[buf] = true
}

func (d *Driver) VertexAttribPointer(index uint32, size, stride int32, offset uintptr) {}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	if a, ok := d.arrays[d.vao]; ok {
		a.attribs[index] = true
	}
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.Viewports = append(d.Viewports, [4]int32{x, y, width, height})
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.Background = [4]float32{r, g, b, a}
}

func (d *Driver) Clear() {
	d.Clears++
}

func (d *Driver) PolygonMode(mode glsteps.PolygonMode) {
	d.Mode = mode
	d.ModeCalls++
}

func (d *Driver) DrawArrays(first, count int32) {
	d.Draws = append(d.Draws, Draw{Program: d.program, VertexArray: d.vao, Count: count, PolygonMode: d.Mode})
}

func (d *Driver) DrawElements(count int32) {
	d.Draws = append(d.Draws, Draw{Program: d.program, VertexArray: d.vao, Indexed: true, Count: count, PolygonMode: d.Mode})
}

// Vertices returns the float data uploaded to the array buffer of vao.
func (d *Driver) Vertices(vao uint32) []float32 {
	a, ok := d.arrays[vao]
	if !ok {
		return nil
	}
	return d.vertices[a.arrayBuffer]
}

// Indices returns the index data recorded in the element buffer of vao.
func (d *Driver) Indices(vao uint32) []uint32 {
	a, ok := d.arrays[vao]
	if !ok {
		return nil
	}
	return d.indices[a.elementBuffer]
}

// AttribEnabled reports whether attribute index is enabled on vao.
func (d *Driver) AttribEnabled(vao, index uint32) bool {
	a, ok := d.arrays[vao]
	return ok && a.attribs[index]
}

// Live reports whether handle names an object that was created and not
// deleted.
func (d *Driver) Live(handle uint32) bool {
	if s, ok := d.shaders[handle]; ok {
		return !s.deleted
	}
	if p, ok := d.programs[handle]; ok {
		return !p.deleted
	}
	if a, ok := d.arrays[handle]; ok {
		return !a.deleted
	}
	if _, ok := d.buffers[handle]; ok {
		return !d.deleted[handle]
	}
	return false
}

// LiveObjects counts objects that were created and not deleted.
func (d *Driver) LiveObjects() int {
	n := 0
	for h := uint32(1); h <= d.next; h++ {
		if d.Live(h) {
			n++
		}
	}
	return n
}

// BoundVertexArray returns the vertex array currently bound.
func (d *Driver) BoundVertexArray() uint32 { return d.vao }
