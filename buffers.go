package glsteps

import "unsafe"

// positionAttrib is the attribute slot the vertex shaders read positions from.
const positionAttrib = 0

// VertexArray owns a vertex-array object and the buffers it references.
type VertexArray struct {
	driver   Driver
	vao, vbo uint32
	ebo      uint32 // 0 when the mesh is not indexed
	count    int32
}

// UploadMesh copies m into new GPU buffers and records the attribute layout
// (3 tightly packed floats at slot 0) in a new vertex array.
func UploadMesh(d Driver, m Mesh) (*VertexArray, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	va := &VertexArray{driver: d, count: m.Count()}

	va.vao = d.GenVertexArray()
	d.BindVertexArray(va.vao)

	va.vbo = d.GenBuffer()
	d.BindArrayBuffer(va.vbo)
	d.BufferVertices(m.Floats())

	// The element buffer binding is recorded in the bound VAO.
	if m.Indexed() {
		va.ebo = d.GenBuffer()
		d.BindElementBuffer(va.ebo)
		d.BufferIndices(m.Indices)
	}

	stride := int32(unsafe.Sizeof(m.Vertices[0]))
	d.VertexAttribPointer(positionAttrib, 3, stride, 0)
	d.EnableVertexAttribArray(positionAttrib)

	d.BindVertexArray(0)
	return va, nil
}

// Count returns the number of elements drawn from this array.
func (va *VertexArray) Count() int32 { return va.count }

// Indexed reports whether draws go through the element buffer.
func (va *VertexArray) Indexed() bool { return va.ebo != 0 }

// Handle returns the vertex-array object handle.
func (va *VertexArray) Handle() uint32 { return va.vao }

// Draw binds the array and issues one draw call for all its elements.
func (va *VertexArray) Draw() {
	d := va.driver
	d.BindVertexArray(va.vao)
	if va.Indexed() {
		d.DrawElements(va.count)
	} else {
		d.DrawArrays(0, va.count)
	}
}

// Delete releases the vertex array and its buffers. Safe to call more than once.
func (va *VertexArray) Delete() {
	d := va.driver
	if va.ebo != 0 {
		d.DeleteBuffer(va.ebo)
		va.ebo = 0
	}
	if va.vbo != 0 {
		d.DeleteBuffer(va.vbo)
		va.vbo = 0
	}
	if va.vao != 0 {
		d.DeleteVertexArray(va.vao)
		va.vao = 0
	}
}
