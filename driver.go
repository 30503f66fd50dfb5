package glsteps

// ShaderStage identifies the pipeline stage a shader object is compiled for.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

// String returns the upper-case stage name used in diagnostic labels.
func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "VERTEX"
	case FragmentStage:
		return "FRAGMENT"
	default:
		return "UNKNOWN"
	}
}

// Driver is the subset of the graphics API the package calls into.
// Handles are opaque driver identifiers; zero is never a valid handle.
//
// backend/opengl provides the OpenGL implementation and gltest a recording
// fake. All methods must be called from the thread that owns the context.
type Driver interface {
	// Shaders
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// Programs
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// Buffers and vertex arrays
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindArrayBuffer(buf uint32)
	BindElementBuffer(buf uint32)
	BufferVertices(data []float32)
	BufferIndices(data []uint32)
	DeleteBuffer(buf uint32)
	VertexAttribPointer(index uint32, size, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	// Frame
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	PolygonMode(mode PolygonMode)
	DrawArrays(first, count int32)
	DrawElements(count int32)
}
