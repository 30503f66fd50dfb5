package glsteps

import "errors"

// Program is a linked shader program owned by the caller.
type Program struct {
	driver Driver
	handle uint32
	ok     bool
}

// Handle returns the driver handle, or 0 after Delete.
func (p *Program) Handle() uint32 { return p.handle }

// OK reports whether the link-status check succeeded.
func (p *Program) OK() bool { return p.ok }

// Use binds the program for subsequent draw calls.
func (p *Program) Use() {
	p.driver.UseProgram(p.handle)
}

// Delete releases the program object. Safe to call more than once.
func (p *Program) Delete() {
	if p.handle == 0 {
		return
	}
	p.driver.DeleteProgram(p.handle)
	p.handle = 0
}

// Link creates a program, attaches shaders and links it.
//
// The shaders are released once the link has been attempted; the program
// keeps what it needs. Like Compile, a failed link returns the unusable
// program together with a *BuildError.
func (b *Builder) Link(shaders ...*Shader) (*Program, error) {
	d := b.driver
	p := &Program{driver: d}
	p.handle = d.CreateProgram()
	for _, s := range shaders {
		d.AttachShader(p.handle, s.handle)
	}
	d.LinkProgram(p.handle)

	for _, s := range shaders {
		s.Delete()
	}

	ok, log := checkStatus(d, p.handle, LinkStatus)
	p.ok = ok
	if !ok {
		b.logger.Error(LinkStatus.Label(0), "program", p.handle, "log", log)
		return p, &BuildError{Kind: LinkStatus, Log: log}
	}
	b.logger.Debug("program linked", "program", p.handle, "shaders", len(shaders))
	return p, nil
}

// Build compiles a vertex and a fragment shader and links them.
// Every failed step is reported in the joined error.
func (b *Builder) Build(vertexSource, fragmentSource string) (*Program, error) {
	vs, vErr := b.Compile(VertexStage, vertexSource)
	fs, fErr := b.Compile(FragmentStage, fragmentSource)
	p, lErr := b.Link(vs, fs)
	return p, errors.Join(vErr, fErr, lErr)
}
