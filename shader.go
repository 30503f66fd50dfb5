package glsteps

import (
	"log/slog"
	"strings"
)

// Shader is a compiled shader object owned by the caller.
type Shader struct {
	driver Driver
	handle uint32
	stage  ShaderStage
	ok     bool
}

// Handle returns the driver handle, or 0 after Delete.
func (s *Shader) Handle() uint32 { return s.handle }

// Stage returns the pipeline stage the shader was compiled for.
func (s *Shader) Stage() ShaderStage { return s.stage }

// OK reports whether the compile-status check succeeded.
func (s *Shader) OK() bool { return s.ok }

// Delete releases the shader object. Safe to call more than once.
func (s *Shader) Delete() {
	if s.handle == 0 {
		return
	}
	s.driver.DeleteShader(s.handle)
	s.handle = 0
}

// Builder compiles shaders and links programs against a Driver.
type Builder struct {
	driver Driver
	logger *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger that receives build diagnostics.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) { b.logger = l }
}

// NewBuilder creates a Builder for d.
func NewBuilder(d Driver, opts ...BuilderOption) *Builder {
	b := &Builder{
		driver: d,
		logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Compile creates a shader object for stage and compiles source into it.
//
// The returned shader is never nil. When compilation fails it is still
// returned, unusable, alongside a *BuildError whose Log is the driver
// diagnostic; the failure is also logged.
func (b *Builder) Compile(stage ShaderStage, source string) (*Shader, error) {
	d := b.driver
	s := &Shader{driver: d, stage: stage}
	s.handle = d.CreateShader(stage)
	d.ShaderSource(s.handle, source)
	d.CompileShader(s.handle)

	ok, log := checkStatus(d, s.handle, CompileStatus)
	if ok && strings.TrimSpace(source) == "" {
		ok, log = false, ErrEmptySource.Error()
	}
	s.ok = ok
	if !ok {
		b.logger.Error(CompileStatus.Label(stage), "shader", s.handle, "log", log)
		return s, &BuildError{Kind: CompileStatus, Stage: stage, Log: log}
	}
	b.logger.Debug("shader compiled", "stage", stage, "shader", s.handle)
	return s, nil
}
