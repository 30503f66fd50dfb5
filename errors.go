package glsteps

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySource   = errors.New("empty shader source")
	ErrUnknownLesson = errors.New("unknown lesson")
	ErrInvalidMesh   = errors.New("invalid mesh")
	ErrInvalidConfig = errors.New("invalid config")
)

// BuildError reports a failed compile or link step.
// Log holds the driver's diagnostic text, never empty.
type BuildError struct {
	Kind  StatusKind
	Stage ShaderStage // only meaningful for CompileStatus
	Log   string
}

func (e *BuildError) Error() string {
	if e.Kind == CompileStatus {
		return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
	}
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}
