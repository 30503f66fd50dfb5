package glsteps

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PolygonMode selects how triangles are rasterized.
type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
)

func (m PolygonMode) String() string {
	switch m {
	case PolygonFill:
		return "fill"
	case PolygonLine:
		return "line"
	default:
		return fmt.Sprintf("PolygonMode(%d)", int(m))
	}
}

// Toggle returns the other mode.
func (m PolygonMode) Toggle() PolygonMode {
	if m == PolygonLine {
		return PolygonFill
	}
	return PolygonLine
}

// MarshalText implements encoding.TextMarshaler.
func (m PolygonMode) MarshalText() ([]byte, error) {
	switch m {
	case PolygonFill, PolygonLine:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("%w: polygon mode %d", ErrInvalidConfig, int(m))
}

// UnmarshalText implements encoding.TextUnmarshaler.
// "wireframe" is accepted as an alias for "line".
func (m *PolygonMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "fill":
		*m = PolygonFill
	case "line", "wireframe":
		*m = PolygonLine
	default:
		return fmt.Errorf("%w: polygon mode %q", ErrInvalidConfig, text)
	}
	return nil
}

// DefaultClearColor is the background every lesson clears to.
var DefaultClearColor = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}

// RenderState is the rasterizer state a frame is drawn with.
// It is passed to Renderer.Frame explicitly instead of living in the context.
type RenderState struct {
	PolygonMode PolygonMode
	ClearColor  mgl32.Vec4
}

// DefaultRenderState returns filled polygons over DefaultClearColor.
func DefaultRenderState() RenderState {
	return RenderState{
		PolygonMode: PolygonFill,
		ClearColor:  DefaultClearColor,
	}
}

// TogglePolygonMode flips between filled and wireframe rendering.
func (s *RenderState) TogglePolygonMode() {
	s.PolygonMode = s.PolygonMode.Toggle()
}
