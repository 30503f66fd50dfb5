package glsteps

// Pass is one program/vertex-array pair drawn each frame.
type Pass struct {
	Name    string
	Program *Program
	Mesh    *VertexArray
}

// FrameStats counts work submitted by a Renderer.
type FrameStats struct {
	Frames    int
	DrawCalls int
}

// Renderer clears the framebuffer and draws passes.
type Renderer struct {
	driver Driver

	applied    PolygonMode
	hasApplied bool

	stats FrameStats
}

// NewRenderer creates a Renderer drawing through d.
func NewRenderer(d Driver) *Renderer {
	return &Renderer{driver: d}
}

// Frame draws one frame: it applies state, clears the color buffer and
// issues one draw call per pass, in order.
//
// The polygon mode is only submitted to the driver when it differs from the
// mode applied by the previous frame.
func (r *Renderer) Frame(state RenderState, passes []Pass) {
	d := r.driver

	if !r.hasApplied || r.applied != state.PolygonMode {
		d.PolygonMode(state.PolygonMode)
		r.applied = state.PolygonMode
		r.hasApplied = true
	}

	c := state.ClearColor
	d.ClearColor(c[0], c[1], c[2], c[3])
	d.Clear()

	for _, p := range passes {
		if p.Mesh == nil {
			continue
		}
		// A failed program is still bound; the driver draws nothing useful.
		if p.Program != nil {
			p.Program.Use()
		}
		p.Mesh.Draw()
		r.stats.DrawCalls++
	}
	d.BindVertexArray(0)

	r.stats.Frames++
}

// Stats returns the counters accumulated since the Renderer was created.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Resize updates the viewport to the framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.driver.Viewport(0, 0, int32(width), int32(height))
}
