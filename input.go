package glsteps

// Key is a keyboard key the render loop reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	Key1
	Key2
	KeyCount
)

// KeyState reports whether a key is held down this frame.
type KeyState interface {
	Pressed(key Key) bool
}

// Action is what the loop should do after input was processed.
type Action struct {
	Close bool
}

// ProcessInput polls keys once and applies them to state.
//
//	Escape  request close
//	1       wireframe
//	2       filled
func ProcessInput(keys KeyState, state *RenderState) Action {
	var a Action
	if keys.Pressed(KeyEscape) {
		a.Close = true
	}
	if keys.Pressed(Key1) {
		state.PolygonMode = PolygonLine
	}
	if keys.Pressed(Key2) {
		state.PolygonMode = PolygonFill
	}
	return a
}
