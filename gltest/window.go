package gltest

import "github.com/go-theft-auto/glsteps"

// Window is a scripted fake window.
//
// Keys holds, per frame index, the keys reported as pressed. The window
// closes itself once CloseAfter frames have been presented, when CloseAfter
// is positive.
type Window struct {
	Keys       map[int][]glsteps.Key
	CloseAfter int

	Frame  int // frames presented so far
	Swaps  int
	Polls  int
	closed bool
}

var _ glsteps.Window = (*Window)(nil)

// NewWindow returns a window that closes after n frames.
func NewWindow(n int) *Window {
	return &Window{Keys: make(map[int][]glsteps.Key), CloseAfter: n}
}

// Press schedules key as held down during frame.
func (w *Window) Press(frame int, key glsteps.Key) {
	w.Keys[frame] = append(w.Keys[frame], key)
}

func (w *Window) Pressed(key glsteps.Key) bool {
	for _, k := range w.Keys[w.Frame] {
		if k == key {
			return true
		}
	}
	return false
}

func (w *Window) ShouldClose() bool {
	return w.closed || (w.CloseAfter > 0 && w.Frame >= w.CloseAfter)
}

func (w *Window) SetShouldClose(v bool) {
	w.closed = v
}

func (w *Window) SwapBuffers() {
	w.Swaps++
}

func (w *Window) PollEvents() {
	w.Polls++
	w.Frame++
}
