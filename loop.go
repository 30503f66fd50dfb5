package glsteps

// Window is the windowing-system surface the render loop presents to.
type Window interface {
	KeyState
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	PollEvents()
}

// Run blocks, calling frame once per iteration until the window is asked
// to close or frame returns an error. Buffers are swapped and events
// processed after every successful frame.
func Run(w Window, frame func() error) error {
	for !w.ShouldClose() {
		if err := frame(); err != nil {
			return err
		}
		w.SwapBuffers()
		w.PollEvents()
	}
	return nil
}
