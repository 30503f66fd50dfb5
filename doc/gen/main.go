// Command gen renders every lesson into a hidden window, reads back the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/glsteps"
	"github.com/go-theft-auto/glsteps/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single lesson capture.
type screenshot struct {
	lesson string
	mode   glsteps.PolygonMode
	suffix string // appended to the lesson name
}

func run() error {
	cfg := glsteps.DefaultConfig()
	cfg.ShaderDir = filepath.Join("example", "shaders")
	cfg.Strict = true
	cfg.Window.Hidden = true
	cfg.Window.Title = "screenshot-gen"

	window, err := opengl.OpenWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Close()

	driver := opengl.NewDriver()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		name := s.lesson + s.suffix
		if err := capture(window, driver, cfg, s, filepath.Join(outDir, name+".jpg")); err != nil {
			return fmt.Errorf("capture %s: %w", name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", name, cfg.Window.Width, cfg.Window.Height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(window *opengl.Window, driver *opengl.Driver, cfg glsteps.Config, s screenshot, path string) error {
	cfg.Lesson = s.lesson
	cfg.Render.PolygonMode = s.mode

	// Fresh app per screenshot so no GPU objects leak between captures.
	app := glsteps.NewApp(cfg, driver, nil)
	defer app.Close()
	if err := app.Setup(); err != nil {
		return err
	}

	// The hidden window keeps its initial size; draw at that size.
	w, h := window.FramebufferSize()
	app.Resize(w, h)
	if err := app.Frame(); err != nil {
		return err
	}

	img := driver.ReadFramebuffer(w, h)
	window.SwapBuffers()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all lesson screenshots to generate.
func buildScreenshots() []screenshot {
	var shots []screenshot
	for _, l := range glsteps.Lessons() {
		shots = append(shots, screenshot{lesson: l.Name, mode: glsteps.PolygonFill})
	}
	shots = append(shots, screenshot{lesson: "rectangle", mode: glsteps.PolygonLine, suffix: "_wireframe"})
	return shots
}
