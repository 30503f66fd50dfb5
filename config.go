package glsteps

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl32"
)

// Config is the application configuration, usually decoded from TOML.
//
//	lesson = "two-programs"
//	shader_dir = "shaders"
//
//	[window]
//	width = 800
//	height = 600
//
//	[render]
//	clear_color = [0.2, 0.3, 0.3, 1.0]
//	polygon_mode = "fill"
type Config struct {
	Lesson    string `toml:"lesson"`
	ShaderDir string `toml:"shader_dir"`

	// Strict turns shader build failures into startup errors.
	Strict bool `toml:"strict"`
	// Watch rebuilds programs when their shader files change.
	Watch   bool `toml:"watch"`
	Verbose bool `toml:"verbose"`
	// MaxFrames closes the window after that many frames; 0 runs until closed.
	MaxFrames int `toml:"max_frames"`

	Window WindowConfig `toml:"window"`
	Render RenderConfig `toml:"render"`
}

// WindowConfig describes the window and its context.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
	Hidden bool   `toml:"hidden"`
}

// RenderConfig holds the initial render state.
type RenderConfig struct {
	ClearColor  []float32   `toml:"clear_color"`
	PolygonMode PolygonMode `toml:"polygon_mode"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	c := DefaultClearColor
	return Config{
		Lesson:    "two-programs",
		ShaderDir: ".",
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "LearnOpenGL",
			VSync:  true,
		},
		Render: RenderConfig{
			ClearColor:  []float32{c[0], c[1], c[2], c[3]},
			PolygonMode: PolygonFill,
		},
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig.
// Keys that match no field are reported as errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot use.
func (c Config) Validate() error {
	if _, err := LookupLesson(c.Lesson); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if n := len(c.Render.ClearColor); n != 4 {
		return fmt.Errorf("%w: clear_color needs 4 components, got %d", ErrInvalidConfig, n)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("%w: max_frames %d", ErrInvalidConfig, c.MaxFrames)
	}
	return nil
}

// RenderState returns the initial render state described by the config.
func (c Config) RenderState() RenderState {
	s := DefaultRenderState()
	s.PolygonMode = c.Render.PolygonMode
	if cc := c.Render.ClearColor; len(cc) == 4 {
		s.ClearColor = mgl32.Vec4{cc[0], cc[1], cc[2], cc[3]}
	}
	return s
}

// WriteTOML encodes the configuration as TOML.
func (c Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
