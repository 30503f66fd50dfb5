// Example runs the glsteps lessons in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/ --config example/glsteps.toml
//	go run ./example/ --lesson rectangle --shader-dir example/shaders
//
// Keys: Escape closes the window, 1 switches to wireframe, 2 back to fill.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/go-theft-auto/glsteps"
	"github.com/go-theft-auto/glsteps/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	app := &cli.App{
		Name:  "glsteps",
		Usage: "draw the OpenGL bring-up lessons",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "TOML config file"},
			&cli.StringFlag{Name: "lesson", Aliases: []string{"l"}, Usage: "lesson to run (see the lessons command)"},
			&cli.StringFlag{Name: "shader-dir", Usage: "directory holding the shader files"},
			&cli.BoolFlag{Name: "watch", Usage: "rebuild programs when shader files change"},
			&cli.BoolFlag{Name: "strict", Usage: "exit when a shader fails to build"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging"},
			&cli.IntFlag{Name: "max-frames", Usage: "close after this many frames (0 = until closed)"},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:  "lessons",
				Usage: "list the available lessons",
				Action: func(*cli.Context) error {
					for _, l := range glsteps.Lessons() {
						fmt.Printf("%-14s %s\n", l.Name, l.Description)
					}
					return nil
				},
			},
			{
				Name:  "dumpconfig",
				Usage: "print the effective configuration as TOML",
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					return cfg.WriteTOML(os.Stdout)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, and applies flags over it.
func loadConfig(c *cli.Context) (glsteps.Config, error) {
	cfg := glsteps.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = glsteps.LoadConfig(path); err != nil {
			return glsteps.Config{}, err
		}
	}
	if c.IsSet("lesson") {
		cfg.Lesson = c.String("lesson")
	}
	if c.IsSet("shader-dir") {
		cfg.ShaderDir = c.String("shader-dir")
	}
	if c.IsSet("watch") {
		cfg.Watch = c.Bool("watch")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
	if c.IsSet("max-frames") {
		cfg.MaxFrames = c.Int("max-frames")
	}
	return cfg, cfg.Validate()
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	glsteps.SetVerbose(cfg.Verbose)
	logger := glsteps.DefaultLogger()

	window, err := opengl.OpenWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Close()

	driver := opengl.NewDriver()
	logger.Info("context ready", "gl", driver.Version())

	app := glsteps.NewApp(cfg, driver, logger)
	defer app.Close()

	window.OnResize(app.Resize)

	if err := app.Setup(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	return app.Run(window)
}
