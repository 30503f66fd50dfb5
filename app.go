package glsteps

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

// App builds a lesson's programs and geometry and drives its frames.
type App struct {
	cfg    Config
	lesson Lesson
	logger *slog.Logger

	driver   Driver
	builder  *Builder
	renderer *Renderer
	state    RenderState

	passes  []*pass
	watcher *Watcher

	// watched maps watcher paths back to lesson file names.
	watched map[string]string

	buildErrs []error
}

type pass struct {
	spec    PassSpec
	program *Program
	mesh    *VertexArray
}

// NewApp creates an App for cfg drawing through d. A nil logger selects the
// package logger.
func NewApp(cfg Config, d Driver, logger *slog.Logger) *App {
	if logger == nil {
		logger = defaultLogger
	}
	return &App{
		cfg:      cfg,
		logger:   logger,
		driver:   d,
		builder:  NewBuilder(d, WithLogger(logger)),
		renderer: NewRenderer(d),
		state:    cfg.RenderState(),
	}
}

// Setup loads the lesson's shader sources, builds its programs and uploads
// its meshes.
//
// A source that cannot be loaded or a mesh that fails validation is fatal.
// Shader build failures are logged and the affected pass keeps its unusable
// program, unless the config is strict, in which case they are returned.
func (a *App) Setup() error {
	lesson, err := LookupLesson(a.cfg.Lesson)
	if err != nil {
		return err
	}
	a.lesson = lesson

	sources, err := a.loadSources(lesson.Files())
	if err != nil {
		return err
	}

	for _, name := range lesson.Probe {
		s, err := a.builder.Compile(stageFor(name), sources[name])
		a.recordBuild(err)
		s.Delete()
	}

	for _, spec := range lesson.Passes {
		mesh, err := UploadMesh(a.driver, spec.Mesh)
		if err != nil {
			return fmt.Errorf("pass %s: %w", spec.Name, err)
		}
		program, err := a.builder.Build(sources[spec.VertexShader], sources[spec.FragmentShader])
		a.recordBuild(err)
		a.passes = append(a.passes, &pass{spec: spec, program: program, mesh: mesh})
	}

	if a.cfg.Strict && len(a.buildErrs) > 0 {
		return fmt.Errorf("lesson %s: %w", lesson.Name, errors.Join(a.buildErrs...))
	}

	if a.cfg.Watch {
		if err := a.startWatcher(lesson.Files()); err != nil {
			return err
		}
	}

	a.logger.Info("lesson ready",
		"lesson", lesson.Name,
		"passes", len(a.passes),
		"build_errors", len(a.buildErrs))
	return nil
}

func (a *App) recordBuild(err error) {
	if err != nil {
		a.buildErrs = append(a.buildErrs, err)
	}
}

func (a *App) shaderPath(name string) string {
	return filepath.Join(a.cfg.ShaderDir, name)
}

func (a *App) loadSources(names []string) (map[string]string, error) {
	sources := make(map[string]string, len(names))
	for _, name := range names {
		src, err := LoadSource(a.shaderPath(name))
		if err != nil {
			return nil, err
		}
		sources[name] = src
	}
	return sources, nil
}

func (a *App) startWatcher(names []string) error {
	paths := make([]string, len(names))
	a.watched = make(map[string]string, len(names))
	for i, name := range names {
		paths[i] = a.shaderPath(name)
		a.watched[paths[i]] = name
	}
	w, err := NewWatcher(paths, a.logger)
	if err != nil {
		return err
	}
	a.watcher = w
	return nil
}

// stageFor picks the shader stage from the file extension.
func stageFor(name string) ShaderStage {
	if filepath.Ext(name) == ".vert" {
		return VertexStage
	}
	return FragmentStage
}

// Reload rebuilds every pass that reads one of the named shader files.
// A pass whose rebuild fails keeps its previous program.
func (a *App) Reload(names ...string) error {
	changed := make(map[string]bool, len(names))
	for _, n := range names {
		changed[n] = true
	}

	var errs []error
	for _, p := range a.passes {
		if !changed[p.spec.VertexShader] && !changed[p.spec.FragmentShader] {
			continue
		}
		sources, err := a.loadSources([]string{p.spec.VertexShader, p.spec.FragmentShader})
		if err != nil {
			a.logger.Error("reload", "pass", p.spec.Name, "err", err)
			errs = append(errs, err)
			continue
		}
		program, err := a.builder.Build(sources[p.spec.VertexShader], sources[p.spec.FragmentShader])
		if err != nil {
			program.Delete()
			a.logger.Warn("reload failed, keeping previous program", "pass", p.spec.Name)
			errs = append(errs, fmt.Errorf("pass %s: %w", p.spec.Name, err))
			continue
		}
		if p.program != nil {
			p.program.Delete()
		}
		p.program = program
		a.logger.Info("pass reloaded", "pass", p.spec.Name, "program", program.Handle())
	}
	return errors.Join(errs...)
}

// Frame applies pending shader reloads and draws one frame.
func (a *App) Frame() error {
	if a.watcher != nil {
		if paths := a.watcher.Changed(); len(paths) > 0 {
			names := make([]string, 0, len(paths))
			for _, p := range paths {
				names = append(names, a.watched[p])
			}
			_ = a.Reload(names...) // logged per pass
		}
	}
	a.renderer.Frame(a.state, a.Passes())
	return nil
}

// Run drives w until it is closed or the configured frame limit is reached.
func (a *App) Run(w Window) error {
	return Run(w, func() error {
		if ProcessInput(w, &a.state).Close {
			w.SetShouldClose(true)
		}
		if err := a.Frame(); err != nil {
			return err
		}
		if a.cfg.MaxFrames > 0 && a.renderer.Stats().Frames >= a.cfg.MaxFrames {
			w.SetShouldClose(true)
		}
		return nil
	})
}

// Resize updates the viewport; wire it to the window's framebuffer callback.
func (a *App) Resize(width, height int) {
	a.renderer.Resize(width, height)
}

// Passes returns the drawable passes in draw order.
func (a *App) Passes() []Pass {
	out := make([]Pass, len(a.passes))
	for i, p := range a.passes {
		out[i] = Pass{Name: p.spec.Name, Program: p.program, Mesh: p.mesh}
	}
	return out
}

// Lesson returns the lesson selected by Setup.
func (a *App) Lesson() Lesson { return a.lesson }

// State returns the current render state.
func (a *App) State() RenderState { return a.state }

// Stats returns the renderer counters.
func (a *App) Stats() FrameStats { return a.renderer.Stats() }

// BuildErrors returns the shader build failures seen during Setup.
func (a *App) BuildErrors() []error { return a.buildErrs }

// Close stops the watcher and releases every GPU object the App created.
func (a *App) Close() error {
	var err error
	if a.watcher != nil {
		err = a.watcher.Close()
		a.watcher = nil
	}
	for i := len(a.passes) - 1; i >= 0; i-- {
		p := a.passes[i]
		if p.program != nil {
			p.program.Delete()
		}
		p.mesh.Delete()
	}
	a.passes = nil
	return err
}
