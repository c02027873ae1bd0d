// Package session runs the viewer: one State threaded through a frame loop
// that polls input, applies chord commands and draws the current image
// through the current effect.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/MatejBursik/Shader-window/internal/display"
	"github.com/MatejBursik/Shader-window/internal/effect"
	"github.com/MatejBursik/Shader-window/internal/gfx"
	"github.com/MatejBursik/Shader-window/internal/input"
	"github.com/MatejBursik/Shader-window/internal/logging"
)

// Surface is the presentation side of the window.
type Surface interface {
	// PollEvents drains the key events received since the previous call.
	PollEvents() []input.Event
	FramebufferSize() (width, height int)
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(bool)
}

// State is everything that changes while the viewer runs. The session owns
// Program, Image and Atlas exclusively and releases each one before it is
// replaced.
type State struct {
	Elapsed  float64
	Effect   effect.Effect
	Program  *gfx.Program
	Image    *gfx.Texture
	Atlas    *gfx.Texture
	Gallery  *Gallery
	Viewport effect.Viewport
}

// Deps are the collaborators a session draws and presents through.
type Deps struct {
	Backend gfx.Backend
	Surface Surface
	Display *display.Controller
	// Shaders holds <effect>/vertex.glsl and <effect>/fragment.glsl.
	Shaders fs.FS
	Logger  *slog.Logger
}

type Options struct {
	Gallery *Gallery
	Effect  effect.Effect
	Atlas   effect.GlyphAtlas
	// Keymap defaults to input.DefaultKeymap.
	Keymap input.Keymap
	// FitWindow resizes the window to the first image on start.
	FitWindow bool
}

type Session struct {
	backend gfx.Backend
	surface Surface
	display *display.Controller
	shaders fs.FS
	logger  *slog.Logger

	keymap  input.Keymap
	glyphs  effect.GlyphAtlas
	tracker *input.Tracker
	quad    *gfx.Quad
	now     func() time.Time

	state State
}

// New acquires the quad, the first gallery image, the glyph atlas and the
// program of the starting effect. Any failure is returned and whatever was
// already acquired is released.
func New(deps Deps, opts Options) (_ *Session, err error) {
	switch {
	case deps.Backend == nil, deps.Surface == nil, deps.Display == nil, deps.Shaders == nil:
		return nil, errors.New("session: backend, surface, display and shaders are required")
	case opts.Gallery == nil:
		return nil, ErrEmptyGallery
	case !opts.Effect.Valid():
		return nil, fmt.Errorf("session: invalid effect %v", opts.Effect)
	}

	s := &Session{
		backend: deps.Backend,
		surface: deps.Surface,
		display: deps.Display,
		shaders: deps.Shaders,
		logger:  logging.OrNop(deps.Logger),
		keymap:  opts.Keymap,
		glyphs:  opts.Atlas,
		tracker: input.NewTracker(),
		now:     time.Now,
	}
	if s.keymap == nil {
		s.keymap = input.DefaultKeymap()
	}
	s.state.Gallery = opts.Gallery
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	s.updateViewport(true)
	s.quad = gfx.NewQuad(s.backend)

	s.state.Image, err = gfx.LoadTexture(s.backend, opts.Gallery.Current())
	if err != nil {
		return nil, fmt.Errorf("loading first image: %w", err)
	}
	if opts.FitWindow {
		s.display.SetWindowSize(s.state.Image.Dimensions())
	}

	s.state.Atlas, err = loadAtlas(s.backend, s.glyphs, s.logger)
	if err != nil {
		return nil, fmt.Errorf("loading glyph atlas: %w", err)
	}

	s.state.Program, err = s.buildProgram(opts.Effect)
	if err != nil {
		return nil, fmt.Errorf("building %s shader: %w", opts.Effect, err)
	}
	s.state.Effect = opts.Effect

	s.logger.Info("session started",
		"image", opts.Gallery.Current(),
		"effect", opts.Effect.String(),
		"atlas", s.glyphs.Name,
		"viewport", fmt.Sprintf("%dx%d", s.state.Viewport.Width, s.state.Viewport.Height))
	return s, nil
}

// State returns a copy of the current session state.
func (s *Session) State() State { return s.state }

// Close releases every GPU resource the session owns. It is safe to call
// more than once.
func (s *Session) Close() {
	s.state.Program.Release()
	s.state.Image.Release()
	s.state.Atlas.Release()
	s.quad.Release()
}

// buildProgram compiles the effect's recipe at the current viewport, binds
// the program and pushes its initial uniforms.
func (s *Session) buildProgram(e effect.Effect) (*gfx.Program, error) {
	cfg := effect.RecipeFor(e, s.state.Viewport, s.glyphs)
	prog, err := gfx.CompileProgram(s.backend, s.shaders, cfg.VertexPath, cfg.FragmentPath)
	if err != nil {
		return nil, err
	}
	prog.Bind()
	for _, u := range cfg.Uniforms {
		prog.RegisterUniform(u.Name)
		if err := pushUniform(prog, u); err != nil {
			prog.Release()
			return nil, err
		}
	}
	return prog, nil
}

func pushUniform(p *gfx.Program, u effect.Uniform) error {
	switch u.Kind {
	case effect.KindFloat:
		return p.SetFloat(u.Name, u.F[0])
	case effect.KindVec2:
		return p.SetVec2(u.Name, u.F[0], u.F[1])
	case effect.KindIVec2:
		return p.SetIVec2(u.Name, u.I[0], u.I[1])
	case effect.KindInt:
		return p.SetInt(u.Name, u.I[0])
	}
	return fmt.Errorf("uniform %q: unknown kind %d", u.Name, u.Kind)
}
