package session

import (
	"context"
	"time"

	"github.com/MatejBursik/Shader-window/internal/effect"
	"github.com/MatejBursik/Shader-window/internal/gfx"
	"github.com/MatejBursik/Shader-window/internal/input"
)

// Run draws frames until the surface is asked to close or ctx is done. The
// close request is only checked between frames.
func (s *Session) Run(ctx context.Context) error {
	last := s.now()
	for !s.surface.ShouldClose() {
		select {
		case <-ctx.Done():
			s.logger.Info("session interrupted", "reason", context.Cause(ctx))
			return nil
		default:
		}
		now := s.now()
		s.Frame(now.Sub(last).Seconds())
		last = now
	}
	s.logger.Info("session closed", "elapsed", time.Duration(s.state.Elapsed*float64(time.Second)))
	return nil
}

// Frame runs one iteration of the loop with dt seconds since the last one.
func (s *Session) Frame(dt float64) {
	s.state.Elapsed += dt

	s.tracker.Update(s.surface.PollEvents())
	if s.tracker.IsHeld(input.KeyEscape) || s.tracker.IsReleased(input.KeyEscape) {
		s.surface.SetShouldClose(true)
	}
	s.updateViewport(false)

	for _, cmd := range s.keymap.Match(s.tracker) {
		s.execute(cmd)
	}

	s.state.Program.Bind()
	for _, u := range effect.FrameUniforms(s.state.Effect, s.state.Viewport, float32(s.state.Elapsed)) {
		if err := pushUniform(s.state.Program, u); err != nil {
			s.logger.Error("frame uniform not pushed", "effect", s.state.Effect.String(), "err", err)
		}
	}
	if s.state.Effect == effect.Ascii {
		s.state.Atlas.Bind(effect.FontUnit)
	}
	s.state.Image.Bind(effect.ImageUnit)

	s.backend.Clear()
	s.quad.Draw()
	s.surface.SwapBuffers()
}

func (s *Session) execute(cmd input.Command) {
	s.logger.Debug("command", "name", string(cmd))
	switch cmd {
	case input.CommandToggleOverlay:
		s.display.ToggleOverlay()
		s.logger.Info("display mode", "mode", s.display.Mode().String())
	case input.CommandToggleFullscreen:
		s.display.ToggleFullscreen()
		s.logger.Info("display mode", "mode", s.display.Mode().String())
	case input.CommandNextImage:
		s.nextImage()
	case input.CommandNextShader:
		s.nextEffect()
	}
}

// nextImage advances the gallery and swaps in the new texture. On a decode
// failure the current texture stays bound but the gallery has still moved,
// so the next request tries the entry after the broken one.
func (s *Session) nextImage() {
	path := s.state.Gallery.Next()
	tex, err := gfx.LoadTexture(s.backend, path)
	if err != nil {
		s.logger.Error("image not loaded, keeping current image",
			"path", path, "index", s.state.Gallery.Index(), "err", err)
		return
	}
	s.state.Image.Release()
	s.state.Image = tex

	w, h := tex.Dimensions()
	s.display.SetWindowSize(w, h)
	s.logger.Info("image", "path", path, "index", s.state.Gallery.Index(), "width", w, "height", h)
}

// nextEffect rebuilds the program for the successor effect. If the new
// program cannot be built the current effect and program stay active.
func (s *Session) nextEffect() {
	next := s.state.Effect.Next()
	prog, err := s.buildProgram(next)
	if err != nil {
		s.logger.Error("shader not switched, keeping current effect",
			"effect", next.String(), "current", s.state.Effect.String(), "err", err)
		s.state.Program.Bind()
		return
	}
	s.state.Program.Release()
	s.state.Program = prog
	s.state.Effect = next
	s.logger.Info("effect", "name", next.String())
}

// updateViewport follows the framebuffer size. force applies it even when
// unchanged, which is needed once at startup.
func (s *Session) updateViewport(force bool) {
	w, h := s.surface.FramebufferSize()
	vp := effect.Viewport{Width: w, Height: h}
	if !force && vp == s.state.Viewport {
		return
	}
	s.state.Viewport = vp
	s.backend.Viewport(w, h)
	if !force {
		s.logger.Debug("viewport", "width", w, "height", h)
	}
}
