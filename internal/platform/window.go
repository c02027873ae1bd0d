// Package platform is the GLFW side of the viewer: one OpenGL 3.3 core window
// whose key events are queued for the session and whose geometry, decoration
// and monitor binding are driven by the display controller.
//
// Everything here must run on the main OS thread.
package platform

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/MatejBursik/Shader-window/internal/display"
	"github.com/MatejBursik/Shader-window/internal/input"
	"github.com/MatejBursik/Shader-window/internal/logging"
)

// Options configures the window created by New.
type Options struct {
	Width  int
	Height int
	Title  string
	// SwapInterval is passed to glfwSwapInterval: 0 disables vsync, -1 asks
	// for adaptive sync, N waits for N vertical blanks.
	SwapInterval int
	Logger       *slog.Logger
}

// Window is a GLFW window with a current OpenGL context.
type Window struct {
	win    *glfw.Window
	title  string
	logger *slog.Logger

	// Key events received by the callback since the last PollEvents.
	pending []input.Event
}

// New initialises GLFW and opens a resizable windowed-mode window.
func New(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)

	w := &Window{
		win:    win,
		title:  opts.Title,
		logger: logging.OrNop(opts.Logger),
	}
	win.SetKeyCallback(w.onKey)
	return w, nil
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := translateKey(key)
	if k == input.KeyUnknown {
		return
	}
	var a input.Action
	switch action {
	case glfw.Press:
		a = input.Press
	case glfw.Release:
		a = input.Release
	default:
		a = input.Repeat
	}
	w.pending = append(w.pending, input.Event{Key: k, Action: a})
}

// PollEvents processes pending window events and returns the key events
// received since the previous call, in arrival order.
func (w *Window) PollEvents() []input.Event {
	glfw.PollEvents()
	events := w.pending
	w.pending = nil
	return events
}

// FramebufferSize is the drawable size in pixels, which differs from the
// window size on high-DPI displays.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) SwapBuffers()              { w.win.SwapBuffers() }
func (w *Window) ShouldClose() bool         { return w.win.ShouldClose() }
func (w *Window) SetShouldClose(v bool)     { w.win.SetShouldClose(v) }
func (w *Window) GetPos() (int, int)        { return w.win.GetPos() }
func (w *Window) SetPos(x, y int)           { w.win.SetPos(x, y) }
func (w *Window) GetSize() (int, int)       { return w.win.GetSize() }
func (w *Window) SetSize(width, height int) { w.win.SetSize(width, height) }

func (w *Window) SetDecorated(decorated bool) {
	w.win.SetAttrib(glfw.Decorated, glfwBool(decorated))
}

func (w *Window) SetFloating(floating bool) {
	w.win.SetAttrib(glfw.Floating, glfwBool(floating))
}

// SetMousePassthrough lets clicks fall through to whatever is below the
// window. GLFW 3.3 has no hint for it, so it is done natively where possible.
func (w *Window) SetMousePassthrough(passthrough bool) {
	if err := setMousePassthrough(w.title, passthrough); err != nil {
		w.logger.Warn("mouse passthrough not applied", "enabled", passthrough, "err", err)
	}
}

func (w *Window) PrimaryVideoMode() display.VideoMode {
	vm := glfw.GetPrimaryMonitor().GetVideoMode()
	return display.VideoMode{Width: vm.Width, Height: vm.Height, RefreshRate: vm.RefreshRate}
}

func (w *Window) SetFullscreen(mode display.VideoMode) {
	w.win.SetMonitor(glfw.GetPrimaryMonitor(), 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}

func (w *Window) SetWindowed(x, y, width, height int) {
	w.win.SetMonitor(nil, x, y, width, height, 0)
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

var _ display.Window = (*Window)(nil)
