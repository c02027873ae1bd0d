// Package display owns the window's display mode: windowed, exclusive
// fullscreen, borderless, or borderless overlay (always on top, click-through).
//
// The Controller is the only place that knows the last true windowed geometry.
// It is captured when leaving Windowed and restored when coming back, so the
// window returns exactly where it was no matter which modes were visited.
package display

import "fmt"

// Mode is the current display mode. Exactly one is active at a time, which is
// what makes fullscreen and borderless mutually exclusive.
type Mode int

const (
	Windowed Mode = iota
	Fullscreen
	Borderless
	// Overlay is Borderless plus floating and mouse passthrough.
	Overlay
)

func (m Mode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case Fullscreen:
		return "fullscreen"
	case Borderless:
		return "borderless"
	case Overlay:
		return "overlay"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) borderless() bool {
	return m == Borderless || m == Overlay
}

type Point struct{ X, Y int }

type Size struct{ Width, Height int }

// VideoMode describes the primary display.
type VideoMode struct {
	Width       int
	Height      int
	RefreshRate int
}

// Window is the window-system surface the controller drives.
type Window interface {
	GetPos() (x, y int)
	SetPos(x, y int)
	GetSize() (width, height int)
	SetSize(width, height int)
	SetDecorated(decorated bool)
	SetFloating(floating bool)
	SetMousePassthrough(passthrough bool)
	PrimaryVideoMode() VideoMode
	// SetFullscreen switches to exclusive fullscreen on the primary display.
	SetFullscreen(mode VideoMode)
	// SetWindowed leaves exclusive fullscreen with the given geometry.
	SetWindowed(x, y, width, height int)
}

// Controller is the display-mode state machine.
type Controller struct {
	win  Window
	mode Mode
	pos  Point
	size Size
}

// NewController wraps a window that is currently windowed.
func NewController(win Window) *Controller {
	c := &Controller{win: win, mode: Windowed}
	c.snapshot()
	return c
}

func (c *Controller) snapshot() {
	x, y := c.win.GetPos()
	w, h := c.win.GetSize()
	c.pos = Point{x, y}
	c.size = Size{w, h}
}

func (c *Controller) Mode() Mode { return c.mode }

// Geometry returns the windowed position and size the window is restored to.
func (c *Controller) Geometry() (Point, Size) {
	return c.pos, c.size
}

// EnterFullscreen switches to exclusive fullscreen at the primary display's
// native resolution and refresh rate, leaving borderless first if needed.
func (c *Controller) EnterFullscreen() {
	switch {
	case c.mode == Fullscreen:
		return
	case c.mode.borderless():
		c.ExitBorderless()
	default:
		c.snapshot()
	}
	c.win.SetFullscreen(c.win.PrimaryVideoMode())
	c.mode = Fullscreen
}

// ExitFullscreen restores the snapshotted windowed geometry.
func (c *Controller) ExitFullscreen() {
	if c.mode != Fullscreen {
		return
	}
	c.win.SetWindowed(c.pos.X, c.pos.Y, c.size.Width, c.size.Height)
	c.mode = Windowed
}

func (c *Controller) ToggleFullscreen() {
	if c.mode == Fullscreen {
		c.ExitFullscreen()
		return
	}
	c.EnterFullscreen()
}

// EnterBorderless removes decorations and covers the primary display. Coming
// from fullscreen, it drops back to windowed first.
func (c *Controller) EnterBorderless() {
	switch {
	case c.mode.borderless():
		return
	case c.mode == Fullscreen:
		c.ExitFullscreen()
	default:
		c.snapshot()
	}
	vm := c.win.PrimaryVideoMode()
	c.win.SetDecorated(false)
	c.win.SetPos(0, 0)
	c.win.SetSize(vm.Width, vm.Height)
	c.mode = Borderless
}

// ExitBorderless restores decorations and the windowed geometry. In Overlay
// mode it also clears floating and passthrough.
func (c *Controller) ExitBorderless() {
	if !c.mode.borderless() {
		return
	}
	if c.mode == Overlay {
		c.win.SetFloating(false)
		c.win.SetMousePassthrough(false)
	}
	c.win.SetDecorated(true)
	c.win.SetPos(c.pos.X, c.pos.Y)
	c.win.SetSize(c.size.Width, c.size.Height)
	c.mode = Windowed
}

// ToggleOverlay flips the click-through always-on-top overlay.
func (c *Controller) ToggleOverlay() {
	if c.mode == Overlay {
		c.ExitBorderless()
		return
	}
	c.win.SetFloating(true)
	c.win.SetMousePassthrough(true)
	c.EnterBorderless()
	c.mode = Overlay
}

// SetWindowSize records the windowed size and applies it if the window is
// windowed. In other modes it only becomes the size restored on exit.
func (c *Controller) SetWindowSize(width, height int) {
	c.size = Size{width, height}
	if c.mode == Windowed {
		c.win.SetSize(width, height)
	}
}

// SetWindowPos is the position counterpart of SetWindowSize.
func (c *Controller) SetWindowPos(x, y int) {
	c.pos = Point{x, y}
	if c.mode == Windowed {
		c.win.SetPos(x, y)
	}
}
