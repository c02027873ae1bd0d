package display

import "testing"

type fakeWindow struct {
	x, y, w, h  int
	decorated   bool
	floating    bool
	passthrough bool
	fullscreen  bool
	video       VideoMode
	fullscreens []VideoMode
}

func newFakeWindow(x, y, w, h int) *fakeWindow {
	return &fakeWindow{
		x: x, y: y, w: w, h: h,
		decorated: true,
		video:     VideoMode{Width: 2560, Height: 1440, RefreshRate: 144},
	}
}

func (f *fakeWindow) GetPos() (int, int)         { return f.x, f.y }
func (f *fakeWindow) SetPos(x, y int)            { f.x, f.y = x, y }
func (f *fakeWindow) GetSize() (int, int)        { return f.w, f.h }
func (f *fakeWindow) SetSize(w, h int)           { f.w, f.h = w, h }
func (f *fakeWindow) SetDecorated(v bool)        { f.decorated = v }
func (f *fakeWindow) SetFloating(v bool)         { f.floating = v }
func (f *fakeWindow) SetMousePassthrough(v bool) { f.passthrough = v }
func (f *fakeWindow) PrimaryVideoMode() VideoMode {
	return f.video
}

func (f *fakeWindow) SetFullscreen(m VideoMode) {
	f.fullscreen = true
	f.x, f.y, f.w, f.h = 0, 0, m.Width, m.Height
	f.fullscreens = append(f.fullscreens, m)
}

func (f *fakeWindow) SetWindowed(x, y, w, h int) {
	f.fullscreen = false
	f.x, f.y, f.w, f.h = x, y, w, h
}

func TestFullscreenRoundTrip(t *testing.T) {
	geometries := [][4]int{
		{0, 0, 1, 1},
		{100, 200, 1280, 720},
		{-1920, 37, 641, 479},
		{7, 9, 3840, 2160},
	}
	for _, g := range geometries {
		win := newFakeWindow(g[0], g[1], g[2], g[3])
		c := NewController(win)

		c.EnterFullscreen()
		if c.Mode() != Fullscreen || !win.fullscreen {
			t.Fatalf("mode = %v, fullscreen = %v", c.Mode(), win.fullscreen)
		}
		if got := win.fullscreens[0]; got != win.video {
			t.Errorf("fullscreen video mode = %+v, want %+v", got, win.video)
		}

		c.ExitFullscreen()
		if c.Mode() != Windowed || win.fullscreen {
			t.Fatalf("after exit mode = %v, fullscreen = %v", c.Mode(), win.fullscreen)
		}
		if got := [4]int{win.x, win.y, win.w, win.h}; got != g {
			t.Errorf("restored geometry = %v, want %v", got, g)
		}
	}
}

func TestOverlayToggleRestores(t *testing.T) {
	win := newFakeWindow(50, 60, 800, 600)
	c := NewController(win)

	c.ToggleOverlay()
	if c.Mode() != Overlay {
		t.Fatalf("mode = %v, want overlay", c.Mode())
	}
	if win.decorated || !win.floating || !win.passthrough {
		t.Errorf("overlay flags decorated=%v floating=%v passthrough=%v", win.decorated, win.floating, win.passthrough)
	}
	if win.x != 0 || win.y != 0 || win.w != 2560 || win.h != 1440 {
		t.Errorf("overlay geometry = %d,%d %dx%d, want 0,0 2560x1440", win.x, win.y, win.w, win.h)
	}

	c.ToggleOverlay()
	if c.Mode() != Windowed {
		t.Fatalf("mode = %v, want windowed", c.Mode())
	}
	if !win.decorated || win.floating || win.passthrough {
		t.Errorf("restored flags decorated=%v floating=%v passthrough=%v", win.decorated, win.floating, win.passthrough)
	}
	if win.x != 50 || win.y != 60 || win.w != 800 || win.h != 600 {
		t.Errorf("restored geometry = %d,%d %dx%d, want 50,60 800x600", win.x, win.y, win.w, win.h)
	}
}

func TestBorderlessExitsFullscreenFirst(t *testing.T) {
	win := newFakeWindow(10, 20, 640, 480)
	c := NewController(win)

	c.EnterFullscreen()
	c.EnterBorderless()
	if c.Mode() != Borderless {
		t.Fatalf("mode = %v, want borderless", c.Mode())
	}
	if win.fullscreen {
		t.Error("exclusive fullscreen still active in borderless mode")
	}
	if pos, size := c.Geometry(); pos != (Point{10, 20}) || size != (Size{640, 480}) {
		t.Errorf("snapshot = %v %v, want {10 20} {640 480}", pos, size)
	}

	c.ExitBorderless()
	if win.x != 10 || win.y != 20 || win.w != 640 || win.h != 480 || !win.decorated {
		t.Errorf("restored %d,%d %dx%d decorated=%v", win.x, win.y, win.w, win.h, win.decorated)
	}
}

func TestFullscreenFromOverlay(t *testing.T) {
	win := newFakeWindow(10, 20, 640, 480)
	c := NewController(win)

	c.ToggleOverlay()
	c.EnterFullscreen()
	if c.Mode() != Fullscreen {
		t.Fatalf("mode = %v, want fullscreen", c.Mode())
	}
	if win.floating || win.passthrough || !win.decorated {
		t.Errorf("overlay state leaked into fullscreen: floating=%v passthrough=%v decorated=%v",
			win.floating, win.passthrough, win.decorated)
	}

	c.ToggleFullscreen()
	if got := [4]int{win.x, win.y, win.w, win.h}; got != [4]int{10, 20, 640, 480} {
		t.Errorf("restored geometry = %v", got)
	}
}

func TestSnapshotOnlyTracksWindowedGeometry(t *testing.T) {
	win := newFakeWindow(0, 0, 800, 600)
	c := NewController(win)

	// The user moved the window before going fullscreen.
	win.SetPos(300, 400)
	c.EnterFullscreen()
	if pos, _ := c.Geometry(); pos != (Point{300, 400}) {
		t.Errorf("snapshot pos = %v, want {300 400}", pos)
	}

	// A resize request while fullscreen only changes the restore target.
	c.SetWindowSize(1024, 768)
	if win.w != 2560 || win.h != 1440 {
		t.Errorf("fullscreen window resized to %dx%d", win.w, win.h)
	}
	c.ExitFullscreen()
	if win.w != 1024 || win.h != 768 || win.x != 300 || win.y != 400 {
		t.Errorf("restored %d,%d %dx%d, want 300,400 1024x768", win.x, win.y, win.w, win.h)
	}

	c.SetWindowSize(320, 200)
	c.SetWindowPos(5, 6)
	if win.w != 320 || win.h != 200 || win.x != 5 || win.y != 6 {
		t.Errorf("windowed resize not applied: %d,%d %dx%d", win.x, win.y, win.w, win.h)
	}
}

func TestRedundantTransitionsAreNoops(t *testing.T) {
	win := newFakeWindow(1, 2, 3, 4)
	c := NewController(win)

	c.ExitFullscreen()
	c.ExitBorderless()
	if c.Mode() != Windowed {
		t.Fatalf("mode = %v", c.Mode())
	}

	c.EnterFullscreen()
	c.EnterFullscreen()
	if len(win.fullscreens) != 1 {
		t.Errorf("SetFullscreen called %d times, want 1", len(win.fullscreens))
	}
}
