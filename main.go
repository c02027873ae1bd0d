// Shader window: an interactive image viewer that draws a gallery of still
// images through a fixed ring of GLSL effects.
//
// Keyboard:
//   - Ctrl+Alt+O: toggle click-through overlay
//   - Ctrl+Alt+F: toggle exclusive fullscreen
//   - Ctrl+Alt+N, I: next image
//   - Ctrl+Alt+N, S: next effect
//   - Escape: quit
//
// Startup order:
//  1. Parse flags and resolve the gallery.
//  2. Open the GLFW window and load OpenGL.
//  3. Build the session (first image, glyph atlas, starting effect).
//  4. Run the frame loop until Escape, window close or SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MatejBursik/Shader-window/internal/config"
	"github.com/MatejBursik/Shader-window/internal/display"
	"github.com/MatejBursik/Shader-window/internal/logging"
	"github.com/MatejBursik/Shader-window/internal/opengl"
	"github.com/MatejBursik/Shader-window/internal/platform"
	"github.com/MatejBursik/Shader-window/internal/session"
	"github.com/MatejBursik/Shader-window/shaders"
)

const (
	// Product identity and UI strings.
	APP_NAME           = "Shader window"
	APP_VERSION        = "0.3.0"
	ABOUT_WINDOW_TITLE = "About"
	OPEN_GALLERY_TEXT  = "Open gallery folder"
	COPYRIGHT_TEXT     = "© 2026 Shader window contributors (MIT License)"

	// Colors and styling constants
	ABOUT_TEXT_COLOR        = "#000000"
	ABOUT_TEXT_FONT_SIZE    = 12
	INFO_TEXT_COLOR         = "#1A1A80"
	WINDOW_BACKGROUND_COLOR = "#E8E8E8"
)

func init() {
	runtime.LockOSThread() // GLFW and OpenGL calls must stay on the main thread
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalln("Error:", err)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	root := &cobra.Command{
		Use:   "Shader-window [images...]",
		Short: "View images through real-time GLSL effects",
		Long: `Shader window opens the given images (and any images found in --gallery)
and draws them through one of a fixed ring of effects: none, test, pixel,
ascii and edge_detect.

Keyboard:
  Ctrl+Alt+O        toggle click-through always-on-top overlay
  Ctrl+Alt+F        toggle exclusive fullscreen
  Ctrl+Alt+N, I     next image (hold N, release I)
  Ctrl+Alt+N, S     next effect (hold N, release S)
  Escape            quit

Examples:
  Shader-window photo.png
  Shader-window --gallery ./images --effect ascii --atlas ramp11
  Shader-window -f --vsync=-1 a.jpg b.webp`,
		Version:       APP_VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Images = args
			return run(cmd.Context(), cfg)
		},
	}
	cfg.BindFlags(root.Flags())

	root.AddCommand(&cobra.Command{
		Use:   "about [gallery-dir]",
		Short: "Show the about window with the key bindings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.GalleryDir
			if len(args) == 1 {
				dir = args[0]
			}
			runAboutWindow(dir)
			return nil
		},
	})
	return root
}

func run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	paths, err := cfg.GalleryPaths()
	if err != nil {
		return err
	}
	gallery, err := session.NewGallery(paths)
	if err != nil {
		return err
	}
	start, err := cfg.StartEffect()
	if err != nil {
		return err
	}
	atlas, err := cfg.GlyphAtlas()
	if err != nil {
		return err
	}

	var shaderFS fs.FS = shaders.FS
	if cfg.ShaderDir != "" {
		shaderFS = os.DirFS(cfg.ShaderDir)
	}

	win, err := platform.New(platform.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Title:        cfg.Title,
		SwapInterval: cfg.VSync,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	backend, err := opengl.New()
	if err != nil {
		return err
	}
	logger.Debug("OpenGL ready", "version", backend.Version())

	dc := display.NewController(win)
	s, err := session.New(session.Deps{
		Backend: backend,
		Surface: win,
		Display: dc,
		Shaders: shaderFS,
		Logger:  logger,
	}, session.Options{
		Gallery:   gallery,
		Effect:    start,
		Atlas:     atlas,
		FitWindow: cfg.FitWindow,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	switch {
	case cfg.Fullscreen:
		dc.EnterFullscreen()
	case cfg.Overlay:
		dc.ToggleOverlay()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}
