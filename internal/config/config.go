// Package config holds the viewer's command-line configuration. There is no
// settings file; every value comes from a flag or a positional argument.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/MatejBursik/Shader-window/internal/effect"
	"github.com/MatejBursik/Shader-window/internal/logging"
)

// Default window values, used until the first image sizes the window.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Shader window"
)

// ImageExtensions are the file types picked up from a gallery directory.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

type Config struct {
	Width  int
	Height int
	Title  string
	// VSync is the buffer swap interval: 0 off, -1 adaptive, N every Nth blank.
	VSync int

	Effect    string
	Atlas     string
	AtlasPath string
	ShaderDir string

	GalleryDir string
	Images     []string
	// FitWindow resizes the window to the first image at startup.
	FitWindow bool

	Fullscreen bool
	Overlay    bool

	LogLevel string
}

func Default() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Title:     DefaultTitle,
		VSync:     1,
		Effect:    effect.None.String(),
		Atlas:     effect.DefaultAtlas.Name,
		FitWindow: true,
		LogLevel:  "info",
	}
}

// BindFlags registers every option on fs with c's current values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "Initial window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "Window title")
	fs.IntVar(&c.VSync, "vsync", c.VSync, "Swap interval (0 = off, -1 = adaptive, N = every Nth vertical blank)")
	fs.StringVarP(&c.Effect, "effect", "e", c.Effect, "Starting effect ("+strings.Join(effectNames(), "/")+")")
	fs.StringVar(&c.Atlas, "atlas", c.Atlas, "Glyph atlas for the ascii effect (ramp11/ramp15)")
	fs.StringVar(&c.AtlasPath, "atlas-path", c.AtlasPath, "Override the glyph atlas image file")
	fs.StringVar(&c.ShaderDir, "shader-dir", c.ShaderDir, "Load shaders from this directory instead of the built-in ones")
	fs.StringVarP(&c.GalleryDir, "gallery", "g", c.GalleryDir, "Directory whose images are added to the gallery")
	fs.BoolVar(&c.FitWindow, "fit", c.FitWindow, "Resize the window to the first image on start")
	fs.BoolVarP(&c.Fullscreen, "fullscreen", "f", c.Fullscreen, "Start in exclusive fullscreen")
	fs.BoolVar(&c.Overlay, "overlay", c.Overlay, "Start as a click-through overlay")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug/info/warn/error)")
}

func effectNames() []string {
	var names []string
	for _, e := range effect.All() {
		names = append(names, e.String())
	}
	return names
}

// Validate checks option values that do not depend on the file system.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.VSync < -1 {
		errs = append(errs, fmt.Errorf("vsync %d: want -1, 0 or a positive interval", c.VSync))
	}
	if c.Fullscreen && c.Overlay {
		errs = append(errs, errors.New("--fullscreen and --overlay are mutually exclusive"))
	}
	if _, err := effect.Parse(c.Effect); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.GlyphAtlas(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// StartEffect is the parsed --effect value.
func (c Config) StartEffect() (effect.Effect, error) {
	return effect.Parse(c.Effect)
}

// GlyphAtlas returns the selected atlas with --atlas-path applied.
func (c Config) GlyphAtlas() (effect.GlyphAtlas, error) {
	a, err := effect.AtlasByName(c.Atlas)
	if err != nil {
		return effect.GlyphAtlas{}, err
	}
	if c.AtlasPath != "" {
		a.Path = c.AtlasPath
	}
	return a, nil
}

// GalleryPaths lists the positional images followed by the images found in
// GalleryDir, sorted by name. At least one image is required.
func (c Config) GalleryPaths() ([]string, error) {
	paths := append([]string(nil), c.Images...)
	if c.GalleryDir != "" {
		entries, err := os.ReadDir(c.GalleryDir)
		if err != nil {
			return nil, fmt.Errorf("reading gallery: %w", err)
		}
		var found []string
		for _, e := range entries {
			if e.IsDir() || !IsImage(e.Name()) {
				continue
			}
			found = append(found, filepath.Join(c.GalleryDir, e.Name()))
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return nil, errors.New("no images: pass image files or --gallery DIR")
	}
	return paths, nil
}

// IsImage reports whether name has one of ImageExtensions, ignoring case.
func IsImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
