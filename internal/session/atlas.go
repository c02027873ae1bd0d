package session

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/MatejBursik/Shader-window/internal/effect"
	"github.com/MatejBursik/Shader-window/internal/gfx"
)

// loadAtlas uploads the glyph atlas image. An atlas whose file does not exist
// is rasterised from its glyph list instead; any other decode failure is
// returned.
func loadAtlas(b gfx.Backend, a effect.GlyphAtlas, logger *slog.Logger) (*gfx.Texture, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if a.Path != "" {
		tex, err := gfx.LoadTexture(b, a.Path)
		if err == nil {
			return tex, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		logger.Debug("glyph atlas image not found, rasterizing", "atlas", a.Name, "path", a.Path)
	}
	return gfx.NewTexture(b, gfx.RasterizeGlyphs(a.Glyphs)), nil
}
