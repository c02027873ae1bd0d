package effect

import (
	"fmt"
	"sort"
	"strings"
)

// GlyphAtlas ties a glyph atlas image to the grid layout the ASCII shader must
// be told about. Keeping both in one value is what keeps font_grid and
// glyph_count consistent with the texture actually bound on unit 1.
type GlyphAtlas struct {
	Name string
	// Path is the atlas image. When it does not exist the atlas is rasterised
	// from Glyphs instead.
	Path string
	// Glyphs lists the atlas cells left to right, darkest first.
	Glyphs  string
	Columns int
	Rows    int
}

var (
	Ramp11 = GlyphAtlas{
		Name:    "ramp11",
		Path:    "assets/fonts/ascii_ramp11.png",
		Glyphs:  " .,:;-=+*#@",
		Columns: 11,
		Rows:    1,
	}
	Ramp15 = GlyphAtlas{
		Name:    "ramp15",
		Path:    "assets/fonts/ascii_ramp15.png",
		Glyphs:  " .'`,:;-=+*#%@$",
		Columns: 15,
		Rows:    1,
	}

	atlases = map[string]GlyphAtlas{
		Ramp11.Name: Ramp11,
		Ramp15.Name: Ramp15,
	}
)

// DefaultAtlas is the atlas used when none is configured.
var DefaultAtlas = Ramp15

// GlyphCount is the number of usable cells, which the shader receives as
// glyph_count. Atlases are a single row, so it equals Columns.
func (a GlyphAtlas) GlyphCount() int {
	return a.Columns
}

// Validate checks that the declared grid matches the glyph list.
func (a GlyphAtlas) Validate() error {
	if a.Columns <= 0 || a.Rows <= 0 {
		return fmt.Errorf("atlas %s: grid %dx%d must be positive", a.Name, a.Columns, a.Rows)
	}
	if n := len([]rune(a.Glyphs)); n != a.Columns*a.Rows {
		return fmt.Errorf("atlas %s: %d glyphs for a %dx%d grid", a.Name, n, a.Columns, a.Rows)
	}
	return nil
}

// AtlasByName looks up a built-in atlas variant.
func AtlasByName(name string) (GlyphAtlas, error) {
	a, ok := atlases[strings.ToLower(name)]
	if !ok {
		known := make([]string, 0, len(atlases))
		for n := range atlases {
			known = append(known, n)
		}
		sort.Strings(known)
		return GlyphAtlas{}, fmt.Errorf("unknown glyph atlas %q (want one of %s)", name, strings.Join(known, ", "))
	}
	return a, nil
}
