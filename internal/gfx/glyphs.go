package gfx

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph cell size used by RasterizeGlyphs. basicfont.Face7x13 glyphs are 7px
// wide; one extra column keeps neighbouring glyphs from bleeding under
// linear filtering.
const (
	GlyphCellWidth  = 8
	GlyphCellHeight = 13
)

// RasterizeGlyphs renders glyphs left to right into a single-row atlas,
// white on opaque black, one GlyphCellWidth x GlyphCellHeight cell per rune.
// It backs glyph atlases whose image asset is not present on disk.
func RasterizeGlyphs(glyphs string) *image.NRGBA {
	runes := []rune(glyphs)
	img := image.NewNRGBA(image.Rect(0, 0, len(runes)*GlyphCellWidth, GlyphCellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{0, 0, 0, 255}), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{255, 255, 255, 255}),
		Face: face,
	}
	for i, r := range runes {
		d.Dot = fixed.Point26_6{
			X: fixed.I(i * GlyphCellWidth),
			Y: fixed.I(face.Ascent),
		}
		d.DrawString(string(r))
	}
	return img
}
