package effect

import "path"

// Kind is the GLSL type of a uniform value.
type Kind int

const (
	KindFloat Kind = iota
	KindVec2
	KindIVec2
	KindInt
)

// Uniform is a named value to push to a shader program.
type Uniform struct {
	Name string
	Kind Kind
	F    [2]float32
	I    [2]int32
}

func Float(name string, v float32) Uniform {
	return Uniform{Name: name, Kind: KindFloat, F: [2]float32{v}}
}

func Vec2(name string, x, y float32) Uniform {
	return Uniform{Name: name, Kind: KindVec2, F: [2]float32{x, y}}
}

func IVec2(name string, x, y int32) Uniform {
	return Uniform{Name: name, Kind: KindIVec2, I: [2]int32{x, y}}
}

func Int(name string, v int32) Uniform {
	return Uniform{Name: name, Kind: KindInt, I: [2]int32{v}}
}

// Viewport is the drawable size in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Texture units the shaders sample from.
const (
	ImageUnit = 0
	FontUnit  = 1
)

// Fixed recipe values.
const (
	CellSize      = 8.0
	EdgeThreshold = 0.8
)

// ShaderConfig is everything needed to build and initialise the program of
// one effect.
type ShaderConfig struct {
	VertexPath   string
	FragmentPath string
	// Uniforms are registered and pushed in order right after the program is built.
	Uniforms []Uniform
	// UsesGlyphAtlas means the glyph atlas must be bound on FontUnit every frame.
	UsesGlyphAtlas bool
}

// shaderPaths are relative to the root of the shader file system, which holds
// one directory per effect.
func shaderPaths(e Effect) (string, string) {
	return path.Join(e.String(), "vertex.glsl"), path.Join(e.String(), "fragment.glsl")
}

func resolution(vp Viewport) Uniform {
	return Vec2("resolution", float32(vp.Width), float32(vp.Height))
}

func cellSize() Uniform {
	return Vec2("cell_size", CellSize, CellSize)
}

// RecipeFor maps an effect to its shader configuration at the given viewport
// size. atlas only matters for Ascii, whose grid uniforms are taken from it.
func RecipeFor(e Effect, vp Viewport, atlas GlyphAtlas) ShaderConfig {
	vert, frag := shaderPaths(e)
	cfg := ShaderConfig{VertexPath: vert, FragmentPath: frag}

	switch e {
	case Test:
		cfg.Uniforms = []Uniform{Float("time", 0)}
	case Pixel:
		cfg.Uniforms = []Uniform{resolution(vp), cellSize()}
	case Ascii:
		cfg.Uniforms = []Uniform{
			Int("img_texture", ImageUnit),
			Int("font_texture", FontUnit),
			resolution(vp),
			cellSize(),
			IVec2("font_grid", int32(atlas.Columns), int32(atlas.Rows)),
			Int("glyph_count", int32(atlas.GlyphCount())),
			Float("edge_threshold", EdgeThreshold),
		}
		cfg.UsesGlyphAtlas = true
	case EdgeDetect:
		cfg.Uniforms = []Uniform{resolution(vp)}
	}
	return cfg
}

// FrameUniforms returns the values an effect re-pushes every frame, whether or
// not anything changed: time for Test, viewport-dependent values for the rest.
func FrameUniforms(e Effect, vp Viewport, elapsed float32) []Uniform {
	switch e {
	case Test:
		return []Uniform{Float("time", elapsed)}
	case Pixel, Ascii:
		return []Uniform{resolution(vp), cellSize()}
	case EdgeDetect:
		return []Uniform{resolution(vp)}
	}
	return nil
}
