// Package gfx owns the GPU-side resources of the viewer: image textures, shader
// programs with their uniform tables, and the static quad every frame is drawn on.
//
// Nothing in this package talks to OpenGL directly. All GPU work goes through the
// Backend interface so that resource lifecycles can be exercised without a context;
// the real implementation lives in internal/opengl.
package gfx

// Backend is the narrow slice of the graphics API the viewer needs.
// Handles are opaque GPU ids; zero means "no object".
type Backend interface {
	// CreateTexture uploads 4-channel RGBA pixels with clamp-to-edge wrapping
	// and linear filtering.
	CreateTexture(width, height int, pix []byte) uint32
	BindTexture(unit int, handle uint32)
	DeleteTexture(handle uint32)

	// CompileProgram compiles and links a vertex/fragment pair. A failure must
	// be returned as *CompileError carrying the driver's info log.
	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	UseProgram(handle uint32)
	DeleteProgram(handle uint32)
	UniformLocation(program uint32, name string) int32

	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	Uniform1i(location int32, v int32)
	Uniform2i(location int32, x, y int32)

	// CreateQuad uploads the static two-triangle quad and returns its vertex array.
	CreateQuad() uint32
	DrawQuad(vao uint32)
	DeleteQuad(vao uint32)

	Viewport(width, height int)
	Clear()
}
