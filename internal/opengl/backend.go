// Package opengl implements gfx.Backend on top of an OpenGL 3.3 core context.
//
// All calls must come from the thread that owns the context (see main.init,
// which locks the OS thread).
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/MatejBursik/Shader-window/internal/gfx"
)

// Backend is stateless apart from the quads it allocated; GL owns everything else.
type Backend struct {
	quads map[uint32]quadBuffers
}

type quadBuffers struct {
	vbo uint32
	ebo uint32
}

// New loads the GL function pointers for the current context.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	// Single textured quad, no depth.
	gl.Disable(gl.DEPTH_TEST)
	return &Backend{quads: make(map[uint32]quadBuffers)}, nil
}

// Version returns the driver's GL version string.
func (b *Backend) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (b *Backend) CreateTexture(width, height int, pix []byte) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Rows are tightly packed; widths are not always a multiple of 4 bytes' worth.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

func (b *Backend) BindTexture(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (b *Backend) DeleteTexture(handle uint32) {
	gl.DeleteTextures(1, &handle)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)

		stage := gfx.StageVertex
		if shaderType == gl.FRAGMENT_SHADER {
			stage = gfx.StageFragment
		}
		return 0, &gfx.CompileError{Stage: stage, Log: strings.TrimRight(logText, "\x00")}
	}
	return shader, nil
}

func (b *Backend) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(program)
		return 0, &gfx.CompileError{Stage: gfx.StageLink, Log: strings.TrimRight(logText, "\x00")}
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	return program, nil
}

func (b *Backend) UseProgram(handle uint32) {
	gl.UseProgram(handle)
}

func (b *Backend) DeleteProgram(handle uint32) {
	gl.DeleteProgram(handle)
}

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (b *Backend) Uniform1f(location int32, v float32)    { gl.Uniform1f(location, v) }
func (b *Backend) Uniform2f(location int32, x, y float32) { gl.Uniform2f(location, x, y) }
func (b *Backend) Uniform1i(location int32, v int32)      { gl.Uniform1i(location, v) }
func (b *Backend) Uniform2i(location int32, x, y int32)   { gl.Uniform2i(location, x, y) }

// CreateQuad uploads a quad covering clip space. Texture coordinates are
// flipped vertically because images are uploaded top row first.
func (b *Backend) CreateQuad() uint32 {
	vertices := []float32{
		// x, y, u, v: top right, bottom right, bottom left, top left
		1.0, 1.0, 1.0, 0.0,
		1.0, -1.0, 1.0, 1.0,
		-1.0, -1.0, 0.0, 1.0,
		-1.0, 1.0, 0.0, 0.0,
	}

	indices := []uint32{
		0, 1, 3,
		1, 2, 3,
	}

	var vao, vbo, ebo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.GenBuffers(1, &ebo)

	gl.BindVertexArray(vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// Texture coordinates (location 1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	b.quads[vao] = quadBuffers{vbo: vbo, ebo: ebo}
	return vao
}

func (b *Backend) DrawQuad(vao uint32) {
	gl.BindVertexArray(vao)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (b *Backend) DeleteQuad(vao uint32) {
	if bufs, ok := b.quads[vao]; ok {
		gl.DeleteBuffers(1, &bufs.vbo)
		gl.DeleteBuffers(1, &bufs.ebo)
		delete(b.quads, vao)
	}
	gl.DeleteVertexArrays(1, &vao)
}

func (b *Backend) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *Backend) Clear() {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

var _ gfx.Backend = (*Backend)(nil)
