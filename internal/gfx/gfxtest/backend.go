// Package gfxtest provides an in-memory gfx.Backend for tests.
package gfxtest

import (
	"strings"

	"github.com/MatejBursik/Shader-window/internal/gfx"
)

// UniformValue is the last value written to a uniform location.
type UniformValue struct {
	Kind string // "1f", "2f", "1i", "2i"
	F    [2]float32
	I    [2]int32
}

// Backend records every GPU call. Handles are allocated from a counter and
// never reused, so leaks show up as entries left in Textures or Programs.
type Backend struct {
	next uint32

	Textures map[uint32][2]int // live textures -> size
	Programs map[uint32]bool   // live programs
	Quads    map[uint32]bool

	// Bound maps texture unit -> handle.
	Bound   map[int]uint32
	Current uint32 // program in use

	// Locations maps program -> uniform name -> location.
	Locations map[uint32]map[string]int32
	// Values maps location -> last written value.
	Values map[int32]UniformValue
	// Writes counts uniform writes per location.
	Writes map[int32]int

	Draws     int
	Viewports [][2]int

	// FailCompile makes CompileProgram fail when the fragment source contains it.
	FailCompile string
	// FailStage is the stage reported for FailCompile, fragment when empty.
	FailStage string

	nextLoc int32
}

func New() *Backend {
	return &Backend{
		Textures:  make(map[uint32][2]int),
		Programs:  make(map[uint32]bool),
		Quads:     make(map[uint32]bool),
		Bound:     make(map[int]uint32),
		Locations: make(map[uint32]map[string]int32),
		Values:    make(map[int32]UniformValue),
		Writes:    make(map[int32]int),
	}
}

func (b *Backend) id() uint32 {
	b.next++
	return b.next
}

func (b *Backend) CreateTexture(width, height int, pix []byte) uint32 {
	h := b.id()
	b.Textures[h] = [2]int{width, height}
	return h
}

func (b *Backend) BindTexture(unit int, handle uint32) { b.Bound[unit] = handle }
func (b *Backend) DeleteTexture(handle uint32)         { delete(b.Textures, handle) }

func (b *Backend) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if b.FailCompile != "" && strings.Contains(fragmentSrc, b.FailCompile) {
		stage := b.FailStage
		if stage == "" {
			stage = gfx.StageFragment
		}
		return 0, &gfx.CompileError{Stage: stage, Log: "0:1: syntax error"}
	}
	h := b.id()
	b.Programs[h] = true
	b.Locations[h] = make(map[string]int32)
	return h, nil
}

func (b *Backend) UseProgram(handle uint32) { b.Current = handle }

func (b *Backend) DeleteProgram(handle uint32) {
	delete(b.Programs, handle)
	if b.Current == handle {
		b.Current = 0
	}
}

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	b.nextLoc++
	b.Locations[program][name] = b.nextLoc
	return b.nextLoc
}

func (b *Backend) set(loc int32, v UniformValue) {
	b.Values[loc] = v
	b.Writes[loc]++
}

func (b *Backend) Uniform1f(loc int32, v float32) {
	b.set(loc, UniformValue{Kind: "1f", F: [2]float32{v}})
}

func (b *Backend) Uniform2f(loc int32, x, y float32) {
	b.set(loc, UniformValue{Kind: "2f", F: [2]float32{x, y}})
}

func (b *Backend) Uniform1i(loc int32, v int32) {
	b.set(loc, UniformValue{Kind: "1i", I: [2]int32{v}})
}

func (b *Backend) Uniform2i(loc int32, x, y int32) {
	b.set(loc, UniformValue{Kind: "2i", I: [2]int32{x, y}})
}

func (b *Backend) CreateQuad() uint32 {
	h := b.id()
	b.Quads[h] = true
	return h
}

func (b *Backend) DrawQuad(vao uint32)   { b.Draws++ }
func (b *Backend) DeleteQuad(vao uint32) { delete(b.Quads, vao) }

func (b *Backend) Viewport(width, height int) {
	b.Viewports = append(b.Viewports, [2]int{width, height})
}

func (b *Backend) Clear() {}

// Uniform returns the last value written to name on the current program.
func (b *Backend) Uniform(name string) (UniformValue, bool) {
	locs, ok := b.Locations[b.Current]
	if !ok {
		return UniformValue{}, false
	}
	loc, ok := locs[name]
	if !ok {
		return UniformValue{}, false
	}
	v, ok := b.Values[loc]
	return v, ok
}

// WriteCount returns how many times name was written on the current program.
func (b *Backend) WriteCount(name string) int {
	loc, ok := b.Locations[b.Current][name]
	if !ok {
		return 0
	}
	return b.Writes[loc]
}
