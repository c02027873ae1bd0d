package gfx

import (
	"errors"
	"fmt"
	"io/fs"
)

// Program is a linked shader program plus the uniform locations resolved on it.
// A uniform has to be registered before any value is pushed to it.
type Program struct {
	backend  Backend
	handle   uint32
	uniforms map[string]int32
}

// CompileProgram reads both stage sources from fsys and builds a program.
// Read, compile and link failures are all reported as *CompileError.
func CompileProgram(b Backend, fsys fs.FS, vertexPath, fragmentPath string) (*Program, error) {
	vertexSrc, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return nil, &CompileError{Stage: StageRead, Path: vertexPath, Log: err.Error()}
	}
	fragmentSrc, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return nil, &CompileError{Stage: StageRead, Path: fragmentPath, Log: err.Error()}
	}

	handle, err := b.CompileProgram(string(vertexSrc), string(fragmentSrc))
	if err != nil {
		var ce *CompileError
		if errors.As(err, &ce) && ce.Path == "" {
			switch ce.Stage {
			case StageVertex:
				ce.Path = vertexPath
			case StageFragment:
				ce.Path = fragmentPath
			default:
				ce.Path = vertexPath + ", " + fragmentPath
			}
		}
		return nil, err
	}
	return &Program{
		backend:  b,
		handle:   handle,
		uniforms: make(map[string]int32),
	}, nil
}

// Bind makes the program current for subsequent draws and uniform updates.
func (p *Program) Bind() {
	p.backend.UseProgram(p.handle)
}

// RegisterUniform resolves and caches the location of name. A location of -1
// (uniform optimised out by the driver) is still cached; GL ignores writes to it.
func (p *Program) RegisterUniform(name string) {
	if _, ok := p.uniforms[name]; ok {
		return
	}
	p.uniforms[name] = p.backend.UniformLocation(p.handle, name)
}

func (p *Program) location(name string) (int32, error) {
	loc, ok := p.uniforms[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnregisteredUniform, name)
	}
	return loc, nil
}

func (p *Program) SetFloat(name string, v float32) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.backend.Uniform1f(loc, v)
	return nil
}

func (p *Program) SetVec2(name string, x, y float32) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.backend.Uniform2f(loc, x, y)
	return nil
}

func (p *Program) SetIVec2(name string, x, y int32) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.backend.Uniform2i(loc, x, y)
	return nil
}

func (p *Program) SetInt(name string, v int32) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.backend.Uniform1i(loc, v)
	return nil
}

// Release deletes the GPU program. Calling it twice is a no-op.
func (p *Program) Release() {
	if p == nil || p.handle == 0 {
		return
	}
	p.backend.DeleteProgram(p.handle)
	p.handle = 0
}

// Handle returns the GPU id, zero after Release.
func (p *Program) Handle() uint32 { return p.handle }
