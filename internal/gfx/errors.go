package gfx

import (
	"errors"
	"fmt"
)

// ErrUnregisteredUniform is returned when a value is pushed to a uniform name
// that was never registered on the program.
var ErrUnregisteredUniform = errors.New("gfx: uniform not registered")

// DecodeError reports an image file that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Stage names used in CompileError.
const (
	StageRead     = "read"
	StageVertex   = "vertex"
	StageFragment = "fragment"
	StageLink     = "link"
)

// CompileError reports a shader source that could not be read, compiled or linked.
// Log holds the diagnostic text produced by the driver (or the read error).
type CompileError struct {
	Stage string
	Path  string
	Log   string
}

func (e *CompileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("shader %s (%s): %s", e.Stage, e.Path, e.Log)
	}
	return fmt.Sprintf("shader %s: %s", e.Stage, e.Log)
}
