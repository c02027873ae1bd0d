package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/MatejBursik/Shader-window/internal/input"
)

var keys = map[glfw.Key]input.Key{
	glfw.KeyEscape:       input.KeyEscape,
	glfw.KeyLeftControl:  input.KeyLeftControl,
	glfw.KeyRightControl: input.KeyRightControl,
	glfw.KeyLeftAlt:      input.KeyLeftAlt,
	glfw.KeyRightAlt:     input.KeyRightAlt,
	glfw.KeyF:            input.KeyF,
	glfw.KeyI:            input.KeyI,
	glfw.KeyN:            input.KeyN,
	glfw.KeyO:            input.KeyO,
	glfw.KeyS:            input.KeyS,
}

// translateKey maps a GLFW key code; keys the viewer never binds come back
// as KeyUnknown and are dropped.
func translateKey(k glfw.Key) input.Key {
	if key, ok := keys[k]; ok {
		return key
	}
	return input.KeyUnknown
}
