// Package shaders embeds the GLSL sources of every effect, one directory per
// effect holding vertex.glsl and fragment.glsl.
package shaders

import "embed"

//go:embed */*.glsl
var FS embed.FS
