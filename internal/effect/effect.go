// Package effect is the fixed catalog of image effects the viewer can apply.
//
// Effects are stateless descriptors. Selecting one maps it, together with the
// current viewport size, to a ShaderConfig recipe from which a fresh shader
// program is built.
package effect

import (
	"fmt"
	"strings"
)

// Effect is one entry of the cyclic effect ring.
type Effect int

const (
	None Effect = iota
	Test
	Pixel
	Ascii
	EdgeDetect

	count
)

var names = [count]string{
	None:       "none",
	Test:       "test",
	Pixel:      "pixel",
	Ascii:      "ascii",
	EdgeDetect: "edge_detect",
}

// All returns every effect in ring order.
func All() []Effect {
	return []Effect{None, Test, Pixel, Ascii, EdgeDetect}
}

// Next returns the successor in the ring; the last effect wraps to None.
func (e Effect) Next() Effect {
	return (e + 1) % count
}

func (e Effect) Valid() bool {
	return e >= 0 && e < count
}

func (e Effect) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Effect(%d)", int(e))
	}
	return names[e]
}

// Parse maps a name as printed by String back to its Effect. Matching ignores
// case and accepts '-' in place of '_'.
func Parse(name string) (Effect, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for e, n := range names {
		if n == key {
			return Effect(e), nil
		}
	}
	return None, fmt.Errorf("unknown effect %q (want one of %s)", name, strings.Join(names[:], ", "))
}
