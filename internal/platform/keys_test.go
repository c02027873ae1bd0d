package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/MatejBursik/Shader-window/internal/input"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want input.Key
	}{
		{glfw.KeyEscape, input.KeyEscape},
		{glfw.KeyRightControl, input.KeyRightControl},
		{glfw.KeyLeftAlt, input.KeyLeftAlt},
		{glfw.KeyN, input.KeyN},
		{glfw.KeyS, input.KeyS},
		{glfw.KeyA, input.KeyUnknown},
		{glfw.KeyUnknown, input.KeyUnknown},
	}
	for _, tt := range tests {
		if got := translateKey(tt.in); got != tt.want {
			t.Errorf("translateKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKeyCallbackQueuesEvents(t *testing.T) {
	w := &Window{}
	w.onKey(nil, glfw.KeyLeftControl, 0, glfw.Press, 0)
	w.onKey(nil, glfw.KeyQ, 0, glfw.Press, 0)
	w.onKey(nil, glfw.KeyO, 0, glfw.Repeat, 0)
	w.onKey(nil, glfw.KeyO, 0, glfw.Release, 0)

	want := []input.Event{
		{Key: input.KeyLeftControl, Action: input.Press},
		{Key: input.KeyO, Action: input.Repeat},
		{Key: input.KeyO, Action: input.Release},
	}
	if len(w.pending) != len(want) {
		t.Fatalf("queued %d events, want %d: %v", len(w.pending), len(want), w.pending)
	}
	for i := range want {
		if w.pending[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, w.pending[i], want[i])
		}
	}
}
