//go:build !windows

package platform

import "testing"

func TestPassthroughUnsupported(t *testing.T) {
	if err := setMousePassthrough("viewer", true); err == nil {
		t.Error("enabling passthrough should report it is unsupported")
	}
	if err := setMousePassthrough("viewer", false); err != nil {
		t.Errorf("disabling passthrough: %v", err)
	}
}
