//go:build !windows

package platform

import (
	"errors"
	"runtime"
)

// setMousePassthrough has no native implementation outside Windows.
func setMousePassthrough(_ string, enabled bool) error {
	if !enabled {
		return nil
	}
	return errors.New("mouse passthrough is not supported on " + runtime.GOOS)
}
