//go:build !windows

package platform

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenPath opens a file, folder or URL with its default handler.
func OpenPath(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", target)
	default:
		return fmt.Errorf("opening %s: unsupported OS %s", target, runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}
	return nil
}
