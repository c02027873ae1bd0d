//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// OpenPath opens a file, folder or URL with its default handler.
func OpenPath(target string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return err
	}
	if err := windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}
	return nil
}
