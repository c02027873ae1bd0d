//go:build windows

package platform

import (
	"errors"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	kernel32                       = windows.NewLazySystemDLL("kernel32.dll")
	procFindWindow                 = user32.NewProc("FindWindowW")
	procGetWindowLongPtr           = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtr           = user32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procSetLastError               = kernel32.NewProc("SetLastError")
)

const (
	gwlExStyle = -20
	lwaAlpha   = 0x00000002
)

var errWindowNotFound = errors.New("window handle not found")

// findWindow looks the GLFW window up by title, since GLFW does not hand out
// its HWND. The window may not be registered yet right after creation.
func findWindow(title string) (uintptr, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	for i := 0; i < 20; i++ {
		hwnd, _, _ := procFindWindow.Call(0, uintptr(unsafe.Pointer(titlePtr)))
		if hwnd != 0 {
			return hwnd, nil
		}
		time.Sleep(time.Millisecond)
	}
	return 0, errWindowNotFound
}

type hwndWindow uintptr

// A zero return from Get/SetWindowLongPtrW is only a failure when the last
// error is set, so it is cleared before each call.
func (h hwndWindow) longPtrCall(proc *windows.LazyProc, args ...uintptr) (uintptr, error) {
	procSetLastError.Call(0)
	r, _, err := proc.Call(args...)
	if r == 0 && err != nil && err != windows.ERROR_SUCCESS {
		return 0, err
	}
	return r, nil
}

func (h hwndWindow) ExStyle() (uintptr, error) {
	index := int32(gwlExStyle)
	return h.longPtrCall(procGetWindowLongPtr, uintptr(h), uintptr(index))
}

func (h hwndWindow) SetExStyle(style uintptr) error {
	index := int32(gwlExStyle)
	_, err := h.longPtrCall(procSetWindowLongPtr, uintptr(h), uintptr(index), style)
	return err
}

func (h hwndWindow) SetOpaque() error {
	r, _, err := procSetLayeredWindowAttributes.Call(uintptr(h), 0, 255, lwaAlpha)
	if r == 0 {
		return err
	}
	return nil
}

// setMousePassthrough toggles WS_EX_LAYERED|WS_EX_TRANSPARENT on the window,
// which makes it transparent to hit testing.
func setMousePassthrough(title string, enabled bool) error {
	hwnd, err := findWindow(title)
	if err != nil {
		return err
	}
	return applyPassthrough(hwndWindow(hwnd), enabled)
}
