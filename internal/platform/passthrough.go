package platform

import "fmt"

const (
	wsExLayered       = 0x00080000
	wsExTransparent   = 0x00000020
	passthroughStyles = wsExLayered | wsExTransparent
)

// layeredWindow is the slice of the Win32 window API passthrough needs.
type layeredWindow interface {
	ExStyle() (uintptr, error)
	SetExStyle(style uintptr) error
	// SetOpaque sets a constant alpha of 255. A window that gains
	// WS_EX_LAYERED is not drawn until its layered attributes are set.
	SetOpaque() error
}

func passthroughExStyle(style uintptr, enabled bool) uintptr {
	if enabled {
		return style | passthroughStyles
	}
	return style &^ passthroughStyles
}

func applyPassthrough(w layeredWindow, enabled bool) error {
	style, err := w.ExStyle()
	if err != nil {
		return fmt.Errorf("read extended style: %w", err)
	}
	if err := w.SetExStyle(passthroughExStyle(style, enabled)); err != nil {
		return fmt.Errorf("set extended style: %w", err)
	}
	if enabled {
		if err := w.SetOpaque(); err != nil {
			return fmt.Errorf("set layered attributes: %w", err)
		}
	}
	return nil
}
