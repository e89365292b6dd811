package nativewindow

import (
	"fmt"

	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/platform"
)

// translateMouseButton maps a button mask to a mouse button. The lowest set
// bit among primary, secondary and middle wins.
func translateMouseButton(mask uint32) (input.MouseButton, error) {
	switch {
	case mask&platform.ButtonPrimary != 0:
		return input.MouseLeft, nil
	case mask&platform.ButtonSecondary != 0:
		return input.MouseRight, nil
	case mask&platform.ButtonMiddle != 0:
		return input.MouseMiddle, nil
	default:
		return input.MouseUnknown, &UnsupportedError{Kind: KindMouseButton, Detail: fmt.Sprint(mask)}
	}
}
