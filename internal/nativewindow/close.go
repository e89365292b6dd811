package nativewindow

import "github.com/1broseidon/nativewin/internal/input"

// closeRequested reports whether ev asks to close a window that exits on
// escape: a press of the Escape key. The scancode is not considered.
func closeRequested(exitOnEsc bool, ev input.Input) bool {
	if !exitOnEsc {
		return false
	}
	b, ok := ev.(input.ButtonArgs)
	if !ok || b.State != input.Press {
		return false
	}
	k, ok := b.Button.(input.Key)
	return ok && k == input.KeyEscape
}

func (w *Window) applyClosePolicy(ev input.Input) {
	if closeRequested(w.exitOnEsc, ev) {
		w.shouldClose = true
	}
}
