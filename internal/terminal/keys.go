package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/1broseidon/nativewin/internal/platform"
)

// Terminals report keys, not key transitions, so the physical key is
// reconstructed from the tcell key and rune assuming a US layout.

var specialKeys = map[tcell.Key]platform.KeyCode{
	tcell.KeyEnter:      platform.KeyEnter,
	tcell.KeyTab:        platform.KeyTab,
	tcell.KeyBacktab:    platform.KeyTab,
	tcell.KeyBackspace:  platform.KeyBackspace,
	tcell.KeyBackspace2: platform.KeyBackspace,
	tcell.KeyEscape:     platform.KeyEscape,
	tcell.KeyUp:         platform.KeyArrowUp,
	tcell.KeyDown:       platform.KeyArrowDown,
	tcell.KeyLeft:       platform.KeyArrowLeft,
	tcell.KeyRight:      platform.KeyArrowRight,
	tcell.KeyInsert:     platform.KeyInsert,
	tcell.KeyDelete:     platform.KeyDelete,
	tcell.KeyHome:       platform.KeyHome,
	tcell.KeyEnd:        platform.KeyEnd,
	tcell.KeyPgUp:       platform.KeyPgUp,
	tcell.KeyPgDn:       platform.KeyPgDn,
	tcell.KeyPrint:      platform.KeyPrintScreen,
	tcell.KeyPause:      platform.KeyPause,
	tcell.KeyCtrlSpace:  platform.KeySpace,
}

var runeKeys = map[rune]platform.KeyCode{
	' ':  platform.KeySpace,
	'`':  platform.KeyBackquote,
	'~':  platform.KeyBackquote,
	'-':  platform.KeyMinus,
	'_':  platform.KeyMinus,
	'=':  platform.KeyEquals,
	'+':  platform.KeyEquals,
	'[':  platform.KeyOpenBrace,
	'{':  platform.KeyOpenBrace,
	']':  platform.KeyCloseBrace,
	'}':  platform.KeyCloseBrace,
	'\\': platform.KeyBackslash,
	'|':  platform.KeyBackslash,
	';':  platform.KeySemicolon,
	':':  platform.KeySemicolon,
	'\'': platform.KeyQuote,
	'"':  platform.KeyQuote,
	',':  platform.KeyComma,
	'<':  platform.KeyComma,
	'.':  platform.KeyFullStop,
	'>':  platform.KeyFullStop,
	'/':  platform.KeySlash,
	'?':  platform.KeySlash,
	'!':  platform.Key1,
	'@':  platform.Key2,
	'#':  platform.Key3,
	'$':  platform.Key4,
	'%':  platform.Key5,
	'^':  platform.Key6,
	'&':  platform.Key7,
	'*':  platform.Key8,
	'(':  platform.Key9,
	')':  platform.Key0,
}

// keyCode returns the physical key for a tcell key event, or KeyUnknown.
func keyCode(k tcell.Key, r rune) platform.KeyCode {
	if k == tcell.KeyRune {
		return runeKeyCode(r)
	}
	if code, ok := specialKeys[k]; ok {
		return code
	}
	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return platform.KeyF1 + platform.KeyCode(k-tcell.KeyF1)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// Ctrl-H, Ctrl-I and Ctrl-M alias Backspace, Tab and Enter and were
		// matched above
		return platform.KeyA + platform.KeyCode(k-tcell.KeyCtrlA)
	}
	return platform.KeyUnknown
}

func runeKeyCode(r rune) platform.KeyCode {
	switch {
	case r >= 'a' && r <= 'z':
		return platform.KeyA + platform.KeyCode(r-'a')
	case r >= 'A' && r <= 'Z':
		return platform.KeyA + platform.KeyCode(r-'A')
	case r >= '0' && r <= '9':
		return platform.Key0 + platform.KeyCode(r-'0')
	}
	if code, ok := runeKeys[r]; ok {
		return code
	}
	return platform.KeyUnknown
}

// modifierKeys returns the modifier keys held for mods, in press order.
func modifierKeys(mods tcell.ModMask) []platform.KeyCode {
	var keys []platform.KeyCode
	if mods&tcell.ModCtrl != 0 {
		keys = append(keys, platform.KeyLCtrl)
	}
	if mods&tcell.ModShift != 0 {
		keys = append(keys, platform.KeyLShift)
	}
	if mods&tcell.ModAlt != 0 {
		keys = append(keys, platform.KeyAlt)
	}
	if mods&tcell.ModMeta != 0 {
		keys = append(keys, platform.KeyLWin)
	}
	return keys
}

// shiftedRunes are typed with Shift on a US layout. tcell drops ModShift
// for runes, so it is put back from the rune itself.
const shiftedRunes = "~!@#$%^&*()_+{}|:\"<>?"

func shifted(r rune) bool {
	return (r >= 'A' && r <= 'Z') || strings.ContainsRune(shiftedRunes, r)
}

// keyEvents expands one terminal key into the press, typed character and
// release it stands for, wrapped in the presses of its modifiers.
func keyEvents(k tcell.Key, r rune, mods tcell.ModMask) []platform.Event {
	code := keyCode(k, r)
	if k == tcell.KeyRune && shifted(r) {
		mods |= tcell.ModShift
	}
	held := modifierKeys(mods)

	events := make([]platform.Event, 0, 3+2*len(held))
	for _, m := range held {
		events = append(events, platform.KeyDown{Keycode: m})
	}
	events = append(events, platform.KeyDown{Keycode: code})
	if k == tcell.KeyRune && r >= ' ' && r != 0x7f {
		events = append(events, platform.KeyChar{Keycode: code, Unichar: r})
	}
	events = append(events, platform.KeyUp{Keycode: code})
	for i := len(held) - 1; i >= 0; i-- {
		events = append(events, platform.KeyUp{Keycode: held[i]})
	}
	return events
}
