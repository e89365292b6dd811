package x11

import (
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/nativewin/internal/platform"
)

// keyCodeForKeysym maps an X keysym (column 0 of the keyboard mapping) to a
// native key code. Unmapped keysyms are platform.KeyUnknown.
// Constants from /usr/include/X11/keysymdef.h and XF86keysym.h.
func keyCodeForKeysym(sym xproto.Keysym) platform.KeyCode {
	switch {
	case sym >= 'a' && sym <= 'z':
		return platform.KeyA + platform.KeyCode(sym-'a')
	case sym >= 'A' && sym <= 'Z':
		return platform.KeyA + platform.KeyCode(sym-'A')
	case sym >= '0' && sym <= '9':
		return platform.Key0 + platform.KeyCode(sym-'0')
	case sym >= 0xffb0 && sym <= 0xffb9: // KP_0..KP_9
		return platform.KeyPad0 + platform.KeyCode(sym-0xffb0)
	case sym >= 0xffbe && sym <= 0xffc9: // F1..F12
		return platform.KeyF1 + platform.KeyCode(sym-0xffbe)
	}
	if k, ok := keysymTable[sym]; ok {
		return k
	}
	return platform.KeyUnknown
}

var keysymTable = map[xproto.Keysym]platform.KeyCode{
	0x20: platform.KeySpace,
	0x27: platform.KeyQuote,
	0x2c: platform.KeyComma,
	0x2d: platform.KeyMinus,
	0x2e: platform.KeyFullStop,
	0x2f: platform.KeySlash,
	0x3a: platform.KeyColon2,
	0x3b: platform.KeySemicolon,
	0x3d: platform.KeyEquals,
	0x40: platform.KeyAt,
	0x5b: platform.KeyOpenBrace,
	0x5c: platform.KeyBackslash,
	0x5d: platform.KeyCloseBrace,
	0x5e: platform.KeyCircumflex,
	0x60: platform.KeyBackquote,
	0x7e: platform.KeyTilde,
	0xa5: platform.KeyYen,

	0xff08: platform.KeyBackspace,
	0xff09: platform.KeyTab,
	0xfe20: platform.KeyTab, // ISO_Left_Tab
	0xff0d: platform.KeyEnter,
	0xff13: platform.KeyPause,
	0xff14: platform.KeyScrollLock,
	0xff1b: platform.KeyEscape,
	0xff21: platform.KeyKanji,
	0xff22: platform.KeyNoConvert, // Muhenkan
	0xff23: platform.KeyConvert,   // Henkan
	0xff2e: platform.KeyKana,      // Kana_Shift
	0xff50: platform.KeyHome,
	0xff51: platform.KeyArrowLeft,
	0xff52: platform.KeyArrowUp,
	0xff53: platform.KeyArrowRight,
	0xff54: platform.KeyArrowDown,
	0xff55: platform.KeyPgUp,
	0xff56: platform.KeyPgDn,
	0xff57: platform.KeyEnd,
	0xff61: platform.KeyPrintScreen,
	0xff63: platform.KeyInsert,
	0xff67: platform.KeyMenu,
	0xff7f: platform.KeyNumLock,
	0xffff: platform.KeyDelete,

	// keypad with num lock off
	0xff8d: platform.KeyPadEnter,
	0xff95: platform.KeyPad7, // KP_Home
	0xff96: platform.KeyPad4, // KP_Left
	0xff97: platform.KeyPad8, // KP_Up
	0xff98: platform.KeyPad6, // KP_Right
	0xff99: platform.KeyPad2, // KP_Down
	0xff9a: platform.KeyPad9, // KP_Prior
	0xff9b: platform.KeyPad3, // KP_Next
	0xff9c: platform.KeyPad1, // KP_End
	0xff9d: platform.KeyPad5, // KP_Begin
	0xff9e: platform.KeyPad0, // KP_Insert
	0xff9f: platform.KeyPadDelete,
	0xffaa: platform.KeyPadAsterisk,
	0xffab: platform.KeyPadPlus,
	0xffad: platform.KeyPadMinus,
	0xffae: platform.KeyPadDelete, // KP_Decimal
	0xffaf: platform.KeyPadSlash,
	0xffbd: platform.KeyPadEquals,

	0xffe1: platform.KeyLShift,
	0xffe2: platform.KeyRShift,
	0xffe3: platform.KeyLCtrl,
	0xffe4: platform.KeyRCtrl,
	0xffe5: platform.KeyCapsLock,
	0xffe9: platform.KeyAlt,
	0xffea: platform.KeyAltGr,
	0xfe03: platform.KeyAltGr, // ISO_Level3_Shift
	0xffeb: platform.KeyLWin,
	0xffec: platform.KeyRWin,

	0x1008ff11: platform.KeyVolumeDown,
	0x1008ff13: platform.KeyVolumeUp,
	0x1008ff1b: platform.KeySearch,
	0x1008ff26: platform.KeyBack,
}

// typedRune returns the character typed when keybind.LookupString returned
// s. Lookups of keys without a character return the keysym name, which is
// longer than one rune.
func typedRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}
	if !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}

// buttonMask maps an X pointer button to a native button mask. Buttons 4 to
// 7 are wheel steps, reported by wheelDelta instead.
func buttonMask(b xproto.Button) (uint32, bool) {
	switch b {
	case 1:
		return platform.ButtonPrimary, true
	case 2:
		return platform.ButtonMiddle, true
	case 3:
		return platform.ButtonSecondary, true
	}
	return 0, false
}

// wheelDelta is the vertical wheel step of an X pointer button.
func wheelDelta(b xproto.Button) int {
	switch b {
	case 4:
		return 1
	case 5:
		return -1
	}
	return 0
}
