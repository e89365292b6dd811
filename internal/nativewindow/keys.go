package nativewindow

import (
	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/platform"
)

// translateKey maps a native key code to a generic key. Gamepad codes and
// codes the native library does not define are unsupported. Defined codes
// without a generic equivalent map to input.KeyUnknown.
func translateKey(code platform.KeyCode) (input.Key, error) {
	if !code.Valid() || isGamepadKey(code) {
		return input.KeyUnknown, &UnsupportedError{Kind: KindKeyCode, Detail: code.String()}
	}
	if k, ok := keyTable[code]; ok {
		return k, nil
	}
	return input.KeyUnknown, nil
}

func isGamepadKey(code platform.KeyCode) bool {
	return code >= platform.KeyDPadCenter && code <= platform.KeyThumbR
}

// TranslateKey is translateKey for callers outside the package (key table
// listings, backends reporting what a code becomes).
func TranslateKey(code platform.KeyCode) (input.Key, error) {
	return translateKey(code)
}

var keyTable = map[platform.KeyCode]input.Key{
	platform.KeyA: input.KeyA,
	platform.KeyB: input.KeyB,
	platform.KeyC: input.KeyC,
	platform.KeyD: input.KeyD,
	platform.KeyE: input.KeyE,
	platform.KeyF: input.KeyF,
	platform.KeyG: input.KeyG,
	platform.KeyH: input.KeyH,
	platform.KeyI: input.KeyI,
	platform.KeyJ: input.KeyJ,
	platform.KeyK: input.KeyK,
	platform.KeyL: input.KeyL,
	platform.KeyM: input.KeyM,
	platform.KeyN: input.KeyN,
	platform.KeyO: input.KeyO,
	platform.KeyP: input.KeyP,
	platform.KeyQ: input.KeyQ,
	platform.KeyR: input.KeyR,
	platform.KeyS: input.KeyS,
	platform.KeyT: input.KeyT,
	platform.KeyU: input.KeyU,
	platform.KeyV: input.KeyV,
	platform.KeyW: input.KeyW,
	platform.KeyX: input.KeyX,
	platform.KeyY: input.KeyY,
	platform.KeyZ: input.KeyZ,

	platform.Key0: input.KeyD0,
	platform.Key1: input.KeyD1,
	platform.Key2: input.KeyD2,
	platform.Key3: input.KeyD3,
	platform.Key4: input.KeyD4,
	platform.Key5: input.KeyD5,
	platform.Key6: input.KeyD6,
	platform.Key7: input.KeyD7,
	platform.Key8: input.KeyD8,
	platform.Key9: input.KeyD9,

	platform.KeyPad0: input.KeyNumPad0,
	platform.KeyPad1: input.KeyNumPad1,
	platform.KeyPad2: input.KeyNumPad2,
	platform.KeyPad3: input.KeyNumPad3,
	platform.KeyPad4: input.KeyNumPad4,
	platform.KeyPad5: input.KeyNumPad5,
	platform.KeyPad6: input.KeyNumPad6,
	platform.KeyPad7: input.KeyNumPad7,
	platform.KeyPad8: input.KeyNumPad8,
	platform.KeyPad9: input.KeyNumPad9,

	platform.KeyF1:  input.KeyF1,
	platform.KeyF2:  input.KeyF2,
	platform.KeyF3:  input.KeyF3,
	platform.KeyF4:  input.KeyF4,
	platform.KeyF5:  input.KeyF5,
	platform.KeyF6:  input.KeyF6,
	platform.KeyF7:  input.KeyF7,
	platform.KeyF8:  input.KeyF8,
	platform.KeyF9:  input.KeyF9,
	platform.KeyF10: input.KeyF10,
	platform.KeyF11: input.KeyF11,
	platform.KeyF12: input.KeyF12,

	platform.KeyEscape:     input.KeyEscape,
	platform.KeyTilde:      input.KeyBackquote,
	platform.KeyMinus:      input.KeyMinus,
	platform.KeyEquals:     input.KeyEquals,
	platform.KeyBackspace:  input.KeyBackspace,
	platform.KeyTab:        input.KeyTab,
	platform.KeyOpenBrace:  input.KeyLeftBracket,
	platform.KeyCloseBrace: input.KeyRightBracket,
	platform.KeyEnter:      input.KeyReturn,
	platform.KeySemicolon:  input.KeySemicolon,
	platform.KeyQuote:      input.KeyQuote,
	platform.KeyBackslash:  input.KeyBackslash,
	platform.KeyBackslash2: input.KeyBackslash,
	platform.KeyComma:      input.KeyComma,
	platform.KeyFullStop:   input.KeyPeriod,
	platform.KeySlash:      input.KeySlash,
	platform.KeySpace:      input.KeySpace,

	platform.KeyInsert:     input.KeyInsert,
	platform.KeyDelete:     input.KeyDelete,
	platform.KeyHome:       input.KeyHome,
	platform.KeyEnd:        input.KeyEnd,
	platform.KeyPgUp:       input.KeyPageUp,
	platform.KeyPgDn:       input.KeyPageDown,
	platform.KeyArrowLeft:  input.KeyLeft,
	platform.KeyArrowRight: input.KeyRight,
	platform.KeyArrowUp:    input.KeyUp,
	platform.KeyArrowDown:  input.KeyDown,

	platform.KeyPadSlash:    input.KeyNumPadDivide,
	platform.KeyPadAsterisk: input.KeyNumPadMultiply,
	platform.KeyPadMinus:    input.KeyNumPadMinus,
	platform.KeyPadPlus:     input.KeyNumPadPlus,
	platform.KeyPadDelete:   input.KeyNumPadPeriod,
	platform.KeyPadEnter:    input.KeyNumPadEnter,
	platform.KeyPadEquals:   input.KeyNumPadEquals,

	platform.KeyPrintScreen: input.KeyPrintScreen,
	platform.KeyPause:       input.KeyPause,
	platform.KeyAt:          input.KeyAt,
	platform.KeyColon2:      input.KeyNumPadColon,
	platform.KeyBackquote:   input.KeyBackquote,
	platform.KeySemicolon2:  input.KeySemicolon,
	platform.KeyCommand:     input.KeyLGui,
	platform.KeyBack:        input.KeyAcBack,
	platform.KeyVolumeUp:    input.KeyVolumeUp,
	platform.KeyVolumeDown:  input.KeyVolumeDown,
	platform.KeySearch:      input.KeyAcSearch,

	platform.KeyLShift:     input.KeyLShift,
	platform.KeyRShift:     input.KeyRShift,
	platform.KeyLCtrl:      input.KeyLCtrl,
	platform.KeyRCtrl:      input.KeyRCtrl,
	platform.KeyAlt:        input.KeyLAlt,
	platform.KeyAltGr:      input.KeyRAlt,
	platform.KeyLWin:       input.KeyLGui,
	platform.KeyRWin:       input.KeyRGui,
	platform.KeyMenu:       input.KeyMenu,
	platform.KeyScrollLock: input.KeyScrollLock,
	platform.KeyNumLock:    input.KeyNumLockClear,
	platform.KeyCapsLock:   input.KeyCapsLock,
}
