package platform

import "fmt"

// KeyCode is a native physical key code.
type KeyCode int

const (
	KeyA           KeyCode = 1
	KeyB           KeyCode = 2
	KeyC           KeyCode = 3
	KeyD           KeyCode = 4
	KeyE           KeyCode = 5
	KeyF           KeyCode = 6
	KeyG           KeyCode = 7
	KeyH           KeyCode = 8
	KeyI           KeyCode = 9
	KeyJ           KeyCode = 10
	KeyK           KeyCode = 11
	KeyL           KeyCode = 12
	KeyM           KeyCode = 13
	KeyN           KeyCode = 14
	KeyO           KeyCode = 15
	KeyP           KeyCode = 16
	KeyQ           KeyCode = 17
	KeyR           KeyCode = 18
	KeyS           KeyCode = 19
	KeyT           KeyCode = 20
	KeyU           KeyCode = 21
	KeyV           KeyCode = 22
	KeyW           KeyCode = 23
	KeyX           KeyCode = 24
	KeyY           KeyCode = 25
	KeyZ           KeyCode = 26
	Key0           KeyCode = 27
	Key1           KeyCode = 28
	Key2           KeyCode = 29
	Key3           KeyCode = 30
	Key4           KeyCode = 31
	Key5           KeyCode = 32
	Key6           KeyCode = 33
	Key7           KeyCode = 34
	Key8           KeyCode = 35
	Key9           KeyCode = 36
	KeyPad0        KeyCode = 37
	KeyPad1        KeyCode = 38
	KeyPad2        KeyCode = 39
	KeyPad3        KeyCode = 40
	KeyPad4        KeyCode = 41
	KeyPad5        KeyCode = 42
	KeyPad6        KeyCode = 43
	KeyPad7        KeyCode = 44
	KeyPad8        KeyCode = 45
	KeyPad9        KeyCode = 46
	KeyF1          KeyCode = 47
	KeyF2          KeyCode = 48
	KeyF3          KeyCode = 49
	KeyF4          KeyCode = 50
	KeyF5          KeyCode = 51
	KeyF6          KeyCode = 52
	KeyF7          KeyCode = 53
	KeyF8          KeyCode = 54
	KeyF9          KeyCode = 55
	KeyF10         KeyCode = 56
	KeyF11         KeyCode = 57
	KeyF12         KeyCode = 58
	KeyEscape      KeyCode = 59
	KeyTilde       KeyCode = 60
	KeyMinus       KeyCode = 61
	KeyEquals      KeyCode = 62
	KeyBackspace   KeyCode = 63
	KeyTab         KeyCode = 64
	KeyOpenBrace   KeyCode = 65
	KeyCloseBrace  KeyCode = 66
	KeyEnter       KeyCode = 67
	KeySemicolon   KeyCode = 68
	KeyQuote       KeyCode = 69
	KeyBackslash   KeyCode = 70
	KeyBackslash2  KeyCode = 71
	KeyComma       KeyCode = 72
	KeyFullStop    KeyCode = 73
	KeySlash       KeyCode = 74
	KeySpace       KeyCode = 75
	KeyInsert      KeyCode = 76
	KeyDelete      KeyCode = 77
	KeyHome        KeyCode = 78
	KeyEnd         KeyCode = 79
	KeyPgUp        KeyCode = 80
	KeyPgDn        KeyCode = 81
	KeyArrowLeft   KeyCode = 82
	KeyArrowRight  KeyCode = 83
	KeyArrowUp     KeyCode = 84
	KeyArrowDown   KeyCode = 85
	KeyPadSlash    KeyCode = 86
	KeyPadAsterisk KeyCode = 87
	KeyPadMinus    KeyCode = 88
	KeyPadPlus     KeyCode = 89
	KeyPadDelete   KeyCode = 90
	KeyPadEnter    KeyCode = 91
	KeyPrintScreen KeyCode = 92
	KeyPause       KeyCode = 93
	KeyAbntC1      KeyCode = 94
	KeyYen         KeyCode = 95
	KeyKana        KeyCode = 96
	KeyConvert     KeyCode = 97
	KeyNoConvert   KeyCode = 98
	KeyAt          KeyCode = 99
	KeyCircumflex  KeyCode = 100
	KeyColon2      KeyCode = 101
	KeyKanji       KeyCode = 102
	KeyPadEquals   KeyCode = 103
	KeyBackquote   KeyCode = 104
	KeySemicolon2  KeyCode = 105
	KeyCommand     KeyCode = 106
	KeyBack        KeyCode = 107
	KeyVolumeUp    KeyCode = 108
	KeyVolumeDown  KeyCode = 109
	KeySearch      KeyCode = 110

	// gamepad keys
	KeyDPadCenter KeyCode = 111
	KeyButtonX    KeyCode = 112
	KeyButtonY    KeyCode = 113
	KeyDPadUp     KeyCode = 114
	KeyDPadDown   KeyCode = 115
	KeyDPadLeft   KeyCode = 116
	KeyDPadRight  KeyCode = 117
	KeySelect     KeyCode = 118
	KeyStart      KeyCode = 119
	KeyButtonL1   KeyCode = 120
	KeyButtonR1   KeyCode = 121
	KeyButtonL2   KeyCode = 122
	KeyButtonR2   KeyCode = 123
	KeyButtonA    KeyCode = 124
	KeyButtonB    KeyCode = 125
	KeyThumbL     KeyCode = 126
	KeyThumbR     KeyCode = 127

	KeyUnknown KeyCode = 128

	// modifiers
	KeyLShift     KeyCode = 215
	KeyRShift     KeyCode = 216
	KeyLCtrl      KeyCode = 217
	KeyRCtrl      KeyCode = 218
	KeyAlt        KeyCode = 219
	KeyAltGr      KeyCode = 220
	KeyLWin       KeyCode = 221
	KeyRWin       KeyCode = 222
	KeyMenu       KeyCode = 223
	KeyScrollLock KeyCode = 224
	KeyNumLock    KeyCode = 225
	KeyCapsLock   KeyCode = 226

	KeyMax KeyCode = 227
)

var keyCodeNames = map[KeyCode]string{
	KeyA:           "A",
	KeyB:           "B",
	KeyC:           "C",
	KeyD:           "D",
	KeyE:           "E",
	KeyF:           "F",
	KeyG:           "G",
	KeyH:           "H",
	KeyI:           "I",
	KeyJ:           "J",
	KeyK:           "K",
	KeyL:           "L",
	KeyM:           "M",
	KeyN:           "N",
	KeyO:           "O",
	KeyP:           "P",
	KeyQ:           "Q",
	KeyR:           "R",
	KeyS:           "S",
	KeyT:           "T",
	KeyU:           "U",
	KeyV:           "V",
	KeyW:           "W",
	KeyX:           "X",
	KeyY:           "Y",
	KeyZ:           "Z",
	Key0:           "0",
	Key1:           "1",
	Key2:           "2",
	Key3:           "3",
	Key4:           "4",
	Key5:           "5",
	Key6:           "6",
	Key7:           "7",
	Key8:           "8",
	Key9:           "9",
	KeyPad0:        "PAD0",
	KeyPad1:        "PAD1",
	KeyPad2:        "PAD2",
	KeyPad3:        "PAD3",
	KeyPad4:        "PAD4",
	KeyPad5:        "PAD5",
	KeyPad6:        "PAD6",
	KeyPad7:        "PAD7",
	KeyPad8:        "PAD8",
	KeyPad9:        "PAD9",
	KeyF1:          "F1",
	KeyF2:          "F2",
	KeyF3:          "F3",
	KeyF4:          "F4",
	KeyF5:          "F5",
	KeyF6:          "F6",
	KeyF7:          "F7",
	KeyF8:          "F8",
	KeyF9:          "F9",
	KeyF10:         "F10",
	KeyF11:         "F11",
	KeyF12:         "F12",
	KeyEscape:      "ESCAPE",
	KeyTilde:       "TILDE",
	KeyMinus:       "MINUS",
	KeyEquals:      "EQUALS",
	KeyBackspace:   "BACKSPACE",
	KeyTab:         "TAB",
	KeyOpenBrace:   "OPENBRACE",
	KeyCloseBrace:  "CLOSEBRACE",
	KeyEnter:       "ENTER",
	KeySemicolon:   "SEMICOLON",
	KeyQuote:       "QUOTE",
	KeyBackslash:   "BACKSLASH",
	KeyBackslash2:  "BACKSLASH2",
	KeyComma:       "COMMA",
	KeyFullStop:    "FULLSTOP",
	KeySlash:       "SLASH",
	KeySpace:       "SPACE",
	KeyInsert:      "INSERT",
	KeyDelete:      "DELETE",
	KeyHome:        "HOME",
	KeyEnd:         "END",
	KeyPgUp:        "PGUP",
	KeyPgDn:        "PGDN",
	KeyArrowLeft:   "LEFT",
	KeyArrowRight:  "RIGHT",
	KeyArrowUp:     "UP",
	KeyArrowDown:   "DOWN",
	KeyPadSlash:    "PADSLASH",
	KeyPadAsterisk: "PADASTERISK",
	KeyPadMinus:    "PADMINUS",
	KeyPadPlus:     "PADPLUS",
	KeyPadDelete:   "PADDELETE",
	KeyPadEnter:    "PADENTER",
	KeyPrintScreen: "PRINTSCREEN",
	KeyPause:       "PAUSE",
	KeyAbntC1:      "ABNTC1",
	KeyYen:         "YEN",
	KeyKana:        "KANA",
	KeyConvert:     "CONVERT",
	KeyNoConvert:   "NOCONVERT",
	KeyAt:          "AT",
	KeyCircumflex:  "CIRCUMFLEX",
	KeyColon2:      "COLON2",
	KeyKanji:       "KANJI",
	KeyPadEquals:   "PADEQUALS",
	KeyBackquote:   "BACKQUOTE",
	KeySemicolon2:  "SEMICOLON2",
	KeyCommand:     "COMMAND",
	KeyBack:        "BACK",
	KeyVolumeUp:    "VOLUMEUP",
	KeyVolumeDown:  "VOLUMEDOWN",
	KeySearch:      "SEARCH",
	KeyDPadCenter:  "DPADCENTER",
	KeyButtonX:     "BUTTONX",
	KeyButtonY:     "BUTTONY",
	KeyDPadUp:      "DPADUP",
	KeyDPadDown:    "DPADDOWN",
	KeyDPadLeft:    "DPADLEFT",
	KeyDPadRight:   "DPADRIGHT",
	KeySelect:      "SELECT",
	KeyStart:       "START",
	KeyButtonL1:    "BUTTONL1",
	KeyButtonR1:    "BUTTONR1",
	KeyButtonL2:    "BUTTONL2",
	KeyButtonR2:    "BUTTONR2",
	KeyButtonA:     "BUTTONA",
	KeyButtonB:     "BUTTONB",
	KeyThumbL:      "THUMBL",
	KeyThumbR:      "THUMBR",
	KeyUnknown:     "UNKNOWN",
	KeyLShift:      "LSHIFT",
	KeyRShift:      "RSHIFT",
	KeyLCtrl:       "LCTRL",
	KeyRCtrl:       "RCTRL",
	KeyAlt:         "ALT",
	KeyAltGr:       "ALTGR",
	KeyLWin:        "LWIN",
	KeyRWin:        "RWIN",
	KeyMenu:        "MENU",
	KeyScrollLock:  "SCROLLLOCK",
	KeyNumLock:     "NUMLOCK",
	KeyCapsLock:    "CAPSLOCK",
}

func (k KeyCode) String() string {
	if s, ok := keyCodeNames[k]; ok {
		return s
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}

// Valid reports whether k is a code the native library defines.
func (k KeyCode) Valid() bool {
	_, ok := keyCodeNames[k]
	return ok
}

// KeyCodes returns every defined key code in ascending order.
func KeyCodes() []KeyCode {
	u := make([]KeyCode, 0, len(keyCodeNames))
	for k := KeyCode(1); k < KeyMax; k++ {
		if k.Valid() {
			u = append(u, k)
		}
	}
	return u
}
