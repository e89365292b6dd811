package input

import "fmt"

// Key identifies a keyboard key.
type Key int

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyTab
	KeyReturn
	KeyEscape
	KeySpace
	KeyExclaim
	KeyQuotedbl
	KeyHash
	KeyDollar
	KeyPercent
	KeyAmpersand
	KeyQuote
	KeyLeftParen
	KeyRightParen
	KeyAsterisk
	KeyPlus
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeyD0
	KeyD1
	KeyD2
	KeyD3
	KeyD4
	KeyD5
	KeyD6
	KeyD7
	KeyD8
	KeyD9
	KeyColon
	KeySemicolon
	KeyLess
	KeyEquals
	KeyGreater
	KeyQuestion
	KeyAt
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyCaret
	KeyUnderscore
	KeyBackquote
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyDelete
	KeyCapsLock
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyNumLockClear
	KeyNumPadDivide
	KeyNumPadMultiply
	KeyNumPadMinus
	KeyNumPadPlus
	KeyNumPadEnter
	KeyNumPad1
	KeyNumPad2
	KeyNumPad3
	KeyNumPad4
	KeyNumPad5
	KeyNumPad6
	KeyNumPad7
	KeyNumPad8
	KeyNumPad9
	KeyNumPad0
	KeyNumPadPeriod
	KeyNumPadEquals
	KeyNumPadComma
	KeyNumPadColon
	KeyApplication
	KeyPower
	KeyExecute
	KeyHelp
	KeyMenu
	KeySelect
	KeyStop
	KeyAgain
	KeyUndo
	KeyCut
	KeyCopy
	KeyPaste
	KeyFind
	KeyMute
	KeyVolumeUp
	KeyVolumeDown
	KeyAcSearch
	KeyAcHome
	KeyAcBack
	KeyAcForward
	KeyAcStop
	KeyAcRefresh
	KeyAcBookmarks
	KeyLCtrl
	KeyLShift
	KeyLAlt
	KeyLGui
	KeyRCtrl
	KeyRShift
	KeyRAlt
	KeyRGui

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:        "Unknown",
	KeyBackspace:      "Backspace",
	KeyTab:            "Tab",
	KeyReturn:         "Return",
	KeyEscape:         "Escape",
	KeySpace:          "Space",
	KeyExclaim:        "Exclaim",
	KeyQuotedbl:       "Quotedbl",
	KeyHash:           "Hash",
	KeyDollar:         "Dollar",
	KeyPercent:        "Percent",
	KeyAmpersand:      "Ampersand",
	KeyQuote:          "Quote",
	KeyLeftParen:      "LeftParen",
	KeyRightParen:     "RightParen",
	KeyAsterisk:       "Asterisk",
	KeyPlus:           "Plus",
	KeyComma:          "Comma",
	KeyMinus:          "Minus",
	KeyPeriod:         "Period",
	KeySlash:          "Slash",
	KeyD0:             "D0",
	KeyD1:             "D1",
	KeyD2:             "D2",
	KeyD3:             "D3",
	KeyD4:             "D4",
	KeyD5:             "D5",
	KeyD6:             "D6",
	KeyD7:             "D7",
	KeyD8:             "D8",
	KeyD9:             "D9",
	KeyColon:          "Colon",
	KeySemicolon:      "Semicolon",
	KeyLess:           "Less",
	KeyEquals:         "Equals",
	KeyGreater:        "Greater",
	KeyQuestion:       "Question",
	KeyAt:             "At",
	KeyLeftBracket:    "LeftBracket",
	KeyBackslash:      "Backslash",
	KeyRightBracket:   "RightBracket",
	KeyCaret:          "Caret",
	KeyUnderscore:     "Underscore",
	KeyBackquote:      "Backquote",
	KeyA:              "A",
	KeyB:              "B",
	KeyC:              "C",
	KeyD:              "D",
	KeyE:              "E",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyI:              "I",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyM:              "M",
	KeyN:              "N",
	KeyO:              "O",
	KeyP:              "P",
	KeyQ:              "Q",
	KeyR:              "R",
	KeyS:              "S",
	KeyT:              "T",
	KeyU:              "U",
	KeyV:              "V",
	KeyW:              "W",
	KeyX:              "X",
	KeyY:              "Y",
	KeyZ:              "Z",
	KeyDelete:         "Delete",
	KeyCapsLock:       "CapsLock",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyF13:            "F13",
	KeyF14:            "F14",
	KeyF15:            "F15",
	KeyF16:            "F16",
	KeyF17:            "F17",
	KeyF18:            "F18",
	KeyF19:            "F19",
	KeyF20:            "F20",
	KeyF21:            "F21",
	KeyF22:            "F22",
	KeyF23:            "F23",
	KeyF24:            "F24",
	KeyPrintScreen:    "PrintScreen",
	KeyScrollLock:     "ScrollLock",
	KeyPause:          "Pause",
	KeyInsert:         "Insert",
	KeyHome:           "Home",
	KeyPageUp:         "PageUp",
	KeyEnd:            "End",
	KeyPageDown:       "PageDown",
	KeyRight:          "Right",
	KeyLeft:           "Left",
	KeyDown:           "Down",
	KeyUp:             "Up",
	KeyNumLockClear:   "NumLockClear",
	KeyNumPadDivide:   "NumPadDivide",
	KeyNumPadMultiply: "NumPadMultiply",
	KeyNumPadMinus:    "NumPadMinus",
	KeyNumPadPlus:     "NumPadPlus",
	KeyNumPadEnter:    "NumPadEnter",
	KeyNumPad1:        "NumPad1",
	KeyNumPad2:        "NumPad2",
	KeyNumPad3:        "NumPad3",
	KeyNumPad4:        "NumPad4",
	KeyNumPad5:        "NumPad5",
	KeyNumPad6:        "NumPad6",
	KeyNumPad7:        "NumPad7",
	KeyNumPad8:        "NumPad8",
	KeyNumPad9:        "NumPad9",
	KeyNumPad0:        "NumPad0",
	KeyNumPadPeriod:   "NumPadPeriod",
	KeyNumPadEquals:   "NumPadEquals",
	KeyNumPadComma:    "NumPadComma",
	KeyNumPadColon:    "NumPadColon",
	KeyApplication:    "Application",
	KeyPower:          "Power",
	KeyExecute:        "Execute",
	KeyHelp:           "Help",
	KeyMenu:           "Menu",
	KeySelect:         "Select",
	KeyStop:           "Stop",
	KeyAgain:          "Again",
	KeyUndo:           "Undo",
	KeyCut:            "Cut",
	KeyCopy:           "Copy",
	KeyPaste:          "Paste",
	KeyFind:           "Find",
	KeyMute:           "Mute",
	KeyVolumeUp:       "VolumeUp",
	KeyVolumeDown:     "VolumeDown",
	KeyAcSearch:       "AcSearch",
	KeyAcHome:         "AcHome",
	KeyAcBack:         "AcBack",
	KeyAcForward:      "AcForward",
	KeyAcStop:         "AcStop",
	KeyAcRefresh:      "AcRefresh",
	KeyAcBookmarks:    "AcBookmarks",
	KeyLCtrl:          "LCtrl",
	KeyLShift:         "LShift",
	KeyLAlt:           "LAlt",
	KeyLGui:           "LGui",
	KeyRCtrl:          "RCtrl",
	KeyRShift:         "RShift",
	KeyRAlt:           "RAlt",
	KeyRGui:           "RGui",
}

func (Key) isButton() {}

func (k Key) String() string {
	if k >= 0 && k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// KeyByName returns the key with the given name, as printed by String.
func KeyByName(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), true
		}
	}
	return KeyUnknown, false
}
