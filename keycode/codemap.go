package keycode

// keyName maps every named usage code to its symbolic name.
var keyName = map[Key]string{
	None: "None",

	ErrorRollOver:  "ErrorRollOver",
	ErrorPostFail:  "ErrorPostFail",
	ErrorUndefined: "ErrorUndefined",

	PhyA: "PhyA",
	PhyB: "PhyB",
	PhyC: "PhyC",
	PhyD: "PhyD",
	PhyE: "PhyE",
	PhyF: "PhyF",
	PhyG: "PhyG",
	PhyH: "PhyH",
	PhyI: "PhyI",
	PhyJ: "PhyJ",
	PhyK: "PhyK",
	PhyL: "PhyL",
	PhyM: "PhyM",
	PhyN: "PhyN",
	PhyO: "PhyO",
	PhyP: "PhyP",
	PhyQ: "PhyQ",
	PhyR: "PhyR",
	PhyS: "PhyS",
	PhyT: "PhyT",
	PhyU: "PhyU",
	PhyV: "PhyV",
	PhyW: "PhyW",
	PhyX: "PhyX",
	PhyY: "PhyY",
	PhyZ: "PhyZ",

	Phy1: "Phy1",
	Phy2: "Phy2",
	Phy3: "Phy3",
	Phy4: "Phy4",
	Phy5: "Phy5",
	Phy6: "Phy6",
	Phy7: "Phy7",
	Phy8: "Phy8",
	Phy9: "Phy9",
	Phy0: "Phy0",

	Enter:     "Enter",
	Escape:    "Escape",
	Backspace: "Backspace",
	Tab:       "Tab",
	Space:     "Space",

	PhyHyphen:     "PhyHyphen",
	PhyEqual:      "PhyEqual",
	PhyOpenBrace:  "PhyOpenBrace",
	PhyCloseBrace: "PhyCloseBrace",
	PhyBackslash:  "PhyBackslash",
	PhyHash:       "PhyHash",
	PhySemicolon:  "PhySemicolon",
	PhyQuote:      "PhyQuote",
	PhyGrave:      "PhyGrave",
	PhyComma:      "PhyComma",
	PhyPeriod:     "PhyPeriod",
	PhySlash:      "PhySlash",
	CapsLock:      "CapsLock",

	F1:  "F1",
	F2:  "F2",
	F3:  "F3",
	F4:  "F4",
	F5:  "F5",
	F6:  "F6",
	F7:  "F7",
	F8:  "F8",
	F9:  "F9",
	F10: "F10",
	F11: "F11",
	F12: "F12",

	PrintScreen: "PrintScreen",
	ScrollLock:  "ScrollLock",
	Pause:       "Pause",
	Insert:      "Insert",
	Home:        "Home",
	PageUp:      "PageUp",
	Delete:      "Delete",
	End:         "End",
	PageDown:    "PageDown",

	ArrowRight: "ArrowRight",
	ArrowLeft:  "ArrowLeft",
	ArrowDown:  "ArrowDown",
	ArrowUp:    "ArrowUp",

	NumLock:        "NumLock",
	KeypadDivide:   "KeypadDivide",
	KeypadMultiply: "KeypadMultiply",
	KeypadMinus:    "KeypadMinus",
	KeypadPlus:     "KeypadPlus",
	KeypadEnter:    "KeypadEnter",
	Keypad1:        "Keypad1",
	Keypad2:        "Keypad2",
	Keypad3:        "Keypad3",
	Keypad4:        "Keypad4",
	Keypad5:        "Keypad5",
	Keypad6:        "Keypad6",
	Keypad7:        "Keypad7",
	Keypad8:        "Keypad8",
	Keypad9:        "Keypad9",
	Keypad0:        "Keypad0",
	KeypadPoint:    "KeypadPoint",

	PhyChevron:        "PhyChevron",
	LegacyApplication: "LegacyApplication",
	Power:             "Power",
	KeypadEqual:       "KeypadEqual",

	F13: "F13",
	F14: "F14",
	F15: "F15",
	F16: "F16",
	F17: "F17",
	F18: "F18",
	F19: "F19",
	F20: "F20",
	F21: "F21",
	F22: "F22",
	F23: "F23",
	F24: "F24",

	Execute:    "Execute",
	Help:       "Help",
	Menu:       "Menu",
	Select:     "Select",
	Stop:       "Stop",
	Again:      "Again",
	Undo:       "Undo",
	Cut:        "Cut",
	Copy:       "Copy",
	Paste:      "Paste",
	Find:       "Find",
	Mute:       "Mute",
	VolumeUp:   "VolumeUp",
	VolumeDown: "VolumeDown",

	LegacyLockingCapsLock:   "LegacyLockingCapsLock",
	LegacyLockingNumLock:    "LegacyLockingNumLock",
	LegacyLockingScrollLock: "LegacyLockingScrollLock",

	KeypadBrazilianComma: "KeypadBrazilianComma",
	LegacyKeypadEqual:    "LegacyKeypadEqual",

	International1:  "International1",
	International2:  "International2",
	International3:  "International3",
	International4:  "International4",
	International5:  "International5",
	International6:  "International6",
	International7:  "International7",
	International8:  "International8",
	International9:  "International9",
	International10: "International10",
	International11: "International11",
	International12: "International12",
	International13: "International13",
	International14: "International14",
	International15: "International15",
	International16: "International16",
	International17: "International17",
	International18: "International18",

	EraseAlt: "EraseAlt",

	ControlLeft:  "ControlLeft",
	ShiftLeft:    "ShiftLeft",
	AltLeft:      "AltLeft",
	SuperLeft:    "SuperLeft",
	ControlRight: "ControlRight",
	ShiftRight:   "ShiftRight",
	AltRight:     "AltRight",
	SuperRight:   "SuperRight",
}
