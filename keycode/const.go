// Package keycode defines the USB HID Keyboard/Keypad usage IDs (usage page 0x07).
//
// A Key is the raw 8-bit usage code. Named constants cover the usages a
// keyboard controller reports; any other code is still a valid Key and
// passes through untouched, printing as Other(0xNN).
package keycode

// Usage page bounds
const (
	UsagePage = 0x07
	MinUsage  = 0x00
	MaxUsage  = 0xE7
)

// Key is a HID Keyboard/Keypad usage code. The zero value is None.
type Key uint8

// HID Usage codes for keyboard keys (USB HID Keyboard/Keypad usage page).
// Phy* keys are named after their position on a US layout, not their legend.
const (
	// No key pressed. Never produced by a switch.
	None Key = 0x00

	// Error codes
	ErrorRollOver  Key = 0x01
	ErrorPostFail  Key = 0x02
	ErrorUndefined Key = 0x03

	// Letters A-Z
	PhyA Key = 0x04
	PhyB Key = 0x05
	PhyC Key = 0x06
	PhyD Key = 0x07
	PhyE Key = 0x08
	PhyF Key = 0x09
	PhyG Key = 0x0A
	PhyH Key = 0x0B
	PhyI Key = 0x0C
	PhyJ Key = 0x0D
	PhyK Key = 0x0E
	PhyL Key = 0x0F
	PhyM Key = 0x10
	PhyN Key = 0x11
	PhyO Key = 0x12
	PhyP Key = 0x13
	PhyQ Key = 0x14
	PhyR Key = 0x15
	PhyS Key = 0x16
	PhyT Key = 0x17
	PhyU Key = 0x18
	PhyV Key = 0x19
	PhyW Key = 0x1A
	PhyX Key = 0x1B
	PhyY Key = 0x1C
	PhyZ Key = 0x1D

	// Numbers 1-0 (top row)
	Phy1 Key = 0x1E
	Phy2 Key = 0x1F
	Phy3 Key = 0x20
	Phy4 Key = 0x21
	Phy5 Key = 0x22
	Phy6 Key = 0x23
	Phy7 Key = 0x24
	Phy8 Key = 0x25
	Phy9 Key = 0x26
	Phy0 Key = 0x27

	// Special keys
	Enter     Key = 0x28
	Escape    Key = 0x29
	Backspace Key = 0x2A
	Tab       Key = 0x2B
	Space     Key = 0x2C

	PhyHyphen     Key = 0x2D // - and _, right of 0
	PhyEqual      Key = 0x2E // = and +, left of Backspace
	PhyOpenBrace  Key = 0x2F // [ and {, right of P
	PhyCloseBrace Key = 0x30 // ] and }
	PhyBackslash  Key = 0x31 // \ and | on a US board
	PhyHash       Key = 0x32 // Non-US # and ~, next to Enter on ISO boards
	PhySemicolon  Key = 0x33 // ; and :, right of L
	PhyQuote      Key = 0x34 // ' and "
	PhyGrave      Key = 0x35 // ` and ~, start of the number row
	PhyComma      Key = 0x36 // , and <
	PhyPeriod     Key = 0x37 // . and >
	PhySlash      Key = 0x38 // / and ?
	CapsLock      Key = 0x39

	// Function keys
	F1  Key = 0x3A
	F2  Key = 0x3B
	F3  Key = 0x3C
	F4  Key = 0x3D
	F5  Key = 0x3E
	F6  Key = 0x3F
	F7  Key = 0x40
	F8  Key = 0x41
	F9  Key = 0x42
	F10 Key = 0x43
	F11 Key = 0x44
	F12 Key = 0x45

	// Control keys
	PrintScreen Key = 0x46
	ScrollLock  Key = 0x47
	Pause       Key = 0x48
	Insert      Key = 0x49
	Home        Key = 0x4A
	PageUp      Key = 0x4B
	Delete      Key = 0x4C
	End         Key = 0x4D
	PageDown    Key = 0x4E

	// Arrow keys
	ArrowRight Key = 0x4F
	ArrowLeft  Key = 0x50
	ArrowDown  Key = 0x51
	ArrowUp    Key = 0x52

	// Numpad
	NumLock        Key = 0x53
	KeypadDivide   Key = 0x54
	KeypadMultiply Key = 0x55
	KeypadMinus    Key = 0x56
	KeypadPlus     Key = 0x57
	KeypadEnter    Key = 0x58
	Keypad1        Key = 0x59 // and End
	Keypad2        Key = 0x5A // and Down
	Keypad3        Key = 0x5B // and PageDn
	Keypad4        Key = 0x5C // and Left
	Keypad5        Key = 0x5D
	Keypad6        Key = 0x5E // and Right
	Keypad7        Key = 0x5F // and Home
	Keypad8        Key = 0x60 // and Up
	Keypad9        Key = 0x61 // and PageUp
	Keypad0        Key = 0x62 // and Insert
	KeypadPoint    Key = 0x63 // and Delete

	// Additional keys
	PhyChevron        Key = 0x64 // Non-US \ and |, angle brackets on ISO boards, right of Left Shift
	LegacyApplication Key = 0x65 // Application (Windows Menu key)
	Power             Key = 0x66
	KeypadEqual       Key = 0x67

	// Extended function keys
	F13 Key = 0x68
	F14 Key = 0x69
	F15 Key = 0x6A
	F16 Key = 0x6B
	F17 Key = 0x6C
	F18 Key = 0x6D
	F19 Key = 0x6E
	F20 Key = 0x6F
	F21 Key = 0x70
	F22 Key = 0x71
	F23 Key = 0x72
	F24 Key = 0x73

	// Execution keys
	Execute    Key = 0x74
	Help       Key = 0x75
	Menu       Key = 0x76
	Select     Key = 0x77
	Stop       Key = 0x78
	Again      Key = 0x79 // Redo
	Undo       Key = 0x7A
	Cut        Key = 0x7B
	Copy       Key = 0x7C
	Paste      Key = 0x7D
	Find       Key = 0x7E
	Mute       Key = 0x7F
	VolumeUp   Key = 0x80
	VolumeDown Key = 0x81

	// Locking keys, superseded by the plain variants above
	LegacyLockingCapsLock   Key = 0x82
	LegacyLockingNumLock    Key = 0x83
	LegacyLockingScrollLock Key = 0x84

	KeypadBrazilianComma Key = 0x85
	LegacyKeypadEqual    Key = 0x86 // AS/400 keypad =

	// International keys
	International1  Key = 0x87
	International2  Key = 0x88
	International3  Key = 0x89
	International4  Key = 0x8A
	International5  Key = 0x8B
	International6  Key = 0x8C
	International7  Key = 0x8D
	International8  Key = 0x8E
	International9  Key = 0x8F
	International10 Key = 0x90
	International11 Key = 0x91
	International12 Key = 0x92
	International13 Key = 0x93
	International14 Key = 0x94
	International15 Key = 0x95
	International16 Key = 0x96
	International17 Key = 0x97
	International18 Key = 0x98

	EraseAlt Key = 0x99

	// 0x9A-0xA4 and 0xB0-0xDD have no names yet and pass through as raw codes.

	// Modifiers
	ControlLeft  Key = 0xE0
	ShiftLeft    Key = 0xE1
	AltLeft      Key = 0xE2
	SuperLeft    Key = 0xE3 // Windows/Command key
	ControlRight Key = 0xE4
	ShiftRight   Key = 0xE5
	AltRight     Key = 0xE6
	SuperRight   Key = 0xE7
)

// PhysChevron is the former name of PhyChevron.
//
// Deprecated: use PhyChevron.
const PhysChevron = PhyChevron
