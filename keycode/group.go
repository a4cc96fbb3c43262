package keycode

// Group classifies a usage by the block of the usage table it lives in.
type Group string

const (
	GroupReserved      Group = "reserved"
	GroupError         Group = "error"
	GroupLetter        Group = "letter"
	GroupDigit         Group = "digit"
	GroupControl       Group = "control"
	GroupPunctuation   Group = "punctuation"
	GroupFunction      Group = "function"
	GroupNavigation    Group = "navigation"
	GroupKeypad        Group = "keypad"
	GroupEditing       Group = "editing"
	GroupMedia         Group = "media"
	GroupInternational Group = "international"
	GroupLegacy        Group = "legacy"
	GroupModifier      Group = "modifier"
	GroupUnassigned    Group = "unassigned"
)

// Groups lists every group in usage table order.
var Groups = []Group{
	GroupReserved, GroupError, GroupLetter, GroupDigit, GroupControl, GroupPunctuation,
	GroupFunction, GroupNavigation, GroupKeypad, GroupEditing, GroupMedia,
	GroupInternational, GroupLegacy, GroupModifier, GroupUnassigned,
}

// Group returns the block k belongs to. Codes without a name are GroupUnassigned.
func (k Key) Group() Group {
	if !k.Known() {
		return GroupUnassigned
	}
	switch {
	case k == None:
		return GroupReserved
	case k <= ErrorUndefined:
		return GroupError
	case k <= PhyZ:
		return GroupLetter
	case k <= Phy0:
		return GroupDigit
	case k <= Space, k == CapsLock, k >= PrintScreen && k <= Pause:
		return GroupControl
	case k <= PhySlash, k == PhyChevron:
		return GroupPunctuation
	case k <= F12, k >= F13 && k <= F24:
		return GroupFunction
	case k <= ArrowUp:
		return GroupNavigation
	case k <= KeypadPoint, k == KeypadEqual, k == KeypadBrazilianComma:
		return GroupKeypad
	case k == Mute, k == VolumeUp, k == VolumeDown, k == Power:
		return GroupMedia
	case k >= Execute && k <= Find, k == EraseAlt:
		return GroupEditing
	case k >= International1 && k <= International18:
		return GroupInternational
	case k.IsModifier():
		return GroupModifier
	default:
		return GroupLegacy
	}
}
