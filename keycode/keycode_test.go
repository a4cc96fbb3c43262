package keycode_test

import (
	"encoding/json"
	"testing"

	"github.com/Alia5/keymatrix/keycode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodesAreUnique(t *testing.T) {
	seen := map[uint8]keycode.Key{}
	names := map[string]keycode.Key{}
	for _, k := range keycode.All() {
		if prev, ok := seen[k.Code()]; ok {
			t.Fatalf("code 0x%02x bound to both %s and %s", k.Code(), prev, k)
		}
		seen[k.Code()] = k

		if prev, ok := names[k.String()]; ok {
			t.Fatalf("name %s bound to both 0x%02x and 0x%02x", k, prev.Code(), k.Code())
		}
		names[k.String()] = k
	}
	assert.Len(t, seen, 162)
}

func TestStandardCodes(t *testing.T) {
	cases := []struct {
		key  keycode.Key
		code uint8
		name string
	}{
		{keycode.None, 0x00, "None"},
		{keycode.ErrorRollOver, 0x01, "ErrorRollOver"},
		{keycode.PhyA, 0x04, "PhyA"},
		{keycode.PhyZ, 0x1d, "PhyZ"},
		{keycode.Phy0, 0x27, "Phy0"},
		{keycode.Enter, 0x28, "Enter"},
		{keycode.Escape, 0x29, "Escape"},
		{keycode.Space, 0x2c, "Space"},
		{keycode.PhyHash, 0x32, "PhyHash"},
		{keycode.F12, 0x45, "F12"},
		{keycode.ArrowUp, 0x52, "ArrowUp"},
		{keycode.KeypadPoint, 0x63, "KeypadPoint"},
		{keycode.PhyChevron, 0x64, "PhyChevron"},
		{keycode.F24, 0x73, "F24"},
		{keycode.VolumeDown, 0x81, "VolumeDown"},
		{keycode.International18, 0x98, "International18"},
		{keycode.EraseAlt, 0x99, "EraseAlt"},
		{keycode.ControlLeft, 0xe0, "ControlLeft"},
		{keycode.SuperRight, 0xe7, "SuperRight"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.key.Code())
			assert.Equal(t, tc.code, tc.key.Code(), "code must be stable across calls")
			assert.Equal(t, tc.name, tc.key.String())
			assert.True(t, tc.key.Known())
		})
	}
}

func TestNoneIsZeroValue(t *testing.T) {
	var k keycode.Key
	assert.Equal(t, keycode.None, k)
	assert.Equal(t, uint8(0), keycode.None.Code())
}

func TestForwardConversionRoundTrip(t *testing.T) {
	for _, k := range keycode.All() {
		assert.Equal(t, k, keycode.Key(k.Code()), "key %s", k)
	}
}

func TestUnassignedRangesHaveNoNames(t *testing.T) {
	for c := 0x9a; c <= 0xa4; c++ {
		assert.False(t, keycode.Key(c).Known(), "0x%02x", c)
	}
	for c := 0xb0; c <= 0xdd; c++ {
		assert.False(t, keycode.Key(c).Known(), "0x%02x", c)
	}
	for c := 0xe8; c <= 0xff; c++ {
		assert.False(t, keycode.Key(c).Known(), "0x%02x", c)
	}
}

func TestOtherPassThrough(t *testing.T) {
	k := keycode.Key(0x9a)
	assert.Equal(t, uint8(0x9a), k.Code())
	assert.Equal(t, "Other(0x9a)", k.String())
	assert.Equal(t, keycode.GroupUnassigned, k.Group())
	assert.NotEqual(t, keycode.None, k)
}

func TestAllIsSorted(t *testing.T) {
	all := keycode.All()
	require.NotEmpty(t, all)
	assert.Equal(t, keycode.None, all[0])
	assert.Equal(t, keycode.SuperRight, all[len(all)-1])
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i])
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want keycode.Key
	}{
		{"PhyA", keycode.PhyA},
		{"phya", keycode.PhyA},
		{" Enter ", keycode.Enter},
		{"None", keycode.None},
		{"0x9a", keycode.Key(0x9a)},
		{"0X04", keycode.PhyA},
		{"Other(0xb5)", keycode.Key(0xb5)},
		{"other(0xB5)", keycode.Key(0xb5)},
		{"OTHER(0x9a)", keycode.Key(0x9a)},
		{"PhysChevron", keycode.PhyChevron},
		{"physchevron", keycode.PhyChevron},
	}
	for _, tc := range cases {
		got, err := keycode.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "NotAKey", "0x", "0x100", "Other(0x9a", "Other(zz)", "Other(", "other()", "42"} {
		_, err := keycode.Parse(bad)
		assert.ErrorIs(t, err, keycode.ErrUnknownName, bad)
	}
}

func TestTextMarshaling(t *testing.T) {
	for _, k := range []keycode.Key{keycode.None, keycode.PhyA, keycode.SuperRight, keycode.Key(0xc0)} {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var back keycode.Key
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}

	b, err := json.Marshal([]keycode.Key{keycode.PhyA, keycode.Key(0x9a)})
	require.NoError(t, err)
	assert.JSONEq(t, `["PhyA","Other(0x9a)"]`, string(b))

	var keys []keycode.Key
	require.NoError(t, json.Unmarshal([]byte(`["Space","arrowup"]`), &keys))
	assert.Equal(t, []keycode.Key{keycode.Space, keycode.ArrowUp}, keys)

	var k keycode.Key
	assert.Error(t, json.Unmarshal([]byte(`"Bogus"`), &k))
}

func TestIsModifier(t *testing.T) {
	for c := 0; c <= 0xff; c++ {
		k := keycode.Key(c)
		assert.Equal(t, c >= 0xe0 && c <= 0xe7, k.IsModifier(), "0x%02x", c)
	}
}

func TestGroup(t *testing.T) {
	cases := map[keycode.Key]keycode.Group{
		keycode.None:                 keycode.GroupReserved,
		keycode.ErrorPostFail:        keycode.GroupError,
		keycode.PhyQ:                 keycode.GroupLetter,
		keycode.Phy5:                 keycode.GroupDigit,
		keycode.Tab:                  keycode.GroupControl,
		keycode.CapsLock:             keycode.GroupControl,
		keycode.Pause:                keycode.GroupControl,
		keycode.PhyGrave:             keycode.GroupPunctuation,
		keycode.PhyChevron:           keycode.GroupPunctuation,
		keycode.F1:                   keycode.GroupFunction,
		keycode.F20:                  keycode.GroupFunction,
		keycode.Home:                 keycode.GroupNavigation,
		keycode.ArrowLeft:            keycode.GroupNavigation,
		keycode.NumLock:              keycode.GroupKeypad,
		keycode.KeypadEqual:          keycode.GroupKeypad,
		keycode.KeypadBrazilianComma: keycode.GroupKeypad,
		keycode.Undo:                 keycode.GroupEditing,
		keycode.EraseAlt:             keycode.GroupEditing,
		keycode.Mute:                 keycode.GroupMedia,
		keycode.Power:                keycode.GroupMedia,
		keycode.International3:       keycode.GroupInternational,
		keycode.LegacyApplication:    keycode.GroupLegacy,
		keycode.LegacyLockingNumLock: keycode.GroupLegacy,
		keycode.LegacyKeypadEqual:    keycode.GroupLegacy,
		keycode.ShiftRight:           keycode.GroupModifier,
		keycode.Key(0xe8):            keycode.GroupUnassigned,
	}
	for k, want := range cases {
		assert.Equal(t, want, k.Group(), k.String())
	}

	for _, k := range keycode.All() {
		assert.NotEqual(t, keycode.GroupUnassigned, k.Group(), k.String())
	}
}
