package keycode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownName is returned by Parse for text that is neither a key name nor a raw code.
var ErrUnknownName = errors.New("unknown key name")

const otherPrefix = "Other("

// nameAliases are accepted by Parse in addition to the names in keyName.
var nameAliases = map[string]Key{
	"PhysChevron": PhyChevron,
}

var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyName)+len(nameAliases))
	for k, n := range keyName {
		m[strings.ToLower(n)] = k
	}
	for n, k := range nameAliases {
		m[strings.ToLower(n)] = k
	}
	return m
}()

// Code returns the HID usage code of k.
func (k Key) Code() uint8 {
	return uint8(k)
}

// Known reports whether k is one of the named usages.
func (k Key) Known() bool {
	_, ok := keyName[k]
	return ok
}

// IsModifier reports whether k is one of the eight modifier usages (0xE0-0xE7).
func (k Key) IsModifier() bool {
	return k >= ControlLeft && k <= SuperRight
}

// String returns the symbolic name of k, or Other(0xNN) for codes without one.
func (k Key) String() string {
	if n, ok := keyName[k]; ok {
		return n
	}
	return fmt.Sprintf(otherPrefix+"0x%02x)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and accepts everything Parse does.
func (k *Key) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Parse resolves a key name to its Key. Names and the raw forms are matched
// case-insensitively. Raw codes without a name may be given as "0x9a" or "Other(0x9a)".
//
// Example:
//
//	k, _ := Parse("PhyA")         // PhyA
//	k, _ = Parse("Other(0x9a)")   // Key(0x9a)
func Parse(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if k, ok := nameToKey[strings.ToLower(s)]; ok {
		return k, nil
	}

	raw := s
	if len(raw) > len(otherPrefix) && strings.EqualFold(raw[:len(otherPrefix)], otherPrefix) {
		inner, ok := strings.CutSuffix(raw[len(otherPrefix):], ")")
		if !ok {
			return None, fmt.Errorf("%w: %q", ErrUnknownName, s)
		}
		raw = inner
	}
	if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
		return None, fmt.Errorf("%w: %q", ErrUnknownName, s)
	}
	n, err := strconv.ParseUint(raw[2:], 16, 8)
	if err != nil {
		return None, fmt.Errorf("%w: %q", ErrUnknownName, s)
	}
	return Key(n), nil
}

// All returns every named key in ascending code order.
func All() []Key {
	keys := make([]Key, 0, len(keyName))
	for c := 0; c <= 0xFF; c++ {
		if k := Key(c); k.Known() {
			keys = append(keys, k)
		}
	}
	return keys
}
