package types

import (
	"fmt"
	"strings"
)

// ColorMode defines when highlighted terminal output is used.
type ColorMode int

const (
	ColorModeAuto ColorMode = iota
	ColorModeAlways
	ColorModeNever
)

// String returns the string representation of the color mode.
//
//goland:noinspection GoMixedReceiverTypes
func (m ColorMode) String() string {
	text, err := m.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
//goland:noinspection GoMixedReceiverTypes
func (m ColorMode) MarshalText() ([]byte, error) {
	switch m {
	case ColorModeAuto:
		return []byte("auto"), nil
	case ColorModeAlways:
		return []byte("always"), nil
	case ColorModeNever:
		return []byte("never"), nil
	default:
		return nil, fmt.Errorf("unknown identifier %d", m)
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
//goland:noinspection GoMixedReceiverTypes
func (m *ColorMode) UnmarshalText(text []byte) error {
	config := strings.ToLower(string(text))
	switch config {
	case "auto":
		*m = ColorModeAuto
	case "always":
		*m = ColorModeAlways
	case "never":
		*m = ColorModeNever
	default:
		return fmt.Errorf("invalid value %s", config)
	}

	return nil
}
