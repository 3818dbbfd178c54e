package session

import (
	"fmt"
	"strings"
)

// Mode is the translation direction of a session.
type Mode int

const (
	ModeEncode Mode = iota
	ModeDecode
)

// Toggle returns the other mode.
func Toggle(m Mode) Mode {
	if m == ModeDecode {
		return ModeEncode
	}
	return ModeDecode
}

// ParseMode accepts "encode" or "decode" (case-insensitive, also "e"/"d").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encode", "e":
		return ModeEncode, nil
	case "decode", "d":
		return ModeDecode, nil
	default:
		return ModeEncode, fmt.Errorf("unknown mode %q: must be one of: encode, decode", s)
	}
}

func (m Mode) String() string {
	if m == ModeDecode {
		return "decode"
	}
	return "encode"
}

func (m *Mode) Set(v string) error {
	parsed, err := ParseMode(v)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *Mode) Type() string {
	return "Mode"
}
