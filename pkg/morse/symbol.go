package morse

import (
	"fmt"
	"strings"
)

// Symbol is one primitive element of a Morse utterance.
type Symbol uint8

const (
	Dot Symbol = iota
	Dash
	LetterGap
	WordGap
)

func (s Symbol) String() string {
	switch s {
	case Dot:
		return "Dot"
	case Dash:
		return "Dash"
	case LetterGap:
		return "LetterGap"
	case WordGap:
		return "WordGap"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// IsTone reports whether s is a Dot or a Dash.
func (s Symbol) IsTone() bool {
	return s == Dot || s == Dash
}

// Sequence is an ordered list of symbols forming one utterance, possibly
// spanning several words.
type Sequence []Symbol

// String renders the sequence in display form, see Render.
func (seq Sequence) String() string {
	return Render(seq)
}

// Tones reports whether seq contains only Dot and Dash symbols.
func (seq Sequence) Tones() bool {
	for _, s := range seq {
		if !s.IsTone() {
			return false
		}
	}
	return true
}

// Render turns a sequence into its display string: '.' for Dot, '-' for
// Dash, one space for LetterGap and three spaces for WordGap.
func Render(seq Sequence) string {
	var b strings.Builder
	b.Grow(len(seq))
	for _, s := range seq {
		switch s {
		case Dot:
			b.WriteByte('.')
		case Dash:
			b.WriteByte('-')
		case LetterGap:
			b.WriteByte(' ')
		case WordGap:
			b.WriteString("   ")
		}
	}
	return b.String()
}

// ParsePattern converts a tone pattern written with '.' and '-' into
// symbols. Anything else, including an empty pattern, is ErrInvalidCode.
func ParsePattern(pattern string) (Sequence, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty pattern: %w", ErrInvalidCode)
	}
	tones := make(Sequence, 0, len(pattern))
	for _, r := range pattern {
		switch r {
		case '.':
			tones = append(tones, Dot)
		case '-':
			tones = append(tones, Dash)
		default:
			return nil, fmt.Errorf("pattern %q contains %q: %w", pattern, r, ErrInvalidCode)
		}
	}
	return tones, nil
}

// patternKey is the canonical map key of a tone pattern. ok is false when
// tones is empty or holds a separator.
func patternKey(tones []Symbol) (key string, ok bool) {
	if len(tones) == 0 {
		return "", false
	}
	b := make([]byte, len(tones))
	for i, s := range tones {
		switch s {
		case Dot:
			b[i] = '.'
		case Dash:
			b[i] = '-'
		default:
			return "", false
		}
	}
	return string(b), true
}
