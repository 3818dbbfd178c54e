// Package session holds the state behind the interactive translator: the
// text typed so far, the direction, and the translation derived from both.
package session

import (
	"unicode/utf8"

	"github.com/birdayz/morse/pkg/morse"
)

// Codec is the part of morse.Codec a session needs.
type Codec interface {
	EncodeText(text string) string
	DecodeText(raw string) string
	Completions(prefix morse.Sequence) []rune
}

// Session recomputes its output synchronously after every edit.
type Session struct {
	codec  Codec
	mode   Mode
	input  string
	output string
}

func New(codec Codec, mode Mode) *Session {
	return &Session{codec: codec, mode: mode}
}

func (s *Session) Input() string  { return s.input }
func (s *Session) Output() string { return s.output }
func (s *Session) Mode() Mode     { return s.mode }

// Type appends one character to the input.
func (s *Session) Type(r rune) {
	s.input += string(r)
	s.update()
}

// Backspace removes the last character, if any.
func (s *Session) Backspace() {
	if s.input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.input)
	s.input = s.input[:len(s.input)-size]
	s.update()
}

// Newline appends a line break. Encoding treats it as whitespace, decoding
// ignores it.
func (s *Session) Newline() {
	s.Type('\n')
}

// SetInput replaces the whole input.
func (s *Session) SetInput(text string) {
	s.input = text
	s.update()
}

func (s *Session) Clear() {
	s.SetInput("")
}

// ToggleMode switches direction and retranslates the current input.
func (s *Session) ToggleMode() {
	s.SetMode(Toggle(s.mode))
}

func (s *Session) SetMode(m Mode) {
	s.mode = m
	s.update()
}

// Hints lists the characters the tone group being typed can still turn
// into. It is empty in encode mode and when the input does not end in a
// tone.
func (s *Session) Hints() []rune {
	if s.mode != ModeDecode {
		return nil
	}
	i := len(s.input)
	for i > 0 && (s.input[i-1] == '.' || s.input[i-1] == '-') {
		i--
	}
	if i == len(s.input) {
		return nil
	}
	return s.codec.Completions(morse.ParseRaw(s.input[i:]))
}

func (s *Session) Title() string {
	if s.mode == ModeDecode {
		return "Morse Code Decoder"
	}
	return "Morse Code Encoder"
}

func (s *Session) InputLabel() string {
	if s.mode == ModeDecode {
		return "Input (Morse: use . or - and spaces)"
	}
	return "Input (Text)"
}

func (s *Session) OutputLabel() string {
	if s.mode == ModeDecode {
		return "Output (Text)"
	}
	return "Output (Morse Code)"
}

func (s *Session) update() {
	switch s.mode {
	case ModeDecode:
		s.output = s.codec.DecodeText(s.input)
	default:
		s.output = s.codec.EncodeText(s.input)
	}
}
