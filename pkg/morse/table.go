package morse

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"unicode"

	"github.com/derekparker/trie"
)

var (
	// ErrDuplicateCode is returned when two characters share a tone pattern.
	ErrDuplicateCode = errors.New("duplicate code")
	// ErrDuplicateChar is returned when a character is listed twice, for
	// example once in lower and once in upper case.
	ErrDuplicateChar = errors.New("duplicate character")
	// ErrInvalidCode is returned for patterns that are empty or hold
	// anything other than '.' and '-'.
	ErrInvalidCode = errors.New("invalid code")
)

// standardCodes is the International Morse alphabet this tool speaks.
var standardCodes = map[rune]string{
	'A': ".-",
	'B': "-...",
	'C': "-.-.",
	'D': "-..",
	'E': ".",
	'F': "..-.",
	'G': "--.",
	'H': "....",
	'I': "..",
	'J': ".---",
	'K': "-.-",
	'L': ".-..",
	'M': "--",
	'N': "-.",
	'O': "---",
	'P': ".--.",
	'Q': "--.-",
	'R': ".-.",
	'S': "...",
	'T': "-",
	'U': "..-",
	'V': "...-",
	'W': ".--",
	'X': "-..-",
	'Y': "-.--",
	'Z': "--..",
	'0': "-----",
	'1': ".----",
	'2': "..---",
	'3': "...--",
	'4': "....-",
	'5': ".....",
	'6': "-....",
	'7': "--...",
	'8': "---..",
	'9': "----.",
	'.': ".-.-.-",
	',': "--..--",
	'?': "..--..",
	'/': "-..-.",
	'=': "-...-",
}

// Table is a read-only bidirectional mapping between characters and tone
// patterns. It is safe for concurrent use once constructed.
type Table struct {
	codes map[rune]Sequence
	chars map[string]rune
	index *trie.Trie
}

// NewTable builds a table from rune => pattern entries. Keys are folded to
// upper case. The mapping must be injective.
func NewTable(entries map[rune]string) (*Table, error) {
	t := &Table{
		codes: make(map[rune]Sequence, len(entries)),
		chars: make(map[string]rune, len(entries)),
		index: trie.New(),
	}

	// Sorted so that errors name the same pair on every run.
	keys := make([]rune, 0, len(entries))
	for r := range entries {
		keys = append(keys, r)
	}
	slices.Sort(keys)

	for _, r := range keys {
		tones, err := ParsePattern(entries[r])
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", r, err)
		}
		upper := unicode.ToUpper(r)
		if _, ok := t.codes[upper]; ok {
			return nil, fmt.Errorf("character %q listed twice: %w", upper, ErrDuplicateChar)
		}
		key, _ := patternKey(tones)
		if prev, ok := t.chars[key]; ok {
			return nil, fmt.Errorf("characters %q and %q share %q: %w", prev, upper, key, ErrDuplicateCode)
		}
		t.codes[upper] = tones
		t.chars[key] = upper
		t.index.Add(key, upper)
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on error. A bad table is a
// programming error, not a runtime condition.
func MustNewTable(entries map[rune]string) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(fmt.Sprintf("morse: invalid code table: %v", err))
	}
	return t
}

var (
	standardOnce  sync.Once
	standardTable *Table
)

// StandardTable returns the International Morse table covering A-Z, 0-9
// and . , ? / =. It is built on first use and shared afterwards.
func StandardTable() *Table {
	standardOnce.Do(func() {
		standardTable = MustNewTable(standardCodes)
	})
	return standardTable
}

// LookupCode returns the tone pattern for r. Lower case letters are folded
// rune by rune; runes whose upper case is several characters, like 'ß', are
// not found. Encode handles those.
func (t *Table) LookupCode(r rune) (Sequence, bool) {
	tones, ok := t.codes[unicode.ToUpper(r)]
	if !ok {
		return nil, false
	}
	return slices.Clone(tones), true
}

// LookupChar returns the character whose pattern equals tones.
func (t *Table) LookupChar(tones []Symbol) (rune, bool) {
	key, ok := patternKey(tones)
	if !ok {
		return 0, false
	}
	r, ok := t.chars[key]
	return r, ok
}

// Chars returns every character in the table in ascending order.
func (t *Table) Chars() []rune {
	chars := make([]rune, 0, len(t.codes))
	for r := range t.codes {
		chars = append(chars, r)
	}
	slices.Sort(chars)
	return chars
}

// Len returns the number of characters in the table.
func (t *Table) Len() int {
	return len(t.codes)
}

// Completions returns the characters whose pattern starts with prefix, in
// ascending order. An empty prefix matches everything.
func (t *Table) Completions(prefix []Symbol) []rune {
	if len(prefix) == 0 {
		return t.Chars()
	}
	key, ok := patternKey(prefix)
	if !ok {
		return nil
	}
	if !t.index.HasKeysWithPrefix(key) {
		return nil
	}
	var out []rune
	for _, k := range t.index.PrefixSearch(key) {
		if r, ok := t.chars[k]; ok {
			out = append(out, r)
		}
	}
	slices.Sort(out)
	return out
}
