package morse

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Encoder turns text into symbol sequences.
type Encoder struct {
	table    *Table
	reporter Reporter
}

// NewEncoder returns an encoder over table. A nil reporter drops warnings.
func NewEncoder(table *Table, reporter Reporter) *Encoder {
	if reporter == nil {
		reporter = discard{}
	}
	return &Encoder{table: table, reporter: reporter}
}

// Encode upper-cases text with full Unicode case mapping, splits it into
// words on whitespace runs and emits every supported character's tones. Letters of a word are joined by
// one LetterGap, words by one WordGap. Unsupported characters are skipped
// and reported; they never produce a separator of their own, so the result
// neither starts nor ends with a separator and never holds two in a row.
func (e *Encoder) Encode(text string) Sequence {
	seq := make(Sequence, 0, 4*len(text))
	upper := cases.Upper(language.Und)

	var (
		wordHasTones bool // current word already emitted a character
		pendingWord  bool // a finished word emitted tones and whitespace followed
	)
	for offset, r := range text {
		if unicode.IsSpace(r) {
			if wordHasTones {
				pendingWord = true
			}
			wordHasTones = false
			continue
		}

		// Full case mapping: 'ß' becomes "SS", so one rune can yield
		// several characters.
		for _, u := range upper.String(string(r)) {
			tones, ok := e.table.codes[u]
			if !ok {
				e.reporter.Report(Warning{Kind: KindUnsupportedChar, Char: r, Offset: offset})
				continue
			}

			switch {
			case pendingWord:
				seq = append(seq, WordGap)
				pendingWord = false
			case wordHasTones:
				seq = append(seq, LetterGap)
			}
			seq = append(seq, tones...)
			wordHasTones = true
		}
	}
	return seq
}
