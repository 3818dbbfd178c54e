package morse

import "strings"

// DefaultPlaceholder stands in for a tone group that matches no character.
const DefaultPlaceholder = "?"

// Decoder turns symbol sequences back into text.
type Decoder struct {
	table       *Table
	placeholder string
	reporter    Reporter
}

// NewDecoder returns a decoder over table. An empty placeholder selects
// DefaultPlaceholder, a nil reporter drops warnings.
func NewDecoder(table *Table, placeholder string, reporter Reporter) *Decoder {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	if reporter == nil {
		reporter = discard{}
	}
	return &Decoder{table: table, placeholder: placeholder, reporter: reporter}
}

// Placeholder returns the marker written for unknown tone groups.
func (d *Decoder) Placeholder() string {
	return d.placeholder
}

// Decode collects tones into a character buffer and resolves it at every
// separator and at the end of input.
//
// LetterGap resolves the buffer, writing the placeholder when it is unknown
// or empty. WordGap resolves a non-empty buffer the same way and then always
// writes one space. At the end a non-empty buffer is resolved, an empty one
// writes nothing. Decode never fails: bad input yields placeholders.
func (d *Decoder) Decode(seq Sequence) string {
	var out strings.Builder
	out.Grow(len(seq) / 2)

	buf := make([]Symbol, 0, 8)
	start := 0
	for i, s := range seq {
		switch s {
		case Dot, Dash:
			if len(buf) == 0 {
				start = i
			}
			buf = append(buf, s)
		case LetterGap:
			if len(buf) == 0 {
				d.unknown(&out, "", i)
			} else {
				d.resolve(&out, buf, start)
			}
			buf = buf[:0]
		case WordGap:
			if len(buf) > 0 {
				d.resolve(&out, buf, start)
			}
			buf = buf[:0]
			out.WriteByte(' ')
		}
	}
	if len(buf) > 0 {
		d.resolve(&out, buf, start)
	}
	return out.String()
}

func (d *Decoder) resolve(out *strings.Builder, buf []Symbol, offset int) {
	if r, ok := d.table.LookupChar(buf); ok {
		out.WriteRune(r)
		return
	}
	d.unknown(out, Render(buf), offset)
}

func (d *Decoder) unknown(out *strings.Builder, code string, offset int) {
	out.WriteString(d.placeholder)
	d.reporter.Report(Warning{Kind: KindUnknownCode, Code: code, Offset: offset})
}
