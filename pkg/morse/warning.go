package morse

import "fmt"

// Kind classifies a recoverable translation problem.
type Kind int

const (
	// KindUnsupportedChar: a character with no code was skipped while encoding.
	KindUnsupportedChar Kind = iota + 1
	// KindUnknownCode: a tone group with no character was replaced by the
	// placeholder while decoding.
	KindUnknownCode
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedChar:
		return "unsupported character"
	case KindUnknownCode:
		return "unknown code"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Warning describes one skipped character or one unresolved tone group.
// Offset is a byte offset into the encoder input, or a symbol index into
// the decoder input.
type Warning struct {
	Kind   Kind
	Char   rune
	Code   string
	Offset int
}

func (w Warning) String() string {
	if w.Kind == KindUnsupportedChar {
		return fmt.Sprintf("%v %q at offset %d", w.Kind, w.Char, w.Offset)
	}
	return fmt.Sprintf("%v %q at offset %d", w.Kind, w.Code, w.Offset)
}

// Reporter receives warnings. Implementations must not block.
type Reporter interface {
	Report(w Warning)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(w Warning)

func (f ReporterFunc) Report(w Warning) {
	f(w)
}

type discard struct{}

func (discard) Report(Warning) {}
