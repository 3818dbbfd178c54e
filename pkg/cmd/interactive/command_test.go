package interactive

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/birdayz/morse/pkg/morse"
	"github.com/birdayz/morse/pkg/session"
)

func TestHandleLine(t *testing.T) {
	var out bytes.Buffer
	s := session.New(morse.New(), session.ModeEncode)

	require.False(t, handleLine(&out, s, "sos"))
	require.Equal(t, "... --- ...", s.Output())
	require.Empty(t, out.String())

	require.False(t, handleLine(&out, s, ":m"))
	require.Equal(t, session.ModeDecode, s.Mode())
	require.Equal(t, "Switched to Morse Code Decoder.\nsos: \n", out.String())

	out.Reset()
	require.False(t, handleLine(&out, s, "... --- ..."))
	require.Equal(t, "SOS", s.Output())

	require.False(t, handleLine(&out, s, " :MODE "))
	require.Equal(t, session.ModeEncode, s.Mode())
	require.Equal(t, "Switched to Morse Code Encoder.\n... --- ...: .-.-.- .-.-.- .-.-.-   .-.-.- .-.-.- .-.-.-\n", out.String())

	out.Reset()
	require.False(t, handleLine(&out, s, ":clear"))
	require.Empty(t, s.Input())
	require.Empty(t, s.Output())
	require.Equal(t, "Cleared.\n", out.String())

	out.Reset()
	require.False(t, handleLine(&out, s, ":nope"))
	require.Contains(t, out.String(), "Unknown command \":nope\"")

	require.True(t, handleLine(&out, s, ":q"))
	require.True(t, handleLine(&out, s, ":quit"))
}

func TestPromptValidateFeedsSession(t *testing.T) {
	s := session.New(morse.New(), session.ModeDecode)
	p := newPrompt(s)

	require.NoError(t, p.Validate("...."))
	require.Equal(t, "H", s.Output())
	require.Equal(t, []rune{'4', '5', 'H'}, s.Hints())

	// Typing a command leaves the translated text alone.
	require.NoError(t, p.Validate(":m"))
	require.Equal(t, "....", s.Input())
}

// terminal collects what a prompt draws. readline writes from its own
// goroutine.
type terminal struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (t *terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.Write(p)
}

func (t *terminal) Close() error { return nil }

func (t *terminal) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.String()
}

func TestPromptDrawsTranslation(t *testing.T) {
	s := session.New(morse.New(), session.ModeEncode)
	term := &terminal{}

	p := newPrompt(s)
	p.Stdin = io.NopCloser(strings.NewReader("sos\n"))
	p.Stdout = term

	line, err := p.Run()
	require.NoError(t, err)
	require.Equal(t, "sos", line)
	require.Equal(t, "... --- ...", s.Output())

	drawn := term.String()
	require.Contains(t, drawn, "Output (Morse Code)")
	require.Contains(t, drawn, "Input (Text)")
	require.Contains(t, drawn, "... --- ...")
}

func TestPromptTemplatesAreSingleLine(t *testing.T) {
	require.NotContains(t, promptTemplate, "\n")
	require.NotContains(t, successTemplate, "\n")
}

func TestFormatHints(t *testing.T) {
	require.Equal(t, "2 ? F U", formatHints([]rune{'2', '?', 'F', 'U'}))
	require.Empty(t, formatHints(nil))
}
