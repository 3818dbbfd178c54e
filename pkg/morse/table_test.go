package morse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardTable(t *testing.T) {
	table := StandardTable()
	require.Same(t, table, StandardTable())
	require.Equal(t, 41, table.Len())

	code, ok := table.LookupCode('s')
	require.True(t, ok)
	require.Equal(t, Sequence{Dot, Dot, Dot}, code)

	code, ok = table.LookupCode('=')
	require.True(t, ok)
	require.Equal(t, "-...-", Render(code))

	_, ok = table.LookupCode(' ')
	require.False(t, ok)
	_, ok = table.LookupCode('!')
	require.False(t, ok)
}

func TestLookupCodeReturnsCopy(t *testing.T) {
	table := StandardTable()
	code, ok := table.LookupCode('E')
	require.True(t, ok)
	code[0] = Dash

	again, _ := table.LookupCode('E')
	require.Equal(t, Sequence{Dot}, again)
}

func TestLookupChar(t *testing.T) {
	table := StandardTable()

	r, ok := table.LookupChar([]Symbol{Dash, Dash, Dash})
	require.True(t, ok)
	require.Equal(t, 'O', r)

	_, ok = table.LookupChar(nil)
	require.False(t, ok)

	_, ok = table.LookupChar([]Symbol{Dash, Dash, Dash, Dash, Dash, Dash})
	require.False(t, ok)

	_, ok = table.LookupChar([]Symbol{Dot, LetterGap, Dot})
	require.False(t, ok)
}

func TestTableIsInverse(t *testing.T) {
	table := StandardTable()
	for _, c := range table.Chars() {
		code, ok := table.LookupCode(c)
		require.True(t, ok, "%q", c)
		back, ok := table.LookupChar(code)
		require.True(t, ok, "%q", c)
		require.Equal(t, c, back)
	}
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		entries map[rune]string
		wantErr error
	}{
		{
			name:    "shared pattern",
			entries: map[rune]string{'A': ".-", 'B': ".-"},
			wantErr: ErrDuplicateCode,
		},
		{
			name:    "same letter twice",
			entries: map[rune]string{'a': ".-", 'A': "-."},
			wantErr: ErrDuplicateChar,
		},
		{
			name:    "empty pattern",
			entries: map[rune]string{'A': ""},
			wantErr: ErrInvalidCode,
		},
		{
			name:    "bad symbol",
			entries: map[rune]string{'A': ". -"},
			wantErr: ErrInvalidCode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.entries)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMustNewTablePanics(t *testing.T) {
	require.Panics(t, func() {
		MustNewTable(map[rune]string{'A': ".", 'E': "."})
	})
}

func TestCustomTableFoldsKeys(t *testing.T) {
	table, err := NewTable(map[rune]string{'x': "-..-"})
	require.NoError(t, err)
	require.Equal(t, []rune{'X'}, table.Chars())

	r, ok := table.LookupChar([]Symbol{Dash, Dot, Dot, Dash})
	require.True(t, ok)
	require.Equal(t, 'X', r)
}

func TestCompletions(t *testing.T) {
	table := StandardTable()

	require.Equal(t, table.Chars(), table.Completions(nil))
	require.Equal(t, []rune{'0', '8', '9', 'O'}, table.Completions(Sequence{Dash, Dash, Dash}))
	require.Equal(t, []rune{'0'}, table.Completions(Sequence{Dash, Dash, Dash, Dash, Dash}))
	require.Equal(t, []rune{'2', '?', 'F', 'U'}, table.Completions(Sequence{Dot, Dot, Dash}))
	require.Nil(t, table.Completions(Sequence{Dash, Dash, Dash, Dash, Dash, Dash}))
	require.Nil(t, table.Completions(Sequence{Dot, WordGap}))
}
