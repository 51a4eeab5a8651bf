package lily

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeNote(t *testing.T) {
	tokens, err := Tokenize(`ceses''4.. ~`)
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	tok := tokens[0]
	assert := assert.New(t)
	assert.Equal(TokenNote, tok.Kind)
	assert.Equal(byte('c'), tok.Letter)
	assert.Equal(0, tok.Sharps)
	assert.Equal(2, tok.Flats)
	assert.Equal(2, tok.Octave)
	assert.Equal("4..", tok.Duration)
	assert.True(tok.Tie)
}

func TestTokenizeOctaveCheck(t *testing.T) {
	tokens, err := Tokenize(`d='4 e=,, f=`)
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert := assert.New(t)
	assert.True(tokens[0].HasCheck)
	assert.Equal(1, tokens[0].Check)
	assert.Equal("4", tokens[0].Duration)
	assert.Equal(-2, tokens[1].Check)
	assert.True(tokens[2].HasCheck)
	assert.Equal(0, tokens[2].Check)
}

func TestTokenizeStructure(t *testing.T) {
	tokens, err := Tokenize("\\relative c' {\n  r8 fis, % comment }\n}")
	require.NoError(t, err)

	var kinds []TokenKind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert := assert.New(t)
	assert.Equal([]TokenKind{TokenCommand, TokenNote, TokenOpenBrace, TokenRest, TokenNote, TokenCloseBrace}, kinds)
	assert.Equal(CommandRelative, tokens[0].Command)
	assert.Equal(1, tokens[3].Sharps+tokens[4].Sharps)
	assert.Equal(-1, tokens[4].Octave)
	assert.Equal(Position{Line: 3, Col: 1}, tokens[5].Pos)
}

func TestTokenizeAdjacentNotes(t *testing.T) {
	tokens, err := Tokenize("cd8e")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Len(tokens, 3)
	assert.Equal("", tokens[0].Duration)
	assert.Equal("8", tokens[1].Duration)
}

func TestTokenizeUnknown(t *testing.T) {
	_, err := Tokenize("c d h e")

	var tokErr *TokenizeError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, Position{Line: 1, Col: 5}, tokErr.Pos)
	assert.Equal(t, "h e", tokErr.Near)
}

func TestTokenizeUnknownCommand(t *testing.T) {
	_, err := Tokenize(`\clef treble`)
	var tokErr *TokenizeError
	assert.ErrorAs(t, err, &tokErr)
}

func TestParseDuration(t *testing.T) {
	cases := map[string]int{
		"1":   64,
		"2":   32,
		"4":   16,
		"4.":  24,
		"4..": 28,
		"8.":  12,
		"16":  4,
		"64":  1,
		"1.":  96,
	}
	for marker, want := range cases {
		t.Run(marker, func(t *testing.T) {
			got, ok := ParseDuration(marker)
			assert.True(t, ok)
			assert.Equal(t, want, got)
		})
	}

	for _, bad := range []string{"0", "3", "128", "", "."} {
		_, ok := ParseDuration(bad)
		assert.False(t, ok, bad)
	}
}

func TestFormatDuration(t *testing.T) {
	for _, marker := range []string{"1", "2.", "4", "4..", "8.", "32"} {
		ticks, ok := ParseDuration(marker)
		require.True(t, ok)
		got, ok := FormatDuration(ticks)
		assert.True(t, ok)
		assert.Equal(t, marker, got)
	}

	_, ok := FormatDuration(5)
	assert.False(t, ok)
	_, ok = FormatDuration(0)
	assert.False(t, ok)
}

func TestTokenizeTieAfterComment(t *testing.T) {
	tokens, err := Tokenize("c4 % x\n~ c")
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert := assert.New(t)
	assert.True(tokens[0].Tie)
	assert.Equal(Position{Line: 2, Col: 3}, tokens[1].Pos)
}
