package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavan72/punkt/internal/lang"
)

func surfaces(toks []*Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Tok
	}
	return out
}

func TestTokenizeWords(t *testing.T) {
	toks := tokenizeWords(lang.Default(), "One two\n\nThree\nFour five")
	require.Equal(t, []string{"One", "two", "Three", "Four", "five"}, surfaces(toks))

	// First line: no preceding blank line.
	assert.False(t, toks[0].ParaStart)
	assert.True(t, toks[0].LineStart)
	assert.False(t, toks[1].ParaStart)
	assert.False(t, toks[1].LineStart)

	// "Three" follows a blank line.
	assert.True(t, toks[2].ParaStart)
	assert.True(t, toks[2].LineStart)

	// "Four" starts a line but not a paragraph.
	assert.False(t, toks[3].ParaStart)
	assert.True(t, toks[3].LineStart)
	assert.False(t, toks[4].LineStart)
}

func TestTokenizeWordsLeadingBlankLines(t *testing.T) {
	toks := tokenizeWords(lang.Default(), "\n\nHi")
	require.Len(t, toks, 1)
	assert.True(t, toks[0].ParaStart)
	assert.True(t, toks[0].LineStart)
}

func TestTokenizeWordsWhitespaceOnlyLineIsParagraphBreak(t *testing.T) {
	toks := tokenizeWords(lang.Default(), "a\n   \t\nb")
	require.Len(t, toks, 2)
	assert.True(t, toks[1].ParaStart)
}

func TestTokenizeWordsEmpty(t *testing.T) {
	assert.Empty(t, tokenizeWords(lang.Default(), ""))
	assert.Empty(t, tokenizeWords(lang.Default(), "  \n \n"))
}
