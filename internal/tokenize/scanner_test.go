package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavan72/punkt/internal/lang"
	"github.com/kavan72/punkt/internal/params"
)

// scenarioParams is the reference bundle used by the end-to-end scenarios:
// a handful of abbreviations and nothing else unless a test adds more.
func scenarioParams() *params.Parameters {
	return params.New([]string{"dr", "mr", "mrs", "e.g", "i.e", "inc"}, nil, nil, nil)
}

func newTestSplitter(p *params.Parameters) *Splitter {
	return NewSplitter(p, lang.Default())
}

func TestTokenizeTwoSentences(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	got := s.Tokenize("Hello world. How are you?", true)
	assert.Equal(t, []string{"Hello world.", "How are you?"}, got)
}

func TestTokenizeAbbreviationSuppression(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	got := s.Tokenize("Dr. Smith arrived. He waved.", true)
	assert.Equal(t, []string{"Dr. Smith arrived.", "He waved."}, got)
}

func TestTokenizeMultiPeriodAbbreviation(t *testing.T) {
	p := params.New([]string{"dr", "mr", "mrs", "e.g", "i.e", "inc", "p.m"}, nil, nil, nil)
	s := newTestSplitter(p)
	got := s.Tokenize("The meeting is at 3 p.m. tomorrow.", true)
	assert.Equal(t, []string{"The meeting is at 3 p.m. tomorrow."}, got)
}

func TestTokenizeRealignsClosingQuote(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	got := s.Tokenize(`She said "Hello." Then she left.`, true)
	assert.Equal(t, []string{`She said "Hello."`, "Then she left."}, got)
}

func TestTokenizeInitialsDoNotBreak(t *testing.T) {
	p := params.New(
		[]string{"dr", "mr", "mrs", "e.g", "i.e", "inc"},
		nil, nil,
		map[string]int{"tolkien": params.OrthoMidUC},
	)
	s := newTestSplitter(p)
	got := s.Tokenize("J. R. R. Tolkien wrote books.", true)
	assert.Equal(t, []string{"J. R. R. Tolkien wrote books."}, got)
}

func TestTokenizeEllipsisBeforeSentStarter(t *testing.T) {
	p := params.New(
		[]string{"dr", "mr", "mrs", "e.g", "i.e", "inc"},
		nil,
		[]string{"is"},
		nil,
	)
	s := newTestSplitter(p)
	got := s.Tokenize("Wait... Is that you?", true)
	assert.Equal(t, []string{"Wait...", "Is that you?"}, got)
}

func TestSpanTokenizeEmptyInput(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	assert.Empty(t, s.SpanTokenize("", true))
	assert.Empty(t, s.SpanTokenize("", false))
	assert.Empty(t, s.Tokenize("", true))
}

func TestSpanTokenizeWhitespaceOnly(t *testing.T) {
	// Whitespace-only input yields one span covering the input; there is no
	// candidate boundary to split it.
	s := newTestSplitter(scenarioParams())
	spans := s.SpanTokenize("   ", true)
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Start: 0, End: 3}, spans[0])
}

func TestSpanTokenizeNoTerminalPunctuation(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	text := "no terminal punctuation here"
	spans := s.SpanTokenize(text, true)
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Start: 0, End: len(text)}, spans[0])
}

func TestSpanTokenizeLeadingWhitespaceKeepsTail(t *testing.T) {
	// The final span closes at the true document length even when the
	// document starts with whitespace.
	s := newTestSplitter(scenarioParams())
	text := "  Hello world. How are you?"
	got := s.Tokenize(text, true)
	require.Len(t, got, 2)
	assert.Equal(t, "  Hello world.", got[0])
	assert.Equal(t, "How are you?", got[1])

	spans := s.SpanTokenize(text, true)
	assert.Equal(t, len(text), spans[len(spans)-1].End)
}

func TestSpanTokenizeOffsetsSliceCleanly(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	text := "Hello world. How are you? Fine."
	for _, realign := range []bool{true, false} {
		spans := s.SpanTokenize(text, realign)
		sents := s.Tokenize(text, realign)
		require.Equal(t, len(spans), len(sents))
		for i, sp := range spans {
			assert.Equal(t, sents[i], text[sp.Start:sp.End])
		}
	}
}

func TestSpanTokenizeMultibyte(t *testing.T) {
	// Offsets are byte offsets; multi-byte runes must slice cleanly.
	s := newTestSplitter(scenarioParams())
	text := "Héllo wörld. Nächste Frage?"
	spans := s.SpanTokenize(text, true)
	require.Len(t, spans, 2)
	assert.Equal(t, "Héllo wörld.", text[spans[0].Start:spans[0].End])
	assert.Equal(t, "Nächste Frage?", text[spans[1].Start:spans[1].End])
	assert.Equal(t, len("Héllo wörld."), spans[0].End)
}

func TestSpanTokenizeMonotonic(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	text := `Dr. Smith arrived. "Quoted." He waved. Then... nothing happened. The end?`
	for _, realign := range []bool{true, false} {
		spans := s.SpanTokenize(text, realign)
		prev := 0
		for _, sp := range spans {
			assert.GreaterOrEqual(t, sp.Start, prev)
			assert.GreaterOrEqual(t, sp.End, sp.Start)
			prev = sp.Start
		}
	}
}

func TestSpanTokenizePurity(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	text := `She said "Hello." Then she left. Dr. No arrived.`
	first := s.SpanTokenize(text, true)
	second := s.SpanTokenize(text, true)
	assert.Equal(t, first, second)
}

func TestRealignIdempotent(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	for _, text := range []string{
		`She said "Hello." Then she left.`,
		`"One." "Two." "Three."`,
		"Hello world. How are you?",
	} {
		d := newDoc(text)
		once := s.realignSpans(d, s.sliceSpans(d))
		twice := s.realignSpans(d, once)
		assert.Equal(t, once, twice, "text %q", text)
	}
}

func TestRealignOffKeepsQuoteOnFollowingSpan(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	text := `She said "Hello." Then she left.`
	sents := s.Tokenize(text, false)
	require.Len(t, sents, 2)
	assert.Equal(t, `She said "Hello.`, sents[0])
	assert.Equal(t, `" Then she left.`, sents[1])
}

func TestTextContainsSentBreak(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	assert.True(t, s.TextContainsSentBreak("Hello world. How"))
	assert.False(t, s.TextContainsSentBreak("Dr. Smith"))
	assert.False(t, s.TextContainsSentBreak("Hello world"))
	assert.False(t, s.TextContainsSentBreak(""))
	// A break on the final token is the candidate itself and does not
	// confirm a split.
	assert.False(t, s.TextContainsSentBreak("Hello world."))
}

func TestByteSpanDefensive(t *testing.T) {
	d := newDoc("abc")
	_, ok := d.byteSpan(runeSpan{start: -1, end: 2})
	assert.False(t, ok)
	_, ok = d.byteSpan(runeSpan{start: 0, end: 4})
	assert.False(t, ok)
	_, ok = d.byteSpan(runeSpan{start: 2, end: 1})
	assert.False(t, ok)
	sp, ok := d.byteSpan(runeSpan{start: 0, end: 3})
	require.True(t, ok)
	assert.Equal(t, Span{Start: 0, End: 3}, sp)
}

func TestTokenizeParagraphs(t *testing.T) {
	s := newTestSplitter(scenarioParams())
	got := s.Tokenize("First one. Second one.\n\nThird one.", true)
	assert.Equal(t, []string{"First one.", "Second one.", "Third one."}, got)
}
