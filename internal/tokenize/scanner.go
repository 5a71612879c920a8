package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/kavan72/punkt/internal/lang"
	"github.com/kavan72/punkt/internal/params"
)

// Span is a half-open [Start, End) byte interval into the input document.
type Span struct {
	Start int
	End   int
}

// Splitter runs the Punkt sentence boundary pipeline over documents. It
// holds only the immutable parameter bundle and language variables, so one
// Splitter may be shared by any number of goroutines.
type Splitter struct {
	vars   *lang.Vars
	params *params.Parameters
}

// NewSplitter creates a Splitter over the given bundle and language
// variables. Neither is copied; both must stay unmodified for the
// Splitter's lifetime.
func NewSplitter(p *params.Parameters, vars *lang.Vars) *Splitter {
	return &Splitter{vars: vars, params: p}
}

// Tokenize splits text into sentences. When realignBoundaries is set,
// trailing quotes and brackets that open the following span are attached to
// the preceding sentence.
func (s *Splitter) Tokenize(text string, realignBoundaries bool) []string {
	spans := s.SpanTokenize(text, realignBoundaries)
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		out = append(out, text[sp.Start:sp.End])
	}
	return out
}

// SpanTokenize splits text into sentence spans. Offsets are byte offsets
// into text, non-overlapping and non-decreasing.
func (s *Splitter) SpanTokenize(text string, realignBoundaries bool) []Span {
	d := newDoc(text)
	spans := s.sliceSpans(d)
	if realignBoundaries {
		spans = s.realignSpans(d, spans)
	}
	out := make([]Span, 0, len(spans))
	for _, rs := range spans {
		if sp, ok := d.byteSpan(rs); ok {
			out = append(out, sp)
		}
	}
	return out
}

// TextContainsSentBreak reports whether the annotated fragment contains a
// sentence break before its last token. The last token is the candidate
// under evaluation and does not confirm itself.
func (s *Splitter) TextContainsSentBreak(fragment string) bool {
	toks := tokenizeWords(s.vars, fragment)
	annotateFirstPass(s.vars, s.params, toks)
	annotateSecondPass(s.params, toks)
	for i, t := range toks {
		if i+1 < len(toks) && t.SentBreak.IsTrue() {
			return true
		}
	}
	return false
}

// doc pairs a document's code points with a code-point→byte offset table.
// The regex engine reports match positions in code points; spans are
// published in bytes.
type doc struct {
	text    string
	runes   []rune
	byteOff []int // byteOff[i] is the byte offset of rune i; one extra entry for len(text)
}

func newDoc(text string) *doc {
	runes := make([]rune, 0, len(text))
	byteOff := make([]int, 0, len(text)+1)
	for b, r := range text {
		byteOff = append(byteOff, b)
		runes = append(runes, r)
	}
	byteOff = append(byteOff, len(text))
	return &doc{text: text, runes: runes, byteOff: byteOff}
}

// runeSpan is a half-open code-point interval, the scanner's working
// representation.
type runeSpan struct {
	start int
	end   int
}

// byteSpan converts a rune span to byte offsets. Spans that cannot be
// realized on the document are dropped rather than failing.
func (d *doc) byteSpan(rs runeSpan) (Span, bool) {
	if rs.start < 0 || rs.end > len(d.runes) || rs.start > rs.end {
		return Span{}, false
	}
	return Span{Start: d.byteOff[rs.start], End: d.byteOff[rs.end]}, true
}

// sliceSpans scans the document for period contexts and emits one span per
// confirmed sentence break, plus a final span covering trailing content.
func (s *Splitter) sliceSpans(d *doc) []runeSpan {
	var spans []runeSpan
	lastBreak := 0

	re := s.vars.PeriodContext()
	m, err := re.FindStringMatch(d.text)
	for err == nil && m != nil {
		context := m.String() + groupText(m, "after_tok")
		if s.TextContainsSentBreak(context) {
			spans = append(spans, runeSpan{lastBreak, m.Index + m.Length})
			if g := m.GroupByName("next_tok"); g != nil && len(g.Captures) > 0 {
				lastBreak = g.Index
			} else {
				lastBreak = m.Index + m.Length
			}
		}
		m, err = re.FindNextMatch(m)
	}
	if lastBreak < len(d.runes) {
		spans = append(spans, runeSpan{lastBreak, len(d.runes)})
	}
	return spans
}

// realignSpans attaches leading runs of closing quotes and brackets of each
// span to the preceding one. The running realign offset shifts a span's
// start past whatever the previous iteration claimed.
func (s *Splitter) realignSpans(d *doc, spans []runeSpan) []runeSpan {
	var out []runeSpan
	realign := 0
	re := s.vars.BoundaryRealign()

	for i, s1 := range spans {
		s1 = runeSpan{s1.start + realign, s1.end}
		if i+1 >= len(spans) {
			if s1.start < s1.end {
				out = append(out, s1)
			}
			continue
		}
		s2 := spans[i+1]

		m, err := re.FindStringMatch(string(d.runes[s2.start:s2.end]))
		if err == nil && m != nil {
			trimmed := strings.TrimRightFunc(m.String(), unicode.IsSpace)
			out = append(out, runeSpan{s1.start, s2.start + utf8.RuneCountInString(trimmed)})
			realign = m.Index + m.Length
		} else {
			realign = 0
			if s1.start < s1.end {
				out = append(out, s1)
			}
		}
	}
	return out
}

// groupText returns the text of a named group, or "" when the group did not
// participate in the match.
func groupText(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}
