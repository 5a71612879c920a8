package punkt

import (
	"fmt"
	"io"

	"github.com/kavan72/punkt/internal/lang"
	"github.com/kavan72/punkt/internal/params"
	"github.com/kavan72/punkt/internal/tokenize"
)

// Span is a half-open [Start, End) byte interval into the input document.
type Span struct {
	Start int
	End   int
}

// Params is a trained parameter bundle: abbreviations, collocations,
// sentence starters, and orthographic context. Read-only once built.
type Params struct {
	p *params.Parameters
}

// Collocation is an ordered pair of lowercased types known to span a period
// without a sentence break. Order is significant.
type Collocation struct {
	First  string
	Second string
}

// Orthographic context flags for NewParams ortho maps.
const (
	OrthoBegUC = params.OrthoBegUC
	OrthoMidUC = params.OrthoMidUC
	OrthoUnkUC = params.OrthoUnkUC
	OrthoBegLC = params.OrthoBegLC
	OrthoMidLC = params.OrthoMidLC
	OrthoUnkLC = params.OrthoUnkLC
)

// LoadParams reads a JSON parameter bundle from a file.
func LoadParams(path string) (*Params, error) {
	p, err := params.Load(path)
	if err != nil {
		return nil, err
	}
	return &Params{p: p}, nil
}

// ReadParams decodes a JSON parameter bundle from r.
func ReadParams(r io.Reader) (*Params, error) {
	p, err := params.Read(r)
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	return &Params{p: p}, nil
}

// NewParams builds a bundle from literal sets, for programmatic use and
// tests. All keys are case-folded.
func NewParams(abbrevTypes []string, collocations []Collocation, sentStarters []string, orthoContext map[string]int) *Params {
	cs := make([]params.Collocation, len(collocations))
	for i, c := range collocations {
		cs[i] = params.Collocation{First: c.First, Second: c.Second}
	}
	return &Params{p: params.New(abbrevTypes, cs, sentStarters, orthoContext)}
}

// Splitter detects sentence boundaries using a trained parameter bundle.
// It is immutable after New and safe for concurrent use.
type Splitter struct {
	eng *tokenize.Splitter
}

// New creates a Splitter. Construction compiles the language-dependent
// patterns and is the only point of failure; tokenization itself never
// returns an error.
func New(p *Params, opts ...Option) (*Splitter, error) {
	if p == nil {
		return nil, fmt.Errorf("punkt: nil parameter bundle")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	vars, err := lang.New(o.sentEndChars)
	if err != nil {
		return nil, fmt.Errorf("punkt: %w", err)
	}
	return &Splitter{eng: tokenize.NewSplitter(p.p, vars)}, nil
}

// Tokenize splits text into sentences. When realignBoundaries is set,
// trailing quotes and brackets that open the following sentence are
// attached to the preceding one.
func (s *Splitter) Tokenize(text string, realignBoundaries bool) []string {
	return s.eng.Tokenize(text, realignBoundaries)
}

// SpanTokenize splits text into sentence spans. Offsets are byte offsets
// into text; slicing text[sp.Start:sp.End] yields the sentence.
func (s *Splitter) SpanTokenize(text string, realignBoundaries bool) []Span {
	spans := s.eng.SpanTokenize(text, realignBoundaries)
	out := make([]Span, len(spans))
	for i, sp := range spans {
		out[i] = Span{Start: sp.Start, End: sp.End}
	}
	return out
}

// TextContainsSentBreak reports whether the fragment contains a confirmed
// sentence break before its final token.
func (s *Splitter) TextContainsSentBreak(fragment string) bool {
	return s.eng.TextContainsSentBreak(fragment)
}
