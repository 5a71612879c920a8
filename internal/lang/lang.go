// Package lang holds the language-dependent variables of the sentence
// boundary detector: the set of sentence-ending characters and the three
// regular expressions driving word tokenization, period-context scanning,
// and boundary realignment.
//
// The word-tokenizer and period-context patterns use lookahead and named
// captures, which Go's RE2 engine cannot express, so they are compiled with
// github.com/dlclark/regexp2. Note that regexp2 reports match offsets in
// code points, not bytes; callers that need byte offsets must convert.
package lang

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

// Fixed pattern fragments. These mirror the standard Punkt templates; the
// {NonWord}, {MultiChar}, {WordStart} and {SentEndChars} placeholders are
// substituted at construction.
const (
	// reWordStart excludes characters that never begin a word.
	reWordStart = `[^\(\"` + "`" + `{\[:;&\#\*@\)}\]\-,]`

	// reMultiCharPunct matches dash runs, ellipses, and spaced ellipses
	// (". . .") as single atoms.
	reMultiCharPunct = `(?:\-{2,}|\.{2,}|(?:\.\s){2,}\.)`

	// internalPunct are characters that may appear inside a sentence
	// without ending it.
	internalPunct = ",:;"

	wordTokenizeFmt = `({MultiChar} | (?={WordStart})\S+?(?=\s|$| {NonWord} | {MultiChar} | ,(?=$|\s|{NonWord}|{MultiChar})) | \S)`

	periodContextFmt = `\S* {SentEndChars} (?=(?<after_tok> {NonWord} | \s+ (?<next_tok> \S+ )))`

	boundaryRealignPattern = `^["')\]}]+?(?:\s+|(?=--)|$)`
)

// DefaultSentEndChars are the sentence-ending characters used when no
// custom set is configured.
var DefaultSentEndChars = []rune{'.', '?', '!'}

// Vars bundles the compiled language-dependent patterns. A Vars is
// immutable after construction and safe for concurrent use.
type Vars struct {
	sentEndChars map[string]struct{}
	endChars     []rune

	wordTokenizer   *regexp2.Regexp
	periodContext   *regexp2.Regexp
	boundaryRealign *regexp2.Regexp
}

// Default returns a Vars with the standard sentence-end set {. ? !}.
func Default() *Vars {
	v, err := New(DefaultSentEndChars)
	if err != nil {
		// The default set is known valid; failing here is a programmer error.
		panic(err)
	}
	return v
}

// New builds and compiles the language variables for a custom sentence-end
// character set. The set must be non-empty and must not contain whitespace,
// letters, or digits.
func New(sentEndChars []rune) (*Vars, error) {
	if len(sentEndChars) == 0 {
		return nil, fmt.Errorf("lang: empty sentence-end character set")
	}
	set := make(map[string]struct{}, len(sentEndChars))
	chars := make([]rune, 0, len(sentEndChars))
	for _, r := range sentEndChars {
		if unicode.IsSpace(r) {
			return nil, fmt.Errorf("lang: sentence-end character %q is whitespace", r)
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return nil, fmt.Errorf("lang: sentence-end character %q starts words", r)
		}
		if _, dup := set[string(r)]; dup {
			continue
		}
		set[string(r)] = struct{}{}
		chars = append(chars, r)
	}

	reSentEndChars := "[" + regexp.QuoteMeta(string(chars)) + "]"
	reNonWordChars := buildNonWordChars(chars)

	wordTok := strings.NewReplacer(
		"{NonWord}", reNonWordChars,
		"{MultiChar}", reMultiCharPunct,
		"{WordStart}", reWordStart,
	).Replace(wordTokenizeFmt)

	periodCtx := strings.NewReplacer(
		"{SentEndChars}", reSentEndChars,
		"{NonWord}", reNonWordChars,
	).Replace(periodContextFmt)

	// The templates are fixed; a compilation failure is a programmer error
	// and MustCompile fails fast at construction.
	return &Vars{
		sentEndChars:    set,
		endChars:        chars,
		wordTokenizer:   regexp2.MustCompile(wordTok, regexp2.IgnorePatternWhitespace),
		periodContext:   regexp2.MustCompile(periodCtx, regexp2.IgnorePatternWhitespace),
		boundaryRealign: regexp2.MustCompile(boundaryRealignPattern, regexp2.None),
	}, nil
}

// buildNonWordChars assembles the non-word character class. The period is
// excluded so that abbreviations and ordinals stay attached to their word.
func buildNonWordChars(sentEndChars []rune) string {
	var extra []rune
	for _, r := range sentEndChars {
		if r != '.' {
			extra = append(extra, r)
		}
	}
	return `(?:[;)}"\]*:@'({\[` + regexp.QuoteMeta(string(extra)) + `])`
}

// IsSentEndChar reports whether tok is exactly one of the configured
// sentence-ending characters.
func (v *Vars) IsSentEndChar(tok string) bool {
	_, ok := v.sentEndChars[tok]
	return ok
}

// SentEndChars returns a copy of the configured sentence-end characters.
func (v *Vars) SentEndChars() []rune {
	out := make([]rune, len(v.endChars))
	copy(out, v.endChars)
	return out
}

// WordTokenize splits a string into word and punctuation atoms, one per
// match of the word-tokenizer pattern.
func (v *Vars) WordTokenize(s string) []string {
	var out []string
	m, err := v.wordTokenizer.FindStringMatch(s)
	for err == nil && m != nil {
		out = append(out, m.String())
		m, err = v.wordTokenizer.FindNextMatch(m)
	}
	return out
}

// PeriodContext returns the compiled period-context pattern. Matches carry
// the named groups "after_tok" and "next_tok".
func (v *Vars) PeriodContext() *regexp2.Regexp {
	return v.periodContext
}

// BoundaryRealign returns the compiled boundary-realignment pattern, which
// matches a leading run of closing quotes/brackets at the start of a span.
func (v *Vars) BoundaryRealign() *regexp2.Regexp {
	return v.boundaryRealign
}
