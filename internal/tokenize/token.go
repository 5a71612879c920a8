// Package tokenize implements the inference-time Punkt pipeline: word
// pre-tokenization, the two annotation passes, the period-context scanner,
// the boundary realigner, and the top-level Splitter that ties them
// together. Everything here is a pure function of the parameter bundle, the
// language variables, and the input text.
package tokenize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// numberType replaces numeric surfaces in a token's type so that all
// numbers share one entry in the learned tables.
const numberType = "##number##"

var (
	numericRe  = regexp.MustCompile(`^-?[.,]?\d[\d,.\-]*\.?$`)
	ellipsisRe = regexp.MustCompile(`^\.\.+$`)
)

// Flag is a tri-valued classification flag. The distinction between unset
// and explicitly-false matters: the second annotation pass records "not a
// break" decisions that the unset state must not imply.
type Flag uint8

const (
	Unset Flag = iota
	True
	False
)

// IsTrue reports whether the flag was explicitly set true.
func (f Flag) IsTrue() bool { return f == True }

func (f Flag) String() string {
	switch f {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

// Token is one word or punctuation atom with its classification state.
// SentBreak, Abbr, and Ellipsis start unset and are written by the
// annotation passes.
type Token struct {
	Tok         string
	Typ         string
	PeriodFinal bool
	ParaStart   bool
	LineStart   bool

	SentBreak Flag
	Abbr      Flag
	Ellipsis  Flag
}

// NewToken builds a token from its surface form. The type is the
// case-folded surface, with numeric surfaces mapped to "##number##".
func NewToken(surface string, paraStart, lineStart bool) *Token {
	return &Token{
		Tok:         surface,
		Typ:         typeOf(surface),
		PeriodFinal: strings.HasSuffix(surface, "."),
		ParaStart:   paraStart,
		LineStart:   lineStart,
	}
}

func typeOf(surface string) string {
	lower := strings.ToLower(surface)
	if numericRe.MatchString(lower) {
		return numberType
	}
	return lower
}

// TypeNoPeriod returns the type with a single trailing period removed, when
// the type is longer than one character.
func (t *Token) TypeNoPeriod() string {
	if len(t.Typ) > 1 && strings.HasSuffix(t.Typ, ".") {
		return t.Typ[:len(t.Typ)-1]
	}
	return t.Typ
}

// TypeNoSentPeriod returns TypeNoPeriod when the token was classified as a
// sentence break, and the plain type otherwise.
func (t *Token) TypeNoSentPeriod() string {
	if t.SentBreak.IsTrue() {
		return t.TypeNoPeriod()
	}
	return t.Typ
}

// FirstUpper reports whether the first code point is upper case.
func (t *Token) FirstUpper() bool {
	r, _ := utf8.DecodeRuneInString(t.Tok)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// FirstLower reports whether the first code point is lower case.
func (t *Token) FirstLower() bool {
	r, _ := utf8.DecodeRuneInString(t.Tok)
	return r != utf8.RuneError && unicode.IsLower(r)
}

// Case describes the case of a token's first code point.
type Case uint8

const (
	CaseNone Case = iota
	CaseLower
	CaseUpper
)

func (c Case) String() string {
	switch c {
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	default:
		return "none"
	}
}

// FirstCase classifies the case of the first code point.
func (t *Token) FirstCase() Case {
	switch {
	case t.FirstLower():
		return CaseLower
	case t.FirstUpper():
		return CaseUpper
	default:
		return CaseNone
	}
}

// IsEllipsis reports whether the surface is a run of two or more periods.
func (t *Token) IsEllipsis() bool {
	return ellipsisRe.MatchString(t.Tok)
}

// IsNumber reports whether the type is numeric.
func (t *Token) IsNumber() bool {
	return strings.HasPrefix(t.Typ, numberType)
}

// IsInitial reports whether the surface is a single letter (or underscore)
// followed by a period, e.g. "J.".
func (t *Token) IsInitial() bool {
	runes := []rune(t.Tok)
	if len(runes) != 2 || runes[1] != '.' {
		return false
	}
	return unicode.IsLetter(runes[0]) || runes[0] == '_'
}
