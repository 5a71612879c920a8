package tokenize

import (
	"strings"

	"github.com/kavan72/punkt/internal/lang"
	"github.com/kavan72/punkt/internal/params"
)

// annotateFirstPass classifies each token in isolation: sentence-end
// punctuation, ellipses, and period-final words checked against the
// abbreviation set. Exactly one rule applies per token.
func annotateFirstPass(vars *lang.Vars, p *params.Parameters, toks []*Token) {
	for _, t := range toks {
		firstPassAnnotation(vars, p, t)
	}
}

func firstPassAnnotation(vars *lang.Vars, p *params.Parameters, t *Token) {
	switch {
	case vars.IsSentEndChar(t.Tok):
		t.SentBreak = True
	case t.IsEllipsis():
		t.Ellipsis = True
	case t.PeriodFinal && !strings.HasSuffix(t.Tok, ".."):
		if p.IsAbbrev(strings.ToLower(t.Tok[:len(t.Tok)-1])) {
			t.Abbr = True
		} else {
			t.SentBreak = True
		}
	}
}

// annotateSecondPass revisits each token with its successor in hand,
// rewriting first-pass decisions using collocations, sentence starters, and
// orthographic evidence. The final token has no successor and is left as
// the first pass classified it.
func annotateSecondPass(p *params.Parameters, toks []*Token) {
	for i, t := range toks {
		if i+1 < len(toks) {
			secondPassAnnotation(p, t, toks[i+1])
		}
	}
}

func secondPassAnnotation(p *params.Parameters, t1, t2 *Token) {
	if !t1.PeriodFinal {
		return
	}
	typ := t1.TypeNoPeriod()
	nextTyp := t2.TypeNoSentPeriod()
	isInitial := t1.IsInitial()

	// A known collocation across the period overrides everything,
	// including an existing abbreviation flag.
	if p.IsCollocation(typ, nextTyp) {
		t1.SentBreak = False
		t1.Abbr = True
		return
	}

	// An abbreviation or ellipsis can still end a sentence when the next
	// token carries sentence-initial evidence.
	if (t1.Abbr.IsTrue() || t1.Ellipsis.IsTrue()) && !isInitial {
		if orthoHeuristic(p, t2) == orthoTrue {
			t1.SentBreak = True
			return
		}
		if t2.FirstUpper() && p.IsSentStarter(nextTyp) {
			t1.SentBreak = True
			return
		}
	}

	// Initials and numbers rarely end sentences; suppress the break unless
	// the evidence says otherwise.
	if isInitial || typ == numberType {
		switch orthoHeuristic(p, t2) {
		case orthoFalse:
			t1.SentBreak = False
			t1.Abbr = True
		case orthoUnknown:
			if isInitial && t2.FirstUpper() && p.OrthoContext(nextTyp)&params.OrthoLC == 0 {
				t1.SentBreak = False
				t1.Abbr = True
			}
		}
	}
}

// orthoResult is the three-valued outcome of the orthographic heuristic.
// Collapsing it to a boolean would lose the distinction between "no
// evidence" and "evidence against", which the second pass depends on.
type orthoResult uint8

const (
	orthoUnknown orthoResult = iota
	orthoTrue
	orthoFalse
)

var orthoSkipTokens = map[string]struct{}{
	";": {}, ":": {}, ",": {}, ".": {}, "!": {}, "?": {},
}

// orthoHeuristic decides from accumulated orthographic context whether the
// given token plausibly starts a sentence.
func orthoHeuristic(p *params.Parameters, t *Token) orthoResult {
	if _, punct := orthoSkipTokens[t.Tok]; punct {
		return orthoFalse
	}
	oc := p.OrthoContext(t.TypeNoSentPeriod())

	// Upper case, seen lower-cased somewhere, never upper-cased
	// mid-sentence: sentence start.
	if t.FirstUpper() && oc&params.OrthoLC != 0 && oc&params.OrthoMidUC == 0 {
		return orthoTrue
	}
	// Lower case, seen upper-cased somewhere, never lower-cased at a
	// sentence beginning: not a sentence start.
	if t.FirstLower() && oc&params.OrthoUC != 0 && oc&params.OrthoBegLC == 0 {
		return orthoFalse
	}
	return orthoUnknown
}
