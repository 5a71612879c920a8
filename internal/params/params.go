// Package params holds the trained Punkt parameter bundle: the abbreviation
// set, collocation set, sentence-starter set, and per-type orthographic
// context accumulated by a training run. The bundle is read-only after
// construction and safe to share between goroutines.
package params

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Orthographic context flags. Each records that a type has been observed in
// a given position (sentence-beginning, mid-sentence, unknown) with a given
// case.
const (
	OrthoBegUC = 1 << 1
	OrthoMidUC = 1 << 2
	OrthoUnkUC = 1 << 3
	OrthoBegLC = 1 << 4
	OrthoMidLC = 1 << 5
	OrthoUnkLC = 1 << 6

	// OrthoUC and OrthoLC mask all upper-case and all lower-case
	// observations respectively.
	OrthoUC = OrthoBegUC | OrthoMidUC | OrthoUnkUC
	OrthoLC = OrthoBegLC | OrthoMidLC | OrthoUnkLC
)

// orthoMask covers every defined flag bit; values outside it are rejected
// by the loader.
const orthoMask = OrthoUC | OrthoLC

// Collocation is an ordered pair of types observed to span a period without
// a sentence break. Order is significant.
type Collocation struct {
	First  string
	Second string
}

// Parameters is an in-memory Punkt parameter bundle. All lookups expect
// lowercased types; keys are case-folded once at construction.
type Parameters struct {
	abbrevTypes  map[string]struct{}
	collocations map[Collocation]struct{}
	sentStarters map[string]struct{}
	orthoContext map[string]int
}

// New builds a bundle from literal sets. Keys are case-folded with full
// Unicode lowercasing so that lookups against lowercased token types match
// regardless of how the training side cased them.
func New(abbrevTypes []string, collocations []Collocation, sentStarters []string, orthoContext map[string]int) *Parameters {
	fold := cases.Lower(language.Und)

	p := &Parameters{
		abbrevTypes:  make(map[string]struct{}, len(abbrevTypes)),
		collocations: make(map[Collocation]struct{}, len(collocations)),
		sentStarters: make(map[string]struct{}, len(sentStarters)),
		orthoContext: make(map[string]int, len(orthoContext)),
	}
	for _, a := range abbrevTypes {
		p.abbrevTypes[fold.String(a)] = struct{}{}
	}
	for _, c := range collocations {
		p.collocations[Collocation{fold.String(c.First), fold.String(c.Second)}] = struct{}{}
	}
	for _, s := range sentStarters {
		p.sentStarters[fold.String(s)] = struct{}{}
	}
	for typ, flags := range orthoContext {
		p.orthoContext[fold.String(typ)] |= flags
	}
	return p
}

// IsAbbrev reports whether typ (without its trailing period) is a known
// abbreviation, matching either the whole type or the part after its last
// hyphen.
func (p *Parameters) IsAbbrev(typ string) bool {
	if _, ok := p.abbrevTypes[typ]; ok {
		return true
	}
	if i := strings.LastIndex(typ, "-"); i >= 0 {
		_, ok := p.abbrevTypes[typ[i+1:]]
		return ok
	}
	return false
}

// IsCollocation reports whether the ordered pair (first, second) is a known
// collocation.
func (p *Parameters) IsCollocation(first, second string) bool {
	_, ok := p.collocations[Collocation{first, second}]
	return ok
}

// IsSentStarter reports whether typ frequently begins sentences.
func (p *Parameters) IsSentStarter(typ string) bool {
	_, ok := p.sentStarters[typ]
	return ok
}

// OrthoContext returns the accumulated orthographic flags for typ, or 0
// when the type was never observed.
func (p *Parameters) OrthoContext(typ string) int {
	return p.orthoContext[typ]
}

// Counts returns the sizes of the four tables.
func (p *Parameters) Counts() (abbrevs, collocations, sentStarters, orthoTypes int) {
	return len(p.abbrevTypes), len(p.collocations), len(p.sentStarters), len(p.orthoContext)
}
