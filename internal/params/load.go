package params

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// bundleFile is the on-disk JSON shape of a trained parameter bundle.
// Collocations are two-element arrays; pair order is significant.
type bundleFile struct {
	AbbrevTypes  []string       `json:"abbrev_types"`
	Collocations [][]string     `json:"collocations"`
	SentStarters []string       `json:"sent_starters"`
	OrthoContext map[string]int `json:"ortho_context"`
}

// Load reads a JSON parameter bundle from a file.
func Load(path string) (*Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	defer f.Close()
	p, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("params: %s: %w", path, err)
	}
	return p, nil
}

// Read decodes a JSON parameter bundle. It rejects malformed collocation
// pairs and orthographic values with unknown flag bits; unknown top-level
// fields are ignored.
func Read(r io.Reader) (*Parameters, error) {
	var b bundleFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}

	collocations := make([]Collocation, 0, len(b.Collocations))
	for i, pair := range b.Collocations {
		if len(pair) != 2 {
			return nil, fmt.Errorf("collocation %d: want 2 elements, got %d", i, len(pair))
		}
		collocations = append(collocations, Collocation{First: pair[0], Second: pair[1]})
	}
	for typ, flags := range b.OrthoContext {
		if flags&^orthoMask != 0 {
			return nil, fmt.Errorf("ortho_context %q: unknown flag bits in %#x", typ, flags)
		}
	}

	return New(b.AbbrevTypes, collocations, b.SentStarters, b.OrthoContext), nil
}
