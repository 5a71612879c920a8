package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// textWriter prints one sentence per line, or "start\tend" pairs when only
// spans are wanted.
type textWriter struct {
	w         io.Writer
	spansOnly bool
}

func (t *textWriter) Write(s Sentence) error {
	var err error
	if t.spansOnly {
		_, err = fmt.Fprintf(t.w, "%d\t%d\n", s.Start, s.End)
	} else {
		_, err = fmt.Fprintln(t.w, s.Text)
	}
	if err != nil {
		return fmt.Errorf("text output: %w", err)
	}
	return nil
}

func (t *textWriter) Close() error { return nil }

// jsonWriter buffers all sentences and emits a single JSON array on Close.
type jsonWriter struct {
	w         io.Writer
	spansOnly bool
	sentences []Sentence
}

func (j *jsonWriter) Write(s Sentence) error {
	if j.spansOnly {
		s.Text = ""
	}
	j.sentences = append(j.sentences, s)
	return nil
}

func (j *jsonWriter) Close() error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if j.sentences == nil {
		j.sentences = []Sentence{}
	}
	if err := enc.Encode(j.sentences); err != nil {
		return fmt.Errorf("json output: %w", err)
	}
	return nil
}

// ndjsonWriter emits one JSON object per line as sentences arrive.
type ndjsonWriter struct {
	w         io.Writer
	spansOnly bool
}

func (n *ndjsonWriter) Write(s Sentence) error {
	if n.spansOnly {
		s.Text = ""
	}
	if err := json.NewEncoder(n.w).Encode(s); err != nil {
		return fmt.Errorf("ndjson output: %w", err)
	}
	return nil
}

func (n *ndjsonWriter) Close() error { return nil }
