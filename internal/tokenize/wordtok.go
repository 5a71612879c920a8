package tokenize

import (
	"strings"

	"github.com/kavan72/punkt/internal/lang"
)

// tokenizeWords splits plain text into annotated tokens, line by line. A
// whitespace-only line marks the next non-empty line as a paragraph start;
// only the first token of each line carries the line-start flag.
func tokenizeWords(vars *lang.Vars, text string) []*Token {
	var toks []*Token
	paraStart := false
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			paraStart = true
			continue
		}
		words := vars.WordTokenize(line)
		if len(words) == 0 {
			continue
		}
		toks = append(toks, NewToken(words[0], paraStart, true))
		paraStart = false
		for _, w := range words[1:] {
			toks = append(toks, NewToken(w, false, false))
		}
	}
	return toks
}
