// Package punkt provides an unsupervised multilingual sentence boundary
// detector. For each period, question mark, or exclamation point in a
// document it decides whether the punctuation ends a sentence or belongs to
// an abbreviation, ordinal, initial, or ellipsis, guided by a pre-trained
// language-specific parameter bundle.
//
// Quick start:
//
//	params, err := punkt.LoadParams("english.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, _ := punkt.New(params)
//
//	for _, sent := range s.Tokenize("Dr. Smith arrived. He waved.", true) {
//	    fmt.Println(sent)
//	}
//	// Output:
//	// Dr. Smith arrived.
//	// He waved.
//
// A Splitter is immutable and safe for concurrent use. Span offsets are
// byte offsets into the input string.
package punkt
