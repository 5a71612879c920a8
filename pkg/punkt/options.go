package punkt

type options struct {
	sentEndChars []rune
}

// Option configures a Splitter.
type Option func(*options)

// WithSentEndChars replaces the default sentence-end character set
// {'.', '?', '!'}. Characters must not be whitespace, letters, or digits;
// New reports a violation as an error.
func WithSentEndChars(chars ...rune) Option {
	return func(o *options) {
		o.sentEndChars = chars
	}
}

func defaultOptions() options {
	return options{
		sentEndChars: []rune{'.', '?', '!'},
	}
}
