package wordlist

type options struct {
	foldCase bool
	length   int
	dedupe   bool
}

// Option configures how lines become words.
type Option func(*options)

// WithFoldCase lower-cases ASCII letters.
func WithFoldCase(fold bool) Option {
	return func(o *options) {
		o.foldCase = fold
	}
}

// WithLength keeps only words of exactly n bytes. Zero keeps every word.
func WithLength(n int) Option {
	return func(o *options) {
		o.length = n
	}
}

// WithDedupe drops repeated words, keeping the first occurrence.
func WithDedupe(dedupe bool) Option {
	return func(o *options) {
		o.dedupe = dedupe
	}
}

func applyOptions(optFns []Option) options {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
