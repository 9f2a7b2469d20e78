package index

const (
	// AlphabetSize is the number of supported letters ('a' through 'z').
	AlphabetSize = 26

	// DefaultWordLength is the number of position slots used when none is configured.
	DefaultWordLength = 5

	// AnySlot selects the presence index in Postings.
	AnySlot = -1
)

type options struct {
	wordLength int
	foldCase   bool
}

// Option configures Build.
type Option func(*options)

// WithWordLength sets the number of position slots.
//
// Words longer than n still get position entries for their extra slots;
// words shorter than n simply have none for the missing slots.
// Values <= 0 select DefaultWordLength.
func WithWordLength(n int) Option {
	return func(o *options) {
		o.wordLength = n
	}
}

// WithFoldCase folds ASCII upper case letters to lower case before indexing.
// Without it, upper case letters are rejected as invalid input.
func WithFoldCase(fold bool) Option {
	return func(o *options) {
		o.foldCase = fold
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		wordLength: DefaultWordLength,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.wordLength <= 0 {
		o.wordLength = DefaultWordLength
	}
	return o
}
