package query

// Policy decides how a session treats an out-of-range slot or a letter
// outside the alphabet.
type Policy int

const (
	// Lenient treats invalid arguments as an empty posting list: an inclusion
	// empties the candidate set, an exclusion removes nothing. No error is
	// ever reported.
	Lenient Policy = iota

	// Strict records an *ArgumentError, empties the candidate set and turns
	// every later operation of the session into a no-op.
	Strict
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

type options struct {
	policy   Policy
	tracer   Tracer
	foldCase bool
}

// Option configures a query session.
type Option func(*options)

// WithPolicy selects how invalid arguments are handled. Default: Lenient.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithTracer installs a hook that observes every operation.
// Pass nil to disable tracing.
func WithTracer(t Tracer) Option {
	return func(o *options) {
		if t == nil {
			t = noopTracer{}
		}
		o.tracer = t
	}
}

// WithFoldCase folds ASCII upper case letters in arguments to lower case.
func WithFoldCase(fold bool) Option {
	return func(o *options) {
		o.foldCase = fold
	}
}
