package persistence

type options struct {
	compression Compression
}

// Option configures Write and Save.
type Option func(*options)

// WithCompression selects the payload codec. The default is CompressionZSTD.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{compression: CompressionZSTD}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
