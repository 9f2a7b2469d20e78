package persistence

import (
	"errors"
	"fmt"
)

// ErrCacheMiss is the common cause of every error meaning "no usable cache".
var ErrCacheMiss = errors.New("cache miss")

var (
	// ErrInvalidMagic is returned for data that is not an index cache.
	ErrInvalidMagic = fmt.Errorf("%w: invalid magic number", ErrCacheMiss)
	// ErrIncompatibleVersion is returned for a cache written by another format version.
	ErrIncompatibleVersion = fmt.Errorf("%w: incompatible version", ErrCacheMiss)
	// ErrCorrupt is returned when the header or payload cannot be decoded.
	ErrCorrupt = fmt.Errorf("%w: corrupt cache", ErrCacheMiss)
)

// ChecksumMismatchError is returned when the stored payload does not match
// the header checksum.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// Unwrap makes a checksum mismatch count as corruption.
func (e *ChecksumMismatchError) Unwrap() error { return ErrCorrupt }

// IsChecksumMismatch returns true if err is a checksum mismatch error.
func IsChecksumMismatch(err error) bool {
	var cme *ChecksumMismatchError
	return errors.As(err, &cme)
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}
