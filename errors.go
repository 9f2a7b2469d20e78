package wordsieve

import (
	"errors"
	"fmt"

	"github.com/hupe1980/wordsieve/wordlist"
)

var (
	// ErrNoWords is returned by Open when neither a cached index nor a word
	// list could be obtained.
	ErrNoWords = errors.New("no word list available")

	// ErrNotFound is returned when a configured word list does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoCacheStore is returned by SaveCache when no cache store is set.
	ErrNoCacheStore = errors.New("no cache store configured")
)

// StaleCacheError reports a cached index built for a different word length.
type StaleCacheError struct {
	Name     string
	Cached   int
	Expected int
}

func (e *StaleCacheError) Error() string {
	return fmt.Sprintf("cache %s holds %d-letter index, want %d", e.Name, e.Cached, e.Expected)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Not found unification.
	if errors.Is(err, wordlist.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
