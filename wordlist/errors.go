package wordlist

import "errors"

var (
	// ErrNotFound is returned when a word list source does not exist.
	ErrNotFound = errors.New("word list not found")
	// ErrEmpty is returned when a source holds no words after filtering.
	ErrEmpty = errors.New("word list is empty")
)
