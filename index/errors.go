package index

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the word corpus cannot be indexed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyWordList is returned by Build when no words are supplied.
	ErrEmptyWordList = fmt.Errorf("%w: empty word list", ErrInvalidInput)
)

// InvalidInputError reports a character outside the supported alphabet.
//
// It satisfies errors.Is(err, ErrInvalidInput).
type InvalidInputError struct {
	Word   string
	WordID int // -1 when the word is not part of a corpus
	Offset int // byte offset of the offending character
	Char   rune
}

func (e *InvalidInputError) Error() string {
	if e.WordID < 0 {
		return fmt.Sprintf("invalid input: word %q has unsupported character %q at offset %d", e.Word, e.Char, e.Offset)
	}
	return fmt.Sprintf("invalid input: word %d (%q) has unsupported character %q at offset %d", e.WordID, e.Word, e.Char, e.Offset)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }
