package query

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is reported by Strict sessions for an out-of-range
	// slot or a letter outside the alphabet.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSyntax is returned when a constraint expression or a feedback pattern
	// cannot be parsed.
	ErrSyntax = errors.New("syntax error")
)

// ArgumentError describes the argument a Strict session rejected.
//
// It satisfies errors.Is(err, ErrInvalidArgument).
type ArgumentError struct {
	Op     Op
	Slot   int
	Letter rune
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s: %s", e.Op, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// ParseError reports a malformed constraint token or feedback pattern.
//
// It satisfies errors.Is(err, ErrSyntax).
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error: %q: %s", e.Token, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }
