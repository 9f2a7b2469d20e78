package query

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse reads a constraint expression. Tokens are separated by whitespace
// or commas:
//
//	+ab   Contains("ab")
//	-xy   DoesntContain("xy")
//	a@0   AtPosition(0, 'a')
//	a!1   NotAtPosition(1, 'a')
//
// Letters are taken verbatim; range checks belong to the session policy.
func Parse(expr string) ([]Constraint, error) {
	fields := strings.FieldsFunc(expr, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	cs := make([]Constraint, 0, len(fields))
	for _, tok := range fields {
		c, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

func parseToken(tok string) (Constraint, error) {
	switch tok[0] {
	case '+':
		if len(tok) == 1 {
			return nil, &ParseError{Token: tok, Reason: "missing letters"}
		}
		return Contains(tok[1:]), nil
	case '-':
		if len(tok) == 1 {
			return nil, &ParseError{Token: tok, Reason: "missing letters"}
		}
		return DoesntContain(tok[1:]), nil
	}

	letter, size := utf8.DecodeRuneInString(tok)
	if len(tok) <= size+1 {
		return nil, &ParseError{Token: tok, Reason: "expected <letter>@<slot> or <letter>!<slot>"}
	}

	slot, err := strconv.Atoi(tok[size+1:])
	if err != nil {
		return nil, &ParseError{Token: tok, Reason: "slot is not a number"}
	}

	switch tok[size] {
	case '@':
		return AtPosition(slot, letter), nil
	case '!':
		return NotAtPosition(slot, letter), nil
	default:
		return nil, &ParseError{Token: tok, Reason: "expected '@' or '!' after the letter"}
	}
}
