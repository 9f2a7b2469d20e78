package query

import (
	"unicode/utf8"

	"github.com/hupe1980/wordsieve/index"
)

// Feedback converts the colouring of one guess into constraints.
//
// pattern holds one mark per guess letter:
//
//	g, G       green: the letter is at this slot
//	y, Y       yellow: the letter is in the word, but not at this slot
//	b, B, x, . grey: the letter is not in the word
//
// A grey letter that is also green or yellow elsewhere in the same guess
// only excludes its own slot, since the index does not track letter counts.
func Feedback(guess, pattern string) ([]Constraint, error) {
	if utf8.RuneCountInString(guess) != utf8.RuneCountInString(pattern) {
		return nil, &ParseError{Token: guess + ":" + pattern, Reason: "guess and pattern differ in length"}
	}

	letters := []rune(guess)
	marks := []rune(pattern)

	confirmed := make(map[rune]bool, len(letters))
	for i, m := range marks {
		switch m {
		case 'g', 'G', 'y', 'Y':
			confirmed[letters[i]] = true
		case 'b', 'B', 'x', 'X', '.':
		default:
			return nil, &ParseError{Token: pattern, Reason: "unknown mark " + string(m)}
		}
		if _, ok := index.LetterOffset(letters[i]); !ok {
			return nil, &ParseError{Token: guess, Reason: "guess letter " + string(letters[i]) + " outside a-z"}
		}
	}

	cs := make([]Constraint, 0, len(letters)+2)
	excluded := make(map[rune]bool)
	for slot, m := range marks {
		r := letters[slot]
		switch m {
		case 'g', 'G':
			cs = append(cs, AtPosition(slot, r))
		case 'y', 'Y':
			cs = append(cs, Contains(string(r)), NotAtPosition(slot, r))
		default:
			if confirmed[r] {
				cs = append(cs, NotAtPosition(slot, r))
			} else if !excluded[r] {
				excluded[r] = true
				cs = append(cs, DoesntContain(string(r)))
			}
		}
	}
	return cs, nil
}
