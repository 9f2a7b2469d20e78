// Package index builds the immutable lookup structures of a word corpus.
//
// Build derives three structures from a word list, once:
//
//	Masks:     []Mask                      - 26-bit letter presence per word id
//	Presence:  letter -> word ids          - words containing the letter anywhere
//	Positions: slot -> letter -> word ids  - words with the letter at that slot
//
// Word ids are dense, zero-based and follow the input order. Posting lists
// are Roaring bitmaps and therefore always ascending. Building from the same
// word list is deterministic; Equal compares two indexes field for field.
//
// # Alphabet
//
// Only 'a' through 'z' are indexed. Any other character is an
// *InvalidInputError, unless WithFoldCase is set, in which case ASCII upper
// case letters are folded to lower case first.
//
// # Thread Safety
//
// An Index is never mutated after Build returns and may be shared by any
// number of goroutines.
package index
