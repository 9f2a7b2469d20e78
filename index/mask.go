package index

import (
	"fmt"
	"math/bits"
	"strings"
	"unicode/utf8"
)

// Mask is a presence summary of a word: bit k is set iff the word contains
// the letter 'a'+k at least once. It encodes neither count nor position.
type Mask uint32

// MaskOf computes the presence mask of a lowercase word.
func MaskOf(word string) (Mask, error) {
	return maskOf(word, -1)
}

func maskOf(word string, id int) (Mask, error) {
	var m Mask
	for i := 0; i < len(word); i++ {
		off, ok := LetterOffset(rune(word[i]))
		if !ok {
			r, _ := utf8.DecodeRuneInString(word[i:])
			return 0, &InvalidInputError{Word: word, WordID: id, Offset: i, Char: r}
		}
		m |= 1 << off
	}
	return m, nil
}

// Has reports whether the letter is present in the mask.
// Letters outside the alphabet are never present.
func (m Mask) Has(letter rune) bool {
	off, ok := LetterOffset(letter)
	if !ok {
		return false
	}
	return m&(1<<off) != 0
}

// Letters returns the present letters in alphabetical order.
func (m Mask) Letters() string {
	var sb strings.Builder
	sb.Grow(bits.OnesCount32(uint32(m)))
	for off := 0; off < AlphabetSize; off++ {
		if m&(1<<off) != 0 {
			sb.WriteByte(byte('a' + off))
		}
	}
	return sb.String()
}

// Count returns the number of distinct letters in the mask.
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// String renders the mask as 26 binary digits, 'z' first.
func (m Mask) String() string {
	return fmt.Sprintf("%026b", uint32(m))
}

// LetterOffset returns the alphabet offset of a lowercase ASCII letter.
func LetterOffset(letter rune) (int, bool) {
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	return int(letter - 'a'), true
}

func foldASCII(word string) string {
	for i := 0; i < len(word); i++ {
		if c := word[i]; c >= 'A' && c <= 'Z' {
			b := []byte(word)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return word
}
