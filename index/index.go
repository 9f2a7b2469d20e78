package index

import (
	"fmt"
	"slices"

	"github.com/hupe1980/wordsieve/internal/bitmap"
	"github.com/hupe1980/wordsieve/internal/conv"
)

// Index is the immutable lookup structure built from a word list.
//
// Word ids are dense and equal to the position of the word in the input
// list. Posting lists are kept in ascending id order.
//
// An Index is never mutated after construction and is safe for concurrent
// read access by any number of query sessions.
type Index struct {
	words      []string
	masks      []Mask
	presence   [AlphabetSize]*bitmap.Bitmap
	positions  [][AlphabetSize]*bitmap.Bitmap
	wordLength int
}

// Build indexes the given words.
//
// Every character must be a lowercase ASCII letter (or an upper case one when
// WithFoldCase is set); anything else yields an *InvalidInputError.
// Duplicates are allowed and keep distinct ids.
func Build(words []string, optFns ...Option) (*Index, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	if _, err := conv.IntToUint32(len(words)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	o := applyOptions(optFns)

	ix := &Index{
		words:      make([]string, len(words)),
		wordLength: o.wordLength,
	}

	slots := o.wordLength
	for i, w := range words {
		if o.foldCase {
			w = foldASCII(w)
		}
		ix.words[i] = w
		slots = max(slots, len(w))
	}

	masks, err := buildMasks(ix.words)
	if err != nil {
		return nil, err
	}
	ix.masks = masks
	ix.presence = buildPresence(masks)
	ix.positions = buildPositions(ix.words, slots)

	return ix, nil
}

func buildMasks(words []string) ([]Mask, error) {
	masks := make([]Mask, len(words))
	for id, w := range words {
		m, err := maskOf(w, id)
		if err != nil {
			return nil, err
		}
		masks[id] = m
	}
	return masks, nil
}

// buildPresence scans every mask once per letter; ids enter each posting
// list in ascending order.
func buildPresence(masks []Mask) [AlphabetSize]*bitmap.Bitmap {
	var presence [AlphabetSize]*bitmap.Bitmap
	for off := 0; off < AlphabetSize; off++ {
		b := bitmap.New()
		bit := Mask(1) << off
		for id, m := range masks {
			if m&bit != 0 {
				b.Add(uint32(id))
			}
		}
		presence[off] = b
	}
	return presence
}

// buildPositions expects words that already passed mask validation, so every
// byte is a letter and byte offsets equal slots.
func buildPositions(words []string, slots int) [][AlphabetSize]*bitmap.Bitmap {
	positions := make([][AlphabetSize]*bitmap.Bitmap, slots)
	for slot := range positions {
		for off := range positions[slot] {
			positions[slot][off] = bitmap.New()
		}
	}
	for id, w := range words {
		for slot := 0; slot < len(w); slot++ {
			positions[slot][w[slot]-'a'].Add(uint32(id))
		}
	}
	return positions
}

// FromParts assembles an Index from previously derived structures, as
// decoded from a persisted cache. Nil posting lists are treated as empty.
//
// The parts must describe exactly the index Build would derive from words:
// every word is lowercase a-z, masks match the words, the position index has
// at least max(wordLength, longest word) slots and every posting list holds
// precisely the ids implied by the words. Violations yield ErrInvalidInput.
func FromParts(words []string, masks []Mask, presence [AlphabetSize]*bitmap.Bitmap, positions [][AlphabetSize]*bitmap.Bitmap, wordLength int) (*Index, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	if _, err := conv.IntToUint32(len(words)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if len(masks) != len(words) {
		return nil, fmt.Errorf("%w: %d masks for %d words", ErrInvalidInput, len(masks), len(words))
	}
	if wordLength <= 0 {
		return nil, fmt.Errorf("%w: word length %d", ErrInvalidInput, wordLength)
	}

	var letters, presenceBits uint64
	for id, w := range words {
		m, err := maskOf(w, id)
		if err != nil {
			return nil, err
		}
		if m != masks[id] {
			return nil, fmt.Errorf("%w: mask %s of word %d does not match %q", ErrInvalidInput, masks[id], id, w)
		}
		if len(w) > len(positions) {
			return nil, fmt.Errorf("%w: word %d is longer than %d slots", ErrInvalidInput, id, len(positions))
		}
		letters += uint64(len(w))
		presenceBits += uint64(m.Count())
	}
	if len(positions) < wordLength {
		return nil, fmt.Errorf("%w: %d slots for word length %d", ErrInvalidInput, len(positions), wordLength)
	}

	ix := &Index{
		words:      slices.Clone(words),
		masks:      slices.Clone(masks),
		positions:  make([][AlphabetSize]*bitmap.Bitmap, len(positions)),
		wordLength: wordLength,
	}

	var total uint64
	for off := range presence {
		ix.presence[off] = orEmpty(presence[off])
		total += ix.presence[off].Cardinality()
	}
	// Every expected id is present and nothing else is.
	if total != presenceBits {
		return nil, fmt.Errorf("%w: presence index holds %d entries, masks imply %d", ErrInvalidInput, total, presenceBits)
	}
	for id, m := range masks {
		for off := 0; off < AlphabetSize; off++ {
			if m&(1<<off) != 0 && !ix.presence[off].Contains(uint32(id)) {
				return nil, fmt.Errorf("%w: presence[%c] is missing word %d", ErrInvalidInput, 'a'+off, id)
			}
		}
	}

	total = 0
	for slot := range positions {
		for off := range positions[slot] {
			ix.positions[slot][off] = orEmpty(positions[slot][off])
			total += ix.positions[slot][off].Cardinality()
		}
	}
	if total != letters {
		return nil, fmt.Errorf("%w: position index holds %d entries, words imply %d", ErrInvalidInput, total, letters)
	}
	for id, w := range ix.words {
		for slot := 0; slot < len(w); slot++ {
			if !ix.positions[slot][w[slot]-'a'].Contains(uint32(id)) {
				return nil, fmt.Errorf("%w: position[%d][%c] is missing word %d", ErrInvalidInput, slot, w[slot], id)
			}
		}
	}

	return ix, nil
}

func orEmpty(b *bitmap.Bitmap) *bitmap.Bitmap {
	if b == nil {
		return bitmap.New()
	}
	return b
}

// Len returns the number of indexed words.
func (ix *Index) Len() int {
	return len(ix.words)
}

// WordLength returns the configured number of position slots.
func (ix *Index) WordLength() int {
	return ix.wordLength
}

// Slots returns the number of slots in the position index. It is at least
// WordLength and grows to the longest indexed word.
func (ix *Index) Slots() int {
	return len(ix.positions)
}

// Word returns the word with the given id.
func (ix *Index) Word(id uint32) (string, bool) {
	if int(id) >= len(ix.words) {
		return "", false
	}
	return ix.words[id], true
}

// Words returns a copy of the word list in id order.
func (ix *Index) Words() []string {
	return slices.Clone(ix.words)
}

// Mask returns the presence mask of the word with the given id.
func (ix *Index) Mask(id uint32) (Mask, bool) {
	if int(id) >= len(ix.masks) {
		return 0, false
	}
	return ix.masks[id], true
}

// Masks returns a copy of the mask array in id order.
func (ix *Index) Masks() []Mask {
	return slices.Clone(ix.masks)
}

// Postings returns the posting list for a letter, either anywhere in the word
// (slot == AnySlot) or at the given slot.
//
// The returned bitmap is shared with the index and must not be modified.
// ok is false when the letter is outside the alphabet or the slot is out of
// range; a valid letter that never occurs yields an empty bitmap and ok true.
func (ix *Index) Postings(slot int, letter rune) (postings *bitmap.Bitmap, ok bool) {
	off, ok := LetterOffset(letter)
	if !ok {
		return nil, false
	}
	if slot == AnySlot {
		return ix.presence[off], true
	}
	if slot < 0 || slot >= len(ix.positions) {
		return nil, false
	}
	return ix.positions[slot][off], true
}

// Presence returns the ids of the words containing the letter anywhere.
func (ix *Index) Presence(letter rune) []uint32 {
	b, ok := ix.Postings(AnySlot, letter)
	if !ok {
		return []uint32{}
	}
	return b.ToArray()
}

// Position returns the ids of the words having the letter at the slot.
func (ix *Index) Position(slot int, letter rune) []uint32 {
	if slot < 0 {
		return []uint32{}
	}
	b, ok := ix.Postings(slot, letter)
	if !ok {
		return []uint32{}
	}
	return b.ToArray()
}

// Equal reports whether both indexes hold field-for-field identical data.
func (ix *Index) Equal(other *Index) bool {
	if ix == nil || other == nil {
		return ix == other
	}
	if ix.wordLength != other.wordLength ||
		!slices.Equal(ix.words, other.words) ||
		!slices.Equal(ix.masks, other.masks) ||
		len(ix.positions) != len(other.positions) {
		return false
	}
	for off := range ix.presence {
		if !ix.presence[off].Equal(other.presence[off]) {
			return false
		}
	}
	for slot := range ix.positions {
		for off := range ix.positions[slot] {
			if !ix.positions[slot][off].Equal(other.positions[slot][off]) {
				return false
			}
		}
	}
	return true
}

// Stats summarizes the size of an index.
type Stats struct {
	Words   int    // number of words
	Slots   int    // number of position slots
	Letters int    // distinct letters occurring in the corpus
	Bytes   uint64 // in-memory size of all posting lists
}

// Stats returns size information about the index.
func (ix *Index) Stats() Stats {
	s := Stats{
		Words: len(ix.words),
		Slots: len(ix.positions),
	}
	for _, b := range ix.presence {
		if !b.IsEmpty() {
			s.Letters++
		}
		s.Bytes += b.GetSizeInBytes()
	}
	for slot := range ix.positions {
		for _, b := range ix.positions[slot] {
			s.Bytes += b.GetSizeInBytes()
		}
	}
	return s
}
