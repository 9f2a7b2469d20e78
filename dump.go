package wordsieve

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/wordsieve/index"
)

// Tables is a readable rendering of every structure held by the index.
// Buckets are listed in alphabet order; empty buckets are omitted.
type Tables struct {
	Words     []WordEntry `json:"words"`
	Presence  []Bucket    `json:"presence"`
	Positions []Slot      `json:"positions"`
}

// WordEntry is one row of the word list with its presence mask.
type WordEntry struct {
	ID   uint32 `json:"id"`
	Word string `json:"word"`
	Mask string `json:"mask"`
}

// Bucket lists the words filed under one letter.
type Bucket struct {
	Letter string   `json:"letter"`
	IDs    []uint32 `json:"ids"`
	Words  []string `json:"words"`
}

// Slot holds the position buckets of one slot.
type Slot struct {
	Slot    int      `json:"slot"`
	Buckets []Bucket `json:"buckets"`
}

// Tables returns the debug tables of the index.
func (s *Sieve) Tables() Tables {
	t := Tables{
		Words:     make([]WordEntry, 0, s.ix.Len()),
		Positions: make([]Slot, 0, s.ix.Slots()),
	}

	for id, w := range s.ix.Words() {
		m, _ := s.ix.Mask(uint32(id))
		t.Words = append(t.Words, WordEntry{ID: uint32(id), Word: w, Mask: m.String()})
	}

	t.Presence = s.buckets(index.AnySlot)
	for slot := 0; slot < s.ix.Slots(); slot++ {
		t.Positions = append(t.Positions, Slot{Slot: slot, Buckets: s.buckets(slot)})
	}

	return t
}

func (s *Sieve) buckets(slot int) []Bucket {
	var out []Bucket
	for off := 0; off < index.AlphabetSize; off++ {
		letter := rune('a' + off)
		postings, ok := s.ix.Postings(slot, letter)
		if !ok || postings.IsEmpty() {
			continue
		}
		b := Bucket{Letter: string(letter), IDs: postings.ToArray()}
		b.Words = make([]string, len(b.IDs))
		for i, id := range b.IDs {
			b.Words[i], _ = s.ix.Word(id)
		}
		out = append(out, b)
	}
	return out
}

// Dump writes the debug tables as text: the word list, the bitmask array,
// the presence index and the position index.
func (s *Sieve) Dump(w io.Writer) error {
	t := s.Tables()
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Word List:")
	for _, e := range t.Words {
		fmt.Fprintf(bw, "ID: %d, Word: %s\n", e.ID, e.Word)
	}

	fmt.Fprintln(bw, "\nBitmask Array:")
	for _, e := range t.Words {
		fmt.Fprintf(bw, "ID: %d, Bitmask: %s\n", e.ID, e.Mask)
	}

	fmt.Fprintln(bw, "\nPresence Index:")
	for _, b := range t.Presence {
		writeBucket(bw, "", b)
	}

	fmt.Fprintln(bw, "\nPosition Index:")
	for _, slot := range t.Positions {
		fmt.Fprintf(bw, "Position %d:\n", slot.Slot)
		for _, b := range slot.Buckets {
			writeBucket(bw, "  ", b)
		}
	}

	return bw.Flush()
}

func writeBucket(w io.Writer, indent string, b Bucket) {
	ids := make([]string, len(b.IDs))
	for i, id := range b.IDs {
		ids[i] = fmt.Sprint(id)
	}
	fmt.Fprintf(w, "%sLetter: %s, Word IDs: [%s], Words: [%s]\n",
		indent, b.Letter, strings.Join(ids, ", "), strings.Join(b.Words, ", "))
}
