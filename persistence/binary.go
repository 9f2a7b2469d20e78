package persistence

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hupe1980/wordsieve/index"
	"github.com/hupe1980/wordsieve/internal/bitmap"
	"github.com/hupe1980/wordsieve/internal/conv"
	"github.com/hupe1980/wordsieve/internal/hash"
)

// Write encodes ix to w.
func Write(w io.Writer, ix *index.Index, optFns ...Option) error {
	data, err := Encode(ix, optFns...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Encode returns the complete cache (header and payload) for ix.
func Encode(ix *index.Index, optFns ...Option) ([]byte, error) {
	o := applyOptions(optFns)

	raw, err := encodePayload(ix)
	if err != nil {
		return nil, err
	}
	rawLength, err := conv.IntToUint32(len(raw))
	if err != nil || rawLength > maxRawLength {
		return nil, fmt.Errorf("persistence: payload of %d bytes too large", len(raw))
	}

	stored, used, err := compress(raw, o.compression)
	if err != nil {
		return nil, err
	}

	h := Header{
		Magic:        MagicNumber,
		Version:      Version,
		Compression:  used,
		RawLength:    rawLength,
		StoredLength: uint32(len(stored)),
		Checksum:     hash.CRC32C(stored),
	}

	out := make([]byte, 0, HeaderSize+len(stored))
	out = append(out, h.encode()...)
	out = append(out, stored...)
	return out, nil
}

func encodePayload(ix *index.Index) ([]byte, error) {
	words := ix.Words()
	masks := ix.Masks()

	pb := newPayloadBuffer(make([]byte, 0, 64+len(words)*12))

	pb.writeUint32(uint32(ix.WordLength()))
	pb.writeUint32(uint32(len(words)))
	for _, w := range words {
		pb.writeString(w)
	}
	for _, m := range masks {
		pb.writeUint32(uint32(m))
	}

	for off := 0; off < index.AlphabetSize; off++ {
		b, _ := ix.Postings(index.AnySlot, rune('a'+off))
		pb.writeBitmap(b)
	}

	pb.writeUint32(uint32(ix.Slots()))
	for slot := 0; slot < ix.Slots(); slot++ {
		for off := 0; off < index.AlphabetSize; off++ {
			b, _ := ix.Postings(slot, rune('a'+off))
			pb.writeBitmap(b)
		}
	}

	if pb.err != nil {
		return nil, pb.err
	}
	return pb.buf, nil
}

// Read decodes an index from r.
func Read(r io.Reader) (*index.Index, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	n, err := buf.ReadFrom(io.LimitReader(r, int64(h.StoredLength)))
	if err != nil {
		return nil, corrupt("read payload: %v", err)
	}
	if n != int64(h.StoredLength) {
		return nil, corrupt("payload truncated: %d of %d bytes", n, h.StoredLength)
	}
	stored := buf.Bytes()

	return decode(h, stored)
}

// Decode decodes an index from a complete cache.
func Decode(data []byte) (*index.Index, error) {
	r := bytes.NewReader(data)
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	stored := data[HeaderSize:]
	if uint32(len(stored)) < h.StoredLength {
		return nil, corrupt("payload truncated: %d of %d bytes", len(stored), h.StoredLength)
	}
	return decode(h, stored[:h.StoredLength])
}

func decode(h *Header, stored []byte) (*index.Index, error) {
	if sum := hash.CRC32C(stored); sum != h.Checksum {
		return nil, &ChecksumMismatchError{Expected: h.Checksum, Actual: sum}
	}

	raw, err := decompress(stored, h.Compression, h.RawLength)
	if err != nil {
		return nil, err
	}

	return decodePayload(raw)
}

func decodePayload(raw []byte) (*index.Index, error) {
	pb := newPayloadBuffer(raw)

	wordLength := pb.readUint32()
	count := pb.readUint32()
	// Every word takes at least its length prefix and a mask.
	if pb.err == nil && uint64(count)*6 > uint64(pb.remaining()) {
		return nil, corrupt("word count %d exceeds payload", count)
	}

	words := make([]string, count)
	for i := range words {
		words[i] = pb.readString()
	}
	masks := make([]index.Mask, count)
	for i := range masks {
		masks[i] = index.Mask(pb.readUint32())
	}

	var presence [index.AlphabetSize]*bitmap.Bitmap
	for off := range presence {
		presence[off] = pb.readBitmap()
	}

	slots := pb.readUint32()
	// Every slot holds 26 length prefixes.
	if pb.err == nil && uint64(slots)*index.AlphabetSize*4 > uint64(pb.remaining()) {
		return nil, corrupt("slot count %d exceeds payload", slots)
	}
	positions := make([][index.AlphabetSize]*bitmap.Bitmap, slots)
	for slot := range positions {
		for off := range positions[slot] {
			positions[slot][off] = pb.readBitmap()
		}
	}

	if pb.err != nil {
		return nil, pb.err
	}
	if pb.remaining() != 0 {
		return nil, corrupt("%d trailing bytes", pb.remaining())
	}

	ix, err := index.FromParts(words, masks, presence, positions, int(wordLength))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return ix, nil
}
