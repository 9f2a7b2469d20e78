package persistence

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// MagicNumber identifies index caches (ASCII "WSIX" read little-endian).
	MagicNumber = 0x58495357
	// Version is the current format version.
	Version = 1
	// HeaderSize is the size of the fixed header in bytes.
	HeaderSize = 24

	// maxRawLength bounds the allocation made for a decompressed payload.
	maxRawLength = 1 << 30
)

// Header is the fixed prefix of an index cache.
type Header struct {
	Magic        uint32
	Version      uint32
	Compression  Compression
	Reserved     [3]byte
	RawLength    uint32
	StoredLength uint32
	Checksum     uint32
}

func (h *Header) encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:8], h.Version)
	buf[8] = byte(h.Compression)
	copy(buf[9:12], h.Reserved[:])
	binary.LittleEndian.PutUint32(buf[12:16], h.RawLength)
	binary.LittleEndian.PutUint32(buf[16:20], h.StoredLength)
	binary.LittleEndian.PutUint32(buf[20:24], h.Checksum)
	return buf
}

// ReadHeader reads and validates the header at the start of r.
func ReadHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, corrupt("read header: %v", err)
	}

	h := &Header{
		Magic:        binary.LittleEndian.Uint32(buf[0:4]),
		Version:      binary.LittleEndian.Uint32(buf[4:8]),
		Compression:  Compression(buf[8]),
		RawLength:    binary.LittleEndian.Uint32(buf[12:16]),
		StoredLength: binary.LittleEndian.Uint32(buf[16:20]),
		Checksum:     binary.LittleEndian.Uint32(buf[20:24]),
	}
	copy(h.Reserved[:], buf[9:12])

	if h.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, h.Magic)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrIncompatibleVersion, h.Version, Version)
	}
	if !h.Compression.valid() {
		return nil, corrupt("unknown compression %d", h.Compression)
	}
	if h.RawLength > maxRawLength {
		return nil, corrupt("payload length %d too large", h.RawLength)
	}
	// Encode stores raw bytes whenever compression does not shrink them.
	if h.StoredLength > h.RawLength {
		return nil, corrupt("stored length %d exceeds payload length %d", h.StoredLength, h.RawLength)
	}
	return h, nil
}
