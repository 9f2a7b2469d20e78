// Package persistence stores a built index.Index as a compact binary cache.
//
// A cache is a 24 byte little-endian header followed by a payload:
//
//	header
//	  magic        uint32  "WSIX"
//	  version      uint32
//	  compression  uint8   0 none, 1 lz4, 2 zstd
//	  reserved     [3]byte
//	  rawLength    uint32  payload length before compression
//	  storedLength uint32  payload length as stored
//	  checksum     uint32  CRC32C of the stored payload
//	payload
//	  wordLength uint32, wordCount uint32
//	  words      wordCount x (uint16 length + bytes)
//	  masks      wordCount x uint32
//	  presence   26 x (uint32 length + portable roaring bitmap)
//	  slotCount  uint32
//	  positions  slotCount x 26 x (uint32 length + portable roaring bitmap)
//
// Read restores an index equal to the one written. Every way a cache can be
// unusable (missing, foreign, outdated or damaged) satisfies
// errors.Is(err, ErrCacheMiss), so callers can fall back to a rebuild.
package persistence
