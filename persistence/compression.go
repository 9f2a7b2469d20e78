package persistence

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload codec.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses Zstandard (smaller, the default).
	CompressionZSTD Compression = 2
)

func (c Compression) valid() bool {
	return c <= CompressionZSTD
}

// String returns the name used in configuration files.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression maps a configuration name to a Compression.
// The empty name selects the default, CompressionZSTD.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd", "":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("persistence: unknown compression %q", s)
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
}

// compress returns the stored form of raw and the codec actually used.
// Output that does not shrink is stored uncompressed.
func compress(raw []byte, c Compression) ([]byte, Compression, error) {
	var (
		out []byte
		err error
	)

	switch c {
	case CompressionNone:
		return raw, CompressionNone, nil
	case CompressionLZ4:
		out, err = compressLZ4(raw)
	case CompressionZSTD:
		out, err = compressZSTD(raw)
	default:
		return nil, 0, fmt.Errorf("persistence: unknown compression %d", c)
	}
	if err != nil {
		return nil, 0, err
	}

	if len(out) == 0 || len(out) >= len(raw) {
		return raw, CompressionNone, nil
	}
	return out, c, nil
}

func compressLZ4(raw []byte) ([]byte, error) {
	out := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, out, nil)
	if err != nil {
		return nil, err
	}
	// n == 0 means incompressible.
	return out[:n], nil
}

func compressZSTD(raw []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(raw, nil), nil
}

func decompress(stored []byte, c Compression, rawLength uint32) ([]byte, error) {
	switch c {
	case CompressionNone:
		if uint32(len(stored)) != rawLength {
			return nil, corrupt("stored %d bytes, header says %d", len(stored), rawLength)
		}
		return stored, nil

	case CompressionLZ4:
		out := make([]byte, rawLength)
		n, err := lz4.UncompressBlock(stored, out)
		if err != nil {
			return nil, corrupt("lz4: %v", err)
		}
		if uint32(n) != rawLength {
			return nil, corrupt("lz4: decompressed %d bytes, want %d", n, rawLength)
		}
		return out, nil

	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)

		out, err := dec.DecodeAll(stored, make([]byte, 0, rawLength))
		if err != nil {
			return nil, corrupt("zstd: %v", err)
		}
		if uint32(len(out)) != rawLength {
			return nil, corrupt("zstd: decompressed %d bytes, want %d", len(out), rawLength)
		}
		return out, nil

	default:
		return nil, corrupt("unknown compression %d", c)
	}
}
