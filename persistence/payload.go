package persistence

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/wordsieve/internal/bitmap"
	"github.com/hupe1980/wordsieve/internal/conv"
)

// payloadBuffer appends to or consumes a byte slice, keeping the first error.
type payloadBuffer struct {
	buf []byte
	pos int
	err error
}

func newPayloadBuffer(b []byte) *payloadBuffer {
	return &payloadBuffer{buf: b}
}

// Write lets bitmaps serialize straight into the payload.
func (p *payloadBuffer) Write(b []byte) (int, error) {
	p.buf = append(p.buf, b...)
	return len(b), nil
}

func (p *payloadBuffer) writeUint32(v uint32) {
	if p.err != nil {
		return
	}
	p.buf = binary.LittleEndian.AppendUint32(p.buf, v)
}

func (p *payloadBuffer) writeString(s string) {
	if p.err != nil {
		return
	}
	if len(s) > math.MaxUint16 {
		p.err = fmt.Errorf("persistence: word too long: %d bytes", len(s))
		return
	}
	p.buf = binary.LittleEndian.AppendUint16(p.buf, uint16(len(s)))
	p.buf = append(p.buf, s...)
}

func (p *payloadBuffer) writeBitmap(b *bitmap.Bitmap) {
	if p.err != nil {
		return
	}
	size, err := conv.Uint64ToUint32(b.SerializedSize())
	if err != nil {
		p.err = fmt.Errorf("persistence: posting list: %w", err)
		return
	}
	p.writeUint32(size)
	if _, err := b.WriteTo(p); err != nil {
		p.err = err
	}
}

func (p *payloadBuffer) remaining() int {
	return len(p.buf) - p.pos
}

func (p *payloadBuffer) take(n int) []byte {
	if p.err != nil {
		return nil
	}
	if n < 0 || n > p.remaining() {
		p.err = corrupt("truncated payload at offset %d", p.pos)
		return nil
	}
	b := p.buf[p.pos : p.pos+n]
	p.pos += n
	return b
}

func (p *payloadBuffer) readUint16() uint16 {
	b := p.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (p *payloadBuffer) readUint32() uint32 {
	b := p.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (p *payloadBuffer) readString() string {
	n := p.readUint16()
	b := p.take(int(n))
	if b == nil {
		return ""
	}
	return string(b)
}

func (p *payloadBuffer) readBitmap() *bitmap.Bitmap {
	n := p.readUint32()
	data := p.take(int(n))
	if p.err != nil {
		return nil
	}
	b := bitmap.New()
	if err := b.UnmarshalBinary(data); err != nil {
		p.err = corrupt("posting list at offset %d: %v", p.pos-int(n), err)
		return nil
	}
	return b
}
