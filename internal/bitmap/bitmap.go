package bitmap

import (
	"io"
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is an ordered set of 32-bit word ids.
// It wraps the official roaring implementation.
type Bitmap struct {
	rb *roaring.Bitmap
}

// New creates a new empty bitmap.
func New() *Bitmap {
	return &Bitmap{
		rb: roaring.New(),
	}
}

// Of creates a bitmap holding the given ids.
func Of(ids ...uint32) *Bitmap {
	return &Bitmap{
		rb: roaring.BitmapOf(ids...),
	}
}

// Range creates a bitmap holding every id in [0, n).
func Range(n uint32) *Bitmap {
	b := New()
	if n > 0 {
		b.rb.AddRange(0, uint64(n))
	}
	return b
}

// Add adds an id to the bitmap.
func (b *Bitmap) Add(id uint32) {
	b.rb.Add(id)
}

// Remove removes an id from the bitmap.
func (b *Bitmap) Remove(id uint32) {
	b.rb.Remove(id)
}

// Contains checks if an id is in the bitmap.
func (b *Bitmap) Contains(id uint32) bool {
	return b.rb.Contains(id)
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of ids in the bitmap.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Maximum returns the largest id in the bitmap.
// The second return value is false for an empty bitmap.
func (b *Bitmap) Maximum() (uint32, bool) {
	if b.rb.IsEmpty() {
		return 0, false
	}
	return b.rb.Maximum(), true
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		rb: b.rb.Clone(),
	}
}

// And keeps only the ids that are also in other.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// AndNot removes every id that is in other.
func (b *Bitmap) AndNot(other *Bitmap) {
	b.rb.AndNot(other.rb)
}

// Or adds every id that is in other.
func (b *Bitmap) Or(other *Bitmap) {
	b.rb.Or(other.rb)
}

// Clear removes all ids from the bitmap.
func (b *Bitmap) Clear() {
	b.rb.Clear()
}

// ToArray returns the ids in ascending order.
func (b *Bitmap) ToArray() []uint32 {
	return b.rb.ToArray()
}

// ForEach iterates over the ids in ascending order until fn returns false.
func (b *Bitmap) ForEach(fn func(id uint32) bool) {
	it := b.rb.Iterator()
	for it.HasNext() {
		if !fn(it.Next()) {
			break
		}
	}
}

// All returns an iterator over the ids in ascending order.
func (b *Bitmap) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Equal reports whether both bitmaps hold exactly the same ids.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.rb.GetCardinality() != other.rb.GetCardinality() {
		return false
	}
	return slices.Equal(b.rb.ToArray(), other.rb.ToArray())
}

// GetSizeInBytes returns the in-memory size of the bitmap in bytes.
func (b *Bitmap) GetSizeInBytes() uint64 {
	return b.rb.GetSizeInBytes()
}

// SerializedSize returns the number of bytes WriteTo will produce.
func (b *Bitmap) SerializedSize() uint64 {
	return b.rb.GetSerializedSizeInBytes()
}

// WriteTo writes the bitmap in the portable roaring format.
func (b *Bitmap) WriteTo(w io.Writer) (int64, error) {
	return b.rb.WriteTo(w)
}

// ReadFrom replaces the bitmap content with a portable roaring payload read from r.
func (b *Bitmap) ReadFrom(r io.Reader) (int64, error) {
	return b.rb.ReadFrom(r)
}

// UnmarshalBinary replaces the bitmap content with the given portable roaring payload.
func (b *Bitmap) UnmarshalBinary(data []byte) error {
	return b.rb.UnmarshalBinary(data)
}
