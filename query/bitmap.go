package query

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a boolean mask over a record collection, one bit per record
// position. It wraps a 32-bit roaring bitmap.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap creates a new empty bitmap.
func NewBitmap() *Bitmap {
	return &Bitmap{rb: roaring.New()}
}

// Add sets the bit for record position i.
func (b *Bitmap) Add(i int) {
	b.rb.Add(uint32(i))
}

// Contains reports whether the bit for record position i is set.
func (b *Bitmap) Contains(i int) bool {
	return b.rb.Contains(uint32(i))
}

// Cardinality returns the number of set bits.
func (b *Bitmap) Cardinality() int {
	return int(b.rb.GetCardinality())
}

// IsEmpty returns true if no bit is set.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{rb: b.rb.Clone()}
}

// And intersects b with other in place.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// Or unions b with other in place.
func (b *Bitmap) Or(other *Bitmap) {
	b.rb.Or(other.rb)
}

// Iterator yields the set positions in ascending order, which is also the
// original record order of the collection the mask was built from.
func (b *Bitmap) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
