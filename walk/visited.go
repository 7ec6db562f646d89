package walk

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Visited tracks finalized entities, one bit per vertex or face.
// It is owned by a single walk and is not safe for concurrent use.
type Visited struct {
	bits *bitset.BitSet
	n    int
}

// NewVisited returns an empty set sized for n entities.
func NewVisited(n int) *Visited {
	if n < 0 {
		n = 0
	}
	return &Visited{bits: bitset.New(uint(n)), n: n}
}

// Len returns the number of entities the set was sized for.
func (s *Visited) Len() int { return s.n }

// Has reports whether entity i is marked.
func (s *Visited) Has(i int) bool {
	return i >= 0 && s.bits.Test(uint(i))
}

// Mark sets the bit of entity i. Indices outside [0, Len) are ignored.
func (s *Visited) Mark(i int) {
	if i >= 0 && i < s.n {
		s.bits.Set(uint(i))
	}
}

// Clear unsets the bit of entity i. Clearing an unset bit is a no-op.
func (s *Visited) Clear(i int) {
	if i >= 0 {
		s.bits.Clear(uint(i))
	}
}

// Count returns the number of marked entities.
func (s *Visited) Count() int {
	return int(s.bits.Count())
}

// Reset unsets every bit.
func (s *Visited) Reset() {
	s.bits.ClearAll()
}

// All yields marked entities in ascending order.
func (s *Visited) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}

// Indices returns marked entities in ascending order.
func (s *Visited) Indices() []int {
	out := make([]int, 0, s.Count())
	for i := range s.All() {
		out = append(out, i)
	}
	return out
}

// Snapshot copies the marked entities into a roaring bitmap, suitable for
// set algebra with other walks or compact storage.
func (s *Visited) Snapshot() *roaring.Bitmap {
	rb := roaring.New()
	for i := range s.All() {
		rb.Add(uint32(i))
	}
	return rb
}
