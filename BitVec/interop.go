package BitVec

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// ToBitSet copies the view into a bitset.BitSet of the same length.
func (u View) ToBitSet() *bitset.BitSet {
	return bitset.FromWithLength(u.Size(), u.Words())
}

// FromBitSet creates a Vec of b.Len() bits holding the bits of b.
func FromBitSet(b *bitset.BitSet) *Vec {
	v := New(b.Len(), false)
	for i, ok := b.NextSet(0); ok && i < v.Size(); i, ok = b.NextSet(i + 1) {
		v.s.words[slot(i)] |= 1 << offset(i)
	}
	return v
}

// ToRoaring returns the indexes of the set bits of the view as a roaring.Bitmap.
// Panics if a set bit doesn't fit in uint32.
func (u View) ToRoaring() *roaring.Bitmap {
	r := roaring.New()
	for i := u.FindFirst(); i != Npos; i = u.FindNext(i + 1) {
		if uint64(i) > math.MaxUint32 {
			panic(fmt.Errorf("bit %d doesn't fit in a roaring bitmap", i))
		}
		r.Add(uint32(i))
	}
	return r
}

// FromRoaring creates a Vec of n bits with the members of b set. It fails if a member isn't less than n.
func FromRoaring(b *roaring.Bitmap, n uint) (*Vec, error) {
	if !b.IsEmpty() && uint(b.Maximum()) >= n {
		return nil, fmt.Errorf("roaring bitmap doesn't fit: %w", &OutOfRangeError{uint(b.Maximum()), n})
	}
	v := New(n, false)
	for it := b.Iterator(); it.HasNext(); {
		i := uint(it.Next())
		v.s.words[slot(i)] |= 1 << offset(i)
	}
	return v, nil
}

func (u *Vec) ToBitSet() *bitset.BitSet  { return u.All().ToBitSet() }
func (u *Vec) ToRoaring() *roaring.Bitmap { return u.All().ToRoaring() }
