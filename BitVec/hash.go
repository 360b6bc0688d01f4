package BitVec

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// hashMix is the odd constant folded into every word by Hash.
const hashMix = 0x9e3779b97f4a7c15

// Hash folds the words of the view with h ^= w + hashMix + h<<6 + h>>2.
// Two views with equal bits have equal hashes, no matter where they start in their vectors.
func (u View) Hash() uint64 {
	var h uint64
	for k, cnt := uint(0), slotCnt(u.Size()); k < cnt; k++ {
		h ^= u.word(k) + hashMix + h<<6 + h>>2
	}
	return h
}

// Sum64 returns the xxhash digest of the size and the words of the view.
func (u View) Sum64() uint64 {
	cnt := slotCnt(u.Size())
	buf := make([]byte, 8, 8+cnt<<3)
	binary.LittleEndian.PutUint64(buf, uint64(u.Size()))
	for k := uint(0); k < cnt; k++ {
		buf = binary.LittleEndian.AppendUint64(buf, u.word(k))
	}
	return xxhash.Sum64(buf)
}

// Hash of all the words, see View.Hash. It's the hash to use with Equal when keying maps with vectors.
func (u *Vec) Hash() uint64 {
	var h uint64
	for _, w := range u.s.words {
		h ^= w + hashMix + h<<6 + h>>2
	}
	return h
}

func (u *Vec) Sum64() uint64 { return u.All().Sum64() }
