package BitVec

import (
	"encoding/hex"
	"slices"
)

// Bytes of the view, little endian: bit i is bit i%8 of byte i/8. The bits of the last byte past the end are 0.
func (u View) Bytes() []byte {
	r := make([]byte, (u.Size()+7)>>3)
	var w uint64
	for i := range r {
		if i&7 == 0 {
			w = u.word(uint(i) >> 3)
		}
		r[i] = byte(w)
		w >>= 8
	}
	return r
}

// HexString returns "0x" followed by the bytes of the view from the most significant to the least, so
// bit 0 is the rightmost bit of the string, e.g. "0x0321".
func (u View) HexString() string {
	b := u.Bytes()
	slices.Reverse(b)
	return "0x" + hex.EncodeToString(b)
}

// BinaryString returns one character per bit, the last bit first, using zero and one for clear and set bits.
func (u View) BinaryString(zero, one byte) string {
	r := make([]byte, u.Size())
	var w uint64
	for i := range r {
		if i&(stride-1) == 0 {
			w = u.word(uint(i) >> logWidth)
		}
		c := zero
		if w&1 == 1 {
			c = one
		}
		r[len(r)-1-i] = c
		w >>= 1
	}
	return string(r)
}

// Uint64 returns the first 64 bits of the view, 0 if it's empty.
func (u View) Uint64() uint64 {
	return u.word(0)
}

func (u View) String() string {
	return u.HexString()
}

// FromBytes creates a Vec of n bits from b, read as in Bytes. 8*len(b) must be at least n.
func FromBytes(b []byte, n uint) *Vec {
	if n > uint(len(b))<<3 {
		panic(&SizeMismatchError{n, uint(len(b)) << 3})
	}
	v := New(n, false)
	for i, c := range b[:(n+7)>>3] {
		v.s.words[i>>3] |= uint64(c) << (uint(i&7) << 3)
	}
	v.s.trim()
	return v
}

func (u *Vec) Bytes() []byte                      { return u.All().Bytes() }
func (u *Vec) HexString() string                  { return u.All().HexString() }
func (u *Vec) BinaryString(zero, one byte) string { return u.All().BinaryString(zero, one) }

// Uint64 returns the first word, 0 for an empty Vec.
func (u *Vec) Uint64() uint64 { return u.All().Uint64() }

func (u *Vec) String() string { return u.HexString() }
