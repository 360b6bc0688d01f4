package BitVec

import "math/bits"

// View is the window [first,last) of a Vec. It supports the same operations as the Vec, scoped to
// the window, with indexes relative to first. It doesn't own anything, so it's cheap to create and
// pass by value, but it must not be used after the Vec is resized.
// Binary operations work across views of different vectors, or of the same vector, regardless of
// how the two windows are aligned. Overlapping windows of the same vector are handled: the source
// bits are always read before they are overwritten.
type View struct {
	v           *Vec
	first, last uint
}

func makeView(v *Vec, first, last uint) View {
	if last == Npos {
		last = v.Size()
	}
	if first > last || last > v.Size() {
		panic(&RangeError{first, last, v.Size()})
	}
	return View{v, first, last}
}

// Size is the number of bits in the view.
func (u View) Size() uint {
	return u.last - u.first
}

func (u View) Empty() bool {
	return u.last == u.first
}

// Bounds of the view in the underlying Vec.
func (u View) Bounds() (first, last uint) {
	return u.first, u.last
}

// View returns the sub view [first,last) of u, relative to u. last can be Npos.
func (u View) View(first, last uint) View {
	if last == Npos {
		last = u.Size()
	}
	if first > last || last > u.Size() {
		panic(&RangeError{first, last, u.Size()})
	}
	return View{u.v, u.first + first, u.first + last}
}

func (u View) Test(i uint) bool {
	checkIndex(i, u.Size())
	return u.v.s.test(u.first + i)
}

// Set bit i to 1. Returns true if the bit changed.
func (u View) Set(i uint) bool {
	checkIndex(i, u.Size())
	return u.v.s.updateBit(u.first+i, func(uint64) uint64 { return allOnes })
}

// Clear bit i to 0. Returns true if the bit changed.
func (u View) Clear(i uint) bool {
	checkIndex(i, u.Size())
	return u.v.s.updateBit(u.first+i, func(uint64) uint64 { return 0 })
}

// Flip bit i. Always returns true.
func (u View) Flip(i uint) bool {
	checkIndex(i, u.Size())
	return u.v.s.updateBit(u.first+i, func(w uint64) uint64 { return ^w })
}

// SetTo sets bit i to b. Returns true if the bit changed.
func (u View) SetTo(i uint, b bool) bool {
	if b {
		return u.Set(i)
	}
	return u.Clear(i)
}

func (u View) SetAll() View {
	u.v.s.visit(u.first, u.last, 0, func(uint64, int) uint64 { return allOnes })
	return u
}

func (u View) ClearAll() View {
	u.v.s.visit(u.first, u.last, 0, func(uint64, int) uint64 { return 0 })
	return u
}

func (u View) FlipAll() View {
	u.v.s.visit(u.first, u.last, 0, func(w uint64, _ int) uint64 { return ^w })
	return u
}

// combine replaces the words of u with f(x, y), where y holds the bits of o lined up with x.
// When u and o overlap in the same vector, the words are visited in the direction that reads
// every bit of o before it's written.
func (u View) combine(o View, f func(x, y uint64) uint64) View {
	checkSize(u.Size(), o.Size())
	var flags visitFlags
	if u.v == o.v && u.first > o.first {
		flags = backward
	}
	q := newBitSequence(&o.v.s, o.first, o.last, u.first, flags&backward != 0)
	u.v.s.visit(u.first, u.last, flags, func(x uint64, _ int) uint64 { return f(x, q.pull()) })
	return u
}

// Assign copies the bits of o into u. o must have the same size.
// Time: O(Size()/64)
func (u View) Assign(o View) View {
	return u.combine(o, func(_, y uint64) uint64 { return y })
}

// AssignUint64 sets the view to the value w: bit i of the view becomes bit i of w, and the bits past 64 become 0.
func (u View) AssignUint64(w uint64) View {
	src := storage{words: []uint64{w}, n: stride}
	q := newBitSequence(&src, 0, min(u.Size(), stride), u.first, false)
	u.v.s.visit(u.first, u.last, 0, func(uint64, int) uint64 { return q.pull() })
	return u
}

func (u View) Or(o View) View {
	return u.combine(o, func(x, y uint64) uint64 { return x | y })
}

func (u View) And(o View) View {
	return u.combine(o, func(x, y uint64) uint64 { return x & y })
}

func (u View) Xor(o View) View {
	return u.combine(o, func(x, y uint64) uint64 { return x ^ y })
}

// AndNot clears the bits that are set in o.
func (u View) AndNot(o View) View {
	return u.combine(o, func(x, y uint64) uint64 { return x &^ y })
}

// OrNot sets the bits that are clear in o.
func (u View) OrNot(o View) View {
	return u.combine(o, func(x, y uint64) uint64 { return x | ^y })
}

// ShiftRight moves every bit n positions toward the end of the view, so bit i goes to i+n. The first n
// bits become 0 and the last n bits are dropped. This is a multiplication by 2^n when the view is read
// as a number, like in HexString.
// Time: O(Size()/64*(1+n/64))
func (u View) ShiftRight(n uint) View {
	if n >= u.Size() {
		return u.ClearAll()
	}
	for ; n > stride; n -= stride {
		u.shiftRight(stride)
	}
	u.shiftRight(n)
	return u
}

// ShiftLeft moves every bit n positions toward the start of the view, so bit i goes to i-n. The last n
// bits become 0 and the first n bits are dropped.
// Time: O(Size()/64*(1+n/64))
func (u View) ShiftLeft(n uint) View {
	if n >= u.Size() {
		return u.ClearAll()
	}
	for ; n > stride; n -= stride {
		u.shiftLeft(stride)
	}
	u.shiftLeft(n)
	return u
}

// shiftRight by 0<n<=64, carrying the top bits of each word into the next one.
func (u View) shiftRight(n uint) {
	if n == 0 {
		return
	}
	var carry uint64
	u.v.s.visit(u.first, u.last, 0, func(w uint64, _ int) uint64 {
		r := w<<n | carry
		carry = w >> (stride - n)
		return r
	})
}

// shiftLeft by 0<n<=64. Visits backward so a word is read before the one above it is overwritten.
func (u View) shiftLeft(n uint) {
	if n == 0 {
		return
	}
	var carry uint64
	u.v.s.visit(u.first, u.last, backward, func(w uint64, _ int) uint64 {
		r := w>>n | carry
		carry = w << (stride - n)
		return r
	})
}

// Any bit set.
func (u View) Any() bool {
	return u.v.s.visit(u.first, u.last, inspect, func(w uint64, _ int) uint64 { return w })
}

// None of the bits set.
func (u View) None() bool {
	return !u.Any()
}

// Every bit set. True for an empty view.
func (u View) Every() bool {
	return !u.v.s.visit(u.first, u.last, inspect|oorOnes, func(w uint64, _ int) uint64 { return ^w })
}

// mismatch returns true as soon as f(x, y) is non-zero for some word x of u and the bits y of o lined up with it.
func (u View) mismatch(o View, f func(x, y uint64) uint64) bool {
	checkSize(u.Size(), o.Size())
	q := newBitSequence(&o.v.s, o.first, o.last, u.first, false)
	return u.v.s.visit(u.first, u.last, inspect, func(x uint64, _ int) uint64 { return f(x, q.pull()) })
}

// Contains returns true if every bit set in o is set in u.
func (u View) Contains(o View) bool {
	return !u.mismatch(o, func(x, y uint64) uint64 { return y &^ x })
}

// Disjoint returns true if no bit is set in both u and o.
func (u View) Disjoint(o View) bool {
	return !u.mismatch(o, func(x, y uint64) uint64 { return x & y })
}

// Intersects returns true if some bit is set in both u and o.
func (u View) Intersects(o View) bool {
	return !u.Disjoint(o)
}

// Equal returns true if u and o have the same size and the same bits.
func (u View) Equal(o View) bool {
	return u.Size() == o.Size() && !u.mismatch(o, func(x, y uint64) uint64 { return x ^ y })
}

// Count the set bits.
func (u View) Count() uint {
	c := 0
	u.v.s.visit(u.first, u.last, inspect, func(w uint64, _ int) uint64 {
		c += bits.OnesCount64(w)
		return 0
	})
	return uint(c)
}

// FindFirst returns the index of the first set bit, or Npos.
func (u View) FindFirst() uint {
	r := Npos
	u.v.s.visit(u.first, u.last, inspect, func(w uint64, base int) uint64 {
		if w != 0 {
			r = uint(base + bits.TrailingZeros64(w))
		}
		return w
	})
	return r
}

// FindNext returns the index of the first set bit at or after start, or Npos.
func (u View) FindNext(start uint) uint {
	if start >= u.Size() {
		return Npos
	}
	if r := u.View(start, Npos).FindFirst(); r != Npos {
		return r + start
	}
	return Npos
}

// word returns the bits [64k,64k+64) of the view, the ones past the end are 0.
func (u View) word(k uint) uint64 {
	return u.v.s.bitsAt(int(u.first+k<<logWidth), u.first, u.last)
}

// Words returns a copy of the view packed into words, as if it started at bit 0 of a vector.
func (u View) Words() []uint64 {
	r := make([]uint64, slotCnt(u.Size()))
	for k := range r {
		r[k] = u.word(uint(k))
	}
	return r
}
