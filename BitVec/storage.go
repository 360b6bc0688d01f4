package BitVec

const (
	stride   = 64
	logWidth = 6
	allOnes  = ^uint64(0)
)

// Npos is returned by the Find receivers when there is no set bit. It's also accepted as the last
// argument of View to mean the end of the vector.
const Npos = ^uint(0)

func slotCnt(n uint) uint { return (n + stride - 1) >> logWidth }
func slot(n uint) uint    { return n >> logWidth }
func offset(n uint) uint  { return n & (stride - 1) }

// lowMask has the lowest n bits set, 0<=n<=64.
func lowMask(n uint) uint64 {
	return allOnes >> (stride - n)
}

// visitFlags select the behavior of storage.visit.
type visitFlags uint8

const (
	// inspect leaves the words untouched and stops as soon as the callback returns a non-zero value.
	inspect visitFlags = 1 << iota
	// oorOnes presents the bits outside the visited range as 1 instead of 0.
	oorOnes
	// backward visits the last word first.
	backward
)

// storage holds n bits packed into words, bit i is bit i%64 of words[i/64].
// The bits of the last word at positions >= n%64 are always 0 between calls.
type storage struct {
	words []uint64
	n     uint
}

func makeStorage(n uint, fill bool) storage {
	s := storage{words: make([]uint64, slotCnt(n)), n: n}
	if fill {
		for i := range s.words {
			s.words[i] = allOnes
		}
		s.trim()
	}
	return s
}

// trim clears the padding bits of the last word.
func (s *storage) trim() {
	if r := offset(s.n); r != 0 {
		s.words[len(s.words)-1] &= lowMask(r)
	}
}

// resize to n bits. Bits [0,min(n,old)) are kept and new bits are set to fill.
// Time: O(n/64)
func (s *storage) resize(n uint, fill bool) {
	if r := offset(s.n); fill && n > s.n && r != 0 {
		s.words[len(s.words)-1] |= ^lowMask(r)
	}
	var w uint64
	if fill {
		w = allOnes
	}
	old, cnt := uint(len(s.words)), slotCnt(n)
	if cnt > uint(cap(s.words)) {
		nw := make([]uint64, cnt, cnt+cnt>>2)
		copy(nw, s.words)
		s.words = nw
	} else {
		s.words = s.words[:cnt]
	}
	for i := old; i < cnt; i++ {
		s.words[i] = w
	}
	s.n = n
	s.trim()
}

// test bit i.
func (s *storage) test(i uint) bool {
	return s.words[slot(i)]>>offset(i)&1 == 1
}

// updateBit replaces bit i with the bit at the same position of f(w), where w is the word holding i.
// Returns true if the bit changed.
func (s *storage) updateBit(i uint, f func(uint64) uint64) bool {
	p, m := &s.words[slot(i)], uint64(1)<<offset(i)
	old := *p
	*p = old&^m | f(old)&m
	return *p != old
}

// visit calls f on every word overlapping [first,last). w is the word with the bits outside of
// [first,last) set to 0, or to 1 with oorOnes. base is the position of bit 0 of the word relative
// to first, so it's negative when first isn't aligned and the word is the first one.
// Without inspect, the in-range bits of the word are replaced with those of the value returned by f.
// With inspect, nothing is written and the traversal stops when f returns a non-zero value, in which
// case visit returns true.
// last<=first is a no-op.
// Time: O((last-first)/64)
func (s *storage) visit(first, last uint, flags visitFlags, f func(w uint64, base int) uint64) bool {
	if last <= first {
		return false
	}
	fw, lw := slot(first), slot(last-1)
	headMask, tailMask := allOnes<<offset(first), lowMask(last-lw<<logWidth)
	i, step := fw, uint(1)
	if flags&backward != 0 {
		i, step = lw, ^uint(0)
	}
	var pad uint64
	if flags&oorOnes != 0 {
		pad = allOnes
	}
	for cnt := lw - fw + 1; cnt > 0; cnt, i = cnt-1, i+step {
		m := allOnes
		if i == fw {
			m &= headMask
		}
		if i == lw {
			m &= tailMask
		}
		r := f(s.words[i]&m|pad&^m, int(i<<logWidth)-int(first))
		if flags&inspect != 0 {
			if r != 0 {
				return true
			}
		} else {
			s.words[i] = s.words[i]&^m | r&m
		}
	}
	if flags&inspect == 0 {
		s.trim()
	}
	return false
}

// read64 returns the 64 bits starting at p. Bits past the last word read as 0.
func (s *storage) read64(p uint) uint64 {
	i, o := slot(p), offset(p)
	w := s.words[i] >> o
	if o != 0 && i+1 < uint(len(s.words)) {
		w |= s.words[i+1] << (stride - o)
	}
	return w
}

// bitsAt returns the 64 bits starting at the signed position pos, keeping only those in [lo,hi).
// Requires hi<=s.n.
func (s *storage) bitsAt(pos int, lo, hi uint) uint64 {
	a, b := max(pos, int(lo)), min(pos+stride, int(hi))
	if a >= b {
		return 0
	}
	return (s.read64(uint(a)) & lowMask(uint(b-a))) << uint(a-pos)
}

// combineWith sets every word to f(word, peer) where peer is the word at the same index in o.
// o must have the same size.
func (s *storage) combineWith(o *storage, f func(x, y uint64) uint64) {
	for i, w := range o.words[:len(s.words)] {
		s.words[i] = f(s.words[i], w)
	}
	s.trim()
}

func (s *storage) swap(o *storage) {
	s.words, o.words = o.words, s.words
	s.n, o.n = o.n, s.n
}

func (s *storage) clone() storage {
	return storage{words: append([]uint64(nil), s.words...), n: s.n}
}
