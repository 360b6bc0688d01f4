package BitSet

import (
	"github.com/g-m-twostay/go-bits/BitVec"
	"github.com/g-m-twostay/go-bits/Sets"
	"golang.org/x/exp/constraints"
)

var (
	_ Sets.Set[uint]         = (*BitSet[uint])(nil)
	_ Sets.ExtendedSet[uint] = (*BitSet[uint])(nil)
)

// BitSet is a set of small unsigned integers, element e being bit e of a BitVec.Vec. The memory cost
// is (m+1)/8 bytes where m is the largest element ever put. It isn't safe for concurrent use.
type BitSet[E constraints.Unsigned] struct {
	v  *BitVec.Vec
	sz uint
}

// New BitSet that can hold the elements [0,capacity) without growing.
func New[E constraints.Unsigned](capacity uint) *BitSet[E] {
	return &BitSet[E]{v: BitVec.New(capacity, false)}
}

// From returns a BitSet holding the set bits of v. v is used directly, not copied.
func From[E constraints.Unsigned](v *BitVec.Vec) *BitSet[E] {
	return &BitSet[E]{v, v.Count()}
}

// Vec holding the elements. Modifying it directly desynchronizes Size.
func (u *BitSet[E]) Vec() *BitVec.Vec {
	return u.v
}

// fit grows the vector so it can hold e.
func (u *BitSet[E]) fit(e uint) {
	if n := u.v.Size(); e >= n {
		u.v.Resize(max(e+1, n<<1), false)
	}
}

// Size of the set.
// Time: O(1)
func (u *BitSet[E]) Size() uint {
	return u.sz
}

// Put e into the set. Returns true if e wasn't in the set.
func (u *BitSet[E]) Put(e E) bool {
	u.fit(uint(e))
	if u.v.Set(uint(e)) {
		u.sz++
		return true
	}
	return false
}

// Has e in the set.
func (u *BitSet[E]) Has(e E) bool {
	return uint(e) < u.v.Size() && u.v.Test(uint(e))
}

// Remove e from the set. Returns true if e was in the set.
func (u *BitSet[E]) Remove(e E) bool {
	if uint(e) < u.v.Size() && u.v.Clear(uint(e)) {
		u.sz--
		return true
	}
	return false
}

// Take the smallest element. Returns the zero value if the set is empty.
func (u *BitSet[E]) Take() (e E) {
	if i := u.v.FindFirst(); i != BitVec.Npos {
		e = E(i)
	}
	return
}

// Range over the elements in increasing order, stops when f returns false.
// f may remove elements, elements it puts may or may not be visited.
func (u *BitSet[E]) Range(f func(E) bool) {
	for i := u.v.FindFirst(); i != BitVec.Npos; i = u.v.FindNext(i + 1) {
		if !f(E(i)) {
			return
		}
	}
}

// overlap returns the views over the common part of u and o.
func (u *BitSet[E]) overlap(o *BitSet[E]) (BitVec.View, BitVec.View) {
	n := min(u.v.Size(), o.v.Size())
	return u.v.View(0, n), o.v.View(0, n)
}

// PutAll elements of s. Returns the number of elements added.
func (u *BitSet[E]) PutAll(s Sets.Set[E]) uint {
	before := u.sz
	if o, ok := s.(*BitSet[E]); ok {
		if o.sz > 0 {
			u.fit(o.v.Size() - 1)
		}
		a, b := u.overlap(o)
		a.Or(b)
		u.sz = u.v.Count()
	} else {
		s.Range(func(e E) bool {
			u.Put(e)
			return true
		})
	}
	return u.sz - before
}

// RemoveAll elements of s. Returns the number of elements removed.
func (u *BitSet[E]) RemoveAll(s Sets.Set[E]) uint {
	before := u.sz
	if o, ok := s.(*BitSet[E]); ok {
		a, b := u.overlap(o)
		a.AndNot(b)
		u.sz = u.v.Count()
	} else {
		s.Range(func(e E) bool {
			u.Remove(e)
			return true
		})
	}
	return before - u.sz
}

// Eq returns true if u and s have the same elements.
func (u *BitSet[E]) Eq(s Sets.Set[E]) bool {
	if u.sz != s.Size() {
		return false
	}
	if o, ok := s.(*BitSet[E]); ok {
		a, b := u.overlap(o)
		return a.Equal(b)
	}
	eq := true
	s.Range(func(e E) bool {
		eq = u.Has(e)
		return eq
	})
	return eq
}

// Union makes u hold the elements in either u or s.
func (u *BitSet[E]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

// Intersect makes u hold the elements in both u and s.
func (u *BitSet[E]) Intersect(s Sets.Set[E]) {
	if o, ok := s.(*BitSet[E]); ok {
		a, b := u.overlap(o)
		a.And(b)
		u.v.View(a.Size(), BitVec.Npos).ClearAll()
		u.sz = u.v.Count()
		return
	}
	u.Range(func(e E) bool {
		if !s.Has(e) {
			u.Remove(e)
		}
		return true
	})
}

// Filter returns a new BitSet with the elements for which f returns true.
func (u *BitSet[E]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	r := New[E](u.v.Size())
	u.Range(func(e E) bool {
		if f(e) {
			r.v.Set(uint(e))
			r.sz++
		}
		return true
	})
	return r
}
