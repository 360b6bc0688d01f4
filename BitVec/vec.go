package BitVec

// Vec is a resizable sequence of bits packed in 64 bit words. Bit 0 is the least significant bit of
// the first word. Every operation on the whole vector is the same operation on All().
// A Vec isn't safe for concurrent use, including through Views of it.
type Vec struct {
	s storage
}

// New Vec of n bits, all set to fill.
func New(n uint, fill bool) *Vec {
	return &Vec{makeStorage(n, fill)}
}

// FromWords creates a Vec of 64*len(words) bits, word i holding bits [64i,64i+64).
func FromWords(words ...uint64) *Vec {
	return &Vec{storage{words: append([]uint64(nil), words...), n: uint(len(words)) << logWidth}}
}

// Size in bits.
func (u *Vec) Size() uint {
	return u.s.n
}

func (u *Vec) Empty() bool {
	return u.s.n == 0
}

// Word i of the underlying storage, 0<=i<(Size()+63)/64.
func (u *Vec) Word(i uint) uint64 {
	return u.s.words[i]
}

// Words returns a copy of the underlying words.
func (u *Vec) Words() []uint64 {
	return append([]uint64(nil), u.s.words...)
}

// View of the bits [first,last). last can be Npos to mean Size().
func (u *Vec) View(first, last uint) View {
	return makeView(u, first, last)
}

// All is the view of the whole vector.
func (u *Vec) All() View {
	return View{u, 0, u.s.n}
}

func (u *Vec) Clone() *Vec {
	return &Vec{u.s.clone()}
}

// Swap the contents of u and o.
// Time: O(1)
func (u *Vec) Swap(o *Vec) {
	u.s.swap(&o.s)
}

// Resize to n bits. Existing bits below n are kept, new ones are set to fill. Views of u are invalid afterward.
func (u *Vec) Resize(n uint, fill bool) *Vec {
	u.s.resize(n, fill)
	return u
}

// SetWords assigns the words to u without changing its size: word i goes to bits [64i,64i+64),
// bits past the end of u are dropped and bits not covered by the words become 0.
func (u *Vec) SetWords(words ...uint64) *Vec {
	n := copy(u.s.words, words)
	clear(u.s.words[n:])
	u.s.trim()
	return u
}

func (u *Vec) Test(i uint) bool {
	checkIndex(i, u.s.n)
	return u.s.test(i)
}

// Set bit i. Returns true if the bit changed.
func (u *Vec) Set(i uint) bool { return u.All().Set(i) }

// Clear bit i. Returns true if the bit changed.
func (u *Vec) Clear(i uint) bool { return u.All().Clear(i) }

// Flip bit i.
func (u *Vec) Flip(i uint) bool { return u.All().Flip(i) }

// SetTo sets bit i to b. Returns true if the bit changed.
func (u *Vec) SetTo(i uint, b bool) bool { return u.All().SetTo(i, b) }

func (u *Vec) SetAll() *Vec {
	u.All().SetAll()
	return u
}

func (u *Vec) ClearAll() *Vec {
	u.All().ClearAll()
	return u
}

func (u *Vec) FlipAll() *Vec {
	u.All().FlipAll()
	return u
}

// Assign the bits of o, which must have the same size, to u.
func (u *Vec) Assign(o *Vec) *Vec {
	u.All().Assign(o.All())
	return u
}

func (u *Vec) Or(o *Vec) *Vec {
	u.All().Or(o.All())
	return u
}

func (u *Vec) And(o *Vec) *Vec {
	u.All().And(o.All())
	return u
}

func (u *Vec) Xor(o *Vec) *Vec {
	u.All().Xor(o.All())
	return u
}

// AndNot clears the bits set in o.
func (u *Vec) AndNot(o *Vec) *Vec {
	u.All().AndNot(o.All())
	return u
}

// OrNot sets the bits clear in o.
func (u *Vec) OrNot(o *Vec) *Vec {
	u.All().OrNot(o.All())
	return u
}

// ShiftRight moves bit i to i+n, see View.ShiftRight.
func (u *Vec) ShiftRight(n uint) *Vec {
	u.All().ShiftRight(n)
	return u
}

// ShiftLeft moves bit i to i-n, see View.ShiftLeft.
func (u *Vec) ShiftLeft(n uint) *Vec {
	u.All().ShiftLeft(n)
	return u
}

func (u *Vec) Any() bool                { return u.All().Any() }
func (u *Vec) None() bool               { return u.All().None() }
func (u *Vec) Every() bool              { return u.All().Every() }
func (u *Vec) Count() uint              { return u.All().Count() }
func (u *Vec) FindFirst() uint          { return u.All().FindFirst() }
func (u *Vec) FindNext(start uint) uint { return u.All().FindNext(start) }

func (u *Vec) Contains(o *Vec) bool   { return u.All().Contains(o.All()) }
func (u *Vec) Disjoint(o *Vec) bool   { return u.All().Disjoint(o.All()) }
func (u *Vec) Intersects(o *Vec) bool { return u.All().Intersects(o.All()) }

// Equal returns true if u and o have the same size and bits.
func (u *Vec) Equal(o *Vec) bool { return u.All().Equal(o.All()) }

// Compare orders vectors by size, then as unsigned numbers. It returns -1, 0 or 1.
func (u *Vec) Compare(o *Vec) int {
	if u.s.n != o.s.n {
		if u.s.n < o.s.n {
			return -1
		}
		return 1
	}
	for i := len(u.s.words) - 1; i >= 0; i-- {
		if x, y := u.s.words[i], o.s.words[i]; x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less is Compare(o)<0.
func (u *Vec) Less(o *Vec) bool {
	return u.Compare(o) < 0
}

func combined(a, b *Vec, f func(x, y uint64) uint64) *Vec {
	checkSize(a.s.n, b.s.n)
	r := a.Clone()
	r.s.combineWith(&b.s, f)
	return r
}

// Or returns a new Vec holding a|b.
func Or(a, b *Vec) *Vec {
	return combined(a, b, func(x, y uint64) uint64 { return x | y })
}

// And returns a new Vec holding a&b.
func And(a, b *Vec) *Vec {
	return combined(a, b, func(x, y uint64) uint64 { return x & y })
}

// Xor returns a new Vec holding a^b.
func Xor(a, b *Vec) *Vec {
	return combined(a, b, func(x, y uint64) uint64 { return x ^ y })
}

// AndNot returns a new Vec holding a&^b, the bits of a that aren't in b.
func AndNot(a, b *Vec) *Vec {
	return combined(a, b, func(x, y uint64) uint64 { return x &^ y })
}

// Not returns a new Vec holding ^a.
func Not(a *Vec) *Vec {
	return a.Clone().FlipAll()
}

// ShiftRight returns a new Vec holding a with bit i moved to i+n.
func ShiftRight(a *Vec, n uint) *Vec {
	return a.Clone().ShiftRight(n)
}

// ShiftLeft returns a new Vec holding a with bit i moved to i-n.
func ShiftLeft(a *Vec, n uint) *Vec {
	return a.Clone().ShiftLeft(n)
}
