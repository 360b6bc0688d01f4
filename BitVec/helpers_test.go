package BitVec

func setNaive(v View, first, last uint) {
	for i := first; i < last; i++ {
		v.Set(i)
	}
}

func flipNaive(v View, first, last uint) {
	for i := first; i < last; i++ {
		v.Flip(i)
	}
}

func clearNaive(v View, first, last uint) {
	for i := first; i < last; i++ {
		v.Clear(i)
	}
}

func countNaive(v View) (n uint) {
	for i := uint(0); i < v.Size(); i++ {
		if v.Test(i) {
			n++
		}
	}
	return
}

// copySlow copies o into u one bit at a time, reading all of o first.
func copySlow(u, o View) {
	b := make([]bool, o.Size())
	for i := range b {
		b[i] = o.Test(uint(i))
	}
	for i, x := range b {
		u.SetTo(uint(i), x)
	}
}

var testVecs = func() (r []*Vec) {
	r = append(r, New(0, false), New(1, true), New(1, false))
	for i := uint64(0); i < 4; i++ {
		r = append(r, New(2, false).SetWords(i))
	}
	for i := uint64(0); i < 4; i++ {
		v := New(17, false).SetWords(i << 3)
		v.Set(uint(i + 11))
		r = append(r, v)
	}
	for i := uint64(3); i < 9; i++ {
		root := (i << (2 * i)) * 127
		v := New(307, false).SetWords(root+root*7, i<<(27-i)+i<<(27+i), 0x0f1f1f1f00aaaa*7, 0x0af000000000000*29, 41*i*i)
		v.Set(uint(i + 11))
		r = append(r, v)
	}
	for i := uint(27); i < 36; i++ {
		v := New(256, false)
		v.View(117+i, 237-i).SetAll()
		v.View(i, i+2).SetAll()
		r = append(r, v.Clone(), v.Clone().FlipAll())
	}
	for _, n := range []uint{64, 65, 129, 200} {
		v := New(n, false)
		for i := range v.s.words {
			v.s.words[i] = rg.Uint64()
		}
		v.s.trim()
		r = append(r, v)
	}
	return
}()
