package BitVec

// bitSequence replays the bits [first,limit) of a storage as if they started at another position,
// one target word at a time. Every pulled word has its bits at the positions they take in the
// target word, and 0 everywhere else, so the first pull of a forward sequence carries only
// 64-asFirst%64 bits and the later ones line up with the word boundaries of the target.
// It's single pass and reads at most 2 source words per pull.
type bitSequence struct {
	s            *storage
	cursor       int // source position lining up with bit 0 of the current target word
	first, limit uint
	step         int
}

// newBitSequence replays [first,last) of s as if it started at asFirst. If back is true the words are
// pulled starting from the one lining up with the last target word.
func newBitSequence(s *storage, first, last, asFirst uint, back bool) bitSequence {
	tw, step := slot(asFirst), stride
	if back && last > first {
		tw, step = slot(asFirst+last-first-1), -stride
	}
	return bitSequence{s: s, cursor: int(first) + int(tw<<logWidth) - int(asFirst), first: first, limit: last, step: step}
}

// pull the next word.
func (q *bitSequence) pull() uint64 {
	w := q.s.bitsAt(q.cursor, q.first, q.limit)
	q.cursor += q.step
	return w
}
