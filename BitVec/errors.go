package BitVec

import "fmt"

// OutOfRangeError is the panic value when a bit index is not less than the size of the Vec or View it's used on.
type OutOfRangeError struct {
	Index, Size uint
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("bit index %d out of range [0,%d)", e.Index, e.Size)
}

// SizeMismatchError is the panic value when a binary operation is given operands of different sizes.
type SizeMismatchError struct {
	Want, Got uint
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("operand has %d bits, want %d", e.Got, e.Want)
}

// RangeError is the panic value for a view [First,Last) that isn't within [0,Size].
type RangeError struct {
	First, Last, Size uint
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%d,%d) for %d bits", e.First, e.Last, e.Size)
}

func checkIndex(i, sz uint) {
	if i >= sz {
		panic(&OutOfRangeError{i, sz})
	}
}

func checkSize(want, got uint) {
	if want != got {
		panic(&SizeMismatchError{want, got})
	}
}
