package Ranges

import (
	"math/bits"

	"github.com/pkg/errors"
)

// layout of a binary tree over an array. Slot 1 is the root and slot i has children 2i and 2i+1.
// The size logical elements sit at [half, half+size); leaves past that hold the identity.
type layout struct {
	size, half, log int // half==1<<log is the smallest power of 2 >= size
}

func newLayout(size int) (layout, error) {
	if size < 1 {
		return layout{}, errors.Wrapf(ErrInvalidSize, "size %d", size)
	}
	lg := bits.Len(uint(size - 1))
	return layout{size, 1 << lg, lg}, nil
}

func (u layout) Size() int {
	return u.size
}

// span is the number of leaves under node i.
func (u layout) span(i int) int {
	return u.half >> (bits.Len(uint(i)) - 1)
}

func (u layout) checkIndex(i int) error {
	if i < 0 || i >= u.size {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", i, u.size)
	}
	return nil
}

func (u layout) checkRange(l, r int) error {
	if l < 0 || l > r || r > u.size {
		return errors.Wrapf(ErrIndexOutOfRange, "range [%d, %d), size %d", l, r, u.size)
	}
	return nil
}

// checkSearch accepts [l, r) and the reversed [r, l).
func (u layout) checkSearch(l, r int) error {
	if l > r {
		l, r = r, l
	}
	return u.checkRange(l, r)
}

// boundaries calls f on the proper ancestors of the leaves at l and r-1 (in leaf slots) whose
// subtrees aren't entirely inside [l, r), top-down when down is set and bottom-up otherwise.
// These are the only nodes a range operation reads through or writes through.
func (u layout) boundaries(l, r int, down bool, f func(int)) {
	i, end, step := u.log, 0, -1
	if !down {
		i, end, step = 1, u.log+1, 1
	}
	for ; i != end; i += step {
		if (l>>i)<<i != l {
			f(l >> i)
		}
		if (r>>i)<<i != r {
			f((r - 1) >> i)
		}
	}
}

// fillFrom and fillWith are the element sources constructors read the initial sequence from.
func fillFrom[T any](vs []T) func(int) T {
	return func(i int) T { return vs[i] }
}

func fillWith[T any](v T) func(int) T {
	return func(int) T { return v }
}
