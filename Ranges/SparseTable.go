package Ranges

import (
	"math/bits"

	"github.com/g-m-twostay/go-aggregates/Algebra"
	"github.com/pkg/errors"
)

// SparseTable answers range queries over a sequence that never changes in O(1), using
// O(N log N) space. It relies on the operation being Idempotent, so that two overlapping blocks
// can cover a range.
type SparseTable[T any] struct {
	m      Algebra.IdempotentMonoid[T]
	levels [][]T // levels[j][i] combines [i, i+1<<j)
}

// NewSparseTable over a copy of vs.
func NewSparseTable[T any](m Algebra.IdempotentMonoid[T], vs []T) (*SparseTable[T], error) {
	if m == nil {
		return nil, errors.WithStack(ErrNilAlgebra)
	}
	if len(vs) < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", len(vs))
	}
	u := &SparseTable[T]{m, make([][]T, bits.Len(uint(len(vs))))}
	u.levels[0] = append([]T(nil), vs...)
	for j := 1; j < len(u.levels); j++ {
		prev, w := u.levels[j-1], 1<<(j-1)
		cur := make([]T, len(vs)-(1<<j)+1)
		for i := range cur {
			cur[i] = m.Combine(prev[i], prev[i+w])
		}
		u.levels[j] = cur
	}
	return u, nil
}

func (u *SparseTable[T]) Size() int {
	return len(u.levels[0])
}

func (u *SparseTable[T]) Get(i int) (T, error) {
	if err := (layout{size: u.Size()}).checkIndex(i); err != nil {
		return u.m.Identity(), err
	}
	return u.levels[0][i], nil
}

// Query combines the elements in [l, r).
func (u *SparseTable[T]) Query(l, r int) (T, error) {
	if err := (layout{size: u.Size()}).checkRange(l, r); err != nil {
		return u.m.Identity(), err
	}
	if l == r {
		return u.m.Identity(), nil
	}
	j := bits.Len(uint(r-l)) - 1
	return u.m.Combine(u.levels[j][l], u.levels[j][r-1<<j]), nil
}
