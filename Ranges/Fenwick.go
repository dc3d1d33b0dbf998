package Ranges

import (
	"math/bits"

	"github.com/g-m-twostay/go-aggregates/Algebra"
	"github.com/pkg/errors"
)

// fenwick needs an Abelian group: ranges are recovered from two prefixes through Invert.
// tree is 1 based; tree[i] combines the elements (i-lsb(i), i].
type fenwick[T any] struct {
	g    Algebra.Abelian[T]
	tree []T
}

func newFenwick[T any](g Algebra.Abelian[T], size int, at func(int) T) (*fenwick[T], error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", size)
	}
	u := &fenwick[T]{g, make([]T, size+1)}
	u.tree[0] = g.Identity()
	for i := range size {
		u.tree[i+1] = at(i)
	}
	for i := 1; i <= size; i++ {
		if j := i + i&-i; j <= size {
			u.tree[j] = g.Combine(u.tree[j], u.tree[i])
		}
	}
	return u, nil
}

func (u *fenwick[T]) Size() int {
	return len(u.tree) - 1
}

func (u *fenwick[T]) checkIndex(i int) error {
	return layout{size: u.Size()}.checkIndex(i)
}

func (u *fenwick[T]) checkRange(l, r int) error {
	return layout{size: u.Size()}.checkRange(l, r)
}

// prefix combines the first i elements.
func (u *fenwick[T]) prefix(i int) T {
	acc := u.g.Identity()
	for ; i > 0; i -= i & -i {
		acc = u.g.Combine(acc, u.tree[i])
	}
	return acc
}

func (u *fenwick[T]) query(l, r int) T {
	return u.g.Combine(u.g.Invert(u.prefix(l)), u.prefix(r))
}

func (u *fenwick[T]) add(i int, v T) {
	for i++; i < len(u.tree); i += i & -i {
		u.tree[i] = u.g.Combine(u.tree[i], v)
	}
}

func (u *fenwick[T]) Get(i int) (T, error) {
	if err := u.checkIndex(i); err != nil {
		return u.g.Identity(), err
	}
	return u.query(i, i+1), nil
}

func (u *fenwick[T]) Set(i int, v T) (T, error) {
	if err := u.checkIndex(i); err != nil {
		return u.g.Identity(), err
	}
	old := u.query(i, i+1)
	u.add(i, u.g.Combine(u.g.Invert(old), v))
	return old, nil
}

func (u *fenwick[T]) Apply(i int, v T) error {
	if err := u.checkIndex(i); err != nil {
		return err
	}
	u.add(i, v)
	return nil
}

func (u *fenwick[T]) Query(l, r int) (T, error) {
	if err := u.checkRange(l, r); err != nil {
		return u.g.Identity(), err
	}
	return u.query(l, r), nil
}

func (u *fenwick[T]) QueryAvoiding(l, r int) (T, error) {
	if err := u.checkRange(l, r); err != nil {
		return u.g.Identity(), err
	}
	return u.g.Combine(u.prefix(l), u.query(r, u.Size())), nil
}

func (u *fenwick[T]) BinarySearch(l, r int, f func(T) bool) (int, error) {
	if err := (layout{size: u.Size()}).checkSearch(l, r); err != nil {
		return 0, err
	}
	if l > r {
		return u.searchDown(r, l, f), nil
	}
	return u.searchUp(l, r, f), nil
}

// searchUp finds the largest p such that p<=l, or p<=r and f(query(l, p)), by descending with
// power of 2 steps while keeping acc==prefix(p). The condition is monotone in p, so one pass
// settles every bit of the answer.
func (u *fenwick[T]) searchUp(l, r int, f func(T) bool) int {
	base := u.g.Invert(u.prefix(l))
	p, acc := 0, u.g.Identity()
	for step := 1 << (bits.Len(uint(u.Size())) - 1); step > 0; step >>= 1 {
		next := p + step
		if next > r {
			continue
		}
		c := u.g.Combine(acc, u.tree[next])
		if next <= l || f(u.g.Combine(base, c)) {
			p, acc = next, c
		}
	}
	return p - 1
}

// searchDown finds the smallest p in [l, r) with f(query(p, r)), or r. It descends on the
// complement: the largest p such that p<l, or p<r and f fails on query(p, r).
func (u *fenwick[T]) searchDown(l, r int, f func(T) bool) int {
	end := u.prefix(r)
	p, acc := 0, u.g.Identity()
	for step := 1 << (bits.Len(uint(u.Size())) - 1); step > 0; step >>= 1 {
		next := p + step
		if next >= r {
			continue
		}
		c := u.g.Combine(acc, u.tree[next])
		if next < l || !f(u.g.Combine(u.g.Invert(c), end)) {
			p, acc = next, c
		}
	}
	if p == 0 && l == 0 && f(end) {
		// the descent never tests p==0 itself
		return 0
	}
	return p + 1
}

// All undoes the construction pass on a copy, in reverse, which is O(N).
func (u *fenwick[T]) All(buf []T) []T {
	buf = append(buf[:0], u.tree[1:]...)
	for i := len(buf); i > 0; i-- {
		if j := i + i&-i; j <= len(buf) {
			buf[j-1] = u.g.Combine(buf[j-1], u.g.Invert(buf[i-1]))
		}
	}
	return buf
}
