package Ranges

import (
	"math/bits"

	"github.com/g-m-twostay/go-aggregates/Algebra"
)

// segTree works with any Monoid. data[i]==Combine(data[2i], data[2i+1]) for every i in [1, half).
type segTree[T any] struct {
	layout
	m    Algebra.Monoid[T]
	data []T
}

func newSegTree[T any](m Algebra.Monoid[T], size int, at func(int) T) (*segTree[T], error) {
	l, err := newLayout(size)
	if err != nil {
		return nil, err
	}
	u := &segTree[T]{l, m, make([]T, l.half<<1)}
	for i := range l.half {
		if i < size {
			u.data[l.half+i] = at(i)
		} else {
			u.data[l.half+i] = m.Identity()
		}
	}
	for i := l.half - 1; i > 0; i-- {
		u.pull(i)
	}
	return u, nil
}

func (u *segTree[T]) pull(i int) {
	u.data[i] = u.m.Combine(u.data[i<<1], u.data[i<<1|1])
}

func (u *segTree[T]) Get(i int) (T, error) {
	if err := u.checkIndex(i); err != nil {
		return u.m.Identity(), err
	}
	return u.data[u.half+i], nil
}

func (u *segTree[T]) Set(i int, v T) (T, error) {
	if err := u.checkIndex(i); err != nil {
		return u.m.Identity(), err
	}
	i += u.half
	old := u.data[i]
	u.data[i] = v
	for i >>= 1; i > 0; i >>= 1 {
		u.pull(i)
	}
	return old, nil
}

func (u *segTree[T]) Apply(i int, v T) error {
	if err := u.checkIndex(i); err != nil {
		return err
	}
	i += u.half
	u.data[i] = u.m.Combine(u.data[i], v)
	for i >>= 1; i > 0; i >>= 1 {
		u.pull(i)
	}
	return nil
}

func (u *segTree[T]) Query(l, r int) (T, error) {
	if err := u.checkRange(l, r); err != nil {
		return u.m.Identity(), err
	}
	return u.query(l, r), nil
}

// query walks the two cursors inward, folding the left side on the right and the right side on
// the left so that the order of a non-commutative Combine is kept.
func (u *segTree[T]) query(l, r int) T {
	sl, sr := u.m.Identity(), u.m.Identity()
	for l, r = l+u.half, r+u.half; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			sl = u.m.Combine(sl, u.data[l])
			l++
		}
		if r&1 == 1 {
			r--
			sr = u.m.Combine(u.data[r], sr)
		}
	}
	return u.m.Combine(sl, sr)
}

func (u *segTree[T]) QueryAvoiding(l, r int) (T, error) {
	if err := u.checkRange(l, r); err != nil {
		return u.m.Identity(), err
	}
	return u.m.Combine(u.query(0, l), u.query(r, u.size)), nil
}

// cover fills ls and rs with the nodes whose disjoint union is [l, r). ls is in left to right
// order and rs in right to left order; together they are at most 2*(log+1) nodes.
func (u *segTree[T]) cover(l, r int, ls, rs *[bits.UintSize]int) (nl, nr int) {
	for l, r = l+u.half, r+u.half; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			ls[nl] = l
			nl++
			l++
		}
		if r&1 == 1 {
			r--
			rs[nr] = r
			nr++
		}
	}
	return
}

func (u *segTree[T]) BinarySearch(l, r int, f func(T) bool) (int, error) {
	if err := u.checkSearch(l, r); err != nil {
		return 0, err
	}
	if l > r {
		return u.searchDown(r, l, f), nil
	}
	return u.searchUp(l, r, f), nil
}

// searchUp scans the cover of [l, r) left to right. The first node that makes f fail is descended
// into, always keeping the current node failing, until it's a leaf: the first failing element.
func (u *segTree[T]) searchUp(l, r int, f func(T) bool) int {
	var ls, rs [bits.UintSize]int
	nl, nr := u.cover(l, r, &ls, &rs)
	acc := u.m.Identity()
	for j := range nl + nr {
		k := 0
		if j < nl {
			k = ls[j]
		} else {
			k = rs[nr-1-(j-nl)]
		}
		if c := u.m.Combine(acc, u.data[k]); f(c) {
			acc = c
			continue
		}
		for k < u.half {
			k <<= 1
			if c := u.m.Combine(acc, u.data[k]); f(c) {
				acc = c
				k++
			}
		}
		return k - u.half - 1
	}
	return r - 1
}

// searchDown mirrors searchUp over [l, r), scanning right to left and growing the prefix at its
// front.
func (u *segTree[T]) searchDown(l, r int, f func(T) bool) int {
	var ls, rs [bits.UintSize]int
	nl, nr := u.cover(l, r, &ls, &rs)
	acc := u.m.Identity()
	for j := range nl + nr {
		k := 0
		if j < nr {
			k = rs[j]
		} else {
			k = ls[nl-1-(j-nr)]
		}
		if c := u.m.Combine(u.data[k], acc); f(c) {
			acc = c
			continue
		}
		for k < u.half {
			k = k<<1 | 1
			if c := u.m.Combine(u.data[k], acc); f(c) {
				acc = c
				k--
			}
		}
		return k - u.half + 1
	}
	return l
}

func (u *segTree[T]) All(buf []T) []T {
	return append(buf[:0], u.data[u.half:u.half+u.size]...)
}
