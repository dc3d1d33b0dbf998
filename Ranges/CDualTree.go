package Ranges

import (
	"github.com/g-m-twostay/go-aggregates/Algebra"
)

// cDualTree is dualTree for commutative tags. Their order never matters, so updates tag the cover
// of the range directly and nothing is ever pushed.
type cDualTree[V, O any] struct {
	layout
	os      Algebra.Monoid[O]
	mapping func(V, O) V
	vals    []V
	tags    []O
}

func newCDualTree[V, O any](os Algebra.Monoid[O], mapping func(V, O) V, size int, at func(int) V) (*cDualTree[V, O], error) {
	l, err := newLayout(size)
	if err != nil {
		return nil, err
	}
	u := &cDualTree[V, O]{l, os, mapping, make([]V, size), make([]O, l.half<<1)}
	for i := range u.vals {
		u.vals[i] = at(i)
	}
	for i := range u.tags {
		u.tags[i] = os.Identity()
	}
	return u, nil
}

func (u *cDualTree[V, O]) Update(t O, l, r int) error {
	if err := u.checkRange(l, r); err != nil {
		return err
	}
	for l, r = l+u.half, r+u.half; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			u.tags[l] = u.os.Combine(u.tags[l], t)
			l++
		}
		if r&1 == 1 {
			r--
			u.tags[r] = u.os.Combine(u.tags[r], t)
		}
	}
	return nil
}

func (u *cDualTree[V, O]) UpdateAt(t O, i int) error {
	if err := u.checkIndex(i); err != nil {
		return err
	}
	u.tags[u.half+i] = u.os.Combine(u.tags[u.half+i], t)
	return nil
}

// Tag walks from the leaf up to the root.
func (u *cDualTree[V, O]) Tag(i int) (O, error) {
	if err := u.checkIndex(i); err != nil {
		return u.os.Identity(), err
	}
	acc := u.os.Identity()
	for i += u.half; i > 0; i >>= 1 {
		acc = u.os.Combine(acc, u.tags[i])
	}
	return acc, nil
}

func (u *cDualTree[V, O]) Get(i int) (V, error) {
	t, err := u.Tag(i)
	if err != nil {
		var zero V
		return zero, err
	}
	return u.mapping(u.vals[i], t), nil
}

// All moves every tag to the leaves in one top-down pass.
func (u *cDualTree[V, O]) All(buf []V) []V {
	for i := 1; i < u.half; i++ {
		t := u.tags[i]
		u.tags[i<<1] = u.os.Combine(u.tags[i<<1], t)
		u.tags[i<<1|1] = u.os.Combine(u.tags[i<<1|1], t)
		u.tags[i] = u.os.Identity()
	}
	buf = buf[:0]
	for i, v := range u.vals {
		buf = append(buf, u.mapping(v, u.tags[u.half+i]))
	}
	return buf
}
