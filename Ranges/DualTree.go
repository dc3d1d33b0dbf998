package Ranges

import (
	Go_Aggregates "github.com/g-m-twostay/go-aggregates"
	"github.com/g-m-twostay/go-aggregates/Algebra"
)

// dualTree keeps tags only, for tag algebras that may not commute. tags has a slot for every node
// including the leaves; the tag of a leaf is everything already pushed down to it.
//
// Before a tag lands on a node, every ancestor of that node is pushed, so at any time the tags on
// the path from a leaf to the root are ordered oldest first going up.
type dualTree[V, O any] struct {
	layout
	os      Algebra.Monoid[O]
	mapping func(V, O) V
	vals    []V
	tags    []O
	pending Go_Aggregates.BitArray
}

func newDualTree[V, O any](os Algebra.Monoid[O], mapping func(V, O) V, size int, at func(int) V) (*dualTree[V, O], error) {
	l, err := newLayout(size)
	if err != nil {
		return nil, err
	}
	u := &dualTree[V, O]{l, os, mapping, make([]V, size), make([]O, l.half<<1), Go_Aggregates.New(l.half)}
	for i := range u.vals {
		u.vals[i] = at(i)
	}
	for i := range u.tags {
		u.tags[i] = os.Identity()
	}
	return u, nil
}

func (u *dualTree[V, O]) apply(i int, t O) {
	u.tags[i] = u.os.Combine(u.tags[i], t)
	if i < u.half {
		u.pending.Up(i)
	}
}

func (u *dualTree[V, O]) push(i int) {
	if u.pending.Take(i) {
		u.apply(i<<1, u.tags[i])
		u.apply(i<<1|1, u.tags[i])
		u.tags[i] = u.os.Identity()
	}
}

func (u *dualTree[V, O]) Update(t O, l, r int) error {
	if err := u.checkRange(l, r); err != nil {
		return err
	}
	if l == r {
		return nil
	}
	l, r = l+u.half, r+u.half
	u.boundaries(l, r, true, u.push)
	for ; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			u.apply(l, t)
			l++
		}
		if r&1 == 1 {
			r--
			u.apply(r, t)
		}
	}
	return nil
}

func (u *dualTree[V, O]) UpdateAt(t O, i int) error {
	if err := u.checkIndex(i); err != nil {
		return err
	}
	return u.Update(t, i, i+1)
}

// Tag walks from the root down to the leaf; deeper tags are older and go in front.
func (u *dualTree[V, O]) Tag(i int) (O, error) {
	if err := u.checkIndex(i); err != nil {
		return u.os.Identity(), err
	}
	acc := u.os.Identity()
	i += u.half
	for s := u.log; s >= 0; s-- {
		acc = u.os.Combine(u.tags[i>>s], acc)
	}
	return acc, nil
}

func (u *dualTree[V, O]) Get(i int) (V, error) {
	t, err := u.Tag(i)
	if err != nil {
		var zero V
		return zero, err
	}
	return u.mapping(u.vals[i], t), nil
}

func (u *dualTree[V, O]) All(buf []V) []V {
	if u.pending.Count() != 0 {
		for i := 1; i < u.half; i++ {
			u.push(i)
		}
	}
	buf = buf[:0]
	for i, v := range u.vals {
		buf = append(buf, u.mapping(v, u.tags[u.half+i]))
	}
	return buf
}
