package Ranges

import (
	Go_Aggregates "github.com/g-m-twostay/go-aggregates"
	"github.com/g-m-twostay/go-aggregates/Algebra"
	"github.com/pkg/errors"
)

// Lazy supports range updates and range queries. Values form a CommutativeMonoid, and so do the
// tags applied to them. mapping(v, t) applies the tag t to an aggregate v; a tag reaching a node
// that covers k elements is first repeated k times, so for range add over sums mapping is plain
// addition.
//
// A node's aggregate always includes its own tag. tags[i] is what still has to reach the children
// of i, and pending marks the nodes where that isn't the identity.
type Lazy[V, O any] struct {
	layout
	vs      Algebra.CommutativeMonoid[V]
	os      Algebra.CommutativeMonoid[O]
	mapping func(V, O) V
	data    []V
	tags    []O
	pending Go_Aggregates.BitArray
}

// NewLazy tree of size elements equal to fill.
func NewLazy[V, O any](vs Algebra.CommutativeMonoid[V], os Algebra.CommutativeMonoid[O], mapping func(V, O) V, size int, fill V) (*Lazy[V, O], error) {
	return newLazy(vs, os, mapping, size, fillWith(fill))
}

// FromLazy builds a tree holding a copy of vs.
func FromLazy[V, O any](vs Algebra.CommutativeMonoid[V], os Algebra.CommutativeMonoid[O], mapping func(V, O) V, data []V) (*Lazy[V, O], error) {
	return newLazy(vs, os, mapping, len(data), fillFrom(data))
}

func newLazy[V, O any](vs Algebra.CommutativeMonoid[V], os Algebra.CommutativeMonoid[O], mapping func(V, O) V, size int, at func(int) V) (*Lazy[V, O], error) {
	if vs == nil || os == nil || mapping == nil {
		return nil, errors.WithStack(ErrNilAlgebra)
	}
	l, err := newLayout(size)
	if err != nil {
		return nil, err
	}
	u := &Lazy[V, O]{layout: l, vs: vs, os: os, mapping: mapping,
		data: make([]V, l.half<<1), tags: make([]O, l.half), pending: Go_Aggregates.New(l.half)}
	for i := range l.half {
		if i < size {
			u.data[l.half+i] = at(i)
		} else {
			u.data[l.half+i] = vs.Identity()
		}
	}
	for i := l.half - 1; i > 0; i-- {
		u.tags[i] = os.Identity()
		u.pull(i)
	}
	return u, nil
}

func (u *Lazy[V, O]) pull(i int) {
	u.data[i] = u.vs.Combine(u.data[i<<1], u.data[i<<1|1])
}

// apply t to every element under node i.
func (u *Lazy[V, O]) apply(i int, t O) {
	u.data[i] = u.mapping(u.data[i], Algebra.MustRepeat[O](u.os, t, u.span(i)))
	if i < u.half {
		u.tags[i] = u.os.Combine(u.tags[i], t)
		u.pending.Up(i)
	}
}

// push the tag of i into its children.
func (u *Lazy[V, O]) push(i int) {
	if u.pending.Take(i) {
		u.apply(i<<1, u.tags[i])
		u.apply(i<<1|1, u.tags[i])
		u.tags[i] = u.os.Identity()
	}
}

// Update applies t to every element in [l, r).
func (u *Lazy[V, O]) Update(t O, l, r int) error {
	if err := u.checkRange(l, r); err != nil {
		return err
	}
	if l == r {
		return nil
	}
	l, r = l+u.half, r+u.half
	u.boundaries(l, r, true, u.push)
	for a, b := l, r; a < b; a, b = a>>1, b>>1 {
		if a&1 == 1 {
			u.apply(a, t)
			a++
		}
		if b&1 == 1 {
			b--
			u.apply(b, t)
		}
	}
	u.boundaries(l, r, false, u.pull)
	return nil
}

// UpdateAt is Update(t, i, i+1).
func (u *Lazy[V, O]) UpdateAt(t O, i int) error {
	if err := u.checkIndex(i); err != nil {
		return err
	}
	return u.Update(t, i, i+1)
}

// Query combines the elements in [l, r).
func (u *Lazy[V, O]) Query(l, r int) (V, error) {
	if err := u.checkRange(l, r); err != nil {
		return u.vs.Identity(), err
	}
	return u.query(l, r), nil
}

func (u *Lazy[V, O]) query(l, r int) V {
	if l == r {
		return u.vs.Identity()
	}
	l, r = l+u.half, r+u.half
	u.boundaries(l, r, true, u.push)
	sl, sr := u.vs.Identity(), u.vs.Identity()
	for ; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			sl = u.vs.Combine(sl, u.data[l])
			l++
		}
		if r&1 == 1 {
			r--
			sr = u.vs.Combine(u.data[r], sr)
		}
	}
	return u.vs.Combine(sl, sr)
}

// QueryAvoiding combines the elements outside [l, r).
func (u *Lazy[V, O]) QueryAvoiding(l, r int) (V, error) {
	if err := u.checkRange(l, r); err != nil {
		return u.vs.Identity(), err
	}
	return u.vs.Combine(u.query(0, l), u.query(r, u.size)), nil
}

// Get the element at i.
func (u *Lazy[V, O]) Get(i int) (V, error) {
	if err := u.checkIndex(i); err != nil {
		return u.vs.Identity(), err
	}
	return u.query(i, i+1), nil
}

// All pushes every tag down to the leaves and returns them in order. Calling it again without
// updates in between gives the same elements and pushes nothing.
func (u *Lazy[V, O]) All(buf []V) []V {
	if u.pending.Count() != 0 {
		for i := 1; i < u.half; i++ {
			u.push(i)
		}
		for i := u.half - 1; i > 0; i-- {
			u.pull(i)
		}
	}
	return append(buf[:0], u.data[u.half:u.half+u.size]...)
}

// RangeAddSum is a Lazy tree of sums under range addition.
func RangeAddSum[T Algebra.Number](vs []T) (*Lazy[T, T], error) {
	return FromLazy[T, T](Algebra.Sum[T]{}, Algebra.Sum[T]{}, func(v, t T) T { return v + t }, vs)
}

// RangeChmaxMax is a Lazy tree of maximums where an update raises every element below t to t.
// lowest must not exceed any element or tag.
func RangeChmaxMax[T Algebra.Number](lowest T, vs []T) (*Lazy[T, T], error) {
	m := Algebra.Max[T]{Lowest: lowest}
	return FromLazy[T, T](m, m, func(v, t T) T { return max(v, t) }, vs)
}

// RangeChminMin is a Lazy tree of minimums where an update lowers every element above t to t.
// highest must not be below any element or tag.
func RangeChminMin[T Algebra.Number](highest T, vs []T) (*Lazy[T, T], error) {
	m := Algebra.Min[T]{Highest: highest}
	return FromLazy[T, T](m, m, func(v, t T) T { return min(v, t) }, vs)
}
