// Package Ranges holds range aggregation structures over a fixed size sequence. Each structure is
// generic over the algebra the caller supplies, and the constructors pick the implementation that
// the algebra's capabilities allow: a Fenwick tree for Abelian groups, a segment tree for any other
// Monoid, and a tag-only tree for commutative tags in the dual case.
//
// Nothing here is safe for concurrent use. Indexes are 0 based and ranges are half open. Every
// method that rejects its arguments does so before touching the structure.
package Ranges

import (
	"github.com/g-m-twostay/go-aggregates/Algebra"
	"github.com/pkg/errors"
)

// Tree supports point updates and range queries.
type Tree[T any] interface {
	//Size of the sequence, fixed at construction.
	Size() int
	//Get the element at i.
	Get(i int) (T, error)
	//Set the element at i to v, returning the previous element.
	Set(i int, v T) (T, error)
	//Apply v to the element at i, so that it becomes Combine(old, v).
	Apply(i int, v T) error
	//Query combines the elements in [l, r) from left to right. An empty range gives Identity().
	Query(l, r int) (T, error)
	//QueryAvoiding combines everything outside [l, r): Combine(Query(0, l), Query(r, Size())).
	QueryAvoiding(l, r int) (T, error)
	//BinarySearch for the end of the run of prefixes satisfying f.
	//When l<=r, prefixes grow rightwards from l inside [l, r), and the result is the last index j
	//such that f(Query(l, j+1)) holds, or l-1 if f fails on the first element.
	//When l>r, prefixes grow leftwards from l-1 inside [r, l), and the result is the smallest index
	//j such that f(Query(j, l)) holds, or l if f fails on the first element.
	//f must hold on a run of prefixes and fail on every longer one. f is never called on the
	//empty prefix.
	BinarySearch(l, r int, f func(T) bool) (int, error)
	//All elements in order, written into buf's storage if it has the capacity.
	All(buf []T) []T
}

// New Tree of size elements equal to fill.
func New[T any](m Algebra.Monoid[T], size int, fill T) (Tree[T], error) {
	if m == nil {
		return nil, errors.WithStack(ErrNilAlgebra)
	}
	if g, ok := Algebra.AsAbelian(m); ok {
		return asTree[T](newFenwick(g, size, fillWith(fill)))
	}
	return asTree[T](newSegTree(m, size, fillWith(fill)))
}

// From builds a Tree holding a copy of vs.
func From[T any](m Algebra.Monoid[T], vs []T) (Tree[T], error) {
	if m == nil {
		return nil, errors.WithStack(ErrNilAlgebra)
	}
	if g, ok := Algebra.AsAbelian(m); ok {
		return asTree[T](newFenwick(g, len(vs), fillFrom(vs)))
	}
	return asTree[T](newSegTree(m, len(vs), fillFrom(vs)))
}

// NewSegTree is New without the Fenwick specialization.
func NewSegTree[T any](m Algebra.Monoid[T], size int, fill T) (Tree[T], error) {
	if m == nil {
		return nil, errors.WithStack(ErrNilAlgebra)
	}
	return asTree[T](newSegTree(m, size, fillWith(fill)))
}

// FromSegTree is From without the Fenwick specialization.
func FromSegTree[T any](m Algebra.Monoid[T], vs []T) (Tree[T], error) {
	if m == nil {
		return nil, errors.WithStack(ErrNilAlgebra)
	}
	return asTree[T](newSegTree(m, len(vs), fillFrom(vs)))
}

// NewFenwick Tree of size elements equal to fill.
func NewFenwick[T any](g Algebra.Abelian[T], size int, fill T) (Tree[T], error) {
	if g == nil {
		return nil, errors.WithStack(ErrNilAlgebra)
	}
	return asTree[T](newFenwick(g, size, fillWith(fill)))
}

// FromFenwick builds a Fenwick Tree holding a copy of vs.
func FromFenwick[T any](g Algebra.Abelian[T], vs []T) (Tree[T], error) {
	if g == nil {
		return nil, errors.WithStack(ErrNilAlgebra)
	}
	return asTree[T](newFenwick(g, len(vs), fillFrom(vs)))
}

// DualTree supports range updates and point queries. Tags are combined oldest first: a tag
// Combine(a, b) stands for a followed by b, and mapping must satisfy
// mapping(mapping(v, a), b) == mapping(v, Combine(a, b)).
type DualTree[V, O any] interface {
	//Size of the sequence, fixed at construction.
	Size() int
	//Update every element in [l, r) with tag.
	Update(tag O, l, r int) error
	//UpdateAt is Update(tag, i, i+1).
	UpdateAt(tag O, i int) error
	//Tag is the combination of every tag applied to i, oldest first.
	Tag(i int) (O, error)
	//Get the initial element at i mapped through Tag(i).
	Get(i int) (V, error)
	//All resolved elements in order, written into buf's storage if it has the capacity.
	All(buf []V) []V
}

// NewDual DualTree of size elements equal to fill. Commutative tag algebras get the propagation
// free implementation.
func NewDual[V, O any](os Algebra.Monoid[O], mapping func(V, O) V, size int, fill V) (DualTree[V, O], error) {
	if os == nil || mapping == nil {
		return nil, errors.WithStack(ErrNilAlgebra)
	}
	if Algebra.IsCommutative(os) {
		return asDual[V, O](newCDualTree(os, mapping, size, fillWith(fill)))
	}
	return asDual[V, O](newDualTree(os, mapping, size, fillWith(fill)))
}

// FromDual builds a DualTree over a copy of vs.
func FromDual[V, O any](os Algebra.Monoid[O], mapping func(V, O) V, vs []V) (DualTree[V, O], error) {
	if os == nil || mapping == nil {
		return nil, errors.WithStack(ErrNilAlgebra)
	}
	if Algebra.IsCommutative(os) {
		return asDual[V, O](newCDualTree(os, mapping, len(vs), fillFrom(vs)))
	}
	return asDual[V, O](newDualTree(os, mapping, len(vs), fillFrom(vs)))
}

// asTree keeps a failed constructor's nil pointer out of the interface.
func asTree[T any](t Tree[T], err error) (Tree[T], error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

func asDual[V, O any](t DualTree[V, O], err error) (DualTree[V, O], error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}
