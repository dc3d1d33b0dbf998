package main

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-aggregates/Algebra"
	"github.com/g-m-twostay/go-aggregates/Ranges"
	"github.com/pkg/errors"
)

// sideEff sinks query results; each benchmark body adds its local sum once.
var sideEff atomic.Int64

// generated step lists by size<<32|ops; sweeps running at once share them.
var generated = hashmap.New[int64, []step]()

// step of a workload; set chooses between the update and the query half.
type step struct {
	set  bool
	l, r int
	v    int
}

func steps(seed int64, size, n int) []step {
	r := rand.New(rand.NewSource(seed))
	ss := make([]step, n)
	for i := range ss {
		l := r.Intn(size)
		ss[i] = step{r.Intn(2) == 0, l, l + 1 + r.Intn(size-l), r.Intn(8)}
	}
	return ss
}

// bench returns the benchmark body of structure s under workload w for size elements and ops steps.
func bench(j job, size, ops int) (func(b *testing.B), error) {
	key := int64(size)<<32 | int64(ops)
	ss, ok := generated.Get(key)
	if !ok {
		ss, _ = generated.GetOrInsert(key, steps(int64(size), size, ops))
	}
	switch j.workload {
	case "point":
		var mk func(Algebra.Abelian[int], int, int) (Ranges.Tree[int], error)
		switch j.structure {
		case "segtree":
			mk = func(g Algebra.Abelian[int], n, fill int) (Ranges.Tree[int], error) { return Ranges.NewSegTree[int](g, n, fill) }
		case "fenwick":
			mk = Ranges.NewFenwick[int]
		}
		if mk != nil {
			return pointBench(mk, size, ss), nil
		}
	case "range":
		if j.structure == "lazy" {
			return rangeBench(size, ss), nil
		}
	case "dual":
		switch j.structure {
		case "dual":
			return dualBench[Algebra.Map[int]](Algebra.Affine[int]{}, func(v int, m Algebra.Map[int]) int { return m.Apply(v) },
				func(s step) Algebra.Map[int] { return Algebra.Map[int]{A: 1 + s.v&1, B: s.v} }, size, ss), nil
		case "cdual":
			return dualBench[int](Algebra.Sum[int]{}, func(v, t int) int { return v + t },
				func(s step) int { return s.v }, size, ss), nil
		}
	}
	return nil, errors.Errorf("structure %q can't run workload %q", j.structure, j.workload)
}

func pointBench(mk func(Algebra.Abelian[int], int, int) (Ranges.Tree[int], error), size int, ss []step) func(b *testing.B) {
	return func(b *testing.B) {
		sink := 0
		for range b.N {
			b.StopTimer()
			tree, err := mk(Algebra.Sum[int]{}, size, 1)
			if err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
			for _, s := range ss {
				if s.set {
					_, _ = tree.Set(s.l, s.v)
				} else {
					v, _ := tree.Query(s.l, s.r)
					sink += v
				}
			}
		}
		sideEff.Add(int64(sink))
	}
}

func rangeBench(size int, ss []step) func(b *testing.B) {
	vs := make([]int, size)
	return func(b *testing.B) {
		sink := 0
		for range b.N {
			b.StopTimer()
			tree, err := Ranges.RangeAddSum(vs)
			if err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
			for _, s := range ss {
				if s.set {
					_ = tree.Update(s.v, s.l, s.r)
				} else {
					v, _ := tree.Query(s.l, s.r)
					sink += v
				}
			}
		}
		sideEff.Add(int64(sink))
	}
}

func dualBench[O any](os Algebra.Monoid[O], mapping func(int, O) int, tag func(step) O, size int, ss []step) func(b *testing.B) {
	return func(b *testing.B) {
		sink := 0
		for range b.N {
			b.StopTimer()
			tree, err := Ranges.NewDual(os, mapping, size, 1)
			if err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
			for _, s := range ss {
				if s.set {
					_ = tree.Update(tag(s), s.l, s.r)
				} else {
					v, _ := tree.Get(s.l)
					sink += v
				}
			}
		}
		sideEff.Add(int64(sink))
	}
}
