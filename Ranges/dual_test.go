package Ranges

import (
	"testing"

	"github.com/g-m-twostay/go-aggregates/Algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func affine(x int, f Algebra.Map[int]) int {
	return f.Apply(x)
}

func randMap() Algebra.Map[int] {
	return Algebra.Map[int]{A: _R.Intn(5) - 2, B: _R.Intn(21) - 10}
}

func TestDualDispatch(t *testing.T) {
	tree, err := NewDual[int, Algebra.Map[int]](Algebra.Affine[int]{}, affine, 8, 0)
	require.NoError(t, err)
	assert.IsType(t, &dualTree[int, Algebra.Map[int]]{}, tree)

	add := func(v, t int) int { return v + t }
	tree2, err := NewDual[int, int](Algebra.Sum[int]{}, add, 8, 0)
	require.NoError(t, err)
	assert.IsType(t, &cDualTree[int, int]{}, tree2)
}

// Affine maps don't commute, so applying them in the wrong order shows up immediately.
func TestDualAffineRandom(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 31, 256} {
		vs := randInts(n, 10)
		tree := must(FromDual[int, Algebra.Map[int]](Algebra.Affine[int]{}, affine, vs))
		want := append([]int(nil), vs...)
		for range 6 * n {
			switch l, r := randRange(n); _R.Intn(3) {
			case 0:
				f := randMap()
				if err := tree.Update(f, l, r); err != nil {
					t.Fatal(err)
				}
				for i := l; i < r; i++ {
					want[i] = f.Apply(want[i])
				}
			case 1:
				i, f := _R.Intn(n), randMap()
				if err := tree.UpdateAt(f, i); err != nil {
					t.Fatal(err)
				}
				want[i] = f.Apply(want[i])
			default:
				i := _R.Intn(n)
				if got, _ := tree.Get(i); got != want[i] {
					t.Errorf("get %d is %d, want %d", i, got, want[i])
				}
				tag, _ := tree.Tag(i)
				if got := tag.Apply(vs[i]); got != want[i] {
					t.Errorf("tag at %d maps %d to %d, want %d", i, vs[i], got, want[i])
				}
			}
		}
		require.Equal(t, want, tree.All(nil))
		require.Equal(t, want, tree.All(nil))
		for i := range n {
			got, _ := tree.Get(i)
			require.Equal(t, want[i], got, "get %d after All", i)
		}
	}
}

func TestDualCommutativeRandom(t *testing.T) {
	for _, n := range []int{1, 4, 9, 64, 300} {
		vs := randInts(n, 100)
		tree := must(FromDual[int, int](Algebra.Sum[int]{}, func(v, t int) int { return v + t }, vs))
		want := append([]int(nil), vs...)
		for range 6 * n {
			l, r := randRange(n)
			d := _R.Intn(50) - 25
			if _R.Intn(3) == 0 {
				require.NoError(t, tree.UpdateAt(d, l%n))
				want[l%n] += d
			} else {
				require.NoError(t, tree.Update(d, l, r))
				for i := l; i < r; i++ {
					want[i] += d
				}
			}
			i := _R.Intn(n)
			if got, _ := tree.Get(i); got != want[i] {
				t.Errorf("get %d is %d, want %d", i, got, want[i])
			}
		}
		require.Equal(t, want, tree.All(make([]int, 3)))
		require.Equal(t, want, tree.All(nil))
	}
}

// Both strategies must agree when the tags happen to commute.
func TestDualStrategiesAgree(t *testing.T) {
	const n = 77
	add := func(v, t int) int { return v + t }
	op, e := func(a, b int) int { return a + b }, func() int { return 0 }
	general := must(NewDual[int, int](Algebra.MonoidOf(op, e), add, n, 1))
	comm := must(NewDual[int, int](Algebra.CommutativeOf(op, e), add, n, 1))
	require.IsType(t, &dualTree[int, int]{}, general)
	require.IsType(t, &cDualTree[int, int]{}, comm)
	for range 500 {
		l, r := randRange(n)
		d := _R.Intn(9)
		require.NoError(t, general.Update(d, l, r))
		require.NoError(t, comm.Update(d, l, r))
		i := _R.Intn(n)
		a, _ := general.Tag(i)
		b, _ := comm.Tag(i)
		require.Equal(t, b, a, "tag at %d", i)
	}
	require.Equal(t, comm.All(nil), general.All(nil))
}

func TestDualStrings(t *testing.T) {
	tree := must(NewDual[string, string](Algebra.Concat{}, func(v, t string) string { return v + t }, 4, ">"))
	require.NoError(t, tree.Update("a", 0, 4))
	require.NoError(t, tree.Update("b", 1, 3))
	require.NoError(t, tree.Update("c", 0, 2))
	require.NoError(t, tree.UpdateAt("d", 3))
	assert.Equal(t, []string{">ac", ">abc", ">ab", ">ad"}, tree.All(nil))
	tag, err := tree.Tag(1)
	require.NoError(t, err)
	assert.Equal(t, "abc", tag)
}

func TestDualErrors(t *testing.T) {
	_, err := NewDual[int, int](Algebra.Sum[int]{}, nil, 3, 0)
	require.ErrorIs(t, err, ErrNilAlgebra)
	_, err = FromDual[int, int](nil, func(v, t int) int { return v }, []int{1})
	require.ErrorIs(t, err, ErrNilAlgebra)
	tree, err := FromDual[int, int](Algebra.Sum[int]{}, func(v, t int) int { return v + t }, nil)
	require.ErrorIs(t, err, ErrInvalidSize)
	assert.Nil(t, tree)

	for _, tree := range []DualTree[string, string]{
		must(NewDual[string, string](Algebra.Concat{}, func(v, t string) string { return v + t }, 3, "")),
		must(NewDual[string, string](Algebra.CommutativeOf(func(a, b string) string { return a + b }, func() string { return "" }), func(v, t string) string { return v + t }, 3, "")),
	} {
		assert.ErrorIs(t, tree.Update("x", 1, 4), ErrIndexOutOfRange)
		assert.ErrorIs(t, tree.Update("x", 2, 1), ErrIndexOutOfRange)
		assert.ErrorIs(t, tree.UpdateAt("x", -1), ErrIndexOutOfRange)
		_, err := tree.Get(3)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = tree.Tag(3)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, []string{"", "", ""}, tree.All(nil))
		assert.Equal(t, 3, tree.Size())
	}
}

func TestDualAllFlushes(t *testing.T) {
	tree, err := newDualTree[int, Algebra.Map[int]](Algebra.Affine[int]{}, affine, 6, fillWith(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, tree.All(nil))
	require.NoError(t, tree.Update(Algebra.Map[int]{A: 2, B: 0}, 0, 6))
	require.NoError(t, tree.Update(Algebra.Map[int]{A: 1, B: 3}, 1, 4))
	assert.NotZero(t, tree.pending.Count())
	want := []int{2, 5, 5, 5, 2, 2}
	assert.Equal(t, want, tree.All(nil))
	assert.Zero(t, tree.pending.Count())
	assert.Equal(t, want, tree.All(nil))
	require.NoError(t, tree.UpdateAt(Algebra.Map[int]{A: 0, B: 7}, 5))
	assert.Equal(t, []int{2, 5, 5, 5, 2, 7}, tree.All(nil))
}
