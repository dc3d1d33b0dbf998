package Ranges

import (
	"math/rand"

	"github.com/g-m-twostay/go-aggregates/Algebra"
)

var _R = rand.New(rand.NewSource(0))

// model is the naive sequence every structure is checked against.
type model[T any] struct {
	m  Algebra.Monoid[T]
	vs []T
}

func (u model[T]) query(l, r int) T {
	acc := u.m.Identity()
	for _, v := range u.vs[l:r] {
		acc = u.m.Combine(acc, v)
	}
	return acc
}

func (u model[T]) searchUp(l, r int, f func(T) bool) int {
	j, acc := l-1, u.m.Identity()
	for i := l; i < r; i++ {
		if acc = u.m.Combine(acc, u.vs[i]); !f(acc) {
			break
		}
		j = i
	}
	return j
}

func (u model[T]) searchDown(l, r int, f func(T) bool) int {
	j, acc := l, u.m.Identity()
	for i := l - 1; i >= r; i-- {
		if acc = u.m.Combine(u.vs[i], acc); !f(acc) {
			break
		}
		j = i
	}
	return j
}

func (u model[T]) search(l, r int, f func(T) bool) int {
	if l > r {
		return u.searchDown(l, r, f)
	}
	return u.searchUp(l, r, f)
}

func randRange(n int) (int, int) {
	l, r := _R.Intn(n+1), _R.Intn(n+1)
	if l > r {
		l, r = r, l
	}
	return l, r
}

func randInts(n, limit int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = _R.Intn(limit)
	}
	return vs
}

func randLetters(n int) []string {
	vs := make([]string, n)
	for i := range vs {
		vs[i] = string(rune('a' + _R.Intn(26)))
	}
	return vs
}
