package Algebra

import "github.com/pkg/errors"

// Repeat combines a with itself k times. k==0 gives Identity(). For k<0, m must be Invertible
// and the result is Invert(Repeat(m,a,-k)); otherwise ErrUndefined is returned.
// Repeated squaring takes O(log k) calls to Combine. Idempotent operations return a directly,
// and a Repeater's own Repeat is used when m implements it.
func Repeat[T any](m Monoid[T], a T, k int) (T, error) {
	if k < 0 {
		inv, ok := m.(Invertible[T])
		if !ok {
			return m.Identity(), errors.Wrapf(ErrUndefined, "negative repeat count %d without inverses", k)
		}
		return inv.Invert(repeat(m, a, -k)), nil
	}
	return repeat(m, a, k), nil
}

func repeat[T any](m Monoid[T], a T, k int) T {
	if k == 0 {
		return m.Identity()
	}
	if r, ok := m.(Repeater[T]); ok {
		return r.Repeat(a, k)
	}
	if IsIdempotent(m) {
		return a
	}
	acc := m.Identity()
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			acc = m.Combine(acc, a)
		}
		if k > 1 {
			a = m.Combine(a, a)
		}
	}
	return acc
}

// MustRepeat is Repeat for k>=0, where it can't fail.
func MustRepeat[T any](m Monoid[T], a T, k int) T {
	if k < 0 {
		panic(errors.Wrapf(ErrUndefined, "MustRepeat with negative count %d", k))
	}
	return repeat(m, a, k)
}
