package Algebra

// The adapters below turn plain functions into algebra values. Each one carries exactly the
// capabilities its constructor names, so the factories in Ranges pick the same structure they
// would pick for a hand written type.

type monoidFuncs[T any] struct {
	op func(a, b T) T
	e  func() T
}

func (u monoidFuncs[T]) Combine(a, b T) T { return u.op(a, b) }
func (u monoidFuncs[T]) Identity() T { return u.e() }

type commutativeFuncs[T any] struct{ monoidFuncs[T] }

func (commutativeFuncs[T]) Commutative() {}

type semilatticeFuncs[T any] struct{ commutativeFuncs[T] }

func (semilatticeFuncs[T]) Idempotent() {}

type groupFuncs[T any] struct {
	monoidFuncs[T]
	inv func(a T) T
}

func (u groupFuncs[T]) Invert(a T) T { return u.inv(a) }

type abelianFuncs[T any] struct{ groupFuncs[T] }

func (abelianFuncs[T]) Commutative() {}

// MonoidOf op with identity e. op is assumed associative only.
func MonoidOf[T any](op func(a, b T) T, e func() T) Monoid[T] {
	return monoidFuncs[T]{op, e}
}

// CommutativeOf op with identity e; op must also be commutative.
func CommutativeOf[T any](op func(a, b T) T, e func() T) CommutativeMonoid[T] {
	return commutativeFuncs[T]{monoidFuncs[T]{op, e}}
}

// SemilatticeOf op with identity e; op must be commutative and idempotent.
func SemilatticeOf[T any](op func(a, b T) T, e func() T) Semilattice[T] {
	return semilatticeFuncs[T]{commutativeFuncs[T]{monoidFuncs[T]{op, e}}}
}

// GroupOf op with identity e and inverse inv.
func GroupOf[T any](op func(a, b T) T, e func() T, inv func(a T) T) Group[T] {
	return groupFuncs[T]{monoidFuncs[T]{op, e}, inv}
}

// AbelianOf op with identity e and inverse inv; op must also be commutative.
func AbelianOf[T any](op func(a, b T) T, e func() T, inv func(a T) T) Abelian[T] {
	return abelianFuncs[T]{groupFuncs[T]{monoidFuncs[T]{op, e}, inv}}
}
