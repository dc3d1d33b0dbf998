package Algebra

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number is any real numeric type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum is addition. It's Abelian and repeats by multiplication.
type Sum[T Number] struct{}

func (Sum[T]) Combine(a, b T) T { return a + b }
func (Sum[T]) Identity() T { return 0 }
func (Sum[T]) Invert(a T) T { return -a }
func (Sum[T]) Commutative() {}
func (Sum[T]) Repeat(a T, k int) T { return a * T(k) }

// Product is multiplication. Zero has no inverse, so it's only a CommutativeMonoid.
type Product[T Number] struct{}

func (Product[T]) Combine(a, b T) T { return a * b }
func (Product[T]) Identity() T { return 1 }
func (Product[T]) Commutative() {}

// Xor is bitwise exclusive or; every element is its own inverse.
type Xor[T constraints.Integer] struct{}

func (Xor[T]) Combine(a, b T) T { return a ^ b }
func (Xor[T]) Identity() T { return 0 }
func (Xor[T]) Invert(a T) T { return a }
func (Xor[T]) Commutative() {}
func (Xor[T]) Repeat(a T, k int) T {
	if k&1 == 1 {
		return a
	}
	return 0
}

// Max with Lowest as identity. Lowest should be no greater than any element combined.
type Max[T cmp.Ordered] struct {
	Lowest T
}

func (u Max[T]) Combine(a, b T) T { return max(a, b) }
func (u Max[T]) Identity() T { return u.Lowest }
func (Max[T]) Commutative() {}
func (Max[T]) Idempotent() {}

// Min with Highest as identity. Highest should be no less than any element combined.
type Min[T cmp.Ordered] struct {
	Highest T
}

func (u Min[T]) Combine(a, b T) T { return min(a, b) }
func (u Min[T]) Identity() T { return u.Highest }
func (Min[T]) Commutative() {}
func (Min[T]) Idempotent() {}

// BitOr is bitwise or.
type BitOr[T constraints.Integer] struct{}

func (BitOr[T]) Combine(a, b T) T { return a | b }
func (BitOr[T]) Identity() T { return 0 }
func (BitOr[T]) Commutative() {}
func (BitOr[T]) Idempotent() {}

// BitAnd is bitwise and; the identity has every bit set.
type BitAnd[T constraints.Integer] struct{}

func (BitAnd[T]) Combine(a, b T) T { return a & b }
func (BitAnd[T]) Identity() T { return ^T(0) }
func (BitAnd[T]) Commutative() {}
func (BitAnd[T]) Idempotent() {}

// GCD of non-negative integers; 0 is the identity.
type GCD[T constraints.Integer] struct{}

func (GCD[T]) Combine(a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
func (GCD[T]) Identity() T { return 0 }
func (GCD[T]) Commutative() {}
func (GCD[T]) Idempotent() {}

// Map is the affine map x -> A*x + B.
type Map[T Number] struct {
	A, B T
}

// Apply the map to x.
func (u Map[T]) Apply(x T) T {
	return u.A*x + u.B
}

// Affine composes maps; Combine(f,g) applies f first, then g. It's not commutative.
type Affine[T Number] struct{}

func (Affine[T]) Combine(f, g Map[T]) Map[T] { return Map[T]{f.A * g.A, f.B*g.A + g.B} }
func (Affine[T]) Identity() Map[T] { return Map[T]{1, 0} }

// Concat joins strings, left operand first.
type Concat struct{}

func (Concat) Combine(a, b string) string { return a + b }
func (Concat) Identity() string { return "" }
