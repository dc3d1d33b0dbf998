// Package Algebra holds the capability contracts that the range structures are generic over.
// None of the contracts are checked at runtime: an operation that isn't associative, or that
// claims commutativity it doesn't have, silently produces wrong aggregates.
package Algebra

// Associative operation. Combine(Combine(a,b),c) must equal Combine(a,Combine(b,c)).
type Associative[T any] interface {
	Combine(a, b T) T
}

// Unit provides the identity element of an operation.
type Unit[T any] interface {
	Identity() T
}

// Monoid is an Associative operation with a Unit:
// Combine(Identity(),x)==x==Combine(x,Identity()).
type Monoid[T any] interface {
	Associative[T]
	Unit[T]
}

// Invertible operations provide the inverse of every element:
// Combine(x,Invert(x))==Identity().
type Invertible[T any] interface {
	Invert(a T) T
}

// CommutativeMonoid is a Monoid where Combine(a,b)==Combine(b,a).
// Commutative is a marker and is never called.
type CommutativeMonoid[T any] interface {
	Monoid[T]
	Commutative()
}

// Group is an Invertible Monoid.
type Group[T any] interface {
	Monoid[T]
	Invertible[T]
}

// Abelian is a commutative Group.
type Abelian[T any] interface {
	Group[T]
	Commutative()
}

// Idempotent operations satisfy Combine(x,x)==x.
// Idempotent is a marker and is never called.
type Idempotent[T any] interface {
	Associative[T]
	Idempotent()
}

// IdempotentMonoid is a Monoid whose operation is Idempotent. Overlapping blocks can be combined
// freely as long as their order is kept.
type IdempotentMonoid[T any] interface {
	Monoid[T]
	Idempotent()
}

// Semilattice is an idempotent commutative monoid, such as max, min, gcd or bitwise or.
type Semilattice[T any] interface {
	CommutativeMonoid[T]
	Idempotent()
}

// Repeater is implemented by operations that can compute a combined k times (k>=0) faster
// than by repeated squaring, for example multiplication for Sum.
type Repeater[T any] interface {
	Repeat(a T, k int) T
}

// IsCommutative reports whether m declares the Commutative capability.
func IsCommutative[T any](m Monoid[T]) bool {
	_, ok := m.(interface{ Commutative() })
	return ok
}

// IsIdempotent reports whether m declares the Idempotent capability.
func IsIdempotent[T any](m Monoid[T]) bool {
	_, ok := m.(Idempotent[T])
	return ok
}

// AsGroup returns m as a Group if it's Invertible.
func AsGroup[T any](m Monoid[T]) (Group[T], bool) {
	g, ok := m.(Group[T])
	return g, ok
}

// AsAbelian returns m as an Abelian group if it's both Invertible and Commutative.
func AsAbelian[T any](m Monoid[T]) (Abelian[T], bool) {
	g, ok := m.(Abelian[T])
	return g, ok
}
