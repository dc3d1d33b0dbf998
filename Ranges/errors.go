package Ranges

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned by constructors given a size below 1.
	ErrInvalidSize = errors.New("size must be positive")
	// ErrNilAlgebra is returned by constructors given a nil algebra or mapping.
	ErrNilAlgebra = errors.New("nil algebra")
	// ErrIndexOutOfRange is returned for an index or range outside the sequence. The structure is
	// left untouched.
	ErrIndexOutOfRange = errors.New("index out of range")
)
