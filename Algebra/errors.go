package Algebra

import "github.com/pkg/errors"

// ErrUndefined is returned when an operation has no meaning under the given capabilities,
// such as a negative repeat count for a Monoid without inverses.
var ErrUndefined = errors.New("undefined operation")
