package expr

import "errors"

// ErrUnsupportedDerivative is returned by Diff when asked to differentiate
// a construct outside the supported algebra, e.g. f(x)^g(x) with both base
// and exponent depending on the variable of differentiation.
var ErrUnsupportedDerivative = errors.New("expr: unsupported derivative")

// ErrInvalidInput is wrapped by the parser when input text is malformed.
// The constructors in this package do not return it (Sym panics on an
// empty name).
var ErrInvalidInput = errors.New("expr: invalid input")

// ErrNotExpandable names the not-expandable condition. No Expand method
// in this package returns it: an expression with no distributable
// structure comes back from Expand unchanged with a nil error.
var ErrNotExpandable = errors.New("expr: not expandable")
