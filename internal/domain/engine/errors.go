package engine

import "errors"

// ErrInvalidInput is returned when the caller passes a malformed
// construction, e.g. a non-symbol where a variable was required.
var ErrInvalidInput = errors.New("engine: invalid input")

// ErrNotImplementedFeature is returned when a requested operation touches a
// construct outside the supported algebra.
var ErrNotImplementedFeature = errors.New("engine: not implemented")

// ErrIntegrationFailed is returned when the search exhausts its heuristics
// without finding an antiderivative. This is an expected outcome for
// inputs outside the system's competence, not a bug.
var ErrIntegrationFailed = errors.New("engine: integration failed")

// errNoSolutionYet is the internal back-propagation signal raised by
// backward when a node's siblings are not all solved yet. It never
// crosses the package boundary.
var errNoSolutionYet = errors.New("engine: no solution yet")
