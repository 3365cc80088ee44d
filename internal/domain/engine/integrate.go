package engine

import (
	"fmt"

	"github.com/gocas/symint/internal/domain/expr"
)

// Config configures one integration call: the search's resource bounds
// (spec §5) and its fresh-variable-name strategy (spec §5, SPEC_FULL.md
// §10).
type Config struct {
	MaxDepth  int
	MaxCycles int
	Fresh     FreshNameStrategy
}

// DefaultConfig returns the engine's default resource bounds and fresh
// name strategy: a depth cap of 30, a cycle budget of 500, and the
// deterministic monotonic-counter fresh-name generator.
func DefaultConfig() Config {
	return Config{MaxDepth: defaultMaxDepth, MaxCycles: defaultMaxCycles, Fresh: &MonotonicFreshNames{}}
}

func (o Config) normalized() Config {
	if o.MaxDepth <= 0 {
		o.MaxDepth = defaultMaxDepth
	}
	if o.MaxCycles <= 0 {
		o.MaxCycles = defaultMaxCycles
	}
	if o.Fresh == nil {
		o.Fresh = &MonotonicFreshNames{}
	}
	return o
}

// Integrate searches for an antiderivative of e with respect to v,
// returning ErrIntegrationFailed if the search exhausts its heuristics
// (spec §4, §7). Each call owns an independent AND/OR tree (spec §5).
func Integrate(e expr.Expr, v string, opts Config) (expr.Expr, error) {
	if v == "" {
		return nil, fmt.Errorf("%w: integration variable must be a non-empty symbol name", ErrInvalidInput)
	}
	opts = opts.normalized()

	t := newTree(e.Simplify(), v, opts.Fresh)
	run(t, opts.MaxDepth, opts.MaxCycles)
	backpropagate(t)

	root := t.root()
	if root.Kind != Solution || root.Solution == nil {
		return nil, fmt.Errorf("%w: no elementary antiderivative found for %s", ErrIntegrationFailed, e.Simplify().String())
	}
	return root.Solution.Simplify(), nil
}
