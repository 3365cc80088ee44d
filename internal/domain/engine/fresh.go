package engine

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// FreshNameStrategy produces intermediate variable names for
// variable-change transforms (LinearUSub, TrigUSub, GenericUSub, ...).
// The default MonotonicFreshNames keeps a call's search fully
// deterministic, per spec §5 ("implementations may substitute a monotonic
// counter for full determinism"); UUIDFreshNames is the random-suffix
// strategy spec.md §5 describes as the baseline, offered here as an
// explicit opt-in for callers who do not need reproducible traces.
type FreshNameStrategy interface {
	// Next returns a variable name guaranteed not to collide with any
	// name in used.
	Next(used map[string]bool) string
}

// MonotonicFreshNames generates u_1, u_2, ... in call order.
type MonotonicFreshNames struct {
	n int
}

// Next implements FreshNameStrategy.
func (m *MonotonicFreshNames) Next(used map[string]bool) string {
	for {
		m.n++
		name := "u_" + strconv.Itoa(m.n)
		if !used[name] {
			return name
		}
	}
}

// UUIDFreshNames generates u_<random suffix> names, mirroring simpy's
// random_id-suffixed intermediate variables.
type UUIDFreshNames struct{}

// Next implements FreshNameStrategy.
func (UUIDFreshNames) Next(used map[string]bool) string {
	for {
		name := fmt.Sprintf("u_%s", uuid.New().String()[:8])
		if !used[name] {
			return name
		}
	}
}
