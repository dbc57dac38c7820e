// Package solve connects assembled blending models to optimization
// engines. The core capability is a single method, Solve; the model
// builder and constraint library never see a concrete engine.
package solve

import (
	"context"
	"time"

	"github.com/blendworks/blendplan/internal/optimize"
)

// Solver is the capability the planning core depends on. Implementations
// must treat the model as read-only; solves are deterministic given the
// same input, so callers never retry a failed solve.
type Solver interface {
	Solve(ctx context.Context, m *optimize.Model) (*optimize.Solution, error)
}

// Options are engine tuning knobs passed through opaquely by the caller.
type Options struct {
	TimeLimit time.Duration // 0 means no limit
	MIPGap    float64       // relative optimality gap, 0 for exact
	Verbose   bool          // engine log output
}

// DefaultOptions returns the options used when the caller supplies none.
func DefaultOptions() Options {
	return Options{TimeLimit: 30 * time.Second}
}
