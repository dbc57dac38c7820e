package solve

import (
	"context"

	"github.com/blendworks/blendplan/internal/optimize"
	"github.com/blendworks/blendplan/pkg/models"
)

// CheckTolerance is the numerical tolerance the checking solver applies
// when verifying bounds and constraints.
const CheckTolerance = 1e-6

// Candidate proposes a complete assignment for a model, keyed by variable
// name; variables absent from the map are taken as zero.
type Candidate func(m *optimize.Model) map[string]float64

// Checker is a deterministic stand-in solver: it never searches, it only
// verifies the candidate assignment against every bound and constraint and
// evaluates the objective. Feasible candidates come back as StatusFeasible
// (never StatusOptimal — nothing here proves optimality); infeasible ones
// as StatusInfeasible. Used by tests and dry runs, where depending on a
// real optimization engine would be wrong.
type Checker struct {
	candidate Candidate
}

// NewChecker creates a checking solver around a candidate assignment.
func NewChecker(candidate Candidate) *Checker {
	return &Checker{candidate: candidate}
}

// Solve verifies the candidate against the model.
func (c *Checker) Solve(ctx context.Context, m *optimize.Model) (*optimize.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := make([]float64, len(m.Vars()))
	for name, value := range c.candidate(m) {
		if v := m.Var(name); v != nil {
			values[v.ID] = value
		}
	}

	if err := m.CheckFeasible(values, CheckTolerance); err != nil {
		return &optimize.Solution{Status: models.StatusInfeasible}, nil
	}

	return &optimize.Solution{
		Status:    models.StatusFeasible,
		Values:    values,
		Objective: m.Objective().Value(values),
	}, nil
}

// HoldPlan is the simplest candidate: buy nothing, refine nothing, and let
// every oil's stock sit at the initial level all horizon. It is feasible
// exactly when the initial stock already meets the final-stock target, and
// exercises the degenerate zero-production path through the hardness
// constraints.
func HoldPlan(initialStock float64) Candidate {
	return func(m *optimize.Model) map[string]float64 {
		values := make(map[string]float64, len(m.Oils)*len(m.Periods))
		for _, o := range m.Oils {
			for _, t := range m.Periods {
				values[m.Stock(o.ID, t).Name] = initialStock
			}
		}
		return values
	}
}
