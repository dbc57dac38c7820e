// Package plan orchestrates a planning run: build the model from the
// scenario data, hand it to the solver once, and flatten the outcome into
// plan records.
package plan

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/blendworks/blendplan/internal/optimize"
	"github.com/blendworks/blendplan/internal/refdata"
	"github.com/blendworks/blendplan/internal/report"
	"github.com/blendworks/blendplan/internal/solve"
	"github.com/blendworks/blendplan/pkg/models"
)

// Planner runs scenarios against one solver. It holds no per-run state;
// every Run builds a fresh model, so concurrent runs need no coordination.
type Planner struct {
	solver solve.Solver
}

// New creates a planner backed by the given solver.
func New(solver solve.Solver) *Planner {
	return &Planner{solver: solver}
}

// Run builds and solves one scenario in the selected mode. Infeasible and
// unbounded outcomes are results, not errors; only validation failures and
// engine breakage return an error.
func (p *Planner) Run(ctx context.Context, scn refdata.Scenario, discrete bool) (*models.ScenarioResult, error) {
	m, err := optimize.Build(scn, discrete)
	if err != nil {
		return nil, fmt.Errorf("building %s model: %w", models.ScenarioName(discrete), err)
	}

	sol, err := p.solver.Solve(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("solving %s model: %w", models.ScenarioName(discrete), err)
	}

	result := &models.ScenarioResult{
		Name:     models.ScenarioName(discrete),
		Discrete: discrete,
		Status:   sol.Status,
	}
	if sol.HasValues() {
		result.Profit = sol.Objective
		result.Records = report.Extract(m, sol)
	}
	if sol.Runtime > 0 {
		result.SolveTime = sol.Runtime.String()
	}
	return result, nil
}

// Compare runs the continuous and discrete scenarios concurrently. Each
// run builds its own model from the shared read-only scenario data, so the
// two solves proceed independently.
func (p *Planner) Compare(ctx context.Context, scn refdata.Scenario) (continuous, discrete *models.ScenarioResult, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		continuous, err = p.Run(gctx, scn, false)
		return err
	})
	g.Go(func() error {
		var err error
		discrete, err = p.Run(gctx, scn, true)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return continuous, discrete, nil
}
