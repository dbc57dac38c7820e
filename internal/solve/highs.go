package solve

import (
	"context"
	"fmt"
	"math"

	"github.com/nextmv-io/sdk/mip"

	"github.com/blendworks/blendplan/internal/optimize"
	"github.com/blendworks/blendplan/pkg/models"
)

// HiGHS solves models through the HiGHS engine via the nextmv MIP SDK.
// Continuous models are solved as LPs, discrete models as MIPs; the
// translation is the same either way because the variable domains carry
// the distinction.
type HiGHS struct {
	opts Options
}

// NewHiGHS creates a HiGHS-backed solver with the given options.
func NewHiGHS(opts Options) *HiGHS {
	return &HiGHS{opts: opts}
}

// Solve translates the model, runs the engine once, and maps the outcome
// back onto the model's variables. Engine failures (missing binary,
// license, crash) surface as errors, not as a Solution; infeasibility and
// unboundedness are outcomes, reported through the Solution status.
func (h *HiGHS) Solve(ctx context.Context, m *optimize.Model) (*optimize.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model := mip.NewModel()

	vars := make([]mip.Var, len(m.Vars()))
	for i, v := range m.Vars() {
		if v.Kind == optimize.Binary {
			vars[i] = model.NewBool()
			continue
		}
		upper := v.Upper
		if math.IsInf(upper, 1) {
			// HiGHS treats bounds at or above 1e30 as infinite.
			upper = 1e30
		}
		vars[i] = model.NewFloat(v.Lower, upper)
	}

	for _, c := range m.Constraints() {
		constraint := model.NewConstraint(senseOf(c.Sense), c.RHS)
		for _, t := range c.Terms {
			constraint.NewTerm(t.Coef, vars[t.Var.ID])
		}
	}

	obj := m.Objective()
	if obj.Maximize {
		model.Objective().SetMaximize()
	} else {
		model.Objective().SetMinimize()
	}
	for _, t := range obj.Terms {
		model.Objective().NewTerm(t.Coef, vars[t.Var.ID])
	}

	solver, err := mip.NewSolver("highs", model)
	if err != nil {
		return nil, fmt.Errorf("creating highs solver: %w", err)
	}

	solveOptions := mip.SolveOptions{}
	if h.opts.TimeLimit > 0 {
		solveOptions.Duration = h.opts.TimeLimit
	}
	solveOptions.MIP.Gap.Relative = h.opts.MIPGap
	verbosity := mip.Off
	if h.opts.Verbose {
		verbosity = mip.Low
	}
	solveOptions.Verbosity = verbosity

	solution, err := solver.Solve(solveOptions)
	if err != nil {
		return nil, fmt.Errorf("highs solve: %w", err)
	}

	out := &optimize.Solution{Status: models.StatusInfeasible}
	if solution != nil {
		out.Runtime = solution.RunTime()
	}
	if solution == nil || !solution.HasValues() {
		return out, nil
	}

	if solution.IsOptimal() {
		out.Status = models.StatusOptimal
	} else {
		out.Status = models.StatusFeasible
	}
	out.Objective = solution.ObjectiveValue()
	out.Values = make([]float64, len(vars))
	for i, v := range vars {
		out.Values[i] = solution.Value(v)
	}
	return out, nil
}

func senseOf(s optimize.Sense) mip.Sense {
	switch s {
	case optimize.LessEqual:
		return mip.LessThanOrEqual
	case optimize.GreaterEqual:
		return mip.GreaterThanOrEqual
	default:
		return mip.Equal
	}
}
