package optimize

import (
	"math"

	"github.com/blendworks/blendplan/internal/refdata"
	"github.com/blendworks/blendplan/pkg/models"
)

// Build assembles the blending model for a scenario. With discrete false
// the model is a pure LP; with discrete true it additionally carries the
// binary IsUsed indicators and the logical constraint families, making it
// a MIP. Build is a pure function of its inputs: the same scenario and
// mode always produce a structurally identical model.
//
// Build fails with a *refdata.ValidationError when the price table does
// not cover every (oil, period) pair or a parameter required by the
// selected mode is missing.
func Build(scn refdata.Scenario, discrete bool) (*Model, error) {
	if err := scn.Validate(discrete); err != nil {
		return nil, err
	}

	b := &builder{
		m: &Model{
			Oils:     scn.Oils,
			Periods:  scn.Prices.Periods(),
			Discrete: discrete,
			byName:   make(map[string]*Var),
		},
		scn: scn,
		// Grouping is computed once from the catalog; every constraint
		// family indexes into it instead of re-filtering the oil list.
		byCategory: groupByCategory(scn.Oils),
	}

	b.declareVariables(discrete)

	b.inventoryBalance()
	b.finalStockTarget()
	b.categoryCapacity()
	b.productionDefinition()
	b.hardnessBounds()

	if discrete {
		b.usageLinking()
		b.minimumThreshold()
		b.maxIngredients()
		b.usageDependencies()
	}

	b.profitObjective()

	return b.m, nil
}

type builder struct {
	m          *Model
	scn        refdata.Scenario
	byCategory map[models.OilCategory][]models.Oil
}

func groupByCategory(oils []models.Oil) map[models.OilCategory][]models.Oil {
	grouped := make(map[models.OilCategory][]models.Oil, 2)
	for _, o := range oils {
		grouped[o.Category] = append(grouped[o.Category], o)
	}
	return grouped
}

// declareVariables creates every decision variable with its domain and
// bounds. Stock is bounded above by the per-oil storage capacity; all
// other continuous variables are unbounded above.
func (b *builder) declareVariables(discrete bool) {
	p := b.scn.Params
	for _, o := range b.scn.Oils {
		for _, t := range b.m.Periods {
			b.m.newVar(varName("Buy", o.ID, t), Continuous, 0, math.Inf(1))
			b.m.newVar(varName("Use", o.ID, t), Continuous, 0, math.Inf(1))
			b.m.newVar(varName("Stock", o.ID, t), Continuous, 0, p.StorageCapacityPerOil)
		}
	}
	for _, t := range b.m.Periods {
		b.m.newVar(varName2("Produce", t), Continuous, 0, math.Inf(1))
	}
	if discrete {
		for _, o := range b.scn.Oils {
			for _, t := range b.m.Periods {
				b.m.newVar(varName("IsUsed", o.ID, t), Binary, 0, 1)
			}
		}
	}
}

// bigM returns the linking constant for one oil: the monthly refining cap
// of its category, the largest volume of that oil any feasible plan can
// refine in a month. Derived rather than hardcoded, so changing a capacity
// parameter can never silently cut off feasible solutions.
func (b *builder) bigM(o models.Oil) float64 {
	return b.scn.Params.RefineCap(o.Category)
}
