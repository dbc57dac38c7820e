package optimize

import (
	"fmt"

	"github.com/blendworks/blendplan/pkg/models"
)

// Constraint families. Each method emits one constraint per element of its
// index set. All families are hard; there is no penalty or relaxation
// mechanism anywhere in the model.

// inventoryBalance enforces conservation of mass per oil per period:
//
//	Stock[o,t] = PrevStock(o,t) + Buy[o,t] − Use[o,t]
//
// where PrevStock is the initial-stock parameter in the first period and
// the previous period's closing stock otherwise.
func (b *builder) inventoryBalance() {
	initial := b.scn.Params.InitialStock
	first := b.m.Periods[0]
	for _, o := range b.scn.Oils {
		for _, t := range b.m.Periods {
			terms := []Term{
				{1, b.m.Stock(o.ID, t)},
				{-1, b.m.Buy(o.ID, t)},
				{1, b.m.Use(o.ID, t)},
			}
			rhs := 0.0
			if t == first {
				rhs = initial
			} else {
				terms = append(terms, Term{-1, b.m.Stock(o.ID, t-1)})
			}
			b.m.addConstraint(conName("Balance", o.ID, t), Equal, rhs, terms...)
		}
	}
}

// finalStockTarget pins the closing stock of every oil in the last period
// to the target level, so the optimizer cannot profit by liquidating
// inventory at the horizon end.
func (b *builder) finalStockTarget() {
	last := b.m.Periods[len(b.m.Periods)-1]
	for _, o := range b.scn.Oils {
		b.m.addConstraint(
			fmt.Sprintf("FinalStock[%s]", o.ID),
			Equal, b.scn.Params.TargetFinalStock,
			Term{1, b.m.Stock(o.ID, last)},
		)
	}
}

// categoryCapacity caps the total refined volume per category per period.
// Every category gets a constraint even when no oil belongs to it; an
// empty category degenerates to the vacuous 0 <= cap, never to a missing
// constraint.
func (b *builder) categoryCapacity() {
	for _, cat := range models.Categories() {
		limit := b.scn.Params.RefineCap(cat)
		for _, t := range b.m.Periods {
			terms := make([]Term, 0, len(b.byCategory[cat]))
			for _, o := range b.byCategory[cat] {
				terms = append(terms, Term{1, b.m.Use(o.ID, t)})
			}
			b.m.addConstraint(fmt.Sprintf("Capacity[%s,%d]", cat, t), LessEqual, limit, terms...)
		}
	}
}

// productionDefinition ties the finished-product volume to the blend
// inputs: Produce[t] = Σ Use[o,t].
func (b *builder) productionDefinition() {
	for _, t := range b.m.Periods {
		terms := []Term{{1, b.m.Produce(t)}}
		for _, o := range b.scn.Oils {
			terms = append(terms, Term{-1, b.m.Use(o.ID, t)})
		}
		b.m.addConstraint(varName2("ProduceDef", t), Equal, 0, terms...)
	}
}

// hardnessBounds keeps the production-weighted average hardness of the
// blend within [min, max]. The ratio constraint
//
//	min <= Σ h[o]·Use[o,t] / Produce[t] <= max
//
// is multiplied through by Produce[t] to stay linear:
//
//	Σ h[o]·Use[o,t] − min·Produce[t] >= 0
//	Σ h[o]·Use[o,t] − max·Produce[t] <= 0
//
// When Produce[t] is zero both sides collapse to 0 <= 0 and the bounds are
// vacuously satisfied, which is exactly the intended behaviour for an idle
// period.
func (b *builder) hardnessBounds() {
	p := b.scn.Params
	for _, t := range b.m.Periods {
		lower := make([]Term, 0, len(b.scn.Oils)+1)
		upper := make([]Term, 0, len(b.scn.Oils)+1)
		for _, o := range b.scn.Oils {
			lower = append(lower, Term{o.Hardness, b.m.Use(o.ID, t)})
			upper = append(upper, Term{o.Hardness, b.m.Use(o.ID, t)})
		}
		lower = append(lower, Term{-p.MinHardness, b.m.Produce(t)})
		upper = append(upper, Term{-p.MaxHardness, b.m.Produce(t)})
		b.m.addConstraint(varName2("HardnessMin", t), GreaterEqual, 0, lower...)
		b.m.addConstraint(varName2("HardnessMax", t), LessEqual, 0, upper...)
	}
}

// usageLinking forces IsUsed[o,t] to 1 whenever any volume of o is refined
// in t: Use[o,t] <= M·IsUsed[o,t]. M is the oil's category refining cap —
// no feasible Use can exceed it, and anything larger would only weaken the
// LP relaxation during branch-and-bound.
func (b *builder) usageLinking() {
	for _, o := range b.scn.Oils {
		bigM := b.bigM(o)
		for _, t := range b.m.Periods {
			b.m.addConstraint(
				conName("Link", o.ID, t), LessEqual, 0,
				Term{1, b.m.Use(o.ID, t)},
				Term{-bigM, b.m.IsUsed(o.ID, t)},
			)
		}
	}
}

// minimumThreshold forbids token usage: an oil is either left out of the
// blend or refined at meaningful volume, Use[o,t] >= min·IsUsed[o,t].
func (b *builder) minimumThreshold() {
	threshold := b.scn.Params.MinUsageIfUsed
	for _, o := range b.scn.Oils {
		for _, t := range b.m.Periods {
			b.m.addConstraint(
				conName("MinUse", o.ID, t), GreaterEqual, 0,
				Term{1, b.m.Use(o.ID, t)},
				Term{-threshold, b.m.IsUsed(o.ID, t)},
			)
		}
	}
}

// maxIngredients caps the number of distinct oils in each period's blend.
func (b *builder) maxIngredients() {
	limit := float64(b.scn.Params.MaxIngredientsPerMonth)
	for _, t := range b.m.Periods {
		terms := make([]Term, 0, len(b.scn.Oils))
		for _, o := range b.scn.Oils {
			terms = append(terms, Term{1, b.m.IsUsed(o.ID, t)})
		}
		b.m.addConstraint(varName2("MaxIngredients", t), LessEqual, limit, terms...)
	}
}

// usageDependencies encodes the configured implication pairs: in every
// period the dependent oil may only appear in the blend when its
// prerequisite does, IsUsed[dep,t] <= IsUsed[pre,t].
func (b *builder) usageDependencies() {
	for _, dep := range b.scn.Params.UsageDependencies {
		for _, t := range b.m.Periods {
			b.m.addConstraint(
				fmt.Sprintf("Requires[%s->%s,%d]", dep.Dependent, dep.Prerequisite, t),
				LessEqual, 0,
				Term{1, b.m.IsUsed(dep.Dependent, t)},
				Term{-1, b.m.IsUsed(dep.Prerequisite, t)},
			)
		}
	}
}

func conName(family, oilID string, t int) string {
	return fmt.Sprintf("%s[%s,%d]", family, oilID, t)
}
