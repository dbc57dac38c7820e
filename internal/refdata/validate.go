package refdata

import (
	"fmt"
)

// ValidationError reports incomplete or inconsistent reference data.
// Validation fails fast, before a model is ever built; nothing is defaulted.
type ValidationError struct {
	Field  string // what part of the scenario is wrong, e.g., "prices[VEG1,3]"
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid scenario data: %s: %s", e.Field, e.Detail)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Detail: fmt.Sprintf(format, args...)}
}

// Validate checks a scenario for the selected mode. Discrete-only
// parameters are only required when discrete is true.
func (s Scenario) Validate(discrete bool) error {
	if len(s.Oils) == 0 {
		return invalid("oils", "catalog is empty")
	}
	if s.Prices.Months < 1 {
		return invalid("prices.months", "planning horizon must cover at least one period, got %d", s.Prices.Months)
	}

	seen := make(map[string]bool, len(s.Oils))
	for _, o := range s.Oils {
		if err := o.Validate(); err != nil {
			return invalid("oils", "%v", err)
		}
		if seen[o.ID] {
			return invalid("oils", "duplicate oil id %q", o.ID)
		}
		seen[o.ID] = true
	}

	// Every (oil, period) pair the model will index must be priced.
	for _, o := range s.Oils {
		for _, t := range s.Prices.Periods() {
			price, ok := s.Prices.Price(o.ID, t)
			if !ok {
				return invalid(fmt.Sprintf("prices[%s,%d]", o.ID, t), "missing price entry")
			}
			if price <= 0 {
				return invalid(fmt.Sprintf("prices[%s,%d]", o.ID, t), "price must be positive, got %.2f", price)
			}
		}
	}

	p := s.Params
	scalars := []struct {
		name  string
		value float64
	}{
		{"product_sales_price", p.ProductSalesPrice},
		{"max_veg_refine_per_month", p.MaxVegRefinePerMonth},
		{"max_nonveg_refine_per_month", p.MaxNonVegRefinePerMonth},
		{"storage_capacity_per_oil", p.StorageCapacityPerOil},
	}
	for _, sc := range scalars {
		if sc.value <= 0 {
			return invalid("params."+sc.name, "must be positive, got %.2f", sc.value)
		}
	}
	if p.StorageCostPerTon < 0 {
		return invalid("params.storage_cost_per_ton", "must be non-negative, got %.2f", p.StorageCostPerTon)
	}
	if p.InitialStock < 0 || p.InitialStock > p.StorageCapacityPerOil {
		return invalid("params.initial_stock", "must lie in [0, storage capacity], got %.2f", p.InitialStock)
	}
	if p.TargetFinalStock < 0 || p.TargetFinalStock > p.StorageCapacityPerOil {
		return invalid("params.target_final_stock", "must lie in [0, storage capacity], got %.2f", p.TargetFinalStock)
	}
	if p.MinHardness < 0 {
		return invalid("params.min_hardness", "must be non-negative, got %.2f", p.MinHardness)
	}
	if p.MaxHardness < p.MinHardness {
		return invalid("params.max_hardness", "upper hardness bound %.2f is below lower bound %.2f", p.MaxHardness, p.MinHardness)
	}

	if discrete {
		if p.MinUsageIfUsed <= 0 {
			return invalid("params.min_usage_if_used", "required in discrete mode, got %.2f", p.MinUsageIfUsed)
		}
		if p.MaxIngredientsPerMonth < 1 {
			return invalid("params.max_ingredients_per_month", "required in discrete mode, got %d", p.MaxIngredientsPerMonth)
		}
		for _, dep := range p.UsageDependencies {
			if !seen[dep.Dependent] {
				return invalid("params.usage_dependencies", "dependent oil %q is not in the catalog", dep.Dependent)
			}
			if !seen[dep.Prerequisite] {
				return invalid("params.usage_dependencies", "prerequisite oil %q is not in the catalog", dep.Prerequisite)
			}
			if dep.Dependent == dep.Prerequisite {
				return invalid("params.usage_dependencies", "oil %q depends on itself", dep.Dependent)
			}
		}
	}

	return nil
}
