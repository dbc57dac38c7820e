// Package models defines the core data structures used throughout blendplan.
package models

import "fmt"

// OilCategory groups raw oils by the refining line that processes them.
type OilCategory string

const (
	Vegetable    OilCategory = "Veg"
	NonVegetable OilCategory = "NonVeg"
)

// Categories returns all oil categories in display order.
func Categories() []OilCategory {
	return []OilCategory{Vegetable, NonVegetable}
}

// Oil is an immutable reference entity describing one raw input.
type Oil struct {
	ID       string      `json:"id"        mapstructure:"id"`       // e.g., "VEG1"
	Category OilCategory `json:"category"  mapstructure:"category"` // "Veg" or "NonVeg"
	Hardness float64     `json:"hardness"  mapstructure:"hardness"` // quality attribute, non-negative
}

// PriceTable holds forecasted purchase prices per oil per period.
// Periods are numbered 1..Months; PerOil[id][t-1] is the price of id in period t.
type PriceTable struct {
	Months int                  `json:"months"  mapstructure:"months"`
	PerOil map[string][]float64 `json:"per_oil" mapstructure:"per_oil"`
}

// Price returns the purchase price of the given oil in period t (1-based).
// The second return is false when the table has no entry for the pair.
func (p PriceTable) Price(oilID string, t int) (float64, bool) {
	row, ok := p.PerOil[oilID]
	if !ok || t < 1 || t > len(row) {
		return 0, false
	}
	return row[t-1], true
}

// Periods returns the ordered period indices 1..Months.
func (p PriceTable) Periods() []int {
	out := make([]int, p.Months)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// UsageDependency encodes a business rule: the dependent oil may only be
// used in a period when the prerequisite oil is also used in that period.
type UsageDependency struct {
	Dependent    string `json:"dependent"    mapstructure:"dependent"`
	Prerequisite string `json:"prerequisite" mapstructure:"prerequisite"`
}

// Parameters holds the scalar business constraints for a planning scenario.
// The discrete-mode fields are only consulted when discrete logic is enabled.
type Parameters struct {
	StorageCostPerTon       float64 `json:"storage_cost_per_ton"        mapstructure:"storage_cost_per_ton"`
	ProductSalesPrice       float64 `json:"product_sales_price"         mapstructure:"product_sales_price"`
	MaxVegRefinePerMonth    float64 `json:"max_veg_refine_per_month"    mapstructure:"max_veg_refine_per_month"`
	MaxNonVegRefinePerMonth float64 `json:"max_nonveg_refine_per_month" mapstructure:"max_nonveg_refine_per_month"`
	StorageCapacityPerOil   float64 `json:"storage_capacity_per_oil"    mapstructure:"storage_capacity_per_oil"`
	InitialStock            float64 `json:"initial_stock"               mapstructure:"initial_stock"`
	TargetFinalStock        float64 `json:"target_final_stock"          mapstructure:"target_final_stock"`
	MinHardness             float64 `json:"min_hardness"                mapstructure:"min_hardness"`
	MaxHardness             float64 `json:"max_hardness"                mapstructure:"max_hardness"`

	// Discrete-mode only.
	MinUsageIfUsed         float64           `json:"min_usage_if_used"          mapstructure:"min_usage_if_used"`
	MaxIngredientsPerMonth int               `json:"max_ingredients_per_month"  mapstructure:"max_ingredients_per_month"`
	UsageDependencies      []UsageDependency `json:"usage_dependencies"         mapstructure:"usage_dependencies"`
}

// RefineCap returns the monthly refining capacity for a category.
func (p Parameters) RefineCap(cat OilCategory) float64 {
	if cat == Vegetable {
		return p.MaxVegRefinePerMonth
	}
	return p.MaxNonVegRefinePerMonth
}

// PlanRecord is one row of the flattened plan: the purchase, refine and
// closing-stock decision for one oil in one period.
type PlanRecord struct {
	Period int     `json:"period"`
	Oil    string  `json:"oil"`
	Buy    float64 `json:"buy"`
	Use    float64 `json:"use"`
	Stock  float64 `json:"stock"`
}

// SolveStatus classifies the outcome reported by a solver.
type SolveStatus string

const (
	StatusOptimal    SolveStatus = "optimal"
	StatusFeasible   SolveStatus = "feasible" // incumbent found but optimality not proven
	StatusInfeasible SolveStatus = "infeasible"
	StatusUnbounded  SolveStatus = "unbounded"
	StatusError      SolveStatus = "error"
)

// ScenarioResult is the outcome of one build+solve run.
type ScenarioResult struct {
	Name      string       `json:"name"`     // e.g., "continuous", "discrete"
	Discrete  bool         `json:"discrete"` // whether integer logic was active
	Status    SolveStatus  `json:"status"`
	Profit    float64      `json:"profit"`
	Records   []PlanRecord `json:"records,omitempty"`
	SolveTime string       `json:"solve_time,omitempty"`
}

// ScenarioName returns the conventional name for a planning mode.
func ScenarioName(discrete bool) string {
	if discrete {
		return "discrete"
	}
	return "continuous"
}

// Validate performs basic sanity checks on a single oil entry.
func (o Oil) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("oil id is empty")
	}
	if o.Category != Vegetable && o.Category != NonVegetable {
		return fmt.Errorf("oil %s: unknown category %q", o.ID, o.Category)
	}
	if o.Hardness < 0 {
		return fmt.Errorf("oil %s: negative hardness %.2f", o.ID, o.Hardness)
	}
	return nil
}
