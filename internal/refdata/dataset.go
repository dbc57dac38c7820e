// Package refdata supplies and validates the reference data a planning
// scenario is built from: the oil catalog, the forecast price table, and
// the scalar parameters. It ships with the classic 5-oil, 6-month food
// manufacture dataset (H. Paul Williams) and can load scenario files.
package refdata

import "github.com/blendworks/blendplan/pkg/models"

// Scenario bundles everything the model builder needs for one run.
type Scenario struct {
	Name   string             `mapstructure:"name"`
	Oils   []models.Oil       `mapstructure:"oils"`
	Prices models.PriceTable  `mapstructure:"prices"`
	Params models.Parameters  `mapstructure:"params"`
}

// Reference returns the built-in 6-month food manufacture scenario.
// Characteristics and prices follow the original dataset (Jan–Jun, £/ton).
func Reference() Scenario {
	return Scenario{
		Name: "food-manufacture",
		Oils: []models.Oil{
			{ID: "VEG1", Category: models.Vegetable, Hardness: 8.8},
			{ID: "VEG2", Category: models.Vegetable, Hardness: 6.1},
			{ID: "OIL1", Category: models.NonVegetable, Hardness: 2.0},
			{ID: "OIL2", Category: models.NonVegetable, Hardness: 4.2},
			{ID: "OIL3", Category: models.NonVegetable, Hardness: 5.0},
		},
		Prices: models.PriceTable{
			Months: 6,
			PerOil: map[string][]float64{
				"VEG1": {110, 130, 110, 120, 100, 90},
				"VEG2": {120, 130, 140, 110, 120, 100},
				"OIL1": {130, 110, 130, 120, 150, 140},
				"OIL2": {110, 90, 100, 120, 110, 80},
				"OIL3": {115, 115, 95, 125, 105, 135},
			},
		},
		Params: models.Parameters{
			StorageCostPerTon:       5.0,
			ProductSalesPrice:       150.0,
			MaxVegRefinePerMonth:    200.0,
			MaxNonVegRefinePerMonth: 250.0,
			StorageCapacityPerOil:   1000.0,
			InitialStock:            500.0,
			TargetFinalStock:        500.0,
			MinHardness:             3.0,
			MaxHardness:             6.0,
			MinUsageIfUsed:          20.0,
			MaxIngredientsPerMonth:  3,
			UsageDependencies: []models.UsageDependency{
				{Dependent: "VEG1", Prerequisite: "OIL3"},
				{Dependent: "VEG2", Prerequisite: "OIL3"},
			},
		},
	}
}

// ReferenceProfit is the known optimal continuous-mode profit for the
// built-in scenario, used as a regression baseline.
const ReferenceProfit = 107842.59
