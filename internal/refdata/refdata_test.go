package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blendworks/blendplan/pkg/models"
)

// ── Built-in dataset ──

func TestReferenceIsComplete(t *testing.T) {
	scn := Reference()

	if err := scn.Validate(false); err != nil {
		t.Errorf("continuous validation: %v", err)
	}
	if err := scn.Validate(true); err != nil {
		t.Errorf("discrete validation: %v", err)
	}

	if len(scn.Oils) != 5 {
		t.Errorf("oil count: got %d, want 5", len(scn.Oils))
	}
	if scn.Prices.Months != 6 {
		t.Errorf("months: got %d, want 6", scn.Prices.Months)
	}

	veg, nonVeg := 0, 0
	for _, o := range scn.Oils {
		switch o.Category {
		case models.Vegetable:
			veg++
		case models.NonVegetable:
			nonVeg++
		}
	}
	if veg != 2 || nonVeg != 3 {
		t.Errorf("category split: got %d veg / %d nonveg, want 2/3", veg, nonVeg)
	}

	// Spot-check prices against the original table.
	if price, _ := scn.Prices.Price("OIL3", 3); price != 95 {
		t.Errorf("OIL3 month 3: got %.0f, want 95", price)
	}
	if price, _ := scn.Prices.Price("VEG1", 6); price != 90 {
		t.Errorf("VEG1 month 6: got %.0f, want 90", price)
	}
}

// ── Validation ──

func TestValidateRejectsBadData(t *testing.T) {
	tests := []struct {
		name     string
		discrete bool
		mutate   func(*Scenario)
	}{
		{"empty catalog", false, func(s *Scenario) { s.Oils = nil }},
		{"zero horizon", false, func(s *Scenario) { s.Prices.Months = 0 }},
		{"duplicate id", false, func(s *Scenario) { s.Oils[1].ID = "VEG1" }},
		{"negative hardness", false, func(s *Scenario) { s.Oils[0].Hardness = -1 }},
		{"missing price cell", false, func(s *Scenario) {
			s.Prices.PerOil["VEG2"] = s.Prices.PerOil["VEG2"][:5]
		}},
		{"non-positive price", false, func(s *Scenario) {
			s.Prices.PerOil["OIL1"][2] = 0
		}},
		{"zero sale price", false, func(s *Scenario) { s.Params.ProductSalesPrice = 0 }},
		{"negative storage cost", false, func(s *Scenario) { s.Params.StorageCostPerTon = -1 }},
		{"initial stock above capacity", false, func(s *Scenario) { s.Params.InitialStock = 5000 }},
		{"inverted hardness range", false, func(s *Scenario) {
			s.Params.MinHardness = 7
			s.Params.MaxHardness = 6
		}},
		{"no min usage", true, func(s *Scenario) { s.Params.MinUsageIfUsed = 0 }},
		{"no ingredient cap", true, func(s *Scenario) { s.Params.MaxIngredientsPerMonth = 0 }},
		{"self dependency", true, func(s *Scenario) {
			s.Params.UsageDependencies = []models.UsageDependency{{Dependent: "OIL3", Prerequisite: "OIL3"}}
		}},
		{"unknown prerequisite", true, func(s *Scenario) {
			s.Params.UsageDependencies = []models.UsageDependency{{Dependent: "VEG1", Prerequisite: "GHEE"}}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scn := Reference()
			tc.mutate(&scn)
			if err := scn.Validate(tc.discrete); err == nil {
				t.Error("Validate() passed, want error")
			}
		})
	}
}

// Discrete-only gaps must not fail continuous validation.
func TestValidateModeScoping(t *testing.T) {
	scn := Reference()
	scn.Params.MinUsageIfUsed = 0
	scn.Params.MaxIngredientsPerMonth = 0
	scn.Params.UsageDependencies = nil

	if err := scn.Validate(false); err != nil {
		t.Errorf("continuous validation: %v", err)
	}
	if err := scn.Validate(true); err == nil {
		t.Error("discrete validation passed without discrete parameters")
	}
}

// ── Scenario files ──

const scenarioYAML = `name: two-oil
oils:
  - {id: SOY, category: Veg, hardness: 5.0}
  - {id: LARD, category: NonVeg, hardness: 4.0}
prices:
  months: 2
  per_oil:
    SOY: [100, 110]
    LARD: [90, 95]
params:
  storage_cost_per_ton: 2
  product_sales_price: 140
  max_veg_refine_per_month: 100
  max_nonveg_refine_per_month: 120
  storage_capacity_per_oil: 400
  initial_stock: 50
  target_final_stock: 50
  min_hardness: 4
  max_hardness: 5
  min_usage_if_used: 10
  max_ingredients_per_month: 2
  usage_dependencies:
    - {dependent: SOY, prerequisite: LARD}
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	scn, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if scn.Name != "two-oil" {
		t.Errorf("name: got %q, want %q", scn.Name, "two-oil")
	}
	if len(scn.Oils) != 2 || scn.Oils[1].ID != "LARD" {
		t.Errorf("oils not loaded: %+v", scn.Oils)
	}
	if scn.Oils[0].Category != models.Vegetable {
		t.Errorf("SOY category: got %q", scn.Oils[0].Category)
	}
	if price, ok := scn.Prices.Price("LARD", 2); !ok || price != 95 {
		t.Errorf("LARD month 2 price: got %.0f (ok=%v), want 95", price, ok)
	}
	if scn.Params.MaxIngredientsPerMonth != 2 {
		t.Errorf("max ingredients: got %d, want 2", scn.Params.MaxIngredientsPerMonth)
	}
	if len(scn.Params.UsageDependencies) != 1 || scn.Params.UsageDependencies[0].Prerequisite != "LARD" {
		t.Errorf("dependencies not loaded: %+v", scn.Params.UsageDependencies)
	}

	if err := scn.Validate(true); err != nil {
		t.Errorf("loaded scenario validation: %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile() on missing file: got nil error")
	}
}
