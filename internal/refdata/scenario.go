package refdata

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadFile reads a scenario from a YAML file. The file layout mirrors the
// Scenario struct:
//
//	name: my-scenario
//	oils:
//	  - {id: VEG1, category: Veg, hardness: 8.8}
//	prices:
//	  months: 6
//	  per_oil:
//	    VEG1: [110, 130, 110, 120, 100, 90]
//	params:
//	  product_sales_price: 150
//	  ...
//
// The loaded scenario is not validated here; callers validate for the mode
// they are about to build.
func LoadFile(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("reading scenario file %s: %w", path, err)
	}

	var s Scenario
	if err := v.Unmarshal(&s); err != nil {
		return Scenario{}, fmt.Errorf("unmarshaling scenario file %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}
