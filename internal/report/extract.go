// Package report flattens solved blending models into tabular plan
// records and renders them for the CLI.
package report

import (
	"github.com/blendworks/blendplan/internal/optimize"
	"github.com/blendworks/blendplan/pkg/models"
)

// Extract flattens a solution into one record per (period, oil), ordered
// period-major with oils in catalog order. It is pure: the model and
// solution are only read. Solutions without values yield no records.
func Extract(m *optimize.Model, sol *optimize.Solution) []models.PlanRecord {
	if m == nil || !sol.HasValues() {
		return nil
	}

	records := make([]models.PlanRecord, 0, len(m.Periods)*len(m.Oils))
	for _, t := range m.Periods {
		for _, o := range m.Oils {
			records = append(records, models.PlanRecord{
				Period: t,
				Oil:    o.ID,
				Buy:    sol.Value(m.Buy(o.ID, t)),
				Use:    sol.Value(m.Use(o.ID, t)),
				Stock:  sol.Value(m.Stock(o.ID, t)),
			})
		}
	}
	return records
}
