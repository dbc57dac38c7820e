package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/blendworks/blendplan/pkg/models"
	"github.com/blendworks/blendplan/pkg/utils"
)

// ════════════════════════════════════════════════════════════════════
// Text Rendering — profit summary and month × oil pivot tables
// ════════════════════════════════════════════════════════════════════

// Summary renders one scenario result as text: the solve status, the
// profit, and the refining/buying plans pivoted month × oil.
func Summary(result *models.ScenarioResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "--- %s plan (%s) ---\n", result.Name, result.Status)
	if result.Status != models.StatusOptimal && result.Status != models.StatusFeasible {
		b.WriteString("No plan available.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Total Profit: %s\n", utils.FormatGBP(result.Profit))
	if result.SolveTime != "" {
		fmt.Fprintf(&b, "Solve Time:   %s\n", result.SolveTime)
	}

	b.WriteString("\nRefining Plan (Tons Used):\n")
	b.WriteString(pivot(result.Records, func(r models.PlanRecord) float64 { return r.Use }))

	b.WriteString("\nBuying Plan (Tons Bought):\n")
	b.WriteString(pivot(result.Records, func(r models.PlanRecord) float64 { return r.Buy }))

	b.WriteString("\nClosing Stock (Tons):\n")
	b.WriteString(pivot(result.Records, func(r models.PlanRecord) float64 { return r.Stock }))

	return b.String()
}

// Comparison renders the continuous and discrete results side by side with
// the cost of the discrete operating rules (the relaxation gap).
func Comparison(continuous, discrete *models.ScenarioResult) string {
	var b strings.Builder

	b.WriteString(Summary(continuous))
	b.WriteString("\n")
	b.WriteString(Summary(discrete))

	if continuous.Status == models.StatusOptimal && discrete.Status == models.StatusOptimal {
		gap := continuous.Profit - discrete.Profit
		fmt.Fprintf(&b, "\nCost of discrete operating rules: %s\n", utils.FormatGBP(gap))
	}
	return b.String()
}

// pivot renders one value column of the records as a month × oil table.
// Oils appear in first-seen order, which Extract guarantees is catalog
// order.
func pivot(records []models.PlanRecord, value func(models.PlanRecord) float64) string {
	oils := make([]string, 0, 8)
	seen := make(map[string]bool, 8)
	periods := make([]int, 0, 12)
	cells := make(map[int]map[string]float64)

	for _, r := range records {
		if !seen[r.Oil] {
			seen[r.Oil] = true
			oils = append(oils, r.Oil)
		}
		if _, ok := cells[r.Period]; !ok {
			cells[r.Period] = make(map[string]float64, 8)
			periods = append(periods, r.Period)
		}
		cells[r.Period][r.Oil] = value(r)
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(w, "Month")
	for _, oil := range oils {
		fmt.Fprintf(w, "\t%s", oil)
	}
	fmt.Fprintln(w)

	for _, t := range periods {
		fmt.Fprintf(w, "%d", t)
		for _, oil := range oils {
			fmt.Fprintf(w, "\t%s", utils.FormatTons(cells[t][oil]))
		}
		fmt.Fprintln(w)
	}

	w.Flush()
	return b.String()
}
