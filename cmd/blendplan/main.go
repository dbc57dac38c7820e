// blendplan — multi-period raw-material blending planner
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blendworks/blendplan/internal/config"
	"github.com/blendworks/blendplan/internal/plan"
	"github.com/blendworks/blendplan/internal/refdata"
	"github.com/blendworks/blendplan/internal/report"
	"github.com/blendworks/blendplan/internal/solve"
	"github.com/blendworks/blendplan/pkg/models"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blendplan",
	Short: "blendplan — multi-period raw-material blending planner",
	Long: `blendplan plans a raw-material blending operation over a multi-month
horizon: given forecasted purchase prices, storage limits, and blend
quality constraints, it computes how much of each raw oil to buy, store,
and refine each month to maximize profit.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("data", "", "scenario data file (default: built-in food manufacture dataset)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(dataCmd)
}

// loadScenario returns the scenario selected by the --data flag, falling
// back to the built-in reference dataset.
func loadScenario(cmd *cobra.Command) (refdata.Scenario, error) {
	path, _ := cmd.Flags().GetString("data")
	if path == "" {
		return refdata.Reference(), nil
	}
	return refdata.LoadFile(path)
}

// newSolver builds the configured solver. Unknown providers fail here, up
// front, rather than mid-run.
func newSolver(dryRun bool, initialStock float64) (solve.Solver, error) {
	if dryRun {
		return solve.NewChecker(solve.HoldPlan(initialStock)), nil
	}
	switch cfg.Solver.Provider {
	case "highs":
		return solve.NewHiGHS(solve.Options{
			TimeLimit: cfg.Solver.TimeLimit(),
			MIPGap:    cfg.Solver.MIPGap,
			Verbose:   cfg.Solver.Verbose,
		}), nil
	default:
		return nil, fmt.Errorf("unknown solver provider %q", cfg.Solver.Provider)
	}
}

func printResult(result *models.ScenarioResult) error {
	if cfg.Output.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Print(report.Summary(result))
	return nil
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blendplan %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Plan Command ---

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build and solve one planning scenario",
	Long: `Build the blending model from the active scenario data and solve it.

By default the model is a pure LP. With --discrete, binary used/not-used
indicators and the discrete operating rules (minimum usage, ingredient
limit, usage dependencies) are added, making the model a MIP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		discrete, _ := cmd.Flags().GetBool("discrete")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		scn, err := loadScenario(cmd)
		if err != nil {
			return err
		}
		solver, err := newSolver(dryRun, scn.Params.InitialStock)
		if err != nil {
			return err
		}

		result, err := plan.New(solver).Run(cmd.Context(), scn, discrete)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

func init() {
	planCmd.Flags().Bool("discrete", false, "enable used/not-used logic and discrete operating rules (MIP)")
	planCmd.Flags().Bool("dry-run", false, "verify the hold-everything plan with the checking solver instead of optimizing")
}

// --- Compare Command ---

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Solve the continuous and discrete scenarios and compare profits",
	RunE: func(cmd *cobra.Command, args []string) error {
		scn, err := loadScenario(cmd)
		if err != nil {
			return err
		}
		solver, err := newSolver(false, scn.Params.InitialStock)
		if err != nil {
			return err
		}

		continuous, discrete, err := plan.New(solver).Compare(cmd.Context(), scn)
		if err != nil {
			return err
		}

		if cfg.Output.Format == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode([]*models.ScenarioResult{continuous, discrete})
		}
		fmt.Print(report.Comparison(continuous, discrete))
		return nil
	},
}

// --- Data Command ---

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Show the active scenario data",
	RunE: func(cmd *cobra.Command, args []string) error {
		scn, err := loadScenario(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Scenario: %s\n\n", scn.Name)
		fmt.Println("Oils:")
		for _, o := range scn.Oils {
			fmt.Printf("  %-6s %-7s hardness %.1f\n", o.ID, o.Category, o.Hardness)
		}

		fmt.Println("\nPrices (£/ton):")
		for _, o := range scn.Oils {
			fmt.Printf("  %-6s", o.ID)
			for _, t := range scn.Prices.Periods() {
				price, _ := scn.Prices.Price(o.ID, t)
				fmt.Printf(" %6.0f", price)
			}
			fmt.Println()
		}

		p := scn.Params
		fmt.Println("\nParameters:")
		fmt.Printf("  storage cost/ton:       %.1f\n", p.StorageCostPerTon)
		fmt.Printf("  product sale price:     %.1f\n", p.ProductSalesPrice)
		fmt.Printf("  veg refine cap/month:   %.1f\n", p.MaxVegRefinePerMonth)
		fmt.Printf("  nonveg refine cap/month: %.1f\n", p.MaxNonVegRefinePerMonth)
		fmt.Printf("  storage capacity/oil:   %.1f\n", p.StorageCapacityPerOil)
		fmt.Printf("  initial stock:          %.1f\n", p.InitialStock)
		fmt.Printf("  target final stock:     %.1f\n", p.TargetFinalStock)
		fmt.Printf("  hardness range:         [%.1f, %.1f]\n", p.MinHardness, p.MaxHardness)
		fmt.Printf("  min usage if used:      %.1f\n", p.MinUsageIfUsed)
		fmt.Printf("  max ingredients/month:  %d\n", p.MaxIngredientsPerMonth)
		for _, dep := range p.UsageDependencies {
			fmt.Printf("  rule: using %s requires %s\n", dep.Dependent, dep.Prerequisite)
		}
		return nil
	},
}
