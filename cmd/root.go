package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/sqsim/sqsim/sim"
)

var (
	// CLI flags for the (s, Q) policy, mirroring the reference tool's inputs
	seed             int64     // Seed for demand generation
	days             int       // Days to simulate
	initialInventory int       // On-hand units at day 0
	reorderPoint     int       // s: reorder at or below this level
	orderQuantity    int       // Q: units per replenishment order
	leadTime         int       // L: days between order placement and arrival
	meanDemand       float64   // Mean daily demand (Poisson rate)
	logLevel         string    // Log verbosity level
	showTable        bool      // Print the per-day table
	scenarios        bool      // Run the demand-mean comparison sweep
	demandOffsets    []float64 // Demand-mean perturbations for the sweep
	configPath       string    // Optional YAML experiment file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sqsim",
	Short: "Day-by-day simulator for (s, Q) inventory policies",
}

// recommendedBounds mirrors the reference tool's input controls. Values
// outside these ranges are legal as far as the engine is concerned, so they
// only draw a warning here.
var recommendedBounds = []struct {
	name     string
	value    func() float64
	min, max float64
}{
	{"days", func() float64 { return float64(days) }, 15, 120},
	{"initial-inventory", func() float64 { return float64(initialInventory) }, 0, 2000},
	{"reorder-point", func() float64 { return float64(reorderPoint) }, 1, 500},
	{"order-quantity", func() float64 { return float64(orderQuantity) }, 1, 1000},
	{"lead-time", func() float64 { return float64(leadTime) }, 1, 15},
	{"mean-demand", func() float64 { return meanDemand }, 1, 50},
}

func warnOutOfRecommendedRange() {
	for _, b := range recommendedBounds {
		if v := b.value(); v < b.min || v > b.max {
			logrus.Warnf("--%s=%v is outside the recommended range [%v, %v]", b.name, v, b.min, b.max)
		}
	}
}

// applySpec copies experiment file values into the flag variables, keeping
// any value the user set explicitly on the command line.
func applySpec(spec *sim.ExperimentSpec, changed func(name string) bool) {
	if !changed("seed") {
		seed = spec.Seed
	}
	if !changed("days") {
		days = spec.Days
	}
	if !changed("initial-inventory") {
		initialInventory = spec.InitialInventory
	}
	if !changed("reorder-point") {
		reorderPoint = spec.ReorderPoint
	}
	if !changed("order-quantity") {
		orderQuantity = spec.OrderQuantity
	}
	if !changed("lead-time") {
		leadTime = spec.LeadTime
	}
	if !changed("mean-demand") {
		meanDemand = spec.MeanDemand
	}
	if !changed("scenarios") {
		scenarios = spec.Scenarios
	}
	if !changed("demand-offsets") && len(spec.DemandOffsets) > 0 {
		demandOffsets = spec.DemandOffsets
	}
}

func printDayTable(run *sim.SimulationRun) {
	if run.Scenario != "" {
		fmt.Printf("--- Daily Records [%s] ---\n", run.Scenario)
	} else {
		fmt.Println("--- Daily Records ---")
	}
	fmt.Printf("%5s %8s %8s %10s %10s\n", "Day", "Demand", "Sales", "Shortfall", "Inventory")
	for _, r := range run.Records {
		fmt.Printf("%5d %8d %8d %10d %10d\n", r.Day, r.Demand, r.Sales, r.Shortfall, r.InventoryEnd)
	}
}

func report(run *sim.SimulationRun) {
	if showTable {
		printDayTable(run)
	}
	summary := sim.Summarize(run)
	summary.Print()

	fmt.Println("=== Generated Conclusions ===")
	for _, msg := range sim.Assess(summary) {
		fmt.Printf("- %s\n", msg)
	}
}

// runCmd executes the simulation using parameters from CLI flags and the
// optional experiment file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the (s, Q) inventory simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if configPath != "" {
			spec, err := sim.LoadExperimentSpec(configPath)
			if err != nil {
				logrus.Fatalf("unable to read experiment spec: %v", err)
			}
			logrus.Infof("Using experiment spec %v", configPath)
			applySpec(spec, cmd.Flags().Changed)
		}

		warnOutOfRecommendedRange()

		policy := sim.Policy{
			Horizon:          days,
			InitialInventory: initialInventory,
			ReorderPoint:     reorderPoint,
			OrderQuantity:    orderQuantity,
			LeadTime:         leadTime,
			MeanDemand:       meanDemand,
		}
		if err := policy.Validate(); err != nil {
			logrus.Fatalf("Invalid policy: %v", err)
		}

		logrus.Infof("Starting simulation with horizon=%d days, I0=%d, s=%d, Q=%d, L=%d, mean demand=%.1f, seed=%d",
			days, initialInventory, reorderPoint, orderQuantity, leadTime, meanDemand, seed)

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))

		if scenarios {
			runs, err := sim.Sweep(policy, demandOffsets, rng)
			if err != nil {
				logrus.Fatalf("Scenario sweep failed: %v", err)
			}
			for _, run := range runs {
				report(run)
			}
		} else {
			src := sim.NewPoissonSource(policy.MeanDemand, rng.ForSubsystem(sim.SubsystemDemand))
			run, err := sim.Simulate(policy, src)
			if err != nil {
				logrus.Fatalf("Simulation failed: %v", err)
			}
			report(run)
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random demand generation")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// (s, Q) policy configs
	runCmd.Flags().IntVar(&days, "days", 60, "Number of days to simulate")
	runCmd.Flags().IntVar(&initialInventory, "initial-inventory", 120, "On-hand inventory at day 0")
	runCmd.Flags().IntVar(&reorderPoint, "reorder-point", 50, "Reorder point s")
	runCmd.Flags().IntVar(&orderQuantity, "order-quantity", 100, "Order quantity Q")
	runCmd.Flags().IntVar(&leadTime, "lead-time", 3, "Lead time L in days")
	runCmd.Flags().Float64Var(&meanDemand, "mean-demand", 12, "Mean daily demand")

	// Output and sweep configs
	runCmd.Flags().BoolVar(&showTable, "table", false, "Print the per-day results table")
	runCmd.Flags().BoolVar(&scenarios, "scenarios", false, "Run the demand-mean comparison sweep")
	runCmd.Flags().Float64SliceVar(&demandOffsets, "demand-offsets", []float64{-3, 0, 3}, "Comma-separated demand-mean offsets for the sweep")
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML experiment spec")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
