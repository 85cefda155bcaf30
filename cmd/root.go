package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cristian949/scd1022-simulacion/sim"
)

var (
	// CLI flags shared across subcommands
	logLevel string // Log verbosity level
	seed     int64  // Seed for the partitioned random source

	// Monte Carlo π flags
	piIterations int // Number of random points to draw

	// Random walk flags
	walkSteps int // Number of ±1 steps

	// M/M/1 queue flags
	arrivalRate float64 // λ, customer arrivals per unit time
	serviceRate float64 // μ, service completions per unit time
	horizon     float64 // Length of the simulated time window

	// Experiment spec flags
	configFile string // Path to a YAML experiment spec
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "simulacion",
	Short: "Classic stochastic simulations: Monte Carlo π, random walk, M/M/1 queue",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// demoCmd reproduces the classic demonstration run of all three
// simulations with fixed parameters.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the three demonstration simulations",
	Run: func(cmd *cobra.Command, args []string) {
		prng := sim.NewPartitionedRNG(sim.NewExperimentKey(seed))

		pi, err := sim.EstimatePi(prng.ForExperiment(sim.ExperimentMonteCarlo), 50000)
		if err != nil {
			logrus.Fatalf("π estimation failed: %v", err)
		}
		fmt.Printf("Estimate of π: %f\n", pi)

		pos, err := sim.RandomWalk(prng.ForExperiment(sim.ExperimentWalk), 100)
		if err != nil {
			logrus.Fatalf("random walk failed: %v", err)
		}
		fmt.Printf("Final position of a 100-step random walk: %d\n", pos)

		res, err := sim.SimulateMM1(prng.ForExperiment(sim.ExperimentQueue), 2.0, 3.0, 100.0)
		if err != nil {
			logrus.Fatalf("M/M/1 simulation failed: %v", err)
		}
		fmt.Printf("Mean time in system: %.2f, max queue depth: %d\n", res.MeanSojourn, res.MaxQueueDepth)
	},
}

// piCmd estimates π from a configurable number of samples.
var piCmd = &cobra.Command{
	Use:   "pi",
	Short: "Estimate π with the Monte Carlo method",
	Run: func(cmd *cobra.Command, args []string) {
		prng := sim.NewPartitionedRNG(sim.NewExperimentKey(seed))
		pi, err := sim.EstimatePi(prng.ForExperiment(sim.ExperimentMonteCarlo), piIterations)
		if err != nil {
			logrus.Fatalf("π estimation failed: %v", err)
		}
		fmt.Printf("Estimate of π after %d samples: %f\n", piIterations, pi)
	},
}

// walkCmd runs a one-dimensional random walk.
var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Run a one-dimensional random walk",
	Run: func(cmd *cobra.Command, args []string) {
		prng := sim.NewPartitionedRNG(sim.NewExperimentKey(seed))
		pos, err := sim.RandomWalk(prng.ForExperiment(sim.ExperimentWalk), walkSteps)
		if err != nil {
			logrus.Fatalf("random walk failed: %v", err)
		}
		fmt.Printf("Final position after %d steps: %d\n", walkSteps, pos)
	},
}

// mm1Cmd runs the discrete-event M/M/1 queue simulation.
var mm1Cmd = &cobra.Command{
	Use:   "mm1",
	Short: "Simulate a single-server Poisson (M/M/1) queue",
	Run: func(cmd *cobra.Command, args []string) {
		logrus.Infof("Starting M/M/1 run with λ=%.3f, μ=%.3f, horizon=%.1f, seed=%d",
			arrivalRate, serviceRate, horizon, seed)

		prng := sim.NewPartitionedRNG(sim.NewExperimentKey(seed))
		res, err := sim.SimulateMM1(prng.ForExperiment(sim.ExperimentQueue), arrivalRate, serviceRate, horizon)
		if err != nil {
			logrus.Fatalf("M/M/1 simulation failed: %v", err)
		}
		printQueueResult(&res)
	},
}

// runCmd executes experiments described in a YAML spec file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run experiments from a YAML spec file",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := sim.LoadExperimentSpec(configFile)
		if err != nil {
			logrus.Fatalf("Unable to load experiment spec: %v", err)
		}
		if cmd.Flags().Changed("seed") {
			spec.Seed = seed
		}

		report, err := spec.Run()
		if err != nil {
			logrus.Fatalf("Experiment run failed: %v", err)
		}
		if report.Pi != nil {
			fmt.Printf("Estimate of π after %d samples: %f\n", spec.MonteCarlo.Iterations, *report.Pi)
		}
		if report.Position != nil {
			fmt.Printf("Final position after %d steps: %d\n", spec.RandomWalk.Steps, *report.Position)
		}
		if report.Queue != nil {
			printQueueResult(report.Queue)
		}
	},
}

// printQueueResult displays the M/M/1 summary on standard output.
func printQueueResult(r *sim.QueueResult) {
	fmt.Println("=== M/M/1 Queue Metrics ===")
	fmt.Printf("Arrivals             : %d\n", r.Arrivals)
	fmt.Printf("Completed Customers  : %d\n", r.Completed)
	fmt.Printf("Mean Time in System  : %.4f\n", r.MeanSojourn)
	fmt.Printf("Max Queue Depth      : %d\n", r.MaxQueueDepth)
	if r.EndTime > 0 {
		fmt.Printf("Throughput           : %.4f customers/unit time\n", r.Throughput)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for the random source")

	piCmd.Flags().IntVar(&piIterations, "iterations", 100000, "Number of random points to draw")

	walkCmd.Flags().IntVar(&walkSteps, "steps", 1000, "Number of ±1 steps")

	mm1Cmd.Flags().Float64Var(&arrivalRate, "arrival-rate", 2.0, "Customer arrival rate λ (per unit time)")
	mm1Cmd.Flags().Float64Var(&serviceRate, "service-rate", 3.0, "Service completion rate μ (per unit time)")
	mm1Cmd.Flags().Float64Var(&horizon, "horizon", 1000.0, "Simulated time window length")

	runCmd.Flags().StringVar(&configFile, "config", "experiment.yaml", "Path to a YAML experiment spec")

	rootCmd.AddCommand(demoCmd, piCmd, walkCmd, mm1Cmd, runCmd)
}
