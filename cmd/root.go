package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cedarsim/cedarsim/sim"
	"github.com/cedarsim/cedarsim/sim/scenario"
	"github.com/cedarsim/cedarsim/sim/trace"
)

var (
	scenarioPath string // YAML scenario (locations, SKU records, demand window)
	skuCSVPath   string // optional CSV overriding the scenario's SKU records
	horizonWeeks int64  // simulation horizon (in weeks, 0 = run until the queue drains)
	logLevel     string // log verbosity level
	workers      int    // >1 runs one engine per SKU id on a worker pool
	traceLevel   string // trace verbosity ("none" or "events")
	summaryPath  string // optional JSON summary output path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cedarsim",
	Short: "Discrete-event simulator for hospital supply inventory",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the inventory simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if scenarioPath == "" {
			logrus.Fatal("No scenario file provided. Exiting simulation.")
		}
		if !trace.IsValidLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		spec, err := scenario.Load(scenarioPath)
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}
		if skuCSVPath != "" {
			records, err := scenario.LoadSKURecordsCSV(skuCSVPath)
			if err != nil {
				logrus.Fatalf("Unable to load SKU records: %v", err)
			}
			spec.SKUs = records
		}

		net, err := scenario.Build(spec)
		if err != nil {
			logrus.Fatalf("Topology construction failed: %v", err)
		}

		var runTrace *trace.RunTrace
		if trace.Level(traceLevel) == trace.LevelEvents {
			runTrace = trace.New(trace.Config{Level: trace.LevelEvents})
		}

		cfg := sim.EngineConfig{
			HorizonWeeks: horizonWeeks,
			Trace:        runTrace,
		}
		window := sim.DemandWindow{StartWeek: spec.Demand.StartWeek, EndWeek: spec.Demand.EndWeek}

		logrus.Infof("Starting simulation: horizon=%d weeks, demand weeks [%d,%d), workers=%d",
			horizonWeeks, window.StartWeek, window.EndWeek, workers)
		startTime := time.Now()

		var metrics *sim.Metrics
		if workers > 1 {
			metrics, err = sim.RunShards(net, cfg, sim.ParallelConfig{Workers: workers, Window: window})
			if err != nil {
				logrus.Fatalf("Parallel run failed: %v", err)
			}
		} else {
			s, err := sim.NewSimulator(net, cfg)
			if err != nil {
				logrus.Fatalf("Engine construction failed: %v", err)
			}
			s.SeedWeeklyDemand(window)
			s.Run()
			metrics = s.Metrics
		}

		metrics.Print()
		printLocationReport(net)
		if summaryPath != "" {
			if err := writeSummary(summaryPath, metrics, runTrace); err != nil {
				logrus.Fatalf("Unable to write summary: %v", err)
			}
			logrus.Infof("Summary written to %s", summaryPath)
		}

		logrus.Infof("Simulation complete in %s.", time.Since(startTime).Round(time.Millisecond))
	},
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to the YAML scenario file")
	runCmd.Flags().StringVar(&skuCSVPath, "sku-records", "", "Optional CSV of SKU records overriding the scenario's")
	runCmd.Flags().Int64Var(&horizonWeeks, "horizon-weeks", 0, "Simulation horizon in weeks (0 = drain the event queue)")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().IntVar(&workers, "workers", 1, "Run one engine per SKU id on this many workers (1 = sequential)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, events)")
	runCmd.Flags().StringVar(&summaryPath, "summary", "", "Optional path for a JSON run summary")
	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
