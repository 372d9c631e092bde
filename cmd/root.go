// Package cmd implements the command-line entrypoint: cobra flags and
// wiring for config -> orchestrate -> report, split into a root command
// and a run subcommand.
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sched-sim/sched-sim/analysis"
	"github.com/sched-sim/sched-sim/config"
	"github.com/sched-sim/sched-sim/orchestrate"
	"github.com/sched-sim/sched-sim/report"
)

var (
	outputPath string
	logLevel   string
	horizon    int64
	gridSize   int
	simHorizon int64
	overrides  string
)

var rootCmd = &cobra.Command{
	Use:   "sched-sim",
	Short: "Hierarchical real-time scheduling analysis and simulation engine",
}

var runCmd = &cobra.Command{
	Use:   "run <input_dir>",
	Short: "Analyze and simulate a platform described by tasks.csv, architecture.csv, budgets.csv",
	Args:  cobra.ExactArgs(1),
	Run:   run,
}

// Execute runs the root command, exiting 1 on any returned error: exit
// 0 on success, 1 on missing input file or a fatal parse error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&outputPath, "output", "Output/solution.csv", "Path to the solution CSV")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().Int64Var(&horizon, "horizon", 0, "Override the BDR synthesis analysis horizon H (default 100)")
	runCmd.Flags().IntVar(&gridSize, "grid", 0, "Override the alpha grid resolution G (default 200)")
	runCmd.Flags().Int64Var(&simHorizon, "sim-horizon", 0, "Override the simulation horizon (default: LCM of task periods)")
	runCmd.Flags().StringVar(&overrides, "overrides", "", "Optional YAML file overriding analysis_horizon/grid_size/sim_horizon")

	rootCmd.AddCommand(runCmd)
}

func run(cmd *cobra.Command, args []string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level %q", logLevel)
	}
	logrus.SetLevel(level)

	logFile, err := openLogFile()
	if err != nil {
		logrus.Warnf("could not open textual log file, logging to stdout only: %v", err)
	} else {
		defer logFile.Close() //nolint:errcheck // best-effort log sink
		logrus.SetOutput(io.MultiWriter(os.Stdout, logFile))
	}

	inputDir := args[0]

	if gridSize > 0 {
		analysis.GridSize = gridSize
	}
	if overrides != "" {
		applyOverrides(overrides)
	}

	logrus.Infof("reading platform from %s", inputDir)
	platform, err := config.LoadPlatform(inputDir)
	if err != nil {
		// Both ConfigMissing and ConfigMalformed are fatal: they are the
		// only errors that abort the whole run.
		logrus.Fatalf("%v", err)
	}

	for _, core := range platform.Cores {
		logrus.Infof("core %s: speed=%.2f components=%d", core.ID, core.Speed, len(core.Components))
		for _, comp := range core.Components {
			logrus.Infof("  component %s: policy=%s tasks=%d", comp.ID, comp.Policy, len(comp.Tasks))
		}
	}

	opts := orchestrate.Options{AnalysisHorizon: horizon, SimHorizon: simHorizon}
	plan, results := orchestrate.Execute(platform, opts)

	r := report.Aggregate(platform, plan, results)
	report.PrintSummary(logrus.StandardLogger().Out, plan, r)

	if err := report.WriteSolutionCSV(r, outputPath); err != nil {
		logrus.Fatalf("writing solution csv: %v", err)
	}
	logrus.Infof("wrote %s", outputPath)
}

func applyOverrides(path string) {
	ov, err := config.LoadOverrides(path)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	if ov.AnalysisHorizon != nil {
		horizon = *ov.AnalysisHorizon
	}
	if ov.GridSize != nil {
		analysis.GridSize = *ov.GridSize
	}
	if ov.SimHorizon != nil {
		simHorizon = *ov.SimHorizon
	}
}

func openLogFile() (*os.File, error) {
	if err := os.MkdirAll("Output", 0o755); err != nil {
		return nil, fmt.Errorf("creating Output directory: %w", err)
	}
	name := fmt.Sprintf("Output/run-%s.log", time.Now().Format("20060102-150405"))
	return os.Create(name)
}
