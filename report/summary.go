package report

import (
	"fmt"
	"io"

	"github.com/sched-sim/sched-sim/orchestrate"
)

// PrintSummary writes the textual static-analysis, parent-schedulability,
// simulation and component summary (the platform overview is logged
// separately by cmd):
// plain fmt.Fprintf blocks, one section per concern, so it can be
// mirrored to both stdout and a timestamped log file via io.MultiWriter.
func PrintSummary(w io.Writer, plan *orchestrate.Plan, report Report) {
	fmt.Fprintln(w, "=== Static Analysis ===")
	for id, outcome := range plan.Outcomes {
		status := "schedulable"
		if outcome.Excluded {
			status = "EXCLUDED (" + outcome.Reason + ")"
		} else if !outcome.Schedulable {
			status = "UNSCHEDULABLE (no BDR interface found within horizon)"
		}
		fmt.Fprintf(w, "  component %-12s alpha=%.3f delta=%-4d %s\n", id, outcome.UsedAlpha, outcome.UsedDelta, status)
	}

	fmt.Fprintln(w, "=== Parent Schedulability ===")
	for coreID, v := range plan.ParentValidations {
		verdict := "PASS"
		if !v.Pass {
			verdict = "FAIL"
		}
		fmt.Fprintf(w, "  core %-12s sum(alpha)=%.3f derived_delta=%.3f %s\n", coreID, v.SumAlpha, v.DerivedDelta, verdict)
	}

	fmt.Fprintln(w, "=== Simulation Results ===")
	for _, t := range report.Tasks {
		fmt.Fprintf(w, "  task %-12s component=%-12s avg_rt=%.2f max_rt=%d schedulable=%v (%d completions)\n",
			t.TaskName, t.ComponentID, t.AvgResponse, t.MaxResponse, t.Schedulable, t.ObservedCount)
	}

	fmt.Fprintln(w, "=== Component Summary ===")
	for _, c := range report.Components {
		fmt.Fprintf(w, "  component %-12s schedulable=%v\n", c.ComponentID, c.Schedulable)
	}
}
