package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

var solutionColumns = []string{
	"task_name", "component_id", "task_schedulable",
	"avg_response_time", "max_response_time", "component_schedulable",
}

// WriteSolutionCSV writes the solution CSV at path: one row per task,
// numeric fields rounded to two decimals, schedulable flags as "0"/"1".
// Creates parent directories as needed.
func WriteSolutionCSV(report Report, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("report: creating output directory %q: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: creating solution csv %q: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // write errors below are surfaced via writer.Error

	writer := csv.NewWriter(file)
	if err := writer.Write(solutionColumns); err != nil {
		return fmt.Errorf("report: writing csv header: %w", err)
	}

	componentSchedulable := make(map[string]bool, len(report.Components))
	for _, c := range report.Components {
		componentSchedulable[c.ComponentID] = c.Schedulable
	}

	for _, t := range report.Tasks {
		row := []string{
			t.TaskName,
			t.ComponentID,
			boolFlag(t.Schedulable),
			formatDecimal(t.AvgResponse),
			formatDecimal(float64(t.MaxResponse)),
			boolFlag(componentSchedulable[t.ComponentID]),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("report: writing csv row for task %q: %w", t.TaskName, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatDecimal(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
