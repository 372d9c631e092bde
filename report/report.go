// Package report implements the result aggregator: per-task average/
// maximum response time and schedulability, rolled up into
// per-component schedulability, plus CSV and textual-summary emission.
package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sched-sim/sched-sim/engine"
	"github.com/sched-sim/sched-sim/model"
	"github.com/sched-sim/sched-sim/orchestrate"
)

// TaskReport is the per-task aggregation result.
type TaskReport struct {
	TaskName      string
	ComponentID   string
	AvgResponse   float64
	MaxResponse   int64
	Schedulable   bool
	ObservedCount int
}

// ComponentReport is the per-component rollup.
type ComponentReport struct {
	ComponentID string
	Schedulable bool
	Excluded    bool
	Tasks       []string
}

// Report is the full aggregation: every task, every component, in a
// stable order (component, then task, both by ID) for deterministic
// CSV emission across runs.
type Report struct {
	Tasks      []TaskReport
	Components []ComponentReport
}

// Aggregate computes avg/max response time and schedulability per task
// (schedulable = observed non-empty AND max_rt <= deadline) and per
// component (conjunction of its tasks' flags), for every component
// named in plan — including excluded ones, which are reported
// unschedulable with no observed response times.
func Aggregate(platform *model.Platform, plan *orchestrate.Plan, results engine.Results) Report {
	var report Report

	for _, core := range platform.Cores {
		for _, comp := range core.Components {
			outcome := plan.Outcomes[comp.ID]
			compReport := ComponentReport{ComponentID: comp.ID, Excluded: outcome.Excluded, Schedulable: true}

			taskNames := make([]string, 0, len(comp.Tasks))
			for _, task := range comp.Tasks {
				observed := results.ResponseTimes[task.Name]
				taskReport := aggregateTask(task, comp.ID, observed)
				report.Tasks = append(report.Tasks, taskReport)
				if !taskReport.Schedulable {
					compReport.Schedulable = false
				}
				taskNames = append(taskNames, task.Name)
			}
			compReport.Tasks = taskNames
			report.Components = append(report.Components, compReport)
		}
	}

	sort.SliceStable(report.Tasks, func(i, j int) bool {
		if report.Tasks[i].ComponentID != report.Tasks[j].ComponentID {
			return report.Tasks[i].ComponentID < report.Tasks[j].ComponentID
		}
		return report.Tasks[i].TaskName < report.Tasks[j].TaskName
	})
	sort.SliceStable(report.Components, func(i, j int) bool {
		return report.Components[i].ComponentID < report.Components[j].ComponentID
	})

	return report
}

// aggregateTask computes one task's avg/max response time and
// schedulability. A task with zero completions is reported
// unschedulable with zero-valued response times.
func aggregateTask(task model.Task, componentID string, observed []int64) TaskReport {
	tr := TaskReport{TaskName: task.Name, ComponentID: componentID, ObservedCount: len(observed)}
	if len(observed) == 0 {
		return tr
	}

	floats := make([]float64, len(observed))
	var max int64
	for i, rt := range observed {
		floats[i] = float64(rt)
		if rt > max {
			max = rt
		}
	}
	tr.AvgResponse = stat.Mean(floats, nil)
	tr.MaxResponse = max
	tr.Schedulable = max <= task.Deadline
	return tr
}
