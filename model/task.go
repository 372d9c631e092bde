// Package model defines the platform's static data: tasks, components,
// cores, and the closed set of local scheduling policies. These types
// are pure data — mutation happens only during BDR synthesis (the
// component's Alpha/Delta/Schedulable fields) and in the engine package's own
// per-run state, never here.
package model

import "fmt"

// Task is a periodic job generator belonging to exactly one Component.
type Task struct {
	Name     string
	WCET     int64
	BCET     int64
	Period   int64
	Deadline int64
	Priority int
}

// Validate checks: 0 <= BCET <= WCET, Period > 0, 0 < Deadline <= Period.
func (t Task) Validate() error {
	if t.Period <= 0 {
		return fmt.Errorf("task %q: period must be positive, got %d", t.Name, t.Period)
	}
	if t.WCET < 0 {
		return fmt.Errorf("task %q: wcet must be non-negative, got %d", t.Name, t.WCET)
	}
	if t.BCET < 0 || t.BCET > t.WCET {
		return fmt.Errorf("task %q: bcet must satisfy 0 <= bcet <= wcet, got bcet=%d wcet=%d", t.Name, t.BCET, t.WCET)
	}
	if t.Deadline <= 0 || t.Deadline > t.Period {
		return fmt.Errorf("task %q: deadline must satisfy 0 < deadline <= period, got deadline=%d period=%d", t.Name, t.Deadline, t.Period)
	}
	return nil
}
