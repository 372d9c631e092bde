package model

import "fmt"

// Component is a schedulable container: a set of tasks running under a
// local policy, receiving CPU from its core through a BDR interface
// (Alpha, Delta). Alpha/Delta start from configuration and are
// overwritten by BDR synthesis (analysis.FindMinBDRParams).
type Component struct {
	ID          string
	CoreID      string
	Policy      PolicyKind
	Alpha       float64 // BDR share, in (0, 1]
	Delta       int64   // BDR max starvation delay, >= 0
	Tasks       []Task
	Schedulable bool // set by BDR synthesis; false means excluded or infeasible
}

// Validate checks the component's invariants.
func (c Component) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("model: component has empty id")
	}
	if len(c.Tasks) == 0 {
		return fmt.Errorf("component %q: must own at least one task", c.ID)
	}
	for _, t := range c.Tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("component %q: %w", c.ID, err)
		}
	}
	return nil
}

// Periods returns the periods of every task in the component, used by
// AllPeriods to compute the simulation hyperperiod.
func (c Component) Periods() []int64 {
	periods := make([]int64, len(c.Tasks))
	for i, t := range c.Tasks {
		periods[i] = t.Period
	}
	return periods
}

// Core is a physical processor hosting one or more components. Speed is
// a multiplier on execution progress: a core with Speed=2.0 retires two
// units of task work per tick of CPU it grants.
type Core struct {
	ID         string
	Speed      float64
	Components []*Component // insertion order is the canonical arbitration tie-break
}

// Validate checks the core's invariants.
func (c Core) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("model: core has empty id")
	}
	if c.Speed <= 0 {
		return fmt.Errorf("core %q: speed must be positive, got %v", c.ID, c.Speed)
	}
	return nil
}

// Platform is the full hierarchy read from input: every core, owning
// its components, each owning its tasks.
type Platform struct {
	Cores []*Core
}

// AllComponents returns every component across every core, in core then
// insertion order.
func (p *Platform) AllComponents() []*Component {
	var out []*Component
	for _, core := range p.Cores {
		out = append(out, core.Components...)
	}
	return out
}

// AllPeriods returns the periods of every task across every component,
// used to compute the simulation hyperperiod.
func (p *Platform) AllPeriods() []int64 {
	var out []int64
	for _, c := range p.AllComponents() {
		out = append(out, c.Periods()...)
	}
	return out
}
