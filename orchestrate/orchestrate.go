// Package orchestrate composes the static analysis stage (BDR
// synthesis, Half-Half, parent validation) with the hierarchical
// simulator, following the natural dependency order: arithmetic →
// demand/supply → BDR synthesis → Half-Half → parent validation →
// simulation → result aggregation.
package orchestrate

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/analysis"
	"github.com/sched-sim/sched-sim/engine"
	"github.com/sched-sim/sched-sim/model"
)

// Options controls the analysis and simulation horizons. Zero values
// fall back to the package defaults.
type Options struct {
	AnalysisHorizon int64 // default analysis.DefaultHorizon
	SimHorizon      int64 // default: LCM of all task periods
}

// Outcome is everything decided about a single component during BDR
// synthesis, Half-Half, and exclusion handling.
type Outcome struct {
	ComponentID string
	BDR         analysis.BDRResult
	UsedAlpha   float64
	UsedDelta   int64
	Server      engine.ServerParams
	Schedulable bool // BDR synthesis found an interface within the horizon
	Excluded    bool // BdrDomainError: component does not participate in simulation
	Reason      string
}

// Plan is the full per-run analysis outcome: one Outcome per component,
// plus one ParentValidation per core.
type Plan struct {
	Outcomes          map[string]*Outcome
	ParentValidations map[string]analysis.ParentValidation
}

// Prepare runs BDR synthesis and the Half-Half transform for every
// component in platform, then validates parent-schedulability per core.
// Per-component errors (Unschedulable, BdrDomainError) never abort the
// run: they are recorded in the returned Plan and logged.
func Prepare(platform *model.Platform, opts Options) *Plan {
	horizon := opts.AnalysisHorizon
	if horizon <= 0 {
		horizon = analysis.DefaultHorizon
	}

	plan := &Plan{
		Outcomes:          make(map[string]*Outcome),
		ParentValidations: make(map[string]analysis.ParentValidation),
	}

	for _, core := range platform.Cores {
		var interfaces []analysis.BDRInterface
		for _, comp := range core.Components {
			outcome := prepareComponent(comp, horizon)
			plan.Outcomes[comp.ID] = outcome
			if !outcome.Excluded {
				interfaces = append(interfaces, analysis.BDRInterface{
					ComponentID: comp.ID,
					Alpha:       outcome.UsedAlpha,
					Delta:       outcome.UsedDelta,
				})
			}
		}
		validation := analysis.ValidateParent(interfaces)
		plan.ParentValidations[core.ID] = validation
		if !validation.Pass {
			logrus.Warnf("orchestrate: core %q fails parent-schedulability validation (sum alpha=%.3f, violating deltas=%v)",
				core.ID, validation.SumAlpha, validation.ViolatingDeltas)
		}
	}

	return plan
}

// prepareComponent runs BDR synthesis for one component, falling back
// to its configured (budget/period, 0-or-1) interface when synthesis
// is infeasible, then applies the Half-Half transform. A BdrDomainError
// excludes the component from simulation entirely.
func prepareComponent(comp *model.Component, horizon int64) *Outcome {
	result := analysis.FindMinBDRParams(comp.Tasks, comp.Policy, horizon)

	outcome := &Outcome{ComponentID: comp.ID, BDR: result}

	if result.Found() {
		comp.Alpha = result.Alpha
		comp.Delta = result.Delta
		outcome.Schedulable = true
	} else {
		logrus.Warnf("orchestrate: component %q has no schedulable BDR interface within horizon %d; falling back to configured interface (alpha=%.3f, delta=%d)",
			comp.ID, horizon, comp.Alpha, comp.Delta)
		outcome.Schedulable = false
	}
	outcome.UsedAlpha = comp.Alpha
	outcome.UsedDelta = comp.Delta

	cs, ts, err := analysis.HalfHalf(comp.Alpha, comp.Delta)
	if err != nil {
		outcome.Excluded = true
		outcome.Reason = fmt.Sprintf("excluded from simulation: %v", err)
		logrus.Errorf("orchestrate: component %q %s", comp.ID, outcome.Reason)
		comp.Schedulable = false
		return outcome
	}
	outcome.Server = engine.ServerParams{Cs: cs, Ts: ts}
	comp.Schedulable = outcome.Schedulable
	return outcome
}

// ServerParamsFor extracts the engine.ServerParams map for every
// non-excluded component in the plan, ready for engine.NewSimulator.
func (p *Plan) ServerParamsFor() map[string]engine.ServerParams {
	out := make(map[string]engine.ServerParams)
	for id, outcome := range p.Outcomes {
		if !outcome.Excluded {
			out[id] = outcome.Server
		}
	}
	return out
}
