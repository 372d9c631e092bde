// Package engine implements the hierarchical discrete-event simulator:
// a two-level scheduler co-scheduling BDR budget servers per component
// and local FPS/EDF task scheduling within each component, producing
// per-task response times and per-core execution traces.
package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/model"
)

// ServerState is the periodic-server state derived from a component's
// Half-Half transform: (C_s, T_s) plus the mutable budget tracked
// during simulation.
type ServerState struct {
	Cs            float64
	Ts            float64
	BudgetLeft    float64
	LastReplenish int64
}

// jobState is a task's in-flight job, plus the FIFO queue of unfinished
// release times used to compute response time at completion.
type jobState struct {
	remaining       float64
	hasJob          bool
	pendingReleases []int64 // releases with no recorded response time yet
}

// taskRuntime binds a task to its mutable per-simulation job state.
type taskRuntime struct {
	task model.Task
	job  jobState
}

// componentRuntime binds a component to its mutable BDR server state
// and its tasks' runtime state.
type componentRuntime struct {
	component *model.Component
	server    ServerState
	tasks     []taskRuntime
	policy    model.Policy
}

// coreRuntime binds a core to the component runtimes it hosts, in the
// insertion order that also governs arbitration tie-breaking.
type coreRuntime struct {
	core       *model.Core
	components []*componentRuntime
}

// Results is everything the simulator observed over the hyperperiod.
type Results struct {
	HorizonSim int64
	// ResponseTimes[taskName] = every observed response time (inclusive)
	ResponseTimes map[string][]int64
	// Trace[coreID] = tick-indexed execution label ("" task name or "Idle")
	Trace map[string][]string
}

// Simulator drives the hierarchical hyperperiod simulation.
type Simulator struct {
	cores      []*coreRuntime
	horizonSim int64
	results    Results
}

// ServerParams is the (C_s, T_s) pair assigned to a component for
// simulation, produced upstream by the Half-Half transform.
type ServerParams struct {
	Cs float64
	Ts float64
}

// NewSimulator builds a Simulator over the given cores, including only
// the components named in serverParams (components absent from
// serverParams — e.g. excluded for a BdrDomainError — do not
// participate and contribute no trace or response times). horizonSim
// is the number of ticks simulated; NewSimulator computes no
// hyperperiod itself, so the caller passes either the hyperperiod (see
// Hyperperiod in hyperperiod.go) or an override.
func NewSimulator(platform *model.Platform, serverParams map[string]ServerParams, horizonSim int64) *Simulator {
	sim := &Simulator{
		horizonSim: horizonSim,
		results: Results{
			HorizonSim:    horizonSim,
			ResponseTimes: make(map[string][]int64),
			Trace:         make(map[string][]string),
		},
	}

	for _, core := range platform.Cores {
		cr := &coreRuntime{core: core}
		for _, comp := range core.Components {
			params, ok := serverParams[comp.ID]
			if !ok {
				continue
			}
			compRT := &componentRuntime{
				component: comp,
				server:    ServerState{Cs: params.Cs, Ts: params.Ts},
				policy:    model.NewPolicy(comp.Policy),
			}
			for _, task := range comp.Tasks {
				compRT.tasks = append(compRT.tasks, taskRuntime{task: task})
				sim.results.ResponseTimes[task.Name] = nil
			}
			cr.components = append(cr.components, compRT)
		}
		sim.cores = append(sim.cores, cr)
		sim.results.Trace[core.ID] = make([]string, 0, horizonSim)
	}

	return sim
}

// Run advances every core independently through horizonSim ticks,
// following a fixed per-tick procedure: release check, component
// budget management, local candidate selection, core arbitration,
// execution, completion.
func (s *Simulator) Run() Results {
	for _, cr := range s.cores {
		s.runCore(cr)
	}
	return s.results
}

func (s *Simulator) runCore(cr *coreRuntime) {
	for t := int64(0); t < s.horizonSim; t++ {
		releaseJobs(cr, t)
		manageBudgets(cr, t)
		winner := arbitrate(cr, t)

		label := "Idle"
		if winner != nil {
			execute(winner.comp, winner.taskIdx, cr.core.Speed)
			label = winner.comp.tasks[winner.taskIdx].task.Name
			completeIfDone(s, winner.comp, winner.taskIdx, t)
		}
		s.results.Trace[cr.core.ID] = append(s.results.Trace[cr.core.ID], label)
	}
}

// releaseJobs enqueues a new release and (re)starts the job for every
// task whose period divides the current tick. A release while the
// previous job is still running overwrites remaining work: the
// unfinished job's earliest pending release is discarded without a
// recorded response time.
func releaseJobs(cr *coreRuntime, t int64) {
	for _, comp := range cr.components {
		for i := range comp.tasks {
			tr := &comp.tasks[i]
			if t%tr.task.Period != 0 {
				continue
			}
			tr.job.pendingReleases = append(tr.job.pendingReleases, t)
			if tr.job.hasJob {
				// overwrite: drop the stale in-flight job's oldest pending
				// release without recording a response time for it.
				if len(tr.job.pendingReleases) > 1 {
					tr.job.pendingReleases = tr.job.pendingReleases[1:]
				}
			}
			tr.job.remaining = float64(tr.task.WCET)
			tr.job.hasJob = true
		}
	}
}

// manageBudgets replenishes each component's BDR server budget once its
// replenishment period T_s has elapsed since the last replenishment.
func manageBudgets(cr *coreRuntime, t int64) {
	for _, comp := range cr.components {
		if t == 0 {
			comp.server.BudgetLeft = comp.server.Cs
			comp.server.LastReplenish = 0
			continue
		}
		if comp.server.Ts > 0 && float64(t-comp.server.LastReplenish) >= comp.server.Ts {
			comp.server.BudgetLeft = comp.server.Cs
			comp.server.LastReplenish = t
		}
	}
}

type selection struct {
	comp    *componentRuntime
	taskIdx int
}

// arbitrate selects, among components eligible at tick t, the
// currently-urgent task of the first eligible component in core
// insertion order — the canonical deterministic tie-break.
func arbitrate(cr *coreRuntime, t int64) *selection {
	for _, comp := range cr.components {
		if t < comp.component.Delta || comp.server.BudgetLeft <= 0 {
			continue
		}
		idx := localCandidate(comp, t)
		if idx == -1 {
			continue
		}
		return &selection{comp: comp, taskIdx: idx}
	}
	return nil
}

// localCandidate asks the component's policy which active job is
// currently urgent.
func localCandidate(comp *componentRuntime, t int64) int {
	var candidates []model.Candidate
	var indices []int
	for i := range comp.tasks {
		tr := &comp.tasks[i]
		if !tr.job.hasJob || tr.job.remaining <= 0 {
			continue
		}
		release := latestRelease(tr)
		candidates = append(candidates, model.Candidate{
			TaskIndex:        i,
			Priority:         tr.task.Priority,
			AbsoluteDeadline: release + tr.task.Deadline,
		})
		indices = append(indices, i)
	}
	if len(candidates) == 0 {
		return -1
	}
	pick := comp.policy.PickNext(candidates)
	if pick == -1 {
		return -1
	}
	return indices[pick]
}

// latestRelease returns the most recent release tick for a task's
// current in-flight job (the last element of pendingReleases).
func latestRelease(tr *taskRuntime) int64 {
	if len(tr.job.pendingReleases) == 0 {
		return 0
	}
	return tr.job.pendingReleases[len(tr.job.pendingReleases)-1]
}

// execute retires `speed` units of remaining work for one tick of
// granted CPU and decrements the component's BDR budget by one tick
// regardless of speed (budget is wall-clock, not work).
func execute(comp *componentRuntime, taskIdx int, speed float64) {
	tr := &comp.tasks[taskIdx]
	tr.job.remaining -= speed
	comp.server.BudgetLeft--
}

// completeIfDone records a response time and clears the in-flight job
// when its remaining work reaches zero.
func completeIfDone(s *Simulator, comp *componentRuntime, taskIdx int, t int64) {
	tr := &comp.tasks[taskIdx]
	if tr.job.remaining > 0 {
		return
	}
	if len(tr.job.pendingReleases) == 0 {
		logrus.Warnf("engine: task %q completed with no pending release at tick %d", tr.task.Name, t)
		tr.job.hasJob = false
		return
	}
	release := tr.job.pendingReleases[0]
	tr.job.pendingReleases = tr.job.pendingReleases[1:]
	rt := t - release + 1
	s.results.ResponseTimes[tr.task.Name] = append(s.results.ResponseTimes[tr.task.Name], rt)
	tr.job.hasJob = len(tr.job.pendingReleases) > 0
	if tr.job.hasJob {
		tr.job.remaining = float64(tr.task.WCET)
	}
}

// String renders a ServerParams for diagnostic logs.
func (p ServerParams) String() string {
	return fmt.Sprintf("(Cs=%.3f, Ts=%.3f)", p.Cs, p.Ts)
}
