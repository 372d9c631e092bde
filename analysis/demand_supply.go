// Package analysis implements the static scheduling analysis: demand-
// and supply-bound functions, BDR interface synthesis, the Half-Half
// transform, and Feng–Mok parent-schedulability validation.
package analysis

import (
	"github.com/sched-sim/sched-sim/arith"
	"github.com/sched-sim/sched-sim/model"
)

// DBFEdf computes the EDF demand-bound function (Baruah) of a task set
// over an interval of length t:
//
//	dbf_EDF(τ, t) = Σ max(0, ⌊(t + Pᵢ − Dᵢ) / Pᵢ⌋) · Cᵢ
func DBFEdf(tasks []model.Task, t int64) int64 {
	var demand int64
	for _, task := range tasks {
		n := t + task.Period - task.Deadline
		if n <= 0 {
			continue
		}
		jobs := arith.FloorDiv(n, task.Period)
		demand += jobs * task.WCET
	}
	return demand
}

// DBFFps computes the FPS demand-bound function of a single task τ_k at
// time t, given the full task set it belongs to (hp(k) = every task
// with a strictly lower priority number, i.e. strictly higher urgency):
//
//	dbf_FPS(τ, t, τ_k) = C_k + Σ_{τⱼ∈hp(k)} ⌈t / Pⱼ⌉ · Cⱼ
func DBFFps(tasks []model.Task, k int, t int64) int64 {
	demand := tasks[k].WCET
	for j, task := range tasks {
		if j == k {
			continue
		}
		if task.Priority < tasks[k].Priority {
			demand += arith.CeilDiv(t, task.Period) * task.WCET
		}
	}
	return demand
}

// DBFFpsComponent returns the component-level FPS demand at t: the max
// over every task's own dbf_FPS.
func DBFFpsComponent(tasks []model.Task, t int64) int64 {
	var max int64
	for k := range tasks {
		if d := DBFFps(tasks, k, t); d > max {
			max = d
		}
	}
	return max
}

// DBFPolicy dispatches to DBFFpsComponent or DBFEdf according to kind.
func DBFPolicy(tasks []model.Task, kind model.PolicyKind, t int64) int64 {
	switch kind {
	case model.FPS:
		return DBFFpsComponent(tasks, t)
	case model.EDF:
		return DBFEdf(tasks, t)
	default:
		panic("analysis: unhandled policy kind in DBFPolicy")
	}
}

// SBFBdr computes the BDR supply-bound function: the minimum guaranteed
// processor supply of an (α, Δ) interface over an interval of length t.
//
//	sbf(α, Δ, t) = max(0, α · (t − Δ))
func SBFBdr(alpha float64, delta int64, t int64) float64 {
	v := alpha * float64(t-delta)
	if v < 0 {
		return 0
	}
	return v
}

