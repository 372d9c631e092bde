package analysis

import (
	"math"

	"github.com/sched-sim/sched-sim/model"
)

// DefaultHorizon is the heuristic analysis horizon H.
const DefaultHorizon = 100

// DefaultGridSize is the number of evenly spaced α samples in [0.01, 1.0]
// searched for each Δ.
const DefaultGridSize = 200

// GridSize is the grid resolution FindMinBDRParams actually searches
// with. It defaults to DefaultGridSize and may be overridden at
// startup (config.Overrides, cmd's --grid flag) before any analysis
// runs; FindMinBDRParams itself takes no grid parameter so every
// component in a run shares one resolution.
var GridSize = DefaultGridSize

// BDRResult is the sum type {Found(α, Δ), Infeasible}, modeled as an
// explicit struct rather than a sentinel error or zero value, favoring
// explicit (bool, ...) returns over sentinels.
type BDRResult struct {
	found bool
	Alpha float64
	Delta int64
}

// Found reports whether synthesis produced a schedulable interface.
func (r BDRResult) Found() bool { return r.found }

// FindMinBDRParams returns the lexicographically first (Δ, α) — Δ small
// then α small — such that sbf(α, Δ, t) >= dbf_policy(tasks, t) for
// every integer t in [1, horizon]. Returns a BDRResult with Found()
// false if the search is exhausted without success.
func FindMinBDRParams(tasks []model.Task, kind model.PolicyKind, horizon int64) BDRResult {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	demands := make([]int64, horizon+1)
	for t := int64(1); t <= horizon; t++ {
		demands[t] = DBFPolicy(tasks, kind, t)
	}

	const alphaMin, alphaMax = 0.01, 1.0
	gridSize := GridSize
	if gridSize <= 1 {
		gridSize = DefaultGridSize
	}
	step := (alphaMax - alphaMin) / float64(gridSize-1)

	for delta := int64(1); delta <= horizon; delta++ {
		for g := 0; g < gridSize; g++ {
			alpha := alphaMin + step*float64(g)
			if dominatesAll(alpha, delta, demands, horizon) {
				return BDRResult{found: true, Alpha: round3(alpha), Delta: delta}
			}
		}
	}
	return BDRResult{found: false}
}

// dominatesAll reports whether sbf(alpha, delta, t) >= demands[t] for
// every t in [1, horizon], short-circuiting on the first violation.
func dominatesAll(alpha float64, delta int64, demands []int64, horizon int64) bool {
	for t := int64(1); t <= horizon; t++ {
		if SBFBdr(alpha, delta, t) < float64(demands[t]) {
			return false
		}
	}
	return true
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
