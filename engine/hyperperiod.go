package engine

import "github.com/sched-sim/sched-sim/arith"

// Hyperperiod returns LCM(periods), the default simulation horizon
// H_sim, unless the caller overrides it.
func Hyperperiod(periods []int64) int64 {
	return arith.LCMAll(periods)
}
