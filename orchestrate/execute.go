package orchestrate

import (
	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/engine"
	"github.com/sched-sim/sched-sim/model"
)

// Execute runs Prepare followed by the hierarchical simulation and
// returns both the analysis Plan and the simulation Results.
func Execute(platform *model.Platform, opts Options) (*Plan, engine.Results) {
	plan := Prepare(platform, opts)

	simHorizon := opts.SimHorizon
	if simHorizon <= 0 {
		simHorizon = engine.Hyperperiod(platform.AllPeriods())
	}
	logrus.Infof("orchestrate: simulating %d cores over hyperperiod %d", len(platform.Cores), simHorizon)

	sim := engine.NewSimulator(platform, plan.ServerParamsFor(), simHorizon)
	results := sim.Run()
	return plan, results
}
