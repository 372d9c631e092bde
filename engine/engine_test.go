package engine

import (
	"testing"

	"github.com/sched-sim/sched-sim/model"
)

func platformWith(policy model.PolicyKind, tasks []model.Task) *model.Platform {
	comp := &model.Component{ID: "C1", CoreID: "Core1", Policy: policy, Tasks: tasks}
	core := &model.Core{ID: "Core1", Speed: 1.0, Components: []*model.Component{comp}}
	return &model.Platform{Cores: []*model.Core{core}}
}

func TestSimulator_FPS_S5(t *testing.T) {
	tasks := []model.Task{
		{Name: "T1", WCET: 2, Period: 5, Deadline: 5, Priority: 1},
		{Name: "T2", WCET: 3, Period: 10, Deadline: 10, Priority: 2},
	}
	platform := platformWith(model.FPS, tasks)
	params := map[string]ServerParams{"C1": {Cs: 1, Ts: 1}} // full budget every tick
	sim := NewSimulator(platform, params, 10)
	results := sim.Run()

	maxRT := func(name string) int64 {
		var m int64
		for _, rt := range results.ResponseTimes[name] {
			if rt > m {
				m = rt
			}
		}
		return m
	}
	if got := maxRT("T1"); got != 2 {
		t.Errorf("max_rt(T1) = %d, want 2", got)
	}
	if got := maxRT("T2"); got > 7 {
		t.Errorf("max_rt(T2) = %d, want <= 7", got)
	}
}

func TestSimulator_SpeedScaling_S3(t *testing.T) {
	// Core speed 2.0 halves effective execution time for T1(wcet=4, P=D=8).
	tasks := []model.Task{
		{Name: "T1", WCET: 4, Period: 8, Deadline: 8},
	}
	comp := &model.Component{ID: "C1", CoreID: "Core1", Policy: model.EDF, Tasks: tasks}
	core := &model.Core{ID: "Core1", Speed: 2.0, Components: []*model.Component{comp}}
	platform := &model.Platform{Cores: []*model.Core{core}}
	params := map[string]ServerParams{"C1": {Cs: 1, Ts: 1}}
	sim := NewSimulator(platform, params, 8)
	results := sim.Run()

	var maxRT int64
	for _, rt := range results.ResponseTimes["T1"] {
		if rt > maxRT {
			maxRT = rt
		}
	}
	if maxRT > 2 {
		t.Errorf("max response time = %d, want <= 2 at double speed", maxRT)
	}
}

func TestSimulator_ExcludedComponentNotInResults(t *testing.T) {
	tasks := []model.Task{{Name: "T1", WCET: 1, Period: 5, Deadline: 5}}
	platform := platformWith(model.FPS, tasks)
	sim := NewSimulator(platform, map[string]ServerParams{}, 10)
	results := sim.Run()
	if _, ok := results.ResponseTimes["T1"]; ok {
		t.Error("expected excluded component's tasks to be absent from results")
	}
	if len(results.Trace["Core1"]) != 10 {
		t.Errorf("expected a full idle trace even with no participating components, got len=%d", len(results.Trace["Core1"]))
	}
	for _, label := range results.Trace["Core1"] {
		if label != "Idle" {
			t.Errorf("expected all-idle trace, got label %q", label)
		}
	}
}

func TestHyperperiod(t *testing.T) {
	if got := Hyperperiod([]int64{4, 6}); got != 12 {
		t.Errorf("Hyperperiod = %d, want 12", got)
	}
}
