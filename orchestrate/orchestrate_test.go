package orchestrate

import (
	"testing"

	"github.com/sched-sim/sched-sim/model"
)

func TestPrepare_SchedulableComponent(t *testing.T) {
	comp := &model.Component{
		ID: "C1", CoreID: "Core1", Policy: model.EDF,
		Tasks: []model.Task{
			{Name: "T1", WCET: 2, Period: 5, Deadline: 5},
			{Name: "T2", WCET: 2, Period: 10, Deadline: 10},
		},
		Alpha: 0.6, Delta: 1,
	}
	core := &model.Core{ID: "Core1", Speed: 1, Components: []*model.Component{comp}}
	platform := &model.Platform{Cores: []*model.Core{core}}

	plan := Prepare(platform, Options{})
	outcome := plan.Outcomes["C1"]
	if outcome.Excluded {
		t.Fatal("did not expect exclusion")
	}
	if !outcome.Schedulable {
		t.Fatal("expected BDR synthesis to find an interface")
	}
	if outcome.Server.Cs <= 0 || outcome.Server.Ts <= 0 {
		t.Errorf("expected positive server params, got %+v", outcome.Server)
	}
}

func TestPrepare_InfeasibleComponentStillSimulates(t *testing.T) {
	// util=1.0: no BDR interface with alpha<1 exists.
	comp := &model.Component{
		ID: "C1", CoreID: "Core1", Policy: model.EDF,
		Tasks: []model.Task{
			{Name: "T1", WCET: 4, Period: 5, Deadline: 5},
			{Name: "T2", WCET: 2, Period: 10, Deadline: 10},
		},
		Alpha: 0.9, Delta: 1, // configured fallback interface
	}
	core := &model.Core{ID: "Core1", Speed: 1, Components: []*model.Component{comp}}
	platform := &model.Platform{Cores: []*model.Core{core}}

	plan := Prepare(platform, Options{})
	outcome := plan.Outcomes["C1"]
	if outcome.Schedulable {
		t.Fatal("expected BDR synthesis to be infeasible")
	}
	if outcome.Excluded {
		t.Fatal("infeasible components must still simulate, not be excluded")
	}
}

func TestPrepare_DomainErrorExcludes(t *testing.T) {
	comp := &model.Component{
		ID: "C1", CoreID: "Core1", Policy: model.FPS,
		Tasks: []model.Task{{Name: "T1", WCET: 1, Period: 2, Deadline: 2, Priority: 0}},
		Alpha: 1.0, Delta: 0, // alpha >= 1: Half-Half must fail
	}
	core := &model.Core{ID: "Core1", Speed: 1, Components: []*model.Component{comp}}
	platform := &model.Platform{Cores: []*model.Core{core}}

	// BDR synthesis is infeasible here: the FPS demand at t=1 is the
	// task's wcet (1), while every candidate interface has delta >= 1
	// and so supplies 0 at t=1. The fallback configured alpha=1.0 is
	// therefore what reaches Half-Half.
	plan := Prepare(platform, Options{AnalysisHorizon: 4})
	outcome := plan.Outcomes["C1"]
	if !outcome.Excluded {
		t.Fatal("expected component with alpha>=1 to be excluded")
	}
	if _, ok := plan.ServerParamsFor()["C1"]; ok {
		t.Error("excluded component must not appear in ServerParamsFor")
	}
}

func TestExecute_EndToEnd(t *testing.T) {
	comp := &model.Component{
		ID: "C1", CoreID: "Core1", Policy: model.FPS,
		Tasks: []model.Task{
			{Name: "T1", WCET: 2, Period: 5, Deadline: 5, Priority: 1},
			{Name: "T2", WCET: 3, Period: 10, Deadline: 10, Priority: 2},
		},
		Alpha: 0.9, Delta: 1,
	}
	core := &model.Core{ID: "Core1", Speed: 1, Components: []*model.Component{comp}}
	platform := &model.Platform{Cores: []*model.Core{core}}

	_, results := Execute(platform, Options{})
	if results.HorizonSim != 10 {
		t.Errorf("HorizonSim = %d, want 10 (LCM(5,10))", results.HorizonSim)
	}
	if len(results.ResponseTimes["T1"]) == 0 {
		t.Error("expected at least one observed response time for T1")
	}
}
