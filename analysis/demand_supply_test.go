package analysis

import (
	"testing"

	"github.com/sched-sim/sched-sim/model"
)

func TestDBFEdf(t *testing.T) {
	// T1(wcet=2,P=D=5), T2(wcet=2,P=D=10)
	tasks := []model.Task{
		{Name: "T1", WCET: 2, Period: 5, Deadline: 5},
		{Name: "T2", WCET: 2, Period: 10, Deadline: 10},
	}
	// At t=5: T1 contributes ceil behavior floor((5+5-5)/5)=1 job -> 2
	//         T2 contributes floor((5+10-10)/10)=0 jobs -> 0
	if got := DBFEdf(tasks, 5); got != 2 {
		t.Errorf("DBFEdf(t=5) = %d, want 2", got)
	}
	// At t=10: T1 -> floor((10+5-5)/5)=2 jobs -> 4; T2 -> floor((10+10-10)/10)=1 -> 2
	if got := DBFEdf(tasks, 10); got != 6 {
		t.Errorf("DBFEdf(t=10) = %d, want 6", got)
	}
}

func TestDBFFpsComponent(t *testing.T) {
	// T1(wcet=2,P=5,prio=1), T2(wcet=3,P=10,prio=2)
	tasks := []model.Task{
		{Name: "T1", WCET: 2, Period: 5, Deadline: 5, Priority: 1},
		{Name: "T2", WCET: 3, Period: 10, Deadline: 10, Priority: 2},
	}
	// dbf_FPS(t, T1) = 2 (no higher-priority tasks)
	if got := DBFFps(tasks, 0, 5); got != 2 {
		t.Errorf("DBFFps(T1, t=5) = %d, want 2", got)
	}
	// dbf_FPS(t=5, T2) = 3 + ceil(5/5)*2 = 3 + 2 = 5
	if got := DBFFps(tasks, 1, 5); got != 5 {
		t.Errorf("DBFFps(T2, t=5) = %d, want 5", got)
	}
	if got := DBFFpsComponent(tasks, 5); got != 5 {
		t.Errorf("DBFFpsComponent(t=5) = %d, want 5", got)
	}
}

func TestSBFBdr(t *testing.T) {
	if got := SBFBdr(0.5, 2, 10); got != 4 {
		t.Errorf("SBFBdr(0.5,2,10) = %v, want 4", got)
	}
	if got := SBFBdr(0.5, 10, 5); got != 0 {
		t.Errorf("SBFBdr should clamp to 0 when t < delta, got %v", got)
	}
}
