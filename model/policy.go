package model

import "fmt"

// PolicyKind is the closed set of local scheduling policies a component
// can run: a two-variant tagged union with no open extension intended.
type PolicyKind string

const (
	FPS PolicyKind = "FPS"
	EDF PolicyKind = "EDF"
)

// ParsePolicyKind maps an input scheduler column to a PolicyKind.
// "RM" is accepted as a historical synonym for FPS: priorities are
// taken from the input as-is, no rate-monotonic derivation is performed.
func ParsePolicyKind(s string) (PolicyKind, error) {
	switch s {
	case "FPS", "RM":
		return FPS, nil
	case "EDF":
		return EDF, nil
	default:
		return "", fmt.Errorf("model: unknown scheduler %q (want FPS, EDF, or RM)", s)
	}
}

// Candidate is the minimal per-job information a Policy needs to pick
// the locally-urgent task, decoupling model's policy logic from the
// engine package's mutable job state.
type Candidate struct {
	TaskIndex        int   // index into the owning Component's Tasks
	Priority         int   // FPS urgency (lower = more urgent)
	AbsoluteDeadline int64 // EDF urgency: release + deadline
}

// Policy selects the locally-urgent candidate among a component's
// currently active jobs. Implementations MUST NOT mutate candidates —
// only the returned index is used.
type Policy interface {
	// PickNext returns the index into candidates of the locally-urgent
	// job, or -1 if candidates is empty.
	PickNext(candidates []Candidate) int
}

// fpsPolicy picks the candidate with the smallest Priority value.
type fpsPolicy struct{}

func (fpsPolicy) PickNext(candidates []Candidate) int {
	best := -1
	for i, c := range candidates {
		if best == -1 || c.Priority < candidates[best].Priority {
			best = i
		}
	}
	return best
}

// edfPolicy picks the candidate with the smallest absolute deadline.
type edfPolicy struct{}

func (edfPolicy) PickNext(candidates []Candidate) int {
	best := -1
	for i, c := range candidates {
		if best == -1 || c.AbsoluteDeadline < candidates[best].AbsoluteDeadline {
			best = i
		}
	}
	return best
}

// NewPolicy returns the Policy implementation for kind. Panics on an
// unrecognized kind — PolicyKind values should always come from
// ParsePolicyKind, which rejects anything else first.
func NewPolicy(kind PolicyKind) Policy {
	switch kind {
	case FPS:
		return fpsPolicy{}
	case EDF:
		return edfPolicy{}
	default:
		panic(fmt.Sprintf("model: unhandled policy kind %q", kind))
	}
}
